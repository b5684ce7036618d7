package matcher

import "testing"

func TestParseLiteral(t *testing.T) {
	node, err := Parse("a")
	if err != nil {
		t.Fatal(err)
	}
	if node.Kind != KindLit || node.Char != 'a' {
		t.Errorf("Parse(a) = %+v, want literal a", node)
	}
}

func TestParseEps(t *testing.T) {
	node, err := Parse("eps")
	if err != nil {
		t.Fatal(err)
	}
	if node.Kind != KindEps {
		t.Errorf("Parse(eps) = %+v, want KindEps", node)
	}
}

func TestParseConcat(t *testing.T) {
	node, err := Parse("ab")
	if err != nil {
		t.Fatal(err)
	}
	if node.Kind != KindConcat || node.Left.Char != 'a' || node.Right.Char != 'b' {
		t.Errorf("Parse(ab) = %+v, want concat(a,b)", node)
	}
}

func TestParseOrAndAndPrecedence(t *testing.T) {
	// '+' binds loosest, then '&', then concat, then postfix */?.
	node, err := Parse("a&b+c&d")
	if err != nil {
		t.Fatal(err)
	}
	if node.Kind != KindOr {
		t.Fatalf("Parse(a&b+c&d) top = %v, want Or", node.Kind)
	}
	if node.Left.Kind != KindAnd || node.Right.Kind != KindAnd {
		t.Errorf("Parse(a&b+c&d) operands = %v, %v, want And, And", node.Left.Kind, node.Right.Kind)
	}
}

func TestParseQuestionAndStar(t *testing.T) {
	node, err := Parse("a?b*")
	if err != nil {
		t.Fatal(err)
	}
	if node.Kind != KindConcat {
		t.Fatalf("Parse(a?b*) top = %v, want Concat", node.Kind)
	}
	if node.Left.Kind != KindQuestion || node.Right.Kind != KindStar {
		t.Errorf("Parse(a?b*) operands = %v, %v, want Question, Star", node.Left.Kind, node.Right.Kind)
	}
}

func TestParseParens(t *testing.T) {
	node, err := Parse("(a+b)c")
	if err != nil {
		t.Fatal(err)
	}
	if node.Kind != KindConcat || node.Left.Kind != KindOr {
		t.Errorf("Parse((a+b)c) = %+v, want concat(or(...), c)", node)
	}
}

func TestParseRejectsUnbalancedParens(t *testing.T) {
	if _, err := Parse("(ab"); err == nil {
		t.Error("Parse((ab) error = nil, want syntax error")
	}
}

func TestParseRejectsTrailingGarbage(t *testing.T) {
	if _, err := Parse("a)"); err == nil {
		t.Error("Parse(a)) error = nil, want syntax error")
	}
}
