package matcher

import "strings"

// ExtractLiterals returns every maximal run of concatenated literal
// characters in node: substrings guaranteed to appear verbatim in any word
// node accepts, because the path from the root to each one passes through
// nothing but Concat nodes.
//
// The result is sound, not complete: And, Or, Question, and Star all
// terminate a run at that point (their operand may be skipped, repeated
// zero times, or only conditionally present), even in cases — Star of a
// non-empty fixed string, And's shared prefix — where a mandatory substring
// could in principle still be derived. Missing a literal only costs a
// prefilter opportunity; reporting one that isn't actually mandatory would
// make the prefilter reject words the full matcher would have accepted.
func ExtractLiterals(node *Node) []string {
	var runs []string
	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			runs = append(runs, current.String())
			current.Reset()
		}
	}

	var walk func(n *Node)
	walk = func(n *Node) {
		switch n.Kind {
		case KindLit:
			current.WriteByte(n.Char)
		case KindConcat:
			walk(n.Left)
			walk(n.Right)
		default:
			flush()
		}
	}

	walk(node)
	flush()
	return runs
}
