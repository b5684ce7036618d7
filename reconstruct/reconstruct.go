// Package reconstruct walks the cache arena's back-references from a
// terminating index to produce the regular-expression string it represents.
package reconstruct

import (
	"strconv"

	"github.com/bitshape/regexinfer/cache"
	"github.com/bitshape/regexinfer/ic"
	"github.com/bitshape/regexinfer/matcher"
)

// Build reconstructs the RE string rooted at arena index idx.
//
// idx == cache.EpsRef means "ε" on its own. Every other index is resolved
// through arena.BackRefAt: an OpAlpha leaf emits its literal character, a
// unary operator (?, *) emits its child bracketed only if the child's
// printed form is longer than one character, and concat brackets a child
// whose top-level operator is OpOr or OpAnd, since both bind looser than
// concatenation (+ < & < concat). Or prints its children unparenthesised,
// since + is parsed loosest of all; And brackets an Or child (an
// unbracketed a+b&c re-parses as a+(b&c)) but never another And child.
//
// An OpOr node whose left child is cache.EpsRef is the ε+r optimisation
// (package engine runs this instead of a real ? whenever ? would never be
// cheaper): it prints as r?, not eps+r, so "eps" only ever appears as a
// whole reconstructed RE.
func Build(arena *cache.Arena, idx int, closure *ic.IC) string {
	if idx == cache.EpsRef {
		return "eps"
	}
	s, _ := build(arena, idx, closure)
	return s
}

func build(arena *cache.Arena, idx int, closure *ic.IC) (string, cache.Op) {
	br := arena.BackRefAt(idx)
	switch br.Op {
	case cache.OpAlpha:
		return closure.Words[br.Left], cache.OpAlpha

	case cache.OpQuestion:
		child, _ := build(arena, br.Left, closure)
		return bracketIfLong(child) + "?", cache.OpQuestion

	case cache.OpStar:
		child, _ := build(arena, br.Left, closure)
		return bracketIfLong(child) + "*", cache.OpStar

	case cache.OpConcat:
		left, leftOp := build(arena, br.Left, closure)
		right, rightOp := build(arena, br.Right, closure)
		if leftOp == cache.OpOr || leftOp == cache.OpAnd {
			left = "(" + left + ")"
		}
		if rightOp == cache.OpOr || rightOp == cache.OpAnd {
			right = "(" + right + ")"
		}
		return left + right, cache.OpConcat

	case cache.OpOr:
		if br.Left == cache.EpsRef {
			child, _ := build(arena, br.Right, closure)
			return bracketIfLong(child) + "?", cache.OpQuestion
		}
		left, _ := build(arena, br.Left, closure)
		right, _ := build(arena, br.Right, closure)
		return left + "+" + right, cache.OpOr

	case cache.OpAnd:
		left, leftOp := build(arena, br.Left, closure)
		right, rightOp := build(arena, br.Right, closure)
		if leftOp == cache.OpOr {
			left = "(" + left + ")"
		}
		if rightOp == cache.OpOr {
			right = "(" + right + ")"
		}
		return left + "&" + right, cache.OpAnd
	}

	return "", cache.OpAlpha
}

func bracketIfLong(s string) string {
	if len(s) > 1 {
		return "(" + s + ")"
	}
	return s
}

// OperationCounts tallies how many times each operator appears in a
// reconstructed RE, mirroring the original implementation's
// countOpreations diagnostic.
type OperationCounts struct {
	Alpha, Question, Star, Concat, Or, And int
}

// Count walks the arena back-references rooted at idx and tallies operator
// occurrences, without re-building the string.
func Count(arena *cache.Arena, idx int) OperationCounts {
	var counts OperationCounts
	countInto(arena, idx, &counts)
	return counts
}

func countInto(arena *cache.Arena, idx int, counts *OperationCounts) {
	if idx == cache.EpsRef {
		counts.Alpha++
		return
	}
	br := arena.BackRefAt(idx)
	switch br.Op {
	case cache.OpAlpha:
		counts.Alpha++
	case cache.OpQuestion:
		counts.Question++
		countInto(arena, br.Left, counts)
	case cache.OpStar:
		counts.Star++
		countInto(arena, br.Left, counts)
	case cache.OpConcat:
		counts.Concat++
		countInto(arena, br.Left, counts)
		countInto(arena, br.Right, counts)
	case cache.OpOr:
		if br.Left == cache.EpsRef {
			counts.Question++
			countInto(arena, br.Right, counts)
			return
		}
		counts.Or++
		countInto(arena, br.Left, counts)
		countInto(arena, br.Right, counts)
	case cache.OpAnd:
		counts.And++
		countInto(arena, br.Left, counts)
		countInto(arena, br.Right, counts)
	}
}

// CountOperators parses s and tallies operator occurrences, the string
// counterpart of Count: package dc composes REs by string concatenation
// across recursive engine calls (under + and &), so it has no single
// arena to walk back-references through, only the final RE text, mirroring
// the reference implementation's countOpreations (rei_util.cpp), which
// re-parses its REI output the same way.
func CountOperators(s string) (OperationCounts, error) {
	node, err := matcher.Parse(s)
	if err != nil {
		return OperationCounts{}, err
	}
	var counts OperationCounts
	countNode(node, &counts)
	return counts, nil
}

func countNode(n *matcher.Node, counts *OperationCounts) {
	switch n.Kind {
	case matcher.KindEps, matcher.KindEmpty, matcher.KindLit:
		counts.Alpha++
	case matcher.KindQuestion:
		counts.Question++
		countNode(n.Left, counts)
	case matcher.KindStar:
		counts.Star++
		countNode(n.Left, counts)
	case matcher.KindConcat:
		counts.Concat++
		countNode(n.Left, counts)
		countNode(n.Right, counts)
	case matcher.KindOr:
		counts.Or++
		countNode(n.Left, counts)
		countNode(n.Right, counts)
	case matcher.KindAnd:
		counts.And++
		countNode(n.Left, counts)
		countNode(n.Right, counts)
	}
}

// String renders OperationCounts the way the CLIs print a per-operator
// cost breakdown.
func (c OperationCounts) String() string {
	return "alpha=" + strconv.Itoa(c.Alpha) +
		" ?=" + strconv.Itoa(c.Question) +
		" *=" + strconv.Itoa(c.Star) +
		" concat=" + strconv.Itoa(c.Concat) +
		" +=" + strconv.Itoa(c.Or) +
		" &=" + strconv.Itoa(c.And)
}
