// Package csops implements the five characteristic-set operators the
// enumeration engine composes: question, star, concat, or, and. Each is a
// pure function from child bitmasks to a parent bitmask, using the guide
// table to resolve which infix-closure elements a compound expression
// accepts without ever touching a string.
//
// Bit 0 always means ε; it is handled explicitly in every operator because
// ε has no non-empty prefix/suffix split to look up in the guide table.
package csops

import (
	"github.com/bitshape/regexinfer/bitset"
	"github.com/bitshape/regexinfer/guide"
	"github.com/bitshape/regexinfer/ic"
)

// Question returns the characteristic set of r?, given the CS of r: r?
// accepts ε plus whatever r accepts.
func Question(c bitset.Set) bitset.Set {
	return c.Or(bitset.Bit(0))
}

// compoundStart is the first IC index past ε and the single-character
// alphabet; only elements at or beyond this index can have guide-table
// splits.
func compoundStart(closure *ic.IC) int {
	return 1 + closure.AlphabetSize()
}

// Star returns the characteristic set of r*, given the CS of r.
//
// It starts from c|ε and sweeps increasing IC index, setting bit k whenever
// some split of ic[k] has a prefix already accepted and a suffix already
// accepted by the set built so far. Because the sweep is over increasing
// index and re-reads its own result, a bit set by an earlier iteration can
// satisfy a later split — this is what realises the r* = ε | r | rr | ...
// fixed point in one pass.
func Star(c bitset.Set, closure *ic.IC, table guide.Table) bitset.Set {
	result := c.Or(bitset.Bit(0))
	for k := compoundStart(closure); k < closure.Len(); k++ {
		for _, split := range table[k] {
			if split.Prefix.Intersects(result) && split.Suffix.Intersects(result) {
				result.SetBit(k)
				break
			}
		}
	}
	return result
}

// Concat returns the characteristic sets of both l·r and r·l, since
// concatenation is non-commutative and the engine needs both orderings
// from a single pair of operands.
//
// ic[k] ∈ L(a·b) iff some split of ic[k] has its prefix in L(a) and its
// suffix in L(b); both prefix and suffix are themselves IC elements because
// IC is infix-closed, so the guide table's per-split masks can be tested
// directly against a and b's characteristic sets.
func Concat(l, r bitset.Set, closure *ic.IC, table guide.Table) (lr, rl bitset.Set) {
	var epsContribution bitset.Set
	if l.TestBit(0) {
		epsContribution = epsContribution.Or(r)
	}
	if r.TestBit(0) {
		epsContribution = epsContribution.Or(l)
	}
	lr = epsContribution
	rl = epsContribution

	for k := compoundStart(closure); k < closure.Len(); k++ {
		for _, split := range table[k] {
			if split.Prefix.Intersects(l) && split.Suffix.Intersects(r) {
				lr.SetBit(k)
			}
			if split.Prefix.Intersects(r) && split.Suffix.Intersects(l) {
				rl.SetBit(k)
			}
		}
	}
	return lr, rl
}

// Or returns the characteristic set of l+r (alternation): the union of
// what each side accepts.
func Or(l, r bitset.Set) bitset.Set {
	return l.Or(r)
}

// And returns the characteristic set of l&r (intersection): accepted only
// where both sides agree.
func And(l, r bitset.Set) bitset.Set {
	return l.And(r)
}
