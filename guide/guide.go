// Package guide builds the guide table: a precomputed decomposition index
// over an infix closure that lets the CS operators in package csops
// evaluate concatenation and star as bitmask operations instead of string
// splitting.
package guide

import (
	"github.com/bitshape/regexinfer/bitset"
	"github.com/bitshape/regexinfer/ic"
)

// Split is one non-empty prefix/suffix decomposition of an infix-closure
// element. Both masks carry exactly one set bit: the IC index of the
// prefix, respectively the suffix.
type Split struct {
	Prefix bitset.Set
	Suffix bitset.Set
}

// Table holds, for every IC index k, the list of splits of ic.Words[k].
// Rows for length-0 and length-1 elements are always empty.
type Table [][]Split

// Build computes the guide table for closure.
//
// For every element of length >= 2, every way to cut it into a non-empty
// prefix and non-empty suffix is recorded. Both the prefix and the suffix
// are themselves elements of closure, because closure is infix-closed.
func Build(closure *ic.IC) Table {
	table := make(Table, closure.Len())

	for k, w := range closure.Words {
		if len(w) < 2 {
			continue
		}
		splits := make([]Split, 0, len(w)-1)
		for i := 1; i < len(w); i++ {
			prefixIdx, ok := closure.Index(w[:i])
			if !ok {
				panic("guide: prefix not found in infix-closed set: " + w[:i])
			}
			suffixIdx, ok := closure.Index(w[i:])
			if !ok {
				panic("guide: suffix not found in infix-closed set: " + w[i:])
			}
			splits = append(splits, Split{
				Prefix: bitset.Bit(prefixIdx),
				Suffix: bitset.Bit(suffixIdx),
			})
		}
		table[k] = splits
	}

	return table
}
