// Package ic builds the infix closure of a set of example words: the set
// of every contiguous substring of every word, including the empty string,
// shortlex-ordered (by length, then lexicographically).
//
// The infix closure is the universe the characteristic-set bitmasks range
// over: bit k of a characteristic set is set iff ic.Words[k] is accepted by
// the associated regular expression. Every operator in package csops relies
// on the closure property that any split of any IC element is itself an IC
// element (see package guide).
package ic

import (
	"sort"

	"github.com/bitshape/regexinfer/bitset"
)

// IC is the shortlex-ordered infix closure of a set of words, together with
// an index from word to its position in the closure.
type IC struct {
	// Words is the shortlex-ordered closure; Words[0] is always "".
	Words []string

	index map[string]int
}

// Build computes the infix closure of pos and neg combined.
//
// Returns a *TooLargeError if the closure exceeds bitset.Width elements.
func Build(pos, neg []string) (*IC, error) {
	seen := make(map[string]struct{})
	seen[""] = struct{}{}

	addSubstrings := func(w string) {
		for i := 0; i <= len(w); i++ {
			for j := i; j <= len(w); j++ {
				seen[w[i:j]] = struct{}{}
			}
		}
	}
	for _, w := range pos {
		addSubstrings(w)
	}
	for _, w := range neg {
		addSubstrings(w)
	}

	if len(seen) > bitset.Width {
		return nil, &TooLargeError{Size: len(seen), Limit: bitset.Width}
	}

	words := make([]string, 0, len(seen))
	for w := range seen {
		words = append(words, w)
	}
	sort.Slice(words, func(i, j int) bool {
		if len(words[i]) != len(words[j]) {
			return len(words[i]) < len(words[j])
		}
		return words[i] < words[j]
	})

	index := make(map[string]int, len(words))
	for i, w := range words {
		index[w] = i
	}

	return &IC{Words: words, index: index}, nil
}

// Len returns the number of elements in the closure.
func (c *IC) Len() int {
	return len(c.Words)
}

// Index returns the position of w in the closure, or (-1, false) if w is
// not a substring of any input word.
func (c *IC) Index(w string) (int, bool) {
	i, ok := c.index[w]
	if !ok {
		return -1, false
	}
	return i, true
}

// AlphabetSize returns |Σ|, the number of length-1 elements in the closure.
// Because Words is shortlex-ordered, the alphabet is always the contiguous
// run Words[1 : 1+AlphabetSize()].
func (c *IC) AlphabetSize() int {
	n := 0
	for _, w := range c.Words {
		if len(w) == 1 {
			n++
		}
	}
	return n
}

// Mask ORs together the bit for every word in ws. Words not present in the
// closure are silently skipped (this only happens for words the caller
// never passed to Build, which should not occur for pos/neg callers).
func (c *IC) Mask(ws []string) bitset.Set {
	var m bitset.Set
	for _, w := range ws {
		if i, ok := c.index[w]; ok {
			m.SetBit(i)
		}
	}
	return m
}
