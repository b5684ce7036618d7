// Package cache implements the enumeration engine's cache arena: a dense,
// append-only array of characteristic sets together with the back-references
// needed to reconstruct whichever one first separates the examples, a
// deduplicating visited set, and the on-the-fly degraded mode entered when
// the arena fills up.
package cache

import "github.com/bitshape/regexinfer/bitset"

// BackRef records how the characteristic set at a given arena index was
// built: which operator produced it and from which earlier indices.
// Reconstruction (package reconstruct) walks these back-references; they
// always point to strictly earlier arena indices, so the walk is acyclic by
// construction.
type BackRef struct {
	Left  int
	Right int
	Op    Op
}

// Arena is the single enumeration call's cache: characteristic sets,
// parallel back-references, and the visited set used to deduplicate CSes
// while capacity allows.
//
// Arena is owned by exactly one enumeration call (package engine); nothing
// about it is safe to share across calls or goroutines.
type Arena struct {
	cs       []bitset.Set
	backRefs []BackRef
	visited  map[bitset.Set]struct{}

	capacity int
	onTheFly bool
	allREs   uint64
}

// New creates an arena that switches to on-the-fly mode once it holds
// capacity entries. capacity bounds memory, not correctness: insertion past
// capacity still succeeds for the one entry that terminates the search (see
// InsertAndCheck), it just stops being deduplicated.
func New(capacity int) *Arena {
	return &Arena{
		capacity: capacity,
		visited:  make(map[bitset.Set]struct{}, capacity),
	}
}

// Len returns the number of stored entries.
func (a *Arena) Len() int { return len(a.cs) }

// CS returns the characteristic set at idx.
func (a *Arena) CS(idx int) bitset.Set { return a.cs[idx] }

// BackRefAt returns the back-reference recorded for idx.
func (a *Arena) BackRefAt(idx int) BackRef { return a.backRefs[idx] }

// OnTheFly reports whether the arena has switched to the degraded mode
// where deduplication and storage of non-terminal results are suspended.
func (a *Arena) OnTheFly() bool { return a.onTheFly }

// AllREs returns the running count of every CS considered, stored or not.
func (a *Arena) AllREs() uint64 { return a.allREs }

// SeedAlpha appends one entry per alphabet letter, in IC order, each with
// BackRef{Left: icIndex, Right: NoRef, Op: OpAlpha}. It returns the arena
// index range [0, lastIdx) those entries occupy.
func (a *Arena) SeedAlpha(letters []bitset.Set, icIndices []int) (lastIdx int) {
	for i, cs := range letters {
		a.cs = append(a.cs, cs)
		a.backRefs = append(a.backRefs, BackRef{Left: icIndices[i], Right: NoRef, Op: OpAlpha})
		a.visited[cs] = struct{}{}
	}
	return len(a.cs)
}

func consistent(cs, posBits, negBits bitset.Set) bool {
	return cs.And(posBits).Equal(posBits) && cs.And(negBits).IsZero()
}

// InsertAndCheck implements the insertAndCheck algorithm of spec §4.3:
//
//  1. count cs as considered;
//  2. in on-the-fly mode, skip the visited set and skip storing unless cs
//     is the one that terminates the search, so reconstruction still has
//     an index to walk back from;
//  3. otherwise, deduplicate against the visited set;
//  4. on a fresh insert, append to the arena;
//  5. test consistency against posBits/negBits, reporting found/not found;
//  6. flip to on-the-fly mode once the arena reaches capacity.
func (a *Arena) InsertAndCheck(cs bitset.Set, left, right int, op Op, posBits, negBits bitset.Set) (idx int, found bool) {
	a.allREs++

	if a.onTheFly {
		if !consistent(cs, posBits, negBits) {
			return -1, false
		}
		idx = len(a.cs)
		a.cs = append(a.cs, cs)
		a.backRefs = append(a.backRefs, BackRef{Left: left, Right: right, Op: op})
		return idx, true
	}

	if _, dup := a.visited[cs]; dup {
		return -1, false
	}
	a.visited[cs] = struct{}{}

	idx = len(a.cs)
	a.cs = append(a.cs, cs)
	a.backRefs = append(a.backRefs, BackRef{Left: left, Right: right, Op: op})

	if consistent(cs, posBits, negBits) {
		return idx, true
	}

	if len(a.cs) >= a.capacity {
		a.onTheFly = true
	}

	return idx, false
}
