package engine

import (
	"time"

	"github.com/bitshape/regexinfer/bitset"
	"github.com/bitshape/regexinfer/cache"
	"github.com/bitshape/regexinfer/costindex"
	"github.com/bitshape/regexinfer/csops"
	"github.com/bitshape/regexinfer/guide"
	"github.com/bitshape/regexinfer/ic"
	"github.com/bitshape/regexinfer/reconstruct"
)

// Result is what one Run call produces: the cheapest regular expression
// found (or a sentinel when none was), its cost, and search diagnostics.
type Result struct {
	RE      string
	Cost    int
	AllREs  uint64
	ICSize  int
	Counts  reconstruct.OperationCounts
	Found   bool
}

const notFoundRE = "not_found"

// Run searches for the cheapest regular expression that accepts every word
// in pos and rejects every word in neg, per spec §4.4. pos and neg must be
// disjoint; Run does not check this itself.
func Run(cfg Config, pos, neg []string) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}

	switch {
	case len(pos) == 0:
		return Result{RE: "Empty", Found: true}, nil
	case len(pos) == 1 && pos[0] == "":
		return Result{RE: "eps", Found: true}, nil
	case len(pos) == 1 && len(pos[0]) == 1:
		return Result{RE: pos[0], Cost: cfg.Cost.Alpha, Found: true}, nil
	}

	closure, err := ic.Build(pos, neg)
	if err != nil {
		return Result{}, err
	}
	table := guide.Build(closure)
	posBits := closure.Mask(pos)
	negBits := closure.Mask(neg)

	arena := cache.New(cfg.ArenaCapacity)
	costTable := costindex.New(cfg.MaxCost)

	alphaSize := closure.AlphabetSize()
	letters := make([]bitset.Set, alphaSize)
	icIdx := make([]int, alphaSize)
	for i := 0; i < alphaSize; i++ {
		idx := 1 + i
		letters[i] = bitset.Bit(idx)
		icIdx[i] = idx
	}
	lastIdx := arena.SeedAlpha(letters, icIdx)
	costTable.SetSeed(cfg.Cost.Alpha, lastIdx)

	e := &enumerator{
		cfg:        cfg,
		closure:    closure,
		table:      table,
		arena:      arena,
		costTable:  costTable,
		posBits:    posBits,
		negBits:    negBits,
		useQOverOr: cfg.Cost.Alpha+cfg.Cost.Or >= cfg.Cost.Question,
	}

	if cfg.MaxCost <= cfg.Cost.Alpha {
		return e.notFound(cfg.MaxCost), nil
	}

	shortageCost := -1
	for cost := cfg.Cost.Alpha + 1; ; cost++ {
		if e.deadlineExceeded() {
			return e.notFound(cfg.MaxCost), nil
		}

		if idx, found := e.runCycle(cost); found {
			re := reconstruct.Build(arena, idx, closure)
			return Result{
				RE:     re,
				Cost:   cost,
				AllREs: arena.AllREs(),
				ICSize: closure.Len(),
				Counts: reconstruct.Count(arena, idx),
				Found:  true,
			}, nil
		}

		if arena.OnTheFly() {
			if shortageCost < 0 {
				shortageCost = cost
			} else if cost > shortageCost {
				return e.notFound(cfg.MaxCost), nil
			}
			continue
		}

		if cost >= cfg.MaxCost {
			return e.notFound(cfg.MaxCost), nil
		}
	}
}

type enumerator struct {
	cfg        Config
	closure    *ic.IC
	table      guide.Table
	arena      *cache.Arena
	costTable  *costindex.Table
	posBits    bitset.Set
	negBits    bitset.Set
	useQOverOr bool
}

func (e *enumerator) deadlineExceeded() bool {
	return !e.cfg.Deadline.IsZero() && time.Now().After(e.cfg.Deadline)
}

func (e *enumerator) notFound(maxCost int) Result {
	return Result{RE: notFoundRE, Cost: maxCost, AllREs: e.arena.AllREs(), ICSize: e.closure.Len()}
}

// runCycle runs the five operators, in fixed order, at the given cost. It
// returns the arena index of a consistent CS as soon as one of them finds
// one.
func (e *enumerator) runCycle(cost int) (idx int, found bool) {
	if idx, found := e.question(cost); found {
		return idx, true
	}
	if idx, found := e.star(cost); found {
		return idx, true
	}
	if idx, found := e.concat(cost); found {
		return idx, true
	}
	if idx, found := e.or(cost); found {
		return idx, true
	}
	if idx, found := e.and(cost); found {
		return idx, true
	}
	return -1, false
}

// question considers r? at this cost only when the ? operator is at least
// as cheap as simulating it with ε+r under or (the useQOverOr flag, spec
// §4.4); otherwise it never runs, leaving its band empty so or's ε+r
// emission (see (*enumerator).or) covers the same ground.
func (e *enumerator) question(cost int) (idx int, found bool) {
	if e.useQOverOr && cost >= e.cfg.Cost.Alpha+e.cfg.Cost.Question {
		inputCost := cost - e.cfg.Cost.Question
		start, end := e.costTable.BinaryBand(inputCost)
		for i := start; i < end; i++ {
			c := e.arena.CS(i)
			if c.TestBit(0) {
				continue
			}
			newCS := csops.Question(c)
			if idx, ok := e.arena.InsertAndCheck(newCS, i, cache.NoRef, cache.OpQuestion, e.posBits, e.negBits); ok {
				return idx, true
			}
		}
	}
	e.costTable.SetEnd(cost, costindex.Question, e.arena.Len())
	return -1, false
}

func (e *enumerator) star(cost int) (idx int, found bool) {
	inputCost := cost - e.cfg.Cost.Star
	start, end := e.costTable.BinaryBand(inputCost)
	for i := start; i < end; i++ {
		c := e.arena.CS(i)
		newCS := csops.Star(c, e.closure, e.table)
		if idx, ok := e.arena.InsertAndCheck(newCS, i, cache.NoRef, cache.OpStar, e.posBits, e.negBits); ok {
			return idx, true
		}
	}
	e.costTable.SetEnd(cost, costindex.Star, e.arena.Len())
	return -1, false
}

func (e *enumerator) concat(cost int) (idx int, found bool) {
	budget := cost - e.cfg.Cost.Concat
	for i := e.cfg.Cost.Alpha; 2*i <= budget; i++ {
		j := budget - i
		lStart, lEnd := e.costTable.FullBand(i)
		rStart, rEnd := e.costTable.FullBand(j)
		for li := lStart; li < lEnd; li++ {
			l := e.arena.CS(li)
			for ri := rStart; ri < rEnd; ri++ {
				r := e.arena.CS(ri)
				lr, rl := csops.Concat(l, r, e.closure, e.table)
				if idx, ok := e.arena.InsertAndCheck(lr, li, ri, cache.OpConcat, e.posBits, e.negBits); ok {
					return idx, true
				}
				if idx, ok := e.arena.InsertAndCheck(rl, ri, li, cache.OpConcat, e.posBits, e.negBits); ok {
					return idx, true
				}
			}
		}
	}
	e.costTable.SetEnd(cost, costindex.Concat, e.arena.Len())
	return -1, false
}

// or additionally emits ε+r whenever question never runs (useQOverOr is
// false), so every RE that ? would have produced is still reachable, just
// through or instead (spec §4.4).
func (e *enumerator) or(cost int) (idx int, found bool) {
	if !e.useQOverOr {
		rCost := cost - e.cfg.Cost.Alpha - e.cfg.Cost.Or
		start, end := e.costTable.FullBand(rCost)
		for i := start; i < end; i++ {
			r := e.arena.CS(i)
			newCS := csops.Question(r)
			if idx, ok := e.arena.InsertAndCheck(newCS, cache.EpsRef, i, cache.OpOr, e.posBits, e.negBits); ok {
				return idx, true
			}
		}
	}

	budget := cost - e.cfg.Cost.Or
	for i := e.cfg.Cost.Alpha; 2*i <= budget; i++ {
		j := budget - i
		lStart, lEnd := e.costTable.FullBand(i)
		rStart, rEnd := e.costTable.FullBand(j)
		for li := lStart; li < lEnd; li++ {
			l := e.arena.CS(li)
			for ri := rStart; ri < rEnd; ri++ {
				r := e.arena.CS(ri)
				newCS := csops.Or(l, r)
				if idx, ok := e.arena.InsertAndCheck(newCS, li, ri, cache.OpOr, e.posBits, e.negBits); ok {
					return idx, true
				}
			}
		}
	}
	e.costTable.SetEnd(cost, costindex.Or, e.arena.Len())
	return -1, false
}

func (e *enumerator) and(cost int) (idx int, found bool) {
	budget := cost - e.cfg.Cost.And
	for i := e.cfg.Cost.Alpha; 2*i <= budget; i++ {
		j := budget - i
		lStart, lEnd := e.costTable.FullBand(i)
		rStart, rEnd := e.costTable.FullBand(j)
		for li := lStart; li < lEnd; li++ {
			l := e.arena.CS(li)
			for ri := rStart; ri < rEnd; ri++ {
				r := e.arena.CS(ri)
				newCS := csops.And(l, r)
				if idx, ok := e.arena.InsertAndCheck(newCS, li, ri, cache.OpAnd, e.posBits, e.negBits); ok {
					return idx, true
				}
			}
		}
	}
	e.costTable.SetEnd(cost, costindex.And, e.arena.Len())
	return -1, false
}
