package dc

import (
	"github.com/bitshape/regexinfer/engine"
)

// Result is what one Solve or SolveRandomized call produces: the regular
// expression found and recursion diagnostics.
type Result struct {
	RE      string
	Profile Profile
}

// Solve finds a regular expression consistent with pos and neg using the
// deterministic mid-split variant (spec §4.6): below cfg.Window it calls
// package engine directly; above it, it splits pos and neg at their
// midpoints and composes a left-then-right solution under + and &,
// grounded on the reference implementation's detSplit (dc_paresy.cpp).
func Solve(cfg Config, pos, neg []string) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}
	s := &solver{cfg: cfg, memo: newMemo(cfg.MemoSize)}
	re, err := s.detSplit(pos, neg)
	if err != nil {
		return Result{}, err
	}
	return Result{RE: re, Profile: s.profile}, nil
}

type solver struct {
	cfg     Config
	memo    *memo
	profile Profile
}

func (s *solver) runEngine(pos, neg []string) (engine.Result, error) {
	return runEngine(s.cfg, pos, neg)
}

// runEngine translates a dc.Config into an engine.Config and runs one
// enumeration call; it is the single point both Solve and SolveRandomized
// route through.
func runEngine(cfg Config, pos, neg []string) (engine.Result, error) {
	capacity := cfg.ArenaCapacity
	if capacity <= 0 {
		capacity = engine.DefaultConfig().ArenaCapacity
	}
	ecfg := engine.Config{
		Cost:          cfg.Cost,
		MaxCost:       cfg.MaxCost,
		ArenaCapacity: capacity,
		Deadline:      cfg.Deadline,
	}
	return engine.Run(ecfg, pos, neg)
}

// detSplit is the deterministic variant's recursive core; see package doc.
func (s *solver) detSplit(pos, neg []string) (string, error) {
	s.profile.enter()
	defer s.profile.exit()

	if re, ok := s.memo.get(pos, neg); ok {
		return re, nil
	}

	if len(pos)+len(neg) <= s.cfg.Window {
		res, err := s.runEngine(pos, neg)
		if err != nil {
			return "", err
		}
		if res.Found {
			s.memo.put(pos, neg, res.RE)
			return res.RE, nil
		}
	}

	p1, p2 := midSplit(pos)
	n1, n2 := midSplit(neg)

	r11, err := s.detSplit(p1, n1)
	if err != nil {
		return "", err
	}
	c11, err := compile(r11)
	if err != nil {
		return "", err
	}

	r11FilterOnN2 := matchAll(c11, n2)
	r11AcceptsP2 := matchesAll(c11, p2)
	r11RejectsN2 := allFalse(r11FilterOnN2)

	if r11AcceptsP2 && r11RejectsN2 {
		s.memo.put(pos, neg, r11)
		return r11, nil
	}

	var left string
	if r11RejectsN2 {
		left = r11
	} else {
		n2Andr11 := selectWords(n2, r11FilterOnN2)
		r12, err := s.detSplit(p1, n2Andr11)
		if err != nil {
			return "", err
		}
		c12, err := compile(r12)
		if err != nil {
			return "", err
		}
		negMinusN2Andr11 := subtract(neg, n2Andr11)
		if matchesNone(c12, negMinusN2Andr11) {
			left = r12
		} else {
			left = "(" + r11 + ")&(" + r12 + ")"
		}

		cLeft, err := compile(left)
		if err != nil {
			return "", err
		}
		if matchesAll(cLeft, p2) {
			s.memo.put(pos, neg, left)
			return left, nil
		}
	}

	cLeft, err := compile(left)
	if err != nil {
		return "", err
	}
	leftFilterOnP2 := matchAll(cLeft, p2)
	p2MinusLeft := selectInverse(p2, leftFilterOnP2)
	posMinusP2MinusLeft := subtract(pos, p2MinusLeft)

	r21, err := s.detSplit(p2MinusLeft, n1)
	if err != nil {
		return "", err
	}
	c21, err := compile(r21)
	if err != nil {
		return "", err
	}

	r21FilterOnN2 := matchAll(c21, n2)
	r21AcceptsP1 := matchesAll(c21, posMinusP2MinusLeft)
	r21RejectsN2 := allFalse(r21FilterOnN2)

	if r21AcceptsP1 && r21RejectsN2 {
		s.memo.put(pos, neg, r21)
		return r21, nil
	}

	var right string
	if r21RejectsN2 {
		right = r21
	} else {
		n2Andr21 := selectWords(n2, r21FilterOnN2)
		r22, err := s.detSplit(p2MinusLeft, n2Andr21)
		if err != nil {
			return "", err
		}
		c22, err := compile(r22)
		if err != nil {
			return "", err
		}
		negMinusN2Andr21 := subtract(neg, n2Andr21)
		if matchesNone(c22, negMinusN2Andr21) {
			right = r22
		} else {
			right = "(" + r21 + ")&(" + r22 + ")"
		}

		cRight, err := compile(right)
		if err != nil {
			return "", err
		}
		if matchesAll(cRight, posMinusP2MinusLeft) {
			s.memo.put(pos, neg, right)
			return right, nil
		}
	}

	composed := "(" + left + ")+(" + right + ")"
	s.memo.put(pos, neg, composed)
	return composed, nil
}

func allFalse(bs []bool) bool {
	for _, b := range bs {
		if b {
			return false
		}
	}
	return true
}
