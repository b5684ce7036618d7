package dc

import "math/rand"

// SolveRandomized finds a regular expression consistent with pos and neg
// using the randomised-sampling variant (spec §4.6): instead of a
// deterministic mid-split, it repeatedly samples an engine-sized window
// (halving the window on a not-found result) and partitions the residual
// by whether the sampled solution already covers it, grounded on the
// reference implementation's randSplit (rei_dc.cpp).
//
// Two calls with identical cfg.Seed, cfg.Window, cfg.Cost, pos and neg
// sample identical windows and so return identical REs; package rand's
// generator is seeded once per call and threaded through every recursive
// sample, not reseeded per attempt, matching the reference implementation's
// single process-lifetime generator.
func SolveRandomized(cfg Config, pos, neg []string) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}
	s := &randomSolver{
		cfg:  cfg,
		memo: newMemo(cfg.MemoSize),
		rng:  rand.New(rand.NewSource(int64(cfg.Seed))),
	}
	re, err := s.randSplit(pos, neg)
	if err != nil {
		return Result{}, err
	}
	return Result{RE: re, Profile: s.profile}, nil
}

type randomSolver struct {
	cfg     Config
	memo    *memo
	profile Profile
	rng     *rand.Rand
}

func (s *randomSolver) runEngine(pos, neg []string) (string, bool, error) {
	res, err := runEngine(s.cfg, pos, neg)
	if err != nil {
		return "", false, err
	}
	return res.RE, res.Found, nil
}

func (s *randomSolver) sample(input []string, n int) []string {
	if n >= len(input) {
		return append([]string(nil), input...)
	}
	shuffled := append([]string(nil), input...)
	s.rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
	return shuffled[:n]
}

// sampleWindow picks win/2 positives and fills the rest of the window
// (win - win/2) with negatives, taking all of one side and filling the
// deficit from the other when that side is no larger than win/2, per the
// reference implementation's balancing rule.
func (s *randomSolver) sampleWindow(pos, neg []string, win int) ([]string, []string) {
	if len(pos)+len(neg) <= win {
		return pos, neg
	}
	half := win / 2
	switch {
	case len(pos) <= half:
		p1 := pos
		n1 := s.sample(neg, win-len(p1))
		return p1, n1
	case len(neg) <= half:
		n1 := neg
		p1 := s.sample(pos, win-len(n1))
		return p1, n1
	default:
		p1 := s.sample(pos, half)
		n1 := s.sample(neg, win-len(p1))
		return p1, n1
	}
}

func (s *randomSolver) randSplit(pos, neg []string) (string, error) {
	s.profile.enter()
	defer s.profile.exit()

	if re, ok := s.memo.get(pos, neg); ok {
		return re, nil
	}

	var r11 string
	win := s.cfg.Window
	for {
		p1, n1 := s.sampleWindow(pos, neg, win)
		re, found, err := s.runEngine(p1, n1)
		if err != nil {
			return "", err
		}
		if found {
			r11 = re
			break
		}
		win /= 2
		if win <= 0 {
			win = 1
		}
	}

	c11, err := compile(r11)
	if err != nil {
		return "", err
	}
	r11FilterOnP := matchAll(c11, pos)
	r11FilterOnN := matchAll(c11, neg)

	p2 := selectInverse(pos, r11FilterOnP)
	n2 := selectWords(neg, r11FilterOnN)
	p1 := subtract(pos, p2)
	n1 := subtract(neg, n2)

	if len(p2) == 0 && len(n2) == 0 {
		s.memo.put(pos, neg, r11)
		return r11, nil
	}

	var left string
	if len(n2) == 0 {
		left = r11
	} else {
		r12, err := s.randSplit(p1, n2)
		if err != nil {
			return "", err
		}
		c12, err := compile(r12)
		if err != nil {
			return "", err
		}
		if matchesNone(c12, n1) {
			left = r12
		} else {
			left = "(" + r11 + ")&(" + r12 + ")"
			cLeft, err := compile(left)
			if err != nil {
				return "", err
			}
			if matchesAll(cLeft, p2) {
				s.memo.put(pos, neg, left)
				return left, nil
			}
		}
	}

	r21, err := s.randSplit(p2, n1)
	if err != nil {
		return "", err
	}
	c21, err := compile(r21)
	if err != nil {
		return "", err
	}
	if matchesAll(c21, p1) && matchesNone(c21, n2) {
		s.memo.put(pos, neg, r21)
		return r21, nil
	}

	var right string
	if matchesNone(c21, n2) {
		right = r21
	} else {
		r22, err := s.randSplit(p2, n2)
		if err != nil {
			return "", err
		}
		c22, err := compile(r22)
		if err != nil {
			return "", err
		}
		if matchesNone(c22, n1) {
			right = r22
		} else {
			right = "(" + r21 + ")&(" + r22 + ")"
			cRight, err := compile(right)
			if err != nil {
				return "", err
			}
			if matchesAll(cRight, p1) {
				s.memo.put(pos, neg, right)
				return right, nil
			}
		}
	}

	composed := "(" + left + ")+(" + right + ")"
	s.memo.put(pos, neg, composed)
	return composed, nil
}
