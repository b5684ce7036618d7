package dc

import (
	"errors"
	"fmt"

	"github.com/bitshape/regexinfer/matcher"
)

// ErrParse wraps a matcher.SyntaxError encountered while compiling a
// candidate RE for testing against examples. Per spec §7, this should only
// be reachable from package dc: every RE package engine returns parses by
// construction, so a ParseError here means a composed candidate (under +
// or &) produced an unparseable string, which is a bug in the composition,
// not in engine output.
var ErrParse = errors.New("dc: malformed candidate expression")

// ParseError reports which candidate RE failed to compile and why.
type ParseError struct {
	RE  string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("dc: parsing candidate %q: %v", e.RE, e.Err)
}

func (e *ParseError) Unwrap() error { return ErrParse }

// compiled is a parsed RE plus the literal prefilter built from it, so the
// orchestrator's many repeated match-against-a-candidate calls don't
// re-parse the RE once per word.
type compiled struct {
	node *matcher.Node
	pf   *matcher.Prefilter
}

func compile(re string) (compiled, error) {
	node, err := matcher.Parse(re)
	if err != nil {
		return compiled{}, &ParseError{RE: re, Err: err}
	}
	pf, err := matcher.NewPrefilter(node)
	if err != nil {
		return compiled{}, &ParseError{RE: re, Err: err}
	}
	return compiled{node: node, pf: pf}, nil
}

func (c compiled) matches(w string) bool {
	if !c.pf.MayMatch(w) {
		return false
	}
	return matcher.Matches(c.node, w)
}

// matchAll reports, for each word in words, whether c accepts it, mirroring
// the reference implementation's match(examples, pattern) (dc_paresy.cpp).
func matchAll(c compiled, words []string) []bool {
	res := make([]bool, len(words))
	for i, w := range words {
		res[i] = c.matches(w)
	}
	return res
}

func matchesAll(c compiled, words []string) bool {
	for _, w := range words {
		if !c.matches(w) {
			return false
		}
	}
	return true
}

func matchesNone(c compiled, words []string) bool {
	for _, w := range words {
		if c.matches(w) {
			return false
		}
	}
	return true
}
