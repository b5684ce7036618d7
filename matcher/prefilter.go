// Prefilter wraps the mandatory literals ExtractLiterals finds in an
// Aho-Corasick automaton per literal, letting the matcher reject a
// candidate word in one linear scan before paying for the backtracking
// search — the same "literal engine bypass" idea the teacher's meta.Engine
// uses ahocorasick.Automaton for, applied here as a cheap multi-literal
// presence test rather than a full match strategy.
package matcher

import "github.com/coregx/ahocorasick"

// Prefilter reports whether a word could possibly be accepted by the regex
// it was built from, based on substrings that must be present.
type Prefilter struct {
	automata []*ahocorasick.Automaton
}

// NewPrefilter builds a Prefilter from node's mandatory literals.
func NewPrefilter(node *Node) (*Prefilter, error) {
	p := &Prefilter{}
	for _, lit := range ExtractLiterals(node) {
		if lit == "" {
			continue
		}
		builder := ahocorasick.NewBuilder()
		builder.AddPattern([]byte(lit))
		automaton, err := builder.Build()
		if err != nil {
			return nil, err
		}
		p.automata = append(p.automata, automaton)
	}
	return p, nil
}

// MayMatch reports whether s could match. false is certain rejection; true
// means the caller still has to run Matches to know for sure.
func (p *Prefilter) MayMatch(s string) bool {
	if p == nil {
		return true
	}
	haystack := []byte(s)
	for _, automaton := range p.automata {
		if !automaton.IsMatch(haystack) {
			return false
		}
	}
	return true
}
