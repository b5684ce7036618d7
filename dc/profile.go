package dc

// Profile tallies how many recursive Solve/SolveRandomized calls a run made
// and how deep the recursion went, mirroring the reference implementation's
// RecursiveProfileInfo (rei_dc.hpp).
type Profile struct {
	CallCount  int
	MaxDepth   int
	currentDepth int
}

// enter records entry into a recursive call: bumps the call count and the
// current depth, and extends MaxDepth if the new depth is a new high.
func (p *Profile) enter() {
	p.CallCount++
	p.currentDepth++
	if p.currentDepth > p.MaxDepth {
		p.MaxDepth = p.currentDepth
	}
}

// exit records return from a recursive call.
func (p *Profile) exit() {
	p.currentDepth--
}
