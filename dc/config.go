// Package dc implements the divide-and-conquer orchestrator that wraps
// package engine for example sets too large to enumerate directly: it
// recursively splits pos/neg, solves the pieces with a fresh engine call
// each, and composes the partial regular expressions under + and &, per
// spec §4.6.
package dc

import (
	"fmt"
	"time"

	"github.com/bitshape/regexinfer/cost"
)

// Config bounds one Solve or SolveRandomized call.
type Config struct {
	// Window is the largest |pos|+|neg| the engine is asked to solve
	// directly; larger example sets are split first.
	Window int

	// Cost is the per-operator cost vector passed to every engine call.
	// Cost.And is not exercised directly by the CLI grammar (spec §6 notes
	// the DC variant infers "&" equal to "+"); callers that want a
	// distinct intersection cost may still set it, since Solve always
	// forwards the full vector to package engine.
	Cost cost.Function

	// MaxCost bounds every engine sub-call's search.
	MaxCost int

	// ArenaCapacity bounds every engine sub-call's cache arena. Zero means
	// engine.DefaultConfig's capacity.
	ArenaCapacity int

	// Deadline, if non-zero, is forwarded to every engine sub-call, per
	// spec §5's coarse cancellation model: an engine call past it reports
	// not-found, which Solve and SolveRandomized handle like any other
	// not-found result. The recursion itself does not check the deadline.
	Deadline time.Time

	// MemoSize is the capacity of the (pos, neg) -> RE memoization cache.
	// Zero disables memoization.
	MemoSize int

	// Seed drives SolveRandomized's sampling; two calls with the same
	// Seed, Window, Cost, pos and neg sample identical windows.
	Seed uint64
}

// DefaultConfig returns dc's default bounds: a window of 12 examples (the
// size used in spec §8 scenario 6), unit operator costs, and a 4096-entry
// memoization cache.
func DefaultConfig() Config {
	return Config{
		Window:        12,
		Cost:          cost.Function{Alpha: 1, Question: 1, Star: 1, Concat: 1, Or: 1, And: 1},
		MaxCost:       500,
		ArenaCapacity: 1 << 20,
		MemoSize:      4096,
	}
}

// Error reports an out-of-range Config field.
type Error struct {
	Field string
	Value int
}

func (e *Error) Error() string {
	return fmt.Sprintf("dc config field %s = %d is out of range", e.Field, e.Value)
}

// Validate checks Cost via cost.Function.Validate and dc's own bounds.
func (c Config) Validate() error {
	if err := c.Cost.Validate(); err != nil {
		return err
	}
	if c.Window <= 0 {
		return &Error{Field: "Window", Value: c.Window}
	}
	if c.MaxCost <= 0 {
		return &Error{Field: "MaxCost", Value: c.MaxCost}
	}
	if c.MemoSize < 0 {
		return &Error{Field: "MemoSize", Value: c.MemoSize}
	}
	return nil
}
