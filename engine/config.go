// Package engine implements the bottom-up, cost-ordered enumeration search:
// given disjoint positive and negative example sets, it grows candidate
// regular expressions in non-decreasing cost order over the characteristic-
// set representation (packages ic, guide, csops, costindex, cache) until one
// separates the examples, degrading to an on-the-fly mode if the cache arena
// fills before that happens.
package engine

import (
	"fmt"
	"time"

	"github.com/bitshape/regexinfer/cost"
)

// Config bounds a single enumeration call.
type Config struct {
	// Cost is the per-operator cost vector the search enumerates against.
	Cost cost.Function

	// MaxCost is the highest RE cost the search will try before giving up.
	// On-the-fly mode (see package cache) is allowed exactly one cost cycle
	// past this bound, so the search can still report a best-effort result
	// built from data that was current when the arena filled.
	MaxCost int

	// ArenaCapacity is the cache.Arena capacity threshold past which the
	// search degrades to on-the-fly mode.
	ArenaCapacity int

	// Deadline, if non-zero, is checked once per cost cycle; the search
	// reports "not_found" rather than running over it.
	Deadline time.Time
}

// DefaultConfig returns the engine's default bounds: unit cost for every
// operator, a generous cost ceiling, and a one-million-entry arena.
func DefaultConfig() Config {
	return Config{
		Cost:          cost.Function{Alpha: 1, Question: 1, Star: 1, Concat: 1, Or: 1, And: 1},
		MaxCost:       500,
		ArenaCapacity: 1 << 20,
	}
}

// Error reports an out-of-range Config field.
type Error struct {
	Field string
	Value int
}

func (e *Error) Error() string {
	return fmt.Sprintf("engine config field %s = %d is out of range", e.Field, e.Value)
}

// Validate checks Cost via cost.Function.Validate and the engine's own
// bounds.
func (c Config) Validate() error {
	if err := c.Cost.Validate(); err != nil {
		return err
	}
	if c.MaxCost <= 0 {
		return &Error{Field: "MaxCost", Value: c.MaxCost}
	}
	if c.ArenaCapacity <= 0 {
		return &Error{Field: "ArenaCapacity", Value: c.ArenaCapacity}
	}
	return nil
}
