// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Strategy, options, result and sentinel errors for the dual-agent partitioner.

package partition

import (
	"errors"
	"fmt"
	"runtime"
	"strings"

	"github.com/katalvlaran/valvenet/budget"
)

// Sentinel errors.
var (
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("partition: invalid option supplied")

	// ErrUnknownStrategy is returned by ParseStrategy for unrecognised names.
	ErrUnknownStrategy = errors.New("partition: unknown strategy")
)

// Strategy selects how splits of the active set are explored.
type Strategy int

const (
	// Auto picks Exact when the active set has at most ExactLimit nodes, Improve otherwise.
	Auto Strategy = iota
	// Exact evaluates every split from one shared subset table.
	// Optimal, 2^(k-1) splits, 2^k table entries; at most budget.MaxSubsetActive nodes.
	Exact
	// Improve runs seeded random restarts of single-element moves between the
	// halves, keeping any split that does not lower the summed score.
	// Approximate: bounded by Restarts·Iterations evaluations.
	Improve
)

// String implements fmt.Stringer.
func (s Strategy) String() string {
	switch s {
	case Auto:
		return "auto"
	case Exact:
		return "exact"
	case Improve:
		return "improve"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy maps "auto", "exact" or "improve" (case-insensitive) to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "auto":
		return Auto, nil
	case "exact":
		return Exact, nil
	case "improve":
		return Improve, nil
	default:
		return Auto, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}

// Defaults.
const (
	DefaultExactLimit = 16
	DefaultIterations = 2000
	DefaultRestarts   = 8
)

// Option configures MaximizeDual via functional arguments.
type Option func(*Options)

// Options holds the partitioner configuration.
type Options struct {
	// Strategy selects exact enumeration or iterative improvement.
	Strategy Strategy

	// ExactLimit is the largest active set Auto still solves exactly.
	ExactLimit int

	// Iterations is the number of single-element moves per restart (Improve).
	Iterations int

	// Restarts is the number of random initial splits (Improve).
	Restarts int

	// Seed drives Improve's random streams; 0 selects a fixed default.
	Seed int64

	// Workers bounds the goroutines evaluating splits.
	Workers int

	err error
}

// DefaultOptions returns Auto with the package defaults and one worker per CPU.
func DefaultOptions() Options {
	return Options{
		Strategy:   Auto,
		ExactLimit: DefaultExactLimit,
		Iterations: DefaultIterations,
		Restarts:   DefaultRestarts,
		Workers:    runtime.GOMAXPROCS(0),
	}
}

// WithStrategy selects the exploration strategy.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		if s < Auto || s > Improve {
			o.err = fmt.Errorf("%w: strategy %d", ErrOptionViolation, int(s))
			return
		}
		o.Strategy = s
	}
}

// WithExactLimit sets the Auto threshold; must be in [0, budget.MaxSubsetActive].
func WithExactLimit(k int) Option {
	return func(o *Options) {
		if k < 0 || k > budget.MaxSubsetActive {
			o.err = fmt.Errorf("%w: exact limit %d not in [0, %d]", ErrOptionViolation, k, budget.MaxSubsetActive)
			return
		}
		o.ExactLimit = k
	}
}

// WithIterations sets moves per restart; must be >= 0.
func WithIterations(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: iterations cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.Iterations = n
	}
}

// WithRestarts sets the number of random initial splits; must be >= 1.
func WithRestarts(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: restarts must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.Restarts = n
	}
}

// WithSeed sets the random seed for Improve.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithWorkers bounds parallelism; must be >= 1.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: workers must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// Result is the outcome of a dual-agent search.
type Result struct {
	// Score is the summed score of both agents.
	Score uint32

	// Agents holds each agent's single-agent result on its half.
	Agents [2]budget.Result

	// Split lists the active nodes assigned to each agent, ascending.
	Split [2][]int

	// Evaluated is the number of splits scored.
	Evaluated int

	// States counts search steps: subset-table walk steps (Exact) or memo
	// states over all restarts (Improve), plus the two final path searches.
	States int

	// Strategy is the strategy actually run (never Auto).
	Strategy Strategy
}
