// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Inputs, outputs and sentinel errors of the budgeted maximizer.

package budget

import "errors"

// MaxActive is the largest universe a Maximizer accepts: one bit per node
// in a uint64 mask.
const MaxActive = 64

// MaxSubsetActive is the largest universe Subsets tabulates: the table
// holds one uint32 per subset, 64 MiB at this size.
const MaxSubsetActive = 24

// Sentinel errors. They report caller mistakes in the inputs; once inputs
// are valid the search itself cannot fail.
var (
	// ErrNilDistances is returned when no distance oracle is supplied.
	ErrNilDistances = errors.New("budget: distances are nil")

	// ErrRewardsLength is returned when len(rewards) != distances.N().
	ErrRewardsLength = errors.New("budget: rewards length does not match distance table")

	// ErrStartOutOfRange is returned when the start index is not a node.
	ErrStartOutOfRange = errors.New("budget: start out of range")

	// ErrNodeOutOfRange is returned when an active index is not a node.
	ErrNodeOutOfRange = errors.New("budget: active node out of range")

	// ErrTooManyActive is returned when the active set exceeds MaxActive.
	ErrTooManyActive = errors.New("budget: too many active nodes for bitmask search")

	// ErrNotInUniverse is returned by Mask for nodes outside the Maximizer's universe.
	ErrNotInUniverse = errors.New("budget: node not in universe")

	// ErrScoreOverflow is returned when reward · budget could exceed a uint32 score.
	ErrScoreOverflow = errors.New("budget: score may overflow uint32")

	// ErrTableTooLarge is returned by Subsets for universes above MaxSubsetActive.
	ErrTableTooLarge = errors.New("budget: universe too large for a subset table")
)

// Distances is the read-only travel-cost oracle. *distance.Table satisfies it.
// At reports ok == false for unreachable pairs.
type Distances interface {
	N() int
	At(i, j int) (uint32, bool)
}

// Result is the outcome of one budgeted search.
type Result struct {
	// Score is the total reward collected: Σ reward(v) · time left after activating v.
	Score uint32

	// Path starts with the start node and lists activated nodes in order.
	Path []int

	// States is the number of search states expanded by this call
	// (memo hits are not counted).
	States int
}
