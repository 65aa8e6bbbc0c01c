// SPDX-License-Identifier: MIT
//
// File: subsets.go
// Role: Best single-agent score for every subset of a universe, from one walk.
//
// Method:
//   - A depth-first walk from start enumerates every legal activation order
//     once and records, per activated set S, the best score of an order that
//     activates exactly S.
//   - A superset closure (one pass per bit) turns "exactly S" into "any
//     subset of S", which is the single-agent optimum restricted to S.
//
// The table is read-only once built and may be shared between goroutines.
//
// Complexity: O(#legal orders · k) walk, O(2^k · k) closure, O(2^k) memory.

package budget

import (
	"context"
	"fmt"
)

// ctxCheckEvery is how many walk steps run between context checks.
const ctxCheckEvery = 1024

// SubsetTable maps every subset mask of a universe to the best score one
// agent collects from a fixed start and budget using only that subset.
type SubsetTable struct {
	universe []int
	best     []uint32
	states   int
}

// Subsets tabulates Score(start, S, budget) for every subset S of the
// universe. start must satisfy CheckStart and budget CheckBudget.
//
// Errors: ErrTableTooLarge above MaxSubsetActive nodes, or ctx.Err().
func (m *Maximizer) Subsets(ctx context.Context, start int, budget uint32) (*SubsetTable, error) {
	k := len(m.universe)
	if k > MaxSubsetActive {
		return nil, fmt.Errorf("%w: %d > %d", ErrTableTooLarge, k, MaxSubsetActive)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	t := &SubsetTable{
		universe: m.Universe(),
		best:     make([]uint32, 1<<k),
	}

	var walk func(node int, used uint64, left, score uint32) error
	walk = func(node int, used uint64, left, score uint32) error {
		t.states++
		if t.states%ctxCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		if score > t.best[used] {
			t.best[used] = score
		}
		for p, v := range m.universe {
			if used&(1<<p) != 0 || m.rewards[v] == 0 {
				continue
			}
			d, ok := m.dist.At(node, v)
			if !ok || left == 0 || d >= left-1 {
				continue
			}
			rem := left - d - 1
			if err := walk(v, used|1<<p, rem, score+m.rewards[v]*rem); err != nil {
				return err
			}
		}
		return nil
	}
	if err := walk(start, 0, budget, 0); err != nil {
		return nil, err
	}

	for p := 0; p < k; p++ {
		bit := 1 << p
		for mask := range t.best {
			if mask&bit != 0 && t.best[mask^bit] > t.best[mask] {
				t.best[mask] = t.best[mask^bit]
			}
		}
	}
	return t, nil
}

// Score returns the best score using only the universe nodes in mask.
// Bits outside Full are ignored.
func (t *SubsetTable) Score(mask uint64) uint32 {
	return t.best[mask&t.Full()]
}

// Full returns the mask with every universe node set.
func (t *SubsetTable) Full() uint64 { return uint64(len(t.best) - 1) }

// Len returns the universe size.
func (t *SubsetTable) Len() int { return len(t.universe) }

// States returns the number of walk steps taken to build the table.
func (t *SubsetTable) States() int { return t.states }
