// SPDX-License-Identifier: MIT
//
// File: maximize.go
// Role: Exact time-budgeted reward maximization by memoised bitmask search.
//
// Model:
//   - Moving from the current node to v and activating v costs dist(cur, v) + 1.
//   - Activating v with rem time units left afterwards yields reward(v) · rem.
//   - A move is legal iff v is reachable, reward(v) > 0 and cost < time left.
//     A move whose cost equals the time left would gain 0 and is never taken.
//
// Determinism:
//   - Candidates are scanned in ascending universe order and only a strictly
//     greater total replaces the incumbent, so the earliest best move wins.
//
// Complexity: O(2^k · k) states per (node, time) pair, k = |universe|.

package budget

import (
	"fmt"
	"math"
	"math/bits"
	"sort"
)

// state is the memo key: where we are, what is still available, time left.
type state struct {
	node  int
	avail uint64
	left  uint32
}

// choice is the memoised best score from a state and the universe position
// of the first move achieving it (-1 means stop here).
type choice struct {
	score uint32
	next  int
}

// Maximizer runs budgeted searches over a fixed universe of reward nodes.
//
// The best score from a state depends only on (node, available set, time
// left), so one Maximizer can answer queries for any subset of its
// universe and reuses work between them. A Maximizer is not safe for
// concurrent use; give each goroutine its own.
type Maximizer struct {
	dist     Distances
	rewards  []uint32
	universe []int       // ascending node indices
	pos      map[int]int // node index → bit position
	memo     map[state]choice
	expanded int
	total    uint64 // Σ reward over the universe
}

// NewMaximizer validates its inputs and returns a Maximizer over universe.
// Duplicates in universe are ignored; order does not matter.
//
// Errors: ErrNilDistances, ErrRewardsLength, ErrNodeOutOfRange, ErrTooManyActive.
func NewMaximizer(dist Distances, rewards []uint32, universe []int) (*Maximizer, error) {
	if dist == nil {
		return nil, ErrNilDistances
	}
	n := dist.N()
	if len(rewards) != n {
		return nil, fmt.Errorf("%w: %d rewards, %d nodes", ErrRewardsLength, len(rewards), n)
	}

	pos := make(map[int]int, len(universe))
	nodes := make([]int, 0, len(universe))
	for _, v := range universe {
		if v < 0 || v >= n {
			return nil, fmt.Errorf("%w: %d (graph has %d nodes)", ErrNodeOutOfRange, v, n)
		}
		if _, dup := pos[v]; dup {
			continue
		}
		pos[v] = 0
		nodes = append(nodes, v)
	}
	if len(nodes) > MaxActive {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooManyActive, len(nodes), MaxActive)
	}
	sort.Ints(nodes)
	var total uint64
	for i, v := range nodes {
		pos[v] = i
		total += uint64(rewards[v])
	}

	return &Maximizer{
		dist:     dist,
		rewards:  rewards,
		universe: nodes,
		pos:      pos,
		memo:     make(map[state]choice),
		total:    total,
	}, nil
}

// Universe returns the universe node indices in bit order.
func (m *Maximizer) Universe() []int {
	out := make([]int, len(m.universe))
	copy(out, m.universe)
	return out
}

// Full returns the mask with every universe node available.
func (m *Maximizer) Full() uint64 {
	if len(m.universe) == MaxActive {
		return ^uint64(0)
	}
	return uint64(1)<<len(m.universe) - 1
}

// Mask converts node indices to a bitmask over the universe.
func (m *Maximizer) Mask(nodes []int) (uint64, error) {
	var mask uint64
	for _, v := range nodes {
		p, ok := m.pos[v]
		if !ok {
			return 0, fmt.Errorf("%w: %d", ErrNotInUniverse, v)
		}
		mask |= 1 << p
	}
	return mask, nil
}

// Nodes converts a bitmask back to ascending node indices.
func (m *Maximizer) Nodes(mask uint64) []int {
	out := make([]int, 0, bits.OnesCount64(mask))
	for rest := mask; rest != 0; rest &= rest - 1 {
		out = append(out, m.universe[bits.TrailingZeros64(rest)])
	}
	return out
}

// CheckStart reports ErrStartOutOfRange if start is not a node.
func (m *Maximizer) CheckStart(start int) error {
	if start < 0 || start >= m.dist.N() {
		return fmt.Errorf("%w: %d (graph has %d nodes)", ErrStartOutOfRange, start, m.dist.N())
	}
	return nil
}

// CheckBudget reports ErrScoreOverflow if a score under budget could
// exceed math.MaxUint32. Every activation gains at most reward · budget, so
// Σ reward · budget over the universe bounds any score, including the sum
// of two agents splitting the universe.
func (m *Maximizer) CheckBudget(budget uint32) error {
	hi, lo := bits.Mul64(m.total, uint64(budget))
	if hi != 0 || lo > math.MaxUint32 {
		return fmt.Errorf("%w: Σ reward %d · budget %d", ErrScoreOverflow, m.total, budget)
	}
	return nil
}

// Best returns the maximum reward collectible from start within budget
// using only the universe nodes set in avail, and the activation order
// achieving it. start must satisfy CheckStart and budget CheckBudget;
// bits outside Full are ignored.
func (m *Maximizer) Best(start int, avail uint64, budget uint32) Result {
	avail &= m.Full()
	before := m.expanded
	score := m.search(start, avail, budget)

	path := []int{start}
	node, left := start, budget
	for {
		c := m.memo[state{node: node, avail: avail, left: left}]
		if c.next < 0 {
			break
		}
		v := m.universe[c.next]
		d, _ := m.dist.At(node, v)
		left -= d + 1
		avail &^= 1 << c.next
		node = v
		path = append(path, v)
	}

	return Result{Score: score, Path: path, States: m.expanded - before}
}

// Score is Best without path reconstruction.
func (m *Maximizer) Score(start int, avail uint64, budget uint32) uint32 {
	return m.search(start, avail&m.Full(), budget)
}

// Expanded returns the number of states expanded over the Maximizer's lifetime.
func (m *Maximizer) Expanded() int { return m.expanded }

// search returns the best additional reward from (node, avail, left) and
// memoises the first move that achieves it.
func (m *Maximizer) search(node int, avail uint64, left uint32) uint32 {
	key := state{node: node, avail: avail, left: left}
	if c, ok := m.memo[key]; ok {
		return c.score
	}
	m.expanded++

	best := choice{next: -1}
	for rest := avail; rest != 0; rest &= rest - 1 {
		p := bits.TrailingZeros64(rest)
		v := m.universe[p]
		if m.rewards[v] == 0 {
			continue
		}
		d, ok := m.dist.At(node, v)
		if !ok || left == 0 || d >= left-1 {
			continue // unreachable, or cost d+1 >= left
		}
		rem := left - d - 1
		total := m.rewards[v]*rem + m.search(v, avail&^(1<<p), rem)
		if total > best.score {
			best = choice{score: total, next: p}
		}
	}

	m.memo[key] = best
	return best.score
}

// Maximize is the one-shot search: the best score from start within
// timeBudget over the nodes in active, with the path achieving it.
//
// Empty active or a zero budget yields Score 0 and Path [start].
// ErrScoreOverflow is returned when Σ reward(active) · timeBudget does not
// fit in a uint32.
// Each call owns a fresh Maximizer, so repeated calls with the same inputs
// return identical results.
func Maximize(dist Distances, rewards []uint32, start int, active []int, timeBudget uint32) (Result, error) {
	m, err := NewMaximizer(dist, rewards, active)
	if err != nil {
		return Result{}, err
	}
	if err = m.CheckStart(start); err != nil {
		return Result{}, err
	}
	if err = m.CheckBudget(timeBudget); err != nil {
		return Result{}, err
	}
	return m.Best(start, m.Full(), timeBudget), nil
}
