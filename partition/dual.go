// SPDX-License-Identifier: MIT
//
// File: dual.go
// Role: Two independent agents, each solving its own half of the active set.
//
// Model:
//   - Agents share the start node and the per-agent budget, never interact,
//     and never share remaining time. Total score = score(A) + score(B).
//   - A split is identified by agent A's bitmask over the Maximizer universe;
//     agent B receives the complement.
//
// Determinism:
//   - Among equal-score splits the smallest A mask wins, independent of the
//     number of workers or scheduling order.

package partition

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/valvenet/budget"
)

// ctxCheckEvery is how many split evaluations run between context checks.
const ctxCheckEvery = 256

// split is a candidate: agent A's mask and the summed score.
type split struct {
	mask  uint64
	score uint32
}

func (s split) better(o split) bool {
	return s.score > o.score || (s.score == o.score && s.mask < o.mask)
}

// outcome is one worker's contribution to the reduction.
type outcome struct {
	best      split
	evaluated int
	states    int
}

// problem bundles the read-only inputs shared by every worker.
type problem struct {
	dist     budget.Distances
	rewards  []uint32
	universe []int
	start    int
	budget   uint32
}

func (p *problem) maximizer() (*budget.Maximizer, error) {
	return budget.NewMaximizer(p.dist, p.rewards, p.universe)
}

// MaximizeDual splits active between two agents and maximizes the sum of
// their independent single-agent scores, each with budgetPerAgent.
//
// The strategy is explicit (see Strategy); Result.Strategy reports which
// one actually ran. Exact is optimal; Improve is an approximation.
//
// Errors: input errors from budget (ErrRewardsLength, ErrStartOutOfRange,
// ErrScoreOverflow, ...), budget.ErrTableTooLarge when Exact is forced on
// more than budget.MaxSubsetActive nodes, ErrOptionViolation, or ctx.Err()
// on cancellation.
func MaximizeDual(ctx context.Context, dist budget.Distances, rewards []uint32, start int, active []int, budgetPerAgent uint32, opts ...Option) (Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Result{}, o.err
	}

	m, err := budget.NewMaximizer(dist, rewards, active)
	if err != nil {
		return Result{}, err
	}
	if err = m.CheckStart(start); err != nil {
		return Result{}, err
	}
	if err = m.CheckBudget(budgetPerAgent); err != nil {
		return Result{}, err
	}

	p := &problem{dist: dist, rewards: rewards, universe: m.Universe(), start: start, budget: budgetPerAgent}
	strategy := o.Strategy
	if strategy == Auto {
		strategy = Exact
		if len(p.universe) > o.ExactLimit {
			strategy = Improve
		}
	}

	var outcomes []outcome
	switch strategy {
	case Exact:
		outcomes, err = exact(ctx, m, p, o.Workers)
	default:
		outcomes, err = improve(ctx, p, o)
	}
	if err != nil {
		return Result{}, err
	}

	res := Result{Strategy: strategy}
	best := outcomes[0].best
	for _, oc := range outcomes {
		if oc.best.better(best) {
			best = oc.best
		}
		res.Evaluated += oc.evaluated
		res.States += oc.states
	}

	full := m.Full()
	res.Agents[0] = m.Best(start, best.mask, budgetPerAgent)
	res.Agents[1] = m.Best(start, full&^best.mask, budgetPerAgent)
	res.Score = res.Agents[0].Score + res.Agents[1].Score
	res.Split = [2][]int{m.Nodes(best.mask), m.Nodes(full &^ best.mask)}
	res.States += m.Expanded()

	return res, nil
}

// exact builds one budget.SubsetTable and scores every split with the
// highest universe node pinned to agent B, which skips mirror images:
// 2^(k-1) splits for k nodes. Each split costs two table reads; the range
// is cut into contiguous chunks, one per worker, all sharing the table.
func exact(ctx context.Context, m *budget.Maximizer, p *problem, workers int) ([]outcome, error) {
	table, err := m.Subsets(ctx, p.start, p.budget)
	if err != nil {
		return nil, err
	}

	k := table.Len()
	total := uint64(1) << max(k-1, 0)
	if uint64(workers) > total {
		workers = int(total)
	}
	chunk := (total + uint64(workers) - 1) / uint64(workers)
	full := table.Full()

	outcomes := make([]outcome, workers)
	eg, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		w := w
		lo := uint64(w) * chunk
		hi := min(lo+chunk, total)
		eg.Go(func() error {
			oc := outcome{best: split{mask: lo}}
			for mask := lo; mask < hi; mask++ {
				if oc.evaluated%ctxCheckEvery == 0 {
					if err := ctx.Err(); err != nil {
						return err
					}
				}
				s := split{mask: mask, score: table.Score(mask) + table.Score(full&^mask)}
				if oc.evaluated == 0 || s.better(oc.best) {
					oc.best = s
				}
				oc.evaluated++
			}
			outcomes[w] = oc
			return nil
		})
	}
	if err = eg.Wait(); err != nil {
		return nil, err
	}
	outcomes[0].states = table.States()
	return outcomes, nil
}

// improve runs o.Restarts independent hill climbs. Each starts from a
// random split and makes o.Iterations single-node moves between the
// halves, accepting any move that does not lower the summed score.
func improve(ctx context.Context, p *problem, o Options) ([]outcome, error) {
	k := len(p.universe)
	streams := deriveStreams(o.Seed, o.Restarts)

	outcomes := make([]outcome, o.Restarts)
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(o.Workers)
	for r := range streams {
		r := r
		eg.Go(func() error {
			rng := streams[r]
			m, err := p.maximizer()
			if err != nil {
				return err
			}
			full := m.Full()
			eval := func(mask uint64) uint32 {
				return m.Score(p.start, mask, p.budget) + m.Score(p.start, full&^mask, p.budget)
			}

			var mask uint64
			for bit := 0; bit < k; bit++ {
				if rng.Intn(2) == 1 {
					mask |= 1 << bit
				}
			}
			cur := split{mask: mask, score: eval(mask)}
			oc := outcome{evaluated: 1}

			for i := 0; i < o.Iterations && k > 0; i++ {
				if i%ctxCheckEvery == 0 {
					if err = ctx.Err(); err != nil {
						return err
					}
				}
				cand := cur.mask ^ (1 << rng.Intn(k))
				if s := eval(cand); s >= cur.score {
					cur = split{mask: cand, score: s}
				}
				oc.evaluated++
			}

			oc.best = cur
			oc.states = m.Expanded()
			outcomes[r] = oc
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return outcomes, nil
}
