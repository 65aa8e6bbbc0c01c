package partition_test

import (
	"context"
	"math/rand"
	"sort"
	"testing"

	"github.com/katalvlaran/valvenet/budget"
	"github.com/katalvlaran/valvenet/distance"
	"github.com/katalvlaran/valvenet/internal/fixture"
	"github.com/katalvlaran/valvenet/partition"
	"github.com/stretchr/testify/require"
)

type adj [][]int

func (a adj) Len() int              { return len(a) }
func (a adj) Neighbors(i int) []int { return a[i] }

func sampleInputs(t *testing.T) (*distance.Table, []uint32, int, []int) {
	t.Helper()
	g := fixture.SampleGraph()
	start, ok := g.Index(fixture.Start)
	require.True(t, ok)
	return distance.Compute(g), g.Rewards(), start, g.ActiveSet()
}

// exhaustiveDual scores every split with independent one-shot searches.
func exhaustiveDual(t *testing.T, tbl budget.Distances, rewards []uint32, start int, active []int, tb uint32) uint32 {
	t.Helper()
	var best uint32
	for mask := 0; mask < 1<<len(active); mask++ {
		var a, b []int
		for i, v := range active {
			if mask&(1<<i) != 0 {
				a = append(a, v)
			} else {
				b = append(b, v)
			}
		}
		ra, err := budget.Maximize(tbl, rewards, start, a, tb)
		require.NoError(t, err)
		rb, err := budget.Maximize(tbl, rewards, start, b, tb)
		require.NoError(t, err)
		if s := ra.Score + rb.Score; s > best {
			best = s
		}
	}
	return best
}

func TestMaximizeDual_SampleExact(t *testing.T) {
	tbl, rewards, start, active := sampleInputs(t)

	res, err := partition.MaximizeDual(context.Background(), tbl, rewards, start, active, fixture.DualBudget,
		partition.WithStrategy(partition.Exact))
	require.NoError(t, err)
	require.Equal(t, uint32(fixture.DualScore), res.Score)
	require.Equal(t, partition.Exact, res.Strategy)
	require.Equal(t, 1<<(len(active)-1), res.Evaluated)
	require.Equal(t, res.Score, res.Agents[0].Score+res.Agents[1].Score)
	require.Positive(t, res.States)

	// halves are disjoint and cover the active set
	union := append(append([]int{}, res.Split[0]...), res.Split[1]...)
	sort.Ints(union)
	require.Equal(t, active, union)

	// each agent only activates nodes from its own half
	for agent := 0; agent < 2; agent++ {
		require.Equal(t, start, res.Agents[agent].Path[0])
		require.Subset(t, res.Split[agent], res.Agents[agent].Path[1:])
	}
}

func TestMaximizeDual_AutoPicksExactForSmallSets(t *testing.T) {
	tbl, rewards, start, active := sampleInputs(t)

	res, err := partition.MaximizeDual(context.Background(), tbl, rewards, start, active, fixture.DualBudget)
	require.NoError(t, err)
	require.Equal(t, partition.Exact, res.Strategy)
	require.Equal(t, uint32(fixture.DualScore), res.Score)
}

func TestMaximizeDual_WorkerCountDoesNotChangeResult(t *testing.T) {
	tbl, rewards, start, active := sampleInputs(t)

	var first partition.Result
	for i, workers := range []int{1, 2, 5, 64} {
		res, err := partition.MaximizeDual(context.Background(), tbl, rewards, start, active, fixture.DualBudget,
			partition.WithStrategy(partition.Exact), partition.WithWorkers(workers))
		require.NoError(t, err)
		if i == 0 {
			first = res
			continue
		}
		require.Equal(t, first.Score, res.Score)
		require.Equal(t, first.Split, res.Split)
		require.Equal(t, first.Evaluated, res.Evaluated)
		require.Equal(t, first.States, res.States, "workers %d redid search work", workers)
	}
}

func TestMaximizeDual_ImproveIsBoundedAndDeterministic(t *testing.T) {
	tbl, rewards, start, active := sampleInputs(t)
	opts := []partition.Option{
		partition.WithExactLimit(2), // force Auto onto Improve
		partition.WithSeed(99),
		partition.WithRestarts(4),
		partition.WithIterations(200),
	}

	a, err := partition.MaximizeDual(context.Background(), tbl, rewards, start, active, fixture.DualBudget, opts...)
	require.NoError(t, err)
	require.Equal(t, partition.Improve, a.Strategy)
	require.LessOrEqual(t, a.Score, uint32(fixture.DualScore))
	require.Positive(t, a.Score)
	require.Equal(t, 4*(200+1), a.Evaluated)

	b, err := partition.MaximizeDual(context.Background(), tbl, rewards, start, active, fixture.DualBudget,
		append(opts, partition.WithWorkers(1))...)
	require.NoError(t, err)
	require.Equal(t, a.Score, b.Score)
	require.Equal(t, a.Split, b.Split)
}

// Exact mode must reproduce an exhaustive check of every split.
func TestMaximizeDual_ExactMatchesExhaustive(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for trial := 0; trial < 15; trial++ {
		n := 4 + rng.Intn(6)
		g := make(adj, n)
		for i := 1; i < n; i++ { // random tree keeps everything reachable
			j := rng.Intn(i)
			g[i] = append(g[i], j)
			g[j] = append(g[j], i)
		}
		tbl := distance.Compute(g)
		rewards := make([]uint32, n)
		var active []int
		for i := 1; i < n && len(active) < 8; i++ {
			if rng.Intn(3) > 0 {
				rewards[i] = uint32(1 + rng.Intn(20))
				active = append(active, i)
			}
		}
		tb := uint32(4 + rng.Intn(12))

		res, err := partition.MaximizeDual(context.Background(), tbl, rewards, 0, active, tb,
			partition.WithStrategy(partition.Exact), partition.WithWorkers(3))
		require.NoError(t, err)
		require.Equalf(t, exhaustiveDual(t, tbl, rewards, 0, active, tb), res.Score, "trial %d", trial)
	}
}

func TestMaximizeDual_EmptyActive(t *testing.T) {
	tbl, rewards, start, _ := sampleInputs(t)

	for _, s := range []partition.Strategy{partition.Exact, partition.Improve} {
		res, err := partition.MaximizeDual(context.Background(), tbl, rewards, start, nil, fixture.DualBudget,
			partition.WithStrategy(s))
		require.NoError(t, err)
		require.Zero(t, res.Score)
		require.Equal(t, []int{start}, res.Agents[0].Path)
		require.Equal(t, []int{start}, res.Agents[1].Path)
		require.Empty(t, res.Split[0])
		require.Empty(t, res.Split[1])
	}
}

func TestMaximizeDual_Cancelled(t *testing.T) {
	tbl, rewards, start, active := sampleInputs(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, s := range []partition.Strategy{partition.Exact, partition.Improve} {
		_, err := partition.MaximizeDual(ctx, tbl, rewards, start, active, fixture.DualBudget, partition.WithStrategy(s))
		require.ErrorIs(t, err, context.Canceled)
	}
}

func TestMaximizeDual_Errors(t *testing.T) {
	tbl, rewards, start, active := sampleInputs(t)
	ctx := context.Background()

	bad := []partition.Option{
		partition.WithWorkers(0),
		partition.WithRestarts(0),
		partition.WithIterations(-1),
		partition.WithExactLimit(-1),
		partition.WithExactLimit(budget.MaxSubsetActive + 1),
		partition.WithStrategy(partition.Strategy(9)),
	}
	for _, opt := range bad {
		_, err := partition.MaximizeDual(ctx, tbl, rewards, start, active, 26, opt)
		require.ErrorIs(t, err, partition.ErrOptionViolation)
	}

	_, err := partition.MaximizeDual(ctx, tbl, rewards, -1, active, 26)
	require.ErrorIs(t, err, budget.ErrStartOutOfRange)

	_, err = partition.MaximizeDual(ctx, tbl, rewards[:3], start, active, 26)
	require.ErrorIs(t, err, budget.ErrRewardsLength)

	_, err = partition.MaximizeDual(ctx, tbl, rewards, start, active, 1<<31)
	require.ErrorIs(t, err, budget.ErrScoreOverflow)
}

// Exact tabulates every subset, so it refuses universes whose table would
// not fit; Auto falls back to Improve for the same input.
func TestMaximizeDual_ExactTableLimit(t *testing.T) {
	n := budget.MaxSubsetActive + 2
	g := make(adj, n)
	for i := 0; i+1 < n; i++ {
		g[i] = append(g[i], i+1)
		g[i+1] = append(g[i+1], i)
	}
	tbl := distance.Compute(g)
	rewards := make([]uint32, n)
	active := make([]int, 0, n-1)
	for i := 1; i < n; i++ {
		rewards[i] = 1
		active = append(active, i)
	}
	ctx := context.Background()

	_, err := partition.MaximizeDual(ctx, tbl, rewards, 0, active, 6, partition.WithStrategy(partition.Exact))
	require.ErrorIs(t, err, budget.ErrTableTooLarge)

	res, err := partition.MaximizeDual(ctx, tbl, rewards, 0, active, 6,
		partition.WithRestarts(2), partition.WithIterations(20))
	require.NoError(t, err)
	require.Equal(t, partition.Improve, res.Strategy)
	// whichever agent holds node 1 reaches it with time to spare
	require.Positive(t, res.Score)
}

func TestParseStrategy(t *testing.T) {
	cases := map[string]partition.Strategy{
		"":         partition.Auto,
		"auto":     partition.Auto,
		"Exact":    partition.Exact,
		" improve": partition.Improve,
	}
	for in, want := range cases {
		got, err := partition.ParseStrategy(in)
		require.NoError(t, err)
		require.Equal(t, want, got)
		if in != "" {
			require.Equal(t, want.String(), got.String())
		}
	}

	_, err := partition.ParseStrategy("random")
	require.ErrorIs(t, err, partition.ErrUnknownStrategy)
	require.Equal(t, "Strategy(9)", partition.Strategy(9).String())
}
