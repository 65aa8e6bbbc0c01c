package distance_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/katalvlaran/valvenet/distance"
	"github.com/katalvlaran/valvenet/internal/fixture"
	"github.com/stretchr/testify/require"
)

type adj [][]int

func (a adj) Len() int              { return len(a) }
func (a adj) Neighbors(i int) []int { return a[i] }

// randomGraph returns a directed graph with n nodes and edge probability p.
func randomGraph(rng *rand.Rand, n int, p float64) adj {
	g := make(adj, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i != j && rng.Float64() < p {
				g[i] = append(g[i], j)
			}
		}
	}
	return g
}

// referenceDistances is an independent Bellman-Ford style relaxation
// with unit weights; -1 means unreachable.
func referenceDistances(g adj) [][]int {
	n := len(g)
	d := make([][]int, n)
	for i := range d {
		d[i] = make([]int, n)
		for j := range d[i] {
			d[i][j] = -1
		}
		d[i][i] = 0
	}
	for s := 0; s < n; s++ {
		for changed := true; changed; {
			changed = false
			for u := 0; u < n; u++ {
				if d[s][u] < 0 {
					continue
				}
				for _, v := range g[u] {
					if d[s][v] < 0 || d[s][u]+1 < d[s][v] {
						d[s][v] = d[s][u] + 1
						changed = true
					}
				}
			}
		}
	}
	return d
}

func requireMatchesReference(t *testing.T, g adj, tbl *distance.Table) {
	t.Helper()
	ref := referenceDistances(g)
	require.Equal(t, len(g), tbl.N())
	for i := range ref {
		for j := range ref[i] {
			d, ok := tbl.At(i, j)
			if ref[i][j] < 0 {
				require.Falsef(t, ok, "(%d,%d) should be unreachable, got %d", i, j, d)
				continue
			}
			require.Truef(t, ok, "(%d,%d) should be reachable", i, j)
			require.Equalf(t, uint32(ref[i][j]), d, "(%d,%d)", i, j)
		}
	}
}

func TestCompute_DiagonalIsZero(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 20; trial++ {
		tbl := distance.Compute(randomGraph(rng, 1+rng.Intn(12), 0.2))
		for i := 0; i < tbl.N(); i++ {
			d, ok := tbl.At(i, i)
			require.True(t, ok)
			require.Zero(t, d)
		}
	}
}

func TestCompute_MatchesReference(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 30; trial++ {
		g := randomGraph(rng, 2+rng.Intn(15), 0.15)
		requireMatchesReference(t, g, distance.Compute(g))
	}
}

func TestComputeParallel_MatchesCompute(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for _, workers := range []int{0, 1, 3} {
		g := randomGraph(rng, 14, 0.2)
		tbl, err := distance.ComputeParallel(context.Background(), g, workers)
		require.NoError(t, err)
		require.Equal(t, distance.Compute(g), tbl)
	}
}

func TestComputeParallel_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := distance.ComputeParallel(ctx, adj{{1}, {0}}, 1)
	require.ErrorIs(t, err, context.Canceled)
}

func TestCompute_Sample(t *testing.T) {
	g := fixture.SampleGraph()
	tbl := distance.Compute(g)

	at := func(from, to string) uint32 {
		i, _ := g.Index(from)
		j, _ := g.Index(to)
		d, ok := tbl.At(i, j)
		require.True(t, ok)
		return d
	}
	require.Equal(t, uint32(1), at("AA", "DD"))
	require.Equal(t, uint32(1), at("AA", "II"))
	require.Equal(t, uint32(2), at("AA", "JJ"))
	require.Equal(t, uint32(4), at("AA", "GG"))
	require.Equal(t, uint32(1), at("DD", "CC"))
	require.Equal(t, uint32(2), at("FF", "HH"))
	// undirected input gives a symmetric table
	require.Equal(t, at("HH", "JJ"), at("JJ", "HH"))
}

func TestTable_RowAndFormat(t *testing.T) {
	tbl := distance.Compute(adj{{1}, {}})
	require.Equal(t, []uint32{0, 1}, tbl.Row(0))

	row := tbl.Row(1)
	row[1] = 9
	d, _ := tbl.At(1, 1)
	require.Zero(t, d, "Row must return a copy")

	out := tbl.Format([]string{"AA", "BB"})
	require.Contains(t, out, "AA")
	require.Contains(t, out, "-")
}
