// SPDX-License-Identifier: MIT
//
// File: table.go
// Role: Dense all-pairs distance table with O(1) lookups.
// Contract:
//   - Square N×N, row-major; Unreachable marks "no path".
//   - Diagonal is always 0.
//   - Read-only after Compute returns; safe for concurrent readers.

package distance

import (
	"fmt"
	"math"
	"strings"
)

// Unreachable is the sentinel stored for pairs with no path.
const Unreachable = math.MaxUint32

// Table is the dense distance matrix: At(i, j) is the minimum number of
// edge traversals from i to j.
type Table struct {
	n    int
	data []uint32 // row-major, len n*n
}

func newTable(n int) *Table {
	t := &Table{n: n, data: make([]uint32, n*n)}
	for i := range t.data {
		t.data[i] = Unreachable
	}
	return t
}

// N returns the matrix order (number of nodes).
func (t *Table) N() int { return t.n }

// At returns the distance from i to j and whether j is reachable from i.
func (t *Table) At(i, j int) (uint32, bool) {
	d := t.data[i*t.n+j]
	return d, d != Unreachable
}

// Row returns a copy of the distances leaving i.
func (t *Table) Row(i int) []uint32 {
	out := make([]uint32, t.n)
	copy(out, t.data[i*t.n:(i+1)*t.n])
	return out
}

// row exposes the backing slice of row i for writers in this package.
func (t *Table) row(i int) []uint32 { return t.data[i*t.n : (i+1)*t.n] }

// Format renders the table as a grid, using labels for headers when
// len(labels) == N(). Unreachable entries print as "-".
func (t *Table) Format(labels []string) string {
	name := func(i int) string {
		if len(labels) == t.n {
			return labels[i]
		}
		return fmt.Sprint(i)
	}

	var sb strings.Builder
	sb.WriteString("    ")
	for j := 0; j < t.n; j++ {
		fmt.Fprintf(&sb, "%4s", name(j))
	}
	sb.WriteByte('\n')
	for i := 0; i < t.n; i++ {
		fmt.Fprintf(&sb, "%4s", name(i))
		for j := 0; j < t.n; j++ {
			if d, ok := t.At(i, j); ok {
				fmt.Fprintf(&sb, "%4d", d)
			} else {
				sb.WriteString("   -")
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// String implements fmt.Stringer with index headers.
func (t *Table) String() string { return t.Format(nil) }
