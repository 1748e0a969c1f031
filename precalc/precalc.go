// Package precalc implements component D: for a target stream and an
// expanded cost matrix, a row-major table P[a][j] = best_cost(a,
// target[j]) for every ambiguity-state a and position j, so the engines'
// hot loops read two contiguous integer arrays instead of touching the
// full cost matrix.
package precalc

import (
	"github.com/ndaniels/dynalign/costmatrix"
	"github.com/ndaniels/dynalign/symbol"
)

// Table is a row-major precalculation table with stride N (the target
// stream length): Rows[a*N+j] = best_cost(a, target[j]).
type Table struct {
	Size int // 2^K, the number of ambiguity-states
	N    int // length of the target stream
	Rows []int
}

// Build produces a Table for target under cm, reusing buf if it is
// large enough (matrixpool's Precalc buffer). It returns the Table along
// with the (possibly reallocated) buffer, mirroring the matrix pool's
// grow-only discipline.
func Build(target *symbol.Stream, cm *costmatrix.Expanded, buf []int) (*Table, []int) {
	n := target.Len()
	size := cm.Size
	need := size * n
	if len(buf) < need {
		buf = make([]int, need)
	}

	rows := buf[:need]
	for a := 0; a < size; a++ {
		row := rows[a*n : a*n+n]
		sa := symbol.Symbol(a)
		for j := 0; j < n; j++ {
			row[j] = cm.BestCostOf(sa, target.At(j))
		}
	}

	return &Table{Size: size, N: n, Rows: rows}, buf
}

// At returns P[a][j].
func (t *Table) At(a symbol.Symbol, j int) int {
	return t.Rows[int(a)*t.N+j]
}

// Row returns the contiguous row for ambiguity-state a, i.e. the slice
// an inner loop scans linearly against the opposing stream's positions.
func (t *Table) Row(a symbol.Symbol) []int {
	i := int(a)
	return t.Rows[i*t.N : i*t.N+t.N]
}
