package align3d

import (
	"fmt"
	"math"

	"github.com/ndaniels/dynalign/costmatrix"
	"github.com/ndaniels/dynalign/matrixpool"
	"github.com/ndaniels/dynalign/symbol"
)

const inf = math.MaxInt / 4

// Result3D is the output of FillLinear3D: the optimal cost and the
// populated direction cube, ready for Backtrace3D.
type Result3D struct {
	L1, L2, L3     int
	StrideI, StrideJ int // StrideJ = (L3+1); StrideI = (L2+1)*(L3+1)
	Dir            []uint16
	Cost           int
}

func (r *Result3D) index(i, j, k int) int { return i*r.StrideI + j*r.StrideJ + k }

// At returns the backtrace flags for cube cell (i, j, k).
func (r *Result3D) At(i, j, k int) Dir3D { return Dir3D(r.Dir[r.index(i, j, k)]) }

// FillLinear3D runs the 3-D Needleman-Wunsch fill under a linear gap
// cost over three streams, per spec.md §4.H. s1 must be the longest of
// the three (or tied for longest); an error is returned otherwise. Both
// the cost cube and the direction cube are stored in full,
// (l1+1)*(l2+1)*(l3+1) cells each, in the pool's Cost and Direction
// buffers; no rolling two-row window is used.
//
// Every cube cell has up to seven predecessor moves (Dir3D), one for
// each non-empty subset of the three streams advancing simultaneously.
// Costs are read directly from cm3, itself an O(1) lookup precomputed
// once per cost-matrix expansion (component B), so no further per-call
// precalculation table is built here: spec.md §4.D's precalc tables are
// a constant-factor optimization over an already-O(1) lookup in the
// 3-D case, unlike the 2-D engines where precalc amortizes repeated
// symbol decoding across a whole row.
func FillLinear3D(s1, s2, s3 *symbol.Stream, cm3 *costmatrix.Expanded3D, pool *matrixpool.Pool) (*Result3D, error) {
	l1, l2, l3 := s1.Len(), s2.Len(), s3.Len()
	if l1 < l2 || l1 < l3 {
		return nil, fmt.Errorf("align3d: precondition violated: s1 (len %d) must be at least as long as s2 (len %d) and s3 (len %d)", l1, l2, l3)
	}

	pool.Ensure3D(l1, l2, l3, cm3.Alphabet.K)

	strideK := 1
	strideJ := l3 + 1
	strideI := (l2 + 1) * (l3 + 1)
	total := (l1 + 1) * strideI

	dir := pool.Direction[:total]
	cost := pool.Cost[:total]

	gap := cm3.Alphabet.Gap()
	idx := func(i, j, k int) int { return i*strideI + j*strideJ + k*strideK }

	cost[idx(0, 0, 0)] = 0
	dir[idx(0, 0, 0)] = 0

	for i := 0; i <= l1; i++ {
		for j := 0; j <= l2; j++ {
			for kk := 0; kk <= l3; kk++ {
				if i == 0 && j == 0 && kk == 0 {
					continue
				}

				a1, a2, a3 := gap, gap, gap
				if i > 0 {
					a1 = s1.At(i - 1)
				}
				if j > 0 {
					a2 = s2.At(j - 1)
				}
				if kk > 0 {
					a3 = s3.At(kk - 1)
				}

				best := inf
				var flags Dir3D
				consider := func(ok bool, pi, pj, pk int, c int, flag Dir3D) {
					if !ok {
						return
					}
					total := cost[idx(pi, pj, pk)] + c
					if total >= inf {
						return
					}
					switch {
					case total < best:
						best = total
						flags = flag
					case total == best:
						flags |= flag
					}
				}

				consider(i > 0 && j > 0 && kk > 0, i-1, j-1, kk-1, cm3.BestCostOf(a1, a2, a3), Dir3AlignAll)
				consider(i > 0 && j > 0, i-1, j-1, kk, cm3.BestCostOf(a1, a2, gap), Dir3Align12)
				consider(i > 0 && kk > 0, i-1, j, kk-1, cm3.BestCostOf(a1, gap, a3), Dir3Align13)
				consider(j > 0 && kk > 0, i, j-1, kk-1, cm3.BestCostOf(gap, a2, a3), Dir3Align23)
				consider(i > 0, i-1, j, kk, cm3.BestCostOf(a1, gap, gap), Dir3Gap1)
				consider(j > 0, i, j-1, kk, cm3.BestCostOf(gap, a2, gap), Dir3Gap2)
				consider(kk > 0, i, j, kk-1, cm3.BestCostOf(gap, gap, a3), Dir3Gap3)

				cost[idx(i, j, kk)] = best
				dir[idx(i, j, kk)] = uint16(flags)
			}
		}
	}

	return &Result3D{
		L1: l1, L2: l2, L3: l3,
		StrideI: strideI, StrideJ: strideJ,
		Dir:  dir,
		Cost: cost[idx(l1, l2, l3)],
	}, nil
}
