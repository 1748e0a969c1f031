package align2d

import (
	"fmt"
	"math"
	"math/bits"

	"github.com/ndaniels/dynalign/costmatrix"
	"github.com/ndaniels/dynalign/matrixpool"
	"github.com/ndaniels/dynalign/precalc"
	"github.com/ndaniels/dynalign/symbol"
)

// inf is a sentinel "unreachable" cost, kept far enough below
// math.MaxInt that two of them can be added without overflow, per
// spec.md §4.E's numeric guarantee (M*MAXCOST < INT_MAX).
const inf = math.MaxInt / 4

// LinearResult is the output of FillLinear: the optimal cost and the
// populated direction matrix, ready for BacktraceLinear. Dir aliases the
// matrix pool's Direction buffer, typed LinearDir at the cell accessor.
type LinearResult struct {
	M, N   int
	Stride int // N+1
	Dir    []uint16
	Cost   int
}

// At returns the backtrace flags for direction cell (i, j).
func (r *LinearResult) At(i, j int) LinearDir { return LinearDir(r.Dir[i*r.Stride+j]) }

// FillLinear runs the 2-D Needleman-Wunsch fill under a linear (unit
// per indel) gap cost. s1 must be the longer-or-equal-length stream;
// s2 the shorter, placed on the horizontal axis (spec.md §4.E). band
// is the Ukkonen barrier Δ; a negative value means "unbanded" (fill
// the whole rectangle).
//
// The fill sweeps column-major over s2's positions, keeping only two
// O(longer-stream) columns of cost live at once (spec.md §4.C's pool
// sizing: the cost buffer is O(max(L1,L2)), not O(L1*L2)); only the
// direction matrix is kept in full, since backtrace needs it entire.
func FillLinear(s1, s2 *symbol.Stream, cm *costmatrix.Expanded, pool *matrixpool.Pool, band int) (*LinearResult, error) {
	m, n := s1.Len(), s2.Len()
	if n > m {
		return nil, fmt.Errorf("align2d: precondition violated: shorter stream (len %d) longer than longer stream (len %d)", n, m)
	}

	k := bits.Len(uint(cm.Size)) - 1
	pool.Ensure2D(m, n, k, false)

	table, precalcBuf := precalc.Build(s1, cm, pool.Precalc)
	pool.Precalc = precalcBuf

	stride := n + 1
	needDir := (m + 1) * stride
	if len(pool.Direction) < needDir {
		pool.Direction = make([]uint16, needDir)
	}
	dir := pool.Direction[:needDir]

	prevBuf := pool.Cost[0 : m+1]
	curBuf := pool.Cost[m+1 : 2*(m+1)]

	diffMN := m - n
	useBand := band >= 0

	loOf := func(j int) int {
		if !useBand {
			return 0
		}
		v := j + diffMN - band
		if v < 0 {
			return 0
		}
		return v
	}
	hiOf := func(j int) int {
		if !useBand {
			return m
		}
		v := j + diffMN + band
		if v > m {
			return m
		}
		return v
	}

	// Column 0: pure DELETE run (gap in S2) using tail_cost, as per
	// spec.md §4.E "First column: pure DELETE run using tail_cost."
	lo0, hi0 := loOf(0), hiOf(0)
	prevBuf[0] = 0
	dir[0] = uint16(DirAlign)
	for i := max(1, lo0); i <= hi0; i++ {
		prevBuf[i] = prevBuf[i-1] + cm.TailCostOf(s1.At(i-1))
		dir[i*stride] = uint16(DirDelete)
	}

	prevLo, prevHi := lo0, hi0

	for j := 1; j <= n; j++ {
		sj := s2.At(j - 1)
		row := table.Row(sj)
		insertCost := cm.PrependCostOf(sj)

		lo, hi := loOf(j), hiOf(j)

		for i := lo; i <= hi; i++ {
			alignC, insC, delC := inf, inf, inf

			if i-1 >= prevLo && i-1 <= prevHi {
				alignC = prevBuf[i-1] + row[i-1]
			}
			if i >= prevLo && i <= prevHi {
				insC = prevBuf[i] + insertCost
			}
			if i-1 >= lo && i-1 < i { // cur[i-1] already computed this column
				delC = curBuf[i-1] + cm.TailCostOf(s1.At(i-1))
			}

			best := inf
			var flags LinearDir
			consider := func(cost int, flag LinearDir) {
				if cost >= inf {
					return
				}
				switch {
				case cost < best:
					best = cost
					flags = flag
				case cost == best:
					flags |= flag
				}
			}
			consider(alignC, DirAlign)
			consider(delC, DirDelete)
			consider(insC, DirInsert)

			curBuf[i] = best
			dir[i*stride+j] = uint16(flags)
		}

		prevBuf, curBuf = curBuf, prevBuf
		prevLo, prevHi = lo, hi
	}

	finalCost := prevBuf[m]
	return &LinearResult{M: m, N: n, Stride: stride, Dir: dir, Cost: finalCost}, nil
}
