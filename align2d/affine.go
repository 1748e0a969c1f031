package align2d

import (
	"fmt"
	"math/bits"

	"github.com/ndaniels/dynalign/costmatrix"
	"github.com/ndaniels/dynalign/matrixpool"
	"github.com/ndaniels/dynalign/precalc"
	"github.com/ndaniels/dynalign/symbol"
)

// AffineResult is the output of FillAffine: the optimal cost and the
// populated direction matrix, ready for BacktraceAffine.
type AffineResult struct {
	M, N   int
	Stride int // N+1
	Dir    []uint16
	Cost   int
}

func (r *AffineResult) At(i, j int) AffineDir { return AffineDir(r.Dir[i*r.Stride+j]) }

// planeCols holds one column's worth of the four coupled cost planes.
type planeCols struct {
	m, h, v, d []int
}

func newPlaneCols(rows int) planeCols {
	return planeCols{
		m: make([]int, rows),
		h: make([]int, rows),
		v: make([]int, rows),
		d: make([]int, rows),
	}
}

// FillAffine runs the 2-D Needleman-Wunsch fill under an affine
// (gap-open + extend) gap cost, maintaining the four coupled planes
// M (close/substitution), H (extend-horizontal), V (extend-vertical)
// and D (extend-block-diagonal), per spec.md §4.F. s1 must be the
// longer-or-equal-length stream.
func FillAffine(s1, s2 *symbol.Stream, cm *costmatrix.Expanded, pool *matrixpool.Pool) (*AffineResult, error) {
	m, n := s1.Len(), s2.Len()
	if n > m {
		return nil, fmt.Errorf("align2d: precondition violated: shorter stream (len %d) longer than longer stream (len %d)", n, m)
	}
	// cm.GapOpen == 0 is accepted: the recurrence below degenerates
	// exactly to the linear model in that case (spec.md §8 property 6),
	// so there is no mathematical reason to reject it here.

	k := bits.Len(uint(cm.Size)) - 1
	pool.Ensure2D(m, n, k, true)

	table, precalcBuf := precalc.Build(s1, cm, pool.Precalc)
	pool.Precalc = precalcBuf

	stride := n + 1
	needDir := (m + 1) * stride
	if len(pool.Direction) < needDir {
		pool.Direction = make([]uint16, needDir)
	}
	dir := pool.Direction[:needDir]

	G := cm.GapOpen
	gap := cm.Alphabet.Gap()

	prev := newPlaneCols(m + 1)
	cur := newPlaneCols(m + 1)

	// Column 0: M/H/D are infeasible beyond the origin; V runs an
	// open-then-extend vertical gap trajectory (spec.md §4.F).
	prev.m[0] = 0
	prev.h[0] = inf
	prev.v[0] = inf
	prev.d[0] = inf
	dir[0] = uint16(originSentinel)

	for i := 1; i <= m; i++ {
		e := cm.TailCostOf(s1.At(i - 1))
		openFromM := prev.m[i-1] + G + e
		extFromV := prev.v[i-1] + e
		if openFromM <= extFromV {
			prev.v[i] = openFromM
			dir[i*stride] = uint16(AffBeginVertical | AffDoVertical)
		} else {
			prev.v[i] = extFromV
			dir[i*stride] = uint16(AffDoVertical)
		}
		prev.m[i] = inf
		prev.h[i] = inf
		prev.d[i] = inf
	}

	for j := 1; j <= n; j++ {
		sj := s2.At(j - 1)
		row := table.Row(sj)
		eH := cm.PrependCostOf(sj) // per-column horizontal extend cost

		// Column j, row 0: symmetric to row 0 above, H runs the
		// open-then-extend trajectory; M/V/D are infeasible.
		{
			openFromM := prev.m[0] + G + eH
			extFromH := prev.h[0] + eH
			if openFromM <= extFromH {
				cur.h[0] = openFromM
				dir[j] = uint16(AffBeginHorizontal | AffDoHorizontal)
			} else {
				cur.h[0] = extFromH
				dir[j] = uint16(AffDoHorizontal)
			}
			cur.m[0] = inf
			cur.v[0] = inf
			cur.d[0] = inf
		}

		for i := 1; i <= m; i++ {
			var flags AffineDir

			// --- M: close, from the previous column's diagonal cell.
			sub := row[i-1]
			best := prev.m[i-1]
			flags = AffAlignToAlign
			tryClose := func(val int, bit AffineDir) {
				switch {
				case val < best:
					best = val
					flags = bit
				case val == best:
					flags |= bit
				}
			}
			tryClose(prev.v[i-1]+G, AffAlignToVertical)
			tryClose(prev.h[i-1]+G, AffAlignToHorizontal)
			tryClose(prev.d[i-1]+2*G, AffAlignToDiagonal)
			mVal := best + sub
			cur.m[i] = mVal

			// --- H: extend-horizontal, same row, previous column.
			eOpen := prev.m[i] + G + eH
			eExt := prev.h[i] + eH
			var hVal int
			if eOpen <= eExt {
				hVal = eOpen
				flags |= AffBeginHorizontal
			} else {
				hVal = eExt
			}
			cur.h[i] = hVal

			// --- D: extend-block-diagonal, only meaningful when both
			// input symbols at this cell are themselves the gap symbol
			// (an already-gapped input column); otherwise infeasible.
			dVal := inf
			if s1.At(i-1) == gap && sj == gap {
				ePrevDiagOpen := prev.m[i-1] + 2*G
				ePrevDiagExt := prev.d[i-1]
				if ePrevDiagOpen <= ePrevDiagExt {
					dVal = ePrevDiagOpen
					flags |= AffBeginDiagonal
				} else {
					dVal = ePrevDiagExt
				}
			}
			cur.d[i] = dVal

			// --- V: extend-vertical, same column, previous row.
			vOpen := cur.m[i-1] + G + cm.TailCostOf(s1.At(i-1))
			vExt := cur.v[i-1] + cm.TailCostOf(s1.At(i-1))
			var vVal int
			if vOpen <= vExt {
				vVal = vOpen
				flags |= AffBeginVertical
			} else {
				vVal = vExt
			}
			cur.v[i] = vVal

			// --- DO_*: which plane(s) attain the aggregate minimum.
			fMin := mVal
			doFlags := AffDoAlign
			considerDo := func(val int, bit AffineDir) {
				switch {
				case val < fMin:
					fMin = val
					doFlags = bit
				case val == fMin:
					doFlags |= bit
				}
			}
			considerDo(hVal, AffDoHorizontal)
			considerDo(vVal, AffDoVertical)
			considerDo(dVal, AffDoDiagonal)
			flags |= doFlags

			dir[i*stride+j] = uint16(flags)
		}

		prev, cur = cur, prev
	}

	aggregate := func(pc *planeCols, i int) int {
		best := pc.m[i]
		if pc.h[i] < best {
			best = pc.h[i]
		}
		if pc.v[i] < best {
			best = pc.v[i]
		}
		if pc.d[i] < best {
			best = pc.d[i]
		}
		return best
	}
	finalCost := aggregate(&prev, m)

	return &AffineResult{M: m, N: n, Stride: stride, Dir: dir, Cost: finalCost}, nil
}
