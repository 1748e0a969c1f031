package align2d

import (
	"fmt"

	"github.com/ndaniels/dynalign/costmatrix"
	"github.com/ndaniels/dynalign/symbol"
)

// LinearOutput is the backtrace output of the linear 2-D engine: the
// two aligned streams (gaps inserted), plus whichever optional outputs
// were requested.
type LinearOutput struct {
	Out1, Out2 *symbol.Stream
	// Median holds either the gapped median or the column union,
	// whichever was requested; spec.md §7 treats them as sharing one
	// output slot, so requesting both is a precondition violation.
	Median   *symbol.Stream
	Ungapped *symbol.Stream
}

// BacktraceLinear reconstructs the aligned streams (and optional
// medians) from a populated LinearResult. swapped selects the
// tie-break order: false prefers ALIGN > DELETE > INSERT; true prefers
// ALIGN > INSERT > DELETE. This is the mechanism by which a pair of
// streams produces identical aligned output regardless of which order
// they were passed in (spec.md §4.G).
func BacktraceLinear(res *LinearResult, s1, s2 *symbol.Stream, cm *costmatrix.Expanded, swapped, wantGapped, wantUngapped, wantUnion bool) (*LinearOutput, error) {
	if wantGapped && wantUnion {
		return nil, fmt.Errorf("align2d: precondition violated: want_gapped and want_union cannot both be set (shared output slot)")
	}

	capacity := res.M + res.N + 2
	out1 := symbol.NewStream(capacity)
	out2 := symbol.NewStream(capacity)
	var median, ungapped *symbol.Stream
	if wantGapped || wantUnion {
		median = symbol.NewStream(capacity)
	}
	if wantUngapped {
		ungapped = symbol.NewStream(capacity)
	}

	gap := cm.Alphabet.Gap()

	i, j := res.M, res.N
	for i > 0 || j > 0 {
		var move LinearDir
		switch {
		case i == 0:
			move = DirInsert
		case j == 0:
			move = DirDelete
		default:
			flags := res.At(i, j)
			move = pickMove(flags, swapped)
		}

		var a, b symbol.Symbol
		switch move {
		case DirAlign:
			a, b = s1.At(i-1), s2.At(j-1)
			i--
			j--
		case DirDelete:
			a, b = s1.At(i-1), gap
			i--
		case DirInsert:
			a, b = gap, s2.At(j-1)
			j--
		default:
			return nil, fmt.Errorf("align2d: backtrace reached a cell with no valid direction at (%d,%d)", i, j)
		}

		if err := out1.Prepend(a); err != nil {
			return nil, err
		}
		if err := out2.Prepend(b); err != nil {
			return nil, err
		}

		if wantGapped || wantUnion {
			var m symbol.Symbol
			if wantUnion {
				m = symbol.Union(a, b)
			} else {
				m = cm.MedianOf(a, b)
			}
			if err := median.Prepend(m); err != nil {
				return nil, err
			}
		}
		if wantUngapped {
			med := cm.MedianOf(a, b)
			if med != gap {
				if err := ungapped.Prepend(med); err != nil {
					return nil, err
				}
			}
		}
	}

	// Legacy invariant: every emitted stream is prefixed with one
	// leading gap symbol (spec.md §3, §4.G).
	if err := out1.Prepend(gap); err != nil {
		return nil, err
	}
	if err := out2.Prepend(gap); err != nil {
		return nil, err
	}
	if median != nil {
		if err := median.Prepend(gap); err != nil {
			return nil, err
		}
	}
	if ungapped != nil {
		if err := ungapped.Prepend(gap); err != nil {
			return nil, err
		}
	}

	return &LinearOutput{Out1: out1, Out2: out2, Median: median, Ungapped: ungapped}, nil
}

// pickMove resolves a (possibly multi-bit) tie between directions
// according to the canonical order for the given swap orientation.
func pickMove(flags LinearDir, swapped bool) LinearDir {
	if flags&DirAlign != 0 {
		return DirAlign
	}
	if !swapped {
		if flags&DirDelete != 0 {
			return DirDelete
		}
		if flags&DirInsert != 0 {
			return DirInsert
		}
		return 0
	}
	if flags&DirInsert != 0 {
		return DirInsert
	}
	if flags&DirDelete != 0 {
		return DirDelete
	}
	return 0
}
