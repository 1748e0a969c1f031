package align2d

import (
	"fmt"

	"github.com/ndaniels/dynalign/costmatrix"
	"github.com/ndaniels/dynalign/symbol"
)

// affMode is the backtrace automaton's current state: which plane it is
// walking through. `todo` means "decide fresh from this cell's DO_*
// bits"; the other four mean "currently inside a run of that plane,
// keep extending until a BEGIN_* bit says the run started here."
type affMode uint8

const (
	modeTodo affMode = iota
	modeAlign
	modeHorizontal
	modeVertical
	modeDiagonal
)

// AffineOutput mirrors LinearOutput for the affine engine.
type AffineOutput struct {
	Out1, Out2 *symbol.Stream
	Gapped     *symbol.Stream
	Ungapped   *symbol.Stream
}

// BacktraceAffine reconstructs the aligned streams from a populated
// AffineResult by walking the mode automaton described in spec.md §4.G:
// from `todo`, the DO_* bits at the current cell select a starting
// plane; within a plane, BEGIN_* bits mark where the run started (and
// so where to fall back to `todo`); in `align` mode, the ALIGN_TO_*
// bits select which plane the close came from next.
func BacktraceAffine(res *AffineResult, s1, s2 *symbol.Stream, cm *costmatrix.Expanded, wantMedians bool) (*AffineOutput, error) {
	capacity := res.M + res.N + 2
	out1 := symbol.NewStream(capacity)
	out2 := symbol.NewStream(capacity)
	var gapped, ungapped *symbol.Stream
	if wantMedians {
		gapped = symbol.NewStream(capacity)
		ungapped = symbol.NewStream(capacity)
	}

	gap := cm.Alphabet.Gap()
	i, j := res.M, res.N
	mode := modeTodo

	emit := func(a, b symbol.Symbol) error {
		if err := out1.Prepend(a); err != nil {
			return err
		}
		if err := out2.Prepend(b); err != nil {
			return err
		}
		if wantMedians {
			med := cm.MedianOf(a, b)
			if err := gapped.Prepend(med); err != nil {
				return err
			}
			if med != gap {
				if err := ungapped.Prepend(med); err != nil {
					return err
				}
			}
		}
		return nil
	}

	for i > 0 || j > 0 {
		if i == 0 {
			mode = modeHorizontal
		} else if j == 0 {
			mode = modeVertical
		}

		flags := res.At(i, j)
		if flags == originSentinel {
			break
		}

		if mode == modeTodo {
			switch {
			case flags&AffDoAlign != 0:
				mode = modeAlign
			case flags&AffDoVertical != 0:
				mode = modeVertical
			case flags&AffDoHorizontal != 0:
				mode = modeHorizontal
			case flags&AffDoDiagonal != 0:
				mode = modeDiagonal
			default:
				return nil, fmt.Errorf("align2d: affine backtrace found no DO_* bit at (%d,%d)", i, j)
			}
		}

		switch mode {
		case modeAlign:
			if i == 0 || j == 0 {
				return nil, fmt.Errorf("align2d: affine backtrace entered align mode at a boundary cell (%d,%d)", i, j)
			}
			if err := emit(s1.At(i-1), s2.At(j-1)); err != nil {
				return nil, err
			}
			switch {
			case flags&AffAlignToAlign != 0:
				mode = modeTodo
			case flags&AffAlignToVertical != 0:
				mode = modeVertical
			case flags&AffAlignToHorizontal != 0:
				mode = modeHorizontal
			case flags&AffAlignToDiagonal != 0:
				mode = modeDiagonal
			}
			i--
			j--

		case modeHorizontal:
			if j == 0 {
				return nil, fmt.Errorf("align2d: affine backtrace entered horizontal mode at column 0")
			}
			if err := emit(gap, s2.At(j-1)); err != nil {
				return nil, err
			}
			if flags&AffBeginHorizontal != 0 {
				mode = modeTodo
			}
			j--

		case modeVertical:
			if i == 0 {
				return nil, fmt.Errorf("align2d: affine backtrace entered vertical mode at row 0")
			}
			if err := emit(s1.At(i-1), gap); err != nil {
				return nil, err
			}
			if flags&AffBeginVertical != 0 {
				mode = modeTodo
			}
			i--

		case modeDiagonal:
			if i == 0 || j == 0 {
				return nil, fmt.Errorf("align2d: affine backtrace entered diagonal mode at a boundary cell (%d,%d)", i, j)
			}
			if err := emit(gap, gap); err != nil {
				return nil, err
			}
			if flags&AffBeginDiagonal != 0 {
				mode = modeTodo
			}
			i--
			j--
		}
	}

	if err := out1.Prepend(gap); err != nil {
		return nil, err
	}
	if err := out2.Prepend(gap); err != nil {
		return nil, err
	}
	if wantMedians {
		if err := gapped.Prepend(gap); err != nil {
			return nil, err
		}
		if err := ungapped.Prepend(gap); err != nil {
			return nil, err
		}
	}

	return &AffineOutput{Out1: out1, Out2: out2, Gapped: gapped, Ungapped: ungapped}, nil
}
