package align3d

import (
	"fmt"

	"github.com/ndaniels/dynalign/costmatrix"
	"github.com/ndaniels/dynalign/symbol"
)

// Output3D is the backtrace output of the 3-D linear engine: the three
// aligned streams, plus the gapped median and its gap-stripped form.
type Output3D struct {
	Out1, Out2, Out3 *symbol.Stream
	Gapped           *symbol.Stream
	Ungapped         *symbol.Stream
}

// Backtrace3D reconstructs the three aligned streams (and medians) from
// a populated Result3D, resolving ties with priority3D's fixed order
// (spec.md §4.G generalized to three streams).
func Backtrace3D(res *Result3D, s1, s2, s3 *symbol.Stream, cm3 *costmatrix.Expanded3D, wantMedians bool) (*Output3D, error) {
	capacity := res.L1 + res.L2 + res.L3 + 3
	out1 := symbol.NewStream(capacity)
	out2 := symbol.NewStream(capacity)
	out3 := symbol.NewStream(capacity)
	var gapped, ungapped *symbol.Stream
	if wantMedians {
		gapped = symbol.NewStream(capacity)
		ungapped = symbol.NewStream(capacity)
	}

	gap := cm3.Alphabet.Gap()
	i, j, k := res.L1, res.L2, res.L3

	for i > 0 || j > 0 || k > 0 {
		flags := res.At(i, j, k)
		move, err := pickMove3D(flags, i, j, k)
		if err != nil {
			return nil, err
		}

		a1, a2, a3 := gap, gap, gap
		switch move {
		case Dir3AlignAll:
			a1, a2, a3 = s1.At(i-1), s2.At(j-1), s3.At(k-1)
			i, j, k = i-1, j-1, k-1
		case Dir3Align12:
			a1, a2 = s1.At(i-1), s2.At(j-1)
			i, j = i-1, j-1
		case Dir3Align13:
			a1, a3 = s1.At(i-1), s3.At(k-1)
			i, k = i-1, k-1
		case Dir3Align23:
			a2, a3 = s2.At(j-1), s3.At(k-1)
			j, k = j-1, k-1
		case Dir3Gap1:
			a1 = s1.At(i - 1)
			i--
		case Dir3Gap2:
			a2 = s2.At(j - 1)
			j--
		case Dir3Gap3:
			a3 = s3.At(k - 1)
			k--
		}

		if err := out1.Prepend(a1); err != nil {
			return nil, err
		}
		if err := out2.Prepend(a2); err != nil {
			return nil, err
		}
		if err := out3.Prepend(a3); err != nil {
			return nil, err
		}

		if wantMedians {
			med := cm3.MedianOf(a1, a2, a3)
			if err := gapped.Prepend(med); err != nil {
				return nil, err
			}
			if med != gap {
				if err := ungapped.Prepend(med); err != nil {
					return nil, err
				}
			}
		}
	}

	for _, s := range []*symbol.Stream{out1, out2, out3} {
		if err := s.Prepend(gap); err != nil {
			return nil, err
		}
	}
	if wantMedians {
		if err := gapped.Prepend(gap); err != nil {
			return nil, err
		}
		if err := ungapped.Prepend(gap); err != nil {
			return nil, err
		}
	}

	return &Output3D{Out1: out1, Out2: out2, Out3: out3, Gapped: gapped, Ungapped: ungapped}, nil
}

// pickMove3D resolves a (possibly multi-bit) tie using priority3D's
// fixed order, restricted to moves that are actually legal at the
// current boundary (no stream may be walked past its start).
func pickMove3D(flags Dir3D, i, j, k int) (Dir3D, error) {
	for _, m := range priority3D {
		if flags&m == 0 {
			continue
		}
		switch m {
		case Dir3AlignAll:
			if i > 0 && j > 0 && k > 0 {
				return m, nil
			}
		case Dir3Align12:
			if i > 0 && j > 0 {
				return m, nil
			}
		case Dir3Align13:
			if i > 0 && k > 0 {
				return m, nil
			}
		case Dir3Align23:
			if j > 0 && k > 0 {
				return m, nil
			}
		case Dir3Gap1:
			if i > 0 {
				return m, nil
			}
		case Dir3Gap2:
			if j > 0 {
				return m, nil
			}
		case Dir3Gap3:
			if k > 0 {
				return m, nil
			}
		}
	}
	return 0, fmt.Errorf("align3d: backtrace reached a cell with no valid direction at (%d,%d,%d)", i, j, k)
}
