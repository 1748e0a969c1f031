package powell

import (
	"fmt"

	"github.com/ndaniels/dynalign/symbol"
)

// Output is the result of a checkpointed three-way alignment: the three
// input streams restored to equal aligned length with gaps inserted,
// plus the gapped and ungapped median streams (mirroring align3d's
// Output3D and align2d's AffineOutput shapes, per spec.md §4.G/§4.I).
type Output struct {
	OutLesser, OutMiddle, OutLonger *symbol.Stream
	Gapped, Ungapped                *symbol.Stream
	Cost                            int
}

// Align runs the Powell/Allison/Dix checkpointed three-way search and
// reconstruction over ctx's three streams, which must already be
// ordered Lesser.Len() <= Middle.Len() <= Longer.Len(). Align does not
// reorder them and neither does dynalign.Align3DPowell, which passes its
// arguments through unchanged; out-of-order streams return an error.
func Align(ctx *Context) (*Output, error) {
	lesserLen, middleLen, longerLen := ctx.Lesser.Len(), ctx.Middle.Len(), ctx.Longer.Len()
	if lesserLen > middleLen || middleLen > longerLen {
		return nil, fmt.Errorf("powell: streams must be supplied in non-decreasing length order, got %d, %d, %d", lesserLen, middleLen, longerLen)
	}
	if ctx.CheckpointWidth <= 0 {
		return nil, fmt.Errorf("powell: CheckpointWidth must be positive, got %d", ctx.CheckpointWidth)
	}

	cost, path, err := solve(ctx, 0, lesserLen, 0, middleLen, 0, longerLen)
	if err != nil {
		return nil, err
	}

	capacity := lesserLen + middleLen + longerLen + 3
	out := &Output{
		OutLesser: symbol.NewStream(capacity),
		OutMiddle: symbol.NewStream(capacity),
		OutLonger: symbol.NewStream(capacity),
		Gapped:    symbol.NewStream(capacity),
		Ungapped:  symbol.NewStream(capacity),
		Cost:      cost,
	}

	gap := ctx.CM3.Alphabet.Gap()
	for i := len(path) - 1; i >= 0; i-- {
		mv := path[i]
		if err := out.OutLonger.Prepend(mv.longerSym); err != nil {
			return nil, err
		}
		if err := out.OutMiddle.Prepend(mv.middleSym); err != nil {
			return nil, err
		}
		if err := out.OutLesser.Prepend(mv.lesserSym); err != nil {
			return nil, err
		}

		median := ctx.CM3.MedianOf(mv.longerSym, mv.middleSym, mv.lesserSym)
		if err := out.Gapped.Prepend(median); err != nil {
			return nil, err
		}
		if median != gap {
			if err := out.Ungapped.Prepend(median); err != nil {
				return nil, err
			}
		}
	}

	if err := out.OutLonger.Prepend(gap); err != nil {
		return nil, err
	}
	if err := out.OutMiddle.Prepend(gap); err != nil {
		return nil, err
	}
	if err := out.OutLesser.Prepend(gap); err != nil {
		return nil, err
	}
	if err := out.Gapped.Prepend(gap); err != nil {
		return nil, err
	}
	if err := out.Ungapped.Prepend(gap); err != nil {
		return nil, err
	}

	return out, nil
}
