package alignutil

import (
	"fmt"

	"github.com/ndaniels/dynalign/costmatrix"
	"github.com/ndaniels/dynalign/symbol"
)

// Ancestor2 builds the gapped and ungapped consensus (median) of two
// already-aligned, equal-length parent streams, applying affine
// "block correction": a column where both parents are simultaneously
// gapped belongs entirely to a single shared indel event, so its median
// is forced to gap regardless of what the raw pivot-consensus formula
// would otherwise resolve it to — without this, a column where every
// pivot happens to tie against gap (degenerate but possible under a
// non-metric cost matrix) could start a spurious one-column run in the
// ungapped median in the middle of what should read as one contiguous
// gap block in both parents (spec.md §4.J).
func Ancestor2(out1, out2 *symbol.Stream, cm *costmatrix.Expanded) (gapped, ungapped *symbol.Stream, err error) {
	if out1.Len() != out2.Len() {
		return nil, nil, fmt.Errorf("alignutil: ancestor requires equal-length streams, got %d and %d", out1.Len(), out2.Len())
	}
	gap := cm.Alphabet.Gap()

	gappedSyms := make([]symbol.Symbol, out1.Len())
	ungappedSyms := make([]symbol.Symbol, 0, out1.Len())

	for i := 0; i < out1.Len(); i++ {
		a, b := out1.At(i), out2.At(i)
		var med symbol.Symbol
		if a == gap && b == gap {
			med = gap
		} else {
			med = cm.MedianOf(a, b)
		}
		gappedSyms[i] = med
		if med != gap {
			ungappedSyms = append(ungappedSyms, med)
		}
	}

	return symbol.FromSymbols(gappedSyms), symbol.FromSymbols(ungappedSyms), nil
}
