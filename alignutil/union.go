// Package alignutil implements component J: utilities that operate on
// an already-produced alignment rather than computing one — column-wise
// union, affine-aware ancestor reconstruction, and cost verification
// (spec.md §4.J).
package alignutil

import (
	"fmt"

	"github.com/ndaniels/dynalign/symbol"
)

// Union returns the column-wise bit-set OR of two equal-length aligned
// streams: the symbol at position i is the union of every state either
// parent permits there. Unlike a cost-matrix median, this carries no
// notion of "cheapest" resolution — it is a pure set operation, useful
// for merging two alignments of the same underlying sequence that were
// produced independently (spec.md §4.J).
func Union(s1, s2 *symbol.Stream) (*symbol.Stream, error) {
	if s1.Len() != s2.Len() {
		return nil, fmt.Errorf("alignutil: union requires equal-length streams, got %d and %d", s1.Len(), s2.Len())
	}
	out := make([]symbol.Symbol, s1.Len())
	for i := range out {
		out[i] = s1.At(i) | s2.At(i)
	}
	return symbol.FromSymbols(out), nil
}
