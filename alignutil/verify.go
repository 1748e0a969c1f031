package alignutil

import (
	"fmt"

	"github.com/ndaniels/dynalign/costmatrix"
	"github.com/ndaniels/dynalign/symbol"
)

// VerifyLinear re-sums the cost of an already-produced 2-D alignment
// under a linear (non-affine) cost matrix, so callers can cross-check
// an engine's reported cost (spec.md §4.J, §8 "verify round-trip").
func VerifyLinear(out1, out2 *symbol.Stream, cm *costmatrix.Expanded) (int, error) {
	if out1.Len() != out2.Len() {
		return 0, fmt.Errorf("alignutil: verify requires equal-length streams, got %d and %d", out1.Len(), out2.Len())
	}
	cost := 0
	for i := 0; i < out1.Len(); i++ {
		cost += cm.BestCostOf(out1.At(i), out2.At(i))
	}
	return cost, nil
}

// VerifyAffine re-sums the cost of an already-produced 2-D alignment
// under an affine cost matrix, tracking — independently for each
// stream — whether it is currently inside a gap run, so a run's first
// column is charged GapOpen and every subsequent column in the same run
// is charged only the per-symbol extend cost (cm.TailCostOf /
// cm.PrependCostOf), mirroring FillAffine's own plane recurrence
// exactly (spec.md §4.J).
func VerifyAffine(out1, out2 *symbol.Stream, cm *costmatrix.Expanded) (int, error) {
	if out1.Len() != out2.Len() {
		return 0, fmt.Errorf("alignutil: verify requires equal-length streams, got %d and %d", out1.Len(), out2.Len())
	}
	if !cm.Affine {
		return 0, fmt.Errorf("alignutil: VerifyAffine requires an affine cost matrix (gap_open != 0)")
	}
	gap := cm.Alphabet.Gap()

	cost := 0
	inRun1, inRun2 := false, false
	for i := 0; i < out1.Len(); i++ {
		a, b := out1.At(i), out2.At(i)
		switch {
		case a == gap && b == gap:
			// Shared gap column (e.g. the leading sentinel every engine
			// emits): free, and does not open or extend either run.
		case a == gap:
			if !inRun1 {
				cost += cm.GapOpen
			}
			cost += cm.PrependCostOf(b)
			inRun1 = true
			inRun2 = false
		case b == gap:
			if !inRun2 {
				cost += cm.GapOpen
			}
			cost += cm.TailCostOf(a)
			inRun2 = true
			inRun1 = false
		default:
			cost += cm.BestCostOf(a, b)
			inRun1 = false
			inRun2 = false
		}
	}
	return cost, nil
}
