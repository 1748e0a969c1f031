package powell

import (
	"github.com/ndaniels/dynalign/costmatrix"
	"github.com/ndaniels/dynalign/symbol"
)

// Context holds everything a single Align call needs: the three input
// streams (in lesser <= middle <= longer length order, per spec.md §6's
// align_3d_powell signature), the expanded triple cost matrix, and the
// affine gap parameters. This replaces the original implementation's
// mutable package-level globals (costOffset epoch, furthestReached,
// checkpoint_cost, the FSM-transition arrays, the current
// input-character pointers); spec.md §5's redesign instruction is that
// a correct re-implementation folds all of that into a per-call context
// object instead. Context is not safe for concurrent reuse across
// simultaneous Align calls.
type Context struct {
	Lesser, Middle, Longer *symbol.Stream
	CM3                    *costmatrix.Expanded3D
	GapOpen, GapExtend     int

	// CheckpointWidth bounds the base-case problem size: once a
	// recursive sub-problem's longer-stream span drops to or below
	// this many symbols, Align solves it directly instead of
	// checkpointing and splitting further (spec.md §4.I's base case).
	CheckpointWidth int
}

// DefaultCheckpointWidth picks a checkpoint width proportional to the
// longest input stream: small enough to bound a single base-case
// search, large enough to keep the recursion shallow.
func DefaultCheckpointWidth(lengths ...int) int {
	longest := 0
	for _, l := range lengths {
		if l > longest {
			longest = l
		}
	}
	w := longest / 8
	if w < 16 {
		w = 16
	}
	return w
}
