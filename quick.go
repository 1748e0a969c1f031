package dynalign

import (
	"github.com/ndaniels/dynalign/align2d"
	"github.com/ndaniels/dynalign/costmatrix"
	"github.com/ndaniels/dynalign/matrixpool"
)

// CostOptions configures the cost matrix Quick builds before aligning:
// Table is a K x K substitution-cost table over the Alphabet's states
// including gap (K = Alphabet.K(), the non-gap states plus one gap
// state, whose row and column come last), GapOpen selects affine mode when
// nonzero, and Metric marks Table as a true metric (symmetric,
// triangle-inequality-respecting), which Expand assumes without
// checking.
type CostOptions struct {
	Table   [][]int
	GapOpen int
	Metric  bool
}

// Quick is the "just run it end to end" convenience entry point: byte
// strings in, byte strings out, internal alphabet encode/decode, pool
// and "longer stream first" bookkeeping all handled for the caller,
// mirroring the teacher's cmd/cablastp-compress/align.go's
// alignGapped wrapper over the bare nw.Align primitives.
func Quick(s1, s2 []byte, alphabet *Alphabet, costs CostOptions) (cost int, out1, out2, median []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = newError(AllocationFailed, "quick: recovered from an internal panic: %v", r)
		}
	}()

	base := costmatrix.Base{K: alphabet.K(), T: costs.Table, Metric: costs.Metric}
	cm, e := costmatrix.Expand(base, costs.GapOpen)
	if e != nil {
		return 0, nil, nil, nil, wrapEngineErr(e)
	}

	stream1, e := alphabet.Encode(s1)
	if e != nil {
		return 0, nil, nil, nil, wrapEngineErr(e)
	}
	stream2, e := alphabet.Encode(s2)
	if e != nil {
		return 0, nil, nil, nil, wrapEngineErr(e)
	}

	longer, shorter := stream1, stream2
	swapped := false
	if stream2.Len() > stream1.Len() {
		longer, shorter = stream2, stream1
		swapped = true
	}

	pool := matrixpool.New()
	defer pool.Destroy()

	var longerOut, shorterOut, gapped []byte
	if cm.Affine {
		res, e := align2d.FillAffine(longer, shorter, cm, pool)
		if e != nil {
			return 0, nil, nil, nil, wrapEngineErr(e)
		}
		out, e := align2d.BacktraceAffine(res, longer, shorter, cm, true)
		if e != nil {
			return 0, nil, nil, nil, wrapEngineErr(e)
		}
		cost = res.Cost
		longerOut, shorterOut, gapped = alphabet.Decode(out.Out1), alphabet.Decode(out.Out2), alphabet.Decode(out.Gapped)
	} else {
		res, e := align2d.FillLinear(longer, shorter, cm, pool, -1)
		if e != nil {
			return 0, nil, nil, nil, wrapEngineErr(e)
		}
		out, e := align2d.BacktraceLinear(res, longer, shorter, cm, swapped, true, false, false)
		if e != nil {
			return 0, nil, nil, nil, wrapEngineErr(e)
		}
		cost = res.Cost
		longerOut, shorterOut, gapped = alphabet.Decode(out.Out1), alphabet.Decode(out.Out2), alphabet.Decode(out.Median)
	}

	if swapped {
		return cost, shorterOut, longerOut, gapped, nil
	}
	return cost, longerOut, shorterOut, gapped, nil
}
