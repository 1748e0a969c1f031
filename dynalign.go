// Package dynalign is the single import surface for this module: it
// wires the component packages (symbol, costmatrix, matrixpool,
// precalc, align2d, align3d, powell, alignutil) behind the five entry
// points spec.md §6 names, the way the teacher's top-level `cablastp`
// package exposes `DB`/`DBConf`/`Compress` over its own internal
// compress/ subpackage.
package dynalign

import (
	"errors"

	"github.com/ndaniels/dynalign/align2d"
	"github.com/ndaniels/dynalign/align3d"
	"github.com/ndaniels/dynalign/alignutil"
	"github.com/ndaniels/dynalign/costmatrix"
	"github.com/ndaniels/dynalign/matrixpool"
	"github.com/ndaniels/dynalign/powell"
	"github.com/ndaniels/dynalign/symbol"
)

// Align2DLinearOptions configures entry point 1 (spec.md §6.1).
type Align2DLinearOptions struct {
	// Band is the Ukkonen barrier Δ; negative means unbanded.
	Band int
	WantGapped, WantUngapped, WantUnion bool
}

// Align2DLinearResult is entry point 1's output.
type Align2DLinearResult struct {
	Cost             int
	OutS1, OutS2     *symbol.Stream
	Median, Ungapped *symbol.Stream
}

// Align2DLinear runs the linear-gap 2-D engine end to end: fill then
// backtrace. s1 must be the longer-or-equal-length stream; callers that
// don't already know their longer stream should use Quick instead.
func Align2DLinear(s1, s2 *symbol.Stream, cm *costmatrix.Expanded, pool *matrixpool.Pool, opt Align2DLinearOptions) (*Align2DLinearResult, error) {
	if opt.WantGapped && opt.WantUnion {
		return nil, newError(PreconditionViolated, "want_gapped and want_union cannot both be set")
	}
	res, err := align2d.FillLinear(s1, s2, cm, pool, opt.Band)
	if err != nil {
		return nil, wrapEngineErr(err)
	}
	Log.Debug().Int("s1_len", s1.Len()).Int("s2_len", s2.Len()).Int("band", opt.Band).Int("cost", res.Cost).Msg("align_2d_linear: fill complete")

	out, err := align2d.BacktraceLinear(res, s1, s2, cm, false, opt.WantGapped, opt.WantUngapped, opt.WantUnion)
	if err != nil {
		return nil, wrapEngineErr(err)
	}
	return &Align2DLinearResult{Cost: res.Cost, OutS1: out.Out1, OutS2: out.Out2, Median: out.Median, Ungapped: out.Ungapped}, nil
}

// Align2DAffineResult is entry point 2's output.
type Align2DAffineResult struct {
	Cost             int
	OutS1, OutS2     *symbol.Stream
	Gapped, Ungapped *symbol.Stream
}

// Align2DAffine runs the affine-gap 2-D engine end to end.
func Align2DAffine(s1, s2 *symbol.Stream, cm *costmatrix.Expanded, pool *matrixpool.Pool, wantMedians bool) (*Align2DAffineResult, error) {
	res, err := align2d.FillAffine(s1, s2, cm, pool)
	if err != nil {
		return nil, wrapEngineErr(err)
	}
	Log.Debug().Int("s1_len", s1.Len()).Int("s2_len", s2.Len()).Int("cost", res.Cost).Msg("align_2d_affine: fill complete")

	out, err := align2d.BacktraceAffine(res, s1, s2, cm, wantMedians)
	if err != nil {
		return nil, wrapEngineErr(err)
	}
	return &Align2DAffineResult{Cost: res.Cost, OutS1: out.Out1, OutS2: out.Out2, Gapped: out.Gapped, Ungapped: out.Ungapped}, nil
}

// Align3DResult is entry point 3's output.
type Align3DResult struct {
	Cost                int
	OutS1, OutS2, OutS3 *symbol.Stream
	Gapped, Ungapped    *symbol.Stream
}

// Align3D runs the full-cube 3-D linear engine end to end. s1 must be
// the longest of the three streams.
func Align3D(s1, s2, s3 *symbol.Stream, cm3 *costmatrix.Expanded3D, pool *matrixpool.Pool, wantMedians bool) (*Align3DResult, error) {
	res, err := align3d.FillLinear3D(s1, s2, s3, cm3, pool)
	if err != nil {
		return nil, wrapEngineErr(err)
	}
	Log.Debug().Int("s1_len", s1.Len()).Int("s2_len", s2.Len()).Int("s3_len", s3.Len()).Int("cost", res.Cost).Msg("align_3d: fill complete")

	out, err := align3d.Backtrace3D(res, s1, s2, s3, cm3, wantMedians)
	if err != nil {
		return nil, wrapEngineErr(err)
	}
	return &Align3DResult{Cost: res.Cost, OutS1: out.Out1, OutS2: out.Out2, OutS3: out.Out3, Gapped: out.Gapped, Ungapped: out.Ungapped}, nil
}

// Align3DPowellOptions configures entry point 4 (spec.md §6.4).
type Align3DPowellOptions struct {
	GapOpen, GapExtend int
	CheckpointWidth    int // 0 selects powell.DefaultCheckpointWidth
}

// Align3DPowellResult is entry point 4's output.
type Align3DPowellResult struct {
	Cost                            int
	OutLesser, OutMiddle, OutLonger *symbol.Stream
	Gapped, Ungapped                *symbol.Stream
}

// Align3DPowell runs the checkpointed three-way engine (component I).
// The three streams must already be ordered lesser <= middle <= longer
// by length; they are passed through unchanged, and powell.Align
// returns an error when they are out of order. (Quick is two-stream
// only and does not cover this entry point.)
func Align3DPowell(lesser, middle, longer *symbol.Stream, cm3 *costmatrix.Expanded3D, opt Align3DPowellOptions) (*Align3DPowellResult, error) {
	width := opt.CheckpointWidth
	if width <= 0 {
		width = powell.DefaultCheckpointWidth(lesser.Len(), middle.Len(), longer.Len())
	}
	ctx := &powell.Context{
		Lesser: lesser, Middle: middle, Longer: longer,
		CM3: cm3, GapOpen: opt.GapOpen, GapExtend: opt.GapExtend,
		CheckpointWidth: width,
	}
	Log.Debug().Int("lesser_len", lesser.Len()).Int("middle_len", middle.Len()).Int("longer_len", longer.Len()).Int("checkpoint_width", width).Msg("align_3d_powell: starting")

	out, err := powell.Align(ctx)
	if err != nil {
		return nil, wrapEngineErr(err)
	}
	Log.Debug().Int("cost", out.Cost).Msg("align_3d_powell: complete")
	return &Align3DPowellResult{
		Cost: out.Cost, OutLesser: out.OutLesser, OutMiddle: out.OutMiddle, OutLonger: out.OutLonger,
		Gapped: out.Gapped, Ungapped: out.Ungapped,
	}, nil
}

// ExpandCostMatrix2D is entry point 5's 2-D half: expand_cost_matrix_2d.
func ExpandCostMatrix2D(base costmatrix.Base, gapOpen int) (*costmatrix.Expanded, error) {
	cm, err := costmatrix.Expand(base, gapOpen)
	if err != nil {
		return nil, wrapEngineErr(err)
	}
	return cm, nil
}

// ExpandCostMatrix3D is entry point 5's 3-D half: expand_cost_matrix_3d.
func ExpandCostMatrix3D(base costmatrix.Base) (*costmatrix.Expanded3D, error) {
	cm3, err := costmatrix.Expand3D(base)
	if err != nil {
		return nil, wrapEngineErr(err)
	}
	return cm3, nil
}

// Union exposes alignutil.Union at the top-level API surface.
func Union(s1, s2 *symbol.Stream) (*symbol.Stream, error) {
	out, err := alignutil.Union(s1, s2)
	if err != nil {
		return nil, wrapEngineErr(err)
	}
	return out, nil
}

// Ancestor2 exposes alignutil.Ancestor2 at the top-level API surface.
func Ancestor2(out1, out2 *symbol.Stream, cm *costmatrix.Expanded) (gapped, ungapped *symbol.Stream, err error) {
	gapped, ungapped, err = alignutil.Ancestor2(out1, out2, cm)
	if err != nil {
		return nil, nil, wrapEngineErr(err)
	}
	return gapped, ungapped, nil
}

// VerifyLinear exposes alignutil.VerifyLinear at the top-level API surface.
func VerifyLinear(out1, out2 *symbol.Stream, cm *costmatrix.Expanded) (int, error) {
	cost, err := alignutil.VerifyLinear(out1, out2, cm)
	if err != nil {
		return 0, wrapEngineErr(err)
	}
	return cost, nil
}

// VerifyAffine exposes alignutil.VerifyAffine at the top-level API surface.
func VerifyAffine(out1, out2 *symbol.Stream, cm *costmatrix.Expanded) (int, error) {
	cost, err := alignutil.VerifyAffine(out1, out2, cm)
	if err != nil {
		return 0, wrapEngineErr(err)
	}
	return cost, nil
}

// NewPool exposes matrixpool.New at the top-level API surface, per
// spec.md §6's "pool create/ensure/destroy" management requirement.
func NewPool() *matrixpool.Pool { return matrixpool.New() }

// wrapEngineErr lifts a lower-package error (already a descriptive
// fmt.Errorf, per that package's own convention) into a dynalign.Error:
// costmatrix.ErrAlphabetTooLarge becomes AlphabetTooLarge, and every
// other error becomes PreconditionViolated, since the remaining errors
// the component packages return are preconditions the caller violated
// (stream ordering, conflicting outputs) rather than runtime allocation
// failures — allocation failures surface instead as a panic from
// make(), caught at the API boundary by Quick's recover.
func wrapEngineErr(err error) *Error {
	if errors.Is(err, costmatrix.ErrAlphabetTooLarge) {
		return &Error{Kind: AlphabetTooLarge, Err: err}
	}
	return &Error{Kind: PreconditionViolated, Err: err}
}
