// Package powell implements the Powell/Allison/Dix checkpointed
// three-way linear-gap alignment (component I): a furthest-reaching
// search over (Δ12, Δ13, gap-state) ordered by increasing edit cost,
// with recursive checkpoint-based reconstruction once a problem's
// longer-stream span exceeds a base-case width (spec.md §4.I).
package powell

import "github.com/ndaniels/dynalign/align3d"

// GapState is an 8-valued bitmask tracking, for a search state, which
// of the three streams is presently inside an unclosed gap run. The
// original algorithm (POY's ukkCommon.h, MAX_STATES = 27) tracks a
// finer per-stream {match, delete, insert} role for every search state
// (3^3 = 27 combinations); this implementation tracks only whether each
// stream is currently gapped (2^3 = 8). That is enough to charge
// gap-open once per run and gap-extend once per gapped step per stream
// (search.go's gapOpenSurcharge/gapExtendSurcharge) — the same
// information align2d's affine engine tracks per single stream — while
// keeping the search state space small enough for a plain Go map rather
// than a hand-sized FSM transition table.
type GapState uint8

const (
	GapLonger GapState = 1 << iota
	GapMiddle
	GapLesser
)

// move is one of the seven non-empty advance combinations, reusing
// align3d's Dir3D identity so the two 3-way engines name the same move
// the same way.
type move struct {
	dir                       align3d.Dir3D
	dLonger, dMiddle, dLesser int
}

var moves = [...]move{
	{align3d.Dir3AlignAll, 1, 1, 1},
	{align3d.Dir3Align12, 1, 1, 0},
	{align3d.Dir3Align13, 1, 0, 1},
	{align3d.Dir3Align23, 0, 1, 1},
	{align3d.Dir3Gap1, 1, 0, 0},
	{align3d.Dir3Gap2, 0, 1, 0},
	{align3d.Dir3Gap3, 0, 0, 1},
}

// gapState returns the GapState a stream finds itself in immediately
// after this move: a stream that did not advance is "in a gap".
func (m move) gapState() GapState {
	var g GapState
	if m.dLonger == 0 {
		g |= GapLonger
	}
	if m.dMiddle == 0 {
		g |= GapMiddle
	}
	if m.dLesser == 0 {
		g |= GapLesser
	}
	return g
}
