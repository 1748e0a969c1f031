// Package align2d implements the 2-D Needleman-Wunsch fill under linear
// (component E) and affine (component F) gap costs, plus their shared
// backtrace and median reconstruction (component G).
package align2d

// LinearDir is a bit-set of backtrace flags for the linear-gap engine.
// A cell may combine flags to denote a tie between equally optimal
// moves; the backtrace's tie-break rule then picks among them.
type LinearDir uint16

const (
	DirAlign LinearDir = 1 << iota
	DirDelete
	DirInsert
)

// AffineDir is a bit-set of backtrace flags for the affine-gap engine.
// It packs three families of information into one 16-bit grid cell so a
// single direction matrix can drive the four-plane (M/H/V/D) backtrace
// automaton described in spec.md §4.F/§4.G:
//
//   - ALIGN_TO_*: which plane(s) M's close transition at this cell came
//     from (a tie when more than one bit is set).
//   - BEGIN_*: H/V/D were opened fresh at this cell (from M), rather
//     than extending a run already in progress. A walker moving
//     backward through a gap run stops extending as soon as it consumes
//     a cell carrying the matching BEGIN_* bit — the same Open-vs-Extend
//     distinction component G's WFA-style reference material encodes as
//     two separate op codes; here it is two bits of the same word.
//   - DO_*: which plane(s) attain the aggregate minimum F = min(M,H,V,D)
//     at this cell, i.e. where the backtrace automaton enters from its
//     initial `todo` state.
//
// 16 bits are required; packing below that would not leave room for
// all three families to coexist (spec.md §9).
type AffineDir uint16

const (
	AffAlignToAlign AffineDir = 1 << iota
	AffAlignToVertical
	AffAlignToHorizontal
	AffAlignToDiagonal
	AffBeginHorizontal
	AffBeginVertical
	AffBeginDiagonal
	AffDoAlign
	AffDoHorizontal
	AffDoVertical
	AffDoDiagonal
)

// Plane names the four coupled affine cost planes (spec.md §4.F).
type Plane uint8

const (
	PlaneM Plane = iota // close-block-diagonal: an alignment/substitution just happened
	PlaneH              // extend-horizontal: currently in a horizontal gap run
	PlaneV              // extend-vertical: currently in a vertical gap run
	PlaneD              // extend-block-diagonal: both streams in a gap run
)

// originSentinel marks the (0,0) corner cell: "came from nowhere."
// spec.md §4.F: "Corner cells carry sentinel direction 0xFFFF meaning
// origin." Backtrace must never interpret this as a real move.
const originSentinel AffineDir = 0xFFFF
