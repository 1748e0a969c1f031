// Package align3d implements the 3-D Needleman-Wunsch fill under a
// linear gap cost (component H) and its backtrace (component J's
// three-way median/union reconstruction). Three streams are aligned
// simultaneously; every cell has up to seven predecessor moves, one for
// each non-empty subset of {advance s1, advance s2, advance s3}.
package align3d

// Dir3D is a bit-set of the seven possible predecessor moves into a
// cube cell. A cell may combine flags when several moves tie for the
// optimum; backtrace resolves ties with a fixed priority order that
// favors aligning all three streams, then pairwise alignments, then
// single-stream gaps (spec.md §4.H/§4.G's tie-break philosophy
// generalized to three streams).
type Dir3D uint16

const (
	Dir3AlignAll Dir3D = 1 << iota // (i-1,j-1,k-1): all three streams advance
	Dir3Align12                    // (i-1,j-1,k):   s1,s2 advance; s3 gapped
	Dir3Align13                    // (i-1,j,k-1):   s1,s3 advance; s2 gapped
	Dir3Align23                    // (i,j-1,k-1):   s2,s3 advance; s1 gapped
	Dir3Gap1                       // (i-1,j,k):     only s1 advances
	Dir3Gap2                       // (i,j-1,k):     only s2 advances
	Dir3Gap3                       // (i,j,k-1):     only s3 advances
)

// priority3D lists the seven moves in the tie-break order backtrace
// applies: prefer consuming as many streams at once as possible, then
// fall back toward single-stream gaps.
var priority3D = [...]Dir3D{
	Dir3AlignAll, Dir3Align12, Dir3Align13, Dir3Align23,
	Dir3Gap1, Dir3Gap2, Dir3Gap3,
}
