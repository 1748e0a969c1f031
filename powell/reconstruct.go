package powell

import (
	"fmt"

	"github.com/ndaniels/dynalign/align3d"
	"github.com/ndaniels/dynalign/symbol"
)

// moveRecord is one step of a reconstructed path: which move was taken
// and the actual (gap-substituted) symbol each stream contributed.
type moveRecord struct {
	dir                                align3d.Dir3D
	longerSym, middleSym, lesserSym symbol.Symbol
}

// reconstructPath walks res's shortest-path tree backward from its
// final state to the search origin, then reverses it into forward
// (start-to-end) order.
func reconstructPath(ctx *Context, res *searchResult, lesserOff, middleOff, longerOff int) ([]moveRecord, error) {
	var chain []moveRecord
	cur := res.final
	for {
		entry, ok := res.visited[cur]
		if !ok {
			return nil, fmt.Errorf("powell: reconstruction missing visited entry for state %+v", cur)
		}
		if entry.viaMove == -1 {
			break
		}
		m := moves[entry.viaMove]
		middleIdx := entry.furthest - cur.d12
		lesserIdx := entry.furthest - cur.d13

		gap := ctx.CM3.Alphabet.Gap()
		longerSym, middleSym, lesserSym := gap, gap, gap
		if m.dLonger == 1 {
			longerSym = ctx.Longer.At(longerOff + entry.furthest - 1)
		}
		if m.dMiddle == 1 {
			middleSym = ctx.Middle.At(middleOff + middleIdx - 1)
		}
		if m.dLesser == 1 {
			lesserSym = ctx.Lesser.At(lesserOff + lesserIdx - 1)
		}

		chain = append(chain, moveRecord{dir: m.dir, longerSym: longerSym, middleSym: middleSym, lesserSym: lesserSym})
		cur = entry.fromSt
	}

	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	return chain, nil
}

// solve computes the optimal three-way edit cost and move sequence for
// the given substream ranges, per spec.md §4.I: a direct search below
// CheckpointWidth (the base case, the only level that ever
// materializes an explicit move sequence), otherwise a single forward
// search whose per-state checkpoint mark (search.go's checkpointMark)
// already pins the point the optimal path crosses the halfway line of
// the longer stream — found during that one search, not by replaying a
// fully reconstructed path afterward — with the prefix and suffix
// sub-problems then solved recursively and their move sequences
// concatenated.
func solve(ctx *Context, lesserOff, lesserLen, middleOff, middleLen, longerOff, longerLen int) (int, []moveRecord, error) {
	if longerLen <= ctx.CheckpointWidth {
		res, err := search(ctx, lesserOff, lesserLen, middleOff, middleLen, longerOff, longerLen, longerLen)
		if err != nil {
			return 0, nil, err
		}
		path, err := reconstructPath(ctx, res, lesserOff, middleOff, longerOff)
		if err != nil {
			return 0, nil, err
		}
		return res.cost, path, nil
	}

	half := longerLen / 2
	res, err := search(ctx, lesserOff, lesserLen, middleOff, middleLen, longerOff, longerLen, half)
	if err != nil {
		return 0, nil, err
	}

	cp := res.visited[res.final].checkpoint
	if !cp.valid {
		return 0, nil, fmt.Errorf("powell: search finished without a checkpoint mark")
	}
	cpLonger, cpMiddle, cpLesser := cp.longerIdx, cp.middleIdx, cp.lesserIdx

	_, preMoves, err := solve(ctx, lesserOff, cpLesser, middleOff, cpMiddle, longerOff, cpLonger)
	if err != nil {
		return 0, nil, err
	}
	_, postMoves, err := solve(ctx,
		lesserOff+cpLesser, lesserLen-cpLesser,
		middleOff+cpMiddle, middleLen-cpMiddle,
		longerOff+cpLonger, longerLen-cpLonger)
	if err != nil {
		return 0, nil, err
	}

	// res.cost is the already-known optimal cost for the whole range,
	// computed by the single search above; the recursive calls exist to
	// recover the move sequence in bounded-size pieces, not to
	// recompute the cost.
	return res.cost, append(preMoves, postMoves...), nil
}
