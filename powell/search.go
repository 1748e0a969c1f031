package powell

import (
	"container/heap"
	"fmt"
)

// diag is a search state: the signed offsets of the longer stream's
// current position relative to the middle and lesser streams, plus
// which streams are mid-gap. d12 = longerIdx - middleIdx; d13 =
// longerIdx - lesserIdx. The search advances furthest-reach along the
// longer stream for each (d12, d13, gap) combination (spec.md §4.I).
type diag struct {
	d12, d13 int
	gap      GapState
}

// checkpointMark is the (longerIdx, middleIdx, lesserIdx) position at
// which a state's path first reached or passed the search's checkpoint
// threshold (half the longer stream's span for this call). It is
// carried forward from parent to child as the search expands, so by
// the time the search reaches its final state the checkpoint is
// already known: no after-the-fact scan of a materialized path is
// needed to find it (spec.md §4.I's checkpoint-during-search design).
type checkpointMark struct {
	longerIdx, middleIdx, lesserIdx int
	valid                           bool
}

// deriveCheckpoint propagates a parent's checkpoint mark unchanged, or
// fixes a fresh one the first time furthest reaches the threshold.
func deriveCheckpoint(parent checkpointMark, threshold, furthest, middleIdx, lesserIdx int) checkpointMark {
	if parent.valid {
		return parent
	}
	if furthest >= threshold {
		return checkpointMark{longerIdx: furthest, middleIdx: middleIdx, lesserIdx: lesserIdx, valid: true}
	}
	return checkpointMark{}
}

// frontierEntry is the best-known (cost, furthest) pair for a diag
// state, its checkpoint mark, and the predecessor needed to reconstruct
// a path that reached it. The predecessor chain is only ever walked by
// the base-case search (the only level that materializes an explicit
// move sequence); recursive, above-base-case levels read a state's
// checkpoint mark directly off its final frontierEntry instead.
type frontierEntry struct {
	cost, furthest int
	checkpoint     checkpointMark
	fromSt         diag
	fromCost       int
	viaMove        int // index into moves[]; -1 at the search origin
}

type queueItem struct {
	cost, furthest int
	st             diag
	checkpoint     checkpointMark
	fromSt         diag
	fromCost       int
	viaMove        int
}

type priorityQueue []*queueItem

func (pq priorityQueue) Len() int { return len(pq) }
func (pq priorityQueue) Less(i, j int) bool {
	if pq[i].cost != pq[j].cost {
		return pq[i].cost < pq[j].cost
	}
	return pq[i].furthest > pq[j].furthest
}
func (pq priorityQueue) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }
func (pq *priorityQueue) Push(x any)   { *pq = append(*pq, x.(*queueItem)) }
func (pq *priorityQueue) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}

// searchResult is the outcome of a bounded three-way search: the
// optimal cost, the diag state it finished in, and every visited diag's
// finalized frontier entry (the shortest-path tree).
type searchResult struct {
	cost    int
	final   diag
	visited map[diag]frontierEntry
}

// search runs a Dijkstra-ordered furthest-reach expansion over diag
// states for the half-open substream ranges
// [lesserOff, lesserOff+lesserLen) etc. checkpointThreshold is the
// furthest-reach value (along the longer stream) at which each
// expanded state's checkpointMark is fixed; solve's base case passes
// longerLen itself, so the mark only ever fires at the final cell,
// where solve ignores it.
//
// Move costs are read directly from ctx.CM3 (itself an O(1) lookup),
// so — unlike the original algorithm, which relies on edge weights
// drawn from a small fixed integer set to use a pure bucket queue —
// this implementation uses a standard binary heap ordered by
// (cost, -furthest). That generalizes correctly to the data-dependent
// costs an ambiguous cost matrix produces, at the expense of the
// literal O(n·log d + d³) bound; cost optimality and the
// furthest-reach/diag-state architecture spec.md §4.I names are
// preserved exactly, and the checkpoint mark is derived during this
// single expansion rather than by replaying a materialized path
// afterward (solve, in reconstruct.go, never runs a second search over the same range
// just to locate a split point).
func search(ctx *Context, lesserOff, lesserLen, middleOff, middleLen, longerOff, longerLen, checkpointThreshold int) (*searchResult, error) {
	targetD12 := longerLen - middleLen
	targetD13 := longerLen - lesserLen

	visited := make(map[diag]frontierEntry)
	pq := &priorityQueue{}
	heap.Init(pq)
	originCheckpoint := deriveCheckpoint(checkpointMark{}, checkpointThreshold, 0, 0, 0)
	heap.Push(pq, &queueItem{cost: 0, furthest: 0, st: diag{}, viaMove: -1, checkpoint: originCheckpoint})

	var finalEntry *frontierEntry
	var finalSt diag

	for pq.Len() > 0 {
		it := heap.Pop(pq).(*queueItem)

		if existing, ok := visited[it.st]; ok {
			if existing.cost < it.cost || (existing.cost == it.cost && existing.furthest >= it.furthest) {
				continue // dominated: a stale, lazily-deleted queue entry
			}
		}
		entry := frontierEntry{
			cost: it.cost, furthest: it.furthest, checkpoint: it.checkpoint,
			fromSt: it.fromSt, fromCost: it.fromCost, viaMove: it.viaMove,
		}
		visited[it.st] = entry

		if it.st.d12 == targetD12 && it.st.d13 == targetD13 && it.furthest == longerLen {
			finalEntry = &entry
			finalSt = it.st
			break
		}

		middleIdx := it.furthest - it.st.d12
		lesserIdx := it.furthest - it.st.d13

		for mi, m := range moves {
			newFurthest := it.furthest + m.dLonger
			newMiddleIdx := middleIdx + m.dMiddle
			newLesserIdx := lesserIdx + m.dLesser
			if newFurthest < 0 || newFurthest > longerLen ||
				newMiddleIdx < 0 || newMiddleIdx > middleLen ||
				newLesserIdx < 0 || newLesserIdx > lesserLen {
				continue
			}

			a, b, c := ctx.CM3.Alphabet.Gap(), ctx.CM3.Alphabet.Gap(), ctx.CM3.Alphabet.Gap()
			if m.dLonger == 1 {
				a = ctx.Longer.At(longerOff + it.furthest)
			}
			if m.dMiddle == 1 {
				b = ctx.Middle.At(middleOff + middleIdx)
			}
			if m.dLesser == 1 {
				c = ctx.Lesser.At(lesserOff + lesserIdx)
			}

			newGap := m.gapState()
			moveCost := ctx.CM3.BestCostOf(a, b, c) +
				gapOpenSurcharge(ctx, it.st.gap, newGap) +
				gapExtendSurcharge(ctx, newGap)

			newSt := diag{
				d12: it.st.d12 + (m.dLonger - m.dMiddle),
				d13: it.st.d13 + (m.dLonger - m.dLesser),
				gap: newGap,
			}
			newCost := it.cost + moveCost

			if existing, ok := visited[newSt]; ok &&
				(existing.cost < newCost || (existing.cost == newCost && existing.furthest >= newFurthest)) {
				continue
			}

			newCheckpoint := deriveCheckpoint(it.checkpoint, checkpointThreshold, newFurthest, newMiddleIdx, newLesserIdx)

			heap.Push(pq, &queueItem{
				cost: newCost, furthest: newFurthest, st: newSt,
				fromCost: it.cost, fromSt: it.st, viaMove: mi,
				checkpoint: newCheckpoint,
			})
		}
	}

	if finalEntry == nil {
		return nil, fmt.Errorf("powell: search exhausted without reaching the final cell")
	}
	return &searchResult{cost: finalEntry.cost, final: finalSt, visited: visited}, nil
}

// gapOpenSurcharge charges GapOpen once for every stream that
// transitions from "not gapped" to "gapped" under this move.
func gapOpenSurcharge(ctx *Context, from, to GapState) int {
	opened := to &^ from
	cost := 0
	if opened&GapLonger != 0 {
		cost += ctx.GapOpen
	}
	if opened&GapMiddle != 0 {
		cost += ctx.GapOpen
	}
	if opened&GapLesser != 0 {
		cost += ctx.GapOpen
	}
	return cost
}

// gapExtendSurcharge charges GapExtend once for every stream that is
// gapped after this move, whether the gap just opened or an existing
// run is continuing. Combined with gapOpenSurcharge, a run of length L
// in one stream is charged GapOpen + L*GapExtend in total — spec.md's
// glossary definition of affine gap cost — layered on top of
// ctx.CM3.BestCostOf's own per-step baseline the same way align2d's
// affine engine layers its GapOpen surcharge on top of
// TailCostOf/PrependCostOf.
func gapExtendSurcharge(ctx *Context, to GapState) int {
	cost := 0
	if to&GapLonger != 0 {
		cost += ctx.GapExtend
	}
	if to&GapMiddle != 0 {
		cost += ctx.GapExtend
	}
	if to&GapLesser != 0 {
		cost += ctx.GapExtend
	}
	return cost
}
