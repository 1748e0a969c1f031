// Package costmatrix lifts a base substitution-cost table over
// unambiguous states into a full table over ambiguity-sets (component B
// of the spec), keyed by pairs (2-D) or triples (3-D) of ambiguous
// symbols, with a precomputed best cost and median for every key.
package costmatrix

import (
	"fmt"
	"math"

	"github.com/ndaniels/dynalign/symbol"
)

// maxExpandableK is the largest base-alphabet size that can be expanded:
// beyond it, 2^K * 2^K overflows a native int index (spec.md §4.B).
const maxExpandableK = 31

// Base is a K x K integer table giving the cost of substituting
// unambiguous state i by unambiguous state j. Diagonal-zero and symmetry
// are assumed, not checked, by the optimizations in Expand.
type Base struct {
	K      int
	T      [][]int
	Metric bool
}

// Expanded is a cost matrix over ambiguity-sets: for every ordered pair
// of ambiguous symbols (a, b), BestCost gives the minimum-cost
// resolution and Median the union of all unambiguous pivots attaining
// it. Tables are row-major with stride Size = 2^K, so idx = a*Size + b.
type Expanded struct {
	Alphabet symbol.Alphabet
	Size     int

	BestCost  []int
	Median    []symbol.Symbol
	WorstCost []int

	// PrependCost[x] is the cost of aligning a gap with x (gap -> x);
	// TailCost[x] is the cost of aligning x with a gap (x -> gap).
	PrependCost []int
	TailCost    []int

	// Affine is true when GapOpen != 0; the 2-D affine engine is only
	// meaningful in that case, otherwise the linear engine applies.
	GapOpen int
	Affine  bool
}

// Expand lifts base over the given alphabet into a full Expanded table.
// gapOpen sets the affine gap-open cost; zero selects the linear model.
func Expand(base Base, gapOpen int) (*Expanded, error) {
	if base.K > maxExpandableK {
		return nil, fmt.Errorf("costmatrix: alphabet size %d exceeds maximum expandable size %d: %w",
			base.K, maxExpandableK, ErrAlphabetTooLarge)
	}
	alphabet := symbol.NewAlphabet(base.K)
	size := 1 << uint(base.K)

	e := &Expanded{
		Alphabet:  alphabet,
		Size:      size,
		BestCost:  make([]int, size*size),
		Median:    make([]symbol.Symbol, size*size),
		WorstCost: make([]int, size*size),
		GapOpen:   gapOpen,
		Affine:    gapOpen != 0,
	}

	for a := 1; a < size; a++ {
		for b := 1; b < size; b++ {
			best := math.MaxInt
			worst := 0
			var med symbol.Symbol

			for z := 0; z < base.K; z++ {
				da := distTo(base.T, a, z)
				db := distTo(base.T, b, z)
				if da == math.MaxInt || db == math.MaxInt {
					continue
				}
				sum := da + db
				switch {
				case sum < best:
					best = sum
					med = symbol.Symbol(1) << uint(z)
				case sum == best:
					med |= symbol.Symbol(1) << uint(z)
				}
				if sum > worst {
					worst = sum
				}
			}

			idx := a*size + b
			e.BestCost[idx] = best
			e.Median[idx] = med
			e.WorstCost[idx] = worst
		}
	}

	gap := int(alphabet.Gap())
	e.PrependCost = make([]int, size)
	e.TailCost = make([]int, size)
	for x := 1; x < size; x++ {
		e.PrependCost[x] = e.BestCost[gap*size+x]
		e.TailCost[x] = e.BestCost[x*size+gap]
	}

	return e, nil
}

// distTo computes min_{i in set} t[i][z], the cost of resolving ambiguity
// set `set` toward unambiguous pivot z.
func distTo(t [][]int, set int, z int) int {
	best := math.MaxInt
	for i := 0; i < len(t); i++ {
		if set&(1<<uint(i)) == 0 {
			continue
		}
		if t[i][z] < best {
			best = t[i][z]
		}
	}
	return best
}

// BestCostOf returns best_cost[a,b].
func (e *Expanded) BestCostOf(a, b symbol.Symbol) int {
	return e.BestCost[int(a)*e.Size+int(b)]
}

// MedianOf returns median[a,b].
func (e *Expanded) MedianOf(a, b symbol.Symbol) symbol.Symbol {
	return e.Median[int(a)*e.Size+int(b)]
}

// WorstCostOf returns worst_cost[a,b].
func (e *Expanded) WorstCostOf(a, b symbol.Symbol) int {
	return e.WorstCost[int(a)*e.Size+int(b)]
}

// PrependCostOf returns the cost of aligning gap -> x.
func (e *Expanded) PrependCostOf(x symbol.Symbol) int {
	return e.PrependCost[int(x)]
}

// TailCostOf returns the cost of aligning x -> gap.
func (e *Expanded) TailCostOf(x symbol.Symbol) int {
	return e.TailCost[int(x)]
}
