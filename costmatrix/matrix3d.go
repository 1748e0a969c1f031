package costmatrix

import (
	"fmt"
	"math"

	"github.com/ndaniels/dynalign/symbol"
)

// Expanded3D generalizes Expanded's best_cost and median to triples of
// ambiguous symbols (a, b, c), for the 3-D engines (components H and I).
// Tables are row-major with stride Size^2 for a, Size for b: idx =
// a*Size*Size + b*Size + c.
type Expanded3D struct {
	Alphabet symbol.Alphabet
	Size     int

	BestCost []int
	Median   []symbol.Symbol
}

// Expand3D lifts base over the given alphabet into a full three-way
// table, using the same consensus-over-pivot formulation as Expand:
// best_cost[a,b,c] = min_z (dist(a,z) + dist(b,z) + dist(c,z)).
func Expand3D(base Base) (*Expanded3D, error) {
	if base.K > maxExpandableK {
		return nil, fmt.Errorf("costmatrix: alphabet size %d exceeds maximum expandable size %d: %w",
			base.K, maxExpandableK, ErrAlphabetTooLarge)
	}
	alphabet := symbol.NewAlphabet(base.K)
	size := 1 << uint(base.K)

	e := &Expanded3D{
		Alphabet: alphabet,
		Size:     size,
		BestCost: make([]int, size*size*size),
		Median:   make([]symbol.Symbol, size*size*size),
	}

	for a := 1; a < size; a++ {
		for b := 1; b < size; b++ {
			for c := 1; c < size; c++ {
				best := math.MaxInt
				var med symbol.Symbol
				for z := 0; z < base.K; z++ {
					da := distTo(base.T, a, z)
					db := distTo(base.T, b, z)
					dc := distTo(base.T, c, z)
					if da == math.MaxInt || db == math.MaxInt || dc == math.MaxInt {
						continue
					}
					sum := da + db + dc
					switch {
					case sum < best:
						best = sum
						med = symbol.Symbol(1) << uint(z)
					case sum == best:
						med |= symbol.Symbol(1) << uint(z)
					}
				}
				idx := (a*size+b)*size + c
				e.BestCost[idx] = best
				e.Median[idx] = med
			}
		}
	}

	return e, nil
}

// BestCostOf returns best_cost[a,b,c].
func (e *Expanded3D) BestCostOf(a, b, c symbol.Symbol) int {
	return e.BestCost[(int(a)*e.Size+int(b))*e.Size+int(c)]
}

// MedianOf returns median[a,b,c].
func (e *Expanded3D) MedianOf(a, b, c symbol.Symbol) symbol.Symbol {
	return e.Median[(int(a)*e.Size+int(b))*e.Size+int(c)]
}
