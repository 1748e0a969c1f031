// Package symbol implements bit-encoded ambiguous symbols and the
// prepend-only stream buffers the alignment engines read and write.
//
// A symbol is a bit-set over an alphabet of up to 64 unambiguous states.
// Bit i set means "state i is possible." The gap state is the distinguished
// bit at position K-1 (0-indexed, K counting gap as a state).
package symbol

import (
	"fmt"
	"math/bits"
)

// MaxAlphabetSize is the largest alphabet this package can encode: a
// Symbol is a uint64 bit-set, so at most 64 states (including gap) fit.
const MaxAlphabetSize = 64

// Symbol is an ambiguous symbol: a bit-set over an alphabet of K states.
// Bit i corresponds to unambiguous state i.
type Symbol uint64

// Alphabet describes the size and distinguished gap bit of a symbol
// alphabet. K is the number of unambiguous states, including gap.
type Alphabet struct {
	K int
}

// NewAlphabet returns an Alphabet of K unambiguous states (including the
// gap state). It panics if K is outside [1, MaxAlphabetSize], since that
// is a programmer error, not a runtime condition callers should need to
// recover from.
func NewAlphabet(k int) Alphabet {
	if k < 1 || k > MaxAlphabetSize {
		panic(fmt.Sprintf("symbol: alphabet size %d out of range [1, %d]", k, MaxAlphabetSize))
	}
	return Alphabet{K: k}
}

// Gap returns the distinguished gap symbol: a single bit at position K-1.
func (a Alphabet) Gap() Symbol {
	return Symbol(1) << uint(a.K-1)
}

// FullyAmbiguous returns the symbol with all unambiguous (non-gap) states
// set: the low K-1 bits.
func (a Alphabet) FullyAmbiguous() Symbol {
	return Symbol(1)<<uint(a.K-1) - 1
}

// State returns the singleton symbol for unambiguous state i (0-indexed).
func (a Alphabet) State(i int) Symbol {
	if i < 0 || i >= a.K {
		panic(fmt.Sprintf("symbol: state %d out of range [0, %d)", i, a.K))
	}
	return Symbol(1) << uint(i)
}

// IsGap reports whether s is exactly the gap symbol.
func (a Alphabet) IsGap(s Symbol) bool {
	return s == a.Gap()
}

// Union returns the bitwise union (OR) of two symbols.
func Union(a, b Symbol) Symbol {
	return a | b
}

// Intersects reports whether a and b share at least one possible state.
func Intersects(a, b Symbol) bool {
	return a&b != 0
}

// Cardinality returns the number of unambiguous states a symbol denotes.
func Cardinality(s Symbol) int {
	return bits.OnesCount64(uint64(s))
}

// EachState calls fn once for each unambiguous state index set in s, in
// increasing order, stopping early if fn returns false.
func EachState(s Symbol, fn func(i int) bool) {
	for v := uint64(s); v != 0; {
		i := bits.TrailingZeros64(v)
		if !fn(i) {
			return
		}
		v &= v - 1
	}
}
