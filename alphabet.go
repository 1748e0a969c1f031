package dynalign

import (
	"fmt"

	"github.com/ndaniels/dynalign/symbol"
)

// Alphabet maps between caller-facing bytes and the bit-encoded
// symbol.Alphabet the engines operate on, for Quick's byte-string
// convenience layer (spec.md §6 EXPANSION).
type Alphabet struct {
	states []byte
	gap    byte
	index  map[byte]int
	sym    symbol.Alphabet
}

// NewAlphabet builds an Alphabet over the given unambiguous states plus
// one distinguished gap byte. Ambiguous input bytes (e.g. IUPAC codes
// spanning more than one state) are not supported at this convenience
// layer; callers needing ambiguity codes should build symbol.Symbol
// values directly and use the component packages.
func NewAlphabet(states []byte, gap byte) *Alphabet {
	index := make(map[byte]int, len(states))
	for i, b := range states {
		index[b] = i
	}
	return &Alphabet{
		states: states,
		gap:    gap,
		index:  index,
		sym:    symbol.NewAlphabet(len(states) + 1),
	}
}

// K is the unambiguous-state count, including gap, backing this
// Alphabet's symbol.Alphabet.
func (a *Alphabet) K() int { return a.sym.K }

// Encode converts a byte string into a symbol.Stream over this
// Alphabet, usable directly with the component-package entry points
// (e.g. Align3DPowell) when a caller needs more control than Quick
// offers.
func (a *Alphabet) Encode(s []byte) (*symbol.Stream, error) {
	syms := make([]symbol.Symbol, len(s))
	for i, b := range s {
		idx, ok := a.index[b]
		if !ok {
			return nil, fmt.Errorf("dynalign: byte %q at position %d is not in this alphabet", b, i)
		}
		syms[i] = a.sym.State(idx)
	}
	return symbol.FromSymbols(syms), nil
}

// Decode converts a symbol.Stream over this Alphabet back into a byte
// string, substituting the gap byte for the gap symbol.
func (a *Alphabet) Decode(s *symbol.Stream) []byte {
	gap := a.sym.Gap()
	out := make([]byte, 0, s.Len())
	for i := 0; i < s.Len(); i++ {
		sym := s.At(i)
		if sym == gap {
			out = append(out, a.gap)
			continue
		}
		b := byte('?')
		for idx, st := range a.states {
			if sym == a.sym.State(idx) {
				b = st
				break
			}
		}
		out = append(out, b)
	}
	return out
}
