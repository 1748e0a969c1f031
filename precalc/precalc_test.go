package precalc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ndaniels/dynalign/costmatrix"
	"github.com/ndaniels/dynalign/symbol"
)

func nucleotideMatrix(t *testing.T) *costmatrix.Expanded {
	const k = 5
	base := make([][]int, k)
	for i := range base {
		base[i] = make([]int, k)
		for j := range base[i] {
			if i != j {
				base[i][j] = 1
			}
		}
	}
	e, err := costmatrix.Expand(costmatrix.Base{K: k, T: base, Metric: true}, 0)
	require.NoError(t, err)
	return e
}

func TestBuildMatchesDirectLookup(t *testing.T) {
	cm := nucleotideMatrix(t)
	a := cm.Alphabet
	target := symbol.FromSymbols([]symbol.Symbol{a.State(0), a.State(2), a.State(3)}) // A G T

	table, _ := Build(target, cm, nil)
	require.Equal(t, 3, table.N)

	for sym := 0; sym < cm.Size; sym++ {
		for j := 0; j < 3; j++ {
			want := cm.BestCostOf(symbol.Symbol(sym), target.At(j))
			assert.Equal(t, want, table.At(symbol.Symbol(sym), j), "a=%d j=%d", sym, j)
		}
	}
}

func TestBuildReusesBuffer(t *testing.T) {
	cm := nucleotideMatrix(t)
	a := cm.Alphabet
	target := symbol.FromSymbols([]symbol.Symbol{a.State(0), a.State(1)})

	buf := make([]int, cm.Size*2+100)
	_, out := Build(target, cm, buf)
	// same backing array when buffer was already large enough
	assert.Equal(t, cap(buf), cap(out))
}

func TestRowIsContiguous(t *testing.T) {
	cm := nucleotideMatrix(t)
	a := cm.Alphabet
	target := symbol.FromSymbols([]symbol.Symbol{a.State(0), a.State(2)})
	table, _ := Build(target, cm, nil)

	row := table.Row(a.State(0))
	assert.Equal(t, table.At(a.State(0), 0), row[0])
	assert.Equal(t, table.At(a.State(0), 1), row[1])
}
