package align3d

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ndaniels/dynalign/costmatrix"
	"github.com/ndaniels/dynalign/matrixpool"
	"github.com/ndaniels/dynalign/symbol"
)

func nucleotideBase() costmatrix.Base {
	const k = 5
	t := make([][]int, k)
	for i := range t {
		t[i] = make([]int, k)
		for j := range t[i] {
			if i != j {
				t[i][j] = 1
			}
		}
	}
	return costmatrix.Base{K: k, T: t, Metric: true}
}

func nucStream(a symbol.Alphabet, s string) *symbol.Stream {
	idx := map[byte]int{'A': 0, 'C': 1, 'G': 2, 'T': 3}
	syms := make([]symbol.Symbol, len(s))
	for i := 0; i < len(s); i++ {
		syms[i] = a.State(idx[s[i]])
	}
	return symbol.FromSymbols(syms)
}

func TestFillLinear3DAllIdentical(t *testing.T) {
	cm3, err := costmatrix.Expand3D(nucleotideBase())
	require.NoError(t, err)
	a := cm3.Alphabet

	s1 := nucStream(a, "ACGT")
	s2 := nucStream(a, "ACGT")
	s3 := nucStream(a, "ACGT")

	pool := matrixpool.New()
	res, err := FillLinear3D(s1, s2, s3, cm3, pool)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Cost)

	out, err := Backtrace3D(res, s1, s2, s3, cm3, false)
	require.NoError(t, err)
	assert.Equal(t, 5, out.Out1.Len())
}

func TestFillLinear3DSingleDeletionInOneStream(t *testing.T) {
	cm3, err := costmatrix.Expand3D(nucleotideBase())
	require.NoError(t, err)
	a := cm3.Alphabet

	s1 := nucStream(a, "ACGT")
	s2 := nucStream(a, "ACGT")
	s3 := nucStream(a, "AGT")

	pool := matrixpool.New()
	res, err := FillLinear3D(s1, s2, s3, cm3, pool)
	require.NoError(t, err)
	// Deleting C from s3 while s1,s2 match costs best_cost(C,C,gap).
	expected := cm3.BestCostOf(a.State(1), a.State(1), a.Gap())
	assert.Equal(t, expected, res.Cost)
}

func TestFillLinear3DRejectsNonLongestFirstStream(t *testing.T) {
	cm3, err := costmatrix.Expand3D(nucleotideBase())
	require.NoError(t, err)
	a := cm3.Alphabet

	s1 := nucStream(a, "AG")
	s2 := nucStream(a, "ACGT")
	s3 := nucStream(a, "ACGT")

	pool := matrixpool.New()
	_, err = FillLinear3D(s1, s2, s3, cm3, pool)
	assert.Error(t, err)
}

func TestBacktrace3DGappedMedian(t *testing.T) {
	cm3, err := costmatrix.Expand3D(nucleotideBase())
	require.NoError(t, err)
	a := cm3.Alphabet

	s1 := nucStream(a, "ACGT")
	s2 := nucStream(a, "ACGT")
	s3 := nucStream(a, "ACGT")

	pool := matrixpool.New()
	res, err := FillLinear3D(s1, s2, s3, cm3, pool)
	require.NoError(t, err)

	out, err := Backtrace3D(res, s1, s2, s3, cm3, true)
	require.NoError(t, err)
	assert.Equal(t, out.Out1.Len(), out.Gapped.Len())
	assert.Equal(t, out.Out1.Len(), out.Ungapped.Len())
}
