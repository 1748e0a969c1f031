package alignutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ndaniels/dynalign/align2d"
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

func TestUnionRequiresEqualLength(t *testing.T) {
	a := symbol.NewAlphabet(5)
	s1 := nucStream(a, "ACGT")
	s2 := nucStream(a, "AC")
	_, err := Union(s1, s2)
	assert.Error(t, err)
}

func TestUnionIsBitwiseOr(t *testing.T) {
	a := symbol.NewAlphabet(5)
	s1 := nucStream(a, "AC")
	s2 := nucStream(a, "AG")
	out, err := Union(s1, s2)
	require.NoError(t, err)
	assert.Equal(t, a.State(0), out.At(0)) // A | A = A
	assert.Equal(t, a.State(1)|a.State(2), out.At(1))
}

func TestVerifyLinearMatchesEngineCost(t *testing.T) {
	cm, err := costmatrix.Expand(nucleotideBase(), 0)
	require.NoError(t, err)
	a := cm.Alphabet

	s1 := nucStream(a, "ACGT")
	s2 := nucStream(a, "AGT")

	pool := matrixpool.New()
	res, err := align2d.FillLinear(s1, s2, cm, pool, -1)
	require.NoError(t, err)

	out, err := align2d.BacktraceLinear(res, s1, s2, cm, false, false, false, false)
	require.NoError(t, err)

	verified, err := VerifyLinear(out.Out1, out.Out2, cm)
	require.NoError(t, err)
	assert.Equal(t, res.Cost, verified)
}

func TestVerifyAffineMatchesEngineCost(t *testing.T) {
	cm, err := costmatrix.Expand(nucleotideBase(), 2)
	require.NoError(t, err)
	a := cm.Alphabet

	s1 := nucStream(a, "AAAA")
	s2 := nucStream(a, "AA")

	pool := matrixpool.New()
	res, err := align2d.FillAffine(s1, s2, cm, pool)
	require.NoError(t, err)

	out, err := align2d.BacktraceAffine(res, s1, s2, cm, false)
	require.NoError(t, err)

	verified, err := VerifyAffine(out.Out1, out.Out2, cm)
	require.NoError(t, err)
	assert.Equal(t, res.Cost, verified)
}

func TestVerifyAffineRejectsLinearMatrix(t *testing.T) {
	cm, err := costmatrix.Expand(nucleotideBase(), 0)
	require.NoError(t, err)
	a := cm.Alphabet
	s1 := nucStream(a, "AC")
	s2 := nucStream(a, "AC")
	_, err = VerifyAffine(s1, s2, cm)
	assert.Error(t, err)
}

func TestAncestor2ForcesGapOnSharedGapColumn(t *testing.T) {
	cm, err := costmatrix.Expand(nucleotideBase(), 0)
	require.NoError(t, err)
	a := cm.Alphabet
	gap := a.Gap()

	out1 := symbol.FromSymbols([]symbol.Symbol{gap, a.State(0)})
	out2 := symbol.FromSymbols([]symbol.Symbol{gap, a.State(0)})

	gapped, ungapped, err := Ancestor2(out1, out2, cm)
	require.NoError(t, err)
	assert.Equal(t, gap, gapped.At(0))
	assert.Equal(t, a.State(0), gapped.At(1))
	assert.Equal(t, 1, ungapped.Len())
	assert.Equal(t, a.State(0), ungapped.At(0))
}

func TestAncestor2UngappedHasNoGaps(t *testing.T) {
	cm, err := costmatrix.Expand(nucleotideBase(), 0)
	require.NoError(t, err)
	a := cm.Alphabet
	gap := a.Gap()

	out1 := nucStream(a, "ACGT")
	out2 := symbol.FromSymbols([]symbol.Symbol{a.State(0), gap, a.State(2), gap})

	_, ungapped, err := Ancestor2(out1, out2, cm)
	require.NoError(t, err)
	for i := 0; i < ungapped.Len(); i++ {
		assert.NotEqual(t, gap, ungapped.At(i))
	}
}
