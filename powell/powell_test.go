package powell

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ndaniels/dynalign/costmatrix"
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

var nucIdx = map[byte]int{'A': 0, 'C': 1, 'G': 2, 'T': 3}

func nucStream(a symbol.Alphabet, s string) *symbol.Stream {
	syms := make([]symbol.Symbol, len(s))
	for i := 0; i < len(s); i++ {
		syms[i] = a.State(nucIdx[s[i]])
	}
	return symbol.FromSymbols(syms)
}

func decode(a symbol.Alphabet, s *symbol.Stream) string {
	letters := "ACGT"
	var sb strings.Builder
	for i := 0; i < s.Len(); i++ {
		sym := s.At(i)
		switch {
		case sym == a.Gap():
			sb.WriteByte('-')
		default:
			wrote := false
			for k := 0; k < 4; k++ {
				if sym == a.State(k) {
					sb.WriteByte(letters[k])
					wrote = true
					break
				}
			}
			if !wrote {
				sb.WriteByte('?')
			}
		}
	}
	return sb.String()
}

func TestAlignAllIdentical(t *testing.T) {
	cm3, err := costmatrix.Expand3D(nucleotideBase())
	require.NoError(t, err)
	a := cm3.Alphabet

	s1 := nucStream(a, "ACGT")
	s2 := nucStream(a, "ACGT")
	s3 := nucStream(a, "ACGT")

	ctx := &Context{
		Lesser: s1, Middle: s2, Longer: s3,
		CM3: cm3, GapOpen: 2, GapExtend: 1,
		CheckpointWidth: DefaultCheckpointWidth(4, 4, 4),
	}
	out, err := Align(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, out.Cost)
	assert.Equal(t, "-ACGT", decode(a, out.OutLonger))
}

func TestAlignSingleDeletionEachStream(t *testing.T) {
	cm3, err := costmatrix.Expand3D(nucleotideBase())
	require.NoError(t, err)
	a := cm3.Alphabet

	// ACGT is the longer stream; AGT and ACT are both length-3 and each
	// drop a different interior base, per spec.md §8's worked example.
	longer := nucStream(a, "ACGT")
	middle := nucStream(a, "AGT")
	lesser := nucStream(a, "ACT")

	ctx := &Context{
		Lesser: lesser, Middle: middle, Longer: longer,
		CM3: cm3, GapOpen: 2, GapExtend: 1,
		CheckpointWidth: DefaultCheckpointWidth(3, 3, 4),
	}
	out, err := Align(ctx)
	require.NoError(t, err)
	assert.Equal(t, out.OutLonger.Len(), out.OutMiddle.Len())
	assert.Equal(t, out.OutLonger.Len(), out.OutLesser.Len())
	assert.Greater(t, out.Cost, 0)
}

func TestAlignGapExtendIncreasesCostWithGapLength(t *testing.T) {
	cm3, err := costmatrix.Expand3D(nucleotideBase())
	require.NoError(t, err)
	a := cm3.Alphabet

	// longer carries a 2-base insertion relative to middle and lesser,
	// so the optimal alignment opens exactly one gap run of length 2 in
	// each of the two shorter streams.
	longer := nucStream(a, "AAAACCCC")
	middle := nucStream(a, "AACCCC")
	lesser := nucStream(a, "AACCCC")

	noExtend := &Context{
		Lesser: lesser, Middle: middle, Longer: longer,
		CM3: cm3, GapOpen: 5, GapExtend: 0,
		CheckpointWidth: DefaultCheckpointWidth(6, 6, 8),
	}
	noExtendOut, err := Align(noExtend)
	require.NoError(t, err)

	withExtend := &Context{
		Lesser: lesser, Middle: middle, Longer: longer,
		CM3: cm3, GapOpen: 5, GapExtend: 3,
		CheckpointWidth: DefaultCheckpointWidth(6, 6, 8),
	}
	withExtendOut, err := Align(withExtend)
	require.NoError(t, err)

	assert.Greater(t, withExtendOut.Cost, noExtendOut.Cost)
}

func TestAlignCheckpointRecursionMatchesBaseCase(t *testing.T) {
	cm3, err := costmatrix.Expand3D(nucleotideBase())
	require.NoError(t, err)
	a := cm3.Alphabet

	base := "ACGTACGTACGTACGTACGTACGTACGTACGT" // 32 symbols
	longer := nucStream(a, base)
	middle := nucStream(a, strings.Replace(base, "C", "", 1))
	lesser := nucStream(a, strings.Replace(base, "G", "", 1))

	wide := &Context{
		Lesser: lesser, Middle: middle, Longer: longer,
		CM3: cm3, GapOpen: 2, GapExtend: 1,
		CheckpointWidth: 1000, // no recursion: single base-case search
	}
	wideOut, err := Align(wide)
	require.NoError(t, err)

	narrow := &Context{
		Lesser: lesser, Middle: middle, Longer: longer,
		CM3: cm3, GapOpen: 2, GapExtend: 1,
		CheckpointWidth: 4, // forces several recursive checkpoints
	}
	narrowOut, err := Align(narrow)
	require.NoError(t, err)

	assert.Equal(t, wideOut.Cost, narrowOut.Cost)
}

func TestAlignRejectsOutOfOrderStreams(t *testing.T) {
	cm3, err := costmatrix.Expand3D(nucleotideBase())
	require.NoError(t, err)
	a := cm3.Alphabet

	ctx := &Context{
		Lesser: nucStream(a, "ACGT"), // longer than Middle: out of order
		Middle: nucStream(a, "AG"),
		Longer: nucStream(a, "ACGTT"),
		CM3:    cm3, GapOpen: 2, GapExtend: 1,
		CheckpointWidth: 16,
	}
	_, err = Align(ctx)
	assert.Error(t, err)
}

func TestAlignRejectsNonPositiveCheckpointWidth(t *testing.T) {
	cm3, err := costmatrix.Expand3D(nucleotideBase())
	require.NoError(t, err)
	a := cm3.Alphabet

	ctx := &Context{
		Lesser: nucStream(a, "AG"), Middle: nucStream(a, "AG"), Longer: nucStream(a, "AG"),
		CM3: cm3, GapOpen: 2, GapExtend: 1,
		CheckpointWidth: 0,
	}
	_, err = Align(ctx)
	assert.Error(t, err)
}
