package symbol

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlphabetGapAndAmbiguous(t *testing.T) {
	a := NewAlphabet(5) // A, C, G, T, gap
	assert.Equal(t, Symbol(1<<4), a.Gap())
	assert.Equal(t, Symbol(0b01111), a.FullyAmbiguous())
	assert.True(t, a.IsGap(a.Gap()))
	assert.False(t, a.IsGap(a.State(0)))
}

func TestAlphabetPanicsOnBadSize(t *testing.T) {
	assert.Panics(t, func() { NewAlphabet(0) })
	assert.Panics(t, func() { NewAlphabet(65) })
}

func TestCardinalityAndUnion(t *testing.T) {
	a := NewAlphabet(5)
	r := Union(a.State(0), a.State(2)) // R = {A, G}
	require.Equal(t, 2, Cardinality(r))
	assert.True(t, Intersects(r, a.State(0)))
	assert.False(t, Intersects(r, a.State(1)))
}

func TestEachState(t *testing.T) {
	a := NewAlphabet(5)
	r := Union(a.State(0), Union(a.State(1), a.State(3)))
	var got []int
	EachState(r, func(i int) bool {
		got = append(got, i)
		return true
	})
	assert.Equal(t, []int{0, 1, 3}, got)
}

func TestEachStateStopsEarly(t *testing.T) {
	a := NewAlphabet(5)
	r := Union(a.State(0), Union(a.State(1), a.State(3)))
	var got []int
	EachState(r, func(i int) bool {
		got = append(got, i)
		return len(got) < 1
	})
	assert.Equal(t, []int{0}, got)
}
