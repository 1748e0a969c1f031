package matrixpool

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnsure2DGrowsOnly(t *testing.T) {
	p := New()
	p.Ensure2D(10, 8, 5, false)
	cost1, dir1, pre1 := len(p.Cost), len(p.Direction), len(p.Precalc)
	assert.GreaterOrEqual(t, dir1, (10+1)*(8+1))

	p.Ensure2D(5, 4, 5, false)
	assert.Equal(t, cost1, len(p.Cost))
	assert.Equal(t, dir1, len(p.Direction))
	assert.Equal(t, pre1, len(p.Precalc))

	p.Ensure2D(20, 20, 5, false)
	assert.Greater(t, len(p.Cost), cost1)
	assert.Greater(t, len(p.Direction), dir1)
}

func TestEnsure2DAffineIsWider(t *testing.T) {
	linear := New()
	linear.Ensure2D(50, 50, 5, false)

	affine := New()
	affine.Ensure2D(50, 50, 5, true)

	assert.Greater(t, len(affine.Cost), len(linear.Cost))
}

func TestEnsure3D(t *testing.T) {
	p := New()
	p.Ensure3D(4, 5, 6, 5)
	assert.GreaterOrEqual(t, len(p.Cost), 4*5*6)
	assert.GreaterOrEqual(t, len(p.Direction), 4*5*6)
	assert.GreaterOrEqual(t, len(p.Pointers), 4*5)
}

func TestDestroy(t *testing.T) {
	p := New()
	p.Ensure2D(10, 10, 5, true)
	p.Destroy()
	assert.Nil(t, p.Cost)
	assert.Nil(t, p.Direction)
	assert.Nil(t, p.Precalc)
	assert.Nil(t, p.Pointers)
}
