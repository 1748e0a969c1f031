// Package matrixpool implements the growable buffer pool shared by
// consecutive alignment calls on the same thread (component C). Pool is
// not safe for concurrent use: callers running independent alignments
// concurrently must use independent Pool instances (spec.md §5).
package matrixpool

// Pool holds the four growable buffers the engines read and write:
// cost/cube, direction, precalc, and (3-D only) pointers. Growth is
// in-place: a buffer only ever grows, and existing content is not
// preserved across growth, because every engine reinitializes its
// working buffers before reading them.
type Pool struct {
	Cost      []int
	Direction []uint16
	Precalc   []int
	Pointers  []int
}

// New returns an empty Pool. Its buffers grow lazily on first Ensure
// call.
func New() *Pool {
	return &Pool{}
}

// Ensure2D grows the pool's buffers to be large enough for a 2-D
// alignment of streams of length l1 and l2 over an alphabet of 2^k
// ambiguity-states. affine selects the wider cost-buffer size of
// 12*(max(l1,l2)+1) ints (spec.md §4.F). align2d.FillAffine does not
// read Cost: it keeps its four cost planes in separately allocated
// columns.
func (p *Pool) Ensure2D(l1, l2, k int, affine bool) {
	longer := l1
	if l2 > longer {
		longer = l2
	}

	costMult := 3 // linear engine keeps two rows of O(longer) plus slack
	if affine {
		costMult = 12 // affine-mode sizing; FillAffine allocates its planes itself
	}
	growInts(&p.Cost, costMult*(longer+1))
	growUint16(&p.Direction, (l1+1)*(l2+1))
	growInts(&p.Precalc, (1<<uint(k))*longer)
}

// Ensure3D grows the pool's buffers for a 3-D alignment of streams of
// length l1, l2, l3 over an alphabet of 2^k ambiguity-states. Cost and
// Direction are sized as the full inclusive cube (l1+1)*(l2+1)*(l3+1),
// matching Ensure2D's (l1+1)*(l2+1) direction sizing.
func (p *Pool) Ensure3D(l1, l2, l3, k int) {
	cube := (l1 + 1) * (l2 + 1) * (l3 + 1)
	growInts(&p.Cost, cube)
	growUint16(&p.Direction, cube)

	mid := l2
	if l3 > mid {
		mid = l3
	}
	growInts(&p.Precalc, (1<<uint(2*k))*(mid+1))
	growInts(&p.Pointers, (l1+1)*(l2+1))
}

// Destroy releases all four buffers.
func (p *Pool) Destroy() {
	p.Cost = nil
	p.Direction = nil
	p.Precalc = nil
	p.Pointers = nil
}

func growInts(buf *[]int, n int) {
	if len(*buf) < n {
		*buf = make([]int, n)
	}
}

func growUint16(buf *[]uint16, n int) {
	if len(*buf) < n {
		*buf = make([]uint16, n)
	}
}
