package dsu_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/mazepath/dsu"
	"github.com/katalvlaran/mazepath/grid"
)

func pt(x, y int) grid.Point { return grid.Point{X: x, Y: y} }

func TestSingletons(t *testing.T) {
	d := dsu.New()
	d.Add(pt(1, 1))
	d.Add(pt(3, 1))

	assert.Equal(t, pt(1, 1), d.Find(pt(1, 1)))
	assert.False(t, d.Connected(pt(1, 1), pt(3, 1)))

	// Re-adding must not reset membership.
	assert.True(t, d.Union(pt(1, 1), pt(3, 1)))
	d.Add(pt(1, 1))
	assert.True(t, d.Connected(pt(1, 1), pt(3, 1)))
}

func TestFind_AutoAdds(t *testing.T) {
	d := dsu.New()
	p := pt(5, 7)
	assert.Equal(t, p, d.Find(p), "unknown elements become singletons")
}

func TestUnion_ReportsMerges(t *testing.T) {
	d := dsu.New()
	a, b, c := pt(1, 1), pt(1, 3), pt(3, 3)

	assert.True(t, d.Union(a, b))
	assert.False(t, d.Union(a, b), "second union of the same pair is a no-op")
	assert.True(t, d.Union(b, c))

	// All three now share one representative.
	root := d.Find(a)
	assert.Equal(t, root, d.Find(b))
	assert.Equal(t, root, d.Find(c))
}

func TestUnion_ChainStaysFlat(t *testing.T) {
	// Union a long chain and verify every element resolves to one root;
	// path compression keeps repeated Finds cheap, but correctness is what
	// we assert here.
	d := dsu.New()
	prev := pt(1, 1)
	for x := 3; x < 41; x += 2 {
		cur := pt(x, 1)
		assert.True(t, d.Union(prev, cur))
		prev = cur
	}
	root := d.Find(pt(1, 1))
	for x := 1; x < 41; x += 2 {
		assert.Equal(t, root, d.Find(pt(x, 1)))
	}
}
