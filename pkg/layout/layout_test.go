package layout

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bstviz/bstviz/pkg/tree"
)

func buildTree(t *testing.T, values ...int) *tree.Tree {
	tr := tree.New(0)
	for _, v := range values {
		_, err := tr.Insert(v)
		require.NoError(t, err)
	}
	return tr
}

func TestCompute_Positions(t *testing.T) {
	tr := buildTree(t, 50, 30, 70, 20)
	cfg := DefaultConfig()

	Compute(tr.Root(), 0, cfg)

	root := tr.Root()
	assert.Equal(t, 0.0, root.X)
	assert.Equal(t, 60.0, root.Y)

	assert.Equal(t, -100.0, root.Left.X)
	assert.Equal(t, 180.0, root.Left.Y)
	assert.Equal(t, 100.0, root.Right.X)
	assert.Equal(t, 180.0, root.Right.Y)

	// grandchild offset is halved
	assert.Equal(t, -150.0, root.Left.Left.X)
	assert.Equal(t, 300.0, root.Left.Left.Y)
}

func TestCompute_Idempotent(t *testing.T) {
	tr := buildTree(t, 50, 30, 70, 20, 40, 60, 80)
	cfg := DefaultConfig()

	Compute(tr.Root(), 0, cfg)

	first := make(map[int][2]float64)
	for _, n := range tr.Nodes() {
		first[n.Value] = [2]float64{n.X, n.Y}
	}

	Compute(tr.Root(), 0, cfg)
	for _, n := range tr.Nodes() {
		assert.Equal(t, first[n.Value], [2]float64{n.X, n.Y})
	}
}

// TestCompute_NoOverlap checks that nodes sharing a depth level keep at
// least the halving-offset guarantee of 2*offset(depth) horizontal distance.
func TestCompute_NoOverlap(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	cfg := DefaultConfig()

	for round := 0; round < 20; round++ {
		tr := tree.New(0)
		for tr.Size() < 25 {
			_, _ = tr.Insert(r.Intn(500))
		}

		Compute(tr.Root(), 0, cfg)

		byDepth := make(map[int][]float64)
		for _, n := range tr.Nodes() {
			depth := int(math.Round((n.Y - cfg.TopMargin) / cfg.VerticalGap))
			byDepth[depth] = append(byDepth[depth], n.X)
		}

		for depth, xs := range byDepth {
			// siblings at this depth are at least two child offsets apart
			minSpacing := cfg.HorizontalGap / math.Pow(2, float64(depth-1))
			for i := 0; i < len(xs); i++ {
				for j := i + 1; j < len(xs); j++ {
					assert.GreaterOrEqual(t, math.Abs(xs[i]-xs[j]), minSpacing,
						"depth %d: %v and %v too close", depth, xs[i], xs[j])
				}
			}
		}
	}
}

func TestBounds(t *testing.T) {
	_, _, _, _, ok := Bounds(nil)
	assert.False(t, ok)

	tr := buildTree(t, 50, 30, 70)
	Compute(tr.Root(), 0, DefaultConfig())

	minX, minY, maxX, maxY, ok := Bounds(tr.Nodes())
	require.True(t, ok)
	assert.Equal(t, -100.0, minX)
	assert.Equal(t, 100.0, maxX)
	assert.Equal(t, 60.0, minY)
	assert.Equal(t, 180.0, maxY)
}
