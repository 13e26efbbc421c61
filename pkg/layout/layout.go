// Package layout assigns 2D coordinates to tree nodes for rendering.
//
// The horizontal offset halves at every depth level, which keeps sibling
// subtrees from overlapping regardless of shape, at the cost of wasted
// horizontal space on skewed trees.
package layout

import "github.com/bstviz/bstviz/pkg/tree"

// Config holds the spacing constants consumed by Compute.
type Config struct {
	HorizontalGap float64 `json:"horizontalGap" yaml:"horizontalGap"`
	VerticalGap   float64 `json:"verticalGap" yaml:"verticalGap"`
	TopMargin     float64 `json:"topMargin" yaml:"topMargin"`
}

func DefaultConfig() Config {
	return Config{
		HorizontalGap: 100,
		VerticalGap:   120,
		TopMargin:     60,
	}
}

// Compute assigns X/Y to every node reachable from root, placing the root
// at (originX, cfg.TopMargin). It is idempotent and writes nothing but the
// two coordinate fields.
func Compute(root *tree.Node, originX float64, cfg Config) {
	computePositions(root, originX, cfg.TopMargin, cfg.HorizontalGap, cfg.VerticalGap)
}

func computePositions(node *tree.Node, x, y, offset, verticalGap float64) {
	if node == nil {
		return
	}

	node.X = x
	node.Y = y

	nextY := y + verticalGap
	nextOffset := offset / 2

	if node.Left != nil {
		computePositions(node.Left, x-offset, nextY, nextOffset, verticalGap)
	}

	if node.Right != nil {
		computePositions(node.Right, x+offset, nextY, nextOffset, verticalGap)
	}
}

// Bounds returns the bounding box of the given nodes' coordinates.
// ok is false when nodes is empty.
func Bounds(nodes []*tree.Node) (minX, minY, maxX, maxY float64, ok bool) {
	if len(nodes) == 0 {
		return 0, 0, 0, 0, false
	}

	minX, maxX = nodes[0].X, nodes[0].X
	minY, maxY = nodes[0].Y, nodes[0].Y

	for _, n := range nodes[1:] {
		if n.X < minX {
			minX = n.X
		}
		if n.X > maxX {
			maxX = n.X
		}
		if n.Y < minY {
			minY = n.Y
		}
		if n.Y > maxY {
			maxY = n.Y
		}
	}

	return minX, minY, maxX, maxY, true
}
