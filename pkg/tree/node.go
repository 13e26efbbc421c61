package tree

import "fmt"

// Node is a single element of a binary search tree.
//
// Left and Right own their subtrees. Parent is a non-owning back-reference
// kept in sync with child assignment by the tree; it only exists for
// convenience queries. X and Y are cached layout coordinates, recomputed
// after every structural change and never mutated independently.
type Node struct {
	Value  int
	Left   *Node
	Right  *Node
	Parent *Node

	X float64
	Y float64
}

func (n *Node) String() string {
	return fmt.Sprintf("Node(%d)", n.Value)
}

// IsLeaf returns true when the node has no children.
func (n *Node) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}

// ChildCount returns the number of children, 0 to 2.
func (n *Node) ChildCount() int {
	cnt := 0
	if n.Left != nil {
		cnt++
	}

	if n.Right != nil {
		cnt++
	}

	return cnt
}
