package tree

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Tree owns zero or one root Node and with it the whole subtree graph.
// Values are unique; left subtree < node < right subtree everywhere.
type Tree struct {
	root    *Node
	size    int
	maxSize int // 0 means unbounded
}

// New returns an empty tree. maxSize bounds the node count; 0 disables
// the bound.
func New(maxSize int) *Tree {
	return &Tree{maxSize: maxSize}
}

// Insert walks from the root and links a new node at the empty slot the
// value belongs in. Returns ErrDuplicateValue if the value is already
// present and ErrCapacityExceeded if the tree is full; the tree is left
// untouched in both cases.
func (t *Tree) Insert(value int) (*Node, error) {
	if t.maxSize > 0 && t.size >= t.maxSize {
		return nil, ErrCapacityExceeded
	}

	var y *Node
	var x = t.root

	for x != nil {
		y = x

		if value == x.Value {
			return nil, ErrDuplicateValue
		} else if value < x.Value {
			x = x.Left
		} else {
			x = x.Right
		}
	}

	node := &Node{Value: value, Parent: y}

	if y == nil {
		// insert as the root node
		t.root = node
	} else if value < y.Value {
		y.Left = node
	} else {
		y.Right = node
	}

	t.size++
	return node, nil
}

// Search descends from the root using the order invariant. It returns the
// found node together with the full descent path (the values visited, in
// order), so callers can highlight the comparison path. On a miss the path
// is still returned along with ErrValueNotFound.
func (t *Tree) Search(value int) (*Node, []int, error) {
	var path []int
	var current = t.root

	for current != nil {
		path = append(path, current.Value)

		if value == current.Value {
			return current, path, nil
		} else if value < current.Value {
			current = current.Left
		} else {
			current = current.Right
		}
	}

	return nil, path, ErrValueNotFound
}

// Delete removes the node holding value. Leaves are detached, one-child
// nodes are spliced, and two-children nodes take their in-order successor's
// value, after which the successor slot (a leaf-or-one-child case) is
// removed. Returns ErrValueNotFound without mutating anything if the value
// is absent.
func (t *Tree) Delete(value int) error {
	node, _, err := t.Search(value)
	if err != nil {
		return err
	}

	t.removeNode(node)
	t.size--
	return nil
}

func (t *Tree) removeNode(node *Node) {
	if node.Left != nil && node.Right != nil {
		// two children: copy the in-order successor's value here, then
		// remove the successor from its original slot.
		successor := leftmostOf(node.Right)
		node.Value = successor.Value
		t.removeNode(successor)
		return
	}

	child := node.Left
	if child == nil {
		child = node.Right
	}

	t.transplant(node, child)
}

// transplant replaces the subtree rooted at u with the subtree rooted at v.
func (t *Tree) transplant(u, v *Node) {
	if u.Parent == nil {
		t.root = v
	} else if u == u.Parent.Left {
		u.Parent.Left = v
	} else {
		u.Parent.Right = v
	}

	if v != nil {
		v.Parent = u.Parent
	}
}

// Height is the edge count of the longest root-to-leaf path: -1 for an
// empty tree, 0 for a single node. Recomputed on demand.
func (t *Tree) Height() int {
	return heightOf(t.root)
}

func heightOf(node *Node) int {
	if node == nil {
		return -1
	}

	lh := heightOf(node.Left)
	rh := heightOf(node.Right)
	if lh > rh {
		return 1 + lh
	}

	return 1 + rh
}

// IsBalanced reports whether every node's subtree heights differ by at
// most 1. Heights are computed bottom-up in a single pass and the walk
// short-circuits on the first imbalance.
func (t *Tree) IsBalanced() bool {
	balanced, _ := checkBalance(t.root)
	return balanced
}

func checkBalance(node *Node) (bool, int) {
	if node == nil {
		return true, -1
	}

	leftBalanced, lh := checkBalance(node.Left)
	if !leftBalanced {
		return false, 0
	}

	rightBalanced, rh := checkBalance(node.Right)
	if !rightBalanced {
		return false, 0
	}

	diff := lh - rh
	if diff < 0 {
		diff = -diff
	}

	height := 1 + lh
	if rh > lh {
		height = 1 + rh
	}

	return diff <= 1, height
}

func (t *Tree) Size() int {
	return t.size
}

func (t *Tree) IsEmpty() bool {
	return t.root == nil
}

func (t *Tree) Root() *Node {
	return t.root
}

// Clear drops the whole tree. The capacity bound is kept.
func (t *Tree) Clear() {
	t.root = nil
	t.size = 0
}

// Min returns the leftmost node, nil for an empty tree.
func (t *Tree) Min() *Node {
	return leftmostOf(t.root)
}

// Max returns the rightmost node, nil for an empty tree.
func (t *Tree) Max() *Node {
	return rightmostOf(t.root)
}

func leftmostOf(current *Node) *Node {
	if current == nil {
		return nil
	}

	for current.Left != nil {
		current = current.Left
	}

	return current
}

func rightmostOf(current *Node) *Node {
	if current == nil {
		return nil
	}

	for current.Right != nil {
		current = current.Right
	}

	return current
}

// Snapshot returns the preorder value sequence, which rebuilds an
// identically shaped tree when replayed through Insert.
func (t *Tree) Snapshot() []int {
	return t.Preorder()
}

// Restore clears the tree and reinserts every value in order. It is the
// replay half of Snapshot and the mechanism behind undo/redo.
func (t *Tree) Restore(values []int) {
	t.Clear()
	for _, v := range values {
		if _, err := t.Insert(v); err != nil {
			logrus.Errorf("restore: insert %d failed: %v", v, err)
		}
	}
}

// SelfCheck verifies the order invariant (strictly sorted inorder) and the
// parent back-references. On a violation it dumps the tree and returns an
// error; intended for debug paths and tests.
func (t *Tree) SelfCheck() error {
	values := t.Inorder()
	for i := 1; i < len(values); i++ {
		if values[i-1] >= values[i] {
			logrus.Errorf("bst order violated: %d >= %d", values[i-1], values[i])
			t.Print()
			return fmt.Errorf("bst order violated: %d >= %d", values[i-1], values[i])
		}
	}

	if t.root != nil && t.root.Parent != nil {
		return fmt.Errorf("root has a parent: %v", t.root.Parent)
	}

	var err error
	t.PreorderOf(t.root, func(n *Node) bool {
		if n.Left != nil && n.Left.Parent != n {
			err = fmt.Errorf("left child %v does not point back to %v", n.Left, n)
			return false
		}

		if n.Right != nil && n.Right.Parent != n {
			err = fmt.Errorf("right child %v does not point back to %v", n.Right, n)
			return false
		}

		return true
	})

	return err
}
