package tree

import "github.com/emirpasic/gods/queues/arrayqueue"

// The *Of walkers visit subtrees with a callback; returning false from the
// callback stops the walk. The plain variants collect values eagerly into a
// slice, which is fine at the tree sizes this package is built for.

// Inorder traverses left, self, right and therefore yields sorted order.
func (t *Tree) Inorder() []int {
	values := make([]int, 0, t.size)
	t.InorderOf(t.root, func(n *Node) bool {
		values = append(values, n.Value)
		return true
	})
	return values
}

func (t *Tree) InorderOf(current *Node, cb func(n *Node) bool) {
	if current != nil {
		t.InorderOf(current.Left, cb)
		if !cb(current) {
			return
		}

		t.InorderOf(current.Right, cb)
	}
}

// Preorder traverses self, left, right. The result is what Snapshot stores:
// replaying it through Insert rebuilds the same shape.
func (t *Tree) Preorder() []int {
	values := make([]int, 0, t.size)
	t.PreorderOf(t.root, func(n *Node) bool {
		values = append(values, n.Value)
		return true
	})
	return values
}

func (t *Tree) PreorderOf(current *Node, cb func(n *Node) bool) {
	if current != nil {
		if !cb(current) {
			return
		}

		t.PreorderOf(current.Left, cb)
		t.PreorderOf(current.Right, cb)
	}
}

// Postorder traverses left, right, self.
func (t *Tree) Postorder() []int {
	values := make([]int, 0, t.size)
	t.PostorderOf(t.root, func(n *Node) bool {
		values = append(values, n.Value)
		return true
	})
	return values
}

func (t *Tree) PostorderOf(current *Node, cb func(n *Node) bool) {
	if current != nil {
		t.PostorderOf(current.Left, cb)
		t.PostorderOf(current.Right, cb)
		if !cb(current) {
			return
		}
	}
}

// Levelorder traverses breadth-first, level by level from the root.
func (t *Tree) Levelorder() []int {
	nodes := t.Nodes()
	values := make([]int, len(nodes))
	for i, n := range nodes {
		values[i] = n.Value
	}
	return values
}

// Nodes returns every node in level order, for full redraws.
func (t *Tree) Nodes() []*Node {
	if t.root == nil {
		return nil
	}

	nodes := make([]*Node, 0, t.size)
	queue := arrayqueue.New()
	queue.Enqueue(t.root)

	for !queue.Empty() {
		v, _ := queue.Dequeue()
		node := v.(*Node)
		nodes = append(nodes, node)

		if node.Left != nil {
			queue.Enqueue(node.Left)
		}

		if node.Right != nil {
			queue.Enqueue(node.Right)
		}
	}

	return nodes
}
