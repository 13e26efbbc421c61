package tree

import (
	"fmt"
	"strings"
)

// Print writes the tree graph to stdout.
func (t *Tree) Print() {
	fmt.Print(t.Sprint())
}

// Sprint renders the tree graph as text, right subtree first so the output
// reads top-down like the drawn tree rotated 90 degrees.
func (t *Tree) Sprint() string {
	if t.root == nil {
		return "<empty>\n"
	}

	var sb strings.Builder
	sprintSubTree(&sb, t.root, "", true)
	return sb.String()
}

func sprintSubTree(sb *strings.Builder, node *Node, prefix string, isTail bool) {
	if node == nil {
		return
	}

	fmt.Fprintf(sb, "%s%s── %d\n", prefix, getBranch(isTail), node.Value)

	newPrefix := prefix + getIndent(isTail)
	if node.Left != nil || node.Right != nil {
		sprintSubTree(sb, node.Right, newPrefix, false)
		sprintSubTree(sb, node.Left, newPrefix, true)
	}
}

func getBranch(isTail bool) string {
	if isTail {
		return "└"
	}
	return "├"
}

func getIndent(isTail bool) string {
	if isTail {
		return "   "
	}
	return "│  "
}
