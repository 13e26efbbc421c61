package tree

import (
	"math/rand"
	"testing"

	"github.com/google/btree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTree(t *testing.T, values ...int) *Tree {
	tr := New(0)
	for _, v := range values {
		_, err := tr.Insert(v)
		require.NoError(t, err)
	}
	return tr
}

func TestTree_Traversals(t *testing.T) {
	tr := buildTree(t, 50, 30, 70, 20, 40, 60, 80)

	assert.Equal(t, []int{20, 30, 40, 50, 60, 70, 80}, tr.Inorder())
	assert.Equal(t, []int{50, 30, 20, 40, 70, 60, 80}, tr.Preorder())
	assert.Equal(t, []int{20, 40, 30, 60, 80, 70, 50}, tr.Postorder())
	assert.Equal(t, []int{50, 30, 70, 20, 40, 60, 80}, tr.Levelorder())
}

func TestTree_TraversalsEmpty(t *testing.T) {
	tr := New(0)

	assert.Empty(t, tr.Inorder())
	assert.Empty(t, tr.Preorder())
	assert.Empty(t, tr.Postorder())
	assert.Empty(t, tr.Levelorder())
	assert.Empty(t, tr.Nodes())
}

func TestTree_HeightAndBalance(t *testing.T) {
	tr := New(0)
	assert.Equal(t, -1, tr.Height())
	assert.True(t, tr.IsBalanced(), "empty tree is balanced")

	tr = buildTree(t, 50, 30, 70, 20, 40, 60, 80)
	assert.Equal(t, 2, tr.Height())
	assert.True(t, tr.IsBalanced())

	chain := buildTree(t, 1, 2, 3, 4, 5)
	assert.Equal(t, 4, chain.Height())
	assert.False(t, chain.IsBalanced())
}

func TestTree_InsertDuplicate(t *testing.T) {
	tr := buildTree(t, 50, 30, 70)

	node, err := tr.Insert(30)
	assert.Nil(t, node)
	assert.ErrorIs(t, err, ErrDuplicateValue)
	assert.Equal(t, 3, tr.Size())
	assert.Equal(t, []int{30, 50, 70}, tr.Inorder())
}

func TestTree_InsertCapacity(t *testing.T) {
	tr := New(3)
	for _, v := range []int{2, 1, 3} {
		_, err := tr.Insert(v)
		require.NoError(t, err)
	}

	_, err := tr.Insert(4)
	assert.ErrorIs(t, err, ErrCapacityExceeded)
	assert.Equal(t, 3, tr.Size())
}

func TestTree_Search(t *testing.T) {
	tr := buildTree(t, 50, 30, 70, 20, 40, 60, 80)

	node, path, err := tr.Search(40)
	require.NoError(t, err)
	assert.Equal(t, 40, node.Value)
	assert.Equal(t, []int{50, 30, 40}, path)

	node, path, err = tr.Search(65)
	assert.Nil(t, node)
	assert.ErrorIs(t, err, ErrValueNotFound)
	assert.Equal(t, []int{50, 70, 60}, path, "miss still reports the descent path")
}

func TestTree_DeleteLeaf(t *testing.T) {
	tr := buildTree(t, 50, 30, 70, 20)

	require.NoError(t, tr.Delete(20))
	assert.Equal(t, 3, tr.Size())
	assert.Equal(t, []int{30, 50, 70}, tr.Inorder())
	assert.Nil(t, tr.Min().Left)
	assert.NoError(t, tr.SelfCheck())
}

func TestTree_DeleteOneChild(t *testing.T) {
	tr := buildTree(t, 50, 30, 70, 20)

	// 30 has a single left child 20, which takes its slot
	require.NoError(t, tr.Delete(30))
	assert.Equal(t, []int{20, 50, 70}, tr.Inorder())
	assert.Equal(t, 20, tr.Root().Left.Value)
	assert.Equal(t, tr.Root(), tr.Root().Left.Parent)
	assert.NoError(t, tr.SelfCheck())
}

func TestTree_DeleteTwoChildren(t *testing.T) {
	tr := buildTree(t, 50, 30, 70, 20, 40, 60, 80)

	// the in-order successor of 50 is 60, which moves into the root slot
	require.NoError(t, tr.Delete(50))
	assert.Equal(t, 60, tr.Root().Value)
	assert.Equal(t, []int{20, 30, 40, 60, 70, 80}, tr.Inorder())
	assert.Nil(t, tr.Root().Right.Left, "successor's original slot is gone")
	assert.NoError(t, tr.SelfCheck())
}

func TestTree_DeleteRootChain(t *testing.T) {
	tr := buildTree(t, 1, 2, 3)

	require.NoError(t, tr.Delete(1))
	assert.Equal(t, 2, tr.Root().Value)
	assert.Nil(t, tr.Root().Parent)

	require.NoError(t, tr.Delete(2))
	require.NoError(t, tr.Delete(3))
	assert.True(t, tr.IsEmpty())
	assert.Equal(t, 0, tr.Size())
}

func TestTree_DeleteMissing(t *testing.T) {
	tr := buildTree(t, 50, 30, 70)
	before := tr.Preorder()

	err := tr.Delete(99)
	assert.ErrorIs(t, err, ErrValueNotFound)
	assert.Equal(t, 3, tr.Size())
	assert.Equal(t, before, tr.Preorder(), "failed delete leaves the tree untouched")
}

func TestTree_SnapshotRestore(t *testing.T) {
	tr := buildTree(t, 50, 30, 70, 20, 40, 60, 80)
	require.NoError(t, tr.Delete(30))

	snapshot := tr.Snapshot()
	inorder := tr.Inorder()
	levelorder := tr.Levelorder()

	restored := New(0)
	restored.Restore(snapshot)

	assert.Equal(t, inorder, restored.Inorder())
	assert.Equal(t, levelorder, restored.Levelorder(), "preorder replay rebuilds the same shape")
	assert.Equal(t, tr.Size(), restored.Size())
	assert.NoError(t, restored.SelfCheck())
}

func TestTree_MinMax(t *testing.T) {
	tr := New(0)
	assert.Nil(t, tr.Min())
	assert.Nil(t, tr.Max())

	tr = buildTree(t, 50, 30, 70, 20, 80)
	assert.Equal(t, 20, tr.Min().Value)
	assert.Equal(t, 80, tr.Max().Value)
}

// TestTree_RandomOpsAgainstBTree drives random inserts and deletes and
// checks the inorder sequence against a btree holding the same values.
func TestTree_RandomOpsAgainstBTree(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	tr := New(0)
	oracle := btree.New(2)

	for step := 0; step < 10_000; step++ {
		value := r.Intn(200)

		switch r.Intn(2) {
		case 0:
			_, err := tr.Insert(value)
			if oracle.Has(btree.Int(value)) {
				assert.ErrorIs(t, err, ErrDuplicateValue)
			} else {
				require.NoError(t, err)
				oracle.ReplaceOrInsert(btree.Int(value))
			}

		case 1:
			err := tr.Delete(value)
			if oracle.Delete(btree.Int(value)) != nil {
				require.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrValueNotFound)
			}
		}
	}

	var expected []int
	oracle.Ascend(func(item btree.Item) bool {
		expected = append(expected, int(item.(btree.Int)))
		return true
	})

	got := tr.Inorder()
	if expected == nil {
		assert.Empty(t, got)
	} else {
		assert.Equal(t, expected, got)
	}
	assert.Equal(t, oracle.Len(), tr.Size())
	assert.NoError(t, tr.SelfCheck())
}

func TestTree_Sprint(t *testing.T) {
	tr := New(0)
	assert.Equal(t, "<empty>\n", tr.Sprint())

	tr = buildTree(t, 50, 30, 70)
	out := tr.Sprint()
	assert.Contains(t, out, "50")
	assert.Contains(t, out, "30")
	assert.Contains(t, out, "70")
}
