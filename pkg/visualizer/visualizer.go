// Package visualizer is the transaction layer the UI calls into. Every
// successful mutation is recorded as a before/after snapshot pair in the
// history and followed by a layout recomputation; failed mutations leave
// tree, history and layout completely untouched.
package visualizer

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/bstviz/bstviz/pkg/history"
	"github.com/bstviz/bstviz/pkg/layout"
	"github.com/bstviz/bstviz/pkg/tree"
)

var log = logrus.WithField("component", "visualizer")

// ErrValueOutOfRange indicates a value outside the configured
// [MinNodeValue, MaxNodeValue] range.
var ErrValueOutOfRange = errors.New("value out of configured range")

type Visualizer struct {
	config  Config
	tree    *tree.Tree
	history *history.History
	rand    *rand.Rand
}

func New(config Config) *Visualizer {
	return &Visualizer{
		config:  config,
		tree:    tree.New(config.MaxTreeSize),
		history: history.New(config.MaxHistorySize),
		rand:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (v *Visualizer) Config() Config {
	return v.config
}

func (v *Visualizer) Tree() *tree.Tree {
	return v.tree
}

func (v *Visualizer) History() *history.History {
	return v.history
}

// Insert adds value to the tree, records the operation and recomputes the
// layout.
func (v *Visualizer) Insert(value int) (*tree.Node, error) {
	if err := v.checkRange(value); err != nil {
		return nil, err
	}

	before := v.tree.Snapshot()

	node, err := v.tree.Insert(value)
	if err != nil {
		return nil, errors.Wrapf(err, "insert %d", value)
	}

	v.record(fmt.Sprintf("Insert %d", value), before)
	log.Debugf("inserted %d, size = %d", value, v.tree.Size())
	return node, nil
}

// Delete removes value from the tree, records the operation and recomputes
// the layout.
func (v *Visualizer) Delete(value int) error {
	before := v.tree.Snapshot()

	if err := v.tree.Delete(value); err != nil {
		return errors.Wrapf(err, "delete %d", value)
	}

	v.record(fmt.Sprintf("Delete %d", value), before)
	log.Debugf("deleted %d, size = %d", value, v.tree.Size())
	return nil
}

// Clear drops the whole tree as a single undoable operation. Clearing an
// empty tree records nothing.
func (v *Visualizer) Clear() {
	if v.tree.IsEmpty() {
		return
	}

	before := v.tree.Snapshot()
	v.tree.Clear()
	v.record("Clear tree", before)
	log.Debugf("tree cleared")
}

// GenerateRandom replaces the current tree with count unique random values
// drawn from the configured range, recorded as one operation. count is
// clamped to the range size and the tree capacity. The inserted values are
// returned in insertion order.
func (v *Visualizer) GenerateRandom(count int) ([]int, error) {
	if count <= 0 {
		return nil, errors.Errorf("invalid node count: %d", count)
	}

	rangeSize := v.config.MaxNodeValue - v.config.MinNodeValue + 1
	if count > rangeSize {
		count = rangeSize
	}

	if v.config.MaxTreeSize > 0 && count > v.config.MaxTreeSize {
		count = v.config.MaxTreeSize
	}

	before := v.tree.Snapshot()
	v.tree.Clear()

	seen := make(map[int]struct{}, count)
	values := make([]int, 0, count)

	for len(values) < count {
		value := v.config.MinNodeValue + v.rand.Intn(rangeSize)
		if _, ok := seen[value]; ok {
			continue
		}

		seen[value] = struct{}{}
		values = append(values, value)

		if _, err := v.tree.Insert(value); err != nil {
			// values are unique and capacity was clamped above
			return nil, errors.Wrapf(err, "insert random value %d", value)
		}
	}

	v.record(fmt.Sprintf("Generate random tree (%d nodes)", count), before)
	log.Debugf("generated random tree with %d nodes", count)
	return values, nil
}

// Search returns the node holding value together with the descent path for
// highlighting. The path is returned on a miss too.
func (v *Visualizer) Search(value int) (*tree.Node, []int, error) {
	node, path, err := v.tree.Search(value)
	if err != nil {
		return nil, path, errors.Wrapf(err, "search %d", value)
	}

	return node, path, nil
}

// Undo restores the tree to the state before the most recent operation and
// returns that operation's label.
func (v *Visualizer) Undo() (string, error) {
	op, err := v.history.Undo()
	if err != nil {
		return "", err
	}

	v.tree.Restore(op.Before)
	v.Relayout()
	log.Debugf("undone %q", op.Name)
	return op.Name, nil
}

// Redo reapplies the most recently undone operation and returns its label.
func (v *Visualizer) Redo() (string, error) {
	op, err := v.history.Redo()
	if err != nil {
		return "", err
	}

	v.tree.Restore(op.After)
	v.Relayout()
	log.Debugf("redone %q", op.Name)
	return op.Name, nil
}

func (v *Visualizer) CanUndo() bool {
	return v.history.CanUndo()
}

func (v *Visualizer) CanRedo() bool {
	return v.history.CanRedo()
}

func (v *Visualizer) Inorder() []int    { return v.tree.Inorder() }
func (v *Visualizer) Preorder() []int   { return v.tree.Preorder() }
func (v *Visualizer) Postorder() []int  { return v.tree.Postorder() }
func (v *Visualizer) Levelorder() []int { return v.tree.Levelorder() }

func (v *Visualizer) Height() int      { return v.tree.Height() }
func (v *Visualizer) Size() int        { return v.tree.Size() }
func (v *Visualizer) IsBalanced() bool { return v.tree.IsBalanced() }

// Nodes returns all nodes with up-to-date layout coordinates.
func (v *Visualizer) Nodes() []*tree.Node {
	return v.tree.Nodes()
}

// Relayout recomputes node coordinates from the current tree shape.
func (v *Visualizer) Relayout() {
	layout.Compute(v.tree.Root(), 0, v.config.Layout)
}

func (v *Visualizer) record(name string, before []int) {
	v.history.Record(history.Operation{
		Name:   name,
		Before: before,
		After:  v.tree.Snapshot(),
	})
	v.Relayout()
}

func (v *Visualizer) checkRange(value int) error {
	if value < v.config.MinNodeValue || value > v.config.MaxNodeValue {
		return errors.Wrapf(ErrValueOutOfRange, "value %d not in [%d, %d]",
			value, v.config.MinNodeValue, v.config.MaxNodeValue)
	}

	return nil
}
