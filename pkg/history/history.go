// Package history provides bounded undo/redo stacks over tree snapshot
// operations. It is pure bookkeeping: applying a snapshot back to the tree
// is the caller's job, so failed calls never mutate either stack.
package history

import (
	"errors"

	"github.com/emirpasic/gods/lists/doublylinkedlist"
)

var (
	// ErrNothingToUndo indicates an undo with an empty undo stack.
	ErrNothingToUndo = errors.New("nothing to undo")

	// ErrNothingToRedo indicates a redo with an empty redo stack.
	ErrNothingToRedo = errors.New("nothing to redo")
)

// DefaultMaxSize is the history depth used when no capacity is configured.
const DefaultMaxSize = 50

// Operation is a recorded tree mutation. Before and After are ordered value
// sequences whose insertion replay reconstructs the tree on either side of
// the mutation.
type Operation struct {
	Name   string
	Before []int
	After  []int
}

// History holds two bounded stacks. Recording evicts the oldest undo entry
// past capacity and always discards the redo branch, the usual linear
// history discipline.
type History struct {
	maxSize int
	undo    *doublylinkedlist.List
	redo    *doublylinkedlist.List
}

func New(maxSize int) *History {
	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}

	return &History{
		maxSize: maxSize,
		undo:    doublylinkedlist.New(),
		redo:    doublylinkedlist.New(),
	}
}

// Record pushes op onto the undo stack and clears the redo stack.
func (h *History) Record(op Operation) {
	h.undo.Add(op)
	h.redo.Clear()

	if h.undo.Size() > h.maxSize {
		h.undo.Remove(0)
	}
}

// Undo pops the most recent operation and moves it to the redo stack. The
// caller restores the tree from the returned operation's Before snapshot.
func (h *History) Undo() (Operation, error) {
	op, ok := pop(h.undo)
	if !ok {
		return Operation{}, ErrNothingToUndo
	}

	h.redo.Add(op)
	return op, nil
}

// Redo pops the most recently undone operation and moves it back to the
// undo stack. The caller restores the tree from the After snapshot.
func (h *History) Redo() (Operation, error) {
	op, ok := pop(h.redo)
	if !ok {
		return Operation{}, ErrNothingToRedo
	}

	h.undo.Add(op)
	return op, nil
}

func pop(list *doublylinkedlist.List) (Operation, bool) {
	last := list.Size() - 1
	if last < 0 {
		return Operation{}, false
	}

	v, _ := list.Get(last)
	list.Remove(last)
	return v.(Operation), true
}

func (h *History) CanUndo() bool {
	return h.undo.Size() > 0
}

func (h *History) CanRedo() bool {
	return h.redo.Size() > 0
}

// PeekUndo returns the label of the operation the next Undo would apply.
func (h *History) PeekUndo() (string, bool) {
	return peek(h.undo)
}

// PeekRedo returns the label of the operation the next Redo would apply.
func (h *History) PeekRedo() (string, bool) {
	return peek(h.redo)
}

func peek(list *doublylinkedlist.List) (string, bool) {
	v, ok := list.Get(list.Size() - 1)
	if !ok {
		return "", false
	}

	return v.(Operation).Name, true
}

// Len returns the undo and redo stack depths.
func (h *History) Len() (undo, redo int) {
	return h.undo.Size(), h.redo.Size()
}

func (h *History) Clear() {
	h.undo.Clear()
	h.redo.Clear()
}
