// Package tree implements a plain (non self-balancing) binary search tree
// for visualization: insert, delete, search with descent path, the four
// traversals, height/size/balance queries and snapshot/restore by
// insertion replay.
package tree

import "errors"

var (
	// ErrDuplicateValue indicates an insert of a value already in the tree.
	ErrDuplicateValue = errors.New("value already exists in the tree")

	// ErrValueNotFound indicates a delete or search miss.
	ErrValueNotFound = errors.New("value not found in the tree")

	// ErrCapacityExceeded indicates an insert beyond the configured max size.
	ErrCapacityExceeded = errors.New("maximum tree size reached")
)
