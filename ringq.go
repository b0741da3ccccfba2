// Package ringq implements queues of strings backed by circular
// doubly-linked rings, along with a set of in-place algorithms that
// restructure those rings: pair swaps, reversals, filters, a merge
// sort, and a k-way merge across a chain of queues.
//
// All nodes live in a [Store], an arena addressed by index rather
// than by pointer. Handles into a Store carry a generation so that
// using a handle after the node it refers to has been freed is
// detected instead of corrupting the ring.
//
// None of the types in this package are safe for concurrent use.
package ringq

import "errors"

var (
	// ErrNilQueue is returned when an operation is given a nil or
	// already freed queue.
	ErrNilQueue = errors.New("queue is nil or freed")

	// ErrEmpty is returned when removing from an empty queue.
	ErrEmpty = errors.New("queue is empty")

	// ErrNoSpace is returned when the store cannot allocate a node or
	// its value.
	ErrNoSpace = errors.New("store out of space")

	// ErrForeignQueue is returned when queues from different stores
	// are combined.
	ErrForeignQueue = errors.New("queue belongs to a different store")

	// ErrCorrupt is returned when a ring fails its consistency check.
	ErrCorrupt = errors.New("ring is inconsistent")
)

type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
