package list

import "iter"

// Ring is a circular doubly-linked list anchored at a sentinel node.
// Nodes of a Ring can be removed from anywhere in the list. A zero
// value Ring is ready to use.
type Ring[T any] struct {
	root RingNode[T]
	len  int
}

func (r *Ring[T]) lazyInit() {
	if r.root.next == nil {
		r.root.next = &r.root
		r.root.prev = &r.root
	}
}

// Len returns the number of nodes in the ring, not counting the
// sentinel.
func (r *Ring[T]) Len() int {
	return r.len
}

// Front returns the first node of the ring or nil if it is empty.
func (r *Ring[T]) Front() *RingNode[T] {
	if r.len == 0 {
		return nil
	}
	return r.root.next
}

// Back returns the last node of the ring or nil if it is empty.
func (r *Ring[T]) Back() *RingNode[T] {
	if r.len == 0 {
		return nil
	}
	return r.root.prev
}

// PushBack adds a new node containing v to the tail of the ring.
func (r *Ring[T]) PushBack(v T) *RingNode[T] {
	r.lazyInit()
	return r.insertAfter(&RingNode[T]{Val: v}, r.root.prev)
}

func (r *Ring[T]) insertAfter(n, at *RingNode[T]) *RingNode[T] {
	n.prev = at
	n.next = at.next
	n.prev.next = n
	n.next.prev = n
	n.ring = r
	r.len++
	return n
}

// Remove removes n from the ring. It returns false, leaving the ring
// untouched, if n does not belong to r.
func (r *Ring[T]) Remove(n *RingNode[T]) bool {
	if n == nil || n.ring != r {
		return false
	}

	n.prev.next = n.next
	n.next.prev = n.prev
	n.next, n.prev, n.ring = nil, nil, nil
	r.len--
	return true
}

// Nodes returns an iterator over the nodes of the ring from front to
// back. It is safe to remove the currently-yielded node from the ring
// during iteration.
func (r *Ring[T]) Nodes() iter.Seq[*RingNode[T]] {
	return func(yield func(*RingNode[T]) bool) {
		if r.len == 0 {
			return
		}
		for cur := r.root.next; cur != &r.root; {
			next := cur.next
			if !yield(cur) {
				return
			}
			cur = next
		}
	}
}

// All returns an iterator over the values of the ring from front to
// back.
func (r *Ring[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := range r.Nodes() {
			if !yield(n.Val) {
				return
			}
		}
	}
}

// RingNode is a node of a [Ring].
type RingNode[T any] struct {
	Val        T
	prev, next *RingNode[T]
	ring       *Ring[T]
}

// Next returns the node following n, or nil if n is the last node or
// is not in a ring.
func (n *RingNode[T]) Next() *RingNode[T] {
	if n.ring == nil || n.next == &n.ring.root {
		return nil
	}
	return n.next
}

// Prev returns the node preceding n, or nil if n is the first node or
// is not in a ring.
func (n *RingNode[T]) Prev() *RingNode[T] {
	if n.ring == nil || n.prev == &n.ring.root {
		return nil
	}
	return n.prev
}
