package ringq

import "iter"

// Values returns an iterator over the values of q from front to back.
// The queue must not be modified during iteration.
func (q *Queue) Values() iter.Seq[string] {
	return func(yield func(string) bool) {
		if !q.ok() {
			return
		}
		for i := q.s.next(q.head); i != q.head; i = q.s.next(i) {
			if !yield(q.s.value(i)) {
				return
			}
		}
	}
}

// Backward returns an iterator over the values of q from back to
// front. The queue must not be modified during iteration.
func (q *Queue) Backward() iter.Seq[string] {
	return func(yield func(string) bool) {
		if !q.ok() {
			return
		}
		for i := q.s.prev(q.head); i != q.head; i = q.s.prev(i) {
			if !yield(q.s.value(i)) {
				return
			}
		}
	}
}
