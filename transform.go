package ringq

// deleteNode unlinks i and frees it.
func (s *Store) deleteNode(i uint32) {
	s.unlink(i)
	s.freeSlot(i)
}

// DeleteMid deletes the element at index n/2 of a queue of length n.
// It returns false if q is absent or empty.
func (q *Queue) DeleteMid() bool {
	if q.Empty() {
		return false
	}

	s := q.s
	fast, slow := s.next(q.head), s.next(q.head)
	for fast != q.head && s.next(fast) != q.head {
		fast = s.next(s.next(fast))
		slow = s.next(slow)
	}
	s.deleteNode(slow)
	return true
}

// DeleteDup deletes every run of two or more adjacent elements with
// equal values, leaving none of that run behind. Only neighbors are
// compared, so q should already be sorted if every repeated value is
// to be removed. It returns false only if q is absent.
func (q *Queue) DeleteDup() bool {
	if !q.ok() {
		return false
	}

	s := q.s
	for i := s.next(q.head); i != q.head; {
		next := s.next(i)
		if next == q.head || s.value(i) != s.value(next) {
			i = next
			continue
		}

		dup := s.value(i)
		for i != q.head && s.value(i) == dup {
			next := s.next(i)
			s.deleteNode(i)
			i = next
		}
	}
	return true
}

// Swap exchanges every pair of adjacent elements. If q has an odd
// number of elements, the last one stays where it is.
func (q *Queue) Swap() {
	if !q.ok() {
		return
	}

	s := q.s
	for a := s.next(q.head); a != q.head && s.next(a) != q.head; a = s.next(a) {
		b := s.next(a)
		s.unlink(a)
		s.insertAfter(b, a)
	}
}

// Reverse reverses the order of q's elements in place.
func (q *Queue) Reverse() {
	if q.Empty() || q.Singular() {
		return
	}

	s := q.s
	i := q.head
	for {
		sl := &s.slots[i]
		sl.next, sl.prev = sl.prev, sl.next
		i = sl.prev
		if i == q.head {
			return
		}
	}
}

// ReverseK reverses the order of each consecutive group of k elements.
// A trailing group of fewer than k elements is left as it is. A k of
// one or less does nothing.
func (q *Queue) ReverseK(k int) {
	if k <= 1 || q.Empty() {
		return
	}

	s := q.s
	groups := q.Size() / k
	last := q.head
	for range groups {
		// first drifts to the end of its group as the nodes after it
		// are moved in front of it.
		first := s.next(last)
		for range k - 1 {
			n := s.next(first)
			s.unlink(n)
			s.insertAfter(last, n)
		}
		last = first
	}
}

// filter walks q from back to front, deleting every element for which
// drop returns true when given its value and the value of the nearest
// kept element after it. It returns the number of elements left.
func (q *Queue) filter(drop func(v, kept string) bool) int {
	if q.Empty() {
		return 0
	}

	s := q.s
	i := s.prev(q.head)
	kept, n := s.value(i), 1
	for i = s.prev(i); i != q.head; {
		prev := s.prev(i)
		if v := s.value(i); drop(v, kept) {
			s.deleteNode(i)
		} else {
			kept = v
			n++
		}
		i = prev
	}
	return n
}

// Descend deletes every element that has an element with a strictly
// greater value anywhere after it, leaving a non-increasing sequence.
// It returns the number of remaining elements.
func (q *Queue) Descend() int {
	return q.filter(func(v, kept string) bool { return v < kept })
}

// Ascend deletes every element that has an element with a strictly
// smaller value anywhere after it, leaving a non-decreasing sequence.
// It returns the number of remaining elements.
func (q *Queue) Ascend() int {
	return q.filter(func(v, kept string) bool { return v > kept })
}
