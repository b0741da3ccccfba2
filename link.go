package ringq

// The functions in this file are the only ones that rewrite the next
// and prev fields of individual slots outside of the bulk relinking
// done by sort. Each leaves every ring it touches consistent: for all
// x, next(x).prev == x and prev(x).next == x.

// initRing makes i a ring of its own.
func (s *Store) initRing(i uint32) {
	s.slots[i].next = i
	s.slots[i].prev = i
}

// insertAfter splices n into at's ring directly after at.
func (s *Store) insertAfter(at, n uint32) {
	next := s.slots[at].next
	s.slots[n].prev = at
	s.slots[n].next = next
	s.slots[next].prev = n
	s.slots[at].next = n
}

// insertBefore splices n into at's ring directly before at.
func (s *Store) insertBefore(at, n uint32) {
	s.insertAfter(s.slots[at].prev, n)
}

// unlink removes n from its ring and makes it a ring of its own. The
// value of n is not touched.
func (s *Store) unlink(n uint32) {
	next, prev := s.slots[n].next, s.slots[n].prev
	s.slots[prev].next = next
	s.slots[next].prev = prev
	s.initRing(n)
}

// isSingleton reports whether i is the only member of its ring.
func (s *Store) isSingleton(i uint32) bool {
	return s.slots[i].next == i
}

// spliceTail moves every node of src's ring, in order, to the end of
// dst's ring and leaves src as an empty ring.
func (s *Store) spliceTail(dst, src uint32) {
	if s.isSingleton(src) {
		return
	}

	first, last := s.slots[src].next, s.slots[src].prev
	tail := s.slots[dst].prev

	s.slots[tail].next = first
	s.slots[first].prev = tail
	s.slots[last].next = dst
	s.slots[dst].prev = last

	s.initRing(src)
}

// relink rebuilds the ring anchored at head from seq, which must list
// every member except head in the desired order.
func (s *Store) relink(head uint32, seq []uint32) {
	prev := head
	for _, i := range seq {
		s.slots[prev].next = i
		s.slots[i].prev = prev
		prev = i
	}
	s.slots[prev].next = head
	s.slots[head].prev = prev
}
