package ringq

// merge merges the ascending sequences a and b into dst, which must
// have room for both, and returns it. On ties the element from a
// comes first.
func (s *Store) merge(dst, a, b []uint32) []uint32 {
	dst = dst[:0]
	for len(a) > 0 && len(b) > 0 {
		if s.value(a[0]) <= s.value(b[0]) {
			dst = append(dst, a[0])
			a = a[1:]
			continue
		}
		dst = append(dst, b[0])
		b = b[1:]
	}
	dst = append(dst, a...)
	return append(dst, b...)
}

// mergeSort sorts seq in ascending order of value using a top-down
// merge sort. buf is scratch space at least as long as seq. The sort
// is stable.
func (s *Store) mergeSort(seq, buf []uint32) {
	if len(seq) <= 1 {
		return
	}

	// The front half gets the extra node, as a slow/fast pointer split
	// of a linked list would.
	mid := (len(seq) + 1) / 2
	s.mergeSort(seq[:mid], buf[:mid])
	s.mergeSort(seq[mid:], buf[mid:])

	merged := s.merge(buf[:0:len(seq)], seq[:mid], seq[mid:])
	copy(seq, merged)
}

// nodes returns the members of q's ring in order, sentinel excluded.
func (q *Queue) nodes() []uint32 {
	s := q.s
	seq := make([]uint32, 0, q.Size())
	for i := s.next(q.head); i != q.head; i = s.next(i) {
		seq = append(seq, i)
	}
	return seq
}

// Sort sorts q's elements in ascending order by value. Equal values
// keep their relative order.
func (q *Queue) Sort() {
	if q.Empty() || q.Singular() {
		return
	}

	seq := q.nodes()
	q.s.mergeSort(seq, make([]uint32, len(seq)))
	q.s.relink(q.head, seq)
}
