package ringq

// A Queue is an ordered sequence of strings stored as a ring of nodes
// anchored at a sentinel in a [Store]. A nil *Queue, or one that has
// been freed, behaves as an absent queue: queries report it as empty
// and mutations fail or do nothing.
type Queue struct {
	s    *Store
	head uint32
	gen  uint32
}

// NewQueue allocates a new, empty queue in s.
func (s *Store) NewQueue() (*Queue, error) {
	i, ok := s.allocSlot(slotSentinel)
	if !ok {
		s.log.Debug("sentinel allocation failed", "live", s.live)
		return nil, ErrNoSpace
	}
	return &Queue{s: s, head: i, gen: s.slots[i].gen}, nil
}

func (q *Queue) ok() bool {
	return q != nil && q.s != nil && q.s.valid(q.head, q.gen, slotSentinel)
}

// Store returns the store that q was allocated from, or nil if q is
// absent.
func (q *Queue) Store() *Store {
	if !q.ok() {
		return nil
	}
	return q.s
}

// Free releases every element of q and then q itself. Freeing a nil
// or already freed queue does nothing.
func (q *Queue) Free() {
	if !q.ok() {
		return
	}

	s := q.s
	for i := s.next(q.head); i != q.head; {
		next := s.next(i)
		s.freeSlot(i)
		i = next
	}
	s.freeSlot(q.head)
	q.s = nil
}

func (q *Queue) insert(v string, front bool) error {
	if !q.ok() {
		return ErrNilQueue
	}

	i, ok := q.s.newElement(v)
	if !ok {
		return ErrNoSpace
	}
	q.s.slots[i].state = slotLinked
	if front {
		q.s.insertAfter(q.head, i)
		return nil
	}
	q.s.insertBefore(q.head, i)
	return nil
}

// InsertHead inserts a copy of v at the front of q.
func (q *Queue) InsertHead(v string) error {
	return q.insert(v, true)
}

// InsertTail inserts a copy of v at the back of q.
func (q *Queue) InsertTail(v string) error {
	return q.insert(v, false)
}

func (q *Queue) remove(i uint32, buf []byte) Element {
	s := q.s
	s.unlink(i)
	s.slots[i].state = slotDetached

	if len(buf) > 0 {
		n := copy(buf[:len(buf)-1], s.value(i))
		buf[n] = 0
	}

	return Element{s: s, i: i, gen: s.slots[i].gen}
}

// RemoveHead unlinks the first element of q and hands it to the
// caller, who becomes responsible for releasing it. If buf is not
// empty, up to len(buf)-1 bytes of the element's value are copied
// into it followed by a zero byte.
func (q *Queue) RemoveHead(buf []byte) (Element, error) {
	if !q.ok() {
		return Element{}, ErrNilQueue
	}
	if q.Empty() {
		return Element{}, ErrEmpty
	}
	return q.remove(q.s.next(q.head), buf), nil
}

// RemoveTail is like [Queue.RemoveHead] but removes the last element.
func (q *Queue) RemoveTail(buf []byte) (Element, error) {
	if !q.ok() {
		return Element{}, ErrNilQueue
	}
	if q.Empty() {
		return Element{}, ErrEmpty
	}
	return q.remove(q.s.prev(q.head), buf), nil
}

// Size counts the elements in q. It walks the whole ring.
func (q *Queue) Size() int {
	if !q.ok() {
		return 0
	}

	var n int
	for i := q.s.next(q.head); i != q.head; i = q.s.next(i) {
		n++
	}
	return n
}

// Empty reports whether q has no elements. An absent queue is empty.
func (q *Queue) Empty() bool {
	return !q.ok() || q.s.isSingleton(q.head)
}

// Singular reports whether q has exactly one element.
func (q *Queue) Singular() bool {
	if q.Empty() {
		return false
	}
	return q.s.next(q.head) == q.s.prev(q.head)
}
