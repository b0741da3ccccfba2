package list

// Single is a singly-linked FIFO list that also contains a reference
// to the last node for quick inserts at the tail. A zero value Single
// is ready to use.
type Single[T any] struct {
	head, tail *SingleNode[T]
	len        int
}

// Enqueue adds v as a new node at the tail of the list.
func (ls *Single[T]) Enqueue(v T) {
	n := ls.tail.insert()
	n.Val = v
	ls.tail = n
	ls.len++

	if ls.head == nil {
		ls.head = n
	}
}

// Dequeue removes the current head node from the list and returns its
// value. It returns false if the list was already empty.
func (ls *Single[T]) Dequeue() (v T, ok bool) {
	if ls.head == nil {
		return v, false
	}

	n := ls.head
	ls.head = n.next
	if ls.head == nil {
		ls.tail = nil
	}
	ls.len--

	return n.Val, true
}

// Len returns the number of values in the list.
func (ls *Single[T]) Len() int {
	return ls.len
}

// SingleNode is a node of a [Single].
type SingleNode[T any] struct {
	Val  T
	next *SingleNode[T]
}

func (n *SingleNode[T]) insert() *SingleNode[T] {
	if n == nil {
		return new(SingleNode[T])
	}

	n.next = &SingleNode[T]{next: n.next}
	return n.next
}
