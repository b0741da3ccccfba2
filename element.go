package ringq

// Element is a handle to a node that has been removed from a queue.
// The caller owns the node until it calls Release. The zero value is
// a handle to nothing.
type Element struct {
	s   *Store
	i   uint32
	gen uint32
}

func (e Element) valid() bool {
	return e.s != nil && e.s.valid(e.i, e.gen, slotDetached)
}

// Value returns the element's value. It returns the empty string if
// the element has already been released.
func (e Element) Value() string {
	if !e.valid() {
		return ""
	}
	return e.s.value(e.i)
}

// Release frees the element. It returns false if e was already
// released or is the zero Element.
func (e Element) Release() bool {
	if !e.valid() {
		return false
	}
	e.s.freeSlot(e.i)
	return true
}
