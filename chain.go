package ringq

import (
	"fmt"
	"iter"

	"deedles.dev/ringq/internal/list"
)

// Context is a member of a [Chain]. It refers to one queue.
type Context struct {
	ID int

	q    *Queue
	node *list.RingNode[*Context]
}

// Queue returns the queue that ctx refers to.
func (ctx *Context) Queue() *Queue {
	return ctx.q
}

// Next returns the context after ctx in its chain, or nil if ctx is
// the last one or has been removed.
func (ctx *Context) Next() *Context {
	if ctx.node == nil {
		return nil
	}
	if n := ctx.node.Next(); n != nil {
		return n.Val
	}
	return nil
}

// Prev returns the context before ctx in its chain, or nil if ctx is
// the first one or has been removed.
func (ctx *Context) Prev() *Context {
	if ctx.node == nil {
		return nil
	}
	if n := ctx.node.Prev(); n != nil {
		return n.Val
	}
	return nil
}

// A Chain is a ring of queue contexts that can be merged into a single
// sorted queue. The chain's ring is separate from the rings of the
// queues it refers to. A zero value Chain is ready to use.
type Chain struct {
	ring   list.Ring[*Context]
	nextID int
}

// Add appends a new context referring to q to the end of the chain.
func (c *Chain) Add(q *Queue) *Context {
	ctx := Context{ID: c.nextID, q: q}
	c.nextID++
	ctx.node = c.ring.PushBack(&ctx)
	return &ctx
}

// Remove removes ctx from the chain without freeing its queue. It
// returns false if ctx is not a member of c.
func (c *Chain) Remove(ctx *Context) bool {
	if ctx == nil || !c.ring.Remove(ctx.node) {
		return false
	}
	ctx.node = nil
	return true
}

// Len returns the number of contexts in the chain.
func (c *Chain) Len() int {
	return c.ring.Len()
}

// Front returns the first context of the chain, or nil if the chain is
// empty. This is the context that [Chain.Merge] accumulates into.
func (c *Chain) Front() *Context {
	n := c.ring.Front()
	if n == nil {
		return nil
	}
	return n.Val
}

// Back returns the last context of the chain, or nil if the chain is
// empty.
func (c *Chain) Back() *Context {
	n := c.ring.Back()
	if n == nil {
		return nil
	}
	return n.Val
}

// Contexts returns an iterator over the chain's contexts in order. It
// is safe to remove the yielded context during iteration.
func (c *Chain) Contexts() iter.Seq[*Context] {
	return c.ring.All()
}

// Free frees every queue in the chain and empties it.
func (c *Chain) Free() {
	for ctx := range c.Contexts() {
		ctx.q.Free()
		c.Remove(ctx)
	}
}

// Merge moves the contents of every queue in the chain into the queue
// of the first context and sorts the result. The other queues are left
// empty but usable, and remain in the chain. It returns the size of
// the merged queue.
//
// All queues must belong to the same store and pass [Queue.Check].
// Both are verified before anything is moved. Absent queues are
// skipped.
func (c *Chain) Merge() (int, error) {
	front := c.Front()
	if front == nil {
		return 0, nil
	}
	dst := front.q
	if !dst.ok() {
		return 0, ErrNilQueue
	}
	if c.Len() == 1 {
		return dst.Size(), nil
	}

	for ctx := range c.Contexts() {
		if !ctx.q.ok() {
			continue
		}
		if ctx.q.s != dst.s {
			return 0, fmt.Errorf("context %v: %w", ctx.ID, ErrForeignQueue)
		}
		if err := ctx.q.Check(); err != nil {
			dst.s.log.Error("queue failed consistency check before merge", "context", ctx.ID, "err", err)
			return 0, fmt.Errorf("context %v: %w: %w", ctx.ID, ErrCorrupt, err)
		}
	}

	s := dst.s
	for ctx := range c.Contexts() {
		src := ctx.q
		if ctx == front || !src.ok() || src.head == dst.head {
			continue
		}
		s.spliceTail(dst.head, src.head)
	}

	dst.Sort()
	if err := dst.Check(); err != nil {
		s.log.Error("merged queue failed consistency check", "context", front.ID, "err", err)
		return 0, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	return dst.Size(), nil
}
