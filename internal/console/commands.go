package console

import (
	"errors"
	"fmt"
	"slices"
	"strconv"

	"deedles.dev/ringq"
)

func commands() map[string]command {
	return map[string]command{
		"new":      {run: (*Console).cmdNew, help: "create a new queue and select it"},
		"free":     {run: (*Console).cmdFree, help: "free the selected queue"},
		"ih":       {args: 1, run: insert((*ringq.Queue).InsertHead), help: "ih str [n]: insert str at the head n times"},
		"it":       {args: 1, run: insert((*ringq.Queue).InsertTail), help: "it str [n]: insert str at the tail n times"},
		"rh":       {run: remove((*ringq.Queue).RemoveHead), help: "rh [str]: remove from the head, optionally checking the value"},
		"rt":       {run: remove((*ringq.Queue).RemoveTail), help: "rt [str]: remove from the tail, optionally checking the value"},
		"size":     {run: (*Console).cmdSize, help: "print the size of the selected queue"},
		"dm":       {run: (*Console).cmdDeleteMid, help: "delete the middle element"},
		"dedup":    {run: mutate((*ringq.Queue).DeleteDup), help: "delete every run of duplicate values"},
		"swap":     {run: mutate(void((*ringq.Queue).Swap)), help: "swap adjacent pairs"},
		"reverse":  {run: mutate(void((*ringq.Queue).Reverse)), help: "reverse the queue"},
		"reverseK": {args: 1, run: (*Console).cmdReverseK, help: "reverseK k: reverse in groups of k"},
		"sort":     {run: mutate(void((*ringq.Queue).Sort)), help: "sort ascending"},
		"descend":  {run: filter((*ringq.Queue).Descend), help: "keep a non-increasing sequence"},
		"ascend":   {run: filter((*ringq.Queue).Ascend), help: "keep a non-decreasing sequence"},
		"merge":    {run: (*Console).cmdMerge, help: "merge every queue into the first"},
		"show":     {run: (*Console).cmdShow, help: "print the selected queue"},
		"check":    {run: (*Console).cmdCheck, help: "check ring consistency of every queue"},
		"prev":     {run: (*Console).cmdPrev, help: "select the previous queue"},
		"next":     {run: (*Console).cmdNext, help: "select the next queue"},
		"help":     {run: (*Console).cmdHelp, help: "list commands"},
		"quit":     {run: func(*Console, []string) error { return ErrQuit }, help: "stop processing commands"},
	}
}

func void(f func(*ringq.Queue)) func(*ringq.Queue) bool {
	return func(q *ringq.Queue) bool {
		f(q)
		return true
	}
}

func mutate(f func(*ringq.Queue) bool) func(*Console, []string) error {
	return func(c *Console, args []string) error {
		q, err := c.queue()
		if err != nil {
			return err
		}
		if !f(q) {
			return errors.New("operation failed")
		}
		return c.show()
	}
}

func filter(f func(*ringq.Queue) int) func(*Console, []string) error {
	return func(c *Console, args []string) error {
		q, err := c.queue()
		if err != nil {
			return err
		}
		f(q)
		return c.show()
	}
}

func insert(f func(*ringq.Queue, string) error) func(*Console, []string) error {
	return func(c *Console, args []string) error {
		q, err := c.queue()
		if err != nil {
			return err
		}
		n, err := count(args, 1)
		if err != nil {
			return err
		}

		for range n {
			if err := f(q, args[0]); err != nil {
				return err
			}
		}
		return c.show()
	}
}

func remove(f func(*ringq.Queue, []byte) (ringq.Element, error)) func(*Console, []string) error {
	return func(c *Console, args []string) error {
		q, err := c.queue()
		if err != nil {
			return err
		}

		e, err := f(q, nil)
		if err != nil {
			return err
		}
		defer e.Release()

		if len(args) > 0 && e.Value() != args[0] {
			return fmt.Errorf("removed %q, expected %q", e.Value(), args[0])
		}
		return c.show()
	}
}

func (c *Console) cmdNew(args []string) error {
	q, err := c.store.NewQueue()
	if err != nil {
		return err
	}
	c.cur = c.chain.Add(q)
	return c.show()
}

func (c *Console) cmdFree(args []string) error {
	if c.cur == nil {
		return errors.New("no queue to free")
	}

	c.cur.Queue().Free()
	c.chain.Remove(c.cur)
	c.cur = c.chain.Front()

	if c.cur == nil {
		c.printf("l = NULL\n")
		return nil
	}
	return c.show()
}

func (c *Console) cmdSize(args []string) error {
	q, err := c.queue()
	if err != nil {
		return err
	}
	c.printf("size = %v\n", q.Size())
	return nil
}

func (c *Console) cmdDeleteMid(args []string) error {
	q, err := c.queue()
	if err != nil {
		return err
	}
	if !q.DeleteMid() {
		return ringq.ErrEmpty
	}
	return c.show()
}

func (c *Console) cmdReverseK(args []string) error {
	q, err := c.queue()
	if err != nil {
		return err
	}
	k, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid k %q: %w", args[0], err)
	}
	q.ReverseK(k)
	return c.show()
}

func (c *Console) cmdMerge(args []string) error {
	n, err := c.chain.Merge()
	if err != nil {
		return err
	}
	c.cur = c.chain.Front()
	c.log.Debug("merged chain", "queues", c.chain.Len(), "size", n)
	return c.show()
}

func (c *Console) cmdShow(args []string) error {
	return c.show()
}

func (c *Console) cmdCheck(args []string) error {
	for ctx := range c.chain.Contexts() {
		if err := ctx.Queue().Check(); err != nil {
			return fmt.Errorf("queue %v: %w", ctx.ID, err)
		}
	}
	c.printf("ok\n")
	return nil
}

func (c *Console) cmdPrev(args []string) error {
	if c.cur == nil {
		return errors.New("no queue selected")
	}
	c.cur = c.cur.Prev()
	if c.cur == nil {
		c.cur = c.chain.Back()
	}
	return c.show()
}

func (c *Console) cmdNext(args []string) error {
	if c.cur == nil {
		return errors.New("no queue selected")
	}
	c.cur = c.cur.Next()
	if c.cur == nil {
		c.cur = c.chain.Front()
	}
	return c.show()
}

func (c *Console) cmdHelp(args []string) error {
	names := make([]string, 0, len(c.cmds))
	for name := range c.cmds {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		c.printf("%-10v %v\n", name, c.cmds[name].help)
	}
	return nil
}
