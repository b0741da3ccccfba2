package ringq

import (
	"fmt"

	"cloudeng.io/errors"
)

// Check walks q's ring forwards and then backwards, verifying that
// every node's links agree with its neighbors'. All problems found are
// reported together.
func (q *Queue) Check() error {
	if !q.ok() {
		return ErrNilQueue
	}
	return q.s.check(q.head)
}

func (s *Store) check(head uint32) error {
	var errs errors.M

	limit := len(s.slots)
	var n int
	prev := head
	for i := s.next(head); i != head; i = s.next(i) {
		if int(i) >= len(s.slots) {
			errs.Append(fmt.Errorf("node %v: next %v is out of range", prev, i))
			return errs.Err()
		}
		if n >= limit {
			errs.Append(fmt.Errorf("forward walk from %v did not return within %v steps", head, limit))
			return errs.Err()
		}

		if st := s.slots[i].state; st != slotLinked {
			errs.Append(fmt.Errorf("node %v: state is %v, not linked", i, st))
		}
		if p := s.prev(i); p != prev {
			errs.Append(fmt.Errorf("node %v: prev is %v but was reached from %v", i, p, prev))
		}
		prev = i
		n++
	}
	if p := s.prev(head); p != prev {
		errs.Append(fmt.Errorf("sentinel %v: prev is %v but last node is %v", head, p, prev))
	}

	var back int
	for i := s.prev(head); i != head; i = s.prev(i) {
		if int(i) >= len(s.slots) || back > n {
			errs.Append(fmt.Errorf("backward walk from %v does not return after %v steps", head, n))
			return errs.Err()
		}
		back++
	}
	if back != n {
		errs.Append(fmt.Errorf("backward walk visited %v nodes, forward walk visited %v", back, n))
	}

	return errs.Err()
}
