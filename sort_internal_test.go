package ringq

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func values(s *Store, seq []uint32) []string {
	vals := make([]string, 0, len(seq))
	for _, i := range seq {
		vals = append(vals, s.value(i))
	}
	return vals
}

func detached(t *testing.T, s *Store, vals ...string) []uint32 {
	t.Helper()

	seq := make([]uint32, 0, len(vals))
	for _, v := range vals {
		i, ok := s.newElement(v)
		require.True(t, ok)
		seq = append(seq, i)
	}
	return seq
}

func TestMerge(t *testing.T) {
	s := NewStore()
	a := detached(t, s, "a", "c", "e", "e")
	b := detached(t, s, "b", "e", "f")

	merged := s.merge(make([]uint32, 0, len(a)+len(b)), a, b)
	require.Equal(t, []string{"a", "b", "c", "e", "e", "e", "f"}, values(s, merged))

	// Ties take from a first.
	require.Equal(t, []uint32{a[2], a[3], b[1]}, merged[3:6])

	require.Equal(t, a, s.merge(make([]uint32, 0, len(a)), a, nil))
	require.Equal(t, b, s.merge(make([]uint32, 0, len(b)), nil, b))
	require.Empty(t, s.merge(nil, nil, nil))
}

func TestMergeSort(t *testing.T) {
	s := NewStore()
	in := []string{"d", "a", "c", "a", "b", "e", "b"}
	seq := detached(t, s, in...)
	orig := slices.Clone(seq)

	s.mergeSort(seq, make([]uint32, len(seq)))
	require.Equal(t, []string{"a", "a", "b", "b", "c", "d", "e"}, values(s, seq))

	// Stable: the first "a" in the input is still first.
	require.Equal(t, orig[1], seq[0])
	require.Equal(t, orig[3], seq[1])
	require.Equal(t, orig[4], seq[2])
	require.Equal(t, orig[6], seq[3])

	one := detached(t, s, "z")
	s.mergeSort(one, make([]uint32, 1))
	require.Equal(t, []string{"z"}, values(s, one))
	s.mergeSort(nil, nil)
}

func TestLinkPrimitives(t *testing.T) {
	s := NewStore()
	head, ok := s.allocSlot(slotSentinel)
	require.True(t, ok)
	require.True(t, s.isSingleton(head))

	nodes := detached(t, s, "b", "a", "c")
	s.insertAfter(head, nodes[0])
	s.insertAfter(head, nodes[1])
	s.insertBefore(head, nodes[2])
	for _, i := range nodes {
		s.slots[i].state = slotLinked
	}
	require.False(t, s.isSingleton(head))
	require.NoError(t, s.check(head))
	require.Equal(t, nodes[1], s.next(head))
	require.Equal(t, nodes[2], s.prev(head))

	s.unlink(nodes[0])
	require.True(t, s.isSingleton(nodes[0]))
	require.Equal(t, nodes[2], s.next(nodes[1]))
	require.NoError(t, s.check(head))

	other, ok := s.allocSlot(slotSentinel)
	require.True(t, ok)
	s.insertAfter(other, nodes[0])
	s.slots[nodes[0]].state = slotLinked
	s.spliceTail(head, other)
	require.True(t, s.isSingleton(other))
	require.NoError(t, s.check(head))
	require.Equal(t, nodes[0], s.prev(head))
}

func TestCheckDetectsBrokenLinks(t *testing.T) {
	s := NewStore()
	q, err := s.NewQueue()
	require.NoError(t, err)
	for _, v := range []string{"a", "b", "c"} {
		require.NoError(t, q.InsertTail(v))
	}

	b := s.next(s.next(q.head))
	s.slots[b].prev = q.head
	err = q.Check()
	require.Error(t, err)
	require.Contains(t, err.Error(), "prev")

	s.relink(q.head, q.nodes())
	require.NoError(t, q.Check())

	// A forward cycle that never returns to the sentinel.
	c := s.next(b)
	s.slots[c].next = b
	require.Error(t, q.Check())
}
