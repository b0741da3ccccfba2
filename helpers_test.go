package ringq_test

import (
	"slices"
	"testing"

	"deedles.dev/ringq"
	"github.com/stretchr/testify/require"
)

func newQueue(t *testing.T, s *ringq.Store, vals ...string) *ringq.Queue {
	t.Helper()

	q, err := s.NewQueue()
	require.NoError(t, err)
	for _, v := range vals {
		require.NoError(t, q.InsertTail(v))
	}
	return q
}

// contents returns q's values after checking that walking it in both
// directions agrees.
func contents(t *testing.T, q *ringq.Queue) []string {
	t.Helper()

	require.NoError(t, q.Check())
	fwd := append([]string{}, slices.Collect(q.Values())...)
	back := slices.Collect(q.Backward())
	slices.Reverse(back)
	require.Equal(t, fwd, append([]string{}, back...))
	require.Equal(t, len(fwd), q.Size())
	return fwd
}
