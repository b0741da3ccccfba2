package ringq_test

import (
	"testing"

	"deedles.dev/ringq"
	"github.com/stretchr/testify/require"
)

func TestDeleteMid(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		out  []string
	}{
		{"One", []string{"a"}, []string{}},
		{"Two", []string{"a", "b"}, []string{"a"}},
		{"Three", []string{"a", "b", "c"}, []string{"a", "c"}},
		{"Four", []string{"a", "b", "c", "d"}, []string{"a", "b", "d"}},
		{"Seven", []string{"1", "2", "3", "4", "5", "6", "7"}, []string{"1", "2", "3", "5", "6", "7"}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			s := ringq.NewStore()
			q := newQueue(t, s, test.in...)
			require.True(t, q.DeleteMid())
			require.Equal(t, test.out, contents(t, q))
			require.Equal(t, len(test.out)+1, s.Live())
		})
	}

	q := newQueue(t, ringq.NewStore())
	require.False(t, q.DeleteMid())
}

func TestDeleteDup(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		out  []string
	}{
		{"Empty", nil, []string{}},
		{"NoDups", []string{"a", "b", "c"}, []string{"a", "b", "c"}},
		{"Pair", []string{"banana", "apple", "apple", "cherry"}, []string{"banana", "cherry"}},
		{"All", []string{"x", "x", "x"}, []string{}},
		{"Runs", []string{"a", "a", "b", "c", "c", "c", "d", "e", "e"}, []string{"b", "d"}},
		{"NotAdjacent", []string{"a", "b", "a"}, []string{"a", "b", "a"}},
		{"EmptyStrings", []string{"", "", "z"}, []string{"z"}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			s := ringq.NewStore()
			q := newQueue(t, s, test.in...)
			require.True(t, q.DeleteDup())
			require.Equal(t, test.out, contents(t, q))
			require.Equal(t, len(test.out)+1, s.Live())
		})
	}
}

func TestSwap(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		out  []string
	}{
		{"Empty", nil, []string{}},
		{"One", []string{"a"}, []string{"a"}},
		{"Two", []string{"a", "b"}, []string{"b", "a"}},
		{"Odd", []string{"a", "b", "c", "d", "e"}, []string{"b", "a", "d", "c", "e"}},
		{"Even", []string{"a", "b", "c", "d"}, []string{"b", "a", "d", "c"}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			q := newQueue(t, ringq.NewStore(), test.in...)
			q.Swap()
			require.Equal(t, test.out, contents(t, q))
		})
	}
}

func TestReverse(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		out  []string
	}{
		{"Empty", nil, []string{}},
		{"One", []string{"a"}, []string{"a"}},
		{"Two", []string{"a", "b"}, []string{"b", "a"}},
		{"Many", []string{"a", "b", "c", "d", "e"}, []string{"e", "d", "c", "b", "a"}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			q := newQueue(t, ringq.NewStore(), test.in...)
			q.Reverse()
			require.Equal(t, test.out, contents(t, q))
			q.Reverse()
			require.Equal(t, append([]string{}, test.in...), contents(t, q))
		})
	}
}

func TestReverseK(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		k    int
		out  []string
	}{
		{"Pairs", []string{"1", "2", "3"}, 2, []string{"2", "1", "3"}},
		{"Exact", []string{"1", "2", "3", "4", "5", "6"}, 3, []string{"3", "2", "1", "6", "5", "4"}},
		{"Partial", []string{"1", "2", "3", "4", "5"}, 3, []string{"3", "2", "1", "4", "5"}},
		{"Whole", []string{"1", "2", "3"}, 3, []string{"3", "2", "1"}},
		{"One", []string{"1", "2", "3"}, 1, []string{"1", "2", "3"}},
		{"Zero", []string{"1", "2", "3"}, 0, []string{"1", "2", "3"}},
		{"Negative", []string{"1", "2"}, -4, []string{"1", "2"}},
		{"TooBig", []string{"1", "2", "3"}, 4, []string{"1", "2", "3"}},
		{"Empty", nil, 2, []string{}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			q := newQueue(t, ringq.NewStore(), test.in...)
			q.ReverseK(test.k)
			require.Equal(t, test.out, contents(t, q))
		})
	}
}

func TestDescend(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		out  []string
	}{
		{"Empty", nil, []string{}},
		{"One", []string{"a"}, []string{"a"}},
		{"Increasing", []string{"a", "b"}, []string{"b"}},
		{"Mixed", []string{"5", "2", "9", "3", "8"}, []string{"9", "8"}},
		{"Dip", []string{"c", "a", "b"}, []string{"c", "b"}},
		{"Equal", []string{"b", "b", "a"}, []string{"b", "b", "a"}},
		{"Decreasing", []string{"d", "c", "b", "a"}, []string{"d", "c", "b", "a"}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			s := ringq.NewStore()
			q := newQueue(t, s, test.in...)
			require.Equal(t, len(test.out), q.Descend())
			require.Equal(t, test.out, contents(t, q))
			require.Equal(t, len(test.out)+1, s.Live())
		})
	}
}

func TestAscend(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		out  []string
	}{
		{"Empty", nil, []string{}},
		{"Decreasing", []string{"b", "a"}, []string{"a"}},
		{"Mixed", []string{"5", "2", "9", "3", "8"}, []string{"2", "3", "8"}},
		{"Equal", []string{"a", "b", "b"}, []string{"a", "b", "b"}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			q := newQueue(t, ringq.NewStore(), test.in...)
			require.Equal(t, len(test.out), q.Ascend())
			require.Equal(t, test.out, contents(t, q))
		})
	}
}
