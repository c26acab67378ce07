package ringq_test

import (
	mrand "math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/quelib/ringq"
)

func TestDeleteMid(t *testing.T) {
	testCases := []struct {
		name string
		in   []string
		want []string
	}{
		{"even", []string{"1", "2", "3", "4", "5", "6"}, []string{"1", "2", "3", "5", "6"}},
		{"odd", []string{"1", "2", "3", "4", "5"}, []string{"1", "2", "4", "5"}},
		{"pair", []string{"1", "2"}, []string{"1"}},
		{"singleton", []string{"only"}, nil},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			q := newQueue(t, tc.in...)
			require.True(t, q.DeleteMid())
			require.Equal(t, tc.want, drain(q))
		})
	}
}

func TestDeleteMidOrderPreserved(t *testing.T) {
	q := newQueue(t, "a", "b", "c", "d", "e", "f")
	require.True(t, q.DeleteMid())
	require.Equal(t, []string{"a", "b", "c", "e", "f"}, drain(q))
}

func TestDeleteMidEmpty(t *testing.T) {
	q := ringq.New()
	require.False(t, q.DeleteMid())
}

func TestDeleteMidRepeated(t *testing.T) {
	// Deleting the middle n times empties the queue.
	q := newQueue(t, "1", "2", "3", "4", "5")
	for i := 0; i < 5; i++ {
		require.True(t, q.DeleteMid())
	}
	require.False(t, q.DeleteMid())
	require.Equal(t, 0, q.Size())
}

func TestDeleteDup(t *testing.T) {
	testCases := []struct {
		name string
		in   []string
		want []string
	}{
		{"mixed runs", []string{"1", "1", "2", "3", "3", "3"}, []string{"2"}},
		{"run at tail", []string{"1", "2", "2"}, []string{"1"}},
		{"run at head", []string{"a", "a", "b"}, []string{"b"}},
		{"all duplicates", []string{"x", "x", "x"}, nil},
		{"no duplicates", []string{"a", "b", "c"}, []string{"a", "b", "c"}},
		{"singleton", []string{"a"}, []string{"a"}},
		{"empty", nil, nil},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			q := newQueue(t, tc.in...)
			require.True(t, q.DeleteDup())
			require.Equal(t, tc.want, drain(q))
		})
	}
}

func TestSwap(t *testing.T) {
	testCases := []struct {
		name string
		in   []string
		want []string
	}{
		{"odd", []string{"1", "2", "3", "4", "5"}, []string{"2", "1", "4", "3", "5"}},
		{"even", []string{"1", "2", "3", "4"}, []string{"2", "1", "4", "3"}},
		{"pair", []string{"a", "b"}, []string{"b", "a"}},
		{"singleton", []string{"a"}, []string{"a"}},
		{"empty", nil, nil},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			q := newQueue(t, tc.in...)
			q.Swap()
			require.Equal(t, tc.want, drain(q))
		})
	}
}

func TestSwapTwiceRestores(t *testing.T) {
	rng := mrand.New(mrand.NewSource(7))
	words := randomWords(rng, 64) // even length
	q := newQueue(t, words...)

	q.Swap()
	q.Swap()
	require.Equal(t, words, drain(q))
}

func TestReverse(t *testing.T) {
	q := newQueue(t, "1", "2", "3")
	q.Reverse()
	require.Equal(t, []string{"3", "2", "1"}, drain(q))

	q = newQueue(t, "only")
	q.Reverse()
	require.Equal(t, []string{"only"}, drain(q))

	q = ringq.New()
	q.Reverse() // no-op, no crash
	require.Equal(t, 0, q.Size())
}

func TestReverseSelfInverse(t *testing.T) {
	rng := mrand.New(mrand.NewSource(11))
	words := randomWords(rng, 101)
	q := newQueue(t, words...)

	q.Reverse()
	q.Reverse()
	require.Equal(t, words, drain(q))
}

func TestReverseMatchesSlices(t *testing.T) {
	rng := mrand.New(mrand.NewSource(13))
	words := randomWords(rng, 50)
	q := newQueue(t, words...)

	q.Reverse()

	want := slices.Clone(words)
	slices.Reverse(want)
	require.Equal(t, want, drain(q))
}
