package ringq_test

// File helper_test.go contains test helper functionality.

import (
	mrand "math/rand"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/quelib/ringq"
)

// newQueue returns a queue populated with vals, head to tail.
func newQueue(t *testing.T, vals ...string) *ringq.Queue {
	t.Helper()
	q := ringq.New()
	for _, v := range vals {
		require.True(t, q.InsertTail(v))
	}
	return q
}

// drain removes every element from the head of q, releasing each one,
// and returns the values in removal order. q is empty afterwards.
func drain(q *ringq.Queue) []string {
	var got []string
	for e := q.RemoveHead(nil); e != nil; e = q.RemoveHead(nil) {
		got = append(got, e.Value())
		e.Release()
	}
	return got
}

// randomWords returns n pseudo-random short strings drawn from a small
// alphabet, so duplicates are likely. The rng is seeded by the caller
// for reproducibility.
func randomWords(rng *mrand.Rand, n int) []string {
	words := make([]string, n)
	for i := range words {
		words[i] = strconv.Itoa(rng.Intn(n/2 + 1))
	}
	return words
}
