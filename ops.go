package ringq

import (
	"bytes"

	"github.com/quelib/ringq/internal/ring"
)

// DeleteMid removes and releases the element at zero-based index
// ⌊n/2⌋ from the head; in a six-element queue that is index 3, the
// fourth element. It walks a front cursor from the head and a back
// cursor from the tail toward each other, one step per side, until
// they meet or cross; the front cursor then identifies the target.
// O(n) time, O(1) extra space.
//
// It returns false, doing nothing, if q is nil or empty.
func (q *Queue) DeleteMid() bool {
	if !q.ok() || q.sentinel.Empty() {
		return false
	}

	front := q.sentinel.Next()
	back := q.sentinel.Prev()
	for front != back && back.Next() != front {
		front = front.Next()
		back = back.Prev()
	}

	ring.Unlink(front)
	elem(front).Release()
	q.logger().Debug("deleted middle element")
	return true
}

// DeleteDup removes and releases every element that belongs to a run
// of adjacent equal values, leaving only values that appeared exactly
// once. No member of a duplicate run survives, not even one
// representative.
//
// The queue must already be sorted ascending; that precondition is the
// caller's responsibility and is not verified, and the result on
// unsorted input is undefined. DeleteDup returns false only if q is
// nil; an empty queue is a successful no-op.
func (q *Queue) DeleteDup() bool {
	if !q.ok() {
		return false
	}

	// lastDup carries "the previous element matched its successor"
	// across steps, so the final member of a run, which has no equal
	// successor of its own, is still deleted.
	lastDup := false
	for n := range q.sentinel.AllSafe() {
		match := false
		if next := n.Next(); next != &q.sentinel {
			match = bytes.Equal(elem(n).value, elem(next).value)
		}
		if match || lastDup {
			ring.Unlink(n)
			elem(n).Release()
		}
		lastDup = match
	}
	q.logger().Debug("deleted duplicate runs")
	return true
}

// Swap exchanges the ring positions of every two adjacent elements,
// front to back: [1,2,3,4,5] becomes [2,1,4,3,5]. An odd trailing
// element stays in place. No elements are allocated or released.
// It is a no-op on a nil or empty queue.
func (q *Queue) Swap() {
	if !q.ok() || q.sentinel.Empty() {
		return
	}

	// Unlinking n and relinking it after its successor swaps the
	// pair; n's new next is then the first element of the next pair.
	for n := q.sentinel.Next(); n != &q.sentinel && n.Next() != &q.sentinel; n = n.Next() {
		next := n.Next()
		ring.Unlink(n)
		ring.LinkAfter(n, next)
	}
	q.logger().Debug("swapped adjacent pairs")
}

// Reverse reorders the existing elements into reverse traversal order.
// It rewires links only: no element is allocated or released. It is a
// no-op on a nil or empty queue.
func (q *Queue) Reverse() {
	if !q.ok() || q.sentinel.Empty() {
		return
	}

	// Moving each element to the front, taken in original order,
	// reverses the whole ring.
	for n := range q.sentinel.AllSafe() {
		ring.Unlink(n)
		ring.LinkAfter(n, &q.sentinel)
	}
	q.logger().Debug("reversed queue")
}
