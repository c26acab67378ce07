package ringq

import (
	"bytes"

	"github.com/quelib/ringq/internal/ring"
)

// Sort sorts q ascending by lexicographic comparison of element
// values, in O(n log n) time. The sort is stable: elements with equal
// values keep their relative order. It is a no-op on a nil, empty or
// single-element queue.
//
// The ring is temporarily broken into a nil-terminated singly linked
// chain, merge-sorted, then walked once forward to restore the prev
// pointers and reconnect the ring.
func (q *Queue) Sort() {
	if !q.ok() || q.sentinel.Empty() || q.sentinel.Singular() {
		return
	}

	head := &q.sentinel
	head.Prev().SetNext(nil)
	head.SetNext(mergeSort(head.Next()))

	tail := head
	for n := head.Next(); n != nil; n = n.Next() {
		n.SetPrev(tail)
		tail = n
	}
	tail.SetNext(head)
	head.SetPrev(tail)
	q.logger().Debug("sorted queue")
}

// mergeSort sorts a nil-terminated chain and returns its new head.
// The split recursion is O(log n) deep; the merge itself is iterative.
func mergeSort(chain *ring.Node) *ring.Node {
	if chain == nil || chain.Next() == nil {
		return chain
	}

	// Slow/fast walk: slow lands on the last node of the front half.
	slow, fast := chain, chain.Next()
	for fast != nil && fast.Next() != nil {
		slow = slow.Next()
		fast = fast.Next().Next()
	}
	back := slow.Next()
	slow.SetNext(nil)

	return merge(mergeSort(chain), mergeSort(back))
}

// merge combines two sorted chains into one, stably: ties take the
// front chain's element first. It uses a local tail cursor instead of
// recursing, so merging never grows the call stack.
func merge(front, back *ring.Node) *ring.Node {
	var head, tail *ring.Node
	for front != nil && back != nil {
		var take *ring.Node
		if bytes.Compare(elem(front).value, elem(back).value) > 0 {
			take, back = back, back.Next()
		} else {
			take, front = front, front.Next()
		}
		if tail == nil {
			head = take
		} else {
			tail.SetNext(take)
		}
		tail = take
	}

	rest := front
	if rest == nil {
		rest = back
	}
	if tail == nil {
		return rest
	}
	tail.SetNext(rest)
	return head
}
