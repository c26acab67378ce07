// Package ringq provides an ordered string container built on an
// intrusive circular doubly linked list.
//
// A Queue is identified by its sentinel: a payload-free link whose next
// and prev reference themselves when the queue is empty. Elements are
// created only by the insertion operations, which copy the caller's
// string into a buffer the element owns, and are linked into the
// sentinel's ring at either end in O(1).
//
// The API distinguishes removing from releasing. RemoveHead and
// RemoveTail only unlink: the returned Element stays valid and its
// ownership transfers to the caller, who must eventually call
// Element.Release exactly once. Queue.Free releases every element still
// linked. This mirrors the usual container contract where "remove"
// changes membership and "release" ends a lifetime.
//
// Beyond the deque operations, a Queue supports five structural
// algorithms that rewire links in place: DeleteMid, DeleteDup, Swap,
// Reverse and Sort. All of them preserve the ring invariant
// (n.next.prev == n and n.prev.next == n for every linked node) between
// public operations, and all of them tolerate nil and empty queues.
//
// A Queue is not safe for concurrent use. Callers that share a Queue
// across goroutines must serialize every operation externally, for
// example with a sync.Mutex.
package ringq

import (
	"log/slog"

	"github.com/neilotoole/sq/libsq/core/lg"

	"github.com/quelib/ringq/internal/ring"
)

// Queue is an ordered container of string-valued elements. It owns
// every Element linked into it: Free releases them all. Create a Queue
// with New; the zero value lazily initializes itself on first use.
type Queue struct {
	// sentinel anchors the ring. It is never treated as an Element.
	sentinel ring.Node

	// log receives debug records from the structural algorithms.
	// See SetLogger.
	log *slog.Logger
}

// New returns a new empty Queue.
func New() *Queue {
	q := &Queue{log: lg.Discard()}
	q.sentinel.Init(nil)
	return q
}

// ok reports whether q is usable. It lazily initializes the sentinel,
// so a zero Queue behaves like New(). A nil Queue is not usable; every
// public operation treats it as a documented failure, never a crash.
func (q *Queue) ok() bool {
	if q == nil {
		return false
	}
	if q.sentinel.Next() == nil {
		q.sentinel.Init(nil)
	}
	return true
}

// Free releases every element still linked into q, leaving q empty.
// It is a no-op on a nil Queue and safe to call on an empty one.
func (q *Queue) Free() {
	if !q.ok() {
		return
	}
	for n := range q.sentinel.AllSafe() {
		ring.Unlink(n)
		elem(n).Release()
	}
	q.logger().Debug("queue freed")
}

// InsertHead inserts a copy of s at the head of q in O(1).
// It returns false, leaving q unchanged, if q is nil.
func (q *Queue) InsertHead(s string) bool {
	if !q.ok() {
		return false
	}
	e := newElement(s)
	ring.LinkAfter(&e.node, &q.sentinel)
	return true
}

// InsertTail inserts a copy of s at the tail of q in O(1).
// It returns false, leaving q unchanged, if q is nil.
func (q *Queue) InsertTail(s string) bool {
	if !q.ok() {
		return false
	}
	e := newElement(s)
	ring.LinkBefore(&e.node, &q.sentinel)
	return true
}

// RemoveHead unlinks and returns the element at the head of q, or nil
// if q is nil or empty. Ownership of the returned Element transfers to
// the caller, who must call Element.Release exactly once when done
// with it.
//
// If buf is non-nil, up to len(buf)-1 bytes of the element's value are
// copied into it followed by a NUL terminator, silently truncating
// longer values. The element's own value is left unmodified.
func (q *Queue) RemoveHead(buf []byte) *Element {
	if !q.ok() || q.sentinel.Empty() {
		return nil
	}
	return q.remove(q.sentinel.Next(), buf)
}

// RemoveTail unlinks and returns the element at the tail of q.
// Otherwise it behaves exactly like RemoveHead.
func (q *Queue) RemoveTail(buf []byte) *Element {
	if !q.ok() || q.sentinel.Empty() {
		return nil
	}
	return q.remove(q.sentinel.Prev(), buf)
}

func (q *Queue) remove(n *ring.Node, buf []byte) *Element {
	ring.Unlink(n)
	e := elem(n)
	e.copyValue(buf)
	return e
}

// Size returns the number of elements linked into q, by full forward
// traversal. It returns 0 if q is nil or empty.
func (q *Queue) Size() int {
	if !q.ok() {
		return 0
	}
	size := 0
	for range q.sentinel.All() {
		size++
	}
	return size
}
