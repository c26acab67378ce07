// Package ring implements an intrusive circular doubly linked list.
//
// A ring is identified by a sentinel Node that carries no payload: an
// empty ring is a sentinel whose next and prev both reference itself.
// Payload types embed a Node and register themselves as its container,
// which makes the reverse mapping from a link back to its owner an O(1)
// field load rather than an allocation or a lookup.
//
// The package deals strictly in membership: a Node never owns the value
// it is embedded in, and unlinking a Node has no effect on its
// container's lifetime.
package ring

import "iter"

// Node is a link in a ring: a next/prev pointer pair plus a reference
// back to the value the link is embedded in. The zero Node is not
// usable; call Init first.
type Node struct {
	next, prev *Node

	// container is the value this Node is embedded in, or nil for
	// a sentinel.
	container any
}

// Init makes n a self-referencing empty ring. container is the value n
// is embedded in; pass nil when n is a sentinel.
func (n *Node) Init(container any) {
	n.next = n
	n.prev = n
	n.container = container
}

// Container returns the value n is embedded in, or nil for a sentinel.
func (n *Node) Container() any {
	return n.container
}

// Next returns the link following n in its ring.
func (n *Node) Next() *Node {
	return n.next
}

// Prev returns the link preceding n in its ring.
func (n *Node) Prev() *Node {
	return n.prev
}

// SetNext overwrites n's forward link. It is intended for callers that
// temporarily take a ring apart, such as a sort that works on a
// singly-linked chain; the caller is responsible for restoring the
// ring invariant before anything else touches it.
func (n *Node) SetNext(next *Node) {
	n.next = next
}

// SetPrev overwrites n's backward link. See SetNext.
func (n *Node) SetPrev(prev *Node) {
	n.prev = prev
}

// LinkAfter inserts n into anchor's ring, immediately after anchor.
func LinkAfter(n, anchor *Node) {
	next := anchor.next
	n.prev = anchor
	n.next = next
	next.prev = n
	anchor.next = n
}

// LinkBefore inserts n into anchor's ring, immediately before anchor.
func LinkBefore(n, anchor *Node) {
	LinkAfter(n, anchor.prev)
}

// Unlink removes n from whatever ring contains it. Afterwards n's own
// pointers are cleared; n is not a member of any ring and must be
// re-Linked (or re-Init'd) before use.
func Unlink(n *Node) {
	n.prev.next = n.next
	n.next.prev = n.prev
	n.next = nil // avoid memory leaks
	n.prev = nil // avoid memory leaks
}

// Empty reports whether sentinel's ring contains no members.
func (n *Node) Empty() bool {
	return n.next == n
}

// Singular reports whether sentinel's ring contains exactly one member.
func (n *Node) Singular() bool {
	return n.next != n && n.next == n.prev
}

// All returns a forward sequence of the ring's member links, excluding
// the sentinel n itself. The sequence is lazy and restartable. The ring
// must not be mutated during iteration; use AllSafe for that.
func (n *Node) All() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		for cur := n.next; cur != n; cur = cur.next {
			if !yield(cur) {
				return
			}
		}
	}
}

// AllSafe is like All, but the successor of each yielded link is
// captured before the yield, so the current link may be unlinked from
// the ring by the loop body.
func (n *Node) AllSafe() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		for cur, next := n.next, n.next.next; cur != n; cur, next = next, next.next {
			if !yield(cur) {
				return
			}
		}
	}
}
