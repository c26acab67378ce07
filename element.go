package ringq

import "github.com/quelib/ringq/internal/ring"

// Element is a queue member. It owns exactly one mutable value buffer,
// populated by copy when the element is created, and embeds the link
// that threads it into a Queue's ring.
//
// An Element is reachable from a Queue if and only if its link is part
// of that Queue's ring. After RemoveHead or RemoveTail return it, the
// Element belongs to the caller: the value stays valid until the caller
// invokes Release. Releasing twice, or touching an Element after
// Release, is a caller error that this package does not detect.
type Element struct {
	node  ring.Node
	value []byte
}

// newElement allocates an Element owning an exactly-sized copy of s.
func newElement(s string) *Element {
	e := &Element{value: []byte(s)}
	e.node.Init(e)
	return e
}

// elem recovers the owning Element from its embedded link.
func elem(n *ring.Node) *Element {
	return n.Container().(*Element)
}

// Value returns the element's current value.
func (e *Element) Value() string {
	return string(e.value)
}

// Release frees the element's owned value buffer. The Element must not
// be used afterwards. Call it exactly once, and only on elements
// returned by RemoveHead or RemoveTail; elements still linked into a
// Queue are released by the Queue itself.
func (e *Element) Release() {
	e.value = nil
}

// copyValue copies the element's value into buf, NUL-terminated,
// truncating to len(buf)-1 bytes if the value is longer. A nil or
// zero-length buf is ignored. The element's own value is unaffected.
func (e *Element) copyValue(buf []byte) {
	if len(buf) == 0 {
		return
	}
	n := copy(buf[:len(buf)-1], e.value)
	buf[n] = 0
}
