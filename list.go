// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package chain

// node is one element of a chain's sequence. A node is owned
// exclusively by the list that contains it and never outlives its
// containment: shift and clear unlink every field before dropping it.
type node struct {
	value Callback
	prev  *node
	next  *node
}

// list is an unbounded doubly-linked FIFO sequence of callbacks.
// head is the earliest-appended element. Invariants: head == nil iff
// tail == nil; head.prev == nil; tail.next == nil.
//
// The list has no synchronization of its own; the owning [Chain]
// serializes every access under its lock.
type list struct {
	head *node
	tail *node
	size int
}

// pushBack appends cb at the tail in O(1). Appending a nil callback is
// a silent no-op.
func (l *list) pushBack(cb Callback) {
	if cb == nil {
		return
	}
	n := &node{value: cb, prev: l.tail}
	if l.tail != nil {
		l.tail.next = n
	} else {
		l.head = n
	}
	l.tail = n
	l.size++
}

// shift removes the head node and returns its callback in O(1), or nil
// when the list is empty. The removed node is fully unlinked so it is
// collectible no matter what still references the remainder.
func (l *list) shift() Callback {
	n := l.head
	if n == nil {
		return nil
	}
	if n == l.tail {
		l.head, l.tail = nil, nil
	} else {
		n.next.prev = nil
		l.head = n.next
	}
	cb := n.value
	n.value, n.prev, n.next = nil, nil, nil
	l.size--
	return cb
}

// clear unlinks and drops every remaining node without invoking or
// returning the callbacks. The callback values are the caller's; the
// list only releases its node envelopes.
func (l *list) clear() {
	for n := l.head; n != nil; {
		next := n.next
		n.value, n.prev, n.next = nil, nil, nil
		n = next
	}
	l.head, l.tail = nil, nil
	l.size = 0
}

// empty reports whether the list holds no nodes.
func (l *list) empty() bool {
	return l.head == nil
}
