// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package chain

import (
	"sync"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/iox"
)

// Chain is a thread-safe, ordered sequence of callbacks executed one
// after the other until a callback returns [Trigger] or the sequence
// drains.
//
// One lock guards the whole sequence: [Chain.Add] holds it for a
// single append, [Chain.Execute] for the entire drain including every
// callback invocation. The lock is not reentrant — a callback must not
// call Add or Execute on its own chain; doing so deadlocks.
type Chain struct {
	mu     sync.Mutex
	seq    list
	trace  *Trace
	closed atomix.Uint32
	// invoked counts callback invocations over the chain's lifetime.
	// Atomic so it stays readable while a drain holds the lock.
	invoked atomix.Uint32
	serial  Serial
}

// New returns an empty chain in the ready state with a fresh serial.
// The zero-value lock needs no initialization on this platform, so New
// cannot fail.
func New() *Chain {
	return &Chain{serial: nextSerial()}
}

// Serial returns the serial number assigned to this chain.
// A nil chain reports 0, which is never a valid serial.
func (c *Chain) Serial() Serial {
	if c == nil {
		return 0
	}
	return c.serial
}

// Add appends cb to the end of the chain. Calls on a nil chain, with a
// nil callback, or after [Chain.Close] are silent no-ops. Concurrent
// Adds are serialized: each append is atomic and appends are never
// lost, though the relative order of racing callers is unspecified.
func (c *Chain) Add(cb Callback) {
	if c == nil || cb == nil || c.closed.Load() != 0 {
		return
	}
	c.mu.Lock()
	if c.closed.Load() == 0 {
		c.seq.pushBack(cb)
	}
	c.mu.Unlock()
}

// Execute drains the chain: it removes the head callback, invokes it,
// and repeats until the sequence is empty or a callback returns
// [Trigger]. Callbacks run in registration order and each is removed
// before it is invoked, so no callback ever runs twice. On Trigger the
// remainder stays queued and a later Execute resumes from it.
//
// The lock is held for the whole drain, across every invocation:
// concurrent Executes are fully serialized and Adds block until the
// drain finishes. Calls on a nil chain or after [Chain.Close] are
// no-ops.
func (c *Chain) Execute() {
	if c == nil || c.closed.Load() != 0 {
		return
	}
	c.mu.Lock()
	c.drain()
	c.mu.Unlock()
}

// TryExecute is [Chain.Execute] without waiting for the lock: when
// another goroutine is draining or appending it invokes nothing and
// returns [code.hybscloud.com/iox.ErrWouldBlock]. Calls on a nil chain
// or after [Chain.Close] return nil.
func (c *Chain) TryExecute() error {
	if c == nil || c.closed.Load() != 0 {
		return nil
	}
	if !c.mu.TryLock() {
		return iox.ErrWouldBlock
	}
	c.drain()
	c.mu.Unlock()
	return nil
}

// drain runs the removal/invocation loop. Caller holds c.mu.
func (c *Chain) drain() {
	if c.closed.Load() != 0 {
		return
	}
	for {
		cb := c.seq.shift()
		if cb == nil {
			return
		}
		cmd := cb()
		seq := c.invoked.Add(1)
		if t := c.trace; t != nil {
			t.put(Record{Serial: c.serial, Seq: seq, Cmd: cmd})
		}
		if cmd == Trigger {
			return
		}
	}
}

// Len returns the number of callbacks currently queued. Nil and closed
// chains report 0. Len waits for the lock, so it blocks while a drain
// is in progress; see [Chain.Invoked] for a lock-free reading.
func (c *Chain) Len() int {
	if c == nil || c.closed.Load() != 0 {
		return 0
	}
	c.mu.Lock()
	n := c.seq.size
	c.mu.Unlock()
	return n
}

// Invoked reports how many callbacks the chain has invoked over its
// lifetime. It does not take the lock and may be read while a drain is
// in progress. A nil chain reports 0.
func (c *Chain) Invoked() uint32 {
	if c == nil {
		return 0
	}
	return c.invoked.Load()
}

// Observe attaches t as the chain's invocation trace; nil detaches.
// Records are emitted inside the drain's critical section, so the
// attached trace sees exactly one producer. The consuming side must be
// a single goroutine; see [Trace].
func (c *Chain) Observe(t *Trace) {
	if c == nil || c.closed.Load() != 0 {
		return
	}
	c.mu.Lock()
	if c.closed.Load() == 0 {
		c.trace = t
	}
	c.mu.Unlock()
}

// Close drops every callback still queued without invoking it and
// marks the chain closed. Add, Execute, TryExecute, Observe and Len
// become no-ops afterwards. Close is idempotent and is the chain's
// only irreversible transition.
func (c *Chain) Close() {
	if c == nil {
		return
	}
	c.mu.Lock()
	c.closed.Add(1)
	c.seq.clear()
	c.trace = nil
	c.mu.Unlock()
}
