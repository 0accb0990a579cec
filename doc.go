// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package chain provides a thread-safe, ordered chain of zero-argument
// callbacks executed sequentially until one signals a stop.
//
// A [Chain] owns a doubly-linked FIFO sequence of [Callback] values
// and one mutual-exclusion lock. [Chain.Add] appends under the lock;
// [Chain.Execute] drains under the lock, removing each callback before
// invoking it, until the sequence empties or a callback returns
// [Trigger]. Callbacks left behind a Trigger stay queued, and a later
// Execute resumes from them in the original order.
//
// # Architecture
//
//   - Sequence: unexported doubly-linked list with O(1) append and O(1)
//     remove-from-front. Nodes are owned by the list alone and are
//     consumed destructively during a drain.
//   - Locking: one coarse lock per chain. Execute holds it across every
//     callback invocation, so concurrent Executes serialize and Adds
//     wait for a running drain. The lock is not reentrant: a callback
//     touching its own chain deadlocks.
//   - Non-blocking boundary: [Chain.TryExecute] returns
//     [code.hybscloud.com/iox.ErrWouldBlock] instead of waiting for a
//     busy chain.
//   - Observability: [Chain.Observe] streams [Record] values through a
//     bounded lock-free SPSC ring via [code.hybscloud.com/lfq];
//     [Trace.Next] is non-blocking, [Trace.Wait] blocks with adaptive
//     backoff.
//
// # Example
//
//	c := chain.New()
//	c.Add(func() chain.Command { fmt.Println("Hello"); return chain.Continue })
//	c.Add(func() chain.Command { fmt.Println("Trigger"); return chain.Trigger })
//	c.Add(func() chain.Command { fmt.Println("Out"); return chain.Continue })
//	c.Execute() // Hello, Trigger; Out stays queued
//	c.Execute() // Out
//	c.Close()
package chain
