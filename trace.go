// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package chain

import (
	"code.hybscloud.com/iox"
	"code.hybscloud.com/lfq"
)

// Record is one invocation observed through a [Trace]: the serial of
// the chain that ran, the 1-based position of the invocation in that
// chain's lifetime, and the command the callback returned.
type Record struct {
	Serial Serial
	Seq    uint32
	Cmd    Command
}

// Trace is a bounded single-producer single-consumer invocation log
// backed by a lock-free SPSC ring. The producer is the drain loop of
// the chain the trace is attached to — single by construction, because
// records are emitted under the chain lock. The consumer must be one
// goroutine of the caller's choosing.
//
// When the ring is full the producer waits with adaptive backoff
// rather than dropping records, so a stalled consumer applies
// backpressure to [Chain.Execute].
type Trace struct {
	q lfq.SPSC[Record]
	// slot is the producer-side enqueue buffer; reusing it keeps each
	// record from escaping to the heap on enqueue.
	slot Record
}

// NewTrace returns a trace whose ring holds up to capacity records.
func NewTrace(capacity int) *Trace {
	t := &Trace{}
	t.q.Init(capacity)
	return t
}

// put appends r, waiting with iox.Backoff while the ring is full.
// Called by the drain loop with the chain lock held.
func (t *Trace) put(r Record) {
	t.slot = r
	var bo iox.Backoff
	for t.q.Enqueue(&t.slot) != nil {
		bo.Wait()
	}
}

// Next returns the oldest unconsumed record without blocking.
// It returns [code.hybscloud.com/iox.ErrWouldBlock] when the ring is
// empty.
func (t *Trace) Next() (Record, error) {
	return t.q.Dequeue()
}

// Wait blocks with adaptive backoff until a record is available and
// returns it.
func (t *Trace) Wait() Record {
	var bo iox.Backoff
	for {
		r, err := t.q.Dequeue()
		if err == nil {
			return r
		}
		bo.Wait()
	}
}
