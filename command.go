// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package chain

// Command is the result of a [Callback] invocation. It tells the drain
// loop whether to proceed to the next callback or stop.
//
// Command is a named enum rather than a bool so the contract can grow
// further routing values without breaking callers.
type Command uint8

const (
	// Continue proceeds to the next callback in the chain.
	Continue Command = iota
	// Trigger stops the drain immediately. Callbacks queued behind the
	// triggering one stay queued for a later [Chain.Execute].
	Trigger
)

// Callback is one chain element: a zero-argument function returning a
// routing [Command]. The chain stores the function value only; any
// resources the callback captures remain the caller's to manage.
type Callback func() Command
