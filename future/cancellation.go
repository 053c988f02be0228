/*
 * MIT License
 *
 * Copyright (c) 2022-2026 Arsene Tochemey Gandote
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package future

import (
	"sync"
	"sync/atomic"
)

// upstreamRef tracks whatever Future a downstream combinator should cancel
// right now. Chain needs this because what "upstream" means changes over
// the combinator's lifetime: first the Future being chained from, then the
// inner Future its continuation produced. retarget is called every time
// that changes; invoke is wired once as the downstream's single
// cancellation responder and always cancels whichever target is current.
type upstreamRef struct {
	mu     sync.Mutex
	cancel func() Future[Unit]
}

// retarget swaps the Future that invoke cancels.
func (u *upstreamRef) retarget(cancel func() Future[Unit]) {
	u.mu.Lock()
	u.cancel = cancel
	u.mu.Unlock()
}

// invoke cancels whatever target is current and returns the resulting
// Future[Unit]. An already-resolved Future[Unit] is returned if no target
// is set; every combinator in this package sets one before wiring invoke.
func (u *upstreamRef) invoke() Future[Unit] {
	u.mu.Lock()
	cancel := u.cancel
	u.mu.Unlock()
	if cancel != nil {
		return cancel()
	}
	return Const(Unit{})
}

// propagateCancel wires downstream's cancellation responder to cancel
// upstream directly. Combinators with a single, unchanging upstream
// (Map, MapError, and through Map, Replace; TimeoutOnly and
// TimeoutAndCancel) use this instead of an upstreamRef.
func propagateCancel[T, U any](upstream Future[T], downstream Future[U]) {
	downstream.RespondToCancellation(func() Future[Unit] { return upstream.Cancel() })
}

// joinCancellations waits for every Future[Unit] in futures to settle, in
// any order, and then resolves Done. It backs the composite responders in
// All and Race, which must cancel every input and report completion of
// that whole fan-out through the single Future[Unit] RespondToCancellation
// requires, rather than a single upstream.
func joinCancellations(futures ...Future[Unit]) Future[Unit] {
	r := NewResolvable[Unit]("")
	if len(futures) == 0 {
		r.Resolve(Unit{})
		return r.Future()
	}
	remaining := int32(len(futures))
	for _, f := range futures {
		f.OnContext(Background(), func(Unit, error, State) {
			if atomic.AddInt32(&remaining, -1) == 0 {
				r.Resolve(Unit{})
			}
		})
	}
	return r.Future()
}
