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

// Future is the read-only handle to an asynchronous result of type T. It is
// safe for concurrent use: any number of goroutines may inspect it or
// register callbacks against it at the same time.
type Future[T any] struct {
	s *state[T]
}

// State reports where the Future currently sits in its lifecycle.
func (f Future[T]) State() State {
	_, _, st, ok := f.s.snapshot()
	if !ok {
		return Running
	}
	return st
}

// OnContext registers fn to run on ec once the Future settles. If it has
// already settled, fn is handed to ec immediately, never while the
// Future's internal lock is held; with InlineContext that means fn runs
// before OnContext returns.
func (f Future[T]) OnContext(ec ExecutionContext, fn func(value T, err error, st State)) {
	f.s.onSettle(ec, fn)
}

// RespondToCancellation installs fn as the action run the first time this
// Future is asked to cancel. fn must itself return a Future[Unit]
// marking when its cleanup work is done; Cancel's own returned Future
// resolves once that Future[Unit] does. Only the first registration is
// honored; later registrations through any handle to the same Future are
// silently ignored. A Future returned by a combinator has its own
// responder slot, which the combinator usually fills before returning it.
func (f Future[T]) RespondToCancellation(fn func() Future[Unit]) {
	f.s.setResponder(fn)
}

// Cancel requests cancellation of this Future's lineage and returns a
// Future[Unit] tracking the request. It invokes this Future's registered
// responder at most once, ever, across every handle to the same Future;
// the returned Future resolves once that responder's own Future[Unit] does.
// Calling Cancel on a Future with no registered responder, or on one that
// already settled, still returns a Future[Unit], but one already resolved
// Done. Every call, first or repeat, returns the same handle (identity
// equality): the cancellation Future is created once, lazily, on the first
// call.
func (f Future[T]) Cancel() Future[Unit] {
	return f.s.requestCancel()
}
