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

import "go.opentelemetry.io/otel/trace"

// Resolvable is the write-only counterpart to Future[T]. Code that produces
// a result holds the Resolvable; code that consumes it holds the Future
// returned by its Future method. Splitting the two prevents a consumer from
// accidentally resolving a Future it only meant to observe.
type Resolvable[T any] struct {
	s *state[T]
}

// NewResolvable creates a fresh, Running Resolvable and its paired Future.
// name is used as the span name for the telemetry span covering the time
// between construction and settlement; pass an empty string to skip
// tracing this particular Future.
func NewResolvable[T any](name string) *Resolvable[T] {
	var span trace.Span
	if name != "" {
		span = startSpan(name)
	}
	return &Resolvable[T]{s: newState[T](span)}
}

// Future returns the read-only handle paired with this Resolvable.
func (r *Resolvable[T]) Future() Future[T] {
	return Future[T]{s: r.s}
}

// Resolve settles the Future with value, unless it has already reached a
// terminal state. Returns whether this call was the one that settled it.
func (r *Resolvable[T]) Resolve(value T) bool {
	var zero error
	return r.s.settle(Done, value, zero)
}

// Fail settles the Future with err, unless it has already reached a
// terminal state. Returns whether this call was the one that settled it.
func (r *Resolvable[T]) Fail(err error) bool {
	var zero T
	return r.s.settle(Failed, zero, err)
}

// CancelSelf settles the Future as Cancelled, unless it has already
// reached a terminal state. Unlike Future.Cancel, this does not invoke any
// registered responder; it is how a responder itself, or a combinator that
// owns this Resolvable outright, marks the Future cancelled once the
// responder's own work is done.
func (r *Resolvable[T]) CancelSelf() bool {
	var zero T
	return r.s.settle(Cancelled, zero, errCancelled)
}
