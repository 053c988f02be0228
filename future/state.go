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

	"go.opentelemetry.io/otel/trace"
)

// State identifies where a Future sits in its lifecycle. It only ever
// advances forward: Running to exactly one of Done, Failed or Cancelled.
type State int

const (
	// Running is the initial state of every Future; no outcome is fixed yet.
	Running State = iota
	// Done means the Future resolved with a value.
	Done
	// Failed means the Future resolved with an error.
	Failed
	// Cancelled means the Future was cancelled before it settled.
	Cancelled
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Done:
		return "done"
	case Failed:
		return "failed"
	case Cancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Unit is the empty value used by Futures that carry no meaningful result,
// such as the one returned by Cancel.
type Unit struct{}

// callback is a registered completion handler along with the
// ExecutionContext it must run on.
type callback[T any] struct {
	ec ExecutionContext
	fn func(T, error, State)
}

// state is the shared, mutex-guarded record backing both halves of a
// Future: the read-only handle and the write-only Resolvable. Exactly one
// of value/err is meaningful once st leaves Running, selected by st itself.
type state[T any] struct {
	mu sync.Mutex

	st    State
	value T
	err   error

	callbacks []callback[T]
	responder func() Future[Unit]
	responded bool

	// cancelResolvable backs the Future<Unit> returned by the first call
	// to cancel; every later call, whatever the Future's state at the
	// time, returns that same cached handle.
	cancelResolvable *Resolvable[Unit]

	span trace.Span
}

func newState[T any](span trace.Span) *state[T] {
	return &state[T]{st: Running, span: span}
}

// settle transitions to st with the given value/err, exactly once. It
// returns false if the Future had already reached a terminal state. Queued
// callbacks are drained and dispatched on their own ExecutionContext; the
// span, if any, is ended and the matching telemetry counter incremented.
func (s *state[T]) settle(st State, value T, err error) bool {
	s.mu.Lock()
	if s.st != Running {
		already := s.st
		s.mu.Unlock()
		currentLogger().Debugw("settle ignored: future already terminal",
			"attempted", st.String(), "actual", already.String())
		return false
	}
	s.st = st
	s.value = value
	s.err = err
	pending := s.callbacks
	s.callbacks = nil
	span := s.span
	s.mu.Unlock()

	if span != nil {
		if err != nil {
			span.RecordError(err)
		}
		span.End()
	}
	recordTerminal(st)

	for _, cb := range pending {
		cb := cb
		dispatch(cb.ec, func() { cb.fn(value, err, st) })
	}
	return true
}

// snapshot returns the current terminal outcome, or ok=false while Running.
func (s *state[T]) snapshot() (value T, err error, st State, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value, s.err, s.st, s.st != Running
}

// onSettle registers fn to run on ec once the Future settles, or
// immediately (still scheduled through ec) if it already has.
func (s *state[T]) onSettle(ec ExecutionContext, fn func(T, error, State)) {
	s.mu.Lock()
	if s.st == Running {
		s.callbacks = append(s.callbacks, callback[T]{ec: ec, fn: fn})
		s.mu.Unlock()
		return
	}
	value, err, st := s.value, s.err, s.st
	s.mu.Unlock()
	dispatch(ec, func() { fn(value, err, st) })
}

// setResponder installs the function invoked the first time cancellation is
// requested against this Future. Only the first registration is honored,
// matching the single-responder rule: later calls are no-ops. Returns
// whether this call installed the responder.
func (s *state[T]) setResponder(fn func() Future[Unit]) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.responder != nil {
		return false
	}
	s.responder = fn
	return true
}

// requestCancel asks this Future to cancel and returns the lazily created,
// identity-stable Future<Unit> tracking completion of that request. The
// first call decides what happens:
//   - if the Future has already reached a terminal state, the returned
//     Future resolves Done immediately and no responder is invoked;
//   - if no responder was ever registered, the returned Future also
//     resolves Done immediately, since there is nothing to wait on;
//   - otherwise the single registered responder is invoked exactly once,
//     and the returned Future mirrors whatever Future<Unit> it produces.
//
// Every later call, regardless of the Future's state at the time, returns
// the same cached Future rather than repeating any of this.
func (s *state[T]) requestCancel() Future[Unit] {
	s.mu.Lock()
	if s.cancelResolvable != nil {
		cf := s.cancelResolvable.Future()
		s.mu.Unlock()
		return cf
	}

	cr := NewResolvable[Unit]("")
	s.cancelResolvable = cr
	alreadyTerminal := s.st != Running

	var fn func() Future[Unit]
	if !alreadyTerminal && s.responder != nil {
		fn = s.responder
		s.responded = true
	}
	noResponder := !alreadyTerminal && fn == nil
	s.mu.Unlock()

	if noResponder {
		currentLogger().Debugw("cancel requested with no registered responder")
	}

	if alreadyTerminal || fn == nil {
		cr.Resolve(Unit{})
		return cr.Future()
	}

	handler := fn()
	handler.OnContext(Inline(), func(_ Unit, err error, handlerSt State) {
		switch handlerSt {
		case Done:
			cr.Resolve(Unit{})
		case Failed:
			cr.Fail(err)
		case Cancelled:
			cr.CancelSelf()
		}
	})
	return cr.Future()
}
