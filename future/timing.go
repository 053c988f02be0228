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
	"time"
)

// Delay returns a Future that resolves with value after d elapses.
// Cancelling it before d elapses stops the timer and settles it Cancelled.
func Delay[T any](d time.Duration, value T) Future[T] {
	r := NewResolvable[T]("future.delay")
	timer := time.AfterFunc(d, func() { r.Resolve(value) })
	r.Future().RespondToCancellation(func() Future[Unit] {
		timer.Stop()
		r.CancelSelf()
		return Const(Unit{})
	})
	return r.Future()
}

// Timeout is an alias of TimeoutOnly, the default timeout behavior: if f
// hasn't settled within d, the returned Future fails with an ErrorInfo
// domained DomainTimeout, but f itself keeps running untouched. Use
// TimeoutAndCancel when the timed-out Future should also be cancelled.
func Timeout[T any](f Future[T], d time.Duration) Future[T] {
	return TimeoutOnly(f, d)
}

// TimeoutOnly races f against a d-long timer. Whichever settles first
// determines the result; if the timer wins, f is left running and the
// returned Future fails with errTimeout. Cancelling the returned Future
// cancels f.
func TimeoutOnly[T any](f Future[T], d time.Duration) Future[T] {
	r := NewResolvable[T]("future.timeout")
	propagateCancel(f, r.Future())

	timer := time.AfterFunc(d, func() { r.Fail(errTimeout) })
	f.OnContext(Background(), func(value T, err error, st State) {
		timer.Stop()
		switch st {
		case Done:
			r.Resolve(value)
		case Failed:
			r.Fail(err)
		case Cancelled:
			r.CancelSelf()
		}
	})
	return r.Future()
}

// TimeoutAndCancel behaves like TimeoutOnly, except that if the deadline
// fires first it also calls f.Cancel(), so a responder registered on f
// gets a chance to stop whatever work it represents.
func TimeoutAndCancel[T any](f Future[T], d time.Duration) Future[T] {
	r := NewResolvable[T]("future.timeoutandcancel")
	propagateCancel(f, r.Future())

	var once sync.Once
	timer := time.AfterFunc(d, func() {
		once.Do(func() {
			f.Cancel()
			r.Fail(errTimeout)
		})
	})
	f.OnContext(Background(), func(value T, err error, st State) {
		timer.Stop()
		once.Do(func() {
			switch st {
			case Done:
				r.Resolve(value)
			case Failed:
				r.Fail(err)
			case Cancelled:
				r.CancelSelf()
			}
		})
	})
	return r.Future()
}
