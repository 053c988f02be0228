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
	"context"
	"time"

	"github.com/cenkalti/backoff/v5"
	"golang.org/x/time/rate"
)

// stopCancel adapts a context.CancelFunc into a cancellation responder,
// returning an already-Done Future[Unit] since cancelling a context is a
// synchronous, fire-and-forget operation with nothing further to await.
func stopCancel(cancel context.CancelFunc) func() Future[Unit] {
	return func() Future[Unit] {
		cancel()
		return Const(Unit{})
	}
}

// Resolve runs task on ec and returns a Future settling with its outcome.
// It is New under a name matching the rest of this file's producers.
func Resolve[T any](ec ExecutionContext, task func() (T, error)) Future[T] {
	return New(ec, task)
}

// ResolveWhen polls poll on ec no more often than interval, resolving with
// its value the first time it reports ready=true, failing immediately if
// it returns an error, and stopping - settling Cancelled - if ctx is done
// or the returned Future is cancelled first.
func ResolveWhen[T any](ctx context.Context, ec ExecutionContext, interval time.Duration, poll func() (value T, ready bool, err error)) Future[T] {
	r := NewResolvable[T]("future.resolvewhen")
	innerCtx, cancel := context.WithCancel(ctx)
	r.Future().RespondToCancellation(stopCancel(cancel))

	dispatch(ec, func() {
		limiter := rate.NewLimiter(rate.Every(interval), 1)
		for {
			if err := limiter.Wait(innerCtx); err != nil {
				r.CancelSelf()
				return
			}
			value, ready, err := poll()
			if err != nil {
				r.Fail(newErrorInfo(DomainUser, err))
				return
			}
			if ready {
				r.Resolve(value)
				return
			}
		}
	})
	return r.Future()
}

// ResolveUntil repeatedly invokes task on ec, awaiting each attempt's
// Future in full. A Done attempt settles the returned Future with the same
// value and stops. A Failed attempt is retried after the next interval b
// produces, with a fresh call to task; once b reports no more retries, the
// returned Future fails with the last attempt's error. A Cancelled attempt
// stops the loop immediately - task is not called again - and cancels the
// returned Future, matching resolveUntil's rule that the loop never
// continues past an inner cancellation. Cancelling the returned Future, or
// ctx ending, also stops the loop without a further task call.
func ResolveUntil[T any](ctx context.Context, ec ExecutionContext, task func() Future[T], b backoff.BackOff) Future[T] {
	r := NewResolvable[T]("future.resolveuntil")
	innerCtx, cancel := context.WithCancel(ctx)
	r.Future().RespondToCancellation(stopCancel(cancel))

	dispatch(ec, func() {
		b.Reset()
		for {
			attempt := task()
			value, err := attempt.Await(innerCtx)
			if innerCtx.Err() != nil {
				r.CancelSelf()
				return
			}
			if err == nil {
				r.Resolve(value)
				return
			}
			if attempt.State() == Cancelled {
				r.CancelSelf()
				return
			}

			wait := b.NextBackOff()
			if wait == backoff.Stop {
				r.Fail(newErrorInfo(DomainUser, err))
				return
			}
			timer := time.NewTimer(wait)
			select {
			case <-timer.C:
			case <-innerCtx.Done():
				timer.Stop()
				r.CancelSelf()
				return
			}
		}
	})
	return r.Future()
}
