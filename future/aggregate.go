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
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/kestrelsoft/future/collection/slice"
)

// All waits for every Future in futures to settle successfully and
// resolves with their values in the same order. The first failure fails
// the returned Future immediately with that error; the first cancellation
// cancels it. Either way, every other input is left untouched - All never
// cancels a sibling input on another's account, so stragglers are free to
// keep running their own work to completion.
//
// ctx bounds how long All itself is willing to wait; it does not cancel
// the input Futures on its own. ec chooses where the fan-out goroutine
// and its bookkeeping run.
func All[T any](ctx context.Context, ec ExecutionContext, futures ...Future[T]) Future[[]T] {
	r := NewResolvable[[]T]("future.all")
	results := slice.New[T]()

	r.Future().RespondToCancellation(func() Future[Unit] {
		cancels := make([]Future[Unit], len(futures))
		for i, f := range futures {
			cancels[i] = f.Cancel()
		}
		return joinCancellations(cancels...)
	})

	dispatch(ec, func() {
		g, gctx := errgroup.WithContext(ctx)

		var (
			mu        sync.Mutex
			cancelled bool
			failure   error
		)

		for i, f := range futures {
			i, f := i, f
			g.Go(func() error {
				value, err := f.Await(gctx)
				if err != nil {
					if f.State() == Cancelled {
						mu.Lock()
						cancelled = true
						mu.Unlock()
					} else {
						mu.Lock()
						if failure == nil {
							failure = err
						}
						mu.Unlock()
					}
					return err
				}
				results.Set(i, value)
				return nil
			})
		}

		if err := g.Wait(); err != nil {
			mu.Lock()
			isCancelled, fe := cancelled, failure
			mu.Unlock()
			if isCancelled {
				r.CancelSelf()
				return
			}
			r.Fail(newErrorInfo(DomainUser, fe))
			return
		}
		r.Resolve(results.Items())
	})
	return r.Future()
}

// Race resolves or fails with whichever Future in futures settles first,
// among those that settle Done or Failed; a Future that settles Cancelled
// is ignored unless every one of them cancels, in which case Race itself
// settles Cancelled. Every Future that hasn't settled yet by the time one
// wins is cancelled, since its result is no longer needed.
//
// Cancelling the returned Future cancels every racer.
func Race[T any](futures ...Future[T]) Future[T] {
	r := NewResolvable[T]("future.race")

	var (
		mu      sync.Mutex
		decided bool
		pending = int32(len(futures))
	)

	cancelAll := func() Future[Unit] {
		cancels := make([]Future[Unit], len(futures))
		for i, f := range futures {
			cancels[i] = f.Cancel()
		}
		return joinCancellations(cancels...)
	}
	r.Future().RespondToCancellation(cancelAll)

	settleOnce := func(value T, err error, st State) bool {
		mu.Lock()
		if decided {
			mu.Unlock()
			return false
		}
		decided = true
		mu.Unlock()

		switch st {
		case Done:
			r.Resolve(value)
		case Failed:
			r.Fail(err)
		case Cancelled:
			r.CancelSelf()
		}
		cancelAll()
		return true
	}

	for _, f := range futures {
		f := f
		f.OnContext(Inline(), func(value T, err error, st State) {
			if st == Cancelled {
				if atomic.AddInt32(&pending, -1) == 0 {
					settleOnce(value, err, Cancelled)
				}
				return
			}
			settleOnce(value, err, st)
		})
	}
	return r.Future()
}
