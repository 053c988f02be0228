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

// Chain runs fn against f's value once f resolves successfully, on ec,
// and flattens the Future[U] it returns into the result, rather than
// producing a Future[Future[U]]. A failed or cancelled f is forwarded
// without ever invoking fn.
//
// Cancelling the returned Future cancels whichever Future is currently
// "upstream": f itself before fn has run, or the inner Future fn produced
// afterward. Chain installs this responder on the returned Future before
// returning it, so a later RespondToCancellation on that Future is
// ignored.
func Chain[T, U any](f Future[T], ec ExecutionContext, fn func(T) Future[U]) Future[U] {
	r := NewResolvable[U]("future.chain")
	ref := &upstreamRef{}
	ref.retarget(f.Cancel)
	r.Future().RespondToCancellation(ref.invoke)

	f.OnContext(ec, func(value T, err error, st State) {
		switch st {
		case Done:
			inner := fn(value)
			ref.retarget(inner.Cancel)
			inner.OnContext(ec, func(innerValue U, innerErr error, innerSt State) {
				switch innerSt {
				case Done:
					r.Resolve(innerValue)
				case Failed:
					r.Fail(innerErr)
				case Cancelled:
					r.CancelSelf()
				}
			})
		case Failed:
			r.Fail(err)
		case Cancelled:
			r.CancelSelf()
		}
	})
	return r.Future()
}

// Transform runs fn against f itself, once f resolves Done or Failed, on
// ec, and flattens the Future[U] it returns into the result. Unlike
// Chain, fn sees f whole - its State and, via Await, its value or error -
// so it can translate a failure into success, not just react to success.
// If f is cancelled, fn is never called and the returned Future is
// cancelled directly, matching Chain's handling of that case.
//
// Cancelling the returned Future cancels whichever Future is currently
// upstream, following the same rule as Chain.
func Transform[T, U any](f Future[T], ec ExecutionContext, fn func(Future[T]) Future[U]) Future[U] {
	r := NewResolvable[U]("future.transform")
	ref := &upstreamRef{}
	ref.retarget(f.Cancel)
	r.Future().RespondToCancellation(ref.invoke)

	f.OnContext(ec, func(_ T, _ error, st State) {
		if st == Cancelled {
			r.CancelSelf()
			return
		}
		inner := fn(f)
		ref.retarget(inner.Cancel)
		inner.OnContext(ec, func(innerValue U, innerErr error, innerSt State) {
			switch innerSt {
			case Done:
				r.Resolve(innerValue)
			case Failed:
				r.Fail(innerErr)
			case Cancelled:
				r.CancelSelf()
			}
		})
	})
	return r.Future()
}
