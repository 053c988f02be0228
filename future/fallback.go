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

// Fallback runs fn against f's error once f fails, on ec, and flattens the
// Future[T] it returns into the result. A successful f is forwarded as-is.
// A cancelled f is also forwarded as Cancelled without invoking fn:
// cancellation is a caller decision, not a failure fallback should mask.
//
// Cancelling the returned Future cancels whichever Future is currently
// upstream, following the same rule as Chain.
func Fallback[T any](f Future[T], ec ExecutionContext, fn func(error) Future[T]) Future[T] {
	r := NewResolvable[T]("future.fallback")
	ref := &upstreamRef{}
	ref.retarget(f.Cancel)
	r.Future().RespondToCancellation(ref.invoke)

	f.OnContext(ec, func(value T, err error, st State) {
		switch st {
		case Done:
			r.Resolve(value)
		case Failed:
			inner := fn(err)
			ref.retarget(inner.Cancel)
			inner.OnContext(ec, func(innerValue T, innerErr error, innerSt State) {
				switch innerSt {
				case Done:
					r.Resolve(innerValue)
				case Failed:
					r.Fail(innerErr)
				case Cancelled:
					r.CancelSelf()
				}
			})
		case Cancelled:
			r.CancelSelf()
		}
	})
	return r.Future()
}

// FallbackValue substitutes a fixed value for failure, without running any
// caller code. A successful or cancelled f is forwarded as-is. It is
// Fallback with the recovery function fixed to a constant.
//
// Cancelling the returned Future cancels f.
func FallbackValue[T any](f Future[T], ec ExecutionContext, value T) Future[T] {
	return Fallback(f, ec, func(error) Future[T] {
		return Const(value)
	})
}
