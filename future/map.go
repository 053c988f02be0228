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

// Map runs mapper against f's value once f resolves successfully, on ec,
// producing a Future[U]. A failed or cancelled f is forwarded as-is
// without ever invoking mapper. If mapper itself returns an error, the
// resulting Future fails with that error wrapped as DomainUser.
//
// Cancelling the returned Future cancels f.
func Map[T, U any](f Future[T], ec ExecutionContext, mapper func(T) (U, error)) Future[U] {
	r := NewResolvable[U]("future.map")
	propagateCancel(f, r.Future())

	f.OnContext(ec, func(value T, err error, st State) {
		switch st {
		case Done:
			out, mapErr := mapper(value)
			if mapErr != nil {
				r.Fail(newErrorInfo(DomainUser, mapErr))
				return
			}
			r.Resolve(out)
		case Failed:
			r.Fail(err)
		case Cancelled:
			r.CancelSelf()
		}
	})
	return r.Future()
}

// MapError runs handler against f's error once f fails, on ec, allowing a
// failure to be recovered into a value or rewritten into a different
// error. A successful or cancelled f is forwarded as-is.
//
// Cancelling the returned Future cancels f.
func MapError[T any](f Future[T], ec ExecutionContext, handler func(error) (T, error)) Future[T] {
	r := NewResolvable[T]("future.maperror")
	propagateCancel(f, r.Future())

	f.OnContext(ec, func(value T, err error, st State) {
		switch st {
		case Done:
			r.Resolve(value)
		case Failed:
			out, handleErr := handler(err)
			if handleErr != nil {
				r.Fail(newErrorInfo(DomainUser, handleErr))
				return
			}
			r.Resolve(out)
		case Cancelled:
			r.CancelSelf()
		}
	})
	return r.Future()
}
