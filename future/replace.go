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

// Replace discards f's value on success and substitutes replacement,
// without running any caller code on ec. Failure and cancellation are
// forwarded as-is. It is Map with the mapper fixed to a constant, kept as
// its own combinator because discarding a result this way is common enough
// to not need an allocation-per-call closure at every call site.
func Replace[T, U any](f Future[T], ec ExecutionContext, replacement U) Future[U] {
	return Map(f, ec, func(T) (U, error) {
		return replacement, nil
	})
}

// ReplaceWith discards f's value on success and instead adopts whatever
// other eventually settles as, even if other is still running at the
// moment f succeeds. Unlike Replace, which substitutes an already-known
// constant, this flattens a second, possibly still in-flight Future into
// the result. Failure or cancellation of f is forwarded without ever
// looking at other.
//
// Cancelling the returned Future cancels whichever of f or other is
// currently upstream, following the same rule as Chain.
func ReplaceWith[T, U any](f Future[T], other Future[U]) Future[U] {
	return Chain(f, Inline(), func(T) Future[U] {
		return other
	})
}
