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

import "fmt"

// New runs task on ec and returns a Future that settles with its result.
// task's error, if non-nil, is wrapped with DomainUser.
func New[T any](ec ExecutionContext, task func() (T, error)) Future[T] {
	r := NewResolvable[T]("future.new")
	dispatch(ec, func() {
		value, err := task()
		if err != nil {
			r.Fail(newErrorInfo(DomainUser, err))
			return
		}
		r.Resolve(value)
	})
	return r.Future()
}

// Const returns a Future already resolved with value. Useful for feeding a
// known result into code expecting a Future, or as the identity element
// when composing chains.
func Const[T any](value T) Future[T] {
	r := NewResolvable[T]("")
	r.Resolve(value)
	return r.Future()
}

// Errored returns a Future already failed with err, wrapped with
// DomainUser.
func Errored[T any](err error) Future[T] {
	r := NewResolvable[T]("")
	r.Fail(newErrorInfo(DomainUser, err))
	return r.Future()
}

// Errorf returns a Future already failed with an error formatted from
// format and args, wrapped with DomainUser.
func Errorf[T any](format string, args ...any) Future[T] {
	return Errored[T](fmt.Errorf(format, args...))
}
