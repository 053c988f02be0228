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
	"fmt"

	"github.com/pkg/errors"
)

// Error domains distinguish why a Future failed, so a caller inspecting an
// ErrorInfo further up a chain can tell a timeout from a user-supplied
// failure without string-matching a message.
const (
	// DomainTimeout marks a failure produced by Timeout/TimeoutAndCancel
	// when the underlying Future didn't settle before the deadline.
	DomainTimeout = "future.timeout"
	// DomainUser marks a failure that originated from a caller-supplied
	// task, mapper, or chained function.
	DomainUser = "future.user"
	// DomainResponder is the domain of errCancelled, the cause recorded on
	// every Future settled Cancelled. A responder's own failure is
	// forwarded through Cancel's Future unchanged, not tagged with it.
	DomainResponder = "future.responder"
)

// ErrorInfo carries the domain alongside the wrapped error so combinators
// downstream can branch on why a Future failed. It implements error and
// unwraps to the underlying cause via errors.Unwrap.
type ErrorInfo struct {
	Domain string
	Cause  error
}

func (e *ErrorInfo) Error() string {
	return fmt.Sprintf("%s: %v", e.Domain, e.Cause)
}

func (e *ErrorInfo) Unwrap() error {
	return e.Cause
}

// newErrorInfo wraps cause with domain, adding a stack trace via
// github.com/pkg/errors.WithStack, even when cause already carries one.
func newErrorInfo(domain string, cause error) *ErrorInfo {
	return &ErrorInfo{Domain: domain, Cause: errors.WithStack(cause)}
}

// errCancelled is the sentinel cause recorded on a Future settled as
// Cancelled. Its domain is DomainResponder since cancellation always
// traces back to a responder, whether the library's own or a caller's.
var errCancelled = newErrorInfo(DomainResponder, errors.New("future: cancelled"))

// errTimeout is the sentinel cause recorded by Timeout and
// TimeoutAndCancel when the deadline elapses first.
var errTimeout = newErrorInfo(DomainTimeout, errors.New("future: deadline exceeded"))
