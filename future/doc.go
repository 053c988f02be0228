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

// Package future provides a single-resolution asynchronous result type and
// its combinator algebra.
//
// A Future represents the eventual outcome of a computation that completes
// with a value, fails with an error, or is cancelled. It starts Running and
// moves at most once to a terminal state (Done, Failed, or Cancelled);
// every subsequent resolve or cancel attempt against a terminal Future is
// discarded.
//
// Every call to OnContext and most combinators take an explicit
// ExecutionContext, the caller-chosen target that runs completion
// callbacks. Race, ReplaceWith, Delay, Timeout, TimeoutOnly and
// TimeoutAndCancel take none and pick their own delivery, as documented on
// each. Use Inline() in tests or wherever synchronous delivery is wanted,
// and Background() for the library's non-fair goroutine-per-dispatch
// default.
package future
