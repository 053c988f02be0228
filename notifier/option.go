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

package notifier

import (
	"time"

	"github.com/cenkalti/backoff/v5"

	"github.com/kestrelsoft/future/future"
	"github.com/kestrelsoft/future/logger"
)

// Option configures a Notifier at construction time.
type Option interface {
	Apply(*Notifier)
}

// enforce compilation error if OptionFunc does not implement Option
var _ Option = OptionFunc(nil)

// OptionFunc is a function type that implements the Option interface.
type OptionFunc func(*Notifier)

// Apply applies the OptionFunc to the given Notifier.
func (f OptionFunc) Apply(notifier *Notifier) {
	f(notifier)
}

// WithLogger configures the logger used for poll failures and handler
// errors. Defaults to a no-op logger.
func WithLogger(log logger.Logger) Option {
	return OptionFunc(func(n *Notifier) {
		n.logger = log
	})
}

// WithPollInterval bounds how often the underlying Source is polled.
// Defaults to one second.
func WithPollInterval(interval time.Duration) Option {
	return OptionFunc(func(n *Notifier) {
		n.pollInterval = interval
	})
}

// WithPollBackOff configures the retry policy used when a single Poll call
// fails. Defaults to backoff.NewExponentialBackOff(); the Notifier applies
// no retry cap of its own on top of it.
func WithPollBackOff(b backoff.BackOff) Option {
	return OptionFunc(func(n *Notifier) {
		n.pollBackOff = b
	})
}

// WithExecutionContext chooses where handler dispatch runs. Defaults to
// future.Background().
func WithExecutionContext(ec future.ExecutionContext) Option {
	return OptionFunc(func(n *Notifier) {
		n.ec = ec
	})
}
