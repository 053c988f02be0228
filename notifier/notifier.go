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
	"context"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/pkg/errors"

	"github.com/kestrelsoft/future/future"
	"github.com/kestrelsoft/future/logger"
	"github.com/kestrelsoft/future/requestid"
)

// Handler receives every Event a Notifier observes. A Handler's own error
// does not stop the other handlers registered on the same Notifier from
// running; it only fails that event's internal fan-out Future, and the
// Notifier logs the failure.
type Handler func(ctx context.Context, evt Event) error

// Notifier polls a Source on an interval and fans each Event it observes
// out to every registered Handler, concurrently, as a future.Future.
type Notifier struct {
	mu       sync.Mutex
	source   Source
	handlers []Handler

	logger       logger.Logger
	pollInterval time.Duration
	pollBackOff  backoff.BackOff
	ec           future.ExecutionContext

	events chan Event
}

// NewNotifier creates a Notifier polling source, configured by opts.
func NewNotifier(source Source, opts ...Option) *Notifier {
	n := &Notifier{
		source:       source,
		logger:       logger.NewLogger(logger.WithNop()),
		pollInterval: time.Second,
		pollBackOff:  backoff.NewExponentialBackOff(),
		ec:           future.Background(),
		events:       make(chan Event, 64),
	}
	for _, opt := range opts {
		opt.Apply(n)
	}
	return n
}

// OnEvent registers handler to run for every future Event. Handlers
// registered after StartListening has begun pumping still apply to every
// event observed from that point on.
func (n *Notifier) OnEvent(handler Handler) {
	n.mu.Lock()
	n.handlers = append(n.handlers, handler)
	n.mu.Unlock()
}

// StartListening begins polling the Source on n.pollInterval. It never
// reports ready on its own, so the returned Future only ever leaves
// Running by settling Cancelled, once ctx is done or the Future itself is
// cancelled, or by settling Failed once a single Poll call exhausts
// n.pollBackOff's retry budget.
func (n *Notifier) StartListening(ctx context.Context) future.Future[future.Unit] {
	return future.ResolveWhen(ctx, n.ec, n.pollInterval, func() (future.Unit, bool, error) {
		events, err := backoff.Retry(ctx, func() ([]Event, error) {
			return n.source.Poll(ctx)
		}, backoff.WithBackOff(n.pollBackOff))
		if err != nil {
			return future.Unit{}, false, errors.Wrap(err, "notifier: polling source failed")
		}

		for _, evt := range events {
			n.deliver(ctx, evt)
			select {
			case n.events <- evt:
			default:
				n.logger.Warnf("notifier: event buffer full, dropping event %s", evt.ID)
			}
		}
		return future.Unit{}, false, nil
	})
}

// NextEvent blocks until an Event has been observed by a running pump
// loop, or ctx is done first.
func (n *Notifier) NextEvent(ctx context.Context) (Event, error) {
	select {
	case evt := <-n.events:
		return evt, nil
	case <-ctx.Done():
		return Event{}, ctx.Err()
	}
}

// deliver runs every registered handler against evt concurrently, using
// future.All so a single slow or failing handler doesn't block the others,
// and logs the outcome; a caller deliberately doesn't get a Future back
// for this, since handler fan-out is the Notifier's own business, not the
// pump loop's.
func (n *Notifier) deliver(ctx context.Context, evt Event) {
	n.mu.Lock()
	handlers := append([]Handler(nil), n.handlers...)
	n.mu.Unlock()

	if len(handlers) == 0 {
		return
	}

	ctx = requestid.Context(ctx)
	futures := make([]future.Future[future.Unit], 0, len(handlers))
	for _, handler := range handlers {
		handler := handler
		futures = append(futures, future.New(n.ec, func() (future.Unit, error) {
			return future.Unit{}, handler(ctx, evt)
		}))
	}

	all := future.All(ctx, n.ec, futures...)
	all.OnContext(n.ec, func(_ []future.Unit, err error, st future.State) {
		if st == future.Failed {
			n.logger.Errorw(err, "event", evt.ID, "requestId", requestid.FromContext(ctx))
		}
	})
}
