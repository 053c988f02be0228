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

// Package notifier implements the crash-log-notifier client contract: a
// Source is polled for newly observed crash log events, and a Notifier
// fans each one out to the handlers registered against it. The Future
// returned by StartListening tracks the polling loop itself, not the
// handlers' outcome for any single event.
package notifier

import (
	"context"
	"time"
)

// Event is one crash log observation surfaced by a Source.
type Event struct {
	// ID uniquely identifies this event; sources that can't guarantee
	// global uniqueness should prefix it with their own name.
	ID string
	// Payload is the source-specific crash report body.
	Payload []byte
	// OccurredAt is when the source believes the crash happened, which may
	// predate when Poll actually observed it.
	OccurredAt time.Time
}

// Source is implemented by anything that can be polled for new Events.
// Concrete sources (log tailers, queue consumers) live outside this
// package; Notifier only depends on this interface.
type Source interface {
	// Poll returns any Events observed since the last call. An empty,
	// nil-error result means nothing new was found, not an error.
	Poll(ctx context.Context) ([]Event, error)
}

// SourceFunc adapts a plain function to Source.
type SourceFunc func(ctx context.Context) ([]Event, error)

// Poll calls f.
func (f SourceFunc) Poll(ctx context.Context) ([]Event, error) {
	return f(ctx)
}
