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
	"math"
	"sync"
	"time"

	"github.com/reugn/go-quartz/quartz"

	"github.com/kestrelsoft/future/logger"
)

// ScheduledSource wraps an inner Source so it is only actually polled when
// a quartz.Trigger says a fire time is due, letting a Notifier be built
// against, say, a nightly cron expression instead of a fixed interval.
// Between due fire times, Poll returns an empty result without touching
// the inner Source at all.
type ScheduledSource struct {
	mu      sync.Mutex
	inner   Source
	trigger quartz.Trigger
	logger  logger.Logger

	nextFire int64
	expired  bool
}

// NewScheduledSource wraps inner so it is only polled when trigger fires.
func NewScheduledSource(inner Source, trigger quartz.Trigger, log logger.Logger) *ScheduledSource {
	return &ScheduledSource{
		inner:   inner,
		trigger: trigger,
		logger:  log,
	}
}

// enforce compilation error if ScheduledSource does not implement Source
var _ Source = (*ScheduledSource)(nil)

// Poll reports empty, nil results until trigger's next fire time has
// passed, at which point it delegates to the inner Source exactly once
// per fire time.
func (s *ScheduledSource) Poll(ctx context.Context) ([]Event, error) {
	now := time.Now().UnixNano()

	s.mu.Lock()
	if s.expired {
		s.mu.Unlock()
		return nil, nil
	}
	if s.nextFire == 0 {
		next, err := s.trigger.NextFireTime(now)
		if err != nil {
			s.expired = true
			s.mu.Unlock()
			s.logger.Warnf("notifier: trigger has no fire times: %v", err)
			return nil, nil
		}
		s.nextFire = next
	}
	due := now >= s.nextFire
	if due {
		prev := s.nextFire
		next, err := s.trigger.NextFireTime(prev)
		if err != nil {
			s.expired = true
			s.nextFire = math.MaxInt64
		} else {
			s.nextFire = next
		}
	}
	s.mu.Unlock()

	if !due {
		return nil, nil
	}
	return s.inner.Poll(ctx)
}
