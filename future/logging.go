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
	"sync/atomic"

	"github.com/kestrelsoft/future/logger"
)

// defaultLogger holds the package-wide logger used to report conditions the
// Future API itself swallows rather than returns - a settle attempt against
// an already-terminal Future, or a cancellation request with no registered
// responder. It starts as a no-op so importing this package never produces
// output a caller didn't ask for.
var defaultLogger atomic.Pointer[logger.Logger]

func init() {
	var l logger.Logger = logger.NewLogger(logger.WithNop())
	defaultLogger.Store(&l)
}

// WithLogger installs log as the package-wide default logger, replacing
// whatever was previously set. It mirrors the teacher's WithLogger options
// on JobsScheduler and ServerBuilder, generalized from a per-instance option
// to a package-level setting since Future values have no builder of their
// own to carry it on.
func WithLogger(log logger.Logger) {
	defaultLogger.Store(&log)
}

func currentLogger() logger.Logger {
	return *defaultLogger.Load()
}
