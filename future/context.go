package future

// ExecutionContext is an opaque target that accepts units of work. OnContext
// and most combinators take one explicitly. Race and ReplaceWith take none
// and deliver on Inline(); TimeoutOnly and TimeoutAndCancel take none and
// deliver on Background(); Delay takes none and resolves from its timer's
// goroutine. The internal cancellation join also dispatches on Background().
type ExecutionContext interface {
	// Run schedules fn to execute. Implementations may run fn synchronously,
	// on a dedicated goroutine, or hand it to a worker pool; the only
	// requirement is that fn eventually runs exactly once.
	Run(fn func())
}

// InlineContext runs work synchronously on the calling goroutine. It is the
// documented context for tests and for callers who want deterministic
// delivery: a callback registered on an already-settled Future runs before
// OnContext returns.
type InlineContext struct{}

// Run executes fn immediately.
func (InlineContext) Run(fn func()) { fn() }

// GoroutineContext runs each unit of work on its own goroutine. It makes no
// fairness guarantees between concurrently dispatched callbacks, matching
// the library's non-goal of providing a fair scheduler.
type GoroutineContext struct{}

// Run starts fn on a new goroutine.
func (GoroutineContext) Run(fn func()) { go fn() }

var (
	inlineContext    = InlineContext{}
	goroutineContext = GoroutineContext{}
)

// Inline returns the shared InlineContext.
func Inline() ExecutionContext { return inlineContext }

// Background returns the shared GoroutineContext, the implementation
// default for callers who don't need to construct their own.
func Background() ExecutionContext { return goroutineContext }

// dispatch schedules fn on ec, falling back to Background when ec is nil.
func dispatch(ec ExecutionContext, fn func()) {
	if ec == nil {
		ec = goroutineContext
	}
	ec.Run(fn)
}
