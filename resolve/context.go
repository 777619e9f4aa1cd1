package resolve

import (
	"context"

	"github.com/sdboyer/constext"
)

// ContextualResolution adds cooperative cancellation around a Resolution.
// The engine itself honours no cancellation signal, so this wraps it
// externally: an owner context bounding the wrapper's own lifetime is
// combined, per call, with the caller's request context via
// constext.Cons, so that either one cancelling stops the wait.
//
// The engine's execution is synchronous with no suspension points, so
// cancellation here only ever affects how promptly Resolve returns to
// the caller, not whether the background search keeps running.
type ContextualResolution[RT any, CT comparable, KT comparable, PT any] struct {
	ownerCtx context.Context
}

// NewContextualResolution binds a wrapper to ownerCtx, the context whose
// cancellation should abort any in-flight Resolve regardless of what the
// caller passes in (e.g. a server shutdown signal).
func NewContextualResolution[RT any, CT comparable, KT comparable, PT any](ownerCtx context.Context) *ContextualResolution[RT, CT, KT, PT] {
	return &ContextualResolution[RT, CT, KT, PT]{ownerCtx: ownerCtx}
}

// Resolve runs res.Resolve to completion in the background, returning
// ctx.Err() promptly if either the owner or the caller context is
// cancelled first. The background call is not interrupted on
// cancellation, since there is no engine hook to interrupt it mid-round,
// so a cancelled Resolve continues running to completion or failure in
// its own goroutine; callers that need a hard stop should additionally
// have their Provider observe the same contexts and fail its own calls.
func (w *ContextualResolution[RT, CT, KT, PT]) Resolve(ctx context.Context, res interface {
	Resolve(rootRequirements []RT, maxRounds int) (*Result[RT, CT, KT], error)
}, rootRequirements []RT, maxRounds int) (*Result[RT, CT, KT], error) {
	cctx, cancel := constext.Cons(w.ownerCtx, ctx)
	defer cancel()

	type outcome struct {
		result *Result[RT, CT, KT]
		err    error
	}
	done := make(chan outcome, 1)

	go func() {
		r, err := res.Resolve(rootRequirements, maxRounds)
		done <- outcome{r, err}
	}()

	select {
	case <-cctx.Done():
		return nil, cctx.Err()
	case o := <-done:
		return o.result, o.err
	}
}
