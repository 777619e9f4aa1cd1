package resolve

// IterableView is a re-iterable, lazily materialised view over a sequence
// of candidates. It comes in two flavors: one wrapping a factory that may
// be called again on every pass (useful when a Provider fronts a network
// index and wants a fresh lookup per pass), and one wrapping an
// already-materialised slice (the common case, and the only one that can
// answer Empty() without doing any work twice).
//
// The zero value is an empty view.
type IterableView[CT any] struct {
	materialized []CT
	isLazy       bool
	factory      func() []CT
}

// NewMaterializedView wraps an already-computed slice of candidates. The
// slice is treated as immutable from here on; callers should not mutate
// it after handing it to the view.
func NewMaterializedView[CT any](items []CT) IterableView[CT] {
	return IterableView[CT]{materialized: items}
}

// NewLazyView wraps a factory that produces the candidate sequence. The
// factory is invoked once per call to Iterate/Empty, so re-iteration
// repeats the callable: a Provider backing this with a network index will
// be asked again on every pass. Providers that want to pay that cost only
// once should materialise the sequence themselves and use
// NewMaterializedView instead.
func NewLazyView[CT any](factory func() []CT) IterableView[CT] {
	return IterableView[CT]{isLazy: true, factory: factory}
}

// Iterate returns the candidate sequence for this pass. The returned slice
// must not be mutated by the caller.
func (v IterableView[CT]) Iterate() []CT {
	if v.isLazy {
		if v.factory == nil {
			return nil
		}
		return v.factory()
	}
	return v.materialized
}

// Empty reports whether the view currently yields no candidates, without
// disturbing any subsequent call to Iterate.
func (v IterableView[CT]) Empty() bool {
	return len(v.Iterate()) == 0
}
