package resolve

import "cmp"

// Resolver is a façade around Resolution for callers who want to run
// several independent resolves with the same Provider and Reporter. Every
// call to Resolve builds a fresh Resolution, so unlike a bare Resolution,
// a Resolver may be reused across multiple independent resolve calls.
type Resolver[RT any, CT comparable, KT comparable, PT cmp.Ordered] struct {
	provider Provider[RT, CT, KT, PT]
	reporter Reporter[RT, CT, KT]
}

// NewResolver builds a reusable Resolver bound to provider and reporter.
func NewResolver[RT any, CT comparable, KT comparable, PT cmp.Ordered](provider Provider[RT, CT, KT, PT], reporter Reporter[RT, CT, KT]) *Resolver[RT, CT, KT, PT] {
	return &Resolver[RT, CT, KT, PT]{provider: provider, reporter: reporter}
}

// Resolve runs a fresh Resolution against rootRequirements.
func (r *Resolver[RT, CT, KT, PT]) Resolve(rootRequirements []RT, maxRounds int) (*Result[RT, CT, KT], error) {
	return NewResolution(r.provider, r.reporter).Resolve(rootRequirements, maxRounds)
}
