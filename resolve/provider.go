package resolve

// Provider supplies every piece of domain knowledge the engine itself is
// deliberately blind to: what an identifier is, how candidates are
// preferred, where they come from, and what they depend on. The engine
// calls these methods only from within a single goroutine's Resolve call;
// implementations that front a remote index should do their own
// concurrency control (CachingProvider wraps one common pattern).
//
// RT is an opaque requirement, CT an opaque candidate, KT the comparable
// identifier they both resolve to via the two Identify methods below, and
// PT the totally-ordered preference value returned by GetPreference.
//
// A duck-typed language can get away with a single polymorphic identify
// taking either a requirement or a candidate; Go's type system has no
// sound way to dispatch on "either of these two unrelated type
// parameters", so this is split into IdentifyRequirement and
// IdentifyCandidate. Both must agree on KT for any R/C pair that should be
// treated as the same thing being resolved.
type Provider[RT any, CT comparable, KT comparable, PT any] interface {
	// IdentifyRequirement returns the stable identifier for a requirement.
	IdentifyRequirement(r RT) KT

	// IdentifyCandidate returns the stable identifier for a candidate.
	IdentifyCandidate(c CT) KT

	// GetPreference returns the ordering key used to pick which
	// unsatisfied identifier the round loop works on next. Lower is
	// preferred. Called once per unsatisfied identifier per round;
	// resolutions and criteria are the working state's own pins and
	// criteria (each Criterion carrying its current Candidates view) and
	// must be treated as read-only, and backtrackCauses lists whatever
	// most recently forced a backjump into this state.
	GetPreference(id KT, resolutions *OrderedMapping[KT, CT], criteria *OrderedMapping[KT, Criterion[RT, CT, KT]], backtrackCauses []RequirementInformation[RT, CT]) PT

	// FindMatches returns the viable candidates for id, already filtered
	// against the union of requirements and the set of incompatibilities,
	// most-preferred first. requirements and incompatibilities are views
	// that additionally expose a tentative "about to be added" entry for
	// the identifier currently under consideration, so FindMatches sees
	// the hypothetical future criterion before the engine has built one.
	FindMatches(id KT, requirements RequirementsView[RT, CT, KT], incompatibilities IncompatibilitiesView[RT, CT, KT]) IterableView[CT]

	// IsSatisfiedBy is the final, authoritative check between a single
	// requirement and a candidate sharing its identifier.
	IsSatisfiedBy(r RT, c CT) bool

	// GetDependencies returns the requirements a candidate introduces once
	// pinned.
	GetDependencies(c CT) []RT
}

// NarrowingProvider is an optional capability: a Provider may additionally
// implement it to skip GetPreference (and therefore selection) for some of
// the currently-unsatisfied identifiers in a round. The returned subset
// must be non-empty whenever ids is non-empty.
type NarrowingProvider[RT any, CT comparable, KT comparable] interface {
	NarrowRequirementSelection(ids []KT) []KT
}
