package resolve

import mapset "github.com/deckarep/golang-set/v2"

// Criterion is the per-identifier aggregate tracked during resolution:
// the insertion-ordered collection of contributing requirements (with
// their parents; new ones are appended, and pruneInformation may drop
// some), the set of candidates already proven unusable, and the
// currently-viable candidate view.
//
// Invariant: for a Criterion reachable from a live State, Candidates is
// non-empty, every element of Candidates satisfies every requirement in
// Information, and no element of Candidates is also in Incompatibilities.
// The sole exception is a Criterion carried inside a requirementsConflicted
// error, whose Candidates is empty by construction.
type Criterion[RT any, CT comparable, KT comparable] struct {
	Information       []RequirementInformation[RT, CT]
	Incompatibilities mapset.Set[CT]
	Candidates        IterableView[CT]
}

// newCriterion builds an empty Criterion ready to receive its first
// requirement.
func newCriterion[RT any, CT comparable, KT comparable]() Criterion[RT, CT, KT] {
	return Criterion[RT, CT, KT]{
		Incompatibilities: mapset.NewThreadUnsafeSet[CT](),
	}
}

// IterRequirement returns the requirements contributing to this criterion,
// in insertion order.
func (c Criterion[RT, CT, KT]) IterRequirement() []RT {
	out := make([]RT, len(c.Information))
	for i, info := range c.Information {
		out[i] = info.Requirement
	}
	return out
}

// IterParent returns the parents of each contributing requirement, in the
// same order as IterRequirement. A Parent with Root set to true stands
// for "no parent" (a root requirement).
func (c Criterion[RT, CT, KT]) IterParent() []Parent[CT] {
	out := make([]Parent[CT], len(c.Information))
	for i, info := range c.Information {
		out[i] = info.Parent
	}
	return out
}

// cloneCriteriaMap performs the shallow clone used at the start of each
// pin attempt: a new criteria map whose Criterion values are copied by
// Go's value-assignment semantics. Because Criterion's slice and
// set fields are themselves shared until explicitly replaced by
// addRequirement, this is cheap relative to a full deep clone, at the cost
// of callers needing to always replace (never mutate-in-place) a
// Criterion's Information/Incompatibilities once cloned.
func cloneCriteriaMap[RT any, CT comparable, KT comparable](m *OrderedMapping[KT, Criterion[RT, CT, KT]]) *OrderedMapping[KT, Criterion[RT, CT, KT]] {
	return m.Clone()
}
