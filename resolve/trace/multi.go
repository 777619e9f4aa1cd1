package trace

import "github.com/depsolver/resolvelib/resolve"

// MultiReporter fans every hook out to a fixed list of Reporters, in
// order, so a tracing reporter can be combined with a collecting one
// over the same resolve call. A panic from any one of them propagates
// immediately; MultiReporter adds no safety net of its own.
type MultiReporter[RT any, CT comparable, KT comparable] struct {
	reporters []resolve.Reporter[RT, CT, KT]
}

// NewMultiReporter returns a Reporter that forwards every call to each of
// reporters in turn.
func NewMultiReporter[RT any, CT comparable, KT comparable](reporters ...resolve.Reporter[RT, CT, KT]) *MultiReporter[RT, CT, KT] {
	return &MultiReporter[RT, CT, KT]{reporters: reporters}
}

func (m *MultiReporter[RT, CT, KT]) Starting() {
	for _, r := range m.reporters {
		r.Starting()
	}
}

func (m *MultiReporter[RT, CT, KT]) StartingRound(round int) {
	for _, r := range m.reporters {
		r.StartingRound(round)
	}
}

func (m *MultiReporter[RT, CT, KT]) EndingRound(round int, state *resolve.State[RT, CT, KT]) {
	for _, r := range m.reporters {
		r.EndingRound(round, state)
	}
}

func (m *MultiReporter[RT, CT, KT]) Ending(state *resolve.State[RT, CT, KT]) {
	for _, r := range m.reporters {
		r.Ending(state)
	}
}

func (m *MultiReporter[RT, CT, KT]) AddingRequirement(r RT, parent resolve.Parent[CT]) {
	for _, rep := range m.reporters {
		rep.AddingRequirement(r, parent)
	}
}

func (m *MultiReporter[RT, CT, KT]) ResolvingConflicts(causes []resolve.RequirementInformation[RT, CT]) {
	for _, r := range m.reporters {
		r.ResolvingConflicts(causes)
	}
}

func (m *MultiReporter[RT, CT, KT]) RejectingCandidate(criterion resolve.Criterion[RT, CT, KT], c CT) {
	for _, r := range m.reporters {
		r.RejectingCandidate(criterion, c)
	}
}

func (m *MultiReporter[RT, CT, KT]) Pinning(c CT) {
	for _, r := range m.reporters {
		r.Pinning(c)
	}
}
