package resolve

// State is a point-in-time snapshot of the search: which candidates are
// pinned, the criteria under consideration for every identifier (pinned or
// not), and the requirement information that most recently forced a
// backjump. States are stacked; mutation only ever happens on the top of
// the stack, the working state of the current round.
type State[RT any, CT comparable, KT comparable] struct {
	// Mapping is the insertion-ordered K -> pinned-candidate map. The most
	// recently pinned identifier is last; backjump relies on this order,
	// always retreating from the tail.
	Mapping *OrderedMapping[KT, CT]

	// Criteria holds every identifier currently under consideration,
	// whether pinned or not. It is kept insertion-ordered (rather than a
	// bare Go map) so that preference tie-breaking and result building are
	// deterministic across runs with identical inputs.
	Criteria *OrderedMapping[KT, Criterion[RT, CT, KT]]

	// BacktrackCauses is the RequirementInformation set last responsible
	// for forcing a backjump into this state. It is purely informational,
	// surfaced to the Reporter and to Provider.GetPreference.
	BacktrackCauses []RequirementInformation[RT, CT]
}

// newRootState returns the empty root state: no pins, no criteria, no
// backtrack causes. Root requirements are added into it by Resolve before
// the round loop begins.
func newRootState[RT any, CT comparable, KT comparable]() *State[RT, CT, KT] {
	return &State[RT, CT, KT]{
		Mapping:  NewOrderedMapping[KT, CT](),
		Criteria: NewOrderedMapping[KT, Criterion[RT, CT, KT]](),
	}
}

// clone performs the shallow per-round copy: new containers, but
// Requirement and Candidate values are shared by reference/value as
// immutable objects.
func (s *State[RT, CT, KT]) clone() *State[RT, CT, KT] {
	return &State[RT, CT, KT]{
		Mapping:         s.Mapping.Clone(),
		Criteria:        s.Criteria.Clone(),
		BacktrackCauses: append([]RequirementInformation[RT, CT](nil), s.BacktrackCauses...),
	}
}
