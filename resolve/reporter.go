package resolve

// Reporter receives side-effect-only notifications at each point the
// round loop and pinning procedure reach a noteworthy decision. None are
// mandatory to act on; a panic from any hook propagates straight
// out of Resolve uncaught, since the engine does not shield callers from
// a misbehaving Reporter.
type Reporter[RT any, CT comparable, KT comparable] interface {
	Starting()
	StartingRound(round int)
	EndingRound(round int, state *State[RT, CT, KT])
	Ending(state *State[RT, CT, KT])
	AddingRequirement(r RT, parent Parent[CT])
	ResolvingConflicts(causes []RequirementInformation[RT, CT])
	RejectingCandidate(criterion Criterion[RT, CT, KT], c CT)
	Pinning(c CT)
}

// BaseReporter is a Reporter whose every hook is a no-op, for embedding by
// callers who only care about a handful of the events.
type BaseReporter[RT any, CT comparable, KT comparable] struct{}

func (BaseReporter[RT, CT, KT]) Starting()                                                  {}
func (BaseReporter[RT, CT, KT]) StartingRound(round int)                                    {}
func (BaseReporter[RT, CT, KT]) EndingRound(round int, state *State[RT, CT, KT])            {}
func (BaseReporter[RT, CT, KT]) Ending(state *State[RT, CT, KT])                            {}
func (BaseReporter[RT, CT, KT]) AddingRequirement(r RT, parent Parent[CT])                  {}
func (BaseReporter[RT, CT, KT]) ResolvingConflicts(causes []RequirementInformation[RT, CT]) {}
func (BaseReporter[RT, CT, KT]) RejectingCandidate(criterion Criterion[RT, CT, KT], c CT)   {}
func (BaseReporter[RT, CT, KT]) Pinning(c CT)                                               {}
