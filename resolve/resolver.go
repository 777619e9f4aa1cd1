package resolve

import (
	"cmp"
	"errors"

	mapset "github.com/deckarep/golang-set/v2"
)

// DefaultMaxRounds is used by Resolve when the caller passes a
// non-positive round limit, matching the reference resolver's default.
const DefaultMaxRounds = 100

// Resolution runs a single backtracking search to completion. It is
// one-shot: a second call to Resolve on the same Resolution returns an
// error. Build a fresh Resolution per resolve call.
type Resolution[RT any, CT comparable, KT comparable, PT cmp.Ordered] struct {
	provider Provider[RT, CT, KT, PT]
	reporter Reporter[RT, CT, KT]
	used     bool
}

// NewResolution builds a Resolution bound to the given Provider. A nil
// reporter is replaced with a BaseReporter so callers that don't care
// about notifications never have to pass one.
func NewResolution[RT any, CT comparable, KT comparable, PT cmp.Ordered](provider Provider[RT, CT, KT, PT], reporter Reporter[RT, CT, KT]) *Resolution[RT, CT, KT, PT] {
	if reporter == nil {
		reporter = BaseReporter[RT, CT, KT]{}
	}
	return &Resolution[RT, CT, KT, PT]{provider: provider, reporter: reporter}
}

// Resolve runs the round loop to completion, starting from
// rootRequirements. maxRounds <= 0 selects DefaultMaxRounds.
func (res *Resolution[RT, CT, KT, PT]) Resolve(rootRequirements []RT, maxRounds int) (*Result[RT, CT, KT], error) {
	if res.used {
		return nil, errors.New("resolve: this Resolution has already run")
	}
	res.used = true

	if maxRounds <= 0 {
		maxRounds = DefaultMaxRounds
	}

	provider, reporter := res.provider, res.reporter
	reporter.Starting()

	root := newRootState[RT, CT, KT]()
	for _, r := range rootRequirements {
		if err := addRequirement(provider, reporter, root.Criteria, r, RootParent[CT]()); err != nil {
			var rc *requirementsConflicted[RT, CT, KT]
			if errors.As(err, &rc) {
				return nil, &ResolutionImpossible[RT, CT]{Causes: rc.Criterion.Information}
			}
			return nil, err
		}
	}

	stack := []*State[RT, CT, KT]{root, root.clone()}

	for round := 0; ; round++ {
		if round >= maxRounds {
			return nil, &ResolutionTooDeep{Rounds: maxRounds}
		}
		reporter.StartingRound(round)

		state := stack[len(stack)-1]
		unsatisfied := unsatisfiedIdentifiers(provider, state)
		if len(unsatisfied) == 0 {
			reporter.Ending(state)
			return buildResult(provider, state), nil
		}

		satisfiedBefore := mapset.NewThreadUnsafeSet[KT]()
		for _, k := range state.Criteria.Keys() {
			if !containsKey(unsatisfied, k) {
				satisfiedBefore.Add(k)
			}
		}

		ids := unsatisfied
		if np, ok := provider.(NarrowingProvider[RT, CT, KT]); ok {
			ids = np.NarrowRequirementSelection(unsatisfied)
			if len(ids) == 0 {
				panic("resolve: NarrowRequirementSelection returned an empty subset of a non-empty identifier set")
			}
		}
		k := selectByPreference(provider, state, ids)

		criterion, _ := state.Criteria.Get(k)
		ok, causes, err := pin(provider, reporter, state, k, criterion)
		if err != nil {
			return nil, err
		}

		if ok {
			newlyUnsatisfied := mapset.NewThreadUnsafeSet[KT]()
			for _, k2 := range satisfiedBefore.ToSlice() {
				if !isSatisfied(provider, state, k2) {
					newlyUnsatisfied.Add(k2)
				}
			}
			pruneInformation(provider, state, newlyUnsatisfied)
			stack = append(stack, state.clone())
		} else {
			reporter.ResolvingConflicts(causes)
			if !backjump(provider, reporter, &stack) {
				return nil, &ResolutionImpossible[RT, CT]{Causes: causes}
			}
			stack[len(stack)-1].BacktrackCauses = causes
		}

		reporter.EndingRound(round, state)
	}
}

func containsKey[KT comparable](ids []KT, k KT) bool {
	for _, id := range ids {
		if id == k {
			return true
		}
	}
	return false
}

// addRequirement folds a single requirement/parent pair into criteria.
// It reports AddingRequirement, asks the Provider for fresh matches
// against the would-be criterion, and either installs the updated
// Criterion or returns a *requirementsConflicted describing the dead end.
func addRequirement[RT any, CT comparable, KT comparable, PT cmp.Ordered](provider Provider[RT, CT, KT, PT], reporter Reporter[RT, CT, KT], criteria *OrderedMapping[KT, Criterion[RT, CT, KT]], r RT, parent Parent[CT]) error {
	reporter.AddingRequirement(r, parent)

	k := provider.IdentifyRequirement(r)

	var information []RequirementInformation[RT, CT]
	var incompatibilities mapset.Set[CT]
	if existing, ok := criteria.Get(k); ok {
		information = append(append([]RequirementInformation[RT, CT]{}, existing.Information...), RequirementInformation[RT, CT]{Requirement: r, Parent: parent})
		incompatibilities = existing.Incompatibilities
	} else {
		information = []RequirementInformation[RT, CT]{{Requirement: r, Parent: parent}}
		incompatibilities = mapset.NewThreadUnsafeSet[CT]()
	}

	reqView := newRequirementsView(criteria).withExtra(k, r)
	incompatView := newIncompatibilitiesView(criteria)

	candidates := provider.FindMatches(k, reqView, incompatView)
	newCriterion := Criterion[RT, CT, KT]{
		Information:       information,
		Incompatibilities: incompatibilities,
		Candidates:        candidates,
	}

	if candidates.Empty() {
		return &requirementsConflicted[RT, CT, KT]{Criterion: newCriterion}
	}

	criteria.Set(k, newCriterion)
	return nil
}

// pin attempts to settle identifier k to one of criterion's candidates.
// On success it commits the updated criteria map and mapping into state
// in place and returns (true, nil, nil). On exhaustion it
// returns (false, causes, nil). A faulty Provider surfaces as a non-nil
// error (InconsistentCandidate), which the caller must propagate
// immediately.
func pin[RT any, CT comparable, KT comparable, PT cmp.Ordered](provider Provider[RT, CT, KT, PT], reporter Reporter[RT, CT, KT], state *State[RT, CT, KT], k KT, criterion Criterion[RT, CT, KT]) (bool, []RequirementInformation[RT, CT], error) {
	var causes []RequirementInformation[RT, CT]

	for _, c := range criterion.Candidates.Iterate() {
		updated := cloneCriteriaMap(state.Criteria)

		conflicted := false
		for _, d := range provider.GetDependencies(c) {
			if err := addRequirement(provider, reporter, updated, d, CandidateParent(c)); err != nil {
				var rc *requirementsConflicted[RT, CT, KT]
				if !errors.As(err, &rc) {
					return false, nil, err
				}
				reporter.RejectingCandidate(rc.Criterion, c)
				causes = append(causes, rc.Criterion.Information...)
				conflicted = true
				break
			}
		}
		if conflicted {
			continue
		}

		for _, info := range criterion.Information {
			if !provider.IsSatisfiedBy(info.Requirement, c) {
				return false, nil, &InconsistentCandidate[RT, CT]{Candidate: c, Requirements: criterion.IterRequirement()}
			}
		}

		reporter.Pinning(c)
		state.Criteria = updated
		state.Mapping.Delete(k)
		state.Mapping.Set(k, c)
		return true, nil, nil
	}

	return false, causes, nil
}

// isSatisfied reports whether k's current pin (if any) satisfies every
// requirement on file for it in state.
func isSatisfied[RT any, CT comparable, KT comparable, PT cmp.Ordered](provider Provider[RT, CT, KT, PT], state *State[RT, CT, KT], k KT) bool {
	criterion, ok := state.Criteria.Get(k)
	if !ok {
		return true
	}
	pinned, ok := state.Mapping.Get(k)
	if !ok {
		return false
	}
	for _, info := range criterion.Information {
		if !provider.IsSatisfiedBy(info.Requirement, pinned) {
			return false
		}
	}
	return true
}

func unsatisfiedIdentifiers[RT any, CT comparable, KT comparable, PT cmp.Ordered](provider Provider[RT, CT, KT, PT], state *State[RT, CT, KT]) []KT {
	var out []KT
	for _, k := range state.Criteria.Keys() {
		if !isSatisfied(provider, state, k) {
			out = append(out, k)
		}
	}
	return out
}

// selectByPreference picks argmin(ids, key=GetPreference), with ties
// broken by the Provider's own total order (first one seen wins, since
// strict-less only replaces on a genuine improvement).
func selectByPreference[RT any, CT comparable, KT comparable, PT cmp.Ordered](provider Provider[RT, CT, KT, PT], state *State[RT, CT, KT], ids []KT) KT {
	best := ids[0]
	bestPref := provider.GetPreference(best, state.Mapping, state.Criteria, state.BacktrackCauses)
	for _, id := range ids[1:] {
		p := provider.GetPreference(id, state.Mapping, state.Criteria, state.BacktrackCauses)
		if p < bestPref {
			best, bestPref = id, p
		}
	}
	return best
}

// pruneInformation runs after a successful pin invalidates some
// previously-satisfied identifiers: any RequirementInformation whose
// parent candidate belongs to one of those identifiers is dropped from
// every criterion in state, except root requirements (parent = none).
func pruneInformation[RT any, CT comparable, KT comparable, PT cmp.Ordered](provider Provider[RT, CT, KT, PT], state *State[RT, CT, KT], newlyUnsatisfied mapset.Set[KT]) {
	if newlyUnsatisfied.Cardinality() == 0 {
		return
	}
	for _, k := range state.Criteria.Keys() {
		criterion, _ := state.Criteria.Get(k)
		kept := make([]RequirementInformation[RT, CT], 0, len(criterion.Information))
		changed := false
		for _, info := range criterion.Information {
			if !info.Parent.Root && newlyUnsatisfied.Contains(provider.IdentifyCandidate(info.Parent.Candidate)) {
				changed = true
				continue
			}
			kept = append(kept, info)
		}
		if changed {
			criterion.Information = kept
			state.Criteria.Set(k, criterion)
		}
	}
}

// backjump retreats the state stack after a pinning failure: it pops the
// failed state and the one before it, learns an incompatibility from
// whichever candidate was pinned there, and re-queries FindMatches for
// every affected identifier still present in the new top of the stack. On
// success it replaces *stack with the new, patched stack (top now a fresh
// working state) and returns true. If the stack falls below three states
// before a viable patch is found, it restores *stack to whatever remained
// and returns false.
func backjump[RT any, CT comparable, KT comparable, PT cmp.Ordered](provider Provider[RT, CT, KT, PT], reporter Reporter[RT, CT, KT], stackPtr *[]*State[RT, CT, KT]) bool {
	stack := *stackPtr

	type learned struct {
		id    KT
		items []CT
	}

	for {
		if len(stack) < 3 {
			*stackPtr = stack
			return false
		}

		// Pop Z (the failed state) and Y (whose pin led to Z).
		stack = stack[:len(stack)-1]
		y := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		k, c, ok := y.Mapping.PopLast()
		if !ok {
			continue
		}

		var gathered []learned
		for _, kk := range y.Criteria.Keys() {
			crit, _ := y.Criteria.Get(kk)
			if crit.Incompatibilities.Cardinality() > 0 {
				gathered = append(gathered, learned{id: kk, items: crit.Incompatibilities.ToSlice()})
			}
		}
		gathered = append(gathered, learned{id: k, items: []CT{c}})

		x := stack[len(stack)-1]
		newTop := x.clone()
		stack = append(stack, newTop)

		impossible := false
		for _, e := range gathered {
			if len(e.items) == 0 {
				continue
			}
			criterion, ok := newTop.Criteria.Get(e.id)
			if !ok {
				continue
			}

			merged := criterion.Incompatibilities.Clone()
			for _, it := range e.items {
				merged.Add(it)
			}

			reqView := newRequirementsView(newTop.Criteria)
			incompatView := newIncompatibilitiesView(newTop.Criteria).withOverride(e.id, merged.ToSlice())
			newCandidates := provider.FindMatches(e.id, reqView, incompatView)
			if newCandidates.Empty() {
				impossible = true
				break
			}

			criterion.Incompatibilities = merged
			criterion.Candidates = newCandidates
			newTop.Criteria.Set(e.id, criterion)
		}

		if impossible {
			continue
		}

		*stackPtr = stack
		return true
	}
}
