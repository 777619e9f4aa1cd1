package resolve

import (
	"bytes"
	"fmt"
)

// resolutionError is embedded by every public error this package returns,
// as their common base type. It is unexported and has no Error method, so
// it is not itself a target for errors.As; callers test for the concrete
// error types.
type resolutionError struct{}

func (resolutionError) resolution() {}

// traceError is implemented by errors that can render a terser,
// tree-friendly form for trace output.
type traceError interface {
	traceString() string
}

// InconsistentCandidate is returned when a Provider hands back a candidate
// from FindMatches that its own IsSatisfiedBy rejects against one of the
// requirements the candidate was supposedly found for. This signals a bug
// in the Provider, not an unsatisfiable requirement set.
type InconsistentCandidate[RT any, CT any] struct {
	resolutionError
	Candidate    CT
	Requirements []RT
}

func (e *InconsistentCandidate[RT, CT]) Error() string {
	return fmt.Sprintf("candidate %v inconsistent, returned by FindMatches but rejected by IsSatisfiedBy against %d requirement(s)", e.Candidate, len(e.Requirements))
}

// ResolutionImpossible is returned when the search space is exhausted
// without finding a pin for every identifier. Causes lists every
// requirement/parent pair that contributed to the final, unresolved
// criteria at the point resolution gave up.
type ResolutionImpossible[RT any, CT any] struct {
	resolutionError
	Causes []RequirementInformation[RT, CT]
}

func (e *ResolutionImpossible[RT, CT]) Error() string {
	return fmt.Sprintf("resolution impossible after considering %d requirement(s)", len(e.Causes))
}

func (e *ResolutionImpossible[RT, CT]) traceString() string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "Unable to find a resolution:")
	for _, c := range e.Causes {
		if c.Parent.Root {
			fmt.Fprintf(&buf, "\n  %v (root)", c.Requirement)
		} else {
			fmt.Fprintf(&buf, "\n  %v <- %v", c.Requirement, c.Parent.Candidate)
		}
	}
	return buf.String()
}

// ResolutionTooDeep is returned when the round loop exceeds MaxRounds
// without converging, guarding against pathological or buggy Providers
// driving the engine into an unbounded search.
type ResolutionTooDeep struct {
	resolutionError
	Rounds int
}

func (e *ResolutionTooDeep) Error() string {
	return fmt.Sprintf("resolution exceeded %d rounds without converging", e.Rounds)
}

// requirementsConflicted is the engine's internal signal that adding a
// requirement to a criterion produced an empty candidate view. It is never
// returned across the Resolve boundary: during pinning it rejects the
// candidate being tried, and for a root requirement Resolve converts it
// into ResolutionImpossible.
type requirementsConflicted[RT any, CT comparable, KT comparable] struct {
	Criterion Criterion[RT, CT, KT]
}

func (e *requirementsConflicted[RT, CT, KT]) Error() string {
	return fmt.Sprintf("requirements conflicted across %d contributor(s)", len(e.Criterion.Information))
}
