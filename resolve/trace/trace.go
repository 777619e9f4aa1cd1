package trace

import (
	"fmt"
	"strings"

	"github.com/depsolver/resolvelib/resolve"
)

const (
	successChar = "✓"
	failChar    = "✗"
	backChar    = "←"
)

// tracePrefix indents every line of msg, using fsep for the first line
// and sep for the rest.
func tracePrefix(msg, sep, fsep string) string {
	parts := strings.Split(strings.TrimSuffix(msg, "\n"), "\n")
	for i, s := range parts {
		if i == 0 {
			parts[i] = fsep + s
		} else {
			parts[i] = sep + s
		}
	}
	return strings.Join(parts, "\n")
}

// Reporter is a tree-indented, glyph-annotated trace of a resolve,
// built entirely from the public Reporter hooks. depth approximates how
// deep the search currently is: it grows by one on every successful pin
// and shrinks by one on every reported conflict, so indentation roughly
// tracks the state stack's height without the tracer needing access to
// the stack itself.
type Reporter[RT any, CT comparable, KT comparable] struct {
	resolve.BaseReporter[RT, CT, KT]
	log   *Logger
	depth int
}

// NewReporter returns a Reporter writing to the given Logger.
func NewReporter[RT any, CT comparable, KT comparable](log *Logger) *Reporter[RT, CT, KT] {
	return &Reporter[RT, CT, KT]{log: log}
}

func (r *Reporter[RT, CT, KT]) prefix() string {
	return strings.Repeat("| ", r.depth)
}

func (r *Reporter[RT, CT, KT]) Starting() {
	r.log.Logln("starting resolve")
}

func (r *Reporter[RT, CT, KT]) StartingRound(round int) {
	r.log.Logf("%s\n", tracePrefix(fmt.Sprintf("round %d", round), r.prefix(), r.prefix()))
}

func (r *Reporter[RT, CT, KT]) Pinning(c CT) {
	msg := fmt.Sprintf("%s pin %v", successChar, c)
	r.log.Logf("%s\n", tracePrefix(msg, r.prefix(), r.prefix()))
	r.depth++
}

func (r *Reporter[RT, CT, KT]) RejectingCandidate(criterion resolve.Criterion[RT, CT, KT], c CT) {
	msg := fmt.Sprintf("%s reject %v", failChar, c)
	r.log.Logf("%s\n", tracePrefix(msg, r.prefix(), r.prefix()))
}

func (r *Reporter[RT, CT, KT]) ResolvingConflicts(causes []resolve.RequirementInformation[RT, CT]) {
	msg := fmt.Sprintf("%s backjump: %d contributing requirement(s)", backChar, len(causes))
	r.log.Logf("%s\n", tracePrefix(msg, r.prefix(), r.prefix()))
	if r.depth > 0 {
		r.depth--
	}
}

func (r *Reporter[RT, CT, KT]) Ending(state *resolve.State[RT, CT, KT]) {
	r.log.Logf("%s resolved with %d pin(s)\n", successChar, state.Mapping.Len())
}
