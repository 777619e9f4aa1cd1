package resolve

// This file defines a tiny in-memory Provider used across resolver_test.go
// scenarios: identifiers and candidate names are plain strings, a
// requirement is a named set of acceptable integer versions, and a
// candidate is a (name, version) pair.

type testRequirement struct {
	name     string
	versions map[int]bool
}

func req(name string, versions ...int) testRequirement {
	vs := make(map[int]bool, len(versions))
	for _, v := range versions {
		vs[v] = true
	}
	return testRequirement{name: name, versions: vs}
}

type testCandidate struct {
	name    string
	version int
}

type testProvider struct {
	// versions lists, per name, every candidate version that exists, in
	// Provider-preferred order (most preferred first).
	versions map[string][]int
	// deps maps a (name, version) candidate to the requirements it
	// introduces once pinned.
	deps map[testCandidate][]testRequirement

	rejected []testCandidate
}

func newTestProvider() *testProvider {
	return &testProvider{
		versions: make(map[string][]int),
		deps:     make(map[testCandidate][]testRequirement),
	}
}

func (p *testProvider) addVersions(name string, versionsMostPreferredFirst ...int) {
	p.versions[name] = versionsMostPreferredFirst
}

func (p *testProvider) addDeps(name string, version int, deps ...testRequirement) {
	p.deps[testCandidate{name: name, version: version}] = deps
}

func (p *testProvider) IdentifyRequirement(r testRequirement) string { return r.name }
func (p *testProvider) IdentifyCandidate(c testCandidate) string     { return c.name }

func (p *testProvider) GetPreference(id string, resolutions *OrderedMapping[string, testCandidate], criteria *OrderedMapping[string, Criterion[testRequirement, testCandidate, string]], backtrackCauses []RequirementInformation[testRequirement, testCandidate]) int {
	crit, _ := criteria.Get(id)
	return len(crit.Candidates.Iterate())
}

func (p *testProvider) FindMatches(id string, requirements RequirementsView[testRequirement, testCandidate, string], incompatibilities IncompatibilitiesView[testRequirement, testCandidate, string]) IterableView[testCandidate] {
	reqs := requirements.For(id)
	incompat := make(map[testCandidate]bool)
	for _, c := range incompatibilities.For(id) {
		incompat[c] = true
	}

	var out []testCandidate
	for _, v := range p.versions[id] {
		c := testCandidate{name: id, version: v}
		if incompat[c] {
			continue
		}
		ok := true
		for _, r := range reqs {
			if !r.versions[v] {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, c)
		}
	}
	return NewMaterializedView(out)
}

func (p *testProvider) IsSatisfiedBy(r testRequirement, c testCandidate) bool {
	return r.name == c.name && r.versions[c.version]
}

func (p *testProvider) GetDependencies(c testCandidate) []testRequirement {
	return p.deps[c]
}

type collectingReporter struct {
	BaseReporter[testRequirement, testCandidate, string]
	resolvingConflicts [][]RequirementInformation[testRequirement, testCandidate]
	rejecting          []testCandidate
}

func (r *collectingReporter) ResolvingConflicts(causes []RequirementInformation[testRequirement, testCandidate]) {
	r.resolvingConflicts = append(r.resolvingConflicts, causes)
}

func (r *collectingReporter) RejectingCandidate(criterion Criterion[testRequirement, testCandidate, string], c testCandidate) {
	r.rejecting = append(r.rejecting, c)
}
