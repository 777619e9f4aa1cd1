package resolve

import "cmp"

// Result is the final product of a successful Resolve: a mapping from
// every reachable identifier to its pinned candidate, the dependency
// graph rooted at the ⊥ sentinel, and the final criteria map for
// downstream inspection (IterRequirement/IterParent).
type Result[RT any, CT comparable, KT comparable] struct {
	Mapping  *OrderedMapping[KT, CT]
	Graph    *DirectedGraph[node[KT]]
	Criteria *OrderedMapping[KT, Criterion[RT, CT, KT]]
}

// buildResult walks parent links back to ⊥ to find which identifiers are
// actually rooted, then emits a mapping and graph restricted to (but
// otherwise containing all of) that reachable set. Pure orphans, criteria
// left over from branches that were since invalidated and pruned away but
// not yet garbage collected from the criteria map, are excluded from both
// Mapping and Graph.
func buildResult[RT any, CT comparable, KT comparable, PT cmp.Ordered](provider Provider[RT, CT, KT, PT], state *State[RT, CT, KT]) *Result[RT, CT, KT] {
	memo := make(map[KT]bool)

	var reachable func(k KT) bool
	reachable = func(k KT) bool {
		if v, ok := memo[k]; ok {
			return v
		}
		memo[k] = false // breaks cycles through k while computing k itself

		criterion, ok := state.Criteria.Get(k)
		if !ok {
			return false
		}

		result := false
		for _, info := range criterion.Information {
			if info.Parent.Root {
				result = true
				break
			}
			if reachable(provider.IdentifyCandidate(info.Parent.Candidate)) {
				result = true
				break
			}
		}
		memo[k] = result
		return result
	}

	graph := NewDirectedGraph[node[KT]]()
	graph.Add(Bottom[KT]())

	var reachableKeys []KT
	for _, k := range state.Criteria.Keys() {
		if reachable(k) {
			reachableKeys = append(reachableKeys, k)
			graph.Add(Node(k))
		}
	}

	for _, k := range reachableKeys {
		criterion, _ := state.Criteria.Get(k)
		for _, info := range criterion.Information {
			if info.Parent.Root {
				graph.Connect(Bottom[KT](), Node(k))
				continue
			}
			pid := provider.IdentifyCandidate(info.Parent.Candidate)
			graph.Connect(Node(pid), Node(k))
		}
	}

	mapping := NewOrderedMapping[KT, CT]()
	for _, k := range state.Mapping.Keys() {
		if memo[k] {
			c, _ := state.Mapping.Get(k)
			mapping.Set(k, c)
		}
	}

	return &Result[RT, CT, KT]{
		Mapping:  mapping,
		Graph:    graph,
		Criteria: state.Criteria,
	}
}
