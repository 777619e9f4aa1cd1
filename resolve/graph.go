package resolve

import mapset "github.com/deckarep/golang-set/v2"

// node is a vertex in the result DirectedGraph: either a resolved
// identifier, or the sentinel bottom vertex (⊥) representing the virtual
// parent of all root requirements. Wrapping K in a small comparable
// struct lets the graph carry K plus one extra sentinel value without
// requiring K itself to have a reserved zero value for ⊥.
type node[K comparable] struct {
	id     K
	bottom bool
}

// Bottom returns the sentinel ⊥ vertex for a graph over identifiers K.
func Bottom[K comparable]() node[K] {
	return node[K]{bottom: true}
}

// Node wraps an identifier as an ordinary (non-bottom) graph vertex.
func Node[K comparable](id K) node[K] {
	return node[K]{id: id}
}

// IsBottom reports whether this vertex is the ⊥ sentinel.
func (n node[K]) IsBottom() bool {
	return n.bottom
}

// ID returns the wrapped identifier. It is only meaningful when
// IsBottom() is false.
func (n node[K]) ID() K {
	return n.id
}

// DirectedGraph is a mutable directed multigraph (parallel edges collapse,
// since adjacency is set-backed) with forward/backward adjacency, used to
// build the final dependency graph. Edges are stored as
// deckarep/golang-set/v2 sets keyed by vertex.
type DirectedGraph[K comparable] struct {
	vertices  mapset.Set[K]
	forwards  map[K]mapset.Set[K]
	backwards map[K]mapset.Set[K]
}

// NewDirectedGraph returns an empty graph.
func NewDirectedGraph[K comparable]() *DirectedGraph[K] {
	return &DirectedGraph[K]{
		vertices:  mapset.NewThreadUnsafeSet[K](),
		forwards:  make(map[K]mapset.Set[K]),
		backwards: make(map[K]mapset.Set[K]),
	}
}

// Add inserts a new vertex. Adding a vertex that already exists is a
// no-op.
func (g *DirectedGraph[K]) Add(k K) {
	if g.vertices.Contains(k) {
		return
	}
	g.vertices.Add(k)
	g.forwards[k] = mapset.NewThreadUnsafeSet[K]()
	g.backwards[k] = mapset.NewThreadUnsafeSet[K]()
}

// Contains reports whether k is a vertex of the graph.
func (g *DirectedGraph[K]) Contains(k K) bool {
	return g.vertices.Contains(k)
}

// Connect adds a directed edge from f to t. Both vertices must already
// exist. Connecting an already-connected pair is a no-op.
func (g *DirectedGraph[K]) Connect(f, t K) {
	if !g.vertices.Contains(f) || !g.vertices.Contains(t) {
		return
	}
	g.forwards[f].Add(t)
	g.backwards[t].Add(f)
}

// Children returns the vertices reachable by one forward edge from k.
func (g *DirectedGraph[K]) Children(k K) []K {
	s, ok := g.forwards[k]
	if !ok {
		return nil
	}
	return s.ToSlice()
}

// Parents returns the vertices with a forward edge into k.
func (g *DirectedGraph[K]) Parents(k K) []K {
	s, ok := g.backwards[k]
	if !ok {
		return nil
	}
	return s.ToSlice()
}

// Vertices returns every vertex currently in the graph.
func (g *DirectedGraph[K]) Vertices() []K {
	return g.vertices.ToSlice()
}

// Len returns the number of vertices.
func (g *DirectedGraph[K]) Len() int {
	return g.vertices.Cardinality()
}

// Edge is a single (from, to) pair, used by Edges for iteration/testing.
type Edge[K comparable] struct {
	From K
	To   K
}

// Edges returns every edge in the graph, in no particular order.
func (g *DirectedGraph[K]) Edges() []Edge[K] {
	var out []Edge[K]
	for f, children := range g.forwards {
		for _, t := range children.ToSlice() {
			out = append(out, Edge[K]{From: f, To: t})
		}
	}
	return out
}
