package blossom

import (
	"math/big"

	"github.com/mkeverything/mktour-pairing/core"
)

// Edge is one undirected, weighted edge of a Graph. Weight is *big.Int
// because the Swiss weight encoder (package swiss) can legitimately produce
// edge weights beyond 64 or even 128 bits for large tournaments; the matcher
// never assumes a fixed width.
type Edge struct {
	From, To string
	Weight   *big.Int
}

// Graph is a simple (no self-loops, no parallel edges) undirected graph with
// integer edge weights, the input and internal working structure of both
// MaximumMatching and MaximumWeightMatching.
//
// Unlike core.Graph, Graph is not safe for concurrent use: a matching call
// owns its Graph exclusively for the duration of the call (see doc.go and
// SPEC_FULL.md §5), so there is no mutex to pay for. Vertex and edge
// enumeration order is insertion order, not sorted -- the Swiss encoder's own
// admission order (pairing-number order) is already the canonical order and
// must not be scrambled by re-sorting on an arbitrary vertex key.
type Graph struct {
	vertexOrder   []string
	vertexSet     map[string]bool
	adjacency     map[string]map[string]struct{}
	neighborOrder map[string][]string
	edgeOrder     []*Edge
	edgeByPair    map[string]map[string]*Edge
}

// NewGraph returns an empty Graph ready for AddVertex/AddEdge.
func NewGraph() *Graph {
	return &Graph{
		vertexSet:     make(map[string]bool),
		adjacency:     make(map[string]map[string]struct{}),
		neighborOrder: make(map[string][]string),
		edgeByPair:    make(map[string]map[string]*Edge),
	}
}

// AddVertex registers id, a no-op if id is already present.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	if g.vertexSet[id] {
		return nil
	}
	g.vertexSet[id] = true
	g.vertexOrder = append(g.vertexOrder, id)
	g.adjacency[id] = make(map[string]struct{})
	g.edgeByPair[id] = make(map[string]*Edge)
	return nil
}

// AddEdge adds an undirected edge between two already-added vertices.
func (g *Graph) AddEdge(from, to string, weight *big.Int) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	if from == to {
		return ErrSelfLoop
	}
	if !g.vertexSet[from] || !g.vertexSet[to] {
		return ErrUnknownVertex
	}
	if _, exists := g.edgeByPair[from][to]; exists {
		return ErrParallelEdge
	}
	e := &Edge{From: from, To: to, Weight: new(big.Int).Set(weight)}
	g.edgeOrder = append(g.edgeOrder, e)
	g.edgeByPair[from][to] = e
	g.edgeByPair[to][from] = e
	g.adjacency[from][to] = struct{}{}
	g.adjacency[to][from] = struct{}{}
	g.neighborOrder[from] = append(g.neighborOrder[from], to)
	g.neighborOrder[to] = append(g.neighborOrder[to], from)
	return nil
}

// Vertices returns every vertex id in insertion order.
func (g *Graph) Vertices() []string {
	out := make([]string, len(g.vertexOrder))
	copy(out, g.vertexOrder)
	return out
}

// Neighbors returns v's neighbor ids in the order their edges were added.
func (g *Graph) Neighbors(v string) []string {
	out := make([]string, len(g.neighborOrder[v]))
	copy(out, g.neighborOrder[v])
	return out
}

// Edges returns every edge in insertion order.
func (g *Graph) Edges() []*Edge {
	out := make([]*Edge, len(g.edgeOrder))
	copy(out, g.edgeOrder)
	return out
}

// EdgeBetween returns the edge between u and v, if any.
func (g *Graph) EdgeBetween(u, v string) (*Edge, bool) {
	e, ok := g.edgeByPair[u][v]
	return e, ok
}

// Clone deep-copies the graph, including edge weights. The weighted matcher
// clones its input before doubling weights so the caller's Graph is never
// mutated (SPEC_FULL.md §5).
func (g *Graph) Clone() *Graph {
	out := NewGraph()
	for _, v := range g.vertexOrder {
		_ = out.AddVertex(v)
	}
	for _, e := range g.edgeOrder {
		_ = out.AddEdge(e.From, e.To, e.Weight)
	}
	return out
}

// FromCoreGraph adapts an existing core.Graph (e.g. a hand-built test
// fixture, or any other part of a larger application built on core) into a
// Graph the matcher can consume, without the caller learning a second graph
// API. core.Graph already carries *big.Int weights; each edge's weight is
// copied defensively so the two graphs never alias the same big.Int.
func FromCoreGraph(g *core.Graph) (*Graph, error) {
	if g.Directed() {
		return nil, ErrDirectedGraph
	}
	out := NewGraph()
	for _, v := range g.Vertices() {
		if err := out.AddVertex(v); err != nil {
			return nil, err
		}
	}
	seen := make(map[string]map[string]bool)
	for _, e := range g.Edges() {
		if e.From == e.To {
			continue // core permits loops if configured; blossom graphs never do
		}
		if seen[e.From][e.To] || seen[e.To][e.From] {
			continue // collapse any parallel edge the source multigraph carried
		}
		if seen[e.From] == nil {
			seen[e.From] = make(map[string]bool)
		}
		seen[e.From][e.To] = true
		if err := out.AddEdge(e.From, e.To, new(big.Int).Set(e.Weight)); err != nil {
			return nil, err
		}
	}
	return out, nil
}
