package blossom

import "math/big"

// label is the alternating-tree role of a top-level blossom: unlabelled
// (free, not yet reached by this stage's BFS), S (even distance from a
// root, eligible to extend the search), or T (odd distance, matched
// downward toward an S-blossom).
type label int8

const (
	labelNone label = iota
	labelS
	labelT
)

// edgePair is one (vertex in child i, vertex in child i+1) junction of a
// blossom's cycle.
type edgePair struct {
	A, B string
}

// blossomState is one entry of the blossom arena: either a trivial blossom
// (a bare vertex, id == that vertex's index in the matcher's vertex order)
// or a composite blossom formed by addBlossom. Ids are never reused within
// one matching call; expandBlossom deletes the map entry but does not
// recycle the integer.
type blossomState struct {
	id      int
	parent  int // -1 if top-level
	trivial bool
	vertex  string // valid only if trivial

	children []int      // direct children, in cycle order, base first
	edges    []edgePair // edges[i] joins children[i] to children[i+1 mod len]
	base     string     // the one vertex through which this blossom attaches to its parent/tree

	label           label
	labelEnd        string // "" if this is a tree root (or unlabelled)
	labelEdgeVertex string // vertex inside this blossom touched by the labelling edge

	dual *big.Int // meaningful only for non-trivial blossoms
}

// matcher holds all per-call working state for both MaximumMatching and
// MaximumWeightMatching. A fresh matcher is built per top-level call and
// discarded when it returns; nothing here survives across calls.
type matcher struct {
	g *Graph

	vertexOrder []string
	vertexIndex map[string]int

	mate map[string]string

	blossoms      map[int]*blossomState
	nextBlossomID int

	inBlossom map[string]int // vertex -> current top-level blossom id

	queue []string

	// weighted-mode only; nil for MaximumMatching.
	vertexDual map[string]*big.Int
}

func newMatcher(g *Graph, weighted bool) *matcher {
	m := &matcher{
		g:           g,
		vertexOrder: g.Vertices(),
		vertexIndex: make(map[string]int),
		mate:        make(map[string]string),
		blossoms:    make(map[int]*blossomState),
		inBlossom:   make(map[string]int),
	}
	for i, v := range m.vertexOrder {
		m.vertexIndex[v] = i
		m.blossoms[i] = &blossomState{id: i, parent: -1, trivial: true, vertex: v, base: v, label: labelNone}
		m.inBlossom[v] = i
	}
	m.nextBlossomID = len(m.vertexOrder)
	if weighted {
		m.vertexDual = make(map[string]*big.Int, len(m.vertexOrder))
		for _, v := range m.vertexOrder {
			m.vertexDual[v] = big.NewInt(0)
		}
	}
	return m
}

// resetForStage drops every non-trivial blossom (they only described the
// previous stage's alternating tree) and clears all labels, restoring every
// vertex to its own trivial top-level blossom.
func (m *matcher) resetForStage() {
	for id, b := range m.blossoms {
		if !b.trivial {
			delete(m.blossoms, id)
		}
	}
	for _, v := range m.vertexOrder {
		idx := m.vertexIndex[v]
		tb := m.blossoms[idx]
		tb.parent = -1
		tb.label = labelNone
		tb.labelEnd = ""
		tb.labelEdgeVertex = ""
		m.inBlossom[v] = idx
	}
	m.queue = nil
}

// resultMates builds the public mate map: every vertex present, "" for an
// unmatched vertex.
func (m *matcher) resultMates() map[string]string {
	out := make(map[string]string, len(m.vertexOrder))
	for _, v := range m.vertexOrder {
		out[v] = m.mate[v]
	}
	return out
}
