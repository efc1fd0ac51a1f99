package blossom

import "math/big"

// slack returns the LP slack of edge (u,v): dual(u) + dual(v) + the duals of
// every blossom (at any nesting level) containing both endpoints, minus the
// edge's weight. The edge is tight iff slack <= 0; the matcher tolerates
// over-tight (negative-slack) edges produced transiently by delta updates.
func (m *matcher) slack(u, v string) *big.Int {
	s := new(big.Int).Add(m.vertexDual[u], m.vertexDual[v])

	ancestorsU := m.ancestorChain(u)
	inU := make(map[int]bool, len(ancestorsU))
	for _, b := range ancestorsU {
		inU[b] = true
	}
	for _, b := range m.ancestorChain(v) {
		if inU[b] && !m.blossoms[b].trivial {
			s.Add(s, m.blossoms[b].dual)
		}
	}

	if e, ok := m.g.EdgeBetween(u, v); ok {
		s.Sub(s, e.Weight)
	}
	return s
}

// ancestorChain returns every blossom (innermost to outermost, inclusive)
// containing v, starting from v's trivial blossom (whose id is v's vertex
// index); inBlossom is not used because it holds only the top-level one.
func (m *matcher) ancestorChain(v string) []int {
	var chain []int
	b := m.vertexIndex[v]
	for steps := 0; b != -1; steps++ {
		if steps > maxChainSteps {
			panic(invariantf("ancestor chain did not terminate", map[string]any{"vertex": v}))
		}
		chain = append(chain, b)
		b = m.blossoms[b].parent
	}
	return chain
}

// isEdgeTight reports whether (u,v)'s slack is <= 0.
func (m *matcher) isEdgeTight(u, v string) bool {
	return m.slack(u, v).Sign() <= 0
}

type deltaKind int

const (
	deltaNone deltaKind = iota
	deltaEdge
	deltaBlossom
)

// delta is the tagged union of the two kinds of progress the weighted
// matcher can make in a stalled stage: tightening a cross-S/T-or-free edge,
// or expanding a T-blossom whose dual has reached zero. A Go interface would
// force an allocation and a dynamic dispatch per candidate in the hot BFS
// loop; a plain struct with a kind tag does not.
type delta struct {
	kind      deltaKind
	value     *big.Int
	u, w      string
	blossomID int
}

// minDelta scans every edge and every top-level non-trivial T-blossom for
// the smallest positive delta that would make further progress possible.
// Zero and negative candidates are discarded: they cannot make progress.
func (m *matcher) minDelta() (best delta, ok bool) {
	consider := func(cand delta) {
		if cand.value.Sign() <= 0 {
			return
		}
		if !ok || cand.value.Cmp(best.value) < 0 {
			best, ok = cand, true
		}
	}

	two := big.NewInt(2)
	for _, e := range m.g.Edges() {
		u, w := e.From, e.To
		topU, topW := m.topLevelOf(u), m.topLevelOf(w)
		if topU == topW {
			continue
		}
		labU, labW := m.blossoms[topU].label, m.blossoms[topW].label
		switch {
		case labU == labelS && labW == labelS:
			s := m.slack(u, w)
			consider(delta{kind: deltaEdge, value: new(big.Int).Div(s, two), u: u, w: w})
		case labU == labelS && labW == labelNone, labU == labelNone && labW == labelS:
			consider(delta{kind: deltaEdge, value: m.slack(u, w), u: u, w: w})
		}
	}

	for id, b := range m.blossoms {
		if b.trivial || b.parent != -1 || b.label != labelT {
			continue
		}
		consider(delta{kind: deltaBlossom, value: new(big.Int).Div(b.dual, two), blossomID: id})
	}

	return best, ok
}

// terminationBound is delta-1: the minimum vertex dual among S-labelled
// vertices, used only in max-weight mode to decide when a stage has truly
// run out of progress (max-cardinality mode lets duals go negative in
// pursuit of more matched pairs, so it never consults this bound).
func (m *matcher) terminationBound() *big.Int {
	var min *big.Int
	for _, v := range m.vertexOrder {
		if m.blossoms[m.topLevelOf(v)].label != labelS {
			continue
		}
		d := m.vertexDual[v]
		if min == nil || d.Cmp(min) < 0 {
			min = d
		}
	}
	return min
}

// applyDualUpdate adjusts every top-level node's dual by delta, per its
// label: S-vertex duals shrink, T-vertex duals grow, S-blossom duals grow
// by 2*delta, T-blossom duals shrink by 2*delta. Every vertex, including one
// nested inside a blossom, takes the label of its top-level blossom; nested
// (non-top-level) blossom duals are untouched.
func (m *matcher) applyDualUpdate(d *big.Int) {
	for _, v := range m.vertexOrder {
		top := m.topLevelOf(v)
		switch m.blossoms[top].label {
		case labelS:
			m.vertexDual[v].Sub(m.vertexDual[v], d)
		case labelT:
			m.vertexDual[v].Add(m.vertexDual[v], d)
		}
	}

	twoDelta := new(big.Int).Mul(d, big.NewInt(2))
	for _, b := range m.blossoms {
		if b.trivial || b.parent != -1 {
			continue
		}
		switch b.label {
		case labelS:
			b.dual.Add(b.dual, twoDelta)
		case labelT:
			b.dual.Sub(b.dual, twoDelta)
		}
	}
}
