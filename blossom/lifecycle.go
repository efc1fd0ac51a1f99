package blossom

import "math/big"

// addBlossom contracts the alternating-tree cycle closed by the just-found
// S-S edge (u,v) into a single new top-level blossom.
func (m *matcher) addBlossom(u, v string) error {
	lcaB, ok := m.lowestCommonAncestor(u, v)
	if !ok {
		return invariantf("addBlossom called without a common ancestor", map[string]any{"u": u, "v": v})
	}
	lca := m.blossoms[lcaB]

	childrenU, edgesU := m.pathExcludingLCA(u, lcaB)
	childrenV, edgesV := m.pathExcludingLCA(v, lcaB)

	children := make([]int, 0, len(childrenU)+1+len(childrenV))
	children = append(children, childrenU...)
	children = append(children, lcaB)
	for i := len(childrenV) - 1; i >= 0; i-- {
		children = append(children, childrenV[i])
	}

	edges := make([]edgePair, 0, len(children))
	edges = append(edges, edgesU...)
	for i := len(edgesV) - 1; i >= 0; i-- {
		edges = append(edges, edgePair{A: edgesV[i].B, B: edgesV[i].A})
	}
	edges = append(edges, edgePair{A: v, B: u}) // closing edge

	// Rotate so the LCA (the new blossom's base) sits at index 0.
	k := len(childrenU)
	children = append(append(make([]int, 0, len(children)), children[k:]...), children[:k]...)
	edges = append(append(make([]edgePair, 0, len(edges)), edges[k:]...), edges[:k]...)

	newID := m.nextBlossomID
	m.nextBlossomID++
	nb := &blossomState{
		id:              newID,
		parent:          -1,
		trivial:         false,
		children:        children,
		edges:           edges,
		base:            lca.base,
		label:           lca.label,
		labelEnd:        lca.labelEnd,
		labelEdgeVertex: lca.labelEdgeVertex,
		dual:            big.NewInt(0),
	}
	m.blossoms[newID] = nb

	for _, c := range children {
		wasT := m.blossoms[c].label == labelT
		m.blossoms[c].parent = newID
		for _, leaf := range m.blossomLeaves(c) {
			if wasT {
				m.queue = append(m.queue, leaf)
			}
			m.inBlossom[leaf] = newID
		}
	}
	return nil
}

// pathExcludingLCA walks from v's top-level blossom up to (but excluding)
// lcaB, returning the visited blossom ids and the (labelEdgeVertex,
// labelEnd) edges connecting consecutive ones, in climbing order.
func (m *matcher) pathExcludingLCA(v string, lcaB int) (ids []int, edges []edgePair) {
	b := m.topLevelOf(v)
	for steps := 0; b != lcaB; steps++ {
		if steps > maxChainSteps {
			panic(invariantf("blossom path to LCA did not terminate", map[string]any{"vertex": v, "lca": lcaB}))
		}
		bl := m.blossoms[b]
		ids = append(ids, b)
		edges = append(edges, edgePair{A: bl.labelEdgeVertex, B: bl.labelEnd})
		b = m.topLevelOf(bl.labelEnd)
	}
	return ids, edges
}

// augmentMatching flips the alternating path between augmenting-path
// endpoints u and v: matches u directly to v, then walks each side back
// toward its tree root, rewriting mates one direction per walk (the two
// walks together complete both sides of every matched edge on the path).
func (m *matcher) augmentMatching(u, v string) error {
	m.mate[u] = v
	m.mate[v] = u
	if err := m.augmentFromVertex(u, v); err != nil {
		return err
	}
	if err := m.augmentFromVertex(v, u); err != nil {
		return err
	}
	return nil
}

// augmentFromVertex walks one side of the augmenting path starting at
// (s, sMate), expanding any non-trivial blossom it passes through and
// rewriting one direction of the mate pointers at each S-T step.
func (m *matcher) augmentFromVertex(s, sMate string) error {
	for steps := 0; ; steps++ {
		if steps > maxChainSteps {
			return invariantf("augmenting walk did not terminate", map[string]any{"s": s, "sMate": sMate})
		}
		bs := m.topLevelOf(s)
		blossomBS := m.blossoms[bs]
		labelEnd := blossomBS.labelEnd
		if !blossomBS.trivial {
			if err := m.expandBlossom(bs, s, true); err != nil {
				return err
			}
		}
		m.mate[s] = sMate
		if labelEnd == "" {
			return nil
		}
		t := labelEnd
		bt := m.topLevelOf(t)
		blossomBT := m.blossoms[bt]
		nextS := blossomBT.labelEnd
		edgeVertexInT := blossomBT.labelEdgeVertex
		if !blossomBT.trivial {
			if err := m.expandBlossom(bt, edgeVertexInT, true); err != nil {
				return err
			}
		}
		m.mate[edgeVertexInT] = nextS
		s, sMate = nextS, edgeVertexInT
	}
}

// expandBlossom dissolves blossom id back into its direct children.
//
// endstage=true is the augmentation-time expansion: it walks the cycle from
// the entry child toward the base in pairs, matching each pair's joining
// edge vertices to each other and recursively expanding non-trivial
// children, then deletes the blossom.
//
// endstage=false is the delta-4, mid-BFS expansion: the blossom's own
// internal matching is untouched, only the alternating-tree labels one
// level down need rebuilding so BFS can keep exploring through it.
func (m *matcher) expandBlossom(id int, entryVertex string, endstage bool) error {
	b := m.blossoms[id]
	if b.trivial {
		return invariantf("expandBlossom called on a trivial blossom", map[string]any{"blossom": id})
	}
	entryIndex := -1
	for i, c := range b.children {
		if m.directChildOf(id, entryVertex) == c {
			entryIndex = i
			break
		}
	}
	if entryIndex < 0 {
		return invariantf("entry vertex not found among blossom children", map[string]any{"blossom": id, "entry": entryVertex})
	}

	for _, c := range b.children {
		m.blossoms[c].parent = -1
		if endstage {
			m.blossoms[c].label = labelNone
			m.blossoms[c].labelEnd = ""
			m.blossoms[c].labelEdgeVertex = ""
		}
	}
	for _, c := range b.children {
		for _, leaf := range m.blossomLeaves(c) {
			m.inBlossom[leaf] = c
		}
	}

	if endstage {
		if entryChild := b.children[entryIndex]; !m.blossoms[entryChild].trivial {
			if err := m.expandBlossom(entryChild, entryVertex, true); err != nil {
				return err
			}
		}
		if err := m.expandEndstageWalk(b, entryIndex); err != nil {
			return err
		}
		delete(m.blossoms, id)
		return nil
	}

	if err := m.expandRelabelWalk(b, entryIndex); err != nil {
		return err
	}
	delete(m.blossoms, id)
	return nil
}

func (m *matcher) expandEndstageWalk(b *blossomState, entryIndex int) error {
	n := len(b.children)
	dir := 1
	if entryIndex%2 == 0 {
		dir = -1
	}
	j := entryIndex
	for steps := 0; j != 0; steps++ {
		if steps > maxChainSteps {
			return invariantf("blossom endstage expansion walk did not terminate", map[string]any{"blossom": b.id})
		}
		j = ((j+dir)%n + n) % n
		jNext := ((j+dir)%n + n) % n

		var edge edgePair
		if dir == 1 {
			edge = b.edges[j]
		} else {
			e := b.edges[jNext]
			edge = edgePair{A: e.B, B: e.A}
		}
		firstChild, secondChild := b.children[j], b.children[jNext]
		if !m.blossoms[firstChild].trivial {
			if err := m.expandBlossom(firstChild, edge.A, true); err != nil {
				return err
			}
		}
		if !m.blossoms[secondChild].trivial {
			if err := m.expandBlossom(secondChild, edge.B, true); err != nil {
				return err
			}
		}
		m.mate[edge.A] = edge.B
		m.mate[edge.B] = edge.A

		j = jNext
	}
	return nil
}

// expandRelabelWalk is the endstage=false path: phase 1 transfers the
// outer blossom's own label attachment onto the entry child (which
// cascades, via assignLabel's T-case, to S-label the next child along the
// cycle); phase 2 scans the remaining children's leaves for any edge
// reaching an already S-labelled vertex elsewhere in the forest and
// T-labels them too, so the alternating tree stays fully connected through
// the now-expanded blossom.
func (m *matcher) expandRelabelWalk(b *blossomState, entryIndex int) error {
	labelled := map[int]bool{}
	if b.label == labelT {
		entryChild := b.children[entryIndex]
		if err := m.assignLabel(b.labelEdgeVertex, labelT, b.labelEnd); err != nil {
			return err
		}
		labelled[entryChild] = true
		if nextIdx := (entryIndex + 1) % len(b.children); true {
			labelled[b.children[nextIdx]] = true
		}
	}

	for _, c := range b.children {
		if labelled[c] {
			continue
		}
		for _, leaf := range m.blossomLeaves(c) {
			attached := false
			for _, w := range m.g.Neighbors(leaf) {
				topW := m.topLevelOf(w)
				if m.blossoms[topW].label == labelS {
					if err := m.assignLabel(leaf, labelT, w); err != nil {
						return err
					}
					attached = true
					break
				}
			}
			if attached {
				break
			}
		}
	}
	return nil
}
