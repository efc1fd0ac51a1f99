package blossom

// maxChainSteps bounds every blossom-chain/root walk. A legitimate parent
// chain or alternating-tree path is never longer than the vertex count; any
// walk exceeding this is a cycle in the data, i.e. a bug, not a big input.
const maxChainSteps = 1 << 20

// topLevelOf returns the top-level blossom id currently containing v,
// following the blossom-parent chain from inBlossom[v].
func (m *matcher) topLevelOf(v string) int {
	b := m.inBlossom[v]
	for steps := 0; m.blossoms[b].parent != -1; steps++ {
		if steps > maxChainSteps {
			panic(invariantf("blossom-parent chain did not terminate", map[string]any{"vertex": v}))
		}
		b = m.blossoms[b].parent
	}
	return b
}

// baseOfTopLevel returns the base vertex of v's top-level blossom and that
// blossom's id.
func (m *matcher) baseOfTopLevel(v string) (base string, top int) {
	top = m.topLevelOf(v)
	return m.blossoms[top].base, top
}

// blossomLeaves collects, via DFS, every vertex contained (directly or
// through nested children) in blossom b.
func (m *matcher) blossomLeaves(b int) []string {
	bl := m.blossoms[b]
	if bl.trivial {
		return []string{bl.vertex}
	}
	var out []string
	for _, c := range bl.children {
		out = append(out, m.blossomLeaves(c)...)
	}
	return out
}

// directChildOf walks v's blossom-parent chain upward, starting from v's
// trivial blossom (whose id is v's vertex index), until it finds the node
// whose parent is b: that node is b's direct child containing v. Used
// during blossom expansion, where inBlossom is not usable: it holds v's
// top-level blossom, which is b itself or one of b's ancestors.
func (m *matcher) directChildOf(b int, v string) int {
	x := m.vertexIndex[v]
	for steps := 0; m.blossoms[x].parent != b; steps++ {
		if steps > maxChainSteps {
			panic(invariantf("blossom-parent chain did not reach expected ancestor", map[string]any{"vertex": v, "ancestor": b}))
		}
		x = m.blossoms[x].parent
	}
	return x
}

// isRoot reports whether top-level blossom b is an alternating-tree root:
// S-labelled with no attachment edge back toward a parent tree.
func (m *matcher) isRoot(b int) bool {
	bl := m.blossoms[b]
	return bl.label == labelS && bl.labelEnd == ""
}

// buildPathToRoot walks from v's top-level blossom toward the root of its
// alternating tree, following labelEnd. It returns the sequence of blossom
// ids visited (starting with v's own top-level blossom, ending at the root)
// and the connecting edges consumed along the way (one fewer than the
// number of blossoms).
func (m *matcher) buildPathToRoot(v string) (path []int, edges []edgePair) {
	b := m.topLevelOf(v)
	for steps := 0; ; steps++ {
		if steps > maxChainSteps {
			panic(invariantf("alternating-tree path did not terminate", map[string]any{"vertex": v}))
		}
		path = append(path, b)
		bl := m.blossoms[b]
		if bl.labelEnd == "" {
			return path, edges
		}
		edges = append(edges, edgePair{A: bl.labelEdgeVertex, B: bl.labelEnd})
		b = m.topLevelOf(bl.labelEnd)
	}
}

// lowestCommonAncestor finds the first blossom shared by u's and w's paths
// to their respective tree roots. Returns ok=false if the two vertices
// belong to different alternating trees (reaching two distinct roots).
func (m *matcher) lowestCommonAncestor(u, w string) (lca int, ok bool) {
	pathU, _ := m.buildPathToRoot(u)
	seen := make(map[int]bool, len(pathU))
	for _, b := range pathU {
		seen[b] = true
	}
	b := m.topLevelOf(w)
	for steps := 0; ; steps++ {
		if steps > maxChainSteps {
			panic(invariantf("alternating-tree path did not terminate", map[string]any{"vertex": w}))
		}
		if seen[b] {
			return b, true
		}
		bl := m.blossoms[b]
		if bl.labelEnd == "" {
			return -1, false
		}
		b = m.topLevelOf(bl.labelEnd)
	}
}

// assignLabel labels v's top-level blossom. A label of labelS pushes the
// blossom's base onto the BFS queue. A label of labelT immediately recurses
// to S-label the base's mate -- this is what couples a T-blossom to the
// S-blossom it is matched to, and is how the mate's base reaches the queue.
func (m *matcher) assignLabel(v string, lb label, labelEnd string) error {
	b := m.topLevelOf(v)
	bl := m.blossoms[b]
	if bl.label != labelNone {
		return invariantf("relabelling an already-labelled blossom", map[string]any{"vertex": v, "blossom": b, "existing_label": bl.label})
	}
	bl.label = lb
	bl.labelEnd = labelEnd
	if labelEnd != "" {
		bl.labelEdgeVertex = v
	} else {
		bl.labelEdgeVertex = ""
	}
	switch lb {
	case labelS:
		m.queue = append(m.queue, bl.base)
	case labelT:
		mate, ok := m.mate[bl.base]
		if !ok || mate == "" {
			return invariantf("T-labelled blossom has no mate for its base", map[string]any{"blossom": b, "base": bl.base})
		}
		return m.assignLabel(mate, labelS, bl.base)
	}
	return nil
}

type scanOutcome int

const (
	scanContinue scanOutcome = iota
	scanAugment
	scanSameTreeOrDifferent
)

// scanResult is what scanAndLabelNeighbors found while walking v's
// neighbours, handed back to the caller to decide between blossom creation
// and augmentation (an S-S edge can mean either, depending on whether the
// two endpoints share a root).
type scanResult struct {
	outcome scanOutcome
	u, w    string
}

// scanAndLabelNeighbors walks v's neighbours (v assumed S-labelled and just
// popped off the BFS queue). tight, if non-nil, filters out non-tight edges
// before any other processing (used by the weighted matcher; the
// cardinality matcher passes nil to consider every edge).
func (m *matcher) scanAndLabelNeighbors(v string, tight func(u, w string) bool) (scanResult, error) {
	for _, w := range m.g.Neighbors(v) {
		if tight != nil && !tight(v, w) {
			continue
		}
		topV := m.topLevelOf(v)
		topW := m.topLevelOf(w)
		if topV == topW {
			continue
		}
		switch m.blossoms[topW].label {
		case labelNone:
			if m.mate[w] == "" {
				return scanResult{outcome: scanAugment, u: v, w: w}, nil
			}
			if err := m.assignLabel(w, labelT, v); err != nil {
				return scanResult{}, err
			}
		case labelS:
			return scanResult{outcome: scanSameTreeOrDifferent, u: v, w: w}, nil
		}
	}
	return scanResult{outcome: scanContinue}, nil
}
