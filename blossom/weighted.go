package blossom

import "math/big"

// MaximumWeightMatching returns a maximum-weight matching of g. When
// maxCardinality is true (the common case for the Swiss driver), the result
// is the maximum-weight matching among all matchings of maximum cardinality;
// when false, it is simply the maximum-weight matching overall, which may
// leave more vertices unmatched than a cardinality-first search would.
//
// g is never mutated: MaximumWeightMatching clones it and doubles the clone's
// weights once at entry, so every slack computation stays integral even
// after the delta-2 halving step.
func MaximumWeightMatching(g *Graph, maxCardinality bool) (result map[string]string, err error) {
	defer func() {
		if r := recover(); r != nil {
			if ie, ok := r.(error); ok {
				err = ie
				return
			}
			panic(r)
		}
	}()

	work := g.Clone()
	two := big.NewInt(2)
	for _, e := range work.Edges() {
		e.Weight.Mul(e.Weight, two)
	}

	m := newMatcher(work, true)
	maxW := maxEdgeWeight(work)
	for _, v := range m.vertexOrder {
		m.vertexDual[v] = new(big.Int).Set(maxW)
	}

	for {
		m.resetForStage()
		for _, v := range m.vertexOrder {
			if m.mate[v] == "" {
				if err := m.assignLabel(v, labelS, ""); err != nil {
					return nil, err
				}
			}
		}
		augmented, err := m.weightedStage(maxCardinality)
		if err != nil {
			return nil, err
		}
		if !augmented {
			break
		}
	}
	return m.resultMates(), nil
}

// weightedStage runs BFS over tight edges only; when the queue stalls it
// computes the minimum delta, applies it (expanding a blossom if that was
// the kind of progress found), rebuilds the queue from every currently
// S-labelled vertex, and resumes -- until an augmenting path is found or no
// further delta can make progress.
func (m *matcher) weightedStage(maxCardinality bool) (augmented bool, err error) {
	for {
		for len(m.queue) > 0 {
			v := m.queue[0]
			m.queue = m.queue[1:]

			res, err := m.scanAndLabelNeighbors(v, m.isEdgeTight)
			if err != nil {
				return false, err
			}
			switch res.outcome {
			case scanAugment:
				if err := m.augmentMatching(res.u, res.w); err != nil {
					return false, err
				}
				return true, nil
			case scanSameTreeOrDifferent:
				lca, ok := m.lowestCommonAncestor(res.u, res.w)
				if ok {
					if err := m.addBlossom(res.u, res.w); err != nil {
						return false, err
					}
					m.queue = append(m.queue, res.u)
				} else {
					if err := m.augmentMatching(res.u, res.w); err != nil {
						return false, err
					}
					return true, nil
				}
				_ = lca
			}
		}

		best, ok := m.minDelta()
		if !ok {
			return false, nil
		}
		if !maxCardinality {
			if bound := m.terminationBound(); bound != nil && bound.Cmp(best.value) <= 0 {
				return false, nil
			}
		}
		m.applyDualUpdate(best.value)
		if best.kind == deltaBlossom {
			bl := m.blossoms[best.blossomID]
			if err := m.expandBlossom(best.blossomID, bl.labelEdgeVertex, false); err != nil {
				return false, err
			}
		}

		m.queue = nil
		for _, v := range m.vertexOrder {
			if m.blossoms[m.topLevelOf(v)].label == labelS {
				m.queue = append(m.queue, v)
			}
		}
	}
}

// maxEdgeWeight returns the largest edge weight in g, or 0 if g has no
// edges. Used to initialise every vertex's starting dual so every edge
// starts with non-negative slack.
func maxEdgeWeight(g *Graph) *big.Int {
	max := big.NewInt(0)
	for _, e := range g.Edges() {
		if e.Weight.Cmp(max) > 0 {
			max = e.Weight
		}
	}
	return new(big.Int).Set(max)
}
