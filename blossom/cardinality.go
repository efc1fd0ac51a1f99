package blossom

// MaximumMatching returns a maximum-cardinality matching of g as a map from
// every vertex to its mate, or "" for an unmatched vertex. It never fails:
// at worst it returns the best matching it found. Callers that require
// every vertex matched must check the result themselves (the swiss package
// does exactly this and turns a shortfall into CardinalityValidationError).
func MaximumMatching(g *Graph) (result map[string]string, err error) {
	defer func() {
		if r := recover(); r != nil {
			if ie, ok := r.(error); ok {
				err = ie
				return
			}
			panic(r)
		}
	}()

	m := newMatcher(g, false)
	for {
		m.resetForStage()
		for _, v := range m.vertexOrder {
			if m.mate[v] == "" {
				if err := m.assignLabel(v, labelS, ""); err != nil {
					return nil, err
				}
			}
		}
		augmented, err := m.cardinalityStage()
		if err != nil {
			return nil, err
		}
		if !augmented {
			break
		}
	}
	return m.resultMates(), nil
}

// cardinalityStage runs one BFS/augment round: drains the queue, creating
// blossoms on same-tree S-S edges and augmenting on cross-tree ones. It
// returns augmented=true as soon as an augmenting path is applied.
func (m *matcher) cardinalityStage() (augmented bool, err error) {
	for len(m.queue) > 0 {
		v := m.queue[0]
		m.queue = m.queue[1:]

		res, err := m.scanAndLabelNeighbors(v, nil)
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
	return false, nil
}
