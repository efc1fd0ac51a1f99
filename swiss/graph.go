package swiss

import (
	"github.com/mkeverything/mktour-pairing/blossom"
	"github.com/mkeverything/mktour-pairing/core"
)

// pabNodeID names the distinguished pairing-allocated-bye vertex added to
// the compatibility graph when the round has an odd player count. The NUL
// prefix keeps it outside any realistic caller-chosen PlayerID.
const pabNodeID = "\x00pab-bye"

// BuildWeightedGraph constructs the round's compatibility graph: one
// vertex per player, a PAB vertex when ctx.Odd, a regular edge for every
// C1+C3-admissible player pair weighted by the full criteria table, and a
// PAB edge from the bye vertex to every PAB-eligible player.
//
// The graph is assembled on core.Graph, the package's general-purpose
// thread-safe graph type, and then adapted into the arena-based
// representation blossom's matcher mutates internally via
// blossom.FromCoreGraph. Routing through core.Graph rather than
// blossom.Graph directly keeps the Swiss domain's pairing-candidate graph
// expressed in terms of the shared vertex/edge model used across the
// module, instead of reimplementing graph construction against the
// matcher's internal arena.
func BuildWeightedGraph(ctx *Context, players []Player) (*blossom.Graph, error) {
	g := core.NewGraph(core.WithWeighted())
	for _, p := range players {
		if err := g.AddVertex(string(p.ID)); err != nil {
			return nil, err
		}
	}

	m := newMultipliers(ctx, DefaultCriteria())

	for i := 0; i < len(players); i++ {
		for j := i + 1; j < len(players); j++ {
			u, v := players[i], players[j]
			if !Admissible(ctx, u, v) {
				continue
			}
			w := m.regularEdgeWeight(ctx, u, v)
			if _, err := g.AddEdge(string(u.ID), string(v.ID), w); err != nil {
				return nil, err
			}
		}
	}

	if ctx.Odd {
		if err := g.AddVertex(pabNodeID); err != nil {
			return nil, err
		}
		for _, p := range players {
			if !PABEligible(p) {
				continue
			}
			if _, err := g.AddEdge(pabNodeID, string(p.ID), m.pabEdgeWeight(ctx, p)); err != nil {
				return nil, err
			}
		}
	}

	return blossom.FromCoreGraph(g)
}
