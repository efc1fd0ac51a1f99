package swiss

import "math/big"

// multipliers holds, for a fixed Context, the mixed-radix base and
// multiplier arrays described in spec.md §4.H: K = floor(N/2), base[i] =
// K*perEdgeMax[i]+1, and mult built right-to-left so that mult[i] is the
// product of every base strictly below it in priority. A criterion's
// weight contribution on an edge is (perEdgeMax[i]-penalty[i]) * mult[i];
// the K*perEdgeMax+1 base guarantees that no matching's cumulative
// contribution from criteria below priority i can ever overtake a one-unit
// change in criterion i's own contribution, so summing per-edge weights
// across a whole matching preserves strict lexicographic ordering.
type multipliers struct {
	criteria []Criterion
	perMax   []*big.Int
	base     []*big.Int
	mult     []*big.Int
}

func newMultipliers(ctx *Context, criteria []Criterion) *multipliers {
	k := bigN(ctx.K)
	n := len(criteria)
	perMax := make([]*big.Int, n)
	base := make([]*big.Int, n)
	mult := make([]*big.Int, n)

	for i, c := range criteria {
		perMax[i] = c.PerEdgeMax(ctx)
		base[i] = new(big.Int).Mul(k, perMax[i])
		base[i].Add(base[i], big.NewInt(1))
	}
	running := big.NewInt(1)
	for i := n - 1; i >= 0; i-- {
		mult[i] = new(big.Int).Set(running)
		running = new(big.Int).Mul(running, base[i])
	}
	return &multipliers{criteria: criteria, perMax: perMax, base: base, mult: mult}
}

// contribution returns the weight this multiplier table's criteria at
// index i add to an edge given penalty.
func (m *multipliers) contribution(i int, penalty *big.Int) *big.Int {
	c := new(big.Int).Sub(m.perMax[i], penalty)
	return c.Mul(c, m.mult[i])
}

// regularEdgeWeight sums every EdgeRegular criterion's contribution for a
// player pair already known to be Admissible.
func (m *multipliers) regularEdgeWeight(ctx *Context, u, v Player) *big.Int {
	total := big.NewInt(0)
	in := Input{Ctx: ctx, U: u, V: v}
	for i, c := range m.criteria {
		if c.AppliesTo != EdgeRegular {
			continue
		}
		total.Add(total, m.contribution(i, c.Penalty(in)))
	}
	return total
}

// pabEdgeWeight scores a PAB-node-to-player edge. Spec.md §4.H calls for
// "the sum of weight contributions for all PAB-edge criteria" without
// enumerating any — FIDE's bye rule (lowest-ranked eligible player gets
// it) is the one PAB-specific rule this module adds, encoded at the
// RANKING criterion's multiplier so it never outweighs any C5..C21
// decision made among the regular edges it competes against in the
// matching.
func (m *multipliers) pabEdgeWeight(ctx *Context, p Player) *big.Int {
	rankingIdx := len(m.criteria) - 1
	// The contribution grows with PairingNumber: the lowest-ranked eligible
	// player (highest PairingNumber) is the one FIDE wants byed, so that
	// player's edge must carry the largest contribution. Using PairingNumber
	// directly as the contribution (not as a penalty fed to contribution(),
	// and not PlayerCount-PairingNumber) gives the top-ranked player
	// (PairingNumber 0) a zero contribution and the bottom-ranked player the
	// maximal one.
	c := bigN(p.PairingNumber)
	return new(big.Int).Mul(c, m.mult[rankingIdx])
}
