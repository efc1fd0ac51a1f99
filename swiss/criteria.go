package swiss

import (
	"math/big"
	"sort"
)

// EdgeKind distinguishes a regular player-player edge from a PAB
// (pairing-allocated-bye) edge in the compatibility graph.
type EdgeKind int

const (
	EdgeRegular EdgeKind = iota
	EdgePAB
)

// IsTopscorer reports whether p's score exceeds 50% of the maximum score
// in play this round, per the GLOSSARY's topscorer definition. Comparing
// in half-point units (p.Score.Half*2 > ctx.MaxScore.Half) avoids a
// floating-point half-point edge case at exactly 50%.
func IsTopscorer(ctx *Context, p Player) bool {
	return p.Score.Half*2 > ctx.MaxScore.Half
}

// noRepeatOpponents is FIDE C1: the pair's opponent lists must not intersect.
func noRepeatOpponents(u, v Player) bool {
	for _, g := range u.PreviousGames {
		if g.OpponentID == v.ID {
			return false
		}
	}
	for _, g := range v.PreviousGames {
		if g.OpponentID == u.ID {
			return false
		}
	}
	return true
}

// absoluteColourDue reports the colour p is absolutely due, if any. A
// ColourIndex magnitude of 2 or more means p has already been unbalanced by
// two games and must not be pushed further; magnitude 1 is only a strong
// preference (C13, a quality criterion) and does not block pairing.
func absoluteColourDue(p Player) (ColourPlayed, bool) {
	switch {
	case p.ColourIndex <= -2:
		return ColourWhite, true
	case p.ColourIndex >= 2:
		return ColourBlack, true
	}
	return ColourNone, false
}

// colourCompatible is FIDE C3 (with C9 folded in, per FIDE Dutch System
// Handbook semantics): the pair is inadmissible only when both players have
// an absolute colour need and those needs clash, unless both are
// topscorers, in which case the absolute constraint may be relaxed to keep
// the top bracket pairable.
func colourCompatible(ctx *Context, u, v Player) bool {
	uDue, uAbs := absoluteColourDue(u)
	vDue, vAbs := absoluteColourDue(v)
	if !uAbs || !vAbs {
		return true
	}
	if IsTopscorer(ctx, u) && IsTopscorer(ctx, v) {
		return true
	}
	return uDue != vDue
}

// Admissible reports whether u and v may be paired at all: FIDE C1 and C3.
// This is the hard filter behind which compatibility-graph edges exist.
func Admissible(ctx *Context, u, v Player) bool {
	return noRepeatOpponents(u, v) && colourCompatible(ctx, u, v)
}

// PABEligible reports whether p may receive the pairing-allocated bye.
func PABEligible(p Player) bool {
	return !p.ReceivedBye
}

// isMDP reports whether u is the moved-down player relative to v: u's score
// is strictly higher, so u is being paired below its own bracket.
func isMDP(u, v Player) bool {
	return u.Score.Half > v.Score.Half
}

func sameColourStreak(p Player, c ColourPlayed) int {
	games := make([]PreviousGame, len(p.PreviousGames))
	copy(games, p.PreviousGames)
	sort.Slice(games, func(i, j int) bool { return games[i].RoundNumber > games[j].RoundNumber })
	streak := 0
	for _, g := range games {
		if g.ColourPlayed != c {
			break
		}
		streak++
	}
	return streak
}

// Violations is the per-pair C10-C21 violation table ComputeViolations
// fills in, given the colour assignment AssignColour would make for this
// pair. C10-C17 are violator counts (0, 1, or 2); C18-C21 are score-gap
// magnitudes in half points, populated only alongside their paired
// count criterion.
type Violations struct {
	C10, C11, C12, C13 int
	C14, C15, C16, C17 int
	C18, C19, C20, C21 int
}

// ComputeViolations evaluates the C10-C21 quality predicates for a pair
// already known to be Admissible.
func ComputeViolations(ctx *Context, u, v Player) Violations {
	white, _ := AssignColour(u, v)
	var vio Violations
	for _, p := range []Player{u, v} {
		assignedWhite := p.ID == white
		dueWhite := p.ColourIndex < 0
		dueBlack := p.ColourIndex > 0
		gotDue := (dueWhite && assignedWhite) || (dueBlack && !assignedWhite)
		if (dueWhite || dueBlack) && !gotDue {
			vio.C12++
			if abs(p.ColourIndex) >= 1 {
				vio.C13++
			}
		}
		if !IsTopscorer(ctx, p) {
			continue
		}
		newIndex := p.ColourIndex
		if assignedWhite {
			newIndex++
		} else {
			newIndex--
		}
		if abs(newIndex) > 2 {
			vio.C10++
		}
		wantColour := ColourBlack
		if assignedWhite {
			wantColour = ColourWhite
		}
		if sameColourStreak(p, wantColour) >= 2 {
			vio.C11++
		}
	}

	var mdp, resident Player
	switch {
	case isMDP(u, v):
		mdp, resident = u, v
	case isMDP(v, u):
		mdp, resident = v, u
	default:
		return vio
	}
	diff := mdp.Score.Half - resident.Score.Half
	if DownfloatedInRound(mdp, ctx.Round-1) {
		vio.C14 = 1
		vio.C18 = diff
	}
	if DownfloatedInRound(mdp, ctx.Round-2) {
		vio.C16 = 1
		vio.C20 = diff
	}
	if UpfloatedInRound(resident, ctx.Round-1) {
		vio.C15 = 1
		vio.C19 = diff
	}
	if UpfloatedInRound(resident, ctx.Round-2) {
		vio.C17 = 1
		vio.C21 = diff
	}
	return vio
}

// Input is the argument a Criterion's Penalty function receives.
type Input struct {
	Ctx  *Context
	U, V Player
}

// Criterion is one entry in the priority-ordered weight-encoding table.
// PerEdgeMax bounds Penalty's return value for a given Context, which the
// mixed-radix encoder (weight.go) needs to size each criterion's base.
type Criterion struct {
	Name       string
	AppliesTo  EdgeKind
	PerEdgeMax func(*Context) *big.Int
	Penalty    func(Input) *big.Int
}

func bigN(n int) *big.Int { return big.NewInt(int64(n)) }

// DefaultCriteria returns the 16 FIDE-priority-ordered criteria this
// package encodes into edge weight: C5, SCORE_TIER, C9, C10..C21, RANKING.
//
// C5 and C9 are placeholders at their named priority slot: C5 (maximum
// pairs in the top bracket) is already guaranteed structurally by calling
// blossom.MaximumWeightMatching with maxCardinality=true, and C9 is folded
// into the Admissible hard filter (see colourCompatible) rather than
// scored here — both always contribute zero so they hold their position
// in the mixed-radix base/mult chain without double-counting.
func DefaultCriteria() []Criterion {
	zero := func(*Context) *big.Int { return big.NewInt(0) }
	zeroPenalty := func(Input) *big.Int { return big.NewInt(0) }

	return []Criterion{
		{Name: "C5", AppliesTo: EdgeRegular, PerEdgeMax: zero, Penalty: zeroPenalty},
		{
			Name:      "SCORE_TIER",
			AppliesTo: EdgeRegular,
			PerEdgeMax: func(ctx *Context) *big.Int { return bigN(ctx.MaxScore.Half) },
			Penalty: func(in Input) *big.Int {
				d := in.U.Score.Half - in.V.Score.Half
				if d < 0 {
					d = -d
				}
				return bigN(d)
			},
		},
		{Name: "C9", AppliesTo: EdgeRegular, PerEdgeMax: zero, Penalty: zeroPenalty},
		{
			Name:       "C10",
			AppliesTo:  EdgeRegular,
			PerEdgeMax: func(*Context) *big.Int { return bigN(2) },
			Penalty:    func(in Input) *big.Int { return bigN(ComputeViolations(in.Ctx, in.U, in.V).C10) },
		},
		{
			Name:       "C11",
			AppliesTo:  EdgeRegular,
			PerEdgeMax: func(*Context) *big.Int { return bigN(2) },
			Penalty:    func(in Input) *big.Int { return bigN(ComputeViolations(in.Ctx, in.U, in.V).C11) },
		},
		{
			Name:       "C12",
			AppliesTo:  EdgeRegular,
			PerEdgeMax: func(*Context) *big.Int { return bigN(2) },
			Penalty:    func(in Input) *big.Int { return bigN(ComputeViolations(in.Ctx, in.U, in.V).C12) },
		},
		{
			Name:       "C13",
			AppliesTo:  EdgeRegular,
			PerEdgeMax: func(*Context) *big.Int { return bigN(2) },
			Penalty:    func(in Input) *big.Int { return bigN(ComputeViolations(in.Ctx, in.U, in.V).C13) },
		},
		{
			Name:       "C14",
			AppliesTo:  EdgeRegular,
			PerEdgeMax: func(*Context) *big.Int { return bigN(1) },
			Penalty:    func(in Input) *big.Int { return bigN(ComputeViolations(in.Ctx, in.U, in.V).C14) },
		},
		{
			Name:       "C15",
			AppliesTo:  EdgeRegular,
			PerEdgeMax: func(*Context) *big.Int { return bigN(1) },
			Penalty:    func(in Input) *big.Int { return bigN(ComputeViolations(in.Ctx, in.U, in.V).C15) },
		},
		{
			Name:       "C16",
			AppliesTo:  EdgeRegular,
			PerEdgeMax: func(*Context) *big.Int { return bigN(1) },
			Penalty:    func(in Input) *big.Int { return bigN(ComputeViolations(in.Ctx, in.U, in.V).C16) },
		},
		{
			Name:       "C17",
			AppliesTo:  EdgeRegular,
			PerEdgeMax: func(*Context) *big.Int { return bigN(1) },
			Penalty:    func(in Input) *big.Int { return bigN(ComputeViolations(in.Ctx, in.U, in.V).C17) },
		},
		{
			Name:       "C18",
			AppliesTo:  EdgeRegular,
			PerEdgeMax: func(ctx *Context) *big.Int { return bigN(ctx.MaxScore.Half) },
			Penalty:    func(in Input) *big.Int { return bigN(ComputeViolations(in.Ctx, in.U, in.V).C18) },
		},
		{
			Name:       "C19",
			AppliesTo:  EdgeRegular,
			PerEdgeMax: func(ctx *Context) *big.Int { return bigN(ctx.MaxScore.Half) },
			Penalty:    func(in Input) *big.Int { return bigN(ComputeViolations(in.Ctx, in.U, in.V).C19) },
		},
		{
			Name:       "C20",
			AppliesTo:  EdgeRegular,
			PerEdgeMax: func(ctx *Context) *big.Int { return bigN(ctx.MaxScore.Half) },
			Penalty:    func(in Input) *big.Int { return bigN(ComputeViolations(in.Ctx, in.U, in.V).C20) },
		},
		{
			Name:       "C21",
			AppliesTo:  EdgeRegular,
			PerEdgeMax: func(ctx *Context) *big.Int { return bigN(ctx.MaxScore.Half) },
			Penalty:    func(in Input) *big.Int { return bigN(ComputeViolations(in.Ctx, in.U, in.V).C21) },
		},
		{
			Name:       "RANKING",
			AppliesTo:  EdgeRegular,
			PerEdgeMax: func(ctx *Context) *big.Int { return bigN(ctx.PlayerCount) },
			Penalty: func(in Input) *big.Int {
				if in.U.Score.Half != in.V.Score.Half {
					return bigN(in.Ctx.PlayerCount)
				}
				actual := in.U.PairingNumber - in.V.PairingNumber
				if actual < 0 {
					actual = -actual
				}
				ideal := in.Ctx.ScoreGroupSize[in.U.Score.Half] / 2
				diff := actual - ideal
				if diff < 0 {
					diff = -diff
				}
				return bigN(diff)
			},
		},
	}
}
