package swiss

// AssignColour decides who plays white under the FIDE C.04.2 colour rule,
// given two players already known to be paired. Resolution order:
//  1. The player with the stronger due-colour preference (larger
//     |ColourIndex|) gets that colour; ColourIndex < 0 means "due white",
//     > 0 means "due black".
//  2. If both are due the same colour with equal magnitude (or neither has
//     a preference), alternate relative to whichever colour each played
//     most recently: whoever played white least recently gets white.
//  3. If history still ties (e.g. round 1, no games played), the lower
//     PairingNumber gets white — a deterministic, FIDE-sanctioned fallback
//     ("topscorer" special-casing happens upstream, in criteria.go's C10).
func AssignColour(p, q Player) (white, black PlayerID) {
	switch {
	case p.ColourIndex < 0 && q.ColourIndex >= 0:
		return p.ID, q.ID
	case q.ColourIndex < 0 && p.ColourIndex >= 0:
		return q.ID, p.ID
	case p.ColourIndex < 0 && q.ColourIndex < 0 && p.ColourIndex != q.ColourIndex:
		// Both due white; the larger magnitude (longer black streak) wins.
		if abs(p.ColourIndex) > abs(q.ColourIndex) {
			return p.ID, q.ID
		}
		return q.ID, p.ID
	case p.ColourIndex > 0 && q.ColourIndex <= 0:
		return q.ID, p.ID
	case q.ColourIndex > 0 && p.ColourIndex <= 0:
		return p.ID, q.ID
	case p.ColourIndex > 0 && q.ColourIndex > 0 && p.ColourIndex != q.ColourIndex:
		if abs(p.ColourIndex) > abs(q.ColourIndex) {
			return q.ID, p.ID
		}
		return p.ID, q.ID
	}

	// Neither player has a stronger colour preference (no preference, or
	// equal indices): fall back to most-recent colour played, then
	// PairingNumber.
	pLast, pOK := lastColour(p)
	qLast, qOK := lastColour(q)
	switch {
	case pOK && qOK && pLast != qLast:
		if pLast == ColourBlack {
			return p.ID, q.ID
		}
		return q.ID, p.ID
	default:
		if p.PairingNumber <= q.PairingNumber {
			return p.ID, q.ID
		}
		return q.ID, p.ID
	}
}

func lastColour(p Player) (ColourPlayed, bool) {
	best := -1
	var c ColourPlayed
	for _, g := range p.PreviousGames {
		if g.RoundNumber > best {
			best = g.RoundNumber
			c = g.ColourPlayed
		}
	}
	return c, best >= 0
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
