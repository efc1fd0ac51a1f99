package swiss

// UpfloatedInRound reports whether p upfloated in the given round number.
func UpfloatedInRound(p Player, round int) bool {
	for _, r := range p.FloatHistory.UpfloatedRounds {
		if r == round {
			return true
		}
	}
	return false
}

// DownfloatedInRound reports whether p downfloated in the given round number.
func DownfloatedInRound(p Player, round int) bool {
	for _, r := range p.FloatHistory.DownfloatedRounds {
		if r == round {
			return true
		}
	}
	return false
}
