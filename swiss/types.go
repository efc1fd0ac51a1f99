package swiss

import "log/slog"

// PlayerID identifies a player across rounds. Any non-empty, caller-chosen
// string is valid; this package never interprets it beyond equality.
type PlayerID string

// ColourPlayed is the colour a player had in one previous game.
type ColourPlayed int

const (
	ColourNone ColourPlayed = iota
	ColourWhite
	ColourBlack
)

// Score is a FIDE score in half-point units (a draw is Half==1) so all
// comparisons and arithmetic stay in integers; Points() is a display-only
// convenience for rendering "2.5" instead of juggling halves at call sites.
type Score struct {
	Half int
}

// Points returns the score as a float, e.g. Score{Half: 5}.Points() == 2.5.
func (s Score) Points() float64 {
	return float64(s.Half) / 2
}

// PreviousGame is one game from a player's history, used to enforce C1 (no
// repeat opponents) and to derive colour and float history.
type PreviousGame struct {
	OpponentID   PlayerID
	ColourPlayed ColourPlayed
	RoundNumber  int
}

// FloatHistory records which rounds a player moved down into a lower
// scoregroup (downfloated) or up into a higher one (upfloated).
type FloatHistory struct {
	DownfloatedRounds []int
	UpfloatedRounds   []int
}

// Player is the chess-tournament entity this package consumes. PairingNumber
// is assigned upstream (score desc, then rating desc, then a deterministic
// tiebreak) and is this package's only notion of player rank.
type Player struct {
	ID            PlayerID
	PairingNumber int
	Score         Score
	ColourIndex   int // negative: due white; positive: due black; magnitude: streak length
	PreviousGames []PreviousGame
	ReceivedBye   bool
	FloatHistory  FloatHistory
}

// ColouredPair is one decoded pairing for the round.
type ColouredPair struct {
	White, Black PlayerID
}

// Result is what GenerateWeightedPairing returns: the round's pairs plus an
// optional bye recipient.
type Result struct {
	Pairs []ColouredPair
	Bye   *PlayerID
}

// Context is the weight context built once per GenerateWeightedPairing call:
// everything the criteria table needs that is not specific to one edge.
type Context struct {
	Round         int
	PlayerCount   int
	K             int // floor(PlayerCount/2), the mixed-radix base multiplier
	MaxScore      Score
	Odd           bool
	ScoreGroupSize map[int]int // Score.Half -> number of players sharing that score
}

// config holds GenerateWeightedPairing's functional-option state.
type config struct {
	logger           *slog.Logger
	opponentUniverse func(PlayerID) bool
}

// Option configures GenerateWeightedPairing.
type Option func(*config)

// WithLogger attaches structured, debug-level logging of the pairing
// process. A nil logger (the default) is replaced with a discarding one, so
// production callers pay no cost and emit nothing.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) { c.logger = l }
}

// WithOpponentUniverse overrides how a PreviousGame's OpponentID is
// validated. The default validates only against the current round's players
// slice; a caller that keeps a larger roster (e.g. players from past
// tournaments no longer active) can supply a broader membership check.
func WithOpponentUniverse(known func(PlayerID) bool) Option {
	return func(c *config) { c.opponentUniverse = known }
}
