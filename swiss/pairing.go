package swiss

import (
	"io"
	"log/slog"
	"sort"

	"github.com/mkeverything/mktour-pairing/blossom"
)

// GenerateWeightedPairing produces one round's pairings for players,
// reducing the problem to a weighted general-graph matching and decoding
// the result. It returns CardinalityValidationError if the compatibility
// graph under C1+C3 was not connected enough to pair everyone.
func GenerateWeightedPairing(players []Player, round int, opts ...Option) (Result, error) {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.logger == nil {
		cfg.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if cfg.opponentUniverse == nil {
		known := make(map[PlayerID]bool, len(players))
		for _, p := range players {
			known[p.ID] = true
		}
		cfg.opponentUniverse = func(id PlayerID) bool { return known[id] }
	}

	if round < 1 {
		return Result{}, ErrInvalidRound
	}
	if err := validatePlayers(players, cfg); err != nil {
		return Result{}, err
	}

	ctx := buildContext(players, round)
	cfg.logger.Debug("built pairing context",
		"round", round, "playerCount", ctx.PlayerCount, "odd", ctx.Odd)

	g, err := BuildWeightedGraph(ctx, players)
	if err != nil {
		return Result{}, err
	}

	mates, err := blossom.MaximumWeightMatching(g, true)
	if err != nil {
		return Result{}, err
	}

	expected := ctx.PlayerCount
	if ctx.Odd {
		expected++
	}
	actual := 0
	for _, mate := range mates {
		if mate != "" {
			actual++
		}
	}
	if actual != expected {
		return Result{}, &CardinalityValidationError{Expected: expected, Actual: actual}
	}

	return decode(players, mates), nil
}

func validatePlayers(players []Player, cfg *config) error {
	seen := make(map[int]bool, len(players))
	for _, p := range players {
		if seen[p.PairingNumber] {
			return ErrDuplicatePairingNumber
		}
		seen[p.PairingNumber] = true
		for _, g := range p.PreviousGames {
			if !cfg.opponentUniverse(g.OpponentID) {
				return ErrUnknownOpponent
			}
		}
	}
	return nil
}

func buildContext(players []Player, round int) *Context {
	ctx := &Context{
		Round:          round,
		PlayerCount:    len(players),
		K:              len(players) / 2,
		Odd:            len(players)%2 == 1,
		ScoreGroupSize: make(map[int]int),
	}
	for _, p := range players {
		if p.Score.Half > ctx.MaxScore.Half {
			ctx.MaxScore = p.Score
		}
		ctx.ScoreGroupSize[p.Score.Half]++
	}
	return ctx
}

// decode walks players in pairing-number order, skipping already-visited
// ones, turning each matched pair into a ColouredPair (or, when the mate is
// the PAB node, into Result.Bye). Iterating players rather than ranging the
// mates map (whose Go map iteration order is randomized) is what makes
// Result.Pairs deterministic across runs on identical input.
func decode(players []Player, mates map[string]string) Result {
	byID := make(map[PlayerID]Player, len(players))
	for _, p := range players {
		byID[p.ID] = p
	}

	ordered := make([]Player, len(players))
	copy(ordered, players)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].PairingNumber < ordered[j].PairingNumber })

	var res Result
	visited := make(map[string]bool, len(ordered))
	for _, p := range ordered {
		v := string(p.ID)
		if visited[v] {
			continue
		}
		mate, ok := mates[v]
		if !ok || mate == "" {
			continue
		}
		visited[v] = true
		visited[mate] = true

		if mate == pabNodeID {
			id := p.ID
			res.Bye = &id
			continue
		}

		w := byID[PlayerID(mate)]
		white, black := AssignColour(p, w)
		res.Pairs = append(res.Pairs, ColouredPair{White: white, Black: black})
	}
	return res
}
