// Package swiss reduces one round of a FIDE Dutch System Swiss tournament to
// a weighted general-graph matching problem, solves it with package blossom,
// and decodes the result into coloured pairs plus an optional bye.
//
// The entry point is GenerateWeightedPairing: given the round's players and
// round number, it builds a compatibility graph (one node per player, plus a
// pairing-allocated-bye node for odd counts), encodes the FIDE quality
// criteria C5 through C21 plus a S1/S2 ranking tiebreaker into a single
// mixed-radix integer weight per edge (see weight.go), and calls
// blossom.MaximumWeightMatching with maxCardinality=true so the matching with
// the most pairs wins outright and the weight only orders matchings tied on
// pair count.
//
// Criteria evaluation (criteria.go), colour assignment (colour.go) and
// float-history lookups (floats.go) are all pure functions of a Player slice
// and a Context; none of this package holds state between calls.
package swiss
