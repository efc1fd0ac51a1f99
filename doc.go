// Package mktourpairing is the pairing core behind a Swiss chess tournament
// manager: a from-scratch Edmonds' blossom matcher plus a FIDE Dutch System
// reducer built on top of it.
//
// Two tightly coupled pieces live here:
//
//	blossom/ — general-graph maximum-cardinality and maximum-weight matching
//	           (Galil/NetworkX-style blossom algorithm: nested blossoms,
//	           alternating trees, dual variables, delta updates).
//	swiss/   — reduces a round's player list to a weighted graph whose edge
//	           weights encode the FIDE C1/C3/C5..C21 priority order via a
//	           mixed-radix integer code, then decodes the blossom matcher's
//	           output into coloured pairs plus an optional bye.
//
// core/ supplies the plain undirected graph type (thread-safe, deterministic
// iteration) that both higher layers build on and that test fixtures use to
// describe small example graphs.
//
// Both blossom/ and swiss/ are pure: given identical inputs they return
// identical output, hold no package-level state, and perform no I/O. Callers
// own persistence, transport, and UI; this module only computes pairings.
//
//	go get github.com/mkeverything/mktour-pairing
package mktourpairing
