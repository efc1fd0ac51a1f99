package blossom

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyVertexID is returned by AddVertex/AddEdge for a zero-length id.
	ErrEmptyVertexID = errors.New("blossom: empty vertex id")
	// ErrUnknownVertex is returned when an edge references a vertex not yet added.
	ErrUnknownVertex = errors.New("blossom: unknown vertex")
	// ErrSelfLoop is returned by AddEdge when from == to.
	ErrSelfLoop = errors.New("blossom: self loop not allowed")
	// ErrParallelEdge is returned by AddEdge for a repeated (from,to) pair.
	ErrParallelEdge = errors.New("blossom: parallel edge not allowed")
	// ErrDirectedGraph is returned by FromCoreGraph when the source graph is directed.
	ErrDirectedGraph = errors.New("blossom: source graph is directed")

	// ErrInvariantViolation is the sentinel every *InvariantError wraps, so
	// callers can errors.Is-match without caring about the Context payload.
	ErrInvariantViolation = errors.New("blossom: structural invariant violation")
)

// InvariantError reports a broken internal invariant: a bug in the matcher,
// not a caller mistake. Context carries whatever state was available at the
// point of detection (vertex/blossom ids, labels) to make a bug report
// actionable without attaching a debugger.
type InvariantError struct {
	Reason  string
	Context map[string]any
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("blossom: invariant violated: %s %v", e.Reason, e.Context)
}

func (e *InvariantError) Unwrap() error {
	return ErrInvariantViolation
}

func invariantf(reason string, ctx map[string]any) error {
	return &InvariantError{Reason: reason, Context: ctx}
}
