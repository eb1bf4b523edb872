// Package distance provides option and error definitions for the
// distance-to-sink engine.
package distance

import (
	"context"
	"errors"
)

// Sentinel errors for distance computation and generation iteration.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("distance: graph is nil")

	// ErrNoSink is returned when the graph has no designated terminal
	// sink: nothing is designated, the designated node is absent, or the
	// designated node still has outgoing edges.
	ErrNoSink = errors.New("distance: no designated terminal sink")

	// ErrMultipleSinks is returned when more than one node has zero
	// outgoing edges; the CEG pipeline requires a unique accumulation node.
	ErrMultipleSinks = errors.New("distance: multiple sink-like nodes")

	// ErrCycle is returned when the graph is not a DAG.
	ErrCycle = errors.New("distance: cycle detected")

	// ErrDistancesUnset is returned by the generation iterator when some
	// node has no computed distance (run UpdateDistancesToSink first).
	ErrDistancesUnset = errors.New("distance: distances not computed")

	// ErrNegativeStart is returned when a generation iterator is requested
	// with a negative starting distance.
	ErrNegativeStart = errors.New("distance: negative start distance")
)

// Option configures distance computation via functional arguments.
type Option func(*options)

// options holds settings for UpdateDistancesToSink, currently only
// cancellation.
type options struct {
	ctx context.Context // allows cancellation; defaults to Background
}

// defaultOptions returns the default options (Background context).
func defaultOptions() options {
	return options{ctx: context.Background()}
}

// WithContext returns an Option that sets the cancellation context.
// Passing a nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}
