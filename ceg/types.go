// Package ceg provides phase, option and error definitions for the CEG
// orchestrator.
package ceg

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for CEG generation.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("ceg: graph is nil")

	// ErrNoRoot is returned when Generate runs on a graph without a
	// designated root node.
	ErrNoRoot = errors.New("ceg: no designated root")

	// ErrNoSink is returned when a trim or generate runs on a graph
	// without a designated sink node.
	ErrNoSink = errors.New("ceg: no designated sink")

	// ErrAlreadyGenerated is returned when Generate is invoked a second
	// time; regenerating an already-merged graph is undefined and is
	// rejected rather than guessed at.
	ErrAlreadyGenerated = errors.New("ceg: already generated")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("ceg: invalid option supplied")
)

// Phase is the orchestrator's lifecycle state.
type Phase int

// Generation proceeds strictly through these phases.
const (
	PhaseUninitialized Phase = iota
	PhaseDistancesComputed
	PhaseMerging
	PhaseTrimmed
	PhaseStable
)

// String returns the phase name for diagnostics.
func (p Phase) String() string {
	switch p {
	case PhaseUninitialized:
		return "Uninitialized"
	case PhaseDistancesComputed:
		return "DistancesComputed"
	case PhaseMerging:
		return "Merging"
	case PhaseTrimmed:
		return "Trimmed"
	case PhaseStable:
		return "Stable"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// defaultNodePrefix is the canonical relabeling prefix: root becomes
// "w0", the sink "winf", interior nodes "w1".."wN".
const defaultNodePrefix = "w"

// sinkSuffix is appended to the prefix to form the canonical sink ID.
const sinkSuffix = "inf"

// Option configures Generate via functional arguments. An invalid option
// is recorded internally and surfaced as ErrOptionViolation when Generate
// is invoked.
type Option func(*options)

// options holds the resolved Generate settings.
type options struct {
	ctx    context.Context
	prefix string
	err    error // first option violation, surfaced at call time
}

// defaultOptions returns the Generate defaults: Background context and
// the "w" node prefix.
func defaultOptions() options {
	return options{
		ctx:    context.Background(),
		prefix: defaultNodePrefix,
	}
}

// WithContext sets a custom context for cancellation.
// Passing a nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithNodePrefix overrides the canonical relabeling prefix.
// An empty prefix is an option violation.
func WithNodePrefix(prefix string) Option {
	return func(o *options) {
		if prefix == "" {
			o.err = fmt.Errorf("%w: node prefix cannot be empty", ErrOptionViolation)
			return
		}
		o.prefix = prefix
	}
}
