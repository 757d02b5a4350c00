// Package dijkstra defines core types and configuration options
// for single-source shortest travel times on a core.Network.
//
// Options:
//
//	– Source:       ID of the starting stop (must be non-empty and present).
//	– ReturnPath:   if true, return the predecessor map for path reconstruction.
//	– MaxDistance:  optional cap on travel time; stops beyond it stay Unreachable.
//
// Errors (sentinel):
//
//	– ErrEmptySource      if the provided source ID is empty.
//	– ErrNilNetwork       if the provided network pointer is nil.
//	– ErrSourceNotFound   if the source stop does not exist.
//	– ErrBadMaxDistance   if MaxDistance < 0.
package dijkstra

import (
	"errors"
	"fmt"
	"math"
)

// Unreachable is the distance reported for stops that were not reached.
const Unreachable int64 = math.MaxInt64

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrEmptySource indicates that the provided source stop ID is empty.
	ErrEmptySource = errors.New("dijkstra: source stop ID is empty")

	// ErrNilNetwork indicates that a nil *core.Network was passed to Dijkstra.
	ErrNilNetwork = errors.New("dijkstra: network is nil")

	// ErrSourceNotFound indicates that the source stop does not exist.
	ErrSourceNotFound = errors.New("dijkstra: source stop not found in network")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// Source      – starting stop ID.
// ReturnPath  – if true, return the predecessor map; otherwise prev is nil.
// MaxDistance – stops whose travel time would exceed it are not explored.
type Options struct {
	Source      string
	ReturnPath  bool
	MaxDistance int64

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting stop ID. Must be supplied.
func Source(id string) Option {
	return func(o *Options) {
		o.Source = id
	}
}

// WithReturnPath enables generation of the predecessor map in the result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum travel-time threshold.
// Negative values are recorded and surface as ErrBadMaxDistance.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			o.err = fmt.Errorf("%w: got %d", ErrBadMaxDistance, max)
			return
		}
		o.MaxDistance = max
	}
}

// DefaultOptions returns Options for the given source with no distance cap
// and no predecessor map.
func DefaultOptions(source string) Options {
	return Options{
		Source:      source,
		ReturnPath:  false,
		MaxDistance: math.MaxInt64,
	}
}
