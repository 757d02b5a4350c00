// Package astar defines core types and configuration options for the
// fastest-route search on a core.Network.
package astar

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/metroroute/core"
)

// DefaultLinePenalty is the heuristic cost added for a candidate stop that is
// not on the target's line. It approximates the remaining cost of at least
// one more line change.
const DefaultLinePenalty int64 = 2

// Sentinel errors returned by the fastest-route search.
var (
	// ErrNetworkNil indicates that a nil *core.Network was passed.
	ErrNetworkNil = errors.New("astar: network is nil")

	// ErrOptionViolation indicates an invalid Option value.
	ErrOptionViolation = errors.New("astar: invalid option supplied")

	// ErrFrontierExceeded indicates the frontier grew past WithMaxFrontier.
	ErrFrontierExceeded = errors.New("astar: frontier size limit exceeded")
)

// Heuristic estimates the remaining cost from candidate to target.
// It must be deterministic and return a non-negative value.
type Heuristic func(candidate, target *core.Stop) int64

// LinePenalty returns the line-change heuristic: 0 when the candidate is on
// the target's line, penalty otherwise.
//
// The heuristic is a practical bias towards same-line continuations. It is
// not admissible in general: when a cheaper route exists through a stop on
// another line whose true remaining cost is below penalty, the search can
// settle on a dearer route. LinePenalty(0) turns the search into Dijkstra.
func LinePenalty(penalty int64) Heuristic {
	return func(candidate, target *core.Stop) int64 {
		if candidate.Line() == target.Line() {
			return 0
		}
		return penalty
	}
}

// Option configures the search via functional arguments.
type Option func(*Options)

// Options configures the behavior of the fastest-route search.
//
// Ctx            – cancellation; checked once per frontier extraction.
// Heuristic      – remaining-cost estimate; default LinePenalty(DefaultLinePenalty).
// MaxFrontier    – if > 0, fail with ErrFrontierExceeded once more entries are queued.
// FilterNeighbor – skip a link from → to by returning false.
// OnExpand       – called for every stop that is expanded, with its cost so far.
type Options struct {
	Ctx            context.Context
	Heuristic      Heuristic
	MaxFrontier    int
	FilterNeighbor func(from, to *core.Stop) bool
	OnExpand       func(id string, g int64)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with the default line penalty,
// no frontier bound, no filtering and no hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		Heuristic:      LinePenalty(DefaultLinePenalty),
		MaxFrontier:    0,
		FilterNeighbor: func(_, _ *core.Stop) bool { return true },
		OnExpand:       func(string, int64) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLinePenalty uses LinePenalty(p) as the heuristic.
// A negative p is recorded as ErrOptionViolation.
func WithLinePenalty(p int64) Option {
	return func(o *Options) {
		if p < 0 {
			o.err = fmt.Errorf("%w: line penalty cannot be negative (%d)", ErrOptionViolation, p)
			return
		}
		o.Heuristic = LinePenalty(p)
	}
}

// WithHeuristic installs a custom heuristic. A nil h is an ErrOptionViolation.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h == nil {
			o.err = fmt.Errorf("%w: nil heuristic", ErrOptionViolation)
			return
		}
		o.Heuristic = h
	}
}

// WithMaxFrontier bounds the number of queued frontier entries.
//
//	n > 0: limit to n entries
//	n == 0: no limit
//	n < 0: ErrOptionViolation
func WithMaxFrontier(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxFrontier cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxFrontier = n
	}
}

// WithFilterNeighbor skips links for which fn returns false.
// The target stop is never filtered.
func WithFilterNeighbor(fn func(from, to *core.Stop) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// WithAvoidLines skips every stop on one of the given lines, except the
// target itself.
func WithAvoidLines(lines ...string) Option {
	avoid := make(map[string]struct{}, len(lines))
	for _, l := range lines {
		avoid[l] = struct{}{}
	}

	return WithFilterNeighbor(func(_, to *core.Stop) bool {
		_, skip := avoid[to.Line()]
		return !skip
	})
}

// WithOnExpand registers a callback run for each expanded stop.
func WithOnExpand(fn func(id string, g int64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}
