// Package dfs defines types and options for depth-first traversal of a
// core.Network, including cancellation, pre-/post-order hooks, depth
// limiting, neighbor filtering, full-network (forest) traversal, and basic
// diagnostics.
package dfs

import (
	"context"
	"errors"

	"github.com/katalvlaran/metroroute/core"
)

var (
	// ErrNetworkNil is returned when a nil *core.Network is passed to DFS
	// or Components.
	ErrNetworkNil = errors.New("dfs: network is nil")

	// ErrStartStopNotFound indicates that the specified start stop ID
	// does not exist in the network.
	ErrStartStopNotFound = errors.New("dfs: start stop not found")
)

// Option configures optional behavior of DFS traversal.
// Use with DFS(n, startID, opts...).
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS traversal.
// Complexity remains O(V+E) when filters and hooks are O(1).
type DFSOptions struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, is invoked immediately upon discovering a stop (pre-order).
	// Returning an error aborts traversal with that error.
	OnVisit func(id string) error

	// OnExit, if non-nil, is invoked after all descendants of a stop have
	// been explored (post-order), before appending to result.Order.
	// Returning an error aborts traversal and leaves Order empty.
	OnExit func(id string) error

	// MaxDepth, if non-negative, limits recursion to the given depth.
	// A depth of 0 visits only the start stop. Default is -1 (no limit).
	MaxDepth int

	// FilterNeighbor, if non-nil, is called for each link before recursing.
	// Return true to traverse into that neighbor, false to skip it.
	FilterNeighbor func(from, to *core.Stop) bool

	// FullTraversal, if true, runs DFS from every unvisited stop in
	// registration order, covering disconnected islands.
	FullTraversal bool

	// SkippedNeighbors counts links skipped by FilterNeighbor.
	SkippedNeighbors int
}

// DefaultOptions returns a DFSOptions struct with:
//   - Background context
//   - No pre-/post-order hooks
//   - No depth limit (MaxDepth = -1)
//   - No neighbor filtering
//   - Single-source traversal (FullTraversal = false)
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext returns an Option that sets the Context for DFS traversal.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs fn as a pre-order hook.
func WithOnVisit(fn func(id string) error) Option {
	return func(o *DFSOptions) {
		o.OnVisit = fn
	}
}

// WithOnExit installs fn as a post-order hook.
func WithOnExit(fn func(id string) error) Option {
	return func(o *DFSOptions) {
		o.OnExit = fn
	}
}

// WithMaxDepth limits traversal depth to limit.
// A limit of 0 means only the start stop is visited.
func WithMaxDepth(limit int) Option {
	return func(o *DFSOptions) {
		o.MaxDepth = limit
	}
}

// WithFilterNeighbor skips links for which fn returns false; each skip is
// counted in SkippedNeighbors.
func WithFilterNeighbor(fn func(from, to *core.Stop) bool) Option {
	return func(o *DFSOptions) {
		o.FilterNeighbor = fn
	}
}

// WithAvoidLines skips every stop on one of the given lines.
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

// WithFullTraversal enables full-network traversal: DFS restarts from each
// unvisited stop, covering disconnected islands.
func WithFullTraversal() Option {
	return func(o *DFSOptions) {
		o.FullTraversal = true
	}
}

// DFSResult captures the outcome of a depth-first traversal.
type DFSResult struct {
	// Order records stops in the sequence they finished (post-order).
	Order []string

	// Depth maps each stop ID to its distance (#connections) from its root.
	Depth map[string]int

	// Parent maps each stop ID to the stop from which it was first
	// discovered. Roots do not appear in this map.
	Parent map[string]string

	// Root maps each visited stop ID to the root of its DFS tree.
	Root map[string]string

	// Roots lists tree roots in the order the trees were started.
	Roots []string

	// Visited flags which stops were reached during the traversal.
	Visited map[string]bool

	// SkippedNeighbors reports how many links were skipped by FilterNeighbor,
	// aggregated across all trees.
	SkippedNeighbors int
}
