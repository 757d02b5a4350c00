// Package core defines the central Network, Stop, Link and Route types,
// and provides thread-safe primitives for building and querying a
// multi-line transit network.
//
// The Network is an arena: every Stop is addressed by its string ID and
// adjacency is stored as (neighbor ID, cost) pairs, never as pointers
// between stops. A single sync.RWMutex guards the stop catalog, the line
// index and the connection catalog.
//
// This file declares Stop, Link, Connection, Network, sentinel errors,
// and the NewNetwork constructor.
//
// Errors:
//
//	ErrEmptyStopID   - stop ID is the empty string.
//	ErrEmptyLineID   - line identifier is the empty string.
//	ErrStopNotFound  - a connection references an unregistered stop.
//	ErrNegativeCost  - a connection cost is negative.
//	ErrCostTooLarge  - a connection cost exceeds MaxCost.
//	ErrFrozen        - mutation attempted after Freeze.
//	ErrNoRoute       - a query found no route (unknown IDs or unreachable).
package core

import (
	"errors"
	"math"
	"sync"
)

// MaxCost bounds a single connection cost. Route costs are sums of
// connection costs; the bound keeps any route of up to 2^31 connections
// within int64.
const MaxCost int64 = math.MaxInt32

// Sentinel errors for core network operations.
var (
	// ErrEmptyStopID indicates that the provided stop ID is empty.
	ErrEmptyStopID = errors.New("core: stop ID is empty")

	// ErrEmptyLineID indicates that the provided line identifier is empty.
	ErrEmptyLineID = errors.New("core: line ID is empty")

	// ErrStopNotFound indicates an operation referenced a stop that was never registered.
	ErrStopNotFound = errors.New("core: stop not found")

	// ErrNegativeCost indicates a connection with a negative travel cost.
	ErrNegativeCost = errors.New("core: negative connection cost")

	// ErrCostTooLarge indicates a connection cost above MaxCost.
	ErrCostTooLarge = errors.New("core: connection cost too large")

	// ErrFrozen indicates a mutation on a network that has been frozen for querying.
	ErrFrozen = errors.New("core: network is frozen")

	// ErrNoRoute is the uniform "no path" outcome shared by every route query:
	// unknown start, unknown target and unreachable target all report it.
	ErrNoRoute = errors.New("core: no route")
)

// Stop is a single-line-scoped node of the transit network.
//
// A physical station served by several lines is represented by several
// Stops sharing a name but with distinct IDs and line tags. ID, name and
// line never change after registration; only the adjacency grows.
type Stop struct {
	id   string
	name string
	line string

	// links is append-only; guarded by the owning Network's mutex.
	links []Link
}

// ID returns the unique identifier of the stop.
func (s *Stop) ID() string { return s.id }

// Name returns the display name of the stop.
func (s *Stop) Name() string { return s.name }

// Line returns the line the stop belongs to.
func (s *Stop) Line() string { return s.line }

// String renders the stop as "Name [Line]".
func (s *Stop) String() string { return s.name + " [" + s.line + "]" }

// Link is one direction of a connection as seen from a stop's adjacency.
type Link struct {
	// To is the neighbor stop ID.
	To string

	// Cost is the travel time to the neighbor.
	Cost int64
}

// Connection is an undirected, weighted edge between two stops as it was
// registered. The connection catalog keeps registration order.
type Connection struct {
	From string
	To   string
	Cost int64
}

// Network owns every Stop and the per-line groupings.
//
// stops is the arena (stop ID → Stop); lines keeps, for each line, the stops
// in registration order; order keeps all stop IDs in registration order so
// that iteration and persistence are reproducible.
type Network struct {
	mu sync.RWMutex // guards everything below

	stops       map[string]*Stop
	order       []string
	lines       map[string][]*Stop
	lineOrder   []string
	connections []Connection
	frozen      bool
}

// NewNetwork creates an empty, mutable Network.
// Complexity: O(1)
func NewNetwork() *Network {
	return &Network{
		stops: make(map[string]*Stop),
		lines: make(map[string][]*Stop),
	}
}
