// Package core provides a thread-safe, in-memory model of a multi-line
// transit network with a minimal, composable API surface.
//
// The Network N = (S, C) is an undirected weighted graph:
//
//   - S is the set of Stops. Each Stop has an immutable ID, display name and
//     line tag. A station served by two lines is two Stops sharing a name.
//   - C is the catalog of Connections. Each Connection joins two Stops with
//     a non-negative travel cost and is mirrored into both Stops' adjacency.
//   - Transfers are ordinary Connections; only the differing line tags of
//     the two endpoints tell them apart.
//   - Parallel connections between the same pair are kept as they are.
//
// Storage is an arena addressed by ID:
//
//	stops[id]  = &Stop{id, name, line, links: []Link{{To, Cost}, ...}}
//	lines[tag] = []*Stop in registration order
//
// so no Stop ever holds a pointer to another Stop.
//
// Core Methods:
//
//	// Construction
//	AddStop(id, name, line string) error          // O(1), upsert-if-absent
//	AddConnection(a, b string, cost int64) error  // O(1), both stops must exist
//	Freeze()                                      // O(1), read-only afterwards
//
//	// Query
//	HasStop(id) bool / Stop(id) (*Stop, bool)     // O(1)
//	Stops() []*Stop                               // O(V), registration order
//	Lines() []string / LineStops(line)            // O(L) / O(|line|)
//	Links(id) ([]Link, error)                     // O(deg), insertion order
//	Connections() []Connection                    // O(E)
//	CheapestLink(a, b) / PathCost(ids)            // O(deg) per hop
//	Resolve(ids, cost) (*Route, error)            // O(len(ids))
//	Stats() NetworkStats                          // O(E)
//
// Errors:
//
//	ErrEmptyStopID  – zero-length stop ID
//	ErrEmptyLineID  – zero-length line tag
//	ErrStopNotFound – connection or lookup references an unregistered stop
//	ErrNegativeCost – negative connection cost
//	ErrFrozen       – mutation after Freeze
//	ErrNoRoute      – uniform "no path" outcome shared by route queries
//
// Concurrency:
//
//	One sync.RWMutex guards the catalogs. Concurrent queries are safe.
//	Interleaving construction with queries is allowed by the lock but gives
//	each query whatever adjacency existed when it read a stop; call Freeze
//	once the network is built to rule that out.
package core
