// File: api.go
// Role: Thin public facade: freeze discipline, read-only snapshots and
// route resolution. No algorithms here.

package core

import "fmt"

// Freeze switches the network to read-only. Every later AddStop or
// AddConnection returns ErrFrozen. Freezing is irreversible and idempotent.
//
// Queries never need Freeze; concurrent reads are already safe. A frozen
// network is the build-then-query snapshot handed to request goroutines.
func (n *Network) Freeze() {
	n.mu.Lock()
	n.frozen = true
	n.mu.Unlock()
}

// Frozen reports whether Freeze has been called.
func (n *Network) Frozen() bool {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return n.frozen
}

// NetworkStats is a read-only snapshot of catalog sizes.
type NetworkStats struct {
	StopCount       int
	LineCount       int
	ConnectionCount int
	// TransferCount counts connections whose endpoints are on different lines.
	TransferCount int
	Frozen        bool
}

// Stats produces a snapshot of catalog sizes.
// Complexity: O(E).
func (n *Network) Stats() NetworkStats {
	n.mu.RLock()
	defer n.mu.RUnlock()

	st := NetworkStats{
		StopCount:       len(n.stops),
		LineCount:       len(n.lines),
		ConnectionCount: len(n.connections),
		Frozen:          n.frozen,
	}
	for _, c := range n.connections {
		if n.stops[c.From].line != n.stops[c.To].line {
			st.TransferCount++
		}
	}

	return st
}

// Resolve turns a sequence of stop IDs into a Route of Stops with the given
// cost. Returns ErrStopNotFound if any id is unknown.
func (n *Network) Resolve(ids []string, cost int64) (*Route, error) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	stops := make([]*Stop, 0, len(ids))
	for _, id := range ids {
		s, ok := n.stops[id]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrStopNotFound, id)
		}
		stops = append(stops, s)
	}

	return &Route{Stops: stops, Cost: cost}, nil
}
