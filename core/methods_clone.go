// File: methods_clone.go
// Role: Cloning network instances.
// Determinism:
//   - Clones keep stop, line and connection registration order.
// Concurrency:
//   - Read lock for snapshotting; no mutation of the source network.
//   - Clones are always unfrozen and share no Stop values with the source.

package core

// CloneEmpty returns a new, unfrozen Network with the same stops (IDs, names,
// lines, registration order) but no connections.
//
// Complexity: O(V).
func (n *Network) CloneEmpty() *Network {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return n.cloneStopsLocked()
}

// Clone returns an unfrozen deep copy of the Network: stops, adjacency and
// the connection catalog.
//
// Complexity: O(V + E).
func (n *Network) Clone() *Network {
	n.mu.RLock()
	defer n.mu.RUnlock()

	clone := n.cloneStopsLocked()
	for id, s := range n.stops {
		cs := clone.stops[id]
		cs.links = make([]Link, len(s.links))
		copy(cs.links, s.links)
	}
	clone.connections = make([]Connection, len(n.connections))
	copy(clone.connections, n.connections)

	return clone
}

// cloneStopsLocked copies the stop catalog and line index. Caller holds n.mu.
func (n *Network) cloneStopsLocked() *Network {
	clone := NewNetwork()
	clone.order = make([]string, len(n.order))
	copy(clone.order, n.order)
	clone.lineOrder = make([]string, len(n.lineOrder))
	copy(clone.lineOrder, n.lineOrder)

	for _, id := range n.order {
		s := n.stops[id]
		cs := &Stop{id: s.id, name: s.name, line: s.line}
		clone.stops[id] = cs
		clone.lines[cs.line] = append(clone.lines[cs.line], cs)
	}

	return clone
}
