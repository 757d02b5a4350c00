// File: methods_links.go
// Role: Connection lifecycle & adjacency queries.
//
// Determinism:
//   - Links(id) returns the adjacency in insertion order.
//   - Connections() returns the catalog in registration order.
//
// Concurrency:
//   - AddConnection under the network write lock; queries under the read lock.
//   - Returned slices are copies; callers may keep them across mutations.
package core

import "fmt"

// AddConnection registers an undirected connection of the given cost
// between two already-registered stops.
//
// The link is appended to both stops' adjacency with the same cost.
// Parallel connections between the same pair are kept; every one of them
// is seen by the searches. A self-connection (a == b) is stored once.
//
// Errors:
//   - ErrEmptyStopID if either id is empty.
//   - ErrNegativeCost if cost < 0.
//   - ErrCostTooLarge if cost > MaxCost.
//   - ErrStopNotFound (wrapped with the offending id) if either stop is unregistered.
//   - ErrFrozen if the network was frozen.
//
// Complexity: O(1) amortized.
func (n *Network) AddConnection(a, b string, cost int64) error {
	if a == "" || b == "" {
		return ErrEmptyStopID
	}
	if cost < 0 {
		return fmt.Errorf("%w: %s–%s cost=%d", ErrNegativeCost, a, b, cost)
	}
	if cost > MaxCost {
		return fmt.Errorf("%w: %s–%s cost=%d (max %d)", ErrCostTooLarge, a, b, cost, MaxCost)
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	if n.frozen {
		return ErrFrozen
	}
	sa, ok := n.stops[a]
	if !ok {
		return fmt.Errorf("%w: %q", ErrStopNotFound, a)
	}
	sb, ok := n.stops[b]
	if !ok {
		return fmt.Errorf("%w: %q", ErrStopNotFound, b)
	}

	sa.links = append(sa.links, Link{To: b, Cost: cost})
	if a != b {
		sb.links = append(sb.links, Link{To: a, Cost: cost})
	}
	n.connections = append(n.connections, Connection{From: a, To: b, Cost: cost})

	return nil
}

// Links returns a copy of the adjacency of stop id, in insertion order.
// Returns ErrStopNotFound for an unknown id.
// Complexity: O(deg(id)).
func (n *Network) Links(id string) ([]Link, error) {
	n.mu.RLock()
	defer n.mu.RUnlock()
	s, ok := n.stops[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrStopNotFound, id)
	}
	out := make([]Link, len(s.links))
	copy(out, s.links)

	return out, nil
}

// Connections returns every registered connection in registration order.
// Complexity: O(E).
func (n *Network) Connections() []Connection {
	n.mu.RLock()
	defer n.mu.RUnlock()
	out := make([]Connection, len(n.connections))
	copy(out, n.connections)

	return out
}

// ConnectionCount returns the number of registered connections. O(1).
func (n *Network) ConnectionCount() int {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return len(n.connections)
}

// CheapestLink returns the lowest cost among the parallel links from a to b.
// The boolean is false if the stops are not adjacent.
// Complexity: O(deg(a)).
func (n *Network) CheapestLink(a, b string) (int64, bool) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return n.cheapestLocked(a, b)
}

// PathCost sums the cheapest link cost between each pair of consecutive
// stop IDs. A path of zero or one stop costs 0.
//
// Errors:
//   - ErrStopNotFound if an id is unknown or two consecutive stops are not adjacent.
func (n *Network) PathCost(ids []string) (int64, error) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	var total int64
	for i, id := range ids {
		if _, ok := n.stops[id]; !ok {
			return 0, fmt.Errorf("%w: %q", ErrStopNotFound, id)
		}
		if i == 0 {
			continue
		}
		c, ok := n.cheapestLocked(ids[i-1], id)
		if !ok {
			return 0, fmt.Errorf("%w: no link %s–%s", ErrStopNotFound, ids[i-1], id)
		}
		total += c
	}

	return total, nil
}

// cheapestLocked expects n.mu held.
func (n *Network) cheapestLocked(a, b string) (int64, bool) {
	s, ok := n.stops[a]
	if !ok {
		return 0, false
	}
	var best int64
	found := false
	for _, l := range s.links {
		if l.To != b {
			continue
		}
		if !found || l.Cost < best {
			best = l.Cost
			found = true
		}
	}

	return best, found
}
