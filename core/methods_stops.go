// File: methods_stops.go
// Role: Stop lifecycle & queries.
//
// Determinism:
//   - Stops() and LineStops() return stops in registration order.
//   - Lines() returns line IDs in first-registration order.
//
// Concurrency:
//   - Mutations under the network write lock, queries under the read lock.
package core

import "fmt"

// AddStop registers a stop under id if no stop with that id exists yet.
//
// The operation is an explicit upsert-if-absent: a repeated call with an
// id already present is a no-op and returns nil, even if name or line
// differ (first registration wins). This keeps network construction
// independent of the order in which data sources are applied.
//
// Errors:
//   - ErrEmptyStopID if id == "".
//   - ErrEmptyLineID if line == "".
//   - ErrFrozen if the network was frozen.
//
// Complexity: O(1) amortized.
func (n *Network) AddStop(id, name, line string) error {
	if id == "" {
		return ErrEmptyStopID
	}
	if line == "" {
		return fmt.Errorf("%w: stop %q", ErrEmptyLineID, id)
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	if n.frozen {
		return ErrFrozen
	}
	if _, exists := n.stops[id]; exists {
		return nil // first registration wins
	}

	s := &Stop{id: id, name: name, line: line}
	n.stops[id] = s
	n.order = append(n.order, id)
	if _, known := n.lines[line]; !known {
		n.lineOrder = append(n.lineOrder, line)
	}
	n.lines[line] = append(n.lines[line], s)

	return nil
}

// HasStop reports whether a stop with the given id is registered.
// Complexity: O(1).
func (n *Network) HasStop(id string) bool {
	if id == "" {
		return false
	}
	n.mu.RLock()
	defer n.mu.RUnlock()
	_, ok := n.stops[id]

	return ok
}

// Stop returns the stop registered under id.
// Complexity: O(1).
func (n *Network) Stop(id string) (*Stop, bool) {
	n.mu.RLock()
	defer n.mu.RUnlock()
	s, ok := n.stops[id]

	return s, ok
}

// Stops returns all stops in registration order.
// Complexity: O(V).
func (n *Network) Stops() []*Stop {
	n.mu.RLock()
	defer n.mu.RUnlock()
	out := make([]*Stop, 0, len(n.order))
	for _, id := range n.order {
		out = append(out, n.stops[id])
	}

	return out
}

// StopCount returns the number of registered stops. O(1).
func (n *Network) StopCount() int {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return len(n.stops)
}

// Lines returns the line identifiers in the order they were first seen.
func (n *Network) Lines() []string {
	n.mu.RLock()
	defer n.mu.RUnlock()
	out := make([]string, len(n.lineOrder))
	copy(out, n.lineOrder)

	return out
}

// LineStops returns the stops registered under line, in registration order.
// The boolean is false when no stop carries that line.
func (n *Network) LineStops(line string) ([]*Stop, bool) {
	n.mu.RLock()
	defer n.mu.RUnlock()
	stops, ok := n.lines[line]
	if !ok {
		return nil, false
	}
	out := make([]*Stop, len(stops))
	copy(out, stops)

	return out, true
}
