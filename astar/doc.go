// Package astar answers the fastest-route query on a core.Network.
//
// It is a best-first search in the A* family: frontier entries are ordered by
// g + h, where g is the accumulated travel time and h is a heuristic estimate
// of what remains. The default heuristic is a line-change penalty:
//
//	h(stop) = 0                    if stop.Line() == target.Line()
//	h(stop) = DefaultLinePenalty   otherwise
//
// The penalty is a tunable approximation, not a proven lower bound, so the
// returned route is the fastest one whenever the penalty does not exceed the
// true remaining cost from any off-line stop. Use WithLinePenalty(0) for an
// exact (Dijkstra-equivalent) search, or WithHeuristic for a custom one.
//
// Determinism:
//
//	Entries with equal priority pop in insertion order (an explicit
//	sequence counter). Links are relaxed in adjacency insertion order.
//
// Options:
//
//	– WithContext(ctx)           cancellation, checked per extraction
//	– WithLinePenalty(p)         LinePenalty(p) heuristic, p ≥ 0
//	– WithHeuristic(h)           custom heuristic
//	– WithMaxFrontier(n)         fail with ErrFrontierExceeded past n entries
//	– WithFilterNeighbor(fn)     skip links; WithAvoidLines(lines...)
//	– WithOnExpand(fn)           hook per expanded stop
//
// Errors (sentinel):
//
//	– ErrNetworkNil        nil network
//	– ErrOptionViolation   invalid option value
//	– ErrFrontierExceeded  frontier bound exceeded
//	– core.ErrNoRoute      unknown start/target or unreachable target
//
// Example usage:
//
//	route, err := astar.Fastest(n, "M1", "K4")
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%d min: %s\n", route.Cost, route)
package astar
