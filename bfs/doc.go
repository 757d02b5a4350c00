// Package bfs provides breadth-first search over a core.Network: the
// minimum-transfer route query and a full reachability walk.
//
// What
//
//   - MinTransfers(n, start, target) returns the *core.Route with the fewest
//     connections between two stops. Since every transfer between lines is
//     an explicit connection, fewest connections stands in for fewest
//     transfers.
//   - Walk(n, start) explores every reachable stop and returns a Result:
//   - Order: visit sequence
//   - Depth: map from stop → hops from start
//   - Parent: map from stop → its predecessor in the BFS tree
//   - Hooks: OnEnqueue, OnVisit (may abort with an error).
//   - Filtering of individual links via WithFilterNeighbor / WithAvoidLines.
//   - MaxDepth limit (d>0) or explicit "no limit" (d==0).
//
// Determinism
//
//	core.Network.Links returns adjacency in insertion order and BFS enqueues
//	neighbors in that order, so the visit sequence and the returned route
//	are fully reproducible.
//
// Outcomes
//
//	start == target       → one-stop route, Cost 0
//	unknown start/target  → core.ErrNoRoute
//	unreachable target    → core.ErrNoRoute
//
// Complexity (V = stops, E = connections)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	route, err := bfs.MinTransfers(n, "M1", "K4")
//	if errors.Is(err, core.ErrNoRoute) {
//	    // no route
//	}
//	fmt.Println(route.Itinerary(" -> "))
//
//	res, err := bfs.Walk(n, "M1", bfs.WithMaxDepth(2))
//
// Errors
//
//   - ErrNetworkNil          if the network pointer is nil.
//   - ErrStartStopNotFound   if Walk's start stop does not exist.
//   - ErrOptionViolation     if an Option is invalid (e.g. negative MaxDepth).
//   - core.ErrNoRoute        for route queries without a route.
//   - Wrapped user-supplied hook errors from OnVisit, ctx.Err() on cancel.
package bfs
