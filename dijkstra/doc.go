// Package dijkstra computes single-source travel times on a core.Network.
//
// Overview:
//
//   - Dijkstra computes the minimum travel time from one stop to every stop of
//     the network in O((V + E) log V) time, where V = |stops| and E = |links|.
//   - It relies on a min-heap (priority queue) to always expand the next-closest stop.
//   - Supports optional path reconstruction and a travel-time cap.
//
// When to use:
//
//   - Isochrones: "which stops can I reach from here within 15 minutes?"
//   - As the exact reference for the fastest-route search, which is a
//     heuristic best-first search and not guaranteed optimal under every penalty.
//
// Key features:
//
//   - ReturnPath: if enabled, returns a "predecessor" map, so you can rebuild each
//     route with PathTo.
//   - MaxDistance: stops exploration beyond a specified travel time.
//   - Deterministic: heap ties pop in insertion order, links relax in insertion order.
//
// Error handling (sentinel errors):
//
//   - ErrEmptySource:     the Source string is empty.
//   - ErrNilNetwork:      a nil *core.Network was passed.
//   - ErrBadMaxDistance:  WithMaxDistance received a negative value.
//   - ErrSourceNotFound:  the source stop does not exist.
//
// API reference:
//
//	func Dijkstra(
//	    n *core.Network,
//	    opts ...Option,
//	) (dist map[string]int64, prev map[string]string, err error)
//
//	  - dist:    map[v] = minimal travel time from Source to v, or Unreachable.
//	  - prev:    map[v] = predecessor of v on one fastest route, or "" for the
//	             source and unreached stops. Nil if ReturnPath=false.
//
// Thread safety:
//
//   - core.Network guards its own state, so concurrent Dijkstra calls on the same
//     network are safe. Results reflect the network as it was read link by link;
//     freeze the network for a stable snapshot.
package dijkstra
