// Package dfs implements depth-first traversal and island detection on a
// core.Network.
//
// What:
//
//   - DFS: explores as far as possible along each branch before
//     backtracking. Supports pre- and post-order hooks, cancellation via
//     context.Context, depth limiting, neighbor filtering and full-network
//     (forest) traversal.
//   - Components: the islands of a network, i.e. maximal groups of stops
//     connected to each other. A network with more than one island has stop
//     pairs with no route between them; importers report this.
//
// Errors:
//
//   - ErrNetworkNil          network pointer is nil
//   - ErrStartStopNotFound   start stop ID not in network
//   - context.Canceled       DFS canceled via context
//   - hook errors            propagated from OnVisit or OnExit
//
// Functions:
//
//   - DFS(n *core.Network, startID string, opts ...Option) (*DFSResult, error)
//   - Components(ctx context.Context, n *core.Network) ([][]string, error)
//   - DefaultOptions(), WithContext(), WithOnVisit(), WithOnExit(),
//     WithMaxDepth(), WithFilterNeighbor(), WithAvoidLines(), WithFullTraversal()
package dfs
