// Package metroroute plans routes on a multi-line transit network.
//
// A network is an undirected weighted graph: every stop belongs to exactly one
// line, and a station served by two lines is two stops joined by a transfer
// connection. Two queries are answered between any pair of stops:
//
//   - minimum transfers: the route with the fewest connections (bfs)
//   - fastest: the route with the lowest travel time, searched best-first
//     with a line-change penalty as heuristic (astar)
//
// Packages:
//
//	core/      Stop, Link, Connection, Network, Route
//	bfs/       minimum-transfer search and full traversal
//	astar/     fastest-route search
//	dijkstra/  single-source travel times
//	planner/   query facade over a frozen network snapshot
//	netfile/   YAML network files
//	store/     SQLite and Postgres persistence
//	gtfs/      GTFS static feed importer
//	config/    application configuration
//	httpapi/   HTTP API
//	sample/    the three-line example network
//
// Quick example:
//
//	p, err := planner.New(sample.Network())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if r, ok := p.FindFastestRoute("M1", "K4"); ok {
//	    fmt.Printf("%d min: %s\n", r.Cost, r) // 25 min: AŞTİ -> Kızılay -> ...
//	}
//
// The metroroute command (cmd/metroroute) runs the demo scenarios, single
// queries, the HTTP server and the import/export tools.
package metroroute
