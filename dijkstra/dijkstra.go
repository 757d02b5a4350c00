// Package dijkstra implements Dijkstra's shortest-path algorithm on a
// core.Network, producing the travel time from one stop to every other.
//
// Notes on implementation choices:
//
//   - Connection costs are validated non-negative by core.Network, so no
//     pre-scan for negative weights is needed.
//   - We stop exploring once the minimum distance in the heap exceeds MaxDistance.
//   - We use a "lazy" decrease-key strategy: pushing duplicates into the heap
//     and ignoring entries for stops that were already finalized.
//   - Ties in the heap are broken by insertion order, so predecessor maps are
//     reproducible.
package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/metroroute/core"
)

// Dijkstra computes the minimum travel time from Options.Source to every
// stop of n.
//
// Returns:
//
//   - dist: map from stop ID to minimum travel time (Unreachable if not reached).
//   - prev: predecessor map if ReturnPath (nil otherwise). prev[v] == "" for
//     the source and for unreached stops.
//   - err:  validation error.
//
// Preconditions and validation (in order):
//  1. Source must be non-empty (ErrEmptySource).
//  2. n must be non-nil (ErrNilNetwork).
//  3. option values must be valid (ErrBadMaxDistance).
//  4. n must contain Source (ErrSourceNotFound).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra(n *core.Network, opts ...Option) (map[string]int64, map[string]string, error) {
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.Source == "" {
		return nil, nil, ErrEmptySource
	}
	if n == nil {
		return nil, nil, ErrNilNetwork
	}
	if cfg.err != nil {
		return nil, nil, cfg.err
	}
	if !n.HasStop(cfg.Source) {
		return nil, nil, fmt.Errorf("%w: %q", ErrSourceNotFound, cfg.Source)
	}

	stops := n.Stops()
	V := len(stops)
	r := &runner{
		net:     n,
		options: cfg,
		dist:    make(map[string]int64, V),
		prev:    make(map[string]string, V),
		visited: make(map[string]bool, V),
		pq:      make(nodePQ, 0, V),
	}

	r.init(stops)
	if err := r.process(); err != nil {
		return nil, nil, err
	}

	if !cfg.ReturnPath {
		return r.dist, nil, nil
	}

	return r.dist, r.prev, nil
}

// PathTo rebuilds the stop sequence source → dest from a predecessor map
// and the matching distance map. Returns core.ErrNoRoute if dest is
// unreached or unknown.
func PathTo(dist map[string]int64, prev map[string]string, dest string) ([]string, error) {
	d, ok := dist[dest]
	if !ok || d == Unreachable {
		return nil, fmt.Errorf("%w: %q not reached", core.ErrNoRoute, dest)
	}

	path := []string{}
	for cur := dest; cur != ""; cur = prev[cur] {
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	net     *core.Network     // read-only within Dijkstra
	options Options           // Source, MaxDistance, ReturnPath
	dist    map[string]int64  // stop ID → best travel time from Source
	prev    map[string]string // stop ID → predecessor on the best route
	visited map[string]bool   // finalized stops
	pq      nodePQ            // lazy min-heap
	seq     uint64            // insertion counter for tie-breaks
}

// init sets every distance to Unreachable, the source to zero, and pushes
// the source onto the heap.
func (r *runner) init(stops []*core.Stop) {
	for _, s := range stops {
		r.dist[s.ID()] = Unreachable
		r.prev[s.ID()] = ""
	}
	r.dist[r.options.Source] = 0

	heap.Init(&r.pq)
	r.push(r.options.Source, 0)
}

func (r *runner) push(id string, d int64) {
	heap.Push(&r.pq, &nodeItem{id: id, dist: d, seq: r.seq})
	r.seq++
}

// process repeatedly extracts the closest unfinalized stop and relaxes its
// links, until the heap drains or the closest stop is beyond MaxDistance.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id

		if r.visited[u] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[u] = true

		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax tries to improve the distance of every neighbor of u.
func (r *runner) relax(u string) error {
	links, err := r.net.Links(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %q: %w", u, err)
	}

	for _, l := range links {
		newDist := r.dist[u] + l.Cost
		if newDist < r.dist[u] || newDist > r.options.MaxDistance {
			continue
		}
		// strict "<" keeps the first-found predecessor on ties
		if newDist >= r.dist[l.To] {
			continue
		}
		r.dist[l.To] = newDist
		r.prev[l.To] = u
		r.push(l.To, newDist)
	}

	return nil
}

// nodeItem represents a stop and its tentative distance from the source.
type nodeItem struct {
	id   string
	dist int64
	seq  uint64
}

// nodePQ is a min-heap of *nodeItem ordered by (dist, seq).
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].seq < pq[j].seq
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
