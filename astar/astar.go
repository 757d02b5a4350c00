// Package astar implements the fastest-route query: a best-first search over
// a core.Network, weighted by travel time and guided by a line-change
// heuristic.
//
// Notes on implementation choices:
//
//   - Frontier entries are ordered by (priority, seq) only. seq is an
//     insertion counter, so equal priorities pop in insertion order and the
//     result never depends on memory addresses.
//   - Lazy decrease-key: an improved cost pushes a new entry; the old one is
//     skipped when popped because its cost exceeds the best-known cost.
//   - The target check happens before the staleness check, on pop.
//   - Paths are shared persistent lists, so extending a path is O(1).
package astar

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/metroroute/core"
)

// Fastest returns the route from startID to targetID minimizing the summed
// connection cost, with Route.Cost set to that sum.
//
// Algorithm:
//  1. best[start] = 0; push (h(start), seq 0, start, [start], 0).
//  2. Pop the lowest (priority, seq) entry.
//  3. If it is the target, return its path and cost.
//  4. If its cost exceeds best[stop], the entry is stale: skip it.
//  5. For each link: cand = g + cost. If cand < best[neighbor] (or unset),
//     record it and push (cand + h(neighbor), next seq, neighbor, path+neighbor, cand).
//  6. Empty frontier → core.ErrNoRoute.
//
// Optimality holds when the heuristic never overestimates. The default
// line penalty can overestimate, see LinePenalty.
//
// Errors:
//   - ErrNetworkNil, ErrOptionViolation.
//   - core.ErrNoRoute if either ID is unknown or the target is unreachable.
//   - ErrFrontierExceeded when WithMaxFrontier is set and exceeded.
//   - ctx.Err() on cancellation.
//
// Complexity:
//   - Time:  O((V + E) log E)
//   - Space: O(V + E)
func Fastest(n *core.Network, startID, targetID string, opts ...Option) (*core.Route, error) {
	if n == nil {
		return nil, ErrNetworkNil
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	start, ok := n.Stop(startID)
	if !ok {
		return nil, fmt.Errorf("%w: %q → %q: unknown stop", core.ErrNoRoute, startID, targetID)
	}
	target, ok := n.Stop(targetID)
	if !ok {
		return nil, fmt.Errorf("%w: %q → %q: unknown stop", core.ErrNoRoute, startID, targetID)
	}

	r := &runner{
		net:    n,
		opts:   cfg,
		target: target,
		best:   make(map[string]int64, n.StopCount()),
		pq:     make(frontier, 0, n.StopCount()),
	}
	heap.Init(&r.pq)
	r.best[start.ID()] = 0
	r.push(start, &trail{id: start.ID()}, 0)

	found, err := r.process()
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, fmt.Errorf("%w: %q → %q: unreachable", core.ErrNoRoute, startID, targetID)
	}

	return n.Resolve(found.path.ids(), found.g)
}

// runner holds the mutable state for a single search.
type runner struct {
	net    *core.Network
	opts   Options
	target *core.Stop
	best   map[string]int64 // stop ID → lowest accumulated cost seen
	pq     frontier
	seq    uint64
}

// push inserts a frontier entry for s with accumulated cost g.
func (r *runner) push(s *core.Stop, path *trail, g int64) {
	heap.Push(&r.pq, &entry{
		priority: g + r.opts.Heuristic(s, r.target),
		seq:      r.seq,
		id:       s.ID(),
		path:     path,
		g:        g,
	})
	r.seq++
}

// process runs the main loop and returns the target entry, or nil if the
// frontier drained without reaching it.
func (r *runner) process() (*entry, error) {
	ctx := r.opts.Ctx
	for r.pq.Len() > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		e := heap.Pop(&r.pq).(*entry)
		if e.id == r.target.ID() {
			return e, nil
		}
		if e.g > r.best[e.id] {
			continue // stale: a cheaper route to e.id was queued later
		}

		r.opts.OnExpand(e.id, e.g)
		if err := r.relax(e); err != nil {
			return nil, err
		}
	}

	return nil, nil
}

// relax examines each link of the popped stop and queues strictly better
// candidates.
func (r *runner) relax(e *entry) error {
	links, err := r.net.Links(e.id)
	if err != nil {
		return fmt.Errorf("astar: neighbors of %q: %w", e.id, err)
	}
	from, _ := r.net.Stop(e.id)

	for _, l := range links {
		to, ok := r.net.Stop(l.To)
		if !ok {
			continue
		}
		if l.To != r.target.ID() && !r.opts.FilterNeighbor(from, to) {
			continue
		}

		cand := e.g + l.Cost
		if cand < e.g {
			continue // overflow
		}
		if old, seen := r.best[l.To]; seen && cand >= old {
			continue
		}
		r.best[l.To] = cand
		r.push(to, e.path.extend(l.To), cand)

		if r.opts.MaxFrontier > 0 && r.pq.Len() > r.opts.MaxFrontier {
			return fmt.Errorf("%w: %d entries", ErrFrontierExceeded, r.pq.Len())
		}
	}

	return nil
}

// trail is an immutable path: each node points at its predecessor, so
// sibling paths share their common prefix.
type trail struct {
	id   string
	prev *trail
	n    int // number of stops before this one
}

// extend returns a new trail ending at id.
func (t *trail) extend(id string) *trail {
	return &trail{id: id, prev: t, n: t.n + 1}
}

// ids materializes the path start → end.
func (t *trail) ids() []string {
	out := make([]string, t.n+1)
	for cur := t; cur != nil; cur = cur.prev {
		out[cur.n] = cur.id
	}

	return out
}

// entry is one frontier record.
type entry struct {
	priority int64  // g + h
	seq      uint64 // insertion counter, tie-break
	id       string
	path     *trail
	g        int64 // accumulated cost
}

// frontier is a min-heap of *entry ordered by (priority, seq).
type frontier []*entry

// Len returns the number of items in the heap.
func (pq frontier) Len() int { return len(pq) }

// Less orders by priority, then by insertion sequence.
func (pq frontier) Less(i, j int) bool {
	if pq[i].priority != pq[j].priority {
		return pq[i].priority < pq[j].priority
	}
	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq frontier) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds x onto the heap; x must be *entry.
func (pq *frontier) Push(x interface{}) { *pq = append(*pq, x.(*entry)) }

// Pop removes and returns the last element; called by heap.Pop.
func (pq *frontier) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
