// Package bfs provides breadth-first search over a core.Network.
//
// MinTransfers returns the route with the fewest connections between two
// stops; Walk explores everything reachable from a start stop and returns
// visit order, hop depths and parent links.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/metroroute/core"
)

// queueItem pairs a stop ID with its BFS depth.
type queueItem struct {
	id    string
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	net     *core.Network
	opts    Options
	ctx     context.Context
	target  string // empty for a full walk
	queue   []queueItem
	visited map[string]bool
	res     *Result
}

// MinTransfers returns the route from startID to targetID that traverses the
// fewest connections. Under the network convention of one extra connection
// per transfer point, that is the minimum-transfer route.
//
// The first time the target is dequeued its path is returned: BFS dequeues
// stops in non-decreasing hop distance, so no shorter path can remain.
// Stops are marked visited when enqueued, which keeps parallel connections
// from enqueueing the same stop twice.
//
// Route.Cost is the sum of the cheapest link along each hop, so callers can
// still show a travel time for the minimum-transfer route.
//
// Errors:
//   - ErrNetworkNil for a nil network, ErrOptionViolation for bad options.
//   - core.ErrNoRoute if either ID is unknown or the target is unreachable
//     (also when MaxDepth or a neighbor filter cuts it off).
//   - ctx.Err() on cancellation, or a wrapped OnVisit hook error.
//
// Complexity: O(V + E) time, O(V) memory.
func MinTransfers(n *core.Network, startID, targetID string, opts ...Option) (*core.Route, error) {
	w, err := newWalker(n, opts)
	if err != nil {
		return nil, err
	}
	if !n.HasStop(startID) || !n.HasStop(targetID) {
		return nil, fmt.Errorf("%w: %q → %q: unknown stop", core.ErrNoRoute, startID, targetID)
	}
	w.target = targetID

	w.enqueue(startID, 0, "")
	found, err := w.loop()
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("%w: %q → %q: unreachable", core.ErrNoRoute, startID, targetID)
	}

	path, err := w.res.PathTo(targetID)
	if err != nil {
		return nil, err
	}
	cost, err := n.PathCost(path)
	if err != nil {
		return nil, err
	}

	return n.Resolve(path, cost)
}

// Walk runs a full breadth-first traversal from startID.
// Returns ErrNetworkNil, ErrStartStopNotFound, ErrOptionViolation,
// ctx.Err() or a wrapped OnVisit error.
func Walk(n *core.Network, startID string, opts ...Option) (*Result, error) {
	w, err := newWalker(n, opts)
	if err != nil {
		return nil, err
	}
	if !n.HasStop(startID) {
		return nil, ErrStartStopNotFound
	}

	w.enqueue(startID, 0, "")
	if _, err = w.loop(); err != nil {
		return nil, err
	}

	return w.res, nil
}

// newWalker validates the network and options and prepares empty state.
func newWalker(n *core.Network, opts []Option) (*walker, error) {
	if n == nil {
		return nil, ErrNetworkNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	size := n.StopCount()
	return &walker{
		net:     n,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, size),
		visited: make(map[string]bool, size),
		res: &Result{
			Order:  make([]string, 0, size),
			Depth:  make(map[string]int, size),
			Parent: make(map[string]string, size),
		},
	}, nil
}

// enqueue marks id visited at depth d, records its parent, calls OnEnqueue
// and adds it to the queue.
func (w *walker) enqueue(id string, d int, parent string) {
	w.visited[id] = true
	w.res.Depth[id] = d
	if parent != "" {
		w.res.Parent[id] = parent
	}
	w.opts.OnEnqueue(id, d)
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until it is empty, the target is dequeued,
// a hook fails or the context is cancelled. It reports whether the
// target was reached.
func (w *walker) loop() (bool, error) {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return false, w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return false, fmt.Errorf("bfs: OnVisit error at %q: %w", item.id, err)
		}
		if w.target != "" && item.id == w.target {
			return true, nil
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return false, err
		}
	}

	return false, nil
}

// enqueueNeighbors applies filtering and MaxDepth and enqueues each unseen
// neighbor in adjacency order.
func (w *walker) enqueueNeighbors(item queueItem) error {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil
	}

	links, err := w.net.Links(item.id)
	if err != nil {
		return fmt.Errorf("bfs: neighbors of %q: %w", item.id, err)
	}
	from, _ := w.net.Stop(item.id)
	for _, l := range links {
		if w.visited[l.To] {
			continue
		}
		if l.To != w.target {
			to, _ := w.net.Stop(l.To)
			if !w.opts.FilterNeighbor(from, to) {
				continue
			}
		}
		w.enqueue(l.To, nextDepth, item.id)
	}

	return nil
}
