// Package dfs implements depth-first traversal (single-source and forest)
// on a core.Network, and splits a network into islands: groups of stops
// that can reach each other.
//
// Key features:
//   - DFS(n, startID, opts...): traverse from a root or the full forest via WithFullTraversal
//   - Components(ctx, n): islands in stop registration order
//   - Hooks: OnVisit (pre-order) & OnExit (post-order) with error aborts
//   - Limits: MaxDepth, FilterNeighbor, SkippedNeighbors diagnostic count
//   - Cancellation via context.Context
//
// Complexity:
//
//   - Time:   O(V + E) plus the cost of hooks and filters.
//   - Memory: O(V) for the recursion stack and metadata maps.
package dfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/metroroute/core"
)

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	net  *core.Network
	opts DFSOptions
	res  *DFSResult
	root string // root of the tree being walked
}

// DFS performs depth-first search on n. With WithFullTraversal it covers
// every island, starting trees in stop registration order and ignoring
// startID; otherwise it starts only from startID.
// Returns the partial result together with any context or hook error.
func DFS(n *core.Network, startID string, opts ...Option) (*DFSResult, error) {
	if n == nil {
		return nil, ErrNetworkNil
	}

	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	if !dopts.FullTraversal && !n.HasStop(startID) {
		return nil, fmt.Errorf("%w: %q", ErrStartStopNotFound, startID)
	}

	stops := n.Stops()
	res := &DFSResult{
		Order:   make([]string, 0, len(stops)),
		Depth:   make(map[string]int, len(stops)),
		Parent:  make(map[string]string, len(stops)),
		Root:    make(map[string]string, len(stops)),
		Visited: make(map[string]bool, len(stops)),
	}

	w := &dfsWalker{net: n, opts: dopts, res: res}

	if dopts.FullTraversal {
		for _, s := range stops {
			if res.Visited[s.ID()] {
				continue
			}
			if err := w.tree(s.ID()); err != nil {
				return res, err
			}
		}
	} else if err := w.tree(startID); err != nil {
		return res, err
	}

	res.SkippedNeighbors = w.opts.SkippedNeighbors

	return res, nil
}

// tree walks one DFS tree rooted at id.
func (w *dfsWalker) tree(id string) error {
	w.root = id
	w.res.Roots = append(w.res.Roots, id)

	return w.traverse(id, 0)
}

// traverse visits stop id at the given depth, recursing into its links.
func (w *dfsWalker) traverse(id string, depth int) error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	if w.opts.MaxDepth >= 0 && depth > w.opts.MaxDepth {
		return nil
	}

	w.res.Visited[id] = true
	w.res.Depth[id] = depth
	w.res.Root[id] = w.root

	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id); err != nil {
			w.res.Order = nil

			return fmt.Errorf("dfs: OnVisit hook for %q: %w", id, err)
		}
	}

	links, err := w.net.Links(id)
	if err != nil {
		w.res.Order = nil

		return fmt.Errorf("dfs: Links(%q): %w", id, err)
	}
	from, _ := w.net.Stop(id)

	for _, l := range links {
		if l.To == id {
			continue // self-loop
		}
		if w.opts.FilterNeighbor != nil {
			to, _ := w.net.Stop(l.To)
			if !w.opts.FilterNeighbor(from, to) {
				w.opts.SkippedNeighbors++
				continue
			}
		}
		if w.res.Visited[l.To] {
			continue
		}
		w.res.Parent[l.To] = id
		if err = w.traverse(l.To, depth+1); err != nil {
			return err
		}
	}

	if w.opts.OnExit != nil {
		if err = w.opts.OnExit(id); err != nil {
			w.res.Order = nil

			return fmt.Errorf("dfs: OnExit hook for %q: %w", id, err)
		}
	}

	w.res.Order = append(w.res.Order, id)

	return nil
}

// Components splits n into islands. Each island lists its stop IDs in
// registration order; islands are ordered by their first stop. A network
// without stops has no islands.
func Components(ctx context.Context, n *core.Network) ([][]string, error) {
	res, err := DFS(n, "", WithContext(ctx), WithFullTraversal())
	if err != nil {
		return nil, err
	}

	index := make(map[string]int, len(res.Roots))
	for i, r := range res.Roots {
		index[r] = i
	}
	out := make([][]string, len(res.Roots))
	for _, s := range n.Stops() {
		i := index[res.Root[s.ID()]]
		out[i] = append(out[i], s.ID())
	}

	return out, nil
}
