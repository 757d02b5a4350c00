// Package planner is the query facade of metroroute: it owns a frozen
// snapshot of a core.Network and answers the two route queries with the
// configured search options.
package planner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"sort"

	"github.com/katalvlaran/metroroute/astar"
	"github.com/katalvlaran/metroroute/bfs"
	"github.com/katalvlaran/metroroute/core"
	"github.com/katalvlaran/metroroute/dfs"
	"github.com/katalvlaran/metroroute/dijkstra"
)

// Sentinel errors for planner construction and queries.
var (
	// ErrNetworkNil indicates that New received a nil network.
	ErrNetworkNil = errors.New("planner: network is nil")

	// ErrBadOption indicates an invalid Option value.
	ErrBadOption = errors.New("planner: invalid option")

	// ErrUnknownStop indicates a stop ID that the network does not contain.
	ErrUnknownStop = errors.New("planner: unknown stop")
)

// Planner answers route queries over one network snapshot.
// It is safe for concurrent use.
type Planner struct {
	net         *core.Network
	penalty     int64
	maxFrontier int
	maxDepth    int
	logger      *log.Logger
}

// Option configures a Planner.
type Option func(*Planner) error

// WithLinePenalty sets the fastest-route line-change penalty (>= 0).
func WithLinePenalty(p int64) Option {
	return func(pl *Planner) error {
		if p < 0 {
			return fmt.Errorf("%w: line penalty %d", ErrBadOption, p)
		}
		pl.penalty = p
		return nil
	}
}

// WithMaxFrontier bounds the fastest-route frontier; 0 means unbounded.
func WithMaxFrontier(n int) Option {
	return func(pl *Planner) error {
		if n < 0 {
			return fmt.Errorf("%w: max frontier %d", ErrBadOption, n)
		}
		pl.maxFrontier = n
		return nil
	}
}

// WithMaxTransferDepth bounds the minimum-transfer search in hops; 0 means unbounded.
func WithMaxTransferDepth(d int) Option {
	return func(pl *Planner) error {
		if d < 0 {
			return fmt.Errorf("%w: max transfer depth %d", ErrBadOption, d)
		}
		pl.maxDepth = d
		return nil
	}
}

// WithLogger sets the query logger. A nil logger discards output.
func WithLogger(l *log.Logger) Option {
	return func(pl *Planner) error {
		if l == nil {
			l = log.New(io.Discard, "", 0)
		}
		pl.logger = l
		return nil
	}
}

// New snapshots n and returns a Planner over the snapshot.
//
// The snapshot is a frozen clone: later mutations of n are not seen by the
// planner, and n itself stays mutable.
func New(n *core.Network, opts ...Option) (*Planner, error) {
	if n == nil {
		return nil, ErrNetworkNil
	}
	p := &Planner{
		penalty: astar.DefaultLinePenalty,
		logger:  log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, err
		}
	}

	if n.Frozen() {
		p.net = n
	} else {
		p.net = n.Clone()
		p.net.Freeze()
	}

	st := p.net.Stats()
	p.logger.Printf("planner: %d stops, %d lines, %d connections (%d transfers), penalty=%d",
		st.StopCount, st.LineCount, st.ConnectionCount, st.TransferCount, p.penalty)
	if islands, err := dfs.Components(context.Background(), p.net); err == nil && len(islands) > 1 {
		p.logger.Printf("planner: network has %d islands; some stop pairs have no route", len(islands))
	}

	return p, nil
}

// Network returns the frozen snapshot the planner queries.
func (p *Planner) Network() *core.Network { return p.net }

// LinePenalty returns the configured line-change penalty.
func (p *Planner) LinePenalty() int64 { return p.penalty }

// FindMinTransferRoute returns the route with the fewest connections, or
// false when there is none (unknown IDs included).
func (p *Planner) FindMinTransferRoute(start, target string) (*core.Route, bool) {
	r, err := p.MinTransferRoute(context.Background(), start, target)
	if err != nil {
		if !errors.Is(err, core.ErrNoRoute) {
			p.logger.Printf("planner: min-transfer %s → %s: %v", start, target, err)
		}
		return nil, false
	}

	return r, true
}

// FindFastestRoute returns the route with the lowest travel time under the
// configured penalty, or false when there is none.
func (p *Planner) FindFastestRoute(start, target string) (*core.Route, bool) {
	r, err := p.FastestRoute(context.Background(), start, target)
	if err != nil {
		if !errors.Is(err, core.ErrNoRoute) {
			p.logger.Printf("planner: fastest %s → %s: %v", start, target, err)
		}
		return nil, false
	}

	return r, true
}

// MinTransferRoute runs the minimum-transfer search. Stops on avoidLines
// are skipped, except the target.
func (p *Planner) MinTransferRoute(ctx context.Context, start, target string, avoidLines ...string) (*core.Route, error) {
	opts := []bfs.Option{bfs.WithContext(ctx)}
	if p.maxDepth > 0 {
		opts = append(opts, bfs.WithMaxDepth(p.maxDepth))
	}
	if len(avoidLines) > 0 {
		opts = append(opts, bfs.WithAvoidLines(avoidLines...))
	}

	r, err := bfs.MinTransfers(p.net, start, target, opts...)
	if err != nil {
		return nil, err
	}
	p.logger.Printf("planner: min-transfer %s → %s: %d stops, %d transfers, %d min",
		start, target, r.Len(), r.Transfers(), r.Cost)

	return r, nil
}

// FastestRoute runs the fastest-route search. Stops on avoidLines are
// skipped, except the target.
func (p *Planner) FastestRoute(ctx context.Context, start, target string, avoidLines ...string) (*core.Route, error) {
	opts := []astar.Option{
		astar.WithContext(ctx),
		astar.WithLinePenalty(p.penalty),
		astar.WithMaxFrontier(p.maxFrontier),
	}
	if len(avoidLines) > 0 {
		opts = append(opts, astar.WithAvoidLines(avoidLines...))
	}

	r, err := astar.Fastest(p.net, start, target, opts...)
	if err != nil {
		return nil, err
	}
	p.logger.Printf("planner: fastest %s → %s: %d stops, %d transfers, %d min",
		start, target, r.Len(), r.Transfers(), r.Cost)

	return r, nil
}

// Reach is one entry of a travel-time table.
type Reach struct {
	Stop    *core.Stop
	Minutes int64
	// Via is the previous stop on the fastest route, empty for the origin.
	Via string
}

// TravelTimes lists every stop reachable from `from` within `within`
// minutes (0 means no limit), ordered by travel time and then by stop
// registration order.
func (p *Planner) TravelTimes(ctx context.Context, from string, within int64) ([]Reach, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !p.net.HasStop(from) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStop, from)
	}

	opts := []dijkstra.Option{dijkstra.Source(from), dijkstra.WithReturnPath()}
	if within > 0 {
		opts = append(opts, dijkstra.WithMaxDistance(within))
	}
	dist, prev, err := dijkstra.Dijkstra(p.net, opts...)
	if err != nil {
		return nil, err
	}

	out := make([]Reach, 0, len(dist))
	for _, s := range p.net.Stops() {
		d := dist[s.ID()]
		if d == dijkstra.Unreachable {
			continue
		}
		out = append(out, Reach{Stop: s, Minutes: d, Via: prev[s.ID()]})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Minutes < out[j].Minutes })

	return out, nil
}

// Unreachable lists the stops that no route from `from` can reach, in
// registration order.
func (p *Planner) Unreachable(ctx context.Context, from string) ([]*core.Stop, error) {
	res, err := bfs.Walk(p.net, from, bfs.WithContext(ctx))
	if err != nil {
		if errors.Is(err, bfs.ErrStartStopNotFound) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownStop, from)
		}
		return nil, err
	}

	var out []*core.Stop
	for _, s := range p.net.Stops() {
		if !res.Reached(s.ID()) {
			out = append(out, s)
		}
	}

	return out, nil
}

// Islands groups the stops into islands of mutually reachable stops, each in
// registration order. A connected network has exactly one island.
func (p *Planner) Islands(ctx context.Context) ([][]*core.Stop, error) {
	ids, err := dfs.Components(ctx, p.net)
	if err != nil {
		return nil, err
	}

	out := make([][]*core.Stop, len(ids))
	for i, island := range ids {
		out[i] = make([]*core.Stop, len(island))
		for j, id := range island {
			out[i][j], _ = p.net.Stop(id)
		}
	}

	return out, nil
}
