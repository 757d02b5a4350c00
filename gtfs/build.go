package gtfs

import (
	"fmt"
	"log"
	"sort"

	"github.com/katalvlaran/metroroute/core"
)

// DefaultTransferMinutes is the cost of a transfer without min_transfer_time.
const DefaultTransferMinutes int64 = 3

// BuildOptions controls how a Feed becomes a network.
type BuildOptions struct {
	// TransferMinutes is the default transfer cost; 0 uses DefaultTransferMinutes.
	TransferMinutes int64
	// RouteTypes keeps only routes of these GTFS route_type values; empty keeps all.
	RouteTypes []int
}

// NodeID is the network stop ID of GTFS stop stopID served by line.
func NodeID(line, stopID string) string { return line + "/" + stopID }

// BuildNetwork turns feed into a network.
//
//   - Every (line, stop) pair served by a trip becomes one core.Stop with ID
//     NodeID(line, stop_id). The line is the route short name, or the route
//     ID when the short name is empty.
//   - Consecutive stop_times of a trip give a connection costed in whole
//     minutes (rounded up) from departure to the next arrival. Among all
//     trips, the cheapest cost per stop pair is kept.
//   - Nodes of different lines at the same station (parent_station, or the
//     stop itself) are joined by transfer connections, and so are the nodes
//     of every transfers.txt pair. min_transfer_time overrides the default
//     cost; transfer_type 3 suppresses the transfer.
//
// Stops and connections are registered in first-seen order over trips.txt,
// so the same feed always builds the same network.
func BuildNetwork(feed *Feed, opts BuildOptions) (*core.Network, error) {
	if opts.TransferMinutes <= 0 {
		opts.TransferMinutes = DefaultTransferMinutes
	}
	b := &builder{
		feed:    feed,
		opts:    opts,
		net:     core.NewNetwork(),
		stops:   make(map[string]Stop, len(feed.Stops)),
		lines:   make(map[string]string, len(feed.Routes)),
		stopOf:  make(map[string]string),
		station: make(map[string][]string),
		edges:   make(map[[2]string]int),
	}

	b.indexStaticTables()
	if err := b.addTrips(); err != nil {
		return nil, err
	}
	if b.net.StopCount() == 0 {
		return nil, ErrEmptyFeed
	}
	b.addTransfers()

	for _, e := range b.order {
		if err := b.net.AddConnection(e.a, e.b, e.cost); err != nil {
			return nil, fmt.Errorf("gtfs: connection %s–%s: %w", e.a, e.b, err)
		}
	}

	st := b.net.Stats()
	log.Printf("GTFS network built: %d stops, %d lines, %d connections (%d transfers)",
		st.StopCount, st.LineCount, st.ConnectionCount, st.TransferCount)

	return b.net, nil
}

// edge is a pending connection; cost may still drop while trips are read.
type edge struct {
	a, b string
	cost int64
}

type builder struct {
	feed *Feed
	opts BuildOptions
	net  *core.Network

	stops        map[string]Stop   // stop_id → stop
	lines        map[string]string // route_id → line
	stopOf       map[string]string // node ID → stop_id
	station      map[string][]string
	stationOrder []string
	order        []edge
	edges        map[[2]string]int // unordered node pair → index in order
}

func (b *builder) indexStaticTables() {
	for _, s := range b.feed.Stops {
		b.stops[s.StopID] = s
	}
	keep := make(map[int]bool, len(b.opts.RouteTypes))
	for _, t := range b.opts.RouteTypes {
		keep[t] = true
	}
	for _, r := range b.feed.Routes {
		if len(keep) > 0 && !keep[r.RouteType] {
			continue
		}
		line := r.RouteShortName
		if line == "" {
			line = r.RouteID
		}
		b.lines[r.RouteID] = line
	}
}

func (b *builder) addTrips() error {
	byTrip := make(map[string][]StopTime, len(b.feed.Trips))
	for _, st := range b.feed.StopTimes {
		byTrip[st.TripID] = append(byTrip[st.TripID], st)
	}

	for _, trip := range b.feed.Trips {
		line, ok := b.lines[trip.RouteID]
		if !ok {
			continue
		}
		times := byTrip[trip.TripID]
		sort.SliceStable(times, func(i, j int) bool { return times[i].StopSequence < times[j].StopSequence })

		prev := ""
		prevDep := -1
		for _, st := range times {
			node, err := b.addNode(line, st.StopID)
			if err != nil {
				return err
			}
			arr, okArr := parseClock(st.ArrivalTime)
			if !okArr {
				arr, okArr = parseClock(st.DepartureTime)
			}
			if prev != "" && prev != node && prevDep >= 0 && okArr {
				b.offer(prev, node, ceilMinutes(arr-prevDep))
			}

			dep, okDep := parseClock(st.DepartureTime)
			if !okDep {
				dep, okDep = arr, okArr
			}
			prev = node
			prevDep = -1
			if okDep {
				prevDep = dep
			}
		}
	}

	return nil
}

// addNode registers the (line, stop) node on first sight.
func (b *builder) addNode(line, stopID string) (string, error) {
	node := NodeID(line, stopID)
	if _, seen := b.stopOf[node]; seen {
		return node, nil
	}
	s := b.stops[stopID]
	name := s.StopName
	if name == "" {
		name = stopID
	}
	if err := b.net.AddStop(node, name, line); err != nil {
		return "", fmt.Errorf("gtfs: stop %q: %w", node, err)
	}
	b.stopOf[node] = stopID

	key := s.ParentStation
	if key == "" {
		key = stopID
	}
	if _, known := b.station[key]; !known {
		b.stationOrder = append(b.stationOrder, key)
	}
	b.station[key] = append(b.station[key], node)

	return node, nil
}

// offer records a connection a–b, keeping the cheapest cost per pair.
func (b *builder) offer(a, c string, cost int64) {
	key := pairKey(a, c)
	if i, ok := b.edges[key]; ok {
		if cost < b.order[i].cost {
			b.order[i].cost = cost
		}
		return
	}
	b.edges[key] = len(b.order)
	b.order = append(b.order, edge{a: a, b: c, cost: cost})
}

func (b *builder) addTransfers() {
	explicit := make(map[[2]string]Transfer, len(b.feed.Transfers))
	for _, t := range b.feed.Transfers {
		explicit[[2]string{t.FromStopID, t.ToStopID}] = t
		if _, ok := explicit[[2]string{t.ToStopID, t.FromStopID}]; !ok {
			explicit[[2]string{t.ToStopID, t.FromStopID}] = t
		}
	}
	done := make(map[[2]string]bool)

	link := func(a, c string, t *Transfer) {
		key := pairKey(a, c)
		if a == c || done[key] {
			return
		}
		done[key] = true
		cost := b.opts.TransferMinutes
		if t != nil {
			if t.TransferType == TransferNotPossible {
				return
			}
			if t.MinTransferTime > 0 {
				cost = ceilMinutes(t.MinTransferTime)
			}
		}
		b.offer(a, c, cost)
	}

	for _, key := range b.stationOrder {
		nodes := b.station[key]
		for i := 0; i < len(nodes); i++ {
			for j := i + 1; j < len(nodes); j++ {
				si, _ := b.net.Stop(nodes[i])
				sj, _ := b.net.Stop(nodes[j])
				if si.Line() == sj.Line() {
					continue
				}
				var tp *Transfer
				if t, ok := explicit[[2]string{b.stopOf[nodes[i]], b.stopOf[nodes[j]]}]; ok {
					tp = &t
				}
				link(nodes[i], nodes[j], tp)
			}
		}
	}

	byStop := make(map[string][]string, len(b.stopOf))
	for _, node := range b.nodesInOrder() {
		byStop[b.stopOf[node]] = append(byStop[b.stopOf[node]], node)
	}
	for i := range b.feed.Transfers {
		t := b.feed.Transfers[i]
		if t.FromStopID == t.ToStopID {
			continue
		}
		for _, a := range byStop[t.FromStopID] {
			for _, c := range byStop[t.ToStopID] {
				link(a, c, &t)
			}
		}
	}
}

func (b *builder) nodesInOrder() []string {
	stops := b.net.Stops()
	out := make([]string, len(stops))
	for i, s := range stops {
		out[i] = s.ID()
	}
	return out
}

func pairKey(a, b string) [2]string {
	if a > b {
		a, b = b, a
	}
	return [2]string{a, b}
}

// ceilMinutes rounds seconds up to whole minutes; negative spans count as 0.
func ceilMinutes(seconds int) int64 {
	if seconds <= 0 {
		return 0
	}
	return int64((seconds + 59) / 60)
}
