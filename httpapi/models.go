package httpapi

import (
	"time"

	"github.com/katalvlaran/metroroute/core"
	"github.com/katalvlaran/metroroute/planner"
)

// ErrorResponse is the JSON body of every non-2xx response.
type ErrorResponse struct {
	Error   string                 `json:"error"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// HealthResponse is the JSON response for GET /health
type HealthResponse struct {
	Status      string    `json:"status"`
	Stops       int       `json:"stops"`
	Lines       int       `json:"lines"`
	Connections int       `json:"connections"`
	Transfers   int       `json:"transfers"`
	LinePenalty int64     `json:"linePenalty"`
	Timestamp   time.Time `json:"timestamp"`
}

// StopJSON is a stop as returned by the API.
type StopJSON struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Line string `json:"line"`
}

// LinkJSON is one adjacency entry of a stop.
type LinkJSON struct {
	To   string `json:"to"`
	Cost int64  `json:"cost"`
}

// StopDetailResponse is the JSON response for GET /api/stops/{stopID}
type StopDetailResponse struct {
	StopJSON
	Links []LinkJSON `json:"links"`
}

// LineSummary is one entry of GET /api/lines
type LineSummary struct {
	ID        string `json:"id"`
	StopCount int    `json:"stopCount"`
}

// LinesResponse is the JSON response for GET /api/lines
type LinesResponse struct {
	Lines []LineSummary `json:"lines"`
	Count int           `json:"count"`
}

// LineResponse is the JSON response for GET /api/lines/{lineID}
type LineResponse struct {
	ID    string     `json:"id"`
	Stops []StopJSON `json:"stops"`
}

// RouteResponse is the JSON response for both route queries.
type RouteResponse struct {
	Kind      string     `json:"kind"`
	From      string     `json:"from"`
	To        string     `json:"to"`
	Stops     []StopJSON `json:"stops"`
	Cost      int64      `json:"cost"`
	Hops      int        `json:"hops"`
	Transfers int        `json:"transfers"`
	Itinerary string     `json:"itinerary"`
}

// ReachJSON is one entry of a travel-time table.
type ReachJSON struct {
	Stop    StopJSON `json:"stop"`
	Minutes int64    `json:"minutes"`
	Via     string   `json:"via,omitempty"`
}

// TravelTimesResponse is the JSON response for GET /api/stops/{stopID}/travel-times
type TravelTimesResponse struct {
	From   string      `json:"from"`
	Within int64       `json:"within"`
	Reach  []ReachJSON `json:"reach"`
	Count  int         `json:"count"`
}

// UnreachableResponse is the JSON response for GET /api/stops/{stopID}/unreachable
type UnreachableResponse struct {
	From  string     `json:"from"`
	Stops []StopJSON `json:"stops"`
	Count int        `json:"count"`
}

// IslandsResponse is the JSON response for GET /api/islands
type IslandsResponse struct {
	Islands [][]StopJSON `json:"islands"`
	Count   int          `json:"count"`
}

func stopJSON(s *core.Stop) StopJSON {
	return StopJSON{ID: s.ID(), Name: s.Name(), Line: s.Line()}
}

func routeResponse(kind, from, to string, r *core.Route) RouteResponse {
	stops := make([]StopJSON, len(r.Stops))
	for i, s := range r.Stops {
		stops[i] = stopJSON(s)
	}
	return RouteResponse{
		Kind:      kind,
		From:      from,
		To:        to,
		Stops:     stops,
		Cost:      r.Cost,
		Hops:      r.Hops(),
		Transfers: r.Transfers(),
		Itinerary: r.String(),
	}
}

func reachJSON(r planner.Reach) ReachJSON {
	return ReachJSON{Stop: stopJSON(r.Stop), Minutes: r.Minutes, Via: r.Via}
}
