package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/katalvlaran/metroroute/astar"
	"github.com/katalvlaran/metroroute/core"
	"github.com/katalvlaran/metroroute/planner"
)

// StatusClientClosedRequest reports a search abandoned because the caller
// went away.
const StatusClientClosedRequest = 499

// Handler serves the API endpoints.
type Handler struct {
	planner *planner.Planner
}

// Health handles GET /health
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	st := h.planner.Network().Stats()
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:      "ok",
		Stops:       st.StopCount,
		Lines:       st.LineCount,
		Connections: st.ConnectionCount,
		Transfers:   st.TransferCount,
		LinePenalty: h.planner.LinePenalty(),
		Timestamp:   time.Now().UTC(),
	})
}

// GetLines handles GET /api/lines
func (h *Handler) GetLines(w http.ResponseWriter, r *http.Request) {
	n := h.planner.Network()
	lines := n.Lines()
	resp := LinesResponse{Lines: make([]LineSummary, 0, len(lines)), Count: len(lines)}
	for _, id := range lines {
		stops, _ := n.LineStops(id)
		resp.Lines = append(resp.Lines, LineSummary{ID: id, StopCount: len(stops)})
	}

	w.Header().Set("Cache-Control", "public, max-age=60")
	writeJSON(w, http.StatusOK, resp)
}

// GetLine handles GET /api/lines/{lineID}
func (h *Handler) GetLine(w http.ResponseWriter, r *http.Request) {
	lineID := chi.URLParam(r, "lineID")
	stops, ok := h.planner.Network().LineStops(lineID)
	if !ok {
		writeError(w, http.StatusNotFound, "Line not found", map[string]interface{}{"lineID": lineID})
		return
	}

	resp := LineResponse{ID: lineID, Stops: make([]StopJSON, len(stops))}
	for i, s := range stops {
		resp.Stops[i] = stopJSON(s)
	}
	writeJSON(w, http.StatusOK, resp)
}

// GetStop handles GET /api/stops/{stopID}
func (h *Handler) GetStop(w http.ResponseWriter, r *http.Request) {
	stopID := chi.URLParam(r, "stopID")
	n := h.planner.Network()
	s, ok := n.Stop(stopID)
	if !ok {
		writeError(w, http.StatusNotFound, "Stop not found", map[string]interface{}{"stopID": stopID})
		return
	}

	links, _ := n.Links(stopID)
	resp := StopDetailResponse{StopJSON: stopJSON(s), Links: make([]LinkJSON, len(links))}
	for i, l := range links {
		resp.Links[i] = LinkJSON{To: l.To, Cost: l.Cost}
	}
	writeJSON(w, http.StatusOK, resp)
}

// GetTravelTimes handles GET /api/stops/{stopID}/travel-times?within=
func (h *Handler) GetTravelTimes(w http.ResponseWriter, r *http.Request) {
	stopID := chi.URLParam(r, "stopID")
	var within int64
	if v := r.URL.Query().Get("within"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, "within must be a non-negative integer", map[string]interface{}{"within": v})
			return
		}
		within = n
	}

	reach, err := h.planner.TravelTimes(r.Context(), stopID, within)
	if err != nil {
		writeQueryError(w, err, map[string]interface{}{"stopID": stopID})
		return
	}

	resp := TravelTimesResponse{From: stopID, Within: within, Reach: make([]ReachJSON, len(reach)), Count: len(reach)}
	for i, rc := range reach {
		resp.Reach[i] = reachJSON(rc)
	}
	writeJSON(w, http.StatusOK, resp)
}

// GetUnreachable handles GET /api/stops/{stopID}/unreachable
func (h *Handler) GetUnreachable(w http.ResponseWriter, r *http.Request) {
	stopID := chi.URLParam(r, "stopID")
	stops, err := h.planner.Unreachable(r.Context(), stopID)
	if err != nil {
		writeQueryError(w, err, map[string]interface{}{"stopID": stopID})
		return
	}

	resp := UnreachableResponse{From: stopID, Stops: make([]StopJSON, len(stops)), Count: len(stops)}
	for i, s := range stops {
		resp.Stops[i] = stopJSON(s)
	}
	writeJSON(w, http.StatusOK, resp)
}

// GetIslands handles GET /api/islands
func (h *Handler) GetIslands(w http.ResponseWriter, r *http.Request) {
	islands, err := h.planner.Islands(r.Context())
	if err != nil {
		writeQueryError(w, err, nil)
		return
	}

	resp := IslandsResponse{Islands: make([][]StopJSON, len(islands)), Count: len(islands)}
	for i, island := range islands {
		resp.Islands[i] = make([]StopJSON, len(island))
		for j, s := range island {
			resp.Islands[i][j] = stopJSON(s)
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

// GetMinTransferRoute handles GET /api/routes/min-transfer?from=&to=&avoid=
func (h *Handler) GetMinTransferRoute(w http.ResponseWriter, r *http.Request) {
	h.route(w, r, "min-transfer", h.planner.MinTransferRoute)
}

// GetFastestRoute handles GET /api/routes/fastest?from=&to=&avoid=
func (h *Handler) GetFastestRoute(w http.ResponseWriter, r *http.Request) {
	h.route(w, r, "fastest", h.planner.FastestRoute)
}

type routeFunc func(ctx context.Context, from, to string, avoidLines ...string) (*core.Route, error)

func (h *Handler) route(w http.ResponseWriter, r *http.Request, kind string, find routeFunc) {
	q := r.URL.Query()
	from, to := q.Get("from"), q.Get("to")
	if from == "" || to == "" {
		writeError(w, http.StatusBadRequest, "from and to parameters are required", nil)
		return
	}
	avoid := splitList(q.Get("avoid"))

	route, err := find(r.Context(), from, to, avoid...)
	if err != nil {
		writeQueryError(w, err, map[string]interface{}{"from": from, "to": to})
		return
	}
	writeJSON(w, http.StatusOK, routeResponse(kind, from, to, route))
}

// splitList parses a comma-separated query value.
func splitList(v string) []string {
	var out []string
	for _, p := range strings.Split(v, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// writeQueryError maps planner and search errors to HTTP statuses.
func writeQueryError(w http.ResponseWriter, err error, details map[string]interface{}) {
	switch {
	case errors.Is(err, core.ErrNoRoute):
		writeError(w, http.StatusNotFound, "No route found", details)
	case errors.Is(err, planner.ErrUnknownStop):
		writeError(w, http.StatusNotFound, "Stop not found", details)
	case errors.Is(err, astar.ErrFrontierExceeded):
		writeError(w, http.StatusServiceUnavailable, "Search limit exceeded", details)
	case errors.Is(err, context.DeadlineExceeded):
		writeError(w, http.StatusGatewayTimeout, "Search timed out", details)
	case errors.Is(err, context.Canceled):
		writeError(w, StatusClientClosedRequest, "Request cancelled", details)
	default:
		log.Printf("query failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Query failed", details)
	}
}

func writeError(w http.ResponseWriter, status int, msg string, details map[string]interface{}) {
	writeJSON(w, status, ErrorResponse{Error: msg, Details: details})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
