package core

import "strings"

// ItinerarySeparator is the separator used by Route.String.
const ItinerarySeparator = " -> "

// Route is the outcome of a successful query: the ordered stops from start
// to target inclusive, and the total travel cost along them.
type Route struct {
	Stops []*Stop
	Cost  int64
}

// Len returns the number of stops on the route.
func (r *Route) Len() int { return len(r.Stops) }

// Hops returns the number of connections traversed.
func (r *Route) Hops() int {
	if len(r.Stops) == 0 {
		return 0
	}

	return len(r.Stops) - 1
}

// Origin returns the first stop, or nil for an empty route.
func (r *Route) Origin() *Stop {
	if len(r.Stops) == 0 {
		return nil
	}

	return r.Stops[0]
}

// Destination returns the last stop, or nil for an empty route.
func (r *Route) Destination() *Stop {
	if len(r.Stops) == 0 {
		return nil
	}

	return r.Stops[len(r.Stops)-1]
}

// IDs returns the stop IDs along the route.
func (r *Route) IDs() []string {
	out := make([]string, len(r.Stops))
	for i, s := range r.Stops {
		out[i] = s.id
	}

	return out
}

// Names returns the display names along the route.
func (r *Route) Names() []string {
	out := make([]string, len(r.Stops))
	for i, s := range r.Stops {
		out[i] = s.name
	}

	return out
}

// Transfers counts consecutive stop pairs whose lines differ.
func (r *Route) Transfers() int {
	n := 0
	for i := 1; i < len(r.Stops); i++ {
		if r.Stops[i-1].line != r.Stops[i].line {
			n++
		}
	}

	return n
}

// Itinerary joins the display names with sep.
func (r *Route) Itinerary(sep string) string {
	return strings.Join(r.Names(), sep)
}

// String renders the itinerary with ItinerarySeparator.
func (r *Route) String() string { return r.Itinerary(ItinerarySeparator) }
