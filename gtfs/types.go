// Package gtfs imports a static GTFS feed as a core.Network.
//
// Parse reads the CSV tables from any fs.FS (a directory, or a zip archive
// via ParseZip); BuildNetwork turns the parsed Feed into stops, timed
// connections and transfers.
package gtfs

import "errors"

var (
	// ErrMissingFile indicates that a required GTFS table is absent.
	ErrMissingFile = errors.New("gtfs: required file missing")

	// ErrEmptyFeed indicates that no trip produced a stop.
	ErrEmptyFeed = errors.New("gtfs: feed yields no stops")
)

// TransferNotPossible is the transfers.txt transfer_type that forbids a transfer.
const TransferNotPossible = 3

// Feed holds the parsed tables of a GTFS feed.
type Feed struct {
	Routes    []Route
	Stops     []Stop
	Trips     []Trip
	StopTimes []StopTime
	Transfers []Transfer
}

// Route represents a route from routes.txt
type Route struct {
	RouteID        string
	AgencyID       string
	RouteShortName string
	RouteLongName  string
	RouteType      int
}

// Stop represents a stop from stops.txt
type Stop struct {
	StopID        string
	StopName      string
	LocationType  int
	ParentStation string
}

// Trip represents a trip from trips.txt
type Trip struct {
	RouteID   string
	ServiceID string
	TripID    string
}

// StopTime represents a stop time from stop_times.txt
type StopTime struct {
	TripID        string
	ArrivalTime   string
	DepartureTime string
	StopID        string
	StopSequence  int
}

// Transfer represents a row of transfers.txt
type Transfer struct {
	FromStopID      string
	ToStopID        string
	TransferType    int
	MinTransferTime int // seconds, 0 if absent
}
