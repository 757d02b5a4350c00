package gtfs

import (
	"archive/zip"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"strconv"
	"strings"
)

// ParseZip reads a GTFS zip archive.
func ParseZip(zipPath string) (*Feed, error) {
	r, err := zip.OpenReader(zipPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open zip: %w", err)
	}
	defer r.Close()

	return Parse(r)
}

// Parse reads the GTFS tables from fsys. stops.txt, routes.txt, trips.txt
// and stop_times.txt are required; transfers.txt is optional.
// Malformed rows are skipped.
func Parse(fsys fs.FS) (*Feed, error) {
	feed := &Feed{}

	required := []struct {
		name  string
		parse func(rec []string, idx map[string]int)
	}{
		{"routes.txt", func(rec []string, idx map[string]int) {
			routeType, _ := strconv.Atoi(getField(rec, idx, "route_type"))
			feed.Routes = append(feed.Routes, Route{
				RouteID:        getField(rec, idx, "route_id"),
				AgencyID:       getField(rec, idx, "agency_id"),
				RouteShortName: getField(rec, idx, "route_short_name"),
				RouteLongName:  getField(rec, idx, "route_long_name"),
				RouteType:      routeType,
			})
		}},
		{"stops.txt", func(rec []string, idx map[string]int) {
			locType, _ := strconv.Atoi(getField(rec, idx, "location_type"))
			feed.Stops = append(feed.Stops, Stop{
				StopID:        getField(rec, idx, "stop_id"),
				StopName:      getField(rec, idx, "stop_name"),
				LocationType:  locType,
				ParentStation: getField(rec, idx, "parent_station"),
			})
		}},
		{"trips.txt", func(rec []string, idx map[string]int) {
			feed.Trips = append(feed.Trips, Trip{
				RouteID:   getField(rec, idx, "route_id"),
				ServiceID: getField(rec, idx, "service_id"),
				TripID:    getField(rec, idx, "trip_id"),
			})
		}},
		{"stop_times.txt", func(rec []string, idx map[string]int) {
			seq, err := strconv.Atoi(getField(rec, idx, "stop_sequence"))
			if err != nil {
				return
			}
			feed.StopTimes = append(feed.StopTimes, StopTime{
				TripID:        getField(rec, idx, "trip_id"),
				ArrivalTime:   getField(rec, idx, "arrival_time"),
				DepartureTime: getField(rec, idx, "departure_time"),
				StopID:        getField(rec, idx, "stop_id"),
				StopSequence:  seq,
			})
		}},
	}
	for _, t := range required {
		if err := readTable(fsys, t.name, t.parse); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("%w: %s", ErrMissingFile, t.name)
			}
			return nil, fmt.Errorf("gtfs: %s: %w", t.name, err)
		}
	}

	err := readTable(fsys, "transfers.txt", func(rec []string, idx map[string]int) {
		transferType, _ := strconv.Atoi(getField(rec, idx, "transfer_type"))
		minTime, _ := strconv.Atoi(getField(rec, idx, "min_transfer_time"))
		feed.Transfers = append(feed.Transfers, Transfer{
			FromStopID:      getField(rec, idx, "from_stop_id"),
			ToStopID:        getField(rec, idx, "to_stop_id"),
			TransferType:    transferType,
			MinTransferTime: minTime,
		})
	})
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("Warning: failed to parse transfers.txt: %v", err)
	}

	log.Printf("GTFS parsed: %d routes, %d stops, %d trips, %d stop times, %d transfers",
		len(feed.Routes), len(feed.Stops), len(feed.Trips), len(feed.StopTimes), len(feed.Transfers))

	return feed, nil
}

// readTable streams the rows of one CSV table to fn.
func readTable(fsys fs.FS, name string, fn func(rec []string, idx map[string]int)) error {
	f, err := fsys.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	header, err := reader.Read()
	if err != nil {
		return err
	}

	idx := makeIndex(header)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue
		}
		fn(record, idx)
	}

	return nil
}

func makeIndex(header []string) map[string]int {
	idx := make(map[string]int)
	for i, h := range header {
		// strip a UTF-8 BOM some exporters prepend to the first column
		idx[strings.TrimPrefix(strings.TrimSpace(h), "\ufeff")] = i
	}
	return idx
}

func getField(record []string, idx map[string]int, field string) string {
	if i, ok := idx[field]; ok && i < len(record) {
		return strings.TrimSpace(record[i])
	}
	return ""
}

// parseClock converts a GTFS "HH:MM:SS" time (hours may exceed 23) to seconds.
func parseClock(s string) (int, bool) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return 0, false
	}
	h, err1 := strconv.Atoi(parts[0])
	m, err2 := strconv.Atoi(parts[1])
	sec, err3 := strconv.Atoi(parts[2])
	if err1 != nil || err2 != nil || err3 != nil {
		return 0, false
	}

	return h*3600 + m*60 + sec, true
}
