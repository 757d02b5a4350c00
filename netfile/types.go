// Package netfile reads and writes network definitions as YAML.
//
// A file lists lines in order, each with its stops and, optionally, the
// cost of every consecutive segment; transfer and free-form connections
// follow:
//
//	lines:
//	  - id: Red
//	    stops:
//	      - {id: K1, name: Kızılay}
//	      - {id: K2, name: Ulus}
//	    segments: [4]
//	transfers:
//	  - {from: K1, to: M2, cost: 2}
//	connections: []
package netfile

import "errors"

// ErrSegments indicates a line whose segment list does not match its stops.
var ErrSegments = errors.New("netfile: segments must be empty or one fewer than stops")

// File is the root of a network definition.
type File struct {
	Lines       []Line       `yaml:"lines" validate:"required,min=1,dive"`
	Transfers   []Connection `yaml:"transfers,omitempty" validate:"dive"`
	Connections []Connection `yaml:"connections,omitempty" validate:"dive"`
}

// Line is one line: its stops in travel order and the segment costs
// between consecutive stops.
type Line struct {
	ID       string  `yaml:"id" validate:"required"`
	Stops    []Stop  `yaml:"stops" validate:"required,min=1,dive"`
	Segments []int64 `yaml:"segments,omitempty" validate:"dive,gte=0"`
}

// Stop is one stop of a line.
type Stop struct {
	ID   string `yaml:"id" validate:"required"`
	Name string `yaml:"name"`
}

// Connection is an explicit connection between two stops.
type Connection struct {
	From string `yaml:"from" validate:"required"`
	To   string `yaml:"to" validate:"required"`
	Cost int64  `yaml:"cost" validate:"gte=0"`
}
