package netfile

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/metroroute/core"
)

var validate = validator.New()

// Decode reads a YAML definition from r and validates it.
func Decode(r io.Reader) (*File, error) {
	var f File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("netfile: decode: %w", err)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}

	return &f, nil
}

// Load reads and validates the definition at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return Decode(bytes.NewReader(data))
}

// Validate checks required fields, non-negative costs and segment counts.
func (f *File) Validate() error {
	for _, l := range f.Lines {
		if len(l.Segments) != 0 && len(l.Segments) != len(l.Stops)-1 {
			return fmt.Errorf("%w: line %q has %d stops and %d segments",
				ErrSegments, l.ID, len(l.Stops), len(l.Segments))
		}
	}
	if err := validate.Struct(f); err != nil {
		return fmt.Errorf("netfile: invalid definition: %w", err)
	}

	return nil
}

// Build registers every stop, then segment connections line by line, then
// transfers, then free-form connections.
//
// FromNetwork output rebuilds the source catalog in its original order.
// A line without segments gets no connections of its own. Stop IDs repeated
// across lines keep their first registration (core.Network.AddStop).
func (f *File) Build() (*core.Network, error) {
	n := core.NewNetwork()
	for _, l := range f.Lines {
		for _, s := range l.Stops {
			name := s.Name
			if name == "" {
				name = s.ID
			}
			if err := n.AddStop(s.ID, name, l.ID); err != nil {
				return nil, fmt.Errorf("netfile: line %q: %w", l.ID, err)
			}
		}
	}
	for _, l := range f.Lines {
		for i, cost := range l.Segments {
			if err := n.AddConnection(l.Stops[i].ID, l.Stops[i+1].ID, cost); err != nil {
				return nil, fmt.Errorf("netfile: line %q segment %d: %w", l.ID, i, err)
			}
		}
	}
	for _, group := range [][]Connection{f.Transfers, f.Connections} {
		for _, c := range group {
			if err := n.AddConnection(c.From, c.To, c.Cost); err != nil {
				return nil, fmt.Errorf("netfile: connection %s–%s: %w", c.From, c.To, err)
			}
		}
	}

	return n, nil
}

// FromNetwork describes n as a File whose Build registers the connections
// in n's catalog order and direction, so adjacency order and route
// tie-breaks survive an export and reload.
//
// Stops are grouped by line in registration order. When the catalog lists
// every line's consecutive pairs first, line by line, followed by the
// remaining connections, the compact form is used: segments per line,
// cross-line connections under Transfers and the rest under Connections.
// Otherwise no line gets segments and every connection is listed under
// Connections in catalog order.
func FromNetwork(n *core.Network) *File {
	conns := n.Connections()
	f := compactFile(n, conns)
	if sameOrder(f.registrationOrder(), conns) {
		return f
	}

	for i := range f.Lines {
		f.Lines[i].Segments = nil
	}
	f.Transfers = nil
	f.Connections = make([]Connection, len(conns))
	for i, c := range conns {
		f.Connections[i] = Connection{From: c.From, To: c.To, Cost: c.Cost}
	}

	return f
}

// compactFile builds the segment-based form of n.
func compactFile(n *core.Network, conns []core.Connection) *File {
	f := &File{}
	used := make([]bool, len(conns))

	for _, lineID := range n.Lines() {
		stops, _ := n.LineStops(lineID)
		l := Line{ID: lineID, Stops: make([]Stop, len(stops))}
		for i, s := range stops {
			l.Stops[i] = Stop{ID: s.ID(), Name: s.Name()}
		}
		if segs, idx, ok := segmentsFor(stops, conns, used); ok {
			l.Segments = segs
			for _, i := range idx {
				used[i] = true
			}
		}
		f.Lines = append(f.Lines, l)
	}

	for i, c := range conns {
		if used[i] {
			continue
		}
		from, _ := n.Stop(c.From)
		to, _ := n.Stop(c.To)
		conn := Connection{From: c.From, To: c.To, Cost: c.Cost}
		if from.Line() != to.Line() {
			f.Transfers = append(f.Transfers, conn)
		} else {
			f.Connections = append(f.Connections, conn)
		}
	}

	return f
}

// registrationOrder lists the connections in the order Build registers them.
func (f *File) registrationOrder() []Connection {
	var out []Connection
	for _, l := range f.Lines {
		for i, cost := range l.Segments {
			out = append(out, Connection{From: l.Stops[i].ID, To: l.Stops[i+1].ID, Cost: cost})
		}
	}
	out = append(out, f.Transfers...)

	return append(out, f.Connections...)
}

func sameOrder(got []Connection, want []core.Connection) bool {
	if len(got) != len(want) {
		return false
	}
	for i, c := range got {
		if c.From != want[i].From || c.To != want[i].To || c.Cost != want[i].Cost {
			return false
		}
	}

	return true
}

// segmentsFor finds, for each consecutive pair of stops, the first unused
// connection joining them.
func segmentsFor(stops []*core.Stop, conns []core.Connection, used []bool) ([]int64, []int, bool) {
	if len(stops) < 2 {
		return nil, nil, false
	}
	segs := make([]int64, 0, len(stops)-1)
	idx := make([]int, 0, len(stops)-1)
	for i := 0; i+1 < len(stops); i++ {
		a, b := stops[i].ID(), stops[i+1].ID()
		found := -1
		for j, c := range conns {
			if used[j] {
				continue
			}
			if (c.From == a && c.To == b) || (c.From == b && c.To == a) {
				found = j
				break
			}
		}
		if found < 0 {
			return nil, nil, false
		}
		segs = append(segs, conns[found].Cost)
		idx = append(idx, found)
	}

	return segs, idx, true
}

// Encode writes f as YAML.
func (f *File) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(f); err != nil {
		return fmt.Errorf("netfile: encode: %w", err)
	}

	return enc.Close()
}
