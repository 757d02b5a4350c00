// Package sample builds the small three-line metro network used by the
// demo command, the "sample" network source and the tests.
//
//	Red     K1 ─4─ K2 ─6─ K3 ─8─ K4
//	Blue    M1 ─5─ M2 ─3─ M3 ─4─ M4
//	Orange  T1 ─7─ T2 ─9─ T3 ─5─ T4
//
// Transfer connections join the same station on two lines:
// K1═M2 Kızılay (2), K3═T2 Demetevler (3), M4═T3 Gar (2).
package sample

import "github.com/katalvlaran/metroroute/core"

// Line identifiers.
const (
	LineRed    = "Red"
	LineBlue   = "Blue"
	LineOrange = "Orange"
)

// StopDef describes one stop of the sample network.
type StopDef struct {
	ID, Name, Line string
}

// ConnDef describes one connection of the sample network.
type ConnDef struct {
	From, To string
	Cost     int64
}

// Stops lists the sample stops in registration order.
var Stops = []StopDef{
	{"K1", "Kızılay", LineRed},
	{"K2", "Ulus", LineRed},
	{"K3", "Demetevler", LineRed},
	{"K4", "OSB", LineRed},

	{"M1", "AŞTİ", LineBlue},
	{"M2", "Kızılay", LineBlue},
	{"M3", "Sıhhiye", LineBlue},
	{"M4", "Gar", LineBlue},

	{"T1", "Batıkent", LineOrange},
	{"T2", "Demetevler", LineOrange},
	{"T3", "Gar", LineOrange},
	{"T4", "Keçiören", LineOrange},
}

// Connections lists the sample connections in registration order.
var Connections = []ConnDef{
	{"K1", "K2", 4},
	{"K2", "K3", 6},
	{"K3", "K4", 8},

	{"M1", "M2", 5},
	{"M2", "M3", 3},
	{"M3", "M4", 4},

	{"T1", "T2", 7},
	{"T2", "T3", 9},
	{"T3", "T4", 5},

	// transfers
	{"K1", "M2", 2},
	{"K3", "T2", 3},
	{"M4", "T3", 2},
}

// Scenario is one of the demo queries.
type Scenario struct {
	Title    string
	From, To string
}

// Scenarios are the three demo queries.
var Scenarios = []Scenario{
	{"AŞTİ → OSB", "M1", "K4"},
	{"Batıkent → Keçiören", "T1", "T4"},
	{"Keçiören → AŞTİ", "T4", "M1"},
}

// Network builds a fresh, unfrozen sample network.
// It panics only if the static tables above are inconsistent.
func Network() *core.Network {
	n := core.NewNetwork()
	for _, s := range Stops {
		if err := n.AddStop(s.ID, s.Name, s.Line); err != nil {
			panic(err)
		}
	}
	for _, c := range Connections {
		if err := n.AddConnection(c.From, c.To, c.Cost); err != nil {
			panic(err)
		}
	}

	return n
}
