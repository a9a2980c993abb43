package loader

import (
	"sort"

	"github.com/katalvlaran/conveyor/core"
)

// Section identifies a part of the manifest.
type Section int

// Sections in file order. SectionNone is the preamble before the first marker.
const (
	SectionNone Section = iota
	SectionConveyor
	SectionDepartures
	SectionBags
)

// String returns a short name used in logs and errors.
func (s Section) String() string {
	switch s {
	case SectionNone:
		return "preamble"
	case SectionConveyor:
		return "conveyor"
	case SectionDepartures:
		return "departures"
	case SectionBags:
		return "bags"
	default:
		return "trailer"
	}
}

// NoDestination stands in for an empty Destination when a departure line
// still carries a time.
const NoDestination = "-"

// Departure maps a flight to the gate it leaves from.
type Departure struct {
	Flight      string `json:"flight"`
	Gate        string `json:"gate"`
	Destination string `json:"destination,omitempty"`
	Time        string `json:"time,omitempty"`
}

// Bag is one item to route from Entry to the gate of Flight (or to the
// claim junction when Flight is the arrival tag).
type Bag struct {
	ID     string `json:"id"`
	Entry  string `json:"entry"`
	Flight string `json:"flight"`
}

// Manifest is the parsed input. It is built once by Parse and only read
// afterwards.
type Manifest struct {
	Links      []core.Link
	Departures map[string]Departure
	Bags       []Bag // ascending by ID
	Problems   []*LineError
}

// Graph builds the junction graph from the manifest's links.
func (m *Manifest) Graph(opts ...core.GraphOption) (*core.Graph, error) {
	return core.FromLinks(m.Links, opts...)
}

// Flights returns the departure flight IDs in ascending order.
func (m *Manifest) Flights() []string {
	out := make([]string, 0, len(m.Departures))
	for f := range m.Departures {
		out = append(out, f)
	}
	sort.Strings(out)

	return out
}
