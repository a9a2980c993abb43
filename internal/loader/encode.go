package loader

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// Section headers written by Encode.
const (
	headerConveyor   = "# Section: Conveyor System"
	headerDepartures = "# Section: Departures"
	headerBags       = "# Section: Bags"
)

// Encode writes m in the format read by Parse. Departures are written in
// flight order and bags in their stored order. Problems are not written.
func Encode(w io.Writer, m *Manifest) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, headerConveyor)
	for _, l := range m.Links {
		fmt.Fprintf(bw, "%s %s %d\n", l.A, l.B, l.Cost)
	}

	fmt.Fprintln(bw, headerDepartures)
	for _, f := range m.Flights() {
		d := m.Departures[f]
		fields := []string{d.Flight, d.Gate}
		switch {
		case d.Time != "":
			dest := d.Destination
			if dest == "" {
				dest = NoDestination
			}
			fields = append(fields, dest, d.Time)
		case d.Destination != "":
			fields = append(fields, d.Destination)
		}
		fmt.Fprintln(bw, strings.Join(fields, " "))
	}

	fmt.Fprintln(bw, headerBags)
	for _, b := range m.Bags {
		fmt.Fprintf(bw, "%s %s %s\n", b.ID, b.Entry, b.Flight)
	}

	return errors.Wrap(bw.Flush(), "loader: encode")
}
