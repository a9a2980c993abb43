// Package loader reads and writes the sectioned text manifest that describes
// a conveyor network, the departing flights and the bags to route.
//
// A manifest has three sections, each opened by a line containing the
// section marker ("#" by default) as a whitespace-separated token:
//
//	# Section: Conveyor System
//	<junction> <junction> <cost>
//	# Section: Departures
//	<flight> <gate> [<destination> [<time>]]
//	# Section: Bags
//	<bag> <entry junction> <flight | ARRIVAL>
//
// Parse never stops at a bad line. Every rejected line is kept in
// Manifest.Problems as a *LineError and the rest of the input is still read.
package loader
