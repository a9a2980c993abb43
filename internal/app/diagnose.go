package app

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/katalvlaran/conveyor/bfs"
	"github.com/katalvlaran/conveyor/core"
	"github.com/katalvlaran/conveyor/internal/baggage"
	"github.com/katalvlaran/conveyor/internal/loader"
)

// Diagnostics summarizes a manifest and its network for check mode.
type Diagnostics struct {
	Stats      core.GraphStats
	Components [][]string

	// Claim is the claim junction; ClaimHops is the largest hop count from
	// it to any junction it reaches, or -1 when the claim is not in the network.
	Claim     string
	ClaimHops int

	Problems     []*loader.LineError
	MissingGates []loader.Departure
	Unrouted     []baggage.Outcome
}

// Diagnose routes every bag and collects network and input diagnostics.
func Diagnose(ctx context.Context, m *loader.Manifest, router *baggage.Router) *Diagnostics {
	g := router.Graph()
	d := &Diagnostics{
		Stats:      g.Stats(),
		Components: bfs.Components(g),
		Claim:      router.ClaimJunction(),
		ClaimHops:  -1,
		Problems:   m.Problems,
	}

	if res, err := bfs.BFS(g, d.Claim, bfs.WithContext(ctx)); err == nil {
		for _, depth := range res.Depth {
			if depth > d.ClaimHops {
				d.ClaimHops = depth
			}
		}
	}

	for _, f := range m.Flights() {
		if dep := m.Departures[f]; !g.HasJunction(dep.Gate) {
			d.MissingGates = append(d.MissingGates, dep)
		}
	}
	d.Unrouted = router.Run(ctx, m).Failed()

	return d
}

// Clean reports whether nothing needs attention.
func (d *Diagnostics) Clean() bool {
	return len(d.Problems) == 0 && len(d.MissingGates) == 0 && len(d.Unrouted) == 0
}

// WriteTo writes the diagnostics as "key: value" lines. It implements io.WriterTo.
func (d *Diagnostics) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: bufio.NewWriter(w)}

	fmt.Fprintf(cw, "junctions: %d\n", d.Stats.Junctions)
	fmt.Fprintf(cw, "connections: %d\n", d.Stats.Connections)
	fmt.Fprintf(cw, "isolated: %d\n", d.Stats.Isolated)
	fmt.Fprintf(cw, "components: %d\n", len(d.Components))
	if d.ClaimHops < 0 {
		fmt.Fprintf(cw, "claim: %s (not in network)\n", d.Claim)
	} else {
		fmt.Fprintf(cw, "claim: %s (max %d hops)\n", d.Claim, d.ClaimHops)
	}
	fmt.Fprintf(cw, "problems: %d\n", len(d.Problems))
	for _, p := range d.Problems {
		fmt.Fprintf(cw, "  %v\n", p)
	}
	fmt.Fprintf(cw, "missing gates: %d\n", len(d.MissingGates))
	for _, dep := range d.MissingGates {
		fmt.Fprintf(cw, "  %s → %s\n", dep.Flight, dep.Gate)
	}
	fmt.Fprintf(cw, "unrouted: %d\n", len(d.Unrouted))
	for _, o := range d.Unrouted {
		fmt.Fprintf(cw, "  %s\n", o)
	}

	if cw.err != nil {
		return cw.n, cw.err
	}

	return cw.n, cw.w.Flush()
}

// countingWriter keeps the first write error and the byte count.
type countingWriter struct {
	w   *bufio.Writer
	n   int64
	err error
}

func (c *countingWriter) Write(p []byte) (int, error) {
	if c.err != nil {
		return 0, c.err
	}
	k, err := c.w.Write(p)
	c.n += int64(k)
	c.err = err

	return k, err
}
