package app

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/katalvlaran/conveyor/builder"
	"github.com/katalvlaran/conveyor/core"
	"github.com/katalvlaran/conveyor/internal/cli"
	"github.com/katalvlaran/conveyor/internal/loader"
)

// Generation constants.
const (
	genMaxCost    = 9
	genSparseProb = 0.3
)

// Generate builds a synthetic manifest: the chosen topology with random belt
// costs, the claim junction linked to the first junction, one departing
// flight per junction and one bag per junction. Every fourth bag is an
// arrival. The result depends only on the arguments.
func Generate(topology string, size int, seed int64, claim, arrivalTag string) (*loader.Manifest, error) {
	var con builder.Constructor
	switch topology {
	case "path":
		con = builder.Path(size)
	case "cycle":
		con = builder.Cycle(size)
	case "star":
		con = builder.Star(size)
	case "grid":
		con = builder.Grid(size, size)
	case "complete":
		con = builder.Complete(size)
	case "random":
		con = builder.RandomSparse(size, genSparseProb)
	default:
		return nil, fmt.Errorf("app: unknown topology %q", topology)
	}

	net, err := builder.Build([]builder.BuilderOption{
		builder.WithSeed(seed),
		builder.WithIDScheme(builder.SymbolNumberIDFn("J")),
		builder.WithCostFn(builder.UniformCostFn(1, genMaxCost)),
	}, con)
	if err != nil {
		return nil, errors.Wrapf(err, "app: generate %s(%d)", topology, size)
	}

	m := &loader.Manifest{
		Links:      append([]core.Link{{A: claim, B: net.Junctions[0], Cost: 1}}, net.Links...),
		Departures: make(map[string]loader.Departure, len(net.Junctions)),
	}
	n := len(net.Junctions)
	for i, j := range net.Junctions {
		flight := fmt.Sprintf("FL%03d", i)
		m.Departures[flight] = loader.Departure{Flight: flight, Gate: j}

		bag := loader.Bag{ID: fmt.Sprintf("%04d", i+1), Entry: j, Flight: fmt.Sprintf("FL%03d", (i+n/2)%n)}
		if i%4 == 3 {
			bag.Flight = arrivalTag
		}
		m.Bags = append(m.Bags, bag)
	}

	return m, nil
}

func (a *App) generate(inv *cli.Invocation) error {
	m, err := Generate(inv.Topology, inv.Size, inv.Seed, a.cfg.ClaimJunction, a.cfg.ArrivalTag)
	if err != nil {
		return err
	}
	a.logger.Debug("Manifest generated.", "topology", inv.Topology, "links", len(m.Links), "bags", len(m.Bags))

	return loader.Encode(a.outW, m)
}
