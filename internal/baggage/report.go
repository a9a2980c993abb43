package baggage

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/conveyor/dijkstra"
	"github.com/katalvlaran/conveyor/internal/loader"
)

// Outcome is the routing result of one bag: exactly one of Route and Err is set.
type Outcome struct {
	Bag    loader.Bag
	Target string // empty when the flight did not resolve
	Route  *dijkstra.Route
	Err    error
}

// OK reports whether the bag was routed.
func (o Outcome) OK() bool { return o.Err == nil }

// Reason is a short, stable description of why a bag has no route.
func (o Outcome) Reason() string {
	var je *JunctionError
	switch {
	case o.Err == nil:
		return ""
	case errors.Is(o.Err, ErrUnresolvedFlight):
		return "unknown flight " + o.Bag.Flight
	case errors.As(o.Err, &je):
		return "unknown junction " + je.Name
	case errors.Is(o.Err, dijkstra.ErrUnreachable):
		return "unreachable"
	default:
		return o.Err.Error()
	}
}

// String renders the outcome as one output line.
func (o Outcome) String() string {
	if o.Err != nil {
		return fmt.Sprintf("%s : no route (%s)", o.Bag.ID, o.Reason())
	}

	return fmt.Sprintf("%s : %s", o.Bag.ID, o.Route)
}

// Report aggregates one run: an Outcome per bag in ascending bag ID order
// and the manifest lines that were rejected while parsing.
type Report struct {
	Outcomes []Outcome
	Problems []*loader.LineError
}

// Failed returns the outcomes without a route.
func (rep *Report) Failed() []Outcome {
	var out []Outcome
	for _, o := range rep.Outcomes {
		if o.Err != nil {
			out = append(out, o)
		}
	}

	return out
}

// WriteTo writes one line per outcome. It implements io.WriterTo.
func (rep *Report) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var n int64
	for _, o := range rep.Outcomes {
		k, err := fmt.Fprintln(bw, o.String())
		n += int64(k)
		if err != nil {
			return n, err
		}
	}

	return n, bw.Flush()
}

// Run routes every bag of m. Per-bag failures end up in the Outcome and are
// logged at info level; only context cancellation stops the run early, in
// which case the remaining outcomes carry the context error.
func (r *Router) Run(ctx context.Context, m *loader.Manifest) *Report {
	logger := r.log(ctx)
	rep := &Report{
		Outcomes: make([]Outcome, len(m.Bags)),
		Problems: m.Problems,
	}

	var eg errgroup.Group
	eg.SetLimit(r.workers)
	for i, bag := range m.Bags {
		eg.Go(func() error {
			rep.Outcomes[i] = r.routeBag(ctx, bag, m.Departures)
			return nil
		})
	}
	_ = eg.Wait()

	for _, o := range rep.Outcomes {
		if o.Err != nil {
			logger.Info("Bag not routed.", "bag", o.Bag.ID, "entry", o.Bag.Entry, "flight", o.Bag.Flight, "reason", o.Reason())
		}
	}
	logger.Debug("Run complete.", "bags", len(rep.Outcomes), "failed", len(rep.Failed()), "sources", r.CachedSources())

	return rep
}

func (r *Router) routeBag(ctx context.Context, bag loader.Bag, departures map[string]loader.Departure) Outcome {
	o := Outcome{Bag: bag}
	target, err := r.Resolve(bag, departures)
	if err != nil {
		o.Err = err
		return o
	}
	o.Target = target
	o.Route, o.Err = r.Route(ctx, bag.Entry, target)

	return o
}
