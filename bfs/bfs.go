package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/conveyor/core"
)

// queueItem pairs a junction index with its BFS depth.
type queueItem struct {
	idx   int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.Graph
	opts    BFSOptions
	ctx     context.Context
	queue   []queueItem
	visited []bool
	res     *BFSResult
}

// BFS runs breadth-first search on g starting from start, applying any
// number of functional Options.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, the context error on cancellation,
// or any user-supplied hook error.
func BFS(g *core.Graph, start string, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	s, ok := g.Index(start)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, start)
	}

	n := g.Len()
	w := &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make([]bool, n),
		res: &BFSResult{
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}

	w.enqueue(s, 0, -1)

	return w.res, w.loop()
}

// enqueue marks idx visited at depth d, records its parent and queues it.
func (w *walker) enqueue(idx, d, parent int) {
	w.visited[idx] = true
	name := w.graph.Name(idx)
	w.res.Depth[name] = d
	if parent >= 0 {
		w.res.Parent[name] = w.graph.Name(parent)
	}
	w.queue = append(w.queue, queueItem{idx: idx, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		name := w.graph.Name(item.idx)
		w.res.Order = append(w.res.Order, name)
		if err := w.opts.OnVisit(name, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %q: %w", name, err)
		}

		w.enqueueNeighbors(item, name)
	}

	return nil
}

// enqueueNeighbors applies filtering and MaxDepth, then enqueues every
// unseen neighbor in adjacency order.
func (w *walker) enqueueNeighbors(item queueItem, name string) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for _, a := range w.graph.Neighbors(item.idx) {
		if w.visited[a.To] {
			continue
		}
		if !w.opts.FilterNeighbor(name, w.graph.Name(a.To), a.Cost) {
			continue
		}
		w.enqueue(a.To, nextDepth, item.idx)
	}
}
