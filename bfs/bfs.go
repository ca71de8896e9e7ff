package bfs

import (
	"fmt"

	"github.com/katalvlaran/cycles/core"
)

// walker encapsulates mutable BFS state.
type walker struct {
	graph *core.Graph
	opts  Options
	queue []int
	res   *Result
}

// BFS runs breadth-first search on g starting from start,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, the context error on cancellation,
// or any error returned by the OnVisit hook.
func BFS(g *core.Graph, start int, opts ...Option) (*Result, error) {
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
	n := g.NodeCount()
	if start < 0 || start >= n {
		return nil, fmt.Errorf("%w: %d", ErrStartVertexNotFound, start)
	}

	w := &walker{
		graph: g,
		opts:  o,
		queue: make([]int, 0, n),
		res: &Result{
			Order:  make([]int, 0, n),
			Depth:  make([]int, n),
			Parent: make([]int, n),
		},
	}
	for i := 0; i < n; i++ {
		w.res.Depth[i] = -1
		w.res.Parent[i] = -1
	}

	w.enqueue(start, 0, -1)
	return w.res, w.loop()
}

// enqueue marks id reached at depth d and records its parent.
func (w *walker) enqueue(id, d, parent int) {
	w.res.Depth[id] = d
	w.res.Parent[id] = parent
	w.queue = append(w.queue, id)
}

// loop processes the queue head-first until empty, error, or cancellation.
func (w *walker) loop() error {
	for head := 0; head < len(w.queue); head++ {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		id := w.queue[head]
		depth := w.res.Depth[id]
		w.res.Order = append(w.res.Order, id)
		if err := w.opts.OnVisit(id, depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", id, err)
		}
		if w.opts.MaxDepth > 0 && depth+1 > w.opts.MaxDepth {
			continue
		}
		w.graph.ForEachNeighbor(id, func(nbr int) {
			if w.res.Depth[nbr] >= 0 || !w.opts.FilterNeighbor(id, nbr) {
				return
			}
			w.enqueue(nbr, depth+1, id)
		})
	}
	return nil
}
