package coxeter

import (
	"context"
	"fmt"
)

// ClosureResult holds the outcome of a breadth-first closure:
//   - Elements: elements in visit order (identity first).
//   - Order: canonical keys in visit order.
//   - Depth: key → number of generator steps from the identity.
//   - Parent: key → key of the predecessor in the BFS tree.
//   - Via: key → generator applied to the parent to reach it.
type ClosureResult[E Element[E]] struct {
	Elements []E
	Order    []string
	Depth    map[string]int
	Parent   map[string]string
	Via      map[string]Generator

	index map[string]int
}

// Len is the number of elements reached.
func (r *ClosureResult[E]) Len() int { return len(r.Order) }

// Lookup returns the element stored under key.
func (r *ClosureResult[E]) Lookup(key string) (E, bool) {
	if i, ok := r.index[key]; ok {
		return r.Elements[i], true
	}
	var zero E

	return zero, false
}

// PathTo returns the generators leading from the identity to key.
func (r *ClosureResult[E]) PathTo(key string) ([]Generator, error) {
	if _, ok := r.Depth[key]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotReached, key)
	}
	path := []Generator{}
	for cur := key; ; {
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		path = append(path, r.Via[cur])
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

type queueItem[E Element[E]] struct {
	elem  E
	key   string
	depth int
}

// walker encapsulates mutable closure state.
type walker[E Element[E]] struct {
	group Group[E]
	opts  ClosureOptions
	ctx   context.Context
	queue []queueItem[E]
	res   *ClosureResult[E]
}

// Closure enumerates the elements reachable from the identity by simple
// reflections on the configured side, in breadth-first order. Generators
// are tried in index-set order, so the visit sequence is reproducible.
func Closure[E Element[E]](g Group[E], opts ...Option) (*ClosureResult[E], error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	w := &walker[E]{
		group: g,
		opts:  o,
		ctx:   o.Ctx,
		res: &ClosureResult[E]{
			Depth:  make(map[string]int),
			Parent: make(map[string]string),
			Via:    make(map[string]Generator),
			index:  make(map[string]int),
		},
	}
	one := g.One()
	if err := w.enqueue(one, one.String(), 0, "", 0); err != nil {
		return nil, err
	}

	if err := w.loop(); err != nil {
		return nil, err
	}

	return w.res, nil
}

func (w *walker[E]) enqueue(e E, key string, d int, parent string, via Generator) error {
	if w.opts.Limit > 0 && len(w.res.Depth) >= w.opts.Limit {
		return fmt.Errorf("%w: more than %d elements", ErrClosureLimit, w.opts.Limit)
	}
	w.res.Depth[key] = d
	if d > 0 {
		w.res.Parent[key] = parent
		w.res.Via[key] = via
	}
	w.opts.OnEnqueue(key, d)
	w.queue = append(w.queue, queueItem[E]{elem: e, key: key, depth: d})

	return nil
}

func (w *walker[E]) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.index[item.key] = len(w.res.Order)
		w.res.Elements = append(w.res.Elements, item.elem)
		w.res.Order = append(w.res.Order, item.key)
		if err := w.opts.OnVisit(item.key, item.depth); err != nil {
			return fmt.Errorf("coxeter: OnVisit error at %q: %w", item.key, err)
		}
		if err := w.expand(item); err != nil {
			return err
		}
	}

	return nil
}

// expand applies every generator to item and enqueues unseen products.
func (w *walker[E]) expand(item queueItem[E]) error {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return nil
	}
	for _, i := range w.group.IndexSet() {
		prod, err := ApplySimpleReflection(w.group, item.elem, i, w.opts.Side)
		if err != nil {
			return fmt.Errorf("coxeter: expand %s by %d: %w", item.key, i, err)
		}
		key := prod.String()
		if _, seen := w.res.Depth[key]; seen {
			continue
		}
		if err := w.enqueue(prod, key, next, item.key, i); err != nil {
			return err
		}
	}

	return nil
}
