package coxeter

import (
	"context"
	"fmt"
)

// Option configures Closure and CayleyGraph via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation when the
// walk starts.
type Option func(*ClosureOptions)

// ClosureOptions holds parameters and callbacks for a closure walk.
type ClosureOptions struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// Side is the side generators act on. Right by default.
	Side Side

	// MaxDepth, if > 0, stops exploring beyond this word length.
	MaxDepth int

	// Limit, if > 0, caps the number of elements; exceeding it fails
	// with ErrClosureLimit.
	Limit int

	// OnEnqueue is called when an element is first discovered.
	OnEnqueue func(key string, depth int)

	// OnVisit is called when an element is visited. If it returns an error,
	// the walk aborts and propagates that error.
	OnVisit func(key string, depth int) error

	err error
}

// DefaultOptions returns background context, right action, no depth limit,
// no element limit and no-op hooks.
func DefaultOptions() ClosureOptions {
	return ClosureOptions{
		Ctx:       context.Background(),
		Side:      Right,
		OnEnqueue: func(string, int) {},
		OnVisit:   func(string, int) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *ClosureOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithSide selects the side generators act on.
func WithSide(s Side) Option {
	return func(o *ClosureOptions) {
		if !s.Valid() {
			o.err = fmt.Errorf("%w: side %d", ErrOptionViolation, int(s))
			return
		}
		o.Side = s
	}
}

// WithMaxDepth stops the walk at the given depth.
//
//	d > 0: limit to depth d
//	d == 0: no depth limit
//	d < 0: ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *ClosureOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithLimit caps the number of discovered elements (0 = unlimited).
func WithLimit(n int) Option {
	return func(o *ClosureOptions) {
		if n < 0 {
			o.err = fmt.Errorf("%w: Limit cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.Limit = n
	}
}

// WithOnEnqueue registers a callback run on discovery.
func WithOnEnqueue(fn func(key string, depth int)) Option {
	return func(o *ClosureOptions) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnVisit registers a callback run on visit; an error stops the walk.
func WithOnVisit(fn func(key string, depth int) error) Option {
	return func(o *ClosureOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}
