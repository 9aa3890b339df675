// Package verify checks the dihedral group implementation exhaustively for
// a range of n. Every element is enumerated, every generator step is
// compared against an independent model of D_n (affine maps x ↦ ±x + b on
// Z_n), and the structural properties of the group are asserted.
//
// Run fans out one job per n over an errgroup bounded by Config.Workers.
package verify

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/dihedral"
	"github.com/katalvlaran/dihedral/coxeter"
)

// Sentinel errors for verification runs.
var (
	// ErrBadRange is returned when MinN < 2 or MaxN < MinN.
	ErrBadRange = errors.New("verify: invalid n range")

	// ErrPropertyViolated is returned when at least one check fails.
	ErrPropertyViolated = errors.New("verify: property violated")
)

// Config selects the n range and the worker pool size.
type Config struct {
	MinN    int
	MaxN    int
	Workers int         // ≤ 0 means runtime.NumCPU()
	Logger  *zap.Logger // nil means zap.NewNop()
}

// Report is the outcome for one n.
type Report struct {
	N        int      `yaml:"n"`
	Elements int      `yaml:"elements"`
	Checks   int      `yaml:"checks"`
	Failures []string `yaml:"failures,omitempty"`
}

// OK reports whether every check passed.
func (r Report) OK() bool { return len(r.Failures) == 0 }

// Run verifies every n in [cfg.MinN, cfg.MaxN]. Reports are sorted by n.
// The error wraps ErrPropertyViolated if any report has failures, or
// carries the context error on cancellation.
func Run(ctx context.Context, cfg Config) ([]Report, error) {
	if cfg.MinN < 2 || cfg.MaxN < cfg.MinN {
		return nil, fmt.Errorf("%w: [%d, %d]", ErrBadRange, cfg.MinN, cfg.MaxN)
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	var (
		mu      sync.Mutex
		reports = make([]Report, 0, cfg.MaxN-cfg.MinN+1)
	)
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for n := cfg.MinN; n <= cfg.MaxN; n++ {
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			rep, err := Check(egCtx, n)
			if err != nil {
				return err
			}
			if rep.OK() {
				logger.Debug("verified", zap.Int("n", n), zap.Int("elements", rep.Elements), zap.Int("checks", rep.Checks))
			} else {
				logger.Warn("verification failed", zap.Int("n", n), zap.Strings("failures", rep.Failures))
			}
			mu.Lock()
			reports = append(reports, rep)
			mu.Unlock()
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(reports, func(a, b int) bool { return reports[a].N < reports[b].N })
	var failed []string
	for _, r := range reports {
		if !r.OK() {
			failed = append(failed, fmt.Sprintf("n=%d", r.N))
		}
	}
	logger.Info("verification finished",
		zap.Int("min_n", cfg.MinN), zap.Int("max_n", cfg.MaxN),
		zap.Int("workers", workers), zap.Int("failed", len(failed)))
	if len(failed) > 0 {
		return reports, fmt.Errorf("%w: %s", ErrPropertyViolated, strings.Join(failed, ", "))
	}

	return reports, nil
}

// Check runs every property check for one n. A returned error means the
// run could not complete (bad n, cancellation); property failures are
// recorded in Report.Failures instead.
func Check(ctx context.Context, n int) (Report, error) {
	g, err := dihedral.New(n)
	if err != nil {
		return Report{N: n}, err
	}
	res, err := coxeter.Closure[dihedral.Element](g,
		coxeter.WithContext(ctx),
		coxeter.WithLimit(g.Order()+1))
	if err != nil {
		return Report{N: n}, fmt.Errorf("verify: closure n=%d: %w", n, err)
	}

	c := &checker{group: g, elems: res.Elements, rep: Report{N: n, Elements: res.Len()}}
	for _, step := range []func() error{
		c.order,
		c.involution,
		c.canonical,
		c.longest,
		c.descents,
		c.relation,
		c.model,
		c.cayley,
	} {
		if err := ctx.Err(); err != nil {
			return c.rep, err
		}
		if err := step(); err != nil {
			return c.rep, err
		}
	}

	return c.rep, nil
}
