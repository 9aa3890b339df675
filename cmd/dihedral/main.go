// Command dihedral inspects the dihedral groups D_n as Coxeter groups:
// it lists elements, applies simple reflections, tests descents, prints
// Cayley graphs and runs the exhaustive verification suite.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/dihedral"
	"github.com/katalvlaran/dihedral/coxeter"
	"github.com/katalvlaran/dihedral/internal/config"
)

// app carries state shared by all subcommands of one invocation.
type app struct {
	// Global flags
	configPath string
	n          int
	side       string
	format     string
	strict     bool
	verbose    bool

	cfg    config.Config
	logger *zap.Logger
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "dihedral",
		Short: "Dihedral groups as finite Coxeter groups",
		Long: `dihedral works with D_n, the dihedral group of order 2n, presented as the
Coxeter group <s1, s2 | s1^2 = s2^2 = (s1 s2)^n = 1>.

Elements are written as reduced words over {1, 2}, e.g. "(1, 2, 1)", "121"
or "()" for the identity. The longest element is always spelled from 1.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&a.configPath, "config", "c", "", "YAML configuration file")
	pf.IntVarP(&a.n, "n", "n", 0, "group parameter n ≥ 2 (default from config: 5)")
	pf.StringVarP(&a.side, "side", "s", "", "side of the action: right or left")
	pf.StringVarP(&a.format, "format", "f", "", "output format: text or yaml")
	pf.BoolVar(&a.strict, "strict", false, "accept only canonical reduced words")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newInfoCmd(a),
		newElementsCmd(a),
		newApplyCmd(a),
		newDescentCmd(a),
		newDescentsCmd(a),
		newMultiplyCmd(a),
		newInverseCmd(a),
		newPowerCmd(a),
		newCayleyCmd(a),
		newVerifyCmd(a),
	)

	return root
}

// setup loads the config file, lets explicitly set flags override it and
// builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("n") {
		cfg.N = a.n
	}
	if flags.Changed("side") {
		cfg.Side = a.side
	}
	if flags.Changed("format") {
		cfg.Format = a.format
	}
	if flags.Changed("strict") {
		cfg.Strict = a.strict
	}
	if a.verbose {
		cfg.Log.Level = zapcore.DebugLevel.String()
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	if a.logger != nil {
		return nil
	}
	zc := zap.NewProductionConfig()
	zc.Encoding = cfg.Log.Encoding
	level, err := zapcore.ParseLevel(cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.Log.Level, err)
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	if a.logger, err = zc.Build(); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.logger.Debug("configuration loaded",
		zap.String("path", a.configPath), zap.Int("n", cfg.N),
		zap.String("side", cfg.Side), zap.String("format", cfg.Format))

	return nil
}

// group returns the shared D_n instance for the configured n.
func (a *app) group() (*dihedral.Group, error) {
	return dihedral.New(a.cfg.N)
}

func (a *app) parse(g *dihedral.Group, s string) (dihedral.Element, error) {
	return g.ParseElement(s, a.cfg.Strict)
}

func (a *app) sideValue() coxeter.Side { return a.cfg.SideValue() }

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd(&app{}).ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
