package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/dihedral"
	"github.com/katalvlaran/dihedral/coxeter"
	"github.com/katalvlaran/dihedral/internal/config"
	"github.com/katalvlaran/dihedral/verify"
)

// emit writes doc as YAML or calls text, depending on the configured format.
func (a *app) emit(cmd *cobra.Command, doc any, text func(w io.Writer)) error {
	out := cmd.OutOrStdout()
	if a.cfg.Format != config.FormatYAML {
		text(out)
		return nil
	}
	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}

	return enc.Close()
}

type infoDoc struct {
	Name          string  `yaml:"name"`
	N             int     `yaml:"n"`
	Order         int     `yaml:"order"`
	Rank          int     `yaml:"rank"`
	Degrees       []int   `yaml:"degrees"`
	IndexSet      []int   `yaml:"index_set"`
	CoxeterMatrix [][]int `yaml:"coxeter_matrix"`
	Finite        bool    `yaml:"finite"`
	LongElement   string  `yaml:"long_element"`
}

func newInfoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Describe D_n: order, rank, degrees and Coxeter matrix",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.group()
			if err != nil {
				return err
			}
			deg := g.Degrees()
			m := g.CoxeterMatrix()
			doc := infoDoc{
				Name:          g.String(),
				N:             g.N(),
				Order:         g.Order(),
				Rank:          g.Rank(),
				Degrees:       deg[:],
				IndexSet:      ints(g.IndexSet()),
				CoxeterMatrix: m.Rows(),
				Finite:        m.IsFinite(),
				LongElement:   g.LongElement().String(),
			}
			return a.emit(cmd, doc, func(w io.Writer) {
				fmt.Fprintln(w, doc.Name)
				fmt.Fprintf(w, "rank:         %d\n", doc.Rank)
				fmt.Fprintf(w, "degrees:      %v\n", doc.Degrees)
				fmt.Fprintf(w, "index set:    %v\n", doc.IndexSet)
				fmt.Fprintf(w, "long element: %s\n", doc.LongElement)
				fmt.Fprintf(w, "Coxeter matrix:\n%s\n", m)
			})
		},
	}
}

func newElementsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "elements",
		Short: "List all 2n elements by length, then lexicographically",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.group()
			if err != nil {
				return err
			}
			elems, err := g.Elements()
			if err != nil {
				return err
			}
			a.logger.Debug("enumerated", zap.Int("n", g.N()), zap.Int("elements", len(elems)))
			names := make([]string, len(elems))
			for k, w := range elems {
				names[k] = w.String()
			}
			return a.emit(cmd, names, func(w io.Writer) {
				fmt.Fprintln(w, strings.Join(names, "\n"))
			})
		},
	}
}

type applyDoc struct {
	Element   string `yaml:"element"`
	Generator int    `yaml:"generator"`
	Side      string `yaml:"side"`
	Result    string `yaml:"result"`
}

func newApplyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "apply WORD GEN",
		Short: "Multiply an element by a simple reflection",
		Long: `Multiplies WORD by s_GEN on the configured side (--side, default right)
and prints the canonical result.

Example:
  dihedral -n 5 apply "(1, 2)" 1     # (1, 2, 1)
  dihedral -n 4 apply 1212 1         # (2, 1, 2)`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.group()
			if err != nil {
				return err
			}
			w, err := a.parse(g, args[0])
			if err != nil {
				return err
			}
			i, err := dihedral.ParseGenerator(args[1])
			if err != nil {
				return err
			}
			side := a.sideValue()
			res, err := w.ApplySimpleReflection(i, side)
			if err != nil {
				return err
			}
			doc := applyDoc{Element: w.String(), Generator: int(i), Side: side.String(), Result: res.String()}
			return a.emit(cmd, doc, func(out io.Writer) {
				fmt.Fprintln(out, doc.Result)
			})
		},
	}
}

type descentDoc struct {
	Element   string `yaml:"element"`
	Generator int    `yaml:"generator"`
	Side      string `yaml:"side"`
	Positive  bool   `yaml:"positive"`
	Descent   bool   `yaml:"descent"`
}

func newDescentCmd(a *app) *cobra.Command {
	var positive bool
	cmd := &cobra.Command{
		Use:   "descent WORD GEN",
		Short: "Test whether s_GEN is a descent of an element",
		Long: `Prints true when multiplying WORD by s_GEN on the configured side shortens
it. With --positive the test is negated: true when the product is longer.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.group()
			if err != nil {
				return err
			}
			w, err := a.parse(g, args[0])
			if err != nil {
				return err
			}
			i, err := dihedral.ParseGenerator(args[1])
			if err != nil {
				return err
			}
			side := a.sideValue()
			ok, err := w.HasDescent(i, side, positive)
			if err != nil {
				return err
			}
			doc := descentDoc{Element: w.String(), Generator: int(i), Side: side.String(), Positive: positive, Descent: ok}
			return a.emit(cmd, doc, func(out io.Writer) {
				fmt.Fprintln(out, ok)
			})
		},
	}
	cmd.Flags().BoolVarP(&positive, "positive", "p", false, "test for ascents instead of descents")

	return cmd
}

func newDescentsCmd(a *app) *cobra.Command {
	var positive bool
	cmd := &cobra.Command{
		Use:   "descents WORD",
		Short: "List the descents of an element on the configured side",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.group()
			if err != nil {
				return err
			}
			w, err := a.parse(g, args[0])
			if err != nil {
				return err
			}
			d, err := w.Descents(a.sideValue(), positive)
			if err != nil {
				return err
			}
			doc := ints(d)
			return a.emit(cmd, doc, func(out io.Writer) {
				fmt.Fprintln(out, doc)
			})
		},
	}
	cmd.Flags().BoolVarP(&positive, "positive", "p", false, "list ascents instead of descents")

	return cmd
}

func newMultiplyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "multiply WORD...",
		Short: "Multiply elements left to right",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.group()
			if err != nil {
				return err
			}
			acc := g.One()
			for _, s := range args {
				w, err := a.parse(g, s)
				if err != nil {
					return err
				}
				if acc, err = g.Multiply(acc, w); err != nil {
					return err
				}
			}
			return a.emit(cmd, acc.String(), func(out io.Writer) {
				fmt.Fprintln(out, acc)
			})
		},
	}
}

func newInverseCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "inverse WORD",
		Short: "Print the inverse of an element",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.group()
			if err != nil {
				return err
			}
			w, err := a.parse(g, args[0])
			if err != nil {
				return err
			}
			inv, err := g.Inverse(w)
			if err != nil {
				return err
			}
			return a.emit(cmd, inv.String(), func(out io.Writer) {
				fmt.Fprintln(out, inv)
			})
		},
	}
}

func newPowerCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "power WORD K",
		Short: "Raise an element to an integer power (negative K inverts)",
		Long: `Prints WORD^K. Separate a negative exponent from the flags with "--":

  dihedral -n 6 power -- 12 -1     # (2, 1)`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.group()
			if err != nil {
				return err
			}
			w, err := a.parse(g, args[0])
			if err != nil {
				return err
			}
			k, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid exponent %q: %w", args[1], err)
			}
			p, err := coxeter.Power[dihedral.Element](g, w, k)
			if err != nil {
				return err
			}
			return a.emit(cmd, p.String(), func(out io.Writer) {
				fmt.Fprintln(out, p)
			})
		},
	}
}

type edgeDoc struct {
	From  string `yaml:"from"`
	To    string `yaml:"to"`
	Label int    `yaml:"label"`
}

func newCayleyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "cayley",
		Short: "Print the labelled Cayley graph on the configured side",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.group()
			if err != nil {
				return err
			}
			cg, err := g.CayleyGraph(a.sideValue())
			if err != nil {
				return err
			}
			edges := cg.Edges()
			doc := make([]edgeDoc, len(edges))
			for k, e := range edges {
				doc[k] = edgeDoc{From: e.From, To: e.To, Label: e.Label}
			}
			a.logger.Debug("cayley graph built",
				zap.Int("vertices", cg.VertexCount()), zap.Int("edges", cg.EdgeCount()),
				zap.Bool("cycle", cg.IsCycle()))
			return a.emit(cmd, doc, func(out io.Writer) {
				for _, e := range doc {
					fmt.Fprintf(out, "%s -%d-> %s\n", e.From, e.Label, e.To)
				}
			})
		},
	}
}

func newVerifyCmd(a *app) *cobra.Command {
	var minN, maxN, workers int
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Exhaustively check D_n for a range of n",
		Long: `Enumerates every element of D_n for each n in [--min-n, --max-n] and checks
the group laws against an independent model (affine maps x -> ±x + b on Z_n).
Exits non-zero if any property fails.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			vc := a.cfg.Verify
			if cmd.Flags().Changed("min-n") {
				vc.MinN = minN
			}
			if cmd.Flags().Changed("max-n") {
				vc.MaxN = maxN
			}
			if cmd.Flags().Changed("workers") {
				vc.Workers = workers
			}
			reports, runErr := verify.Run(cmd.Context(), verify.Config{
				MinN:    vc.MinN,
				MaxN:    vc.MaxN,
				Workers: vc.Workers,
				Logger:  a.logger,
			})
			if reports == nil {
				return runErr
			}
			if err := a.emit(cmd, reports, func(out io.Writer) {
				for _, r := range reports {
					status := "ok"
					if !r.OK() {
						status = "FAIL " + strings.Join(r.Failures, "; ")
					}
					fmt.Fprintf(out, "n=%-4d elements=%-5d checks=%-6d %s\n", r.N, r.Elements, r.Checks, status)
				}
			}); err != nil {
				return err
			}

			return runErr
		},
	}
	cmd.Flags().IntVar(&minN, "min-n", 0, "smallest n to check (default from config: 2)")
	cmd.Flags().IntVar(&maxN, "max-n", 0, "largest n to check (default from config: 64)")
	cmd.Flags().IntVar(&workers, "workers", 0, "parallel workers, 0 means one per CPU")

	return cmd
}

func ints(gens []coxeter.Generator) []int {
	out := make([]int, len(gens))
	for k, i := range gens {
		out[k] = int(i)
	}

	return out
}
