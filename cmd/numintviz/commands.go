package main

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	numintviz "github.com/leonjayakusuma/NumIntViz"
	"github.com/leonjayakusuma/NumIntViz/catalog"
	"github.com/leonjayakusuma/NumIntViz/convergence"
	"github.com/leonjayakusuma/NumIntViz/quadrature"
	"github.com/leonjayakusuma/NumIntViz/render"
	"github.com/leonjayakusuma/NumIntViz/signal"
)

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func newFunctionsCmd(cli *app) *cobra.Command {
	return &cobra.Command{
		Use:   "functions",
		Short: "List the available integrands",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := newTable(cmd.OutOrStdout())
			fmt.Fprintln(tw, "FUNCTION\tANTIDERIVATIVE\tDOMAIN")
			for _, name := range catalog.Expressions() {
				entry, err := catalog.Lookup(name)
				if err != nil {
					return err
				}
				domain := "R"
				if entry.Domain != nil {
					domain = fmt.Sprintf("[%g, %g]", entry.Domain[0], entry.Domain[1])
				}
				fmt.Fprintf(tw, "%s\t%t\t%s\n", entry.Expression, entry.HasAntiderivative(), domain)
			}
			return tw.Flush()
		},
	}
}

func newIntegrateCmd(cli *app) *cobra.Command {
	var (
		rule     string
		n        int
		adaptive bool
		gauss    bool
		tol      float64
		nodes    int
		points   bool
	)
	cmd := &cobra.Command{
		Use:   "integrate",
		Short: "Approximate the integral with one rule",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if adaptive && gauss {
				return fmt.Errorf("%w: --adaptive and --gauss are exclusive", quadrature.ErrInvalidArgument)
			}
			flags := cmd.Flags()
			if flags.Changed("rule") {
				cli.cfg.Quadrature.Rule = rule
			}
			if flags.Changed("n") {
				cli.cfg.Quadrature.N = n
			}
			if flags.Changed("tol") {
				cli.cfg.Quadrature.Tolerance = tol
			}
			if flags.Changed("nodes") {
				cli.cfg.Quadrature.Nodes = nodes
			}
			if err := cli.cfg.Validate(); err != nil {
				return err
			}

			p, entry, err := cli.problem()
			if err != nil {
				return err
			}
			engine := cli.engine()
			counter := signal.NewCounter(p.F)
			p.F = counter

			var (
				method string
				res    quadrature.Result
			)
			switch {
			case adaptive:
				method = numintviz.AdaptiveSimpson
				res, err = engine.RunAdaptive(p.F, p.A, p.B, p.Tolerance)
			case gauss:
				method = numintviz.GaussLegendre
				res = engine.RunGaussian(p.F, p.A, p.B, p.Nodes)
			default:
				r, perr := cli.cfg.Rule()
				if perr != nil {
					return perr
				}
				method = r.String()
				res, err = engine.RunRule(r, p.F, p.A, p.B, p.N)
			}
			if err != nil {
				return err
			}
			calls := counter.Count()
			value, numeric, err := exact(p)
			if err != nil {
				return err
			}
			metrics := convergence.Errors(res.Value, value)

			tw := newTable(cmd.OutOrStdout())
			fmt.Fprintf(tw, "function\t%s\n", entry.Expression)
			fmt.Fprintf(tw, "interval\t[%g, %g]\n", p.A, p.B)
			fmt.Fprintf(tw, "method\t%s\n", method)
			fmt.Fprintf(tw, "n\t%d\n", res.N)
			fmt.Fprintf(tw, "approximation\t%.15g\n", res.Value)
			fmt.Fprintf(tw, "exact\t%.15g%s\n", value, numericMark(numeric))
			fmt.Fprintf(tw, "absolute error\t%.6e\n", metrics.Absolute)
			fmt.Fprintf(tw, "relative error\t%.6e\n", metrics.Relative)
			fmt.Fprintf(tw, "evaluations\t%d\n", res.Evaluations)
			fmt.Fprintf(tw, "function calls\t%d\n", calls)
			if err := tw.Flush(); err != nil {
				return err
			}
			if points && res.Evaluated() {
				tw = newTable(cmd.OutOrStdout())
				fmt.Fprintln(tw, "\nX\tY")
				for index := range res.X {
					fmt.Fprintf(tw, "%.10g\t%.10g\n", res.X[index], res.Y[index])
				}
				return tw.Flush()
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&rule, "rule", "r", "", "fixed-node rule (left, right, mid, trapezoid, simpson)")
	cmd.Flags().IntVarP(&n, "n", "n", 0, "number of subintervals")
	cmd.Flags().BoolVar(&adaptive, "adaptive", false, "use adaptive Simpson's rule")
	cmd.Flags().BoolVar(&gauss, "gauss", false, "use Gauss-Legendre quadrature")
	cmd.Flags().Float64Var(&tol, "tol", 0, "adaptive Simpson tolerance")
	cmd.Flags().IntVar(&nodes, "nodes", 0, "number of Gauss-Legendre nodes")
	cmd.Flags().BoolVar(&points, "points", false, "print the sampled points")
	return cmd
}

func numericMark(numeric bool) string {
	if numeric {
		return " (numeric)"
	}
	return ""
}

func newSweepCmd(cli *app) *cobra.Command {
	var rule string
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Tabulate the error of one rule over the convergence sizes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("rule") {
				cli.cfg.Quadrature.Rule = rule
			}
			r, err := cli.cfg.Rule()
			if err != nil {
				return err
			}
			p, _, err := cli.problem()
			if err != nil {
				return err
			}
			value, _, err := exact(p)
			if err != nil {
				return err
			}
			s, err := convergence.Sweep(r, p.F, p.A, p.B, value, p.Sizes)
			if err != nil {
				return err
			}

			tw := newTable(cmd.OutOrStdout())
			fmt.Fprintf(tw, "N\t%s\tERROR\n", strings.ToUpper(r.String()))
			for index, size := range s.Sizes {
				fmt.Fprintf(tw, "%d\t%.15g\t%.6e\n", size, s.Approximations[index], s.Errors[index])
			}
			if order, err := s.ObservedOrder(); err == nil {
				fmt.Fprintf(tw, "\nobserved order\t%.3f\n", order)
			} else {
				cli.logger.Info("No observed order", zap.Stringer("rule", r), zap.Error(err))
			}
			return tw.Flush()
		},
	}
	cmd.Flags().StringVarP(&rule, "rule", "r", "", "fixed-node rule (left, right, mid, trapezoid, simpson)")
	return cmd
}

func newReportCmd(cli *app) *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Run every rule and summarize errors and convergence orders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, entry, err := cli.problem()
			if err != nil {
				return err
			}
			report, err := numintviz.Analyze(cmd.Context(), cli.engine(), p)
			if err != nil {
				return err
			}
			return writeReport(cmd.OutOrStdout(), entry.Expression, p, report)
		},
	}
}

func writeReport(w io.Writer, expression string, p numintviz.Problem, report *numintviz.Report) error {
	tw := newTable(w)
	fmt.Fprintf(tw, "integral of %s over [%g, %g] = %.15g%s\n\n", expression, p.A, p.B, report.Exact, numericMark(report.NumericExact))
	fmt.Fprintln(tw, "METHOD\tN\tAPPROXIMATION\tABSOLUTE\tRELATIVE\tEVALUATIONS")
	for _, a := range report.Approximations {
		if a.Err != nil {
			fmt.Fprintf(tw, "%s\t-\t-\t-\t-\t%v\n", a.Method, a.Err)
			continue
		}
		fmt.Fprintf(tw, "%s\t%d\t%.15g\t%.3e\t%.3e\t%d\n",
			a.Method, a.Result.N, a.Result.Value, a.Metrics.Absolute, a.Metrics.Relative, a.Result.Evaluations)
	}
	if len(report.Convergence) > 0 {
		fmt.Fprintln(tw, "\nRULE\tOBSERVED ORDER\tMEDIAN LOCAL ORDER")
		for _, s := range report.Convergence {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", s.Rule, orderString(s.ObservedOrder()), orderString(s.MedianOrder()))
		}
	}
	return tw.Flush()
}

func orderString(order float64, err error) string {
	if err != nil {
		return "-"
	}
	return fmt.Sprintf("%.3f", order)
}

func newPlotCmd(cli *app) *cobra.Command {
	var (
		output  string
		samples string
	)
	cmd := &cobra.Command{
		Use:   "plot",
		Short: "Render the convergence plot and optionally the sampled points of one method",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("output") {
				cli.cfg.Plot.Output = output
			}
			p, entry, err := cli.problem()
			if err != nil {
				return err
			}
			report, err := numintviz.Analyze(cmd.Context(), cli.engine(), p)
			if err != nil {
				return err
			}
			title := fmt.Sprintf("%s on [%g, %g]", entry.Expression, p.A, p.B)
			plt, err := render.Convergence(report.Convergence, title)
			if err != nil {
				return err
			}
			width, height := cli.cfg.Plot.Width, cli.cfg.Plot.Height
			if err := render.Save(plt, width, height, cli.cfg.Plot.Output); err != nil {
				return err
			}
			cli.logger.Info("Convergence plot written", zap.String("path", cli.cfg.Plot.Output))
			fmt.Fprintln(cmd.OutOrStdout(), cli.cfg.Plot.Output)

			if samples == "" {
				return nil
			}
			a, ok := findMethod(report, samples)
			if !ok {
				return fmt.Errorf("%w: unknown method %q", quadrature.ErrInvalidArgument, samples)
			}
			if a.Err != nil {
				return a.Err
			}
			plt, err = render.Samples(p.F, p.A, p.B, a.Result, a.Method)
			if err != nil {
				return err
			}
			path := samplesPath(cli.cfg.Plot.Output, a.Method)
			if err := render.Save(plt, width, height, path); err != nil {
				return err
			}
			cli.logger.Info("Samples plot written", zap.String("method", a.Method), zap.String("path", path))
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "convergence plot file, the extension selects the format")
	cmd.Flags().StringVar(&samples, "samples", "", "also plot the points sampled by this method")
	return cmd
}

// findMethod matches name against the method names of report, ignoring
// case, and falls back to the rule aliases of quadrature.ParseRule.
func findMethod(report *numintviz.Report, name string) (numintviz.Approximation, bool) {
	if r, err := quadrature.ParseRule(name); err == nil {
		name = r.String()
	}
	for _, a := range report.Approximations {
		if strings.EqualFold(a.Method, name) {
			return a, true
		}
	}
	return numintviz.Approximation{}, false
}

// samplesPath derives the samples image name from the convergence image name.
func samplesPath(output, method string) string {
	ext := filepath.Ext(output)
	if ext == "" {
		ext = ".png"
	}
	slug := strings.ToLower(strings.ReplaceAll(method, " ", "-"))
	return strings.TrimSuffix(output, filepath.Ext(output)) + "-" + slug + ext
}
