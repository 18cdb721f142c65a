package cli

import (
	"errors"
	"math"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/numint/gausslegendre"
)

// IntegrateOptions holds flags for the integrate command.
type IntegrateOptions struct {
	Job
}

// NewIntegrateCommand creates the integrate command.
func NewIntegrateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &IntegrateOptions{}

	cmd := &cobra.Command{
		Use:   "integrate",
		Short: "Integrate a catalog function over an interval",
		Long: `Integrate a named function from the catalog (see "numint funcs") over
[--from, --to] with the selected method. Bounds accept plain numbers and
the constants pi and e, e.g. "pi/2" or "-3*pi/4".`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runIntegrate(rootOpts, opts, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Method, "method", "m", MethodSimpson, "integration method (trapezoidal|simpson|romberg|gauss)")
	cmd.Flags().StringVarP(&opts.Func, "func", "f", "reference", "catalog function name")
	cmd.Flags().StringVar(&opts.From, "from", "0", "lower bound x1")
	cmd.Flags().StringVar(&opts.To, "to", "pi/2", "upper bound x2")
	cmd.Flags().IntVarP(&opts.N, "steps", "n", 100, "panels (trapezoidal/simpson), table size (romberg) or nodes (gauss)")
	cmd.Flags().IntVar(&opts.Workers, "workers", 1, "goroutines for the trapezoidal/simpson reduction")
	cmd.Flags().BoolVar(&opts.Table, "table", false, "print the full Romberg table")

	return cmd
}

func runIntegrate(rootOpts *RootOptions, opts *IntegrateOptions, cmd *cobra.Command) error {
	formatter := rootOpts.formatter(cmd)
	log := rootOpts.logger()

	log.Debug("integrate", "method", opts.Method, "func", opts.Func, "from", opts.From, "to", opts.To, "n", opts.N, "workers", opts.Workers)
	start := time.Now()
	res, err := Run(opts.Job)
	if err != nil {
		return formatter.Fail(classify("integrate", err))
	}
	log.Debug("integrate done", "value", res.Value, "elapsed", time.Since(start))
	if math.IsNaN(res.Value) || math.IsInf(res.Value, 0) {
		log.Warn("non-finite result", "value", res.Value)
	}

	return formatter.Success(res)
}

// classify wraps err with the exit code matching its cause: solver failures
// are computation failures, everything else is a command error.
func classify(message string, err error) *ExitError {
	if errors.Is(err, gausslegendre.ErrNoConvergence) {
		return WrapExitError(ExitFailure, message, err)
	}
	return WrapExitError(ExitCommandError, message, err)
}
