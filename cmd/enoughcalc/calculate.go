package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rpgo/enoughcalc/internal/calculation"
	"github.com/rpgo/enoughcalc/internal/config"
	"github.com/rpgo/enoughcalc/internal/domain"
	"github.com/rpgo/enoughcalc/internal/output"
	"github.com/spf13/cobra"
)

type calculateOptions struct {
	input        string
	format       string
	outputDir    string
	simulations  int
	seed         int64
	workers      int
	timeout      time.Duration
	includePaths bool
}

func newCalculateCmd() *cobra.Command {
	opts := &calculateOptions{}
	cmd := &cobra.Command{
		Use:   "calculate",
		Short: "Run the enough-number and Monte Carlo calculation",
		Example: `  enoughcalc calculate
  enoughcalc calculate --input plan.yaml --format json --seed 42
  enoughcalc calculate --input plan.yaml --format all --output-dir ./reports`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCalculate(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.input, "input", "i", "", "input file: snake_case YAML, or camelCase .json as accepted by the API; defaults are used when omitted")
	f.StringVarP(&opts.format, "format", "f", "console", fmt.Sprintf("output format: %v or all", output.AvailableFormatterNames()))
	f.StringVarP(&opts.outputDir, "output-dir", "o", "", "write report files to this directory instead of stdout")
	f.IntVarP(&opts.simulations, "simulations", "n", 0, "number of Monte Carlo paths (overrides input)")
	f.Int64Var(&opts.seed, "seed", 0, "base seed for reproducible runs (overrides input)")
	f.IntVar(&opts.workers, "workers", 0, "parallel simulation workers (overrides input; 0 uses all CPUs)")
	f.DurationVar(&opts.timeout, "timeout", 0, "abort the calculation after this long")
	f.BoolVar(&opts.includePaths, "include-paths", false, "keep every Monte Carlo path in JSON output")
	return cmd
}

func loadInputs(path string) (*domain.RetirementInputs, error) {
	if path == "" {
		in := domain.DefaultInputs()
		return &in, nil
	}
	return config.NewInputParser().LoadFromFile(path)
}

func runCalculate(cmd *cobra.Command, opts *calculateOptions) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	in, err := loadInputs(opts.input)
	if err != nil {
		return err
	}

	inputs := in.Clone()
	flags := cmd.Flags()
	if flags.Changed("simulations") {
		inputs.Simulations = opts.simulations
	}
	if flags.Changed("seed") {
		inputs.Seed = opts.seed
	}
	if flags.Changed("workers") {
		inputs.Workers = opts.workers
	}
	if err := config.Validate(inputs); err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if opts.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.timeout)
		defer cancel()
	}

	engine := calculation.NewCalculationEngine()
	engine.SetLogger(logger.Sugar())

	start := time.Now()
	results, err := engine.Calculate(ctx, inputs)
	if err != nil {
		return err
	}
	logger.Sugar().Debugf("calculation %s finished in %s", results.ID, time.Since(start))

	if opts.outputDir == "" {
		if output.NormalizeFormatName(opts.format) == "all" {
			return fmt.Errorf("format all requires --output-dir")
		}
		return output.Render(cmd.OutOrStdout(), results, opts.format, opts.includePaths)
	}

	if err := os.MkdirAll(opts.outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	files, err := output.GenerateReport(results, opts.format, opts.outputDir, opts.includePaths)
	for _, file := range files {
		fmt.Fprintf(cmd.OutOrStdout(), "Report written to: %s\n", file)
	}
	return err
}
