package calculation

import (
	"context"
	"fmt"
	"runtime"

	"github.com/rpgo/enoughcalc/internal/domain"
	"golang.org/x/sync/errgroup"
)

// MonteCarloSimulator runs independent stochastic paths over a bounded worker pool.
type MonteCarloSimulator struct {
	Workers int // 0 uses GOMAXPROCS
	Logger  Logger
}

// MonteCarloResult holds every path indexed by path number plus the aggregate summary.
type MonteCarloResult struct {
	Seed    int64                         `json:"seed"`
	Paths   []domain.SimulationPathResult `json:"paths"`
	Summary domain.SimulationSummary      `json:"summary"`
}

// NewMonteCarloSimulator creates a simulator with a no-op logger.
func NewMonteCarloSimulator() *MonteCarloSimulator {
	return &MonteCarloSimulator{Logger: NopLogger{}}
}

// RunMonteCarlo runs the default simulator against inputs.
func RunMonteCarlo(ctx context.Context, in domain.RetirementInputs) (*MonteCarloResult, error) {
	return NewMonteCarloSimulator().Run(ctx, in)
}

// Run projects inputs.Simulations paths. Path i always draws from the stream
// derived from (seed, i), so results do not depend on the worker count or scheduling.
func (mcs *MonteCarloSimulator) Run(ctx context.Context, in domain.RetirementInputs) (*MonteCarloResult, error) {
	if err := checkPreconditions(in); err != nil {
		return nil, err
	}
	if in.Simulations < 1 {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInputs, domain.ValidationErrors{
			{Field: "simulations", Message: fmt.Sprintf("at least one simulation is required, got %d", in.Simulations)},
		})
	}

	logger := loggerOrNop(mcs.Logger)
	seed := in.Seed
	if seed == 0 {
		seed = seedFunc()
	}

	workers := in.Workers
	if workers <= 0 {
		workers = mcs.Workers
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	logger.Debugf("monte carlo: %d paths, %d workers, seed %d", in.Simulations, workers, seed)

	projector := NewPathProjector(in)
	params := DrawParamsFrom(in)
	paths := make([]domain.SimulationPathResult, in.Simulations)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range paths {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			src := RandomRates{Source: NewPathSource(seed, i), Params: params}
			paths[i] = pathResult(projector.Project(src, true))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("monte carlo interrupted: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("monte carlo interrupted: %w", err)
	}

	summary := Summarize(paths)
	logger.Infof("monte carlo: success probability %.4f (%d/%d depleted)",
		summary.SuccessProbability, summary.DepletedPaths, summary.Simulations)

	return &MonteCarloResult{Seed: seed, Paths: paths, Summary: summary}, nil
}

func pathResult(p Projection) domain.SimulationPathResult {
	if p.Depleted {
		age := p.DepletionAge
		return domain.SimulationPathResult{Depleted: true, DepletionAge: &age, Path: p.Rows}
	}
	return domain.SimulationPathResult{EndingBalance: p.Final().TotalBalance(), Path: p.Rows}
}

// Summarize reduces path outcomes. Balance statistics use surviving paths only.
func Summarize(paths []domain.SimulationPathResult) domain.SimulationSummary {
	endingBalances := make([]float64, 0, len(paths))
	var worst *int
	for _, p := range paths {
		if p.Depleted {
			if worst == nil || *p.DepletionAge < *worst {
				age := *p.DepletionAge
				worst = &age
			}
			continue
		}
		endingBalances = append(endingBalances, p.EndingBalance)
	}

	pct := CalculatePercentiles(endingBalances)
	var success float64
	if len(paths) > 0 {
		success = float64(len(endingBalances)) / float64(len(paths))
	}

	return domain.SimulationSummary{
		SuccessProbability:    success,
		Simulations:           len(paths),
		DepletedPaths:         len(paths) - len(endingBalances),
		MedianEndingBalance:   pct.Median,
		Percentile5:           pct.Percentile5,
		Percentile25:          pct.Percentile25,
		Percentile75:          pct.Percentile75,
		Percentile95:          pct.Percentile95,
		AverageEndingBalance:  pct.Average,
		MinEndingBalance:      pct.Min,
		MaxEndingBalance:      pct.Max,
		WorstPathDepletionAge: worst,
	}
}
