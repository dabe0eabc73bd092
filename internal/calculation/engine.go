package calculation

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rpgo/enoughcalc/internal/domain"
)

// CalculationEngine runs one full calculation cycle: the deterministic
// enough-number pass followed by the Monte Carlo driver.
type CalculationEngine struct {
	MonteCarlo *MonteCarloSimulator
	Logger     Logger
}

// NewCalculationEngine creates an engine with a no-op logger.
func NewCalculationEngine() *CalculationEngine {
	logger := NopLogger{}
	return &CalculationEngine{
		MonteCarlo: &MonteCarloSimulator{Logger: logger},
		Logger:     logger,
	}
}

// SetLogger sets the logger for the engine and its simulator. If nil is provided, a no-op logger is used.
func (ce *CalculationEngine) SetLogger(l Logger) {
	l = loggerOrNop(l)
	ce.Logger = l
	if ce.MonteCarlo == nil {
		ce.MonteCarlo = &MonteCarloSimulator{}
	}
	ce.MonteCarlo.Logger = l
}

// Calculate validates preconditions, runs both passes and returns a fresh results record.
// A deadline on ctx bounds the Monte Carlo pass.
func (ce *CalculationEngine) Calculate(ctx context.Context, in domain.RetirementInputs) (*domain.CalculationResults, error) {
	logger := loggerOrNop(ce.Logger)
	in = in.Clone()

	det, err := ComputeDeterministic(in)
	if err != nil {
		logger.Warnf("deterministic calculation rejected inputs: %v", err)
		return nil, err
	}
	logger.Debugf("enough number today %.2f, at retirement %.2f, gap %.2f",
		det.EnoughNumberToday, det.EnoughNumberAtRetire, det.GapToGoal)

	mcs := ce.MonteCarlo
	if mcs == nil {
		mcs = NewMonteCarloSimulator()
	}
	mc, err := mcs.Run(ctx, in)
	if err != nil {
		logger.Errorf("monte carlo failed: %v", err)
		return nil, fmt.Errorf("failed to run monte carlo: %w", err)
	}

	return &domain.CalculationResults{
		ID:            uuid.NewString(),
		CalculatedAt:  nowFunc(),
		Inputs:        in,
		Seed:          mc.Seed,
		Deterministic: *det,
		MonteCarlo:    mc.Summary,
		AllPaths:      mc.Paths,
	}, nil
}
