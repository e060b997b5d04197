package batch

import (
	"context"
	"errors"
	"fmt"

	"github.com/hogwarts-cloud/sizer/internal/models"
	"github.com/samber/lo"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const MaxConcurrentScenarios = 4

var ErrDuplicatedScenarioNames = errors.New("duplicated scenario names")

type Calculator interface {
	Compute(requirements models.Requirements) (models.Result, error)
}

type Runner struct {
	calculator Calculator
	logger     *zap.SugaredLogger
}

// Run evaluates every scenario and returns the outcomes in input order.
func (r *Runner) Run(ctx context.Context, scenarios []models.Scenario) ([]models.Outcome, error) {
	duplicates := lo.FindDuplicatesBy(scenarios, func(scenario models.Scenario) string {
		return scenario.Name
	})
	if len(duplicates) > 0 {
		names := lo.Map(duplicates, func(scenario models.Scenario, _ int) string { return scenario.Name })
		return nil, fmt.Errorf("%w: %v", ErrDuplicatedScenarioNames, names)
	}

	outcomes := make([]models.Outcome, len(scenarios))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(MaxConcurrentScenarios)

	for i, scenario := range scenarios {
		i, scenario := i, scenario

		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			result, err := r.calculator.Compute(scenario.Requirements)
			if err != nil {
				return fmt.Errorf("failed to compute scenario %q: %w", scenario.Name, err)
			}

			r.logger.Debugw("scenario computed", "scenario", scenario.Name, "nodes", result.Nodes)

			outcomes[i] = models.Outcome{Scenario: scenario, Result: result}

			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return outcomes, nil
}

func New(calculator Calculator) *Runner {
	return &Runner{
		calculator: calculator,
		logger:     zap.S().Named("batch"),
	}
}
