// Package orchestration drives an experiment: for every scenario it computes
// the baseline utilities once, asks the strategy provider for a candidate
// scheme per run, and hands each candidate to the referee. The per-run
// evaluations are pure and independent, so scenarios may run concurrently;
// results are attributed by (scenario, run) before aggregation.
package orchestration

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/persuasion-games/persuade/internal/game"
	"github.com/persuasion-games/persuade/internal/metrics"
	"github.com/persuasion-games/persuade/internal/models"
	"github.com/persuasion-games/persuade/internal/provider"
)

// EventType identifies a progress event.
type EventType string

const (
	EventExperimentStart    EventType = "experiment_start"
	EventExperimentComplete EventType = "experiment_complete"
	EventScenarioStart      EventType = "scenario_start"
	EventScenarioComplete   EventType = "scenario_complete"
	EventRunComplete        EventType = "run_complete"
)

// ProgressEvent is a progress update delivered to listeners.
type ProgressEvent struct {
	EventType      EventType
	Scenario       string
	ScenarioNum    int
	TotalScenarios int
	RunNum         int
	TotalRuns      int
	Valid          bool
	DurationMs     int64
}

// ProgressListener receives progress updates. Listeners may be called from
// multiple goroutines when the experiment runs scenarios concurrently.
type ProgressListener func(event ProgressEvent)

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithVerbose enables per-run progress events.
func WithVerbose(verbose bool) RunnerOption {
	return func(r *Runner) {
		r.verbose = verbose
	}
}

// Runner executes one experiment against one provider.
type Runner struct {
	exp     *models.Experiment
	source  provider.StrategyProvider
	verbose bool

	progressMu sync.Mutex
	listeners  []ProgressListener
}

// NewRunner creates a runner for the experiment.
func NewRunner(exp *models.Experiment, source provider.StrategyProvider, opts ...RunnerOption) *Runner {
	r := &Runner{exp: exp, source: source}
	for _, o := range opts {
		o(r)
	}
	return r
}

// OnProgress registers a progress listener.
func (r *Runner) OnProgress(listener ProgressListener) {
	r.progressMu.Lock()
	defer r.progressMu.Unlock()
	r.listeners = append(r.listeners, listener)
}

func (r *Runner) notify(event ProgressEvent) {
	r.progressMu.Lock()
	listeners := make([]ProgressListener, len(r.listeners))
	copy(listeners, r.listeners)
	r.progressMu.Unlock()

	for _, l := range listeners {
		l(event)
	}
}

// RunExperiment evaluates every scenario and returns the collected outcome.
// Provider infrastructure faults abort the experiment; invalid schemes do
// not, they are scored.
func (r *Runner) RunExperiment(ctx context.Context, scenarios []*models.Scenario) (*models.ExperimentOutcome, error) {
	if len(scenarios) == 0 {
		return nil, fmt.Errorf("no scenarios to evaluate")
	}

	start := time.Now()

	if err := r.source.Initialize(ctx); err != nil {
		return nil, fmt.Errorf("failed to initialize provider: %w", err)
	}
	defer func() {
		if err := r.source.Shutdown(context.WithoutCancel(ctx)); err != nil {
			fmt.Printf("warning: failed to shut down provider: %v\n", err)
		}
	}()

	r.notify(ProgressEvent{
		EventType:      EventExperimentStart,
		TotalScenarios: len(scenarios),
	})

	outcomes := make([]models.ScenarioOutcome, len(scenarios))

	if r.exp.Config.Concurrent {
		workers := r.exp.Config.Workers
		if workers <= 0 {
			workers = 4
		}
		eg, egCtx := errgroup.WithContext(ctx)
		eg.SetLimit(workers)
		for i, sc := range scenarios {
			eg.Go(func() error {
				outcome, err := r.evaluateScenario(egCtx, sc, i+1, len(scenarios))
				if err != nil {
					return err
				}
				outcomes[i] = *outcome
				return nil
			})
		}
		if err := eg.Wait(); err != nil {
			return nil, err
		}
	} else {
		for i, sc := range scenarios {
			outcome, err := r.evaluateScenario(ctx, sc, i+1, len(scenarios))
			if err != nil {
				return nil, err
			}
			outcomes[i] = *outcome
		}
	}

	result := &models.ExperimentOutcome{
		Experiment: r.exp.Name,
		Provider:   r.source.Name(),
		ModelID:    r.exp.Provider.Model,
		Timestamp:  start.UTC(),
		DurationMs: time.Since(start).Milliseconds(),
		Scenarios:  outcomes,
	}
	for _, sc := range outcomes {
		result.TotalRuns += sc.Aggregate.TotalRuns
		result.ValidRuns += sc.Aggregate.ValidRuns
	}
	if result.TotalRuns > 0 {
		result.SchemeValidityRate = float64(result.ValidRuns) / float64(result.TotalRuns)
	}

	r.notify(ProgressEvent{
		EventType:  EventExperimentComplete,
		DurationMs: result.DurationMs,
	})

	return result, nil
}

func (r *Runner) evaluateScenario(ctx context.Context, sc *models.Scenario, num, total int) (*models.ScenarioOutcome, error) {
	r.notify(ProgressEvent{
		EventType:      EventScenarioStart,
		Scenario:       sc.Name,
		ScenarioNum:    num,
		TotalScenarios: total,
	})

	uFull := game.SenderExpectedUtility(sc, game.FullRevelation(sc))
	uNoRev := game.SenderExpectedUtility(sc, game.NoRevelation(sc))

	runs := r.exp.Config.RunsPerScenario
	records := make([]models.RunRecord, 0, runs)

	for runNum := 1; runNum <= runs; runNum++ {
		rec, err := r.evaluateRun(ctx, sc, runNum, uFull, uNoRev)
		if err != nil {
			return nil, fmt.Errorf("scenario %q run %d: %w", sc.Name, runNum, err)
		}
		records = append(records, *rec)

		if r.verbose {
			r.notify(ProgressEvent{
				EventType:      EventRunComplete,
				Scenario:       sc.Name,
				ScenarioNum:    num,
				TotalScenarios: total,
				RunNum:         runNum,
				TotalRuns:      runs,
				Valid:          rec.IsValidScheme,
				DurationMs:     rec.DurationMs,
			})
		}
	}

	outcome := &models.ScenarioOutcome{
		Scenario:              sc.Name,
		OptimumUtility:        sc.OptimumUtility,
		FullRevelationUtility: uFull,
		NoRevelationUtility:   uNoRev,
		Records:               records,
		Aggregate:             metrics.Aggregate(records),
	}

	r.notify(ProgressEvent{
		EventType:      EventScenarioComplete,
		Scenario:       sc.Name,
		ScenarioNum:    num,
		TotalScenarios: total,
	})

	return outcome, nil
}

// evaluateRun obtains one candidate scheme and referees it. Validation must
// succeed before any posterior is computed; an invalid candidate yields a
// scored record with no utility.
func (r *Runner) evaluateRun(ctx context.Context, sc *models.Scenario, runNum int, uFull, uNoRev float64) (*models.RunRecord, error) {
	generated, err := r.source.GenerateScheme(ctx, sc)
	if err != nil {
		return nil, err
	}

	rec := &models.RunRecord{
		Scenario:              sc.Name,
		Run:                   runNum,
		Provider:              r.source.Name(),
		OptimumUtility:        sc.OptimumUtility,
		FullRevelationUtility: uFull,
		NoRevelationUtility:   uNoRev,
		DurationMs:            generated.DurationMs,
	}

	switch {
	case generated.Failed():
		rec.Rejection = models.RejectionUnparsable
	default:
		scheme, rejection := game.ValidateTable(sc, generated.Table)
		if rejection != nil {
			rec.Rejection = rejection.Code
		} else {
			u := game.SenderExpectedUtility(sc, scheme)
			rec.IsValidScheme = true
			rec.SenderUtility = &u
		}
	}

	metrics.Score(rec)
	return rec, nil
}
