package batch

import (
	"fmt"
	"runtime"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/lox/holdem-equity/internal/deck"
	"github.com/lox/holdem-equity/internal/equity"
	"github.com/lox/holdem-equity/internal/randutil"
	"github.com/lox/holdem-equity/internal/report"
	"github.com/lox/holdem-equity/internal/statistics"
)

// HandSummary is the aggregated outcome for one starting hand
type HandSummary struct {
	Hand  string
	Stats *statistics.Statistics
}

// Runner executes a batch of equity simulations
type Runner struct {
	settings SimulationSettings
	logger   *log.Logger
	writer   *report.Writer
}

// NewRunner creates a batch runner. The output directory is created up
// front; failure to create it disables persistence for the batch but does
// not abort it — results still reach the console.
func NewRunner(settings SimulationSettings, logger *log.Logger) *Runner {
	r := &Runner{settings: settings, logger: logger}

	writer, err := report.NewWriter(settings.OutputDir)
	if err != nil {
		logger.Error("continuing without result files", "err", err)
	} else {
		r.writer = writer
	}

	return r
}

// Run simulates every configured hand and returns the per-hand summaries
// in input order. Invalid settings or hand notation fail before any
// simulation starts; output failures are reported and skipped.
func (r *Runner) Run() ([]HandSummary, error) {
	if err := r.settings.Validate(); err != nil {
		return nil, err
	}

	hands := r.settings.Hands
	if len(hands) == 0 {
		hands = deck.StartingHands()
	}

	// Parse the whole list up front so a typo at position 40 doesn't waste
	// 39 hands of simulation.
	heroes := make([][]deck.Card, len(hands))
	for i, hand := range hands {
		hero, err := deck.ParseNotation(hand)
		if err != nil {
			return nil, err
		}
		heroes[i] = hero
	}

	workers := r.settings.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	master := randutil.New(r.settings.Seed)
	summaries := make([]HandSummary, 0, len(hands))

	for i, hand := range hands {
		stats, err := r.runHand(heroes[i], workers, master.Int64())
		if err != nil {
			return summaries, fmt.Errorf("hand %s: %w", hand, err)
		}

		lower, upper := stats.ConfidenceInterval95()
		r.logger.Info("hand complete",
			"hand", hand,
			"equity", fmt.Sprintf("%.4f", stats.Mean()),
			"ci95", fmt.Sprintf("[%.4f, %.4f]", lower, upper))

		if r.writer != nil {
			if err := r.writer.WriteHand(hand, stats, r.settings.Simulations); err != nil {
				r.logger.Error("skipping result file", "hand", hand, "err", err)
			}
		}

		summaries = append(summaries, HandSummary{Hand: hand, Stats: stats})
	}

	return summaries, nil
}

// runHand executes the configured runs for one hero hand. Runs are
// independent, so they fan out across workers with per-run seeds drawn
// sequentially from the hand seed; a single run instead splits its trials
// across the workers.
func (r *Runner) runHand(hero []deck.Card, workers int, handSeed int64) (*statistics.Statistics, error) {
	runs := r.settings.Runs
	rng := randutil.New(handSeed)

	if runs == 1 {
		res, err := equity.SimulateParallel(hero, r.settings.Simulations, workers, rng)
		if err != nil {
			return nil, err
		}
		stats := &statistics.Statistics{}
		stats.Add(statistics.RunResult{Equity: res.Equity(), Seed: handSeed})
		return stats, nil
	}

	seeds := make([]int64, runs)
	for i := range seeds {
		seeds[i] = rng.Int64()
	}

	equities := make([]float64, runs)
	var g errgroup.Group
	g.SetLimit(workers)

	for run := range runs {
		g.Go(func() error {
			res, err := equity.Simulate(hero, r.settings.Simulations, randutil.New(seeds[run]))
			if err != nil {
				return err
			}
			equities[run] = res.Equity()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Accumulate in run order so result files are stable for a given seed.
	stats := &statistics.Statistics{}
	for run, eq := range equities {
		stats.Add(statistics.RunResult{Equity: eq, Seed: seeds[run]})
	}
	return stats, nil
}
