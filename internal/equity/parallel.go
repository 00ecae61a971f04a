package equity

import (
	"fmt"
	rand "math/rand/v2"

	"golang.org/x/sync/errgroup"

	"github.com/lox/holdem-equity/internal/deck"
	"github.com/lox/holdem-equity/internal/randutil"
)

// SimulateParallel splits the trial budget across workers, each with an
// independently seeded generator derived from rng, and sums the per-worker
// counts. Trials are statistically independent, so the reduction is
// order-insensitive and the final counts depend only on the seed and
// worker count, not on scheduling.
func SimulateParallel(hero []deck.Card, trials, workers int, rng *rand.Rand) (Result, error) {
	if err := validateHero(hero); err != nil {
		return Result{}, err
	}
	if trials <= 0 {
		return Result{}, fmt.Errorf("trial count must be positive, got %d", trials)
	}

	if workers <= 1 {
		return Simulate(hero, trials, rng)
	}
	if workers > trials {
		workers = trials
	}

	// Worker generators are derived sequentially before fan-out so the
	// result is a pure function of (seed, trials, workers).
	rngs := make([]*rand.Rand, workers)
	for i := range rngs {
		rngs[i] = randutil.Child(rng)
	}

	share := trials / workers
	remainder := trials % workers

	results := make([]Result, workers)
	var g errgroup.Group

	for w := range workers {
		workerTrials := share
		if w < remainder {
			workerTrials++
		}

		g.Go(func() error {
			res, err := Simulate(hero, workerTrials, rngs[w])
			if err != nil {
				return err
			}
			results[w] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	var total Result
	for _, res := range results {
		total = total.Add(res)
	}
	return total, nil
}
