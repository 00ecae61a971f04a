// Package equity estimates a starting hand's win probability against a
// single random opponent in heads-up hold'em by Monte Carlo simulation.
package equity

import (
	"fmt"
	"math"
	rand "math/rand/v2"

	"github.com/lox/holdem-equity/internal/deck"
	"github.com/lox/holdem-equity/internal/evaluator"
)

// Result aggregates the win/tie/loss counts of one simulation run. It is
// accumulated trial-by-trial and never mutated once the run completes.
type Result struct {
	Wins   int
	Ties   int
	Losses int
}

// Trials returns the total number of trials the result covers
func (r Result) Trials() int {
	return r.Wins + r.Ties + r.Losses
}

// Equity returns the hero's equity: wins count as 1, ties as 0.5.
// Always in [0, 1]; 0 for an empty result.
func (r Result) Equity() float64 {
	trials := r.Trials()
	if trials == 0 {
		return 0
	}
	return (float64(r.Wins) + 0.5*float64(r.Ties)) / float64(trials)
}

// Add merges two results. Commutative and associative, so per-worker
// counts can be summed in any order.
func (r Result) Add(other Result) Result {
	return Result{
		Wins:   r.Wins + other.Wins,
		Ties:   r.Ties + other.Ties,
		Losses: r.Losses + other.Losses,
	}
}

// ConfidenceInterval returns the 95% confidence interval for the equity
// estimate using the binomial standard error.
func (r Result) ConfidenceInterval() (lower, upper float64) {
	n := float64(r.Trials())
	if n == 0 {
		return 0, 0
	}

	eq := r.Equity()
	se := math.Sqrt(eq * (1.0 - eq) / n)
	margin := 1.96 * se

	return math.Max(0, eq-margin), math.Min(1, eq+margin)
}

// Simulate runs trials independent deals for the hero's two hole cards
// against a random opponent and tallies the outcomes. Each trial shuffles
// the 50 non-hero cards, gives the opponent the top two, deals a five-card
// board, and compares both sides' best seven-card hand values.
//
// The randomness source is injected; a fixed seed reproduces the exact
// win/tie/loss counts. Errors are contract violations: a non-positive
// trial count or a hero hand that is not two distinct cards.
func Simulate(hero []deck.Card, trials int, rng *rand.Rand) (Result, error) {
	if err := validateHero(hero); err != nil {
		return Result{}, err
	}
	if trials <= 0 {
		return Result{}, fmt.Errorf("trial count must be positive, got %d", trials)
	}

	d := deck.New(rng, hero...)

	var res Result
	heroSeven := make([]deck.Card, 7)
	oppSeven := make([]deck.Card, 7)
	copy(heroSeven[:2], hero)

	for range trials {
		d.Shuffle()
		opp := d.Deal(2)
		board := d.Deal(5)

		copy(oppSeven[:2], opp)
		copy(heroSeven[2:], board)
		copy(oppSeven[2:], board)

		heroValue := evaluator.BestOfSeven(heroSeven)
		oppValue := evaluator.BestOfSeven(oppSeven)

		switch heroValue.Compare(oppValue) {
		case 1:
			res.Wins++
		case 0:
			res.Ties++
		default:
			res.Losses++
		}
	}

	return res, nil
}

func validateHero(hero []deck.Card) error {
	if len(hero) != 2 {
		return fmt.Errorf("hero hand must contain exactly 2 cards, got %d", len(hero))
	}
	if hero[0] == hero[1] {
		return fmt.Errorf("hero hand contains duplicate card %s", hero[0])
	}
	return nil
}
