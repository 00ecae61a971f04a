package equity

import (
	"testing"

	"github.com/lox/holdem-equity/internal/deck"
	"github.com/lox/holdem-equity/internal/randutil"
)

func TestSimulateCountsSumToTrials(t *testing.T) {
	hero := deck.MustParseCards("AhAd")
	res, err := Simulate(hero, 500, randutil.New(1))
	if err != nil {
		t.Fatalf("Simulate failed: %v", err)
	}

	if res.Trials() != 500 {
		t.Errorf("wins+ties+losses = %d, want 500", res.Trials())
	}
	if eq := res.Equity(); eq < 0 || eq > 1 {
		t.Errorf("equity %f outside [0,1]", eq)
	}
}

func TestSimulateDeterministic(t *testing.T) {
	hero := deck.MustParseCards("KhQd")

	a, err := Simulate(hero, 1000, randutil.New(42))
	if err != nil {
		t.Fatalf("Simulate failed: %v", err)
	}
	b, err := Simulate(hero, 1000, randutil.New(42))
	if err != nil {
		t.Fatalf("Simulate failed: %v", err)
	}

	if a != b {
		t.Errorf("same seed produced different counts: %+v vs %+v", a, b)
	}
}

func TestSimulateAcesBeatSevenDeuce(t *testing.T) {
	aces := deck.MustParseCards("AhAd")
	sevenDeuce := deck.MustParseCards("7h2d")

	acesRes, err := Simulate(aces, 3000, randutil.New(7))
	if err != nil {
		t.Fatalf("Simulate failed: %v", err)
	}
	sdRes, err := Simulate(sevenDeuce, 3000, randutil.New(7))
	if err != nil {
		t.Fatalf("Simulate failed: %v", err)
	}

	if acesRes.Equity() < 0.6 {
		t.Errorf("AA equity %f, want > 0.6", acesRes.Equity())
	}
	if sdRes.Equity() > 0.4 {
		t.Errorf("72o equity %f, want < 0.4", sdRes.Equity())
	}
}

func TestSimulateContractViolations(t *testing.T) {
	tests := []struct {
		name   string
		hero   []deck.Card
		trials int
	}{
		{"zero trials", deck.MustParseCards("AhAd"), 0},
		{"negative trials", deck.MustParseCards("AhAd"), -5},
		{"one card", deck.MustParseCards("Ah"), 100},
		{"three cards", deck.MustParseCards("AhAdAs"), 100},
		{"duplicate cards", []deck.Card{deck.NewCard(deck.Hearts, deck.Ace), deck.NewCard(deck.Hearts, deck.Ace)}, 100},
		{"empty hand", nil, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Simulate(tt.hero, tt.trials, randutil.New(1)); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestResultEquity(t *testing.T) {
	tests := []struct {
		result   Result
		expected float64
	}{
		{Result{Wins: 10, Ties: 0, Losses: 0}, 1.0},
		{Result{Wins: 0, Ties: 0, Losses: 10}, 0.0},
		{Result{Wins: 0, Ties: 10, Losses: 0}, 0.5},
		{Result{Wins: 5, Ties: 2, Losses: 3}, 0.6},
		{Result{}, 0.0},
	}

	for _, tt := range tests {
		if got := tt.result.Equity(); got != tt.expected {
			t.Errorf("%+v Equity() = %f, want %f", tt.result, got, tt.expected)
		}
	}
}

func TestResultAddCommutative(t *testing.T) {
	a := Result{Wins: 3, Ties: 1, Losses: 6}
	b := Result{Wins: 8, Ties: 0, Losses: 2}

	if a.Add(b) != b.Add(a) {
		t.Error("Add should be commutative")
	}
	if got := a.Add(b).Trials(); got != a.Trials()+b.Trials() {
		t.Errorf("merged trials = %d, want %d", got, a.Trials()+b.Trials())
	}
}

func TestResultConfidenceInterval(t *testing.T) {
	res := Result{Wins: 850, Ties: 30, Losses: 120}
	lower, upper := res.ConfidenceInterval()

	eq := res.Equity()
	if lower >= eq || upper <= eq {
		t.Errorf("interval [%f, %f] should bracket equity %f", lower, upper, eq)
	}
	if lower < 0 || upper > 1 {
		t.Errorf("interval [%f, %f] outside [0,1]", lower, upper)
	}

	if l, u := (Result{}).ConfidenceInterval(); l != 0 || u != 0 {
		t.Errorf("empty result interval = [%f, %f], want [0, 0]", l, u)
	}
}
