package evaluator

import (
	"math/rand"
	"testing"

	"github.com/lox/holdem-equity/internal/deck"
)

func TestEvaluate5Categories(t *testing.T) {
	tests := []struct {
		name     string
		cards    string
		category Category
		value    HandValue
	}{
		{
			name:     "straight flush",
			cards:    "9s8s7s6s5s",
			category: StraightFlush,
			value:    HandValue{int(StraightFlush), 9},
		},
		{
			name:     "royal flush is ace-high straight flush",
			cards:    "AsKsQsJsTs",
			category: StraightFlush,
			value:    HandValue{int(StraightFlush), 14},
		},
		{
			name:     "wheel straight flush is five-high",
			cards:    "As2s3s4s5s",
			category: StraightFlush,
			value:    HandValue{int(StraightFlush), 5},
		},
		{
			name:     "four of a kind",
			cards:    "9s9h9d9cKs",
			category: FourOfAKind,
			value:    HandValue{int(FourOfAKind), 9, 13},
		},
		{
			name:     "full house",
			cards:    "TsThTd4c4s",
			category: FullHouse,
			value:    HandValue{int(FullHouse), 10, 4},
		},
		{
			name:     "flush",
			cards:    "Ah9h7h4h2h",
			category: Flush,
			value:    HandValue{int(Flush), 14, 9, 7, 4, 2},
		},
		{
			name:     "straight",
			cards:    "8s7h6d5c4s",
			category: Straight,
			value:    HandValue{int(Straight), 8},
		},
		{
			name:     "wheel straight is five-high",
			cards:    "Ah2s3d4c5s",
			category: Straight,
			value:    HandValue{int(Straight), 5},
		},
		{
			name:     "three of a kind",
			cards:    "7s7h7dKcQs",
			category: ThreeOfAKind,
			value:    HandValue{int(ThreeOfAKind), 7, 13, 12},
		},
		{
			name:     "two pair",
			cards:    "JsJh4d4cAs",
			category: TwoPair,
			value:    HandValue{int(TwoPair), 11, 4, 14},
		},
		{
			name:     "one pair",
			cards:    "QsQh9d6c3s",
			category: OnePair,
			value:    HandValue{int(OnePair), 12, 9, 6, 3},
		},
		{
			name:     "high card",
			cards:    "Ks J s 9 d 5 c 2 h",
			category: HighCard,
			value:    HandValue{int(HighCard), 13, 11, 9, 5, 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Evaluate5(deck.MustParseCards(tt.cards))
			if got.Category() != tt.category {
				t.Fatalf("category = %s, want %s", got.Category(), tt.category)
			}
			if got.Compare(tt.value) != 0 {
				t.Errorf("value = %v, want %v", got, tt.value)
			}
		})
	}
}

func TestEvaluate5OrderIndependence(t *testing.T) {
	cards := deck.MustParseCards("JsJh4d4cAs")
	want := Evaluate5(cards)

	rng := rand.New(rand.NewSource(99))
	for range 20 {
		shuffled := make([]deck.Card, len(cards))
		copy(shuffled, cards)
		rng.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})
		if got := Evaluate5(shuffled); got.Compare(want) != 0 {
			t.Fatalf("order changed value: %v vs %v", got, want)
		}
	}
}

func TestCategoryOrdering(t *testing.T) {
	// One concrete example per category, strongest first. Every adjacent
	// pair must strictly order.
	ladder := []string{
		"9s8s7s6s5s", // straight flush
		"9s9h9d9cKs", // four of a kind
		"TsThTd4c4s", // full house
		"Ah9h7h4h2h", // flush
		"8s7h6d5c4s", // straight
		"7s7h7dKcQs", // three of a kind
		"JsJh4d4cAs", // two pair
		"QsQh9d6c3s", // one pair
		"KsJs9d5c2h", // high card
	}

	for i := 0; i < len(ladder)-1; i++ {
		stronger := Evaluate5(deck.MustParseCards(ladder[i]))
		weaker := Evaluate5(deck.MustParseCards(ladder[i+1]))
		if stronger.Compare(weaker) != 1 {
			t.Errorf("%s (%v) should beat %s (%v)",
				ladder[i], stronger, ladder[i+1], weaker)
		}
		if weaker.Compare(stronger) != -1 {
			t.Errorf("comparison not antisymmetric for %s vs %s", ladder[i], ladder[i+1])
		}
	}
}

func TestWheelBelowSixHighStraight(t *testing.T) {
	wheel := Evaluate5(deck.MustParseCards("Ah2s3d4c5s"))
	sixHigh := Evaluate5(deck.MustParseCards("2h3s4d5c6s"))

	if wheel.Category() != Straight {
		t.Fatalf("wheel category = %s, want Straight", wheel.Category())
	}
	if wheel.Compare(sixHigh) != -1 {
		t.Errorf("wheel (%v) should lose to six-high straight (%v)", wheel, sixHigh)
	}
}

func TestKickerTieBreaks(t *testing.T) {
	tests := []struct {
		name             string
		stronger, weaker string
	}{
		{"higher pair wins", "QsQh9d6c3s", "JsJhAd6c3s"},
		{"pair kicker decides", "QsQhAd6c3s", "QdQcKd6h3h"},
		{"two pair top pair first", "JsJh4d4cAs", "TsTh9d9cAh"},
		{"two pair kicker decides", "JsJh4d4cAs", "JdJc4h4sKs"},
		{"flush compares all five", "Ah9h7h4h3h", "Ad9d7d4d2d"},
		{"full house trips first", "TsThTd4c4s", "9s9h9dAcAs"},
		{"quads kicker decides", "9s9h9d9cKs", "9s9h9d9cQs"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Evaluate5(deck.MustParseCards(tt.stronger))
			w := Evaluate5(deck.MustParseCards(tt.weaker))
			if s.Compare(w) != 1 {
				t.Errorf("%s (%v) should beat %s (%v)", tt.stronger, s, tt.weaker, w)
			}
		})
	}
}

func TestExactTies(t *testing.T) {
	// Same ranks, disjoint suits, no flush on either side.
	a := Evaluate5(deck.MustParseCards("AsKd9h5c2s"))
	b := Evaluate5(deck.MustParseCards("AhKs9c5d2h"))
	if a.Compare(b) != 0 {
		t.Errorf("identical ranks should tie: %v vs %v", a, b)
	}
}
