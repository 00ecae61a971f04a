// Package evaluator ranks five-card poker hands and selects the best
// five-card hand from seven cards. Evaluation is a fixed-precedence list
// of category detectors over a precomputed shape of the hand; the first
// detector that matches produces the hand value.
package evaluator

import (
	"sort"

	"github.com/lox/holdem-equity/internal/deck"
)

// rankGroup is a rank and how many cards of that rank the hand holds
type rankGroup struct {
	rank  int
	count int
}

// handShape holds the facts the category detectors share: flushness,
// straight high card (0 when none, 5 for the wheel), rank groups ordered
// by (count desc, rank desc), and all card values descending.
type handShape struct {
	flush        bool
	straightHigh int
	groups       []rankGroup
	values       []int
}

// detector inspects a hand shape and either produces a completed hand
// value or reports no match.
type detector func(handShape) (HandValue, bool)

// detectors in strict precedence order; the first match wins
var detectors = []detector{
	detectStraightFlush,
	detectFourOfAKind,
	detectFullHouse,
	detectFlush,
	detectStraight,
	detectThreeOfAKind,
	detectTwoPair,
	detectOnePair,
	detectHighCard,
}

// Evaluate5 maps five distinct cards to their hand value. Pure and
// deterministic: card order never affects the result.
func Evaluate5(cards []deck.Card) HandValue {
	shape := analyze(cards)
	for _, detect := range detectors {
		if v, ok := detect(shape); ok {
			return v
		}
	}
	return nil // unreachable: detectHighCard always matches
}

func analyze(cards []deck.Card) handShape {
	values := make([]int, len(cards))
	flush := true
	for i, c := range cards {
		values[i] = c.Value()
		if c.Suit != cards[0].Suit {
			flush = false
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(values)))

	counts := make(map[int]int, len(values))
	for _, v := range values {
		counts[v]++
	}
	groups := make([]rankGroup, 0, len(counts))
	for rank, count := range counts {
		groups = append(groups, rankGroup{rank: rank, count: count})
	}
	// Groups order decides kicker precedence among equal counts.
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].count != groups[j].count {
			return groups[i].count > groups[j].count
		}
		return groups[i].rank > groups[j].rank
	})

	return handShape{
		flush:        flush,
		straightHigh: straightHigh(groups, values),
		groups:       groups,
		values:       values,
	}
}

// straightHigh returns the high card of a straight formed by the hand's
// ranks, 0 if there is none. The wheel (A-2-3-4-5) counts as a 5-high
// straight, not ace-high.
func straightHigh(groups []rankGroup, values []int) int {
	if len(groups) != 5 {
		return 0
	}
	// groups are rank-descending here since all counts are 1
	if groups[0].rank-groups[4].rank == 4 {
		return groups[0].rank
	}
	if isWheel(values) {
		return 5
	}
	return 0
}

func isWheel(values []int) bool {
	for _, want := range []int{14, 5, 4, 3, 2} {
		found := false
		for _, v := range values {
			if v == want {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func detectStraightFlush(s handShape) (HandValue, bool) {
	if !s.flush || s.straightHigh == 0 {
		return nil, false
	}
	return HandValue{int(StraightFlush), s.straightHigh}, true
}

func detectFourOfAKind(s handShape) (HandValue, bool) {
	if s.groups[0].count != 4 {
		return nil, false
	}
	return HandValue{int(FourOfAKind), s.groups[0].rank, s.groups[1].rank}, true
}

func detectFullHouse(s handShape) (HandValue, bool) {
	if s.groups[0].count != 3 || len(s.groups) < 2 || s.groups[1].count < 2 {
		return nil, false
	}
	return HandValue{int(FullHouse), s.groups[0].rank, s.groups[1].rank}, true
}

func detectFlush(s handShape) (HandValue, bool) {
	if !s.flush {
		return nil, false
	}
	return append(HandValue{int(Flush)}, s.values...), true
}

func detectStraight(s handShape) (HandValue, bool) {
	if s.straightHigh == 0 {
		return nil, false
	}
	return HandValue{int(Straight), s.straightHigh}, true
}

func detectThreeOfAKind(s handShape) (HandValue, bool) {
	if s.groups[0].count != 3 {
		return nil, false
	}
	v := HandValue{int(ThreeOfAKind), s.groups[0].rank}
	return appendSingles(v, s.groups[1:]), true
}

func detectTwoPair(s handShape) (HandValue, bool) {
	if s.groups[0].count != 2 || len(s.groups) < 2 || s.groups[1].count != 2 {
		return nil, false
	}
	v := HandValue{int(TwoPair), s.groups[0].rank, s.groups[1].rank}
	return appendSingles(v, s.groups[2:]), true
}

func detectOnePair(s handShape) (HandValue, bool) {
	if s.groups[0].count != 2 {
		return nil, false
	}
	v := HandValue{int(OnePair), s.groups[0].rank}
	return appendSingles(v, s.groups[1:]), true
}

func detectHighCard(s handShape) (HandValue, bool) {
	return append(HandValue{int(HighCard)}, s.values...), true
}

// appendSingles appends the remaining groups' ranks as kickers. Groups are
// already (count desc, rank desc) ordered, and the remainder after the
// paired groups is all singles, so this is descending rank order.
func appendSingles(v HandValue, groups []rankGroup) HandValue {
	for _, g := range groups {
		v = append(v, g.rank)
	}
	return v
}
