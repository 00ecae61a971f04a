package evaluator

import "github.com/lox/holdem-equity/internal/deck"

// BestOfSeven returns the strongest five-card hand value obtainable from
// seven distinct cards, evaluating all C(7,5) = 21 subsets. Pure; the cost
// is fixed regardless of input. Ties between maximal subsets are harmless
// since equal subsets yield equal values.
func BestOfSeven(cards []deck.Card) HandValue {
	var best HandValue
	pick := make([]deck.Card, 5)
	for idx := range Combinations(len(cards), 5) {
		for i, j := range idx {
			pick[i] = cards[j]
		}
		if v := Evaluate5(pick); best == nil || v.Compare(best) > 0 {
			best = v
		}
	}
	return best
}
