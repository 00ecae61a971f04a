package deck

import "fmt"

// ParseNotation converts starting-hand notation into two hole cards.
//
// Two rank symbols denote a pocket pair ("AA") and are assigned different
// suits. Two rank symbols plus a style flag denote a non-pair hand: 's'
// assigns both cards the same suit ("AKs"), anything else assigns two
// different suits ("Q7o"). Suits beyond suited/offsuit are arbitrary —
// equity against a random opponent is suit-symmetric.
func ParseNotation(hand string) ([]Card, error) {
	switch len(hand) {
	case 2:
		r1, err := parseRank(hand[0])
		if err != nil {
			return nil, fmt.Errorf("hand %q: %w", hand, err)
		}
		r2, err := parseRank(hand[1])
		if err != nil {
			return nil, fmt.Errorf("hand %q: %w", hand, err)
		}
		return []Card{{Rank: r1, Suit: Hearts}, {Rank: r2, Suit: Diamonds}}, nil

	case 3:
		r1, err := parseRank(hand[0])
		if err != nil {
			return nil, fmt.Errorf("hand %q: %w", hand, err)
		}
		r2, err := parseRank(hand[1])
		if err != nil {
			return nil, fmt.Errorf("hand %q: %w", hand, err)
		}
		if r1 == r2 {
			return nil, fmt.Errorf("hand %q: pocket pairs take no suited/offsuit flag", hand)
		}
		if hand[2] == 's' || hand[2] == 'S' {
			return []Card{{Rank: r1, Suit: Hearts}, {Rank: r2, Suit: Hearts}}, nil
		}
		return []Card{{Rank: r1, Suit: Hearts}, {Rank: r2, Suit: Diamonds}}, nil

	default:
		return nil, fmt.Errorf("hand %q: must be 2 or 3 characters", hand)
	}
}

// StartingHands returns all 169 starting-hand categories in notation form,
// ordered high rank first: pairs ("AA"), then suited and offsuit combos
// ("AKs", "AKo").
func StartingHands() []string {
	hands := make([]string, 0, 169)
	for high := Ace; high >= Two; high-- {
		for low := high; low >= Two; low-- {
			if high == low {
				hands = append(hands, high.String()+low.String())
				continue
			}
			hands = append(hands, high.String()+low.String()+"s")
			hands = append(hands, high.String()+low.String()+"o")
		}
	}
	return hands
}
