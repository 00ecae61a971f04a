package evaluator

// Category classifies a five-card hand. Higher is stronger.
type Category int

const (
	HighCard Category = iota + 1
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
)

// String returns the readable name of the category
func (c Category) String() string {
	switch c {
	case HighCard:
		return "High Card"
	case OnePair:
		return "One Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	default:
		return "Unknown"
	}
}

// HandValue is the totally ordered strength of a five-card hand. The first
// element is the category, the remainder are kicker values in descending
// significance. Values compare lexicographically; equal sequences are an
// exact tie.
type HandValue []int

// Category returns the hand's category
func (v HandValue) Category() Category {
	if len(v) == 0 {
		return 0
	}
	return Category(v[0])
}

// Compare returns -1 if v is weaker than other, 0 if equal, 1 if stronger.
func (v HandValue) Compare(other HandValue) int {
	for i := 0; i < len(v) && i < len(other); i++ {
		if v[i] < other[i] {
			return -1
		}
		if v[i] > other[i] {
			return 1
		}
	}
	// Same category always yields the same kicker count, so differing
	// lengths only occur for malformed values; longer wins determinism.
	switch {
	case len(v) < len(other):
		return -1
	case len(v) > len(other):
		return 1
	default:
		return 0
	}
}
