// Package deck models playing cards, starting-hand notation, and deck
// construction for heads-up hold'em simulation.
package deck

import rand "math/rand/v2"

// Deck represents a deck of playing cards dealt sequentially from the top.
// Randomness is always injected so simulations are reproducible.
type Deck struct {
	cards []Card
	next  int
	rng   *rand.Rand
}

// New creates a deck containing the 52 rank×suit combinations minus the
// excluded cards, in a fixed suit-major order. The order is irrelevant once
// shuffled; exclusions are the caller's responsibility to keep valid and
// duplicate-free.
func New(rng *rand.Rand, exclude ...Card) *Deck {
	d := &Deck{
		cards: make([]Card, 0, 52-len(exclude)),
		rng:   rng,
	}

	for suit := Spades; suit <= Clubs; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			card := Card{Suit: suit, Rank: rank}
			if !contains(exclude, card) {
				d.cards = append(d.cards, card)
			}
		}
	}

	return d
}

func contains(cards []Card, card Card) bool {
	for _, c := range cards {
		if c == card {
			return true
		}
	}
	return false
}

// Shuffle randomizes the order of the remaining cards using Fisher-Yates
// and resets the deal position.
func (d *Deck) Shuffle() {
	d.next = 0
	for i := len(d.cards) - 1; i > 0; i-- {
		j := d.rng.IntN(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Deal deals n cards from the top of the deck. Returns nil if fewer than n
// cards remain.
func (d *Deck) Deal(n int) []Card {
	if d.next+n > len(d.cards) {
		return nil
	}
	cards := d.cards[d.next : d.next+n]
	d.next += n
	return cards
}

// Remaining returns the number of cards left to deal
func (d *Deck) Remaining() int {
	return len(d.cards) - d.next
}

// Size returns the total number of cards in the deck
func (d *Deck) Size() int {
	return len(d.cards)
}
