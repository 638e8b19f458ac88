package poker

import (
	"math/rand/v2"
)

// DeckSize is the number of cards in a standard deck
const DeckSize = NumSuits * NumRanks

// Deck is an ordered supply of unique cards
type Deck struct {
	cards []Card
	next  int
	rng   *rand.Rand // Random source for deterministic shuffling
}

// AllCards returns the 52 cards of a standard deck in suit then rank order
func AllCards() []Card {
	cards := make([]Card, 0, DeckSize)
	for suit := range Suit(NumSuits) {
		for rank := range Rank(NumRanks) {
			cards = append(cards, NewCard(rank, suit))
		}
	}
	return cards
}

// NewDeck creates a new shuffled deck with explicit RNG
func NewDeck(rng *rand.Rand) *Deck {
	d := &Deck{
		cards: AllCards(),
		rng:   rng,
	}
	d.Shuffle()
	return d
}

// NewStackedDeck creates an unshuffled deck that deals the given cards first,
// followed by every other card of a standard deck in suit then rank order.
// Duplicated cards in top are ignored after their first occurrence.
func NewStackedDeck(top ...Card) *Deck {
	seen := make(map[Card]bool, DeckSize)
	cards := make([]Card, 0, DeckSize)
	for _, c := range top {
		if !seen[c] {
			seen[c] = true
			cards = append(cards, c)
		}
	}
	for _, c := range AllCards() {
		if !seen[c] {
			cards = append(cards, c)
		}
	}
	return &Deck{cards: cards}
}

// Shuffle shuffles the undealt cards using Fisher-Yates
func (d *Deck) Shuffle() {
	rest := d.cards[d.next:]
	for i := len(rest) - 1; i > 0; i-- {
		var j int
		if d.rng != nil {
			j = d.rng.IntN(i + 1)
		} else {
			j = rand.IntN(i + 1)
		}
		rest[i], rest[j] = rest[j], rest[i]
	}
}

// Deal deals n cards from the deck, or nil if not enough remain
func (d *Deck) Deal(n int) []Card {
	if n < 0 || d.next+n > len(d.cards) {
		return nil
	}
	cards := make([]Card, n)
	copy(cards, d.cards[d.next:d.next+n])
	d.next += n
	return cards
}

// DealOne deals a single card from the deck
func (d *Deck) DealOne() (Card, bool) {
	if d.next >= len(d.cards) {
		return Card{}, false
	}
	card := d.cards[d.next]
	d.next++
	return card, true
}

// Remaining returns a copy of the undealt cards in deal order
func (d *Deck) Remaining() []Card {
	out := make([]Card, len(d.cards)-d.next)
	copy(out, d.cards[d.next:])
	return out
}

// CardsRemaining returns the number of cards left in the deck
func (d *Deck) CardsRemaining() int {
	return len(d.cards) - d.next
}
