package evaluator

import (
	"fmt"
	"strings"

	"github.com/lox/holdemtable/poker"
)

// Category is the class of a five-card hand, ordered weakest to strongest.
// Invalid is reported for inputs with fewer than five cards.
type Category int

const (
	Invalid Category = iota
	HighCard
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
)

// String returns the string representation of a hand category
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
		return "Invalid"
	}
}

// categoryShift places the category in the most significant hex digit.
const categoryShift = 16

// Score totally orders five-card hands: higher is stronger and equal scores
// are equal hands. The category sits in the 0x10000 digit and tie-break
// ranks fill the lower hex digits, most significant first.
type Score uint32

// Category returns the hand category encoded in the score
func (s Score) Category() Category {
	return Category(s >> categoryShift)
}

// String returns the category with the raw score, e.g. "Full House (0x7c300)"
func (s Score) String() string {
	return fmt.Sprintf("%s (0x%x)", s.Category(), uint32(s))
}

// Result is the best five-card hand found in a set of cards
type Result struct {
	Score Score
	Cards [5]poker.Card // Ordered by the rank used to score them, highest first
}

// Category returns the category of the best hand
func (r Result) Category() Category {
	return r.Score.Category()
}

// String returns a string representation of the hand
func (r Result) String() string {
	if r.Score == 0 {
		return Invalid.String()
	}
	parts := make([]string, len(r.Cards))
	for i, c := range r.Cards {
		parts[i] = c.String()
	}
	return fmt.Sprintf("%s [%s]", r.Score.Category(), strings.Join(parts, " "))
}
