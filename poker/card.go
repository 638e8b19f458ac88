package poker

import (
	"fmt"
	"strings"
)

// Suit represents a card suit
type Suit uint8

const (
	Hearts Suit = iota
	Diamonds
	Spades
	Clubs
)

// NumSuits is the number of suits in a standard deck
const NumSuits = 4

var suitChars = [NumSuits]byte{'h', 'd', 's', 'c'}

// String returns the single-letter suit used in card notation
func (s Suit) String() string {
	if s >= NumSuits {
		return "?"
	}
	return string(suitChars[s])
}

// Symbol returns the unicode suit symbol
func (s Suit) Symbol() string {
	switch s {
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	case Spades:
		return "♠"
	case Clubs:
		return "♣"
	default:
		return "?"
	}
}

// IsRed returns true for hearts and diamonds
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// Rank represents a card rank. The Ace is rank 0 so that A-2-3-4-5 is a
// run of consecutive ranks; AceHigh (13) is the Ace counted above the King
// and never appears on a dealt card.
type Rank uint8

const (
	Ace Rank = iota
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	AceHigh
)

// NumRanks is the number of distinct ranks on dealt cards
const NumRanks = 13

const rankChars = "A23456789TJQKA"

// String returns the single-character rank used in card notation
func (r Rank) String() string {
	if r > AceHigh {
		return "?"
	}
	return string(rankChars[r])
}

// Card is a single playing card
type Card struct {
	Suit Suit
	Rank Rank
}

// NewCard creates a card from a rank and suit
func NewCard(rank Rank, suit Suit) Card {
	return Card{Suit: suit, Rank: rank}
}

// String returns the card in [Rank][suit] notation, e.g. "As" or "Th"
func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// Pretty returns the card with a unicode suit symbol, e.g. "A♠"
func (c Card) Pretty() string {
	if c.Rank == Ten {
		return "10" + c.Suit.Symbol()
	}
	return c.Rank.String() + c.Suit.Symbol()
}

// Index returns a dense index in [0, 52) for dealt cards
func (c Card) Index() int {
	return int(c.Suit)*NumRanks + int(c.Rank%NumRanks)
}

// ParseCard parses a single card such as "As", "Td" or "10h".
func ParseCard(s string) (Card, error) {
	s = strings.TrimSpace(s)
	if len(s) < 2 || len(s) > 3 {
		return Card{}, fmt.Errorf("invalid card %q", s)
	}
	rankPart, suitPart := s[:len(s)-1], s[len(s)-1]

	var rank Rank
	switch strings.ToUpper(rankPart) {
	case "A":
		rank = Ace
	case "K":
		rank = King
	case "Q":
		rank = Queen
	case "J":
		rank = Jack
	case "T", "10":
		rank = Ten
	default:
		if len(rankPart) != 1 || rankPart[0] < '2' || rankPart[0] > '9' {
			return Card{}, fmt.Errorf("invalid rank %q in card %q", rankPart, s)
		}
		rank = Rank(rankPart[0]-'2') + Two
	}

	var suit Suit
	switch suitPart {
	case 'h', 'H':
		suit = Hearts
	case 'd', 'D':
		suit = Diamonds
	case 's', 'S':
		suit = Spades
	case 'c', 'C':
		suit = Clubs
	default:
		return Card{}, fmt.Errorf("invalid suit %q in card %q", suitPart, s)
	}

	return NewCard(rank, suit), nil
}

// ParseCards parses a run of cards with optional spaces or commas between
// them, e.g. "AsKs", "As Ks" or "10h,9h".
func ParseCards(s string) ([]Card, error) {
	var cards []Card
	for _, field := range strings.FieldsFunc(s, func(r rune) bool { return r == ' ' || r == ',' }) {
		for len(field) > 0 {
			n := 2
			if strings.HasPrefix(field, "10") {
				n = 3
			}
			if len(field) < n {
				return nil, fmt.Errorf("incomplete card %q", field)
			}
			card, err := ParseCard(field[:n])
			if err != nil {
				return nil, err
			}
			cards = append(cards, card)
			field = field[n:]
		}
	}
	return cards, nil
}

// MustParseCards parses cards and panics on error (for tests)
func MustParseCards(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(fmt.Sprintf("failed to parse cards %q: %v", s, err))
	}
	return cards
}

// FormatCards joins cards in notation form separated by spaces
func FormatCards(cards []Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

// MarshalText encodes the card in notation form
func (c Card) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText decodes a card in notation form
func (c *Card) UnmarshalText(text []byte) error {
	parsed, err := ParseCard(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
