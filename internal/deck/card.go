package deck

import (
	"fmt"
	"strings"
)

// Suit represents a card suit
type Suit int

const (
	Spades Suit = iota
	Hearts
	Diamonds
	Clubs
)

// Suits lists every suit in deck construction order
var Suits = []Suit{Spades, Hearts, Diamonds, Clubs}

// String returns the singular suit name (e.g. "Heart")
func (s Suit) String() string {
	switch s {
	case Spades:
		return "Spade"
	case Hearts:
		return "Heart"
	case Diamonds:
		return "Diamond"
	case Clubs:
		return "Club"
	default:
		return "?"
	}
}

// Symbol returns the suit glyph
func (s Suit) Symbol() string {
	switch s {
	case Spades:
		return "♠"
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	default:
		return "?"
	}
}

// IsRed returns true if the suit is red (Hearts or Diamonds)
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// Rank represents a card rank. Numbered ranks carry their face value.
type Rank int

const (
	Ace Rank = iota + 1
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
)

// Ranks lists every rank in deck construction order
var Ranks = []Rank{Ace, Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King}

// String returns the rank name as printed on cards ("Ace", "7", "Queen")
func (r Rank) String() string {
	switch r {
	case Ace:
		return "Ace"
	case Jack:
		return "Jack"
	case Queen:
		return "Queen"
	case King:
		return "King"
	}
	if r.IsNumbered() {
		return fmt.Sprintf("%d", int(r))
	}
	return "?"
}

// Short returns the one character rank code used by ParseCard
func (r Rank) Short() string {
	switch r {
	case Ace:
		return "A"
	case Ten:
		return "T"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	}
	if r.IsNumbered() {
		return fmt.Sprintf("%d", int(r))
	}
	return "?"
}

// IsNumbered reports whether the rank is one of 2 through 10
func (r Rank) IsNumbered() bool {
	return r >= Two && r <= Ten
}

// IsFace reports whether the rank is a Jack, Queen or King
func (r Rank) IsFace() bool {
	return r >= Jack && r <= King
}

// Card is a single playing card. Suit and rank never change once built;
// Visible is flipped by whoever currently holds the card.
type Card struct {
	Suit    Suit
	Rank    Rank
	Visible bool
}

// NewCard creates a new face-up card
func NewCard(suit Suit, rank Rank) *Card {
	return &Card{Suit: suit, Rank: rank, Visible: true}
}

// Name returns the full card name regardless of visibility
func (c *Card) Name() string {
	return fmt.Sprintf("%s of %ss", c.Rank, c.Suit)
}

// String returns the card name, or "<hidden>" when the card is face down
func (c *Card) String() string {
	if !c.Visible {
		return "<hidden>"
	}
	return c.Name()
}

// Short returns the compact form used in logs (e.g. "Q♥")
func (c *Card) Short() string {
	if !c.Visible {
		return "??"
	}
	return c.Rank.Short() + c.Suit.Symbol()
}

// GoString describes the card and which way it faces
func (c *Card) GoString() string {
	face := "down"
	if c.Visible {
		face = "up"
	}
	return fmt.Sprintf("<Card %q face %s>", c.Name(), face)
}

// IsRed returns true if the card is red
func (c *Card) IsRed() bool {
	return c.Suit.IsRed()
}

// IsAce returns true if the card is an Ace
func (c *Card) IsAce() bool {
	return c.Rank == Ace
}

// ParseCard parses a two character card code such as "As", "Th" or "7d"
func ParseCard(s string) (*Card, error) {
	if len(s) != 2 {
		return nil, fmt.Errorf("invalid card string: %q", s)
	}

	rank, err := parseRank(s[0])
	if err != nil {
		return nil, err
	}
	suit, err := parseSuit(s[1])
	if err != nil {
		return nil, err
	}
	return NewCard(suit, rank), nil
}

// ParseCards parses a whitespace separated or concatenated list of card codes
func ParseCards(s string) ([]*Card, error) {
	s = strings.Join(strings.Fields(s), "")
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("invalid card string length: %d (must be even)", len(s))
	}

	cards := make([]*Card, 0, len(s)/2)
	for i := 0; i < len(s); i += 2 {
		card, err := ParseCard(s[i : i+2])
		if err != nil {
			return nil, fmt.Errorf("card at position %d: %w", i, err)
		}
		cards = append(cards, card)
	}
	return cards, nil
}

// MustParseCards parses cards and panics on error (for tests)
func MustParseCards(s string) []*Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(fmt.Sprintf("failed to parse cards '%s': %v", s, err))
	}
	return cards
}

func parseRank(c byte) (Rank, error) {
	switch c {
	case 'A', 'a':
		return Ace, nil
	case 'T', 't':
		return Ten, nil
	case 'J', 'j':
		return Jack, nil
	case 'Q', 'q':
		return Queen, nil
	case 'K', 'k':
		return King, nil
	}
	if c >= '2' && c <= '9' {
		return Rank(c - '0'), nil
	}
	return 0, fmt.Errorf("invalid rank: %c", c)
}

func parseSuit(c byte) (Suit, error) {
	switch c {
	case 's', 'S':
		return Spades, nil
	case 'h', 'H':
		return Hearts, nil
	case 'd', 'D':
		return Diamonds, nil
	case 'c', 'C':
		return Clubs, nil
	default:
		return 0, fmt.Errorf("invalid suit: %c", c)
	}
}
