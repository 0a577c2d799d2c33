package game

import (
	"errors"
	"fmt"

	"github.com/lox/blackjack/internal/deck"
)

// ErrInsufficientChips is returned when a player bets more than they own
var ErrInsufficientChips = errors.New("not enough chips")

// DefaultStartingChips is the balance each player sits down with
const DefaultStartingChips = 100

// Player is a seated participant with a chip balance and, during a round,
// one hand.
type Player struct {
	Name  string
	Chips int
	Hand  *Hand
}

// NewPlayer creates a player with the given balance
func NewPlayer(name string, chips int) *Player {
	return &Player{Name: name, Chips: chips}
}

// String returns the player's name
func (p *Player) String() string {
	return p.Name
}

// Bet moves chips from the balance onto hand
func (p *Player) Bet(hand *Hand, amount int) error {
	if amount > p.Chips {
		return fmt.Errorf("%w: %s has %d chips, tried to bet %d", ErrInsufficientChips, p.Name, p.Chips, amount)
	}
	if err := hand.SetWager(amount); err != nil {
		return err
	}
	p.Chips -= amount
	return nil
}

// Earn credits chips to the balance
func (p *Player) Earn(amount int) {
	p.Chips += amount
}

// DropHand releases the current hand
func (p *Player) DropHand() {
	p.Hand = nil
}

// IsBroke reports whether the player has no chips left
func (p *Player) IsBroke() bool {
	return p.Chips <= 0
}

// GoString describes the player for debugging
func (p *Player) GoString() string {
	cards := 0
	if p.Hand != nil {
		cards = p.Hand.Len()
	}
	return fmt.Sprintf("<Player %q with %d cards and %d chips>", p.Name, cards, p.Chips)
}

// Dealer runs the table. It never holds chips or wagers.
type Dealer struct {
	Name string
	Hand *Hand
}

// NewDealer creates a dealer with an optional name
func NewDealer(name string) *Dealer {
	return &Dealer{Name: name}
}

// String returns the dealer's name, which may be empty
func (d *Dealer) String() string {
	return d.Name
}

// DropHand releases the current hand
func (d *Dealer) DropHand() {
	d.Hand = nil
}

// UpCard returns the dealer's first card, or nil before the deal
func (d *Dealer) UpCard() *deck.Card {
	if d.Hand == nil || d.Hand.Len() == 0 {
		return nil
	}
	return d.Hand.Cards()[0]
}

// GoString describes the dealer for debugging
func (d *Dealer) GoString() string {
	cards := 0
	if d.Hand != nil {
		cards = d.Hand.Len()
	}
	return fmt.Sprintf("<Dealer %q with %d cards>", d.Name, cards)
}
