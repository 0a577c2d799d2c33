package game

import (
	"errors"
	"fmt"

	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/score"
)

// ErrWagerAlreadySet is returned when a second wager is placed on a hand
var ErrWagerAlreadySet = errors.New("wager already placed on this hand")

// Hand is an ordered set of cards held for one round, plus the wager riding
// on it. Card order matters: blackjack only counts on the first two cards.
type Hand struct {
	cards   []*deck.Card
	wager   int
	wagered bool
	settled bool // paid out, so an aborted round must not refund it
}

// NewHand creates an empty hand with no wager
func NewHand() *Hand {
	return &Hand{}
}

// AddCard appends a card to the hand, taking ownership of it
func (h *Hand) AddCard(card *deck.Card) {
	h.cards = append(h.cards, card)
}

// Cards returns the cards held, in the order they were received
func (h *Hand) Cards() []*deck.Card {
	return h.cards
}

// Len returns the number of cards held
func (h *Hand) Len() int {
	return len(h.cards)
}

// SetWager records the wager for this round
func (h *Hand) SetWager(amount int) error {
	if h.wagered {
		return ErrWagerAlreadySet
	}
	h.wager = amount
	h.wagered = true
	return nil
}

// Wager returns the wager and whether one has been placed
func (h *Hand) Wager() (int, bool) {
	return h.wager, h.wagered
}

// RevealAll turns every card face up
func (h *Hand) RevealAll() {
	for _, c := range h.cards {
		c.Visible = true
	}
}

// Score returns the best score of the hand
func (h *Hand) Score() (int, error) {
	return score.Best(h.cards)
}

// VisibleScore scores only the face-up cards. It returns 0 when nothing is
// showing.
func (h *Hand) VisibleScore() (int, error) {
	var showing []*deck.Card
	for _, c := range h.cards {
		if c.Visible {
			showing = append(showing, c)
		}
	}
	if len(showing) == 0 {
		return 0, nil
	}
	return score.Best(showing)
}

// IsBusted reports whether the best score is above the target
func (h *Hand) IsBusted() (bool, error) {
	s, err := h.Score()
	if err != nil {
		return false, err
	}
	return s > score.Target, nil
}

// String lists the cards as they would be shown at the table
func (h *Hand) String() string {
	return fmt.Sprintf("%v", h.cards)
}

// GoString describes the hand for debugging
func (h *Hand) GoString() string {
	return fmt.Sprintf("<Hand of %d cards>", len(h.cards))
}
