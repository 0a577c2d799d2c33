package deck

import (
	"errors"
	"fmt"
	rand "math/rand/v2"
)

// ErrShoeExhausted is returned when drawing from a shoe with no cards left
var ErrShoeExhausted = errors.New("shoe exhausted")

// Shoe deals cards from one or more decks. Cards are consumed through a
// cursor: drawn cards stay in the backing slice behind the cursor and only
// rejoin the pool on Reload.
type Shoe struct {
	cards       []*Card
	next        int
	rng         *rand.Rand
	autoShuffle bool
}

// NewShoe takes ownership of cards and turns every one of them face down
func NewShoe(cards []*Card, rng *rand.Rand) *Shoe {
	if rng == nil {
		panic("rng is required for shoe creation")
	}
	s := &Shoe{cards: cards, rng: rng}
	s.hideAll()
	return s
}

// NewShufflingShoe creates a shoe that behaves like a continuous shuffling
// machine: the remaining cards are shuffled before every draw.
func NewShufflingShoe(cards []*Card, rng *rand.Rand) *Shoe {
	s := NewShoe(cards, rng)
	s.autoShuffle = true
	return s
}

// AutoShuffle reports whether the shoe shuffles before every draw
func (s *Shoe) AutoShuffle() bool {
	return s.autoShuffle
}

// Draw deals the next card with the requested visibility
func (s *Shoe) Draw(visible bool) (*Card, error) {
	if s.next >= len(s.cards) {
		return nil, ErrShoeExhausted
	}
	if s.autoShuffle {
		s.Shuffle()
	}
	card := s.cards[s.next]
	s.next++
	card.Visible = visible
	return card, nil
}

// MustDraw draws a card and panics if the shoe is exhausted
func (s *Shoe) MustDraw(visible bool) *Card {
	card, err := s.Draw(visible)
	if err != nil {
		panic(err)
	}
	return card
}

// Shuffle permutes the cards that have not been drawn yet. Drawn cards are
// left where they are.
func (s *Shoe) Shuffle() {
	remaining := s.cards[s.next:]
	s.rng.Shuffle(len(remaining), func(i, j int) {
		remaining[i], remaining[j] = remaining[j], remaining[i]
	})
}

// Reload returns every card to the pool without reordering them
func (s *Shoe) Reload() {
	s.next = 0
	s.hideAll()
}

// Remaining returns the number of cards left to draw
func (s *Shoe) Remaining() int {
	return len(s.cards) - s.next
}

// Size returns the total number of cards owned by the shoe
func (s *Shoe) Size() int {
	return len(s.cards)
}

// Undrawn returns the cards still in the pool, in draw order
func (s *Shoe) Undrawn() []*Card {
	out := make([]*Card, s.Remaining())
	copy(out, s.cards[s.next:])
	return out
}

// GoString describes the shoe for debugging
func (s *Shoe) GoString() string {
	return fmt.Sprintf("<Shoe of %d cards>", s.Remaining())
}

func (s *Shoe) hideAll() {
	for _, c := range s.cards {
		c.Visible = false
	}
}
