package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/blackjack/internal/deck"
)

func TestPlayerBet(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		chips     int
		amount    int
		wantErr   error
		remaining int
	}{
		{"within balance", 100, 30, nil, 70},
		{"entire balance", 50, 50, nil, 0},
		{"more than balance", 20, 21, ErrInsufficientChips, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPlayer("Alice", tt.chips)
			h := NewHand()
			err := p.Bet(h, tt.amount)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				_, ok := h.Wager()
				assert.False(t, ok)
			} else {
				require.NoError(t, err)
				wager, _ := h.Wager()
				assert.Equal(t, tt.amount, wager)
			}
			assert.Equal(t, tt.remaining, p.Chips)
		})
	}
}

func TestPlayerBetTwiceOnSameHand(t *testing.T) {
	t.Parallel()

	p := NewPlayer("Alice", 100)
	h := NewHand()
	require.NoError(t, p.Bet(h, 10))
	require.ErrorIs(t, p.Bet(h, 10), ErrWagerAlreadySet)
	assert.Equal(t, 90, p.Chips)
}

func TestPlayerEarnAndBroke(t *testing.T) {
	t.Parallel()

	p := NewPlayer("Alice", 0)
	assert.True(t, p.IsBroke())
	p.Earn(15)
	assert.False(t, p.IsBroke())
	assert.Equal(t, 15, p.Chips)
	assert.Equal(t, "Alice", p.String())
	assert.Equal(t, `<Player "Alice" with 0 cards and 15 chips>`, p.GoString())
}

func TestDealerUpCard(t *testing.T) {
	t.Parallel()

	d := NewDealer("Bob")
	assert.Nil(t, d.UpCard())
	assert.Equal(t, "Bob", d.String())

	d.Hand = NewHand()
	up := deck.NewCard(deck.Hearts, deck.Queen)
	d.Hand.AddCard(up)
	d.Hand.AddCard(deck.NewCard(deck.Spades, deck.Two))
	assert.Same(t, up, d.UpCard())
	assert.Equal(t, `<Dealer "Bob" with 2 cards>`, d.GoString())

	d.DropHand()
	assert.Nil(t, d.Hand)
}
