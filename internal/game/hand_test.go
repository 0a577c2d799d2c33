package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/score"
)

func handOf(cards string) *Hand {
	h := NewHand()
	for _, c := range deck.MustParseCards(cards) {
		h.AddCard(c)
	}
	return h
}

func TestHandWager(t *testing.T) {
	t.Parallel()

	h := NewHand()
	_, ok := h.Wager()
	assert.False(t, ok, "new hand has no wager")

	require.NoError(t, h.SetWager(25))
	amount, ok := h.Wager()
	assert.True(t, ok)
	assert.Equal(t, 25, amount)

	err := h.SetWager(50)
	require.ErrorIs(t, err, ErrWagerAlreadySet)
	amount, _ = h.Wager()
	assert.Equal(t, 25, amount, "second wager must not replace the first")
}

func TestHandScore(t *testing.T) {
	t.Parallel()

	tests := []struct {
		cards    string
		expected int
		busted   bool
	}{
		{"As Kh", 21, false},
		{"As Ah", 12, false},
		{"Ts 6h", 16, false},
		{"Ts 6h Kd", 26, true},
		{"As 5h Kd", 16, false},
	}

	for _, tt := range tests {
		t.Run(tt.cards, func(t *testing.T) {
			h := handOf(tt.cards)
			got, err := h.Score()
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)

			busted, err := h.IsBusted()
			require.NoError(t, err)
			assert.Equal(t, tt.busted, busted)
		})
	}

	_, err := NewHand().Score()
	require.ErrorIs(t, err, score.ErrEmptyHand)
}

func TestHandVisibleScore(t *testing.T) {
	t.Parallel()

	h := handOf("9s Ah")
	h.Cards()[1].Visible = false

	s, err := h.VisibleScore()
	require.NoError(t, err)
	assert.Equal(t, 9, s)
	assert.Equal(t, "[9 of Spades <hidden>]", h.String())

	full, err := h.Score()
	require.NoError(t, err)
	assert.Equal(t, 20, full, "the full score counts face down cards")

	h.RevealAll()
	s, err = h.VisibleScore()
	require.NoError(t, err)
	assert.Equal(t, 20, s)

	hidden := handOf("Kd")
	hidden.Cards()[0].Visible = false
	s, err = hidden.VisibleScore()
	require.NoError(t, err)
	assert.Zero(t, s)
}

func TestHandGoString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "<Hand of 2 cards>", handOf("9s Ah").GoString())
}
