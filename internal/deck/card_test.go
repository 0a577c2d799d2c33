package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCardString(t *testing.T) {
	card := NewCard(Hearts, Queen)

	t.Run("visible card shows its name", func(t *testing.T) {
		card.Visible = true
		assert.Equal(t, "Queen of Hearts", card.String())
		assert.Equal(t, "Q♥", card.Short())
		assert.Contains(t, card.GoString(), "face up")
	})

	t.Run("hidden card is masked", func(t *testing.T) {
		card.Visible = false
		assert.Equal(t, "<hidden>", card.String())
		assert.Equal(t, "??", card.Short())
		assert.Contains(t, card.GoString(), "face down")
		assert.Contains(t, card.GoString(), "Queen of Hearts")
	})
}

func TestRankString(t *testing.T) {
	assert.Equal(t, "Ace", Ace.String())
	assert.Equal(t, "7", Seven.String())
	assert.Equal(t, "10", Ten.String())
	assert.Equal(t, "King", King.String())
	assert.Equal(t, "?", Rank(0).String())
	assert.Equal(t, "?", Rank(14).String())
	assert.True(t, Ten.IsNumbered())
	assert.False(t, Ace.IsNumbered())
	assert.True(t, Jack.IsFace())
	assert.False(t, Ten.IsFace())
}

func TestParseCards(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Card
		wantErr  bool
	}{
		{
			name:  "blackjack",
			input: "AsKh",
			expected: []Card{
				{Suit: Spades, Rank: Ace},
				{Suit: Hearts, Rank: King},
			},
		},
		{
			name:  "space separated",
			input: "Td 9c 2s",
			expected: []Card{
				{Suit: Diamonds, Rank: Ten},
				{Suit: Clubs, Rank: Nine},
				{Suit: Spades, Rank: Two},
			},
		},
		{
			name:  "case insensitive",
			input: "aSqDjc",
			expected: []Card{
				{Suit: Spades, Rank: Ace},
				{Suit: Diamonds, Rank: Queen},
				{Suit: Clubs, Rank: Jack},
			},
		},
		{
			name:    "invalid rank",
			input:   "XsKs",
			wantErr: true,
		},
		{
			name:    "invalid suit",
			input:   "AsKx",
			wantErr: true,
		},
		{
			name:    "odd length",
			input:   "AsK",
			wantErr: true,
		},
		{
			name:     "empty string",
			input:    "",
			expected: []Card{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCards(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Len(t, got, len(tt.expected))
			for i := range got {
				assert.Equal(t, tt.expected[i].Suit, got[i].Suit)
				assert.Equal(t, tt.expected[i].Rank, got[i].Rank)
				assert.True(t, got[i].Visible)
			}
		})
	}
}

func TestMustParseCards(t *testing.T) {
	cards := MustParseCards("AsKs")
	require.Len(t, cards, 2)
	assert.Equal(t, Ace, cards[0].Rank)

	assert.Panics(t, func() { MustParseCards("invalid") })
}
