package game

import (
	rand "math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/blackjack/internal/deck"
)

func TestNewTableForRuleset(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(42, 0))

	t.Run("builds the shoe the ruleset asks for", func(t *testing.T) {
		rs, err := LookupRuleset("american")
		require.NoError(t, err)

		table, err := NewTableForRuleset(rs, rng, TableConfig{
			PlayerNames: []string{"Alice", "Carol"},
			DealerName:  "Bob",
		})
		require.NoError(t, err)
		assert.Equal(t, 8*deck.Size, table.Shoe.Size())
		assert.True(t, table.Shoe.AutoShuffle())
		assert.Equal(t, "Bob", table.Dealer.Name)
		require.Len(t, table.Players, 2)
		assert.Equal(t, DefaultStartingChips, table.Players[0].Chips)
		assert.Equal(t, 2*DefaultStartingChips, table.TotalChips())
	})

	t.Run("custom balance", func(t *testing.T) {
		rs, err := LookupRuleset("european")
		require.NoError(t, err)

		table, err := NewTableForRuleset(rs, rng, TableConfig{PlayerNames: []string{"Alice"}, StartingChips: 500})
		require.NoError(t, err)
		assert.False(t, table.Shoe.AutoShuffle())
		assert.Equal(t, 500, table.PlayerByName("Alice").Chips)
		assert.Nil(t, table.PlayerByName("Nobody"))
	})

	t.Run("too many players", func(t *testing.T) {
		rs, err := LookupRuleset("insight")
		require.NoError(t, err)

		_, err = NewTableForRuleset(rs, rng, TableConfig{PlayerNames: []string{"Alice", "Carol"}})
		require.ErrorIs(t, err, ErrTooManyPlayers)
	})

	t.Run("no players", func(t *testing.T) {
		rs, err := LookupRuleset("insight")
		require.NoError(t, err)

		_, err = NewTableForRuleset(rs, rng, TableConfig{})
		require.Error(t, err)
	})
}

func TestTableAnyChips(t *testing.T) {
	t.Parallel()

	table := newStackedTable("As", 0, "Alice", "Carol")
	assert.False(t, table.AnyChips())

	table.Players[1].Earn(1)
	assert.True(t, table.AnyChips())
	assert.Equal(t, 1, table.TotalChips())
}
