package bot

import (
	"context"
	"io"
	rand "math/rand/v2"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/game"
	"github.com/lox/blackjack/internal/randutil"
)

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
}

// seat builds a player holding cards and a dealer showing up
func seat(cards, up string) (*game.Player, *game.Dealer) {
	player := game.NewPlayer("bot", 100)
	player.Hand = game.NewHand()
	for _, c := range deck.MustParseCards(cards) {
		player.Hand.AddCard(c)
	}

	dealer := game.NewDealer("")
	dealer.Hand = game.NewHand()
	for _, c := range deck.MustParseCards(up) {
		dealer.Hand.AddCard(c)
	}
	return player, dealer
}

func TestNew(t *testing.T) {
	t.Parallel()

	for _, name := range Strategies() {
		t.Run(name, func(t *testing.T) {
			agent, err := New(name, 0, randutil.New(1), quietLogger())
			require.NoError(t, err)
			assert.NotNil(t, agent)
		})
	}

	_, err := New("card-counter", 0, randutil.New(1), quietLogger())
	require.ErrorIs(t, err, ErrUnknownStrategy)
	assert.Contains(t, err.Error(), "basic, mimic, random, stand")
}

func TestFlatWager(t *testing.T) {
	t.Parallel()

	w := newFlatWager(2)
	alice, carol := game.NewPlayer("Alice", 100), game.NewPlayer("Carol", 100)

	for range 2 {
		amount, err := w.Wager(alice, 10)
		require.NoError(t, err)
		assert.Equal(t, 10, amount)
	}
	amount, err := w.Wager(alice, 10)
	require.NoError(t, err)
	assert.Zero(t, amount, "budget spent, sits out")

	amount, err = w.Wager(carol, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, amount, "budgets are per seat")

	unlimited := newFlatWager(0)
	for range 100 {
		amount, err := unlimited.Wager(alice, 1)
		require.NoError(t, err)
		require.Equal(t, 1, amount)
	}
}

func TestMimicBot(t *testing.T) {
	t.Parallel()

	bot := NewMimicBot(newFlatWager(0), quietLogger())
	tests := []struct {
		cards    string
		expected game.Action
	}{
		{"Th 6s", game.Hit},
		{"Th 7s", game.Stand},
		{"As 5d", game.Hit},
		{"As 6d", game.Stand},
	}

	for _, tt := range tests {
		t.Run(tt.cards, func(t *testing.T) {
			player, dealer := seat(tt.cards, "Tc")
			action, err := bot.Decide(player, dealer)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, action)
		})
	}
}

func TestBasicBot(t *testing.T) {
	t.Parallel()

	bot := NewBasicBot(newFlatWager(0), quietLogger())
	tests := []struct {
		name     string
		cards    string
		up       string
		expected game.Action
	}{
		{"hard 11 always hits", "5h 6s", "6c", game.Hit},
		{"hard 12 stands against 4", "Th 2s", "4c", game.Stand},
		{"hard 12 hits against 3", "Th 2s", "3c", game.Hit},
		{"hard 16 stands against 6", "Th 6s", "6c", game.Stand},
		{"hard 16 hits against 7", "Th 6s", "7c", game.Hit},
		{"hard 16 hits against ace", "Th 6s", "Ac", game.Hit},
		{"hard 17 stands against ace", "Th 7s", "Ac", game.Stand},
		{"soft 17 hits", "As 6s", "6c", game.Hit},
		{"soft 18 stands against 8", "As 7s", "8c", game.Stand},
		{"soft 18 hits against 9", "As 7s", "9c", game.Hit},
		{"soft 18 hits against ace", "As 7s", "Ad", game.Hit},
		{"soft 19 stands", "As 8s", "Tc", game.Stand},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			player, dealer := seat(tt.cards, tt.up)
			action, err := bot.Decide(player, dealer)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, action)
		})
	}
}

func TestRandBotNeverHitsTwentyOne(t *testing.T) {
	t.Parallel()

	bot := NewRandBot(newFlatWager(0), rand.New(rand.NewPCG(3, 4)), quietLogger())
	player, dealer := seat("As Kh", "9c")

	for range 50 {
		action, err := bot.Decide(player, dealer)
		require.NoError(t, err)
		require.Equal(t, game.Stand, action)
	}

	var hits int
	player, dealer = seat("Th 2s", "9c")
	for range 200 {
		action, err := bot.Decide(player, dealer)
		require.NoError(t, err)
		if action == game.Hit {
			hits++
		}
	}
	assert.Greater(t, hits, 50)
	assert.Less(t, hits, 150)
}

func TestStandBotPlaysFullGame(t *testing.T) {
	t.Parallel()

	ruleset, err := game.LookupRuleset("american")
	require.NoError(t, err)

	agent, err := New(StrategyStand, 5, randutil.New(9), quietLogger())
	require.NoError(t, err)

	table, err := game.NewTableForRuleset(ruleset, randutil.New(9), game.TableConfig{
		PlayerNames:   []string{"Alice", "Carol"},
		StartingChips: 1000,
	})
	require.NoError(t, err)

	engine := game.NewEngine(ruleset, agent, quietLogger())
	require.NoError(t, engine.Run(context.Background(), table))
	assert.Equal(t, 6, engine.Rounds(), "five played rounds then one where everybody sits out")
}
