package simulator

import (
	"context"
	"fmt"
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/blackjack/internal/bot"
	"github.com/lox/blackjack/internal/game"
	"github.com/lox/blackjack/internal/score"
)

func testConfig(t *testing.T, ruleset string) Config {
	t.Helper()
	rs, err := game.LookupRuleset(ruleset)
	require.NoError(t, err)
	return Config{
		Ruleset:  rs,
		Strategy: bot.StrategyBasic,
		Games:    8,
		Rounds:   20,
		Seats:    1,
		Seed:     42,
		Workers:  4,
		Logger:   log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel}),
	}
}

func TestSimulatorRun(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t, "european")
	cfg.Seats = 3
	cfg.StartingChips = 1000

	result, err := New(cfg).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(42), result.Seed)
	assert.Equal(t, 8, result.Games)
	assert.Zero(t, result.Broke)
	// 20 wagered rounds plus the round where every seat sits out
	assert.Equal(t, 8*21, result.Rounds)
	assert.Equal(t, 8*20*3, result.Stats.Rounds)
	assert.Equal(t, 8*20*3*10, result.Stats.Wagered)

	total := 0
	for o := score.Bust; o <= score.Blackjack; o++ {
		total += result.Stats.Outcomes[o]
	}
	assert.Equal(t, result.Stats.Rounds, total)

	low, high := result.Stats.ConfidenceInterval95()
	assert.LessOrEqual(t, low, result.Stats.Mean())
	assert.GreaterOrEqual(t, high, result.Stats.Mean())
}

func TestSimulatorDeterministic(t *testing.T) {
	t.Parallel()

	for _, strategy := range bot.Strategies() {
		t.Run(strategy, func(t *testing.T) {
			t.Parallel()

			cfg := testConfig(t, "insight")
			cfg.Strategy = strategy

			cfg.Workers = 1
			serial, err := New(cfg).Run(context.Background())
			require.NoError(t, err)

			cfg.Workers = 8
			parallel, err := New(cfg).Run(context.Background())
			require.NoError(t, err)

			assert.Equal(t, serial.Stats.Values, parallel.Stats.Values)
			assert.Equal(t, serial.Stats.Outcomes, parallel.Stats.Outcomes)
			assert.Equal(t, serial.Rounds, parallel.Rounds)
		})
	}
}

func TestSimulatorBrokeGames(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t, "basic")
	cfg.Strategy = bot.StrategyStand
	cfg.StartingChips = 1
	cfg.Rounds = 1000

	result, err := New(cfg).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, cfg.Games, result.Broke, "one chip never lasts a thousand rounds")
}

func TestSimulatorValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		modify func(*Config)
		err    error
	}{
		{"no games", func(c *Config) { c.Games = 0 }, nil},
		{"no rounds", func(c *Config) { c.Rounds = 0 }, nil},
		{"no seats", func(c *Config) { c.Seats = 0 }, nil},
		{"too many seats", func(c *Config) { c.Seats = 2 }, game.ErrTooManyPlayers},
		{"unknown strategy", func(c *Config) { c.Strategy = "martingale" }, bot.ErrUnknownStrategy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig(t, "insight")
			tt.modify(&cfg)

			_, err := New(cfg).Run(context.Background())
			require.Error(t, err)
			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)
			}
		})
	}
}

func TestSimulatorCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(testConfig(t, "insight")).Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestSimulatorSucceedsAfterAllGamesFinish(t *testing.T) {
	t.Parallel()

	for _, workers := range []int{1, 3} {
		t.Run(fmt.Sprintf("workers=%d", workers), func(t *testing.T) {
			cfg := testConfig(t, "insight")
			cfg.Games = 3
			cfg.Rounds = 2
			cfg.Workers = workers

			ctx := context.Background()
			result, err := New(cfg).Run(ctx)
			require.NoError(t, err)
			require.NotNil(t, result)
			assert.NoError(t, ctx.Err())
			assert.Equal(t, 3*2, result.Stats.Rounds)
		})
	}
}
