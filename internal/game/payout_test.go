package game

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lox/blackjack/internal/score"
)

func TestPayout(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		outcome  score.Outcome
		wager    int
		ratio    Ratio
		expected int
	}{
		{"bust", score.Bust, 5, Ratio{3, 2}, 0},
		{"lose", score.Lose, 5, Ratio{3, 2}, 0},
		{"push", score.Push, 5, Ratio{3, 2}, 5},
		{"win", score.Win, 5, Ratio{3, 2}, 10},
		{"blackjack three to two truncates", score.Blackjack, 5, Ratio{3, 2}, 12},
		{"blackjack two to one", score.Blackjack, 5, Ratio{2, 1}, 15},
		{"blackjack six to five", score.Blackjack, 10, Ratio{6, 5}, 22},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Payout(tt.outcome, tt.wager, tt.ratio))
		})
	}
}
