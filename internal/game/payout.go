package game

import "github.com/lox/blackjack/internal/score"

// Payout returns the chips handed back to a player for a settled wager,
// the original wager included. A push returns the wager, a win pays even
// money and a blackjack pays the table's blackjack ratio, truncated to whole
// chips. Busts and losses return nothing.
func Payout(outcome score.Outcome, wager int, blackjack Ratio) int {
	switch outcome {
	case score.Push:
		return wager
	case score.Win:
		return 2 * wager
	case score.Blackjack:
		return wager + blackjack.Apply(wager)
	default:
		return 0
	}
}
