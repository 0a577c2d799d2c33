package bot

import (
	"github.com/charmbracelet/log"

	"github.com/lox/blackjack/internal/game"
)

// BasicBot follows the hit/stand part of basic strategy. Without doubling
// or splitting, the only inputs are the hand total, whether it is soft and
// the dealer's up card.
type BasicBot struct {
	*FlatWager
	logger *log.Logger
}

// NewBasicBot creates a new BasicBot instance
func NewBasicBot(wager *FlatWager, logger *log.Logger) *BasicBot {
	return &BasicBot{FlatWager: wager, logger: logger}
}

func (b *BasicBot) Decide(player *game.Player, dealer *game.Dealer) (game.Action, error) {
	state, err := readHand(player, dealer)
	if err != nil {
		return game.Stand, err
	}

	action := basicStrategy(state)
	b.logger.Debug("Basic strategy",
		"player", player.Name,
		"total", state.total,
		"soft", state.soft,
		"upCard", state.upCard,
		"action", action)
	return action, nil
}

func basicStrategy(s handState) game.Action {
	if s.soft {
		switch {
		case s.total <= 17:
			return game.Hit
		case s.total == 18 && s.upCard >= 9:
			return game.Hit
		default:
			return game.Stand
		}
	}

	switch {
	case s.total <= 11:
		return game.Hit
	case s.total == 12:
		if s.upCard >= 4 && s.upCard <= 6 {
			return game.Stand
		}
		return game.Hit
	case s.total <= 16:
		if s.upCard >= 2 && s.upCard <= 6 {
			return game.Stand
		}
		return game.Hit
	default:
		return game.Stand
	}
}
