package bot

import (
	"github.com/charmbracelet/log"

	"github.com/lox/blackjack/internal/game"
	"github.com/lox/blackjack/internal/score"
)

// MimicBot plays the dealer's rule: hit below 17, stand otherwise
type MimicBot struct {
	*FlatWager
	logger *log.Logger
}

// NewMimicBot creates a new MimicBot instance
func NewMimicBot(wager *FlatWager, logger *log.Logger) *MimicBot {
	return &MimicBot{FlatWager: wager, logger: logger}
}

func (m *MimicBot) Decide(player *game.Player, dealer *game.Dealer) (game.Action, error) {
	total, err := player.Hand.Score()
	if err != nil {
		return game.Stand, err
	}

	action := game.Stand
	if total < score.DealerStand {
		action = game.Hit
	}
	m.logger.Debug("Mimicking dealer", "player", player.Name, "total", total, "action", action)
	return action, nil
}
