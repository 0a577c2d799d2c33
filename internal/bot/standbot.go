package bot

import (
	"github.com/charmbracelet/log"

	"github.com/lox/blackjack/internal/game"
)

// StandBot never takes a card
type StandBot struct {
	*FlatWager
	logger *log.Logger
}

// NewStandBot creates a new StandBot instance
func NewStandBot(wager *FlatWager, logger *log.Logger) *StandBot {
	return &StandBot{FlatWager: wager, logger: logger}
}

func (s *StandBot) Decide(player *game.Player, dealer *game.Dealer) (game.Action, error) {
	s.logger.Debug("Standing", "player", player.Name)
	return game.Stand, nil
}
