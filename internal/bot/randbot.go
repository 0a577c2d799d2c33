package bot

import (
	rand "math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/lox/blackjack/internal/game"
	"github.com/lox/blackjack/internal/score"
)

// RandBot hits or stands at random, but never hits a 21
type RandBot struct {
	*FlatWager
	rng    *rand.Rand
	logger *log.Logger
}

// NewRandBot creates a new RandBot instance
func NewRandBot(wager *FlatWager, rng *rand.Rand, logger *log.Logger) *RandBot {
	return &RandBot{FlatWager: wager, rng: rng, logger: logger}
}

func (r *RandBot) Decide(player *game.Player, dealer *game.Dealer) (game.Action, error) {
	total, err := player.Hand.Score()
	if err != nil {
		return game.Stand, err
	}
	if total >= score.Target {
		return game.Stand, nil
	}

	action := game.Stand
	if r.rng.IntN(2) == 0 {
		action = game.Hit
	}
	r.logger.Debug("Random choice", "player", player.Name, "total", total, "action", action)
	return action, nil
}
