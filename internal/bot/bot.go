// Package bot provides automated agents that play blackjack without a
// human at the keyboard. Every bot bets the table minimum; they differ only
// in how they play their hand.
package bot

import (
	"errors"
	"fmt"
	rand "math/rand/v2"
	"slices"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/game"
	"github.com/lox/blackjack/internal/score"
)

// ErrUnknownStrategy is returned by New for an unregistered strategy name
var ErrUnknownStrategy = errors.New("unknown bot strategy")

// Strategy names accepted by New
const (
	StrategyStand  = "stand"
	StrategyMimic  = "mimic"
	StrategyBasic  = "basic"
	StrategyRandom = "random"
)

// Strategies returns every strategy name, sorted
func Strategies() []string {
	names := []string{StrategyStand, StrategyMimic, StrategyBasic, StrategyRandom}
	slices.Sort(names)
	return names
}

// New creates the bot for strategy. Each seat it plays for wagers the table
// minimum for rounds rounds and then sits out; zero rounds means no limit.
func New(strategy string, rounds int, rng *rand.Rand, logger *log.Logger) (game.Agent, error) {
	logger = logger.WithPrefix(strategy + "-bot")
	wager := newFlatWager(rounds)

	switch strategy {
	case StrategyStand:
		return NewStandBot(wager, logger), nil
	case StrategyMimic:
		return NewMimicBot(wager, logger), nil
	case StrategyBasic:
		return NewBasicBot(wager, logger), nil
	case StrategyRandom:
		return NewRandBot(wager, rng, logger), nil
	default:
		return nil, fmt.Errorf("%w: %q (available: %s)", ErrUnknownStrategy, strategy, strings.Join(Strategies(), ", "))
	}
}

// FlatWager bets the table minimum on behalf of every seat, for a limited
// number of rounds per seat
type FlatWager struct {
	rounds int
	placed map[string]int
}

func newFlatWager(rounds int) *FlatWager {
	return &FlatWager{rounds: rounds, placed: make(map[string]int)}
}

// Wager implements the wager half of game.Agent
func (w *FlatWager) Wager(player *game.Player, minimum int) (int, error) {
	if w.rounds > 0 && w.placed[player.Name] >= w.rounds {
		return 0, nil
	}
	w.placed[player.Name]++
	return minimum, nil
}

// handState is what a bot knows when deciding
type handState struct {
	total int
	soft  bool
	// upCard is the dealer's visible card value, aces counted as 11
	upCard int
}

func readHand(player *game.Player, dealer *game.Dealer) (handState, error) {
	total, err := player.Hand.Score()
	if err != nil {
		return handState{}, err
	}
	soft, err := score.IsSoft(player.Hand.Cards())
	if err != nil {
		return handState{}, err
	}
	up, err := upCardValue(dealer.UpCard())
	if err != nil {
		return handState{}, err
	}
	return handState{total: total, soft: soft, upCard: up}, nil
}

func upCardValue(card *deck.Card) (int, error) {
	if card == nil {
		return 0, nil
	}
	values, err := score.Values(card)
	if err != nil {
		return 0, err
	}
	return slices.Max(values), nil
}
