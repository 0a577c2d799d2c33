package game

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/google/uuid"

	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/score"
)

// Engine runs rounds of blackjack at a table. One round goes through
// wagers, the initial deal, each player's turn, the dealer's turn, payouts
// and cleanup; Run repeats rounds until nobody can or wants to play.
type Engine struct {
	ruleset   Ruleset
	agent     Agent
	logger    *log.Logger
	bus       EventBus
	clock     quartz.Clock
	pause     time.Duration
	sessionID string
	round     int
}

// EngineOption configures an Engine during creation
type EngineOption func(*Engine)

// WithEventBus publishes events on an existing bus
func WithEventBus(bus EventBus) EngineOption {
	return func(e *Engine) { e.bus = bus }
}

// WithClock replaces the wall clock, mainly for tests
func WithClock(clock quartz.Clock) EngineOption {
	return func(e *Engine) { e.clock = clock }
}

// WithDealerPause waits d before each card the dealer draws for itself
func WithDealerPause(d time.Duration) EngineOption {
	return func(e *Engine) { e.pause = d }
}

// WithSessionID sets the identifier stamped on events and log lines
func WithSessionID(id string) EngineOption {
	return func(e *Engine) { e.sessionID = id }
}

// NewEngine creates an engine for the given ruleset. The agent is asked for
// every wager and playing decision.
func NewEngine(ruleset Ruleset, agent Agent, logger *log.Logger, opts ...EngineOption) *Engine {
	e := &Engine{
		ruleset: ruleset,
		agent:   agent,
		logger:  logger,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.bus == nil {
		e.bus = NewEventBus()
	}
	if e.clock == nil {
		e.clock = quartz.NewReal()
	}
	if e.sessionID == "" {
		e.sessionID = uuid.NewString()
	}
	e.logger = e.logger.With("session", e.sessionID)
	return e
}

// EventBus returns the bus the engine publishes on
func (e *Engine) EventBus() EventBus {
	return e.bus
}

// SessionID returns the identifier of this game
func (e *Engine) SessionID() string {
	return e.sessionID
}

// Rounds returns how many rounds have been started
func (e *Engine) Rounds() int {
	return e.round
}

// Run plays rounds until every player is broke, nobody wagers, or ctx is
// cancelled. Errors returned are fatal: a broken shoe, an invalid card or
// an agent that can no longer answer.
func (e *Engine) Run(ctx context.Context, table *Table) error {
	e.logger.Info("Starting game", "ruleset", e.ruleset.Name, "players", len(table.Players))

	for {
		if err := ctx.Err(); err != nil {
			e.halt(table, HaltCancelled)
			return err
		}
		if !table.AnyChips() {
			e.halt(table, HaltEveryoneBroke)
			return nil
		}

		played, err := e.PlayRound(ctx, table)
		if err != nil {
			return fmt.Errorf("round %d: %w", e.round, err)
		}
		if played == 0 {
			e.halt(table, HaltNoWagers)
			return nil
		}
	}
}

// PlayRound plays a single full round and returns the number of players
// who took part. Zero means nobody wagered and nothing was dealt.
func (e *Engine) PlayRound(ctx context.Context, table *Table) (int, error) {
	e.round++
	start := e.clock.Now()
	logger := e.logger.With("round", e.round)
	logger.Info("Starting new round")
	e.bus.Publish(RoundStartEvent{EventMeta: e.meta(), Players: table.Players})

	active, err := e.collectWagers(table)
	if err != nil {
		e.abandonRound(table, active)
		return 0, err
	}
	if len(active) == 0 {
		logger.Info("Nobody wagered")
		return 0, nil
	}
	table.ActivePlayers = active

	if err := e.playHands(ctx, table); err != nil {
		e.abandonRound(table, active)
		return 0, err
	}
	e.cleanup(table)

	elapsed := e.clock.Since(start)
	logger.Info("Round complete", "players", len(active), "duration", elapsed)
	e.bus.Publish(RoundEndEvent{EventMeta: e.meta(), Players: len(active), Duration: elapsed})
	return len(active), nil
}

// playHands deals, plays every turn and settles the wagers
func (e *Engine) playHands(ctx context.Context, table *Table) error {
	if err := e.dealInitialCards(table); err != nil {
		return err
	}
	for _, player := range table.ActivePlayers {
		if err := e.playPlayerTurn(table, player); err != nil {
			return err
		}
	}
	if err := e.playDealerTurn(ctx, table); err != nil {
		return err
	}
	return e.payGains(table)
}

// abandonRound returns every wager that was not settled and clears the
// table after a round fails part way through.
func (e *Engine) abandonRound(table *Table, players []*Player) {
	for _, player := range players {
		if player.Hand == nil || player.Hand.settled {
			continue
		}
		if wager, ok := player.Hand.Wager(); ok {
			player.Earn(wager)
			e.logger.Info("Returned wager of abandoned round", "player", player.Name, "wager", wager, "chips", player.Chips)
		}
	}
	table.ActivePlayers = players
	e.cleanup(table)
}

// collectWagers asks every registered player for a wager and returns the
// players taking part in the round, in seating order. On error it still
// returns the players whose wagers were already taken.
func (e *Engine) collectWagers(table *Table) ([]*Player, error) {
	minimum := e.ruleset.MinimumWager
	var active []*Player

	for _, player := range table.Players {
		if player.Chips < minimum {
			e.logger.Debug("Seating out player below table minimum", "player", player.Name, "chips", player.Chips)
			e.bus.Publish(SitOutEvent{EventMeta: e.meta(), Player: player, Forced: true})
			continue
		}

		for {
			amount, err := e.agent.Wager(player, minimum)
			if err != nil {
				return active, fmt.Errorf("collecting wager from %s: %w", player.Name, err)
			}
			if amount == 0 {
				e.bus.Publish(SitOutEvent{EventMeta: e.meta(), Player: player})
				break
			}
			if amount < minimum {
				e.bus.Publish(WagerRejectedEvent{EventMeta: e.meta(), Player: player, Amount: amount, Minimum: minimum, Reason: BelowMinimum})
				continue
			}

			hand := NewHand()
			if err := player.Bet(hand, amount); err != nil {
				if errors.Is(err, ErrInsufficientChips) {
					e.bus.Publish(WagerRejectedEvent{EventMeta: e.meta(), Player: player, Amount: amount, Minimum: minimum, Reason: InsufficientChips})
					continue
				}
				return active, err
			}
			player.Hand = hand
			active = append(active, player)
			e.logger.Debug("Wager accepted", "player", player.Name, "amount", amount)
			e.bus.Publish(WagerEvent{EventMeta: e.meta(), Player: player, Amount: amount})
			break
		}
	}

	if len(active) > 0 {
		table.Dealer.Hand = NewHand()
	}
	return active, nil
}

// dealInitialCards deals one card to each player, one to the dealer, then a
// second to each player and, with a hole card, a face-down second card to
// the dealer.
func (e *Engine) dealInitialCards(table *Table) error {
	if !e.ruleset.AutoShuffle {
		table.Shoe.Shuffle()
	}

	for _, player := range table.ActivePlayers {
		if err := e.dealTo(table, player, true); err != nil {
			return err
		}
	}
	if err := e.dealTo(table, nil, true); err != nil {
		return err
	}
	for _, player := range table.ActivePlayers {
		if err := e.dealTo(table, player, true); err != nil {
			return err
		}
	}

	if e.ruleset.DealerHoleCard {
		if err := e.dealTo(table, nil, false); err != nil {
			return err
		}
		if e.ruleset.RevealBlackjack {
			dealerScore, err := table.Dealer.Hand.Score()
			if err != nil {
				return err
			}
			if dealerScore == score.Target {
				table.Dealer.Hand.RevealAll()
				e.logger.Debug("Dealer reveals blackjack")
				e.bus.Publish(RevealEvent{EventMeta: e.meta(), Dealer: table.Dealer, Score: dealerScore, Early: true})
			}
		}
	}

	e.bus.Publish(DealCompleteEvent{EventMeta: e.meta(), Players: table.ActivePlayers, Dealer: table.Dealer})
	return nil
}

// playPlayerTurn lets a player hit until they stand or bust
func (e *Engine) playPlayerTurn(table *Table, player *Player) error {
	for {
		current, err := player.Hand.Score()
		if err != nil {
			return err
		}
		if current > score.Target {
			e.logger.Debug("Player busts", "player", player.Name, "score", current)
			e.bus.Publish(BustEvent{EventMeta: e.meta(), Player: player, Score: current})
			return nil
		}

		action, err := e.agent.Decide(player, table.Dealer)
		if err != nil {
			return fmt.Errorf("asking %s to act: %w", player.Name, err)
		}

		switch action {
		case Hit:
			card, err := e.draw(table, true)
			if err != nil {
				return err
			}
			player.Hand.AddCard(card)
			after, err := player.Hand.Score()
			if err != nil {
				return err
			}
			e.logger.Debug("Player hits", "player", player.Name, "card", card.Short(), "score", after)
			e.bus.Publish(PlayerActionEvent{EventMeta: e.meta(), Player: player, Action: Hit, Card: card, Score: after})
		case Stand:
			e.logger.Debug("Player stands", "player", player.Name, "score", current)
			e.bus.Publish(PlayerActionEvent{EventMeta: e.meta(), Player: player, Action: Stand, Score: current})
			return nil
		default:
			return fmt.Errorf("%s chose unknown action %d", player.Name, action)
		}
	}
}

// playDealerTurn completes the dealer's hand: draw to 17, stand on 17 or
// more.
func (e *Engine) playDealerTurn(ctx context.Context, table *Table) error {
	dealer := table.Dealer
	if !e.ruleset.DealerHoleCard {
		if err := e.dealTo(table, nil, true); err != nil {
			return err
		}
	}

	dealer.Hand.RevealAll()
	revealed, err := dealer.Hand.Score()
	if err != nil {
		return err
	}
	e.bus.Publish(RevealEvent{EventMeta: e.meta(), Dealer: dealer, Score: revealed})

	for {
		current, err := dealer.Hand.Score()
		if err != nil {
			return err
		}
		if current > score.Target {
			e.logger.Debug("Dealer busts", "score", current)
			e.bus.Publish(BustEvent{EventMeta: e.meta(), Score: current})
			return nil
		}
		if current >= score.DealerStand {
			e.logger.Debug("Dealer stands", "score", current)
			e.bus.Publish(DealerStandEvent{EventMeta: e.meta(), Dealer: dealer, Score: current})
			return nil
		}

		if err := e.pauseDealer(ctx); err != nil {
			return err
		}
		if err := e.dealTo(table, nil, true); err != nil {
			return err
		}
	}
}

// payGains settles every active player's hand against the dealer's
func (e *Engine) payGains(table *Table) error {
	dealerHand := table.Dealer.Hand
	dealerScore, err := dealerHand.Score()
	if err != nil {
		return err
	}

	for _, player := range table.ActivePlayers {
		outcome, _, err := score.Compare(player.Hand.Cards(), dealerHand.Cards())
		if err != nil {
			return fmt.Errorf("settling %s: %w", player.Name, err)
		}
		playerScore, err := player.Hand.Score()
		if err != nil {
			return err
		}

		wager, _ := player.Hand.Wager()
		credited := Payout(outcome, wager, e.ruleset.BlackjackPayout)
		player.Earn(credited)
		player.Hand.settled = true

		e.logger.Info("Settled hand",
			"player", player.Name,
			"outcome", outcome,
			"score", playerScore,
			"dealer", dealerScore,
			"wager", wager,
			"credited", credited,
			"chips", player.Chips)
		e.bus.Publish(PayoutEvent{
			EventMeta:   e.meta(),
			Player:      player,
			Outcome:     outcome,
			Wager:       wager,
			Credited:    credited,
			Score:       playerScore,
			Cards:       player.Hand.Len(),
			DealerScore: dealerScore,
		})
	}
	return nil
}

// cleanup drops every hand and refills the shoe for the next round
func (e *Engine) cleanup(table *Table) {
	for _, player := range table.ActivePlayers {
		player.DropHand()
	}
	table.Dealer.DropHand()
	table.ActivePlayers = nil
	table.Shoe.Reload()
}

// dealTo draws a card and gives it to player, or to the dealer when player
// is nil
func (e *Engine) dealTo(table *Table, player *Player, visible bool) error {
	card, err := e.draw(table, visible)
	if err != nil {
		return err
	}

	hand := table.Dealer.Hand
	if player != nil {
		hand = player.Hand
	}
	hand.AddCard(card)
	e.bus.Publish(CardDealtEvent{EventMeta: e.meta(), Player: player, Card: card, Hand: hand})
	return nil
}

func (e *Engine) draw(table *Table, visible bool) (*deck.Card, error) {
	card, err := table.Shoe.Draw(visible)
	if err != nil {
		return nil, fmt.Errorf("drawing card with %d of %d left: %w", table.Shoe.Remaining(), table.Shoe.Size(), err)
	}
	return card, nil
}

func (e *Engine) pauseDealer(ctx context.Context) error {
	if e.pause <= 0 {
		return nil
	}
	timer := e.clock.NewTimer(e.pause, "engine", "dealer")
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (e *Engine) halt(table *Table, reason HaltReason) {
	e.logger.Info("Game over", "reason", reason, "rounds", e.round, "chips", table.TotalChips())
	e.bus.Publish(HaltEvent{EventMeta: e.meta(), Reason: reason, Players: table.Players})
}

func (e *Engine) meta() EventMeta {
	return EventMeta{SessionID: e.sessionID, Round: e.round, At: e.clock.Now()}
}
