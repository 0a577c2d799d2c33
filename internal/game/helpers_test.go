package game

import (
	"io"
	rand "math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/lox/blackjack/internal/deck"
)

// quietLogger returns a logger that discards everything below errors
func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
}

// stackedRuleset is a ruleset that never asks the engine to shuffle, so a
// stacked shoe deals in the order it was built.
func stackedRuleset(holeCard bool) Ruleset {
	return Ruleset{
		Name:            "stacked",
		MaxPlayers:      7,
		Decks:           1,
		AutoShuffle:     true,
		MinimumWager:    1,
		DealerHoleCard:  holeCard,
		RevealBlackjack: holeCard,
		BlackjackPayout: Ratio{3, 2},
	}
}

// newStackedTable seats players with the given balance around a shoe that
// deals cards in the order of the card string
func newStackedTable(cards string, chips int, names ...string) *Table {
	shoe := deck.NewShoe(deck.MustParseCards(cards), rand.New(rand.NewPCG(1, 2)))
	players := make([]*Player, 0, len(names))
	for _, name := range names {
		players = append(players, NewPlayer(name, chips))
	}
	return NewTable(shoe, NewDealer("Bob"), players)
}

// scriptedAgent answers wagers and decisions from per-player queues. When
// a queue runs out it sits the player out or stands.
type scriptedAgent struct {
	wagers    map[string][]int
	decisions map[string][]Action
	asked     map[string]int
}

func newScriptedAgent() *scriptedAgent {
	return &scriptedAgent{
		wagers:    make(map[string][]int),
		decisions: make(map[string][]Action),
		asked:     make(map[string]int),
	}
}

func (a *scriptedAgent) wager(name string, amounts ...int) *scriptedAgent {
	a.wagers[name] = append(a.wagers[name], amounts...)
	return a
}

func (a *scriptedAgent) decide(name string, actions ...Action) *scriptedAgent {
	a.decisions[name] = append(a.decisions[name], actions...)
	return a
}

func (a *scriptedAgent) Wager(player *Player, minimum int) (int, error) {
	queue := a.wagers[player.Name]
	if len(queue) == 0 {
		return 0, nil
	}
	a.wagers[player.Name] = queue[1:]
	return queue[0], nil
}

func (a *scriptedAgent) Decide(player *Player, dealer *Dealer) (Action, error) {
	a.asked[player.Name]++
	queue := a.decisions[player.Name]
	if len(queue) == 0 {
		return Stand, nil
	}
	a.decisions[player.Name] = queue[1:]
	return queue[0], nil
}

// eventRecorder captures every published event
type eventRecorder struct {
	events []GameEvent
}

func (r *eventRecorder) OnEvent(event GameEvent) {
	r.events = append(r.events, event)
}

func (r *eventRecorder) types() []EventType {
	out := make([]EventType, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e.EventType())
	}
	return out
}

func eventsOf[T GameEvent](r *eventRecorder) []T {
	var out []T
	for _, e := range r.events {
		if typed, ok := e.(T); ok {
			out = append(out, typed)
		}
	}
	return out
}
