package game

import (
	"errors"
	rand "math/rand/v2"

	"github.com/lox/blackjack/internal/deck"
)

// Table groups the shoe, the dealer and the seated players
type Table struct {
	Shoe          *deck.Shoe
	Dealer        *Dealer
	Players       []*Player // All registered players, in seating order
	ActivePlayers []*Player // Players with a wager in the current round
}

// NewTable creates a table around an existing shoe
func NewTable(shoe *deck.Shoe, dealer *Dealer, players []*Player) *Table {
	return &Table{
		Shoe:    shoe,
		Dealer:  dealer,
		Players: players,
	}
}

// TableConfig describes the people sitting at a new table
type TableConfig struct {
	PlayerNames   []string
	StartingChips int
	DealerName    string
}

// NewTableForRuleset builds the shoe the ruleset asks for (deck count and
// shuffling machine) and seats the players.
func NewTableForRuleset(ruleset Ruleset, rng *rand.Rand, cfg TableConfig) (*Table, error) {
	if len(cfg.PlayerNames) == 0 {
		return nil, errors.New("at least one player is required")
	}
	if err := ruleset.CheckPlayers(len(cfg.PlayerNames)); err != nil {
		return nil, err
	}
	chips := cfg.StartingChips
	if chips <= 0 {
		chips = DefaultStartingChips
	}

	cards := deck.NewCards(ruleset.Decks)
	var shoe *deck.Shoe
	if ruleset.AutoShuffle {
		shoe = deck.NewShufflingShoe(cards, rng)
	} else {
		shoe = deck.NewShoe(cards, rng)
	}

	players := make([]*Player, 0, len(cfg.PlayerNames))
	for _, name := range cfg.PlayerNames {
		players = append(players, NewPlayer(name, chips))
	}
	return NewTable(shoe, NewDealer(cfg.DealerName), players), nil
}

// AnyChips reports whether at least one registered player still has chips
func (t *Table) AnyChips() bool {
	for _, p := range t.Players {
		if !p.IsBroke() {
			return true
		}
	}
	return false
}

// TotalChips returns the sum of every registered player's balance
func (t *Table) TotalChips() int {
	total := 0
	for _, p := range t.Players {
		total += p.Chips
	}
	return total
}

// PlayerByName returns the registered player with the given name
func (t *Table) PlayerByName(name string) *Player {
	for _, p := range t.Players {
		if p.Name == name {
			return p
		}
	}
	return nil
}
