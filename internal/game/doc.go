// Package game implements the rules of a blackjack table.
//
// The main type is Engine, which runs rounds at a Table: it collects
// wagers, deals from the shoe, lets each player hit or stand, completes
// the dealer's hand and settles every wager. Decisions come from an Agent,
// so the same engine drives console players and bots.
//
// # Basic Usage
//
//	ruleset, _ := game.LookupRuleset("european")
//	table, _ := game.NewTableForRuleset(ruleset, rng, game.TableConfig{
//	    PlayerNames: []string{"Alice", "Bob"},
//	})
//	engine := game.NewEngine(ruleset, agent, logger)
//	err := engine.Run(ctx, table)
//
// # Events
//
// Everything that happens at the table is published on the engine's
// EventBus. Renderers and statistics collectors subscribe to it instead of
// reading engine state.
//
// # Deterministic Testing
//
// Build a Table around a deck.NewShoe of known cards and use a ruleset
// with AutoShuffle set, so the engine never shuffles the plain shoe:
//
//	shoe := deck.NewShoe(deck.MustParseCards("As Kh 9c 7d"), rng)
//	table := game.NewTable(shoe, game.NewDealer(""), players)
package game
