package main

import (
	"fmt"
	"io"
	"os"

	"github.com/lox/blackjack/internal/console"
)

// RulesetsCmd lists built-in and configured rulesets
type RulesetsCmd struct {
	out io.Writer `kong:"-"`
}

func (c *RulesetsCmd) Run(g *Globals) error {
	cfg, err := g.load()
	if err != nil {
		return err
	}
	registry, err := cfg.Registry()
	if err != nil {
		return err
	}

	out := c.out
	if out == nil {
		out = os.Stdout
	}
	styles := console.NewStyles(console.NewRenderer(out, !g.NoColor))

	fmt.Fprintln(out, styles.Header.Render(fmt.Sprintf("%-10s %7s %5s %8s %7s %9s %6s %7s",
		"RULESET", "PLAYERS", "DECKS", "SHUFFLER", "MINIMUM", "HOLE CARD", "REVEAL", "PAYOUT")))
	for _, name := range registry.Names() {
		rs, err := registry.Lookup(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%-10s %7d %5d %8s %7d %9s %6s %7s\n",
			rs.Name, rs.MaxPlayers, rs.Decks, yesNo(rs.AutoShuffle), rs.MinimumWager,
			yesNo(rs.DealerHoleCard), yesNo(rs.RevealBlackjack), rs.BlackjackPayout)
	}
	return nil
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
