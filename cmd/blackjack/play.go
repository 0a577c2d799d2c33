package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lox/blackjack/internal/config"
	"github.com/lox/blackjack/internal/console"
	"github.com/lox/blackjack/internal/game"
	"github.com/lox/blackjack/internal/randutil"
)

// PlayCmd runs an interactive game on the terminal
type PlayCmd struct {
	Names       []string       `arg:"" name:"name" help:"Names of the players at the table"`
	Ruleset     string         `short:"r" help:"Table ruleset: basic, european, american, insight or one from the config file (overrides config)"`
	Chips       *int           `help:"Starting chips per player (overrides config)"`
	Dealer      *string        `help:"Dealer name (overrides config)"`
	Seed        *int64         `help:"Random seed, 0 for time based (overrides config)"`
	DealerPause *time.Duration `help:"Pause before each card the dealer draws, 0 for none (overrides config)"`

	in  io.Reader `kong:"-"`
	out io.Writer `kong:"-"`
}

func (c *PlayCmd) Run(g *Globals) error {
	cfg, err := g.load()
	if err != nil {
		return err
	}
	c.applyOverrides(cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, closeLog, err := setupLogger(cfg.Game.LogLevel, cfg.Game.LogFile)
	if err != nil {
		return err
	}
	defer func() { _ = closeLog() }()

	registry, err := cfg.Registry()
	if err != nil {
		return err
	}
	ruleset, err := registry.Lookup(cfg.Game.Ruleset)
	if err != nil {
		return err
	}
	if err := ruleset.CheckPlayers(len(c.Names)); err != nil {
		return err
	}

	seed := randutil.Seed(cfg.Game.Seed)
	logger.Info("Seeding shoe", "seed", seed)
	table, err := game.NewTableForRuleset(ruleset, randutil.New(seed), game.TableConfig{
		PlayerNames:   c.Names,
		StartingChips: cfg.Game.StartingChips,
		DealerName:    cfg.Game.DealerName,
	})
	if err != nil {
		return err
	}

	in, out := c.streams()
	styles := console.NewStyles(console.NewRenderer(out, !g.NoColor))
	narrator := console.NewNarrator(out, styles, table.Dealer)

	engine := game.NewEngine(ruleset, console.NewAgent(in, out, styles), logger,
		game.WithDealerPause(cfg.DealerPause()))
	engine.EventBus().Subscribe(narrator)

	fmt.Fprintln(out, styles.Header.Render(fmt.Sprintf(" ♠ ♥ Blackjack: %s table ♦ ♣ ", ruleset.Name)))
	fmt.Fprintf(out, "Minimum wager %d, blackjack pays %s.\n\n", ruleset.MinimumWager, ruleset.BlackjackPayout)

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigs)
	go func() {
		if _, ok := <-sigs; ok {
			fmt.Fprintln(out)
			logger.Info("Interrupted", "session", engine.SessionID())
			os.Exit(0)
		}
	}()

	err = engine.Run(context.Background(), table)
	if errors.Is(err, io.EOF) || errors.Is(err, console.ErrInterrupted) {
		fmt.Fprintln(out)
		narrator.Summary(table.Players)
		return nil
	}
	return err
}

// applyOverrides copies every flag given on the command line over the
// config, zero values included
func (c *PlayCmd) applyOverrides(cfg *config.Config) {
	if c.Ruleset != "" {
		cfg.Game.Ruleset = c.Ruleset
	}
	if c.Chips != nil {
		cfg.Game.StartingChips = *c.Chips
	}
	if c.Dealer != nil {
		cfg.Game.DealerName = *c.Dealer
	}
	if c.Seed != nil {
		cfg.Game.Seed = *c.Seed
	}
	if c.DealerPause != nil {
		cfg.Game.DealerPauseMS = int(c.DealerPause.Milliseconds())
	}
}

func (c *PlayCmd) streams() (io.Reader, io.Writer) {
	in, out := c.in, c.out
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	return in, out
}
