package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lox/blackjack/internal/console"
	"github.com/lox/blackjack/internal/score"
	"github.com/lox/blackjack/internal/simulator"
)

// SimulateCmd plays many bot-only games and reports how the strategy fares
type SimulateCmd struct {
	Ruleset  string `short:"r" help:"Table ruleset (overrides config)"`
	Strategy string `short:"s" default:"basic" enum:"basic,mimic,random,stand" help:"Bot strategy: ${enum}"`
	Games    int    `short:"g" default:"100" help:"Number of independent games"`
	Rounds   int    `short:"n" default:"100" help:"Rounds each seat plays per game"`
	Seats    int    `default:"1" help:"Bot seats at each table"`
	Chips    int    `default:"1000" help:"Starting chips per seat"`
	Seed     *int64 `help:"Random seed, 0 for time based (overrides config)"`
	Workers  int    `short:"w" help:"Games played concurrently (default: number of CPUs)"`
	Report   string `type:"path" help:"Also write a JSON report to this file"`

	out io.Writer `kong:"-"`
}

func (c *SimulateCmd) Run(g *Globals) error {
	cfg, err := g.load()
	if err != nil {
		return err
	}
	if c.Ruleset != "" {
		cfg.Game.Ruleset = c.Ruleset
	}
	if c.Seed != nil {
		cfg.Game.Seed = *c.Seed
	}
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

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	start := time.Now()
	result, err := simulator.New(simulator.Config{
		Ruleset:       ruleset,
		Strategy:      c.Strategy,
		Games:         c.Games,
		Rounds:        c.Rounds,
		Seats:         c.Seats,
		StartingChips: c.Chips,
		Seed:          cfg.Game.Seed,
		Workers:       c.Workers,
		Logger:        logger,
	}).Run(ctx)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	if c.Report != "" {
		if err := result.Report(c.Strategy, ruleset.Name).Save(c.Report); err != nil {
			return fmt.Errorf("saving report: %w", err)
		}
		logger.Info("Wrote simulation report", "path", c.Report)
	}

	out := c.out
	if out == nil {
		out = os.Stdout
	}
	c.report(out, console.NewStyles(console.NewRenderer(out, !g.NoColor)), ruleset.Name, result, elapsed)
	return nil
}

func (c *SimulateCmd) report(out io.Writer, styles *console.Styles, ruleset string, result *simulator.Result, elapsed time.Duration) {
	stats := result.Stats
	low, high := stats.ConfidenceInterval95()

	fmt.Fprintln(out, styles.Header.Render(fmt.Sprintf("%s strategy on the %s table", c.Strategy, ruleset)))
	fmt.Fprintf(out, "Games:        %d (%d ended broke)\n", result.Games, result.Broke)
	fmt.Fprintf(out, "Hands:        %d\n", stats.Rounds)
	fmt.Fprintf(out, "Seed:         %d\n", result.Seed)
	fmt.Fprintf(out, "Duration:     %s\n", elapsed.Round(time.Millisecond))
	fmt.Fprintln(out)

	mean := fmt.Sprintf("%+.4f", stats.Mean())
	if stats.Mean() < 0 {
		mean = styles.Error.Render(mean)
	} else {
		mean = styles.Success.Render(mean)
	}
	fmt.Fprintf(out, "Net per hand: %s chips (SD %.3f)\n", mean, stats.StdDev())
	fmt.Fprintf(out, "95%% CI:       [%+.4f, %+.4f]\n", low, high)
	fmt.Fprintf(out, "Return:       %+.2f%% of wagers\n", stats.ReturnRate()*100)
	fmt.Fprintf(out, "Best/worst:   %+d / %+d\n", stats.MaxWin, stats.MaxLoss)
	fmt.Fprintln(out)

	fmt.Fprintln(out, styles.Header.Render("Outcomes"))
	for o := score.Blackjack; o >= score.Bust; o-- {
		fmt.Fprintf(out, "  %-10s %8d  %6.2f%%\n", o, stats.Outcomes[o], stats.OutcomeRate(o)*100)
	}
}

