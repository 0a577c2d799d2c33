package simulator

import (
	"context"
	"errors"
	"fmt"
	rand "math/rand/v2"
	"runtime"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/lox/blackjack/internal/bot"
	"github.com/lox/blackjack/internal/game"
	"github.com/lox/blackjack/internal/randutil"
	"github.com/lox/blackjack/internal/statistics"
)

// Config holds configuration for running simulations
type Config struct {
	Ruleset       game.Ruleset
	Strategy      string
	Games         int // independent games, each with a fresh shoe and balances
	Rounds        int // rounds each seat plays per game before sitting out
	Seats         int
	StartingChips int
	Seed          int64 // 0 picks a time based seed
	Workers       int   // games played concurrently, 0 means GOMAXPROCS
	Logger        *log.Logger
}

// Result is the merged outcome of every simulated game
type Result struct {
	Stats  *statistics.Statistics
	Seed   int64 // seed actually used, for replay
	Games  int
	Rounds int // engine rounds across all games
	Broke  int // games that ended with every seat broke
}

// Simulator runs many bot-only blackjack games in parallel
type Simulator struct {
	config Config
}

// New creates a new simulator with the given configuration
func New(config Config) *Simulator {
	if config.Workers <= 0 {
		config.Workers = runtime.GOMAXPROCS(0)
	}
	if config.StartingChips <= 0 {
		config.StartingChips = game.DefaultStartingChips
	}
	if config.Logger == nil {
		config.Logger = log.Default()
	}
	return &Simulator{config: config}
}

// Validate checks the configuration before any game is played
func (s *Simulator) Validate() error {
	if s.config.Games < 1 {
		return errors.New("at least one game is required")
	}
	if s.config.Rounds < 1 {
		return errors.New("at least one round per game is required")
	}
	if s.config.Seats < 1 {
		return errors.New("at least one seat is required")
	}
	if err := s.config.Ruleset.CheckPlayers(s.config.Seats); err != nil {
		return err
	}
	if _, err := bot.New(s.config.Strategy, 1, nil, s.config.Logger); err != nil {
		return err
	}
	return nil
}

type gameResult struct {
	stats  *statistics.Statistics
	rounds int
	broke  bool
}

// Run executes the simulation and returns merged results. Games are merged
// in order, so the result only depends on the seed, not on the number of
// workers.
func (s *Simulator) Run(ctx context.Context) (*Result, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	seed := randutil.Seed(s.config.Seed)
	s.config.Logger.Info("Starting simulation",
		"ruleset", s.config.Ruleset.Name,
		"strategy", s.config.Strategy,
		"games", s.config.Games,
		"rounds", s.config.Rounds,
		"seats", s.config.Seats,
		"workers", s.config.Workers,
		"seed", seed)

	results := make([]gameResult, s.config.Games)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.config.Workers)

	for i := range s.config.Games {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			res, err := s.playGame(gctx, i, seed)
			if err != nil {
				return fmt.Errorf("game %d: %w", i+1, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	// gctx is always cancelled once Wait returns, only the caller's
	// context says whether the run was interrupted.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := &Result{Stats: &statistics.Statistics{}, Seed: seed, Games: s.config.Games}
	for _, res := range results {
		result.Stats.Merge(res.stats)
		result.Rounds += res.rounds
		if res.broke {
			result.Broke++
		}
	}

	if err := result.Stats.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}
	return result, nil
}

// playGame plays one complete game. Each game owns its RNG, derived from
// the simulation seed and the game index.
func (s *Simulator) playGame(ctx context.Context, index int, seed int64) (gameResult, error) {
	rng := rand.New(rand.NewPCG(uint64(seed), uint64(index)))
	logger := s.config.Logger.With("game", index+1)

	agent, err := bot.New(s.config.Strategy, s.config.Rounds, rng, logger)
	if err != nil {
		return gameResult{}, err
	}

	names := make([]string, s.config.Seats)
	for i := range names {
		names[i] = fmt.Sprintf("seat-%d", i+1)
	}
	table, err := game.NewTableForRuleset(s.config.Ruleset, rng, game.TableConfig{
		PlayerNames:   names,
		StartingChips: s.config.StartingChips,
	})
	if err != nil {
		return gameResult{}, err
	}

	stats := &statistics.Statistics{}
	halt := &haltWatcher{}
	engine := game.NewEngine(s.config.Ruleset, agent, logger)
	engine.EventBus().Subscribe(stats)
	engine.EventBus().Subscribe(halt)

	if err := engine.Run(ctx, table); err != nil {
		return gameResult{}, err
	}

	logger.Debug("Game complete", "rounds", engine.Rounds(), "reason", halt.reason, "chips", table.TotalChips())
	return gameResult{
		stats:  stats,
		rounds: engine.Rounds(),
		broke:  halt.reason == game.HaltEveryoneBroke,
	}, nil
}

type haltWatcher struct {
	reason game.HaltReason
}

func (h *haltWatcher) OnEvent(event game.GameEvent) {
	if e, ok := event.(game.HaltEvent); ok {
		h.reason = e.Reason
	}
}
