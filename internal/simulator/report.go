package simulator

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/lox/blackjack/internal/fileutil"
	"github.com/lox/blackjack/internal/score"
)

// Report is the machine readable summary of a simulation run
type Report struct {
	Strategy   string         `json:"strategy"`
	Ruleset    string         `json:"ruleset"`
	Seed       int64          `json:"seed"`
	Games      int            `json:"games"`
	Broke      int            `json:"broke"`
	Hands      int            `json:"hands"`
	Wagered    int            `json:"wagered"`
	Mean       float64        `json:"mean_net"`
	StdDev     float64        `json:"std_dev"`
	CI95       [2]float64     `json:"ci95"`
	ReturnRate float64        `json:"return_rate"`
	MaxWin     int            `json:"max_win"`
	MaxLoss    int            `json:"max_loss"`
	Outcomes   map[string]int `json:"outcomes"`
}

// Report summarises the result for the given strategy and ruleset names
func (r *Result) Report(strategy, ruleset string) Report {
	stats := r.Stats
	low, high := stats.ConfidenceInterval95()

	outcomes := make(map[string]int, len(stats.Outcomes))
	for o := score.Bust; o <= score.Blackjack; o++ {
		outcomes[o.String()] = stats.Outcomes[o]
	}

	return Report{
		Strategy:   strategy,
		Ruleset:    ruleset,
		Seed:       r.Seed,
		Games:      r.Games,
		Broke:      r.Broke,
		Hands:      stats.Rounds,
		Wagered:    stats.Wagered,
		Mean:       stats.Mean(),
		StdDev:     stats.StdDev(),
		CI95:       [2]float64{low, high},
		ReturnRate: stats.ReturnRate(),
		MaxWin:     stats.MaxWin,
		MaxLoss:    stats.MaxLoss,
		Outcomes:   outcomes,
	}
}

// WriteJSON encodes the report as indented JSON
func (r Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return nil
}

// Save writes the report to path, replacing any previous report atomically
func (r Report) Save(path string) error {
	return fileutil.WriteAtomic(path, 0o644, r.WriteJSON)
}
