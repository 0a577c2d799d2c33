package statistics

import (
	"fmt"
	"math"
	"sort"

	"github.com/lox/blackjack/internal/game"
	"github.com/lox/blackjack/internal/score"
)

// RoundResult represents the settlement of one seat for one round
type RoundResult struct {
	Net     int // chips won (positive) or lost (negative)
	Wager   int
	Outcome score.Outcome
	Cards   int // cards in the settled hand
}

// Statistics tracks per-round results of a simulation. It subscribes to
// engine events and records every payout.
type Statistics struct {
	Rounds  int
	SumNet  float64
	SumNet2 float64   // Sum of squares for variance calculation
	Values  []float64 // Store all values for median/percentile calculation

	Wagered  int
	Outcomes [score.Blackjack + 1]int
	MaxWin   int
	MaxLoss  int
}

var _ game.EventSubscriber = (*Statistics)(nil)

// OnEvent records payout events and ignores everything else
func (s *Statistics) OnEvent(event game.GameEvent) {
	if e, ok := event.(game.PayoutEvent); ok {
		s.Add(RoundResult{Net: e.Net(), Wager: e.Wager, Outcome: e.Outcome, Cards: e.Cards})
	}
}

// Add incorporates a new round result into the statistics
func (s *Statistics) Add(result RoundResult) {
	net := float64(result.Net)
	s.Rounds++
	s.SumNet += net
	s.SumNet2 += net * net
	s.Values = append(s.Values, net)
	s.Wagered += result.Wager

	if result.Outcome >= score.Bust && result.Outcome <= score.Blackjack {
		s.Outcomes[result.Outcome]++
	}
	s.MaxWin = max(s.MaxWin, result.Net)
	s.MaxLoss = min(s.MaxLoss, result.Net)
}

// Merge folds other into s
func (s *Statistics) Merge(other *Statistics) {
	s.Rounds += other.Rounds
	s.SumNet += other.SumNet
	s.SumNet2 += other.SumNet2
	s.Values = append(s.Values, other.Values...)
	s.Wagered += other.Wagered
	for i, n := range other.Outcomes {
		s.Outcomes[i] += n
	}
	s.MaxWin = max(s.MaxWin, other.MaxWin)
	s.MaxLoss = min(s.MaxLoss, other.MaxLoss)
}

// Mean returns the arithmetic mean of net chips per round
func (s *Statistics) Mean() float64 {
	if s.Rounds == 0 {
		return 0
	}
	return s.SumNet / float64(s.Rounds)
}

// Variance returns the sample variance of all results
func (s *Statistics) Variance() float64 {
	if s.Rounds < 2 {
		return 0
	}
	mean := s.Mean()
	return max(0, (s.SumNet2-float64(s.Rounds)*mean*mean)/float64(s.Rounds-1))
}

// StdDev returns the sample standard deviation of all results
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean
func (s *Statistics) StdError() float64 {
	if s.Rounds == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Rounds))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// Median returns the median value of all results
func (s *Statistics) Median() float64 {
	return s.Percentile(0.5)
}

// Percentile returns the value at the given percentile (0.0 to 1.0)
func (s *Statistics) Percentile(p float64) float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1

	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// OutcomeRate returns the share of rounds that ended with o
func (s *Statistics) OutcomeRate(o score.Outcome) float64 {
	if s.Rounds == 0 || o < score.Bust || o > score.Blackjack {
		return 0
	}
	return float64(s.Outcomes[o]) / float64(s.Rounds)
}

// ReturnRate returns net chips per chip wagered (the house edge, negated)
func (s *Statistics) ReturnRate() float64 {
	if s.Wagered == 0 {
		return 0
	}
	return s.SumNet / float64(s.Wagered)
}

// Validate performs consistency checks on the collected data
func (s *Statistics) Validate() error {
	if s.Rounds <= 0 {
		return fmt.Errorf("invalid rounds count: %d", s.Rounds)
	}

	if len(s.Values) != s.Rounds {
		return fmt.Errorf("values array length (%d) does not match rounds count (%d)",
			len(s.Values), s.Rounds)
	}

	total := 0
	for _, n := range s.Outcomes {
		total += n
	}
	if total != s.Rounds {
		return fmt.Errorf("outcome total (%d) does not match rounds count (%d)", total, s.Rounds)
	}

	sum := 0.0
	for _, v := range s.Values {
		sum += v
	}
	if math.Abs(sum-s.SumNet) > 1e-6 {
		return fmt.Errorf("ledger mismatch: values sum to %.2f, running total is %.2f", sum, s.SumNet)
	}
	return nil
}
