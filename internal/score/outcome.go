package score

import "github.com/lox/blackjack/internal/deck"

// Outcome is the result of one side of a hand comparison. Outcomes are
// ordered from worst to best.
type Outcome int

const (
	Bust Outcome = iota
	Lose
	Push
	Win
	Blackjack
)

// String returns the string representation of an outcome
func (o Outcome) String() string {
	switch o {
	case Bust:
		return "BUST"
	case Lose:
		return "LOSE"
	case Push:
		return "PUSH"
	case Win:
		return "WIN"
	case Blackjack:
		return "BLACKJACK"
	default:
		return "UNKNOWN"
	}
}

// Compare settles two hands against each other and returns the outcome for
// each side. Swapping the arguments swaps the results.
func Compare(a, b []*deck.Card) (Outcome, Outcome, error) {
	scoreA, err := Best(a)
	if err != nil {
		return Bust, Bust, err
	}
	scoreB, err := Best(b)
	if err != nil {
		return Bust, Bust, err
	}

	outA := classify(scoreA, len(a))
	outB := classify(scoreB, len(b))

	switch {
	case outA == Blackjack && outB == Blackjack:
		return Push, Push, nil
	case outA == Blackjack:
		outB = min(outB, Lose)
	case outB == Blackjack:
		outA = min(outA, Lose)
	case outA == Win && outB == Win:
		switch {
		case scoreA < scoreB:
			outA = Lose
		case scoreA > scoreB:
			outB = Lose
		default:
			outA, outB = Push, Push
		}
	}
	return outA, outB, nil
}

// classify is the outcome of a hand judged on its own
func classify(score, cards int) Outcome {
	switch {
	case score > Target:
		return Bust
	case score == Target && cards == 2:
		return Blackjack
	default:
		return Win
	}
}
