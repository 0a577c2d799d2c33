// Package score computes blackjack hand values and settles one hand against
// another.
//
// Every card contributes a set of candidate values (an Ace is both 1 and 11).
// A hand's achievable totals are the sums over the Cartesian product of those
// sets; Best picks the highest total that does not exceed Target, or the
// smallest total when every combination busts.
package score

import (
	"errors"
	"fmt"
	"iter"
	"maps"
	"slices"

	"github.com/lox/blackjack/internal/deck"
)

const (
	// Target is the best possible score; anything above it is a bust
	Target = 21
	// DealerStand is the lowest score at which the dealer stops drawing
	DealerStand = 17
)

var (
	// ErrInvalidRank means a card was built with a rank outside Ace..King
	ErrInvalidRank = errors.New("invalid card rank")
	// ErrEmptyHand means a score was requested for a hand with no cards
	ErrEmptyHand = errors.New("empty hand has no score")
)

// Values returns the candidate values of a card: the face value for 2-10,
// 10 for Jack, Queen and King, and both 1 and 11 for an Ace.
func Values(card *deck.Card) ([]int, error) {
	switch {
	case card.Rank == deck.Ace:
		return []int{1, 11}, nil
	case card.Rank.IsFace():
		return []int{10}, nil
	case card.Rank.IsNumbered():
		return []int{int(card.Rank)}, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrInvalidRank, int(card.Rank))
	}
}

// Totals returns every achievable total for the cards, ascending and without
// duplicates.
func Totals(cards []*deck.Card) ([]int, error) {
	if len(cards) == 0 {
		return nil, ErrEmptyHand
	}

	totals := map[int]struct{}{0: {}}
	for _, card := range cards {
		values, err := Values(card)
		if err != nil {
			return nil, err
		}
		next := make(map[int]struct{}, len(totals)*len(values))
		for total := range totals {
			for _, v := range values {
				next[total+v] = struct{}{}
			}
		}
		totals = next
	}

	return slices.Sorted(maps.Keys(totals)), nil
}

// Best returns the best score for the cards: the highest total not above
// Target, otherwise the smallest (busted) total.
func Best(cards []*deck.Card) (int, error) {
	totals, err := Totals(cards)
	if err != nil {
		return 0, err
	}

	if best, ok := SafeMax(atMost(slices.Values(totals), Target)); ok {
		return best, nil
	}
	lowest, _ := SafeMin(slices.Values(totals))
	return lowest, nil
}

// IsSoft reports whether the best score counts an Ace as 11
func IsSoft(cards []*deck.Card) (bool, error) {
	best, err := Best(cards)
	if err != nil {
		return false, err
	}
	hard := 0
	for _, card := range cards {
		values, err := Values(card)
		if err != nil {
			return false, err
		}
		hard += values[0]
	}
	return best != hard, nil
}

func atMost(seq iter.Seq[int], limit int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for v := range seq {
			if v <= limit && !yield(v) {
				return
			}
		}
	}
}
