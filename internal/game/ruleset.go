package game

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"
)

var (
	// ErrUnknownRuleset is returned when looking up a ruleset that isn't registered
	ErrUnknownRuleset = errors.New("unknown ruleset")
	// ErrTooManyPlayers is returned when more players are seated than a ruleset allows
	ErrTooManyPlayers = errors.New("too many players")
)

// DefaultRuleset is used when no ruleset is selected
const DefaultRuleset = "insight"

// Ratio is an exact payout ratio such as 3:2
type Ratio struct {
	Num int
	Den int
}

// ParseRatio parses "3:2" or "3/2" into a Ratio
func ParseRatio(s string) (Ratio, error) {
	sep := ":"
	if !strings.Contains(s, sep) {
		sep = "/"
	}
	num, den, ok := strings.Cut(strings.TrimSpace(s), sep)
	if !ok {
		return Ratio{}, fmt.Errorf("invalid ratio %q: expected N:D", s)
	}
	n, err := strconv.Atoi(strings.TrimSpace(num))
	if err != nil {
		return Ratio{}, fmt.Errorf("invalid ratio %q: %w", s, err)
	}
	d, err := strconv.Atoi(strings.TrimSpace(den))
	if err != nil {
		return Ratio{}, fmt.Errorf("invalid ratio %q: %w", s, err)
	}
	r := Ratio{Num: n, Den: d}
	if err := r.Validate(); err != nil {
		return Ratio{}, err
	}
	return r, nil
}

// Validate checks the ratio is positive
func (r Ratio) Validate() error {
	if r.Num <= 0 || r.Den <= 0 {
		return fmt.Errorf("invalid ratio %d:%d: both sides must be positive", r.Num, r.Den)
	}
	return nil
}

// Apply returns amount scaled by the ratio, truncated to whole chips
func (r Ratio) Apply(amount int) int {
	return amount * r.Num / r.Den
}

// String returns the ratio as "N:D"
func (r Ratio) String() string {
	return fmt.Sprintf("%d:%d", r.Num, r.Den)
}

// Ruleset is the configuration of a table. The engine only ever branches on
// these fields.
type Ruleset struct {
	Name            string
	MaxPlayers      int
	Decks           int
	AutoShuffle     bool
	MinimumWager    int
	DealerHoleCard  bool
	RevealBlackjack bool // only meaningful with DealerHoleCard
	BlackjackPayout Ratio
}

// Validate checks that a ruleset can be played
func (r Ruleset) Validate() error {
	if r.Name == "" {
		return errors.New("ruleset name is required")
	}
	if r.MaxPlayers < 1 {
		return fmt.Errorf("ruleset %s: max players must be at least 1", r.Name)
	}
	if r.Decks < 1 {
		return fmt.Errorf("ruleset %s: at least one deck is required", r.Name)
	}
	if r.MinimumWager < 1 {
		return fmt.Errorf("ruleset %s: minimum wager must be positive", r.Name)
	}
	if err := r.BlackjackPayout.Validate(); err != nil {
		return fmt.Errorf("ruleset %s: blackjack payout: %w", r.Name, err)
	}
	return nil
}

// CheckPlayers returns ErrTooManyPlayers when n exceeds the table limit
func (r Ruleset) CheckPlayers(n int) error {
	if n > r.MaxPlayers {
		return fmt.Errorf("%w: this ruleset allows up to %d concurrent players", ErrTooManyPlayers, r.MaxPlayers)
	}
	return nil
}

var presets = map[string]Ruleset{
	"basic": {
		Name:            "basic",
		MaxPlayers:      1,
		Decks:           1,
		AutoShuffle:     false,
		MinimumWager:    1,
		DealerHoleCard:  false,
		BlackjackPayout: Ratio{2, 1},
	},
	"european": {
		Name:            "european",
		MaxPlayers:      7,
		Decks:           6,
		AutoShuffle:     false,
		MinimumWager:    10,
		DealerHoleCard:  false,
		BlackjackPayout: Ratio{3, 2},
	},
	"american": {
		Name:            "american",
		MaxPlayers:      7,
		Decks:           8,
		AutoShuffle:     true,
		MinimumWager:    10,
		DealerHoleCard:  true,
		RevealBlackjack: true,
		BlackjackPayout: Ratio{3, 2},
	},
	"insight": {
		Name:            "insight",
		MaxPlayers:      1,
		Decks:           8,
		AutoShuffle:     true,
		MinimumWager:    1,
		DealerHoleCard:  true,
		RevealBlackjack: true,
		BlackjackPayout: Ratio{3, 2},
	},
}

// Presets returns the names of the built-in rulesets, sorted
func Presets() []string {
	return slices.Sorted(maps.Keys(presets))
}

// Registry maps ruleset names to rulesets. It starts with the presets and
// can be extended with custom rulesets from configuration.
type Registry struct {
	rulesets map[string]Ruleset
}

// NewRegistry returns a registry holding the built-in presets
func NewRegistry() *Registry {
	return &Registry{rulesets: maps.Clone(presets)}
}

// Register adds a custom ruleset. Built-in presets cannot be replaced.
func (r *Registry) Register(rs Ruleset) error {
	if err := rs.Validate(); err != nil {
		return err
	}
	if _, ok := presets[rs.Name]; ok {
		return fmt.Errorf("ruleset %s: cannot redefine a built-in ruleset", rs.Name)
	}
	r.rulesets[rs.Name] = rs
	return nil
}

// Lookup returns the ruleset registered under name
func (r *Registry) Lookup(name string) (Ruleset, error) {
	rs, ok := r.rulesets[name]
	if !ok {
		return Ruleset{}, fmt.Errorf("%w: %q (available: %s)", ErrUnknownRuleset, name, strings.Join(r.Names(), ", "))
	}
	return rs, nil
}

// Names returns every registered ruleset name, sorted
func (r *Registry) Names() []string {
	return slices.Sorted(maps.Keys(r.rulesets))
}

// LookupRuleset returns a built-in ruleset by name
func LookupRuleset(name string) (Ruleset, error) {
	return NewRegistry().Lookup(name)
}
