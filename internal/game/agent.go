package game

// Action is a playing decision during a player's turn
type Action int

const (
	Hit Action = iota
	Stand
)

// String returns the string representation of an action
func (a Action) String() string {
	switch a {
	case Hit:
		return "hit"
	case Stand:
		return "stand"
	default:
		return "unknown"
	}
}

// Agent represents any entity (human or bot) that makes decisions for a
// seated player. The engine validates wagers against the table rules and
// asks again when one is refused, so agents may return any amount.
type Agent interface {
	// Wager returns the amount to bet this round. Zero sits the player out.
	Wager(player *Player, minimum int) (int, error)
	// Decide chooses between hitting and standing. The dealer's hole card,
	// if any, is still face down.
	Decide(player *Player, dealer *Dealer) (Action, error)
}
