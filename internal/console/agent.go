package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/game"
)

// Agent lets people at the keyboard play every seat at the table
type Agent struct {
	prompter *Prompter
	out      io.Writer
	styles   *Styles
}

var _ game.Agent = (*Agent)(nil)

// NewAgent creates a console agent reading from in and writing to out
func NewAgent(in io.Reader, out io.Writer, styles *Styles) *Agent {
	return &Agent{
		prompter: NewPrompter(in, out, styles),
		out:      out,
		styles:   styles,
	}
}

// Wager asks the player how much to bet. An empty answer bets the minimum.
func (a *Agent) Wager(player *game.Player, minimum int) (int, error) {
	fmt.Fprintf(a.out, "%s, you have %d chips.\n", a.styles.Player.Render(player.Name), player.Chips)
	return a.prompter.AskInt("How much do you wager? (0 to sit out)", minimum)
}

// Decide shows the player's hand and what the dealer is showing, then asks
// whether to hit
func (a *Agent) Decide(player *game.Player, dealer *game.Dealer) (game.Action, error) {
	current, err := player.Hand.Score()
	if err != nil {
		return game.Stand, err
	}
	showing, err := dealer.Hand.VisibleScore()
	if err != nil {
		return game.Stand, err
	}

	fmt.Fprintf(a.out, "%s holds %s (%d). %s shows %s (%d).\n",
		a.styles.Player.Render(player.Name), a.cards(player.Hand.Cards()), current,
		a.styles.Dealer.Render(dealerLabel(dealer)), a.cards(dealer.Hand.Cards()), showing)

	choice, err := a.prompter.AskChoice("Hit or stand?", []string{"h", "s"}, "h")
	if err != nil {
		return game.Stand, err
	}
	if choice == "s" {
		return game.Stand, nil
	}
	return game.Hit, nil
}

func (a *Agent) cards(cards []*deck.Card) string {
	names := make([]string, 0, len(cards))
	for _, c := range cards {
		names = append(names, a.styles.Card(c))
	}
	return strings.Join(names, ", ")
}

func dealerLabel(d *game.Dealer) string {
	if d == nil || d.Name == "" {
		return "Dealer"
	}
	return "Dealer " + d.Name
}
