package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/lox/blackjack/internal/game"
)

// Narrator prints engine events as lines of text
type Narrator struct {
	out    io.Writer
	styles *Styles
	dealer *game.Dealer
}

var _ game.EventSubscriber = (*Narrator)(nil)

// NewNarrator creates a narrator writing to out. The dealer is only used
// for its name.
func NewNarrator(out io.Writer, styles *Styles, dealer *game.Dealer) *Narrator {
	return &Narrator{out: out, styles: styles, dealer: dealer}
}

// OnEvent implements game.EventSubscriber
func (n *Narrator) OnEvent(event game.GameEvent) {
	switch e := event.(type) {
	case game.RoundStartEvent:
		n.println(n.styles.Header.Render(fmt.Sprintf("=== Round %d ===", e.Round)))
	case game.WagerEvent:
		n.printf("%s wagers %d chips.\n", n.player(e.Player), e.Amount)
	case game.WagerRejectedEvent:
		switch e.Reason {
		case game.BelowMinimum:
			n.println(n.styles.Warning.Render(fmt.Sprintf("The minimum wager at this table is %d chips.", e.Minimum)))
		case game.InsufficientChips:
			n.println(n.styles.Warning.Render(fmt.Sprintf("%s only has %d chips.", e.Player.Name, e.Player.Chips)))
		}
	case game.SitOutEvent:
		if e.Forced {
			n.printf("%s cannot cover the minimum wager and sits out.\n", n.player(e.Player))
		} else {
			n.printf("%s sits out this round.\n", n.player(e.Player))
		}
	case game.CardDealtEvent:
		if e.ToDealer() {
			n.printf("%s receives %s.\n", n.dealerName(), n.styles.Card(e.Card))
		} else {
			n.printf("%s receives %s.\n", n.player(e.Player), n.styles.Card(e.Card))
		}
	case game.RevealEvent:
		if e.Early {
			n.println(n.styles.Warning.Render(fmt.Sprintf("%s has blackjack!", dealerLabel(e.Dealer))))
			return
		}
		n.printf("%s reveals %s (%d).\n", n.dealerName(), n.cards(e.Dealer.Hand), e.Score)
	case game.PlayerActionEvent:
		if e.Action == game.Hit {
			n.printf("%s hits and receives %s (%d).\n", n.player(e.Player), n.styles.Card(e.Card), e.Score)
		} else {
			n.printf("%s stands on %d.\n", n.player(e.Player), e.Score)
		}
	case game.BustEvent:
		name := n.dealerName()
		if e.Player != nil {
			name = n.player(e.Player)
		}
		n.printf("%s busts with %d!\n", name, e.Score)
	case game.DealerStandEvent:
		n.printf("%s stands on %d.\n", n.dealerName(), e.Score)
	case game.PayoutEvent:
		n.printf("%s %s with %d against %d: %s (%d chips left).\n",
			n.player(e.Player), n.styles.Outcome(e.Outcome), e.Score, e.DealerScore, signed(e.Net()), e.Player.Chips)
	case game.RoundEndEvent:
		n.println("")
	case game.HaltEvent:
		n.halt(e)
	}
}

func (n *Narrator) halt(e game.HaltEvent) {
	switch e.Reason {
	case game.HaltEveryoneBroke:
		n.println(n.styles.Error.Render("Everyone is broke."))
	case game.HaltNoWagers:
		n.println(n.styles.Info.Render("No one wants to play."))
	default:
		n.println(n.styles.Info.Render("Game interrupted."))
	}

	n.Summary(e.Players)
}

// Summary prints every player's final balance
func (n *Narrator) Summary(players []*game.Player) {
	n.println(n.styles.Header.Render("Final chip counts"))
	for _, p := range players {
		n.printf("  %-12s %6d\n", p.Name, p.Chips)
	}
}

func (n *Narrator) cards(h *game.Hand) string {
	if h == nil {
		return ""
	}
	names := make([]string, 0, h.Len())
	for _, c := range h.Cards() {
		names = append(names, n.styles.Card(c))
	}
	return strings.Join(names, ", ")
}

func (n *Narrator) player(p *game.Player) string {
	return n.styles.Player.Render(p.Name)
}

func (n *Narrator) dealerName() string {
	return n.styles.Dealer.Render(dealerLabel(n.dealer))
}

func (n *Narrator) printf(format string, args ...any) {
	fmt.Fprintf(n.out, format, args...)
}

func (n *Narrator) println(s string) {
	fmt.Fprintln(n.out, s)
}

func signed(n int) string {
	if n > 0 {
		return fmt.Sprintf("+%d", n)
	}
	return fmt.Sprintf("%d", n)
}
