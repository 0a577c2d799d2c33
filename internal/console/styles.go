package console

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/score"
)

// Styles holds every style used on the console
type Styles struct {
	Header    lipgloss.Style
	Prompt    lipgloss.Style
	Player    lipgloss.Style
	Dealer    lipgloss.Style
	RedCard   lipgloss.Style
	BlackCard lipgloss.Style

	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style
}

// NewRenderer returns a lipgloss renderer for out. Without colour every
// style renders as plain text.
func NewRenderer(out io.Writer, color bool) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(out)
	if !color {
		r.SetColorProfile(termenv.Ascii)
	}
	return r
}

// NewStyles builds the console styles on a renderer
func NewStyles(r *lipgloss.Renderer) *Styles {
	return &Styles{
		Header: r.NewStyle().
			Foreground(lipgloss.Color("#7D56F4")).
			Bold(true),
		Prompt: r.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4")).
			Bold(true),
		Player: r.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Bold(true),
		Dealer: r.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true),
		RedCard: r.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")),
		BlackCard: r.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")),
		Success: r.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true),
		Error: r.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
		Warning: r.NewStyle().
			Foreground(lipgloss.Color("#FFEAA7")).
			Bold(true),
		Info: r.NewStyle().
			Foreground(lipgloss.Color("#626262")),
	}
}

// Card renders a card name in its suit colour
func (s *Styles) Card(c *deck.Card) string {
	if c.Visible && c.IsRed() {
		return s.RedCard.Render(c.String())
	}
	return s.BlackCard.Render(c.String())
}

// Outcome renders a settled outcome: green for wins, yellow for a push and
// red for the rest
func (s *Styles) Outcome(o score.Outcome) string {
	switch o {
	case score.Win, score.Blackjack:
		return s.Success.Render(o.String())
	case score.Push:
		return s.Warning.Render(o.String())
	default:
		return s.Error.Render(o.String())
	}
}
