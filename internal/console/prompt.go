package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/term"
)

// ErrInterrupted is returned when the player presses ctrl+c at a prompt
var ErrInterrupted = errors.New("interrupted")

// eot is what a terminal sends for ctrl+d
const eot = '\x04'

// Prompter asks questions through a one-line bubbletea text input and
// re-asks until the answer is valid. Empty answers select the default.
//
// On a terminal the input is drawn inline below the transcript. Any other
// input is read line by line without a renderer, and the prompts and answers
// are written to the transcript instead.
type Prompter struct {
	in          io.Reader
	src         *bufio.Reader // shared by every question when not a terminal
	out         io.Writer
	styles      *Styles
	interactive bool
}

// NewPrompter creates a prompter reading answers from in
func NewPrompter(in io.Reader, out io.Writer, styles *Styles) *Prompter {
	p := &Prompter{
		in:          in,
		out:         out,
		styles:      styles,
		interactive: isTerminal(in) && isTerminal(out),
	}
	if !p.interactive {
		p.src = bufio.NewReader(in)
	}
	return p
}

func isTerminal(v any) bool {
	f, ok := v.(term.File)
	return ok && term.IsTerminal(f.Fd())
}

// AskInt asks for a non-negative whole number
func (p *Prompter) AskInt(q string, def int) (int, error) {
	answer, err := p.ask(question{
		prompt:    fmt.Sprintf("%s [%d]: ", q, def),
		def:       strconv.Itoa(def),
		complaint: "Please enter a whole number of chips.",
		check: func(s string) (string, bool) {
			n, err := strconv.Atoi(s)
			if err != nil || n < 0 {
				return "", false
			}
			return strconv.Itoa(n), true
		},
	})
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(answer)
}

// AskChoice asks for one of choices, compared case insensitively
func (p *Prompter) AskChoice(q string, choices []string, def string) (string, error) {
	return p.ask(question{
		prompt:    fmt.Sprintf("%s (%s) [%s]: ", q, strings.Join(choices, "/"), def),
		def:       def,
		complaint: fmt.Sprintf("Please answer one of %s.", strings.Join(choices, ", ")),
		check: func(s string) (string, bool) {
			s = strings.ToLower(s)
			return s, slices.Contains(choices, s)
		},
	})
}

func (p *Prompter) ask(q question) (string, error) {
	input := textinput.New()
	input.Prompt = q.prompt
	input.PromptStyle = p.styles.Prompt
	input.Placeholder = q.def
	input.Focus()

	m := &promptModel{q: q, input: input, styles: p.styles}
	opts := []tea.ProgramOption{tea.WithOutput(p.out), tea.WithoutSignalHandler()}
	if p.interactive {
		opts = append(opts, tea.WithInput(p.in))
	} else {
		m.feed = newLineFeed(p.src)
		defer m.feed.close()
		m.transcript = p.out
		fmt.Fprint(p.out, p.styles.Prompt.Render(q.prompt))
		opts = append(opts, tea.WithInput(m.feed), tea.WithoutRenderer())
	}

	if _, err := tea.NewProgram(m, opts...).Run(); err != nil {
		return "", fmt.Errorf("prompt: %w", err)
	}
	if m.feed != nil && m.feed.err != nil {
		return "", m.feed.err
	}
	return m.answer, m.err
}

type question struct {
	prompt    string
	def       string
	complaint string
	// check normalises a non-empty answer and reports whether it is valid
	check func(string) (string, bool)
}

// promptModel is a single question. It quits once the answer is valid or
// input ends.
type promptModel struct {
	q          question
	input      textinput.Model
	styles     *Styles
	feed       *lineFeed // nil on a terminal
	transcript io.Writer // nil on a terminal

	complaint string
	answer    string
	err       error
	done      bool
}

func (m *promptModel) Init() tea.Cmd {
	if m.feed != nil {
		return nil
	}
	return textinput.Blink
}

func (m *promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.done {
		return m, nil
	}

	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyCtrlC:
			return m.finish(ErrInterrupted)
		case tea.KeyCtrlD:
			if m.input.Value() == "" {
				return m.finish(io.EOF)
			}
		case tea.KeyEnter, tea.KeyCtrlJ:
			return m.submit()
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *promptModel) submit() (tea.Model, tea.Cmd) {
	raw := strings.TrimSpace(m.input.Value())
	if m.transcript != nil {
		fmt.Fprintln(m.transcript, raw)
	}

	if raw == "" {
		m.answer = m.q.def
		return m.finish(nil)
	}
	if answer, ok := m.q.check(raw); ok {
		m.answer = answer
		return m.finish(nil)
	}

	m.complaint = m.q.complaint
	m.input.Reset()
	if m.transcript != nil {
		fmt.Fprintln(m.transcript, m.styles.Error.Render(m.complaint))
		fmt.Fprint(m.transcript, m.styles.Prompt.Render(m.q.prompt))
	}
	if m.feed != nil {
		m.feed.next()
	}
	return m, nil
}

func (m *promptModel) finish(err error) (tea.Model, tea.Cmd) {
	m.err = err
	m.done = true
	if m.feed != nil {
		m.feed.close()
	}
	if err != nil && m.transcript != nil {
		fmt.Fprintln(m.transcript)
	}
	return m, tea.Quit
}

func (m *promptModel) View() string {
	if m.done {
		return m.styles.Prompt.Render(m.q.prompt) + m.answer + "\n"
	}
	view := m.input.View()
	if m.complaint != "" {
		view += "\n" + m.styles.Error.Render(m.complaint)
	}
	return view
}

// lineFeed hands bubbletea one line of a non-terminal reader each time the
// prompt asks for one, so a question never consumes the answer to the next.
// Lines end with a carriage return, and the end of input arrives as ctrl+d,
// just as a terminal would send them.
type lineFeed struct {
	src  *bufio.Reader
	want chan struct{}
	stop chan struct{}
	once sync.Once

	pending []byte
	eof     bool
	err     error // read failure other than io.EOF
}

func newLineFeed(src *bufio.Reader) *lineFeed {
	f := &lineFeed{
		src:  src,
		want: make(chan struct{}, 1),
		stop: make(chan struct{}),
	}
	f.next()
	return f
}

// next releases another line to the reader
func (f *lineFeed) next() {
	select {
	case f.want <- struct{}{}:
	default:
	}
}

// close ends the feed and unblocks a pending Read
func (f *lineFeed) close() {
	f.once.Do(func() { close(f.stop) })
}

func (f *lineFeed) Read(b []byte) (int, error) {
	if len(f.pending) == 0 {
		select {
		case <-f.stop:
			return 0, io.EOF
		case <-f.want:
		}
		f.pending = f.line()
	}

	// A full buffer makes bubbletea wait for more bytes before parsing the
	// last key, so always return a short read.
	if len(b) > 1 {
		b = b[:len(b)-1]
	}
	n := copy(b, f.pending)
	f.pending = f.pending[n:]
	return n, nil
}

func (f *lineFeed) line() []byte {
	if !f.eof {
		text, err := f.src.ReadString('\n')
		// one enter per line, at the end
		text = strings.ReplaceAll(strings.TrimSuffix(text, "\n"), "\r", "")
		if err == nil || text != "" {
			return []byte(text + "\r")
		}
		f.eof = true
		if !errors.Is(err, io.EOF) {
			f.err = err
		}
	}
	return []byte{eot}
}
