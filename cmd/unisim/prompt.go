package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

var errInvalidAnswer = errors.New(`answer with a number of years or "no"`)

// prompt asks how many more years to simulate. Terminals get a small
// bubbletea input; pipes get a plain line read.
type prompt struct {
	in     *os.File
	out    io.Writer
	reader *bufio.Reader
	tty    bool
}

func newPrompt(in *os.File, out io.Writer) *prompt {
	fd := in.Fd()
	return &prompt{
		in:     in,
		out:    out,
		reader: bufio.NewReader(in),
		tty:    isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd),
	}
}

func (p *prompt) ContinueFor(ctx context.Context, yearsSoFar int) (int, error) {
	question := fmt.Sprintf("%d years reached, continue the simulation? (number of years, or \"no\")", yearsSoFar)
	if p.tty {
		return p.ask(ctx, question)
	}

	fmt.Fprintln(p.out, question)
	line, err := p.reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return 0, err
	}
	return parseAnswer(line)
}

// parseAnswer accepts a non-negative year count; "no", "n" and blank stop
func parseAnswer(s string) (int, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "", "no", "n":
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: %q", errInvalidAnswer, s)
	}
	return n, nil
}

func (p *prompt) ask(ctx context.Context, question string) (int, error) {
	m := continueModel{question: question}
	final, err := tea.NewProgram(m,
		tea.WithContext(ctx),
		tea.WithInput(p.in),
		tea.WithOutput(p.out),
	).Run()
	if err != nil {
		return 0, err
	}
	return final.(continueModel).years()
}

var (
	questionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	inputStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	hintStyle     = lipgloss.NewStyle().Faint(true)
)

// continueModel reads digits until enter; esc, ctrl+c or "no" stop
type continueModel struct {
	question string
	input    string
	stopped  bool
	done     bool
}

func (m continueModel) Init() tea.Cmd {
	return nil
}

func (m continueModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.Type {
	case tea.KeyEnter:
		m.done = true
		return m, tea.Quit
	case tea.KeyEsc, tea.KeyCtrlC:
		m.stopped = true
		m.done = true
		return m, tea.Quit
	case tea.KeyBackspace:
		if m.input != "" {
			m.input = m.input[:len(m.input)-1]
		}
	case tea.KeyRunes:
		for _, r := range key.Runes {
			if (r >= '0' && r <= '9') || strings.ContainsRune("noNO", r) {
				m.input += string(r)
			}
		}
	}
	return m, nil
}

func (m continueModel) View() string {
	if m.done {
		return ""
	}
	return questionStyle.Render(m.question) + "\n" +
		"> " + inputStyle.Render(m.input) + "\n" +
		hintStyle.Render("enter to confirm, esc to stop") + "\n"
}

func (m continueModel) years() (int, error) {
	if m.stopped {
		return 0, nil
	}
	return parseAnswer(m.input)
}
