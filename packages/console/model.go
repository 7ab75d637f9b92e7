package console

import (
	"bytes"
	"context"
	"strings"

	"github.com/abdul-hamid-achik/lunarica/packages/core/command"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const hintIndent = "          "

var (
	promptStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	commandStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	keyStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	valueStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	hintStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	cursorStyle  = lipgloss.NewStyle().Reverse(true)
)

// dispatchedMsg carries the result of one dispatched line back to the model.
type dispatchedMsg struct {
	output  string
	prompt  string
	exit    bool
	cleared bool
}

type model struct {
	ctx        context.Context
	dispatcher *command.Dispatcher
	history    *History

	input  textinput.Model
	prompt string

	// history navigation; histPos == history.Len() means the draft line
	histPos int
	draft   string

	// Tab completion cycle
	candidates []string
	candPos    int

	busy    bool
	spinner spinner.Model
	quit    bool
}

func newModel(ctx context.Context, d *command.Dispatcher, h *History) *model {
	s := spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(hintStyle))

	// The line is drawn by renderLine; the input only edits the value.
	ti := textinput.New()
	ti.Prompt = ""
	ti.Cursor.SetMode(cursor.CursorStatic)
	ti.Focus()

	return &model{
		ctx:        ctx,
		dispatcher: d,
		history:    h,
		input:      ti,
		prompt:     promptFor(d.Env()),
		histPos:    h.Len(),
		spinner:    s,
	}
}

func promptFor(env *command.Env) string {
	return env.State.BaseURL() + " > "
}

func (m *model) Init() tea.Cmd {
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.busy {
			return m, nil
		}
		return m, m.handleKey(msg)

	case dispatchedMsg:
		m.busy = false
		m.prompt = msg.prompt
		var cmds []tea.Cmd
		if msg.cleared {
			cmds = append(cmds, tea.ClearScreen)
		}
		if out := strings.TrimRight(msg.output, "\n"); out != "" {
			cmds = append(cmds, tea.Println(out))
		}
		if msg.exit {
			m.quit = true
			cmds = append(cmds, tea.Quit)
		}
		return m, tea.Sequence(cmds...)

	case spinner.TickMsg:
		if !m.busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.Type != tea.KeyTab {
		m.candidates = nil
	}

	switch msg.Type {
	case tea.KeyCtrlD:
		if m.input.Value() == "" {
			m.quit = true
			return tea.Quit
		}
	case tea.KeyCtrlC:
		line := m.input.Value()
		m.input.Reset()
		m.histPos = m.history.Len()
		return tea.Println(m.prompt + line + "^C")
	case tea.KeyEnter:
		return m.submit()
	case tea.KeyTab:
		m.complete()
		return nil
	case tea.KeyUp:
		m.historyPrev()
		return nil
	case tea.KeyDown:
		m.historyNext()
		return nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

// setLine replaces the line and moves the cursor to its end.
func (m *model) setLine(s string) {
	m.input.SetValue(s)
	m.input.CursorEnd()
}

func (m *model) submit() tea.Cmd {
	line := m.input.Value()
	m.input.Reset()
	m.histPos = m.history.Len()

	echo := tea.Println(m.prompt + line)
	if strings.TrimSpace(line) == "" {
		return echo
	}

	m.history.Add(line)
	m.histPos = m.history.Len()
	m.busy = true
	return tea.Sequence(echo, tea.Batch(m.spinner.Tick, m.dispatch(line)))
}

// dispatch runs line on the dispatcher with output captured. The model
// ignores keys until the result arrives, so only this call touches state.
func (m *model) dispatch(line string) tea.Cmd {
	return func() tea.Msg {
		var buf bytes.Buffer
		env := m.dispatcher.Env()

		orig, origClear := env.Console, env.ClearScreen
		var cleared bool
		env.Console = orig.Redirect(&buf)
		env.ClearScreen = func() { cleared = true }
		defer func() {
			env.Console, env.ClearScreen = orig, origClear
		}()

		buf.WriteString("\n")
		m.dispatcher.Dispatch(m.ctx, line)

		return dispatchedMsg{
			output:  buf.String(),
			prompt:  promptFor(env),
			exit:    env.State.ShouldExit(),
			cleared: cleared,
		}
	}
}

// complete fills the line with the next completion candidate. The first
// Tab computes the candidates; later presses cycle through them.
func (m *model) complete() {
	if m.candidates == nil {
		line := m.input.Value()
		if line == "" {
			return
		}
		m.candidates = m.dispatcher.Complete(line)
		if len(m.candidates) == 0 {
			m.candidates = nil
			return
		}
		m.candPos = 0
	} else {
		m.candPos = (m.candPos + 1) % len(m.candidates)
	}
	m.setLine(m.candidates[m.candPos])
}

func (m *model) historyPrev() {
	if m.histPos == 0 {
		return
	}
	if m.histPos == m.history.Len() {
		m.draft = m.input.Value()
	}
	m.histPos--
	m.setLine(m.history.At(m.histPos))
}

func (m *model) historyNext() {
	if m.histPos >= m.history.Len() {
		return
	}
	m.histPos++
	if m.histPos == m.history.Len() {
		m.setLine(m.draft)
		return
	}
	m.setLine(m.history.At(m.histPos))
}

func (m *model) View() string {
	if m.quit {
		return ""
	}
	if m.busy {
		return m.spinner.View() + " working..."
	}

	line := m.input.Value()

	var b strings.Builder
	b.WriteString(promptStyle.Render(m.prompt))
	b.WriteString(renderLine([]rune(line), m.input.Position(), m.dispatcher.Highlight(line)))

	if hint := m.dispatcher.Hint(line); hint != "" {
		b.WriteString(hintStyle.Render(hintIndent + hint))
	}
	if len(m.candidates) > 1 {
		b.WriteString("\n")
		b.WriteString(hintStyle.Render(strings.Join(m.candidates, "  ")))
	}
	return b.String()
}

// renderLine styles buf by the highlight spans, which are byte offsets into
// the line, and draws the cursor at rune index cursor.
func renderLine(buf []rune, cursor int, spans []command.Span) string {
	var b strings.Builder
	offset := 0
	for i, r := range buf {
		s := string(r)
		switch {
		case i == cursor:
			b.WriteString(cursorStyle.Render(s))
		default:
			if style, ok := spanStyle(spans, offset); ok {
				b.WriteString(style.Render(s))
			} else {
				b.WriteString(s)
			}
		}
		offset += len(s)
	}
	if cursor >= len(buf) {
		b.WriteString(cursorStyle.Render(" "))
	}
	return b.String()
}

func spanStyle(spans []command.Span, offset int) (lipgloss.Style, bool) {
	for _, sp := range spans {
		if offset < sp.Start || offset >= sp.End {
			continue
		}
		switch sp.Kind {
		case command.SpanCommand:
			return commandStyle, true
		case command.SpanKey:
			return keyStyle, true
		case command.SpanValue:
			return valueStyle, true
		}
	}
	return lipgloss.Style{}, false
}
