package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"textsum/internal/account"
	"textsum/internal/domain"
	"textsum/internal/history"
)

// SummaryPort is the TUI-facing subset of the summary service.
type SummaryPort interface {
	Summarize(ctx context.Context, text string) (history.Item, error)
	History() []history.Item
	Reuse(id string) (history.Item, error)
	Delete(id string) error
	Stats(text string) domain.Stats
}

// Options tune the model. Zero values are usable.
type Options struct {
	// NoticeTTL is how long a status notice stays on screen.
	NoticeTTL time.Duration
	// Copy writes to the clipboard. Defaults to the system clipboard.
	Copy func(string) error
}

type focus int

const (
	focusInput focus = iota
	focusHistory
)

type noticeKind int

const (
	noticeSuccess noticeKind = iota
	noticeError
)

type (
	summaryDoneMsg   struct{ item history.Item }
	summaryErrMsg    struct{ err error }
	copiedMsg        struct{}
	copyErrMsg       struct{ err error }
	noticeExpiredMsg struct{ seq int }
)

// Model is the Bubble Tea model for the summarizer page.
type Model struct {
	ctx     context.Context
	service SummaryPort
	user    account.User
	keys    keyMap
	help    help.Model

	input    textarea.Model
	output   viewport.Model
	spinner  spinner.Model
	width    int
	ready    bool
	focus    focus
	loading  bool
	summary  string
	sumWords int

	historyVisible bool
	cursor         int

	notice     string
	noticeKind noticeKind
	noticeSeq  int
	noticeTTL  time.Duration
	copy       func(string) error

	loggedOut bool
}

// New creates the summarizer page for a signed-in user.
func New(ctx context.Context, service SummaryPort, user account.User, opts Options) Model {
	if opts.NoticeTTL <= 0 {
		opts.NoticeTTL = 3 * time.Second
	}
	if opts.Copy == nil {
		opts.Copy = clipboard.WriteAll
	}
	ta := textarea.New()
	ta.Placeholder = "Paste or type the text to summarize (at least 50 words)"
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.SetHeight(8)
	ta.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("69"))

	vp := viewport.New(0, 0)
	vp.SetContent(placeholderStyle.Render("Your summary will appear here"))

	return Model{
		ctx:       ctx,
		service:   service,
		user:      user,
		keys:      defaultKeyMap(),
		help:      help.New(),
		input:     ta,
		output:    vp,
		spinner:   sp,
		noticeTTL: opts.NoticeTTL,
		copy:      opts.Copy,
	}
}

// LoggedOut reports whether the program ended because the user signed out.
func (m Model) LoggedOut() bool { return m.loggedOut }

// Init initializes the model (text area cursor blink).
func (m Model) Init() tea.Cmd { return textarea.Blink }

// Update handles key, window and service events and updates the view state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		m.width = msg.Width
		m.resize(msg.Width, msg.Height)
		return m, nil
	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case summaryDoneMsg:
		m.loading = false
		m.showSummary(msg.item.Summary, msg.item.SummaryWordCount)
		m.cursor = 0
		return m, m.setNotice(noticeSuccess, "Summary generated successfully!")
	case summaryErrMsg:
		m.loading = false
		return m, m.setNotice(noticeError, msg.err.Error())
	case copiedMsg:
		return m, m.setNotice(noticeSuccess, "Summary copied to clipboard!")
	case copyErrMsg:
		return m, m.setNotice(noticeError, msg.err.Error())
	case noticeExpiredMsg:
		if msg.seq == m.noticeSeq {
			m.notice = ""
		}
		return m, nil
	case tea.KeyMsg:
		if cmd, handled := m.handleKey(msg); handled {
			return m, cmd
		}
	}

	if m.focus != focusInput {
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit, true
	case key.Matches(msg, m.keys.Logout):
		m.loggedOut = true
		return tea.Quit, true
	case key.Matches(msg, m.keys.Summarize):
		if m.loading {
			return nil, true
		}
		text := strings.TrimSpace(m.input.Value())
		if text == "" {
			return m.setNotice(noticeError, "Please enter some text to summarize"), true
		}
		m.loading = true
		return tea.Batch(m.spinner.Tick, m.summarize(text)), true
	case key.Matches(msg, m.keys.Copy):
		if m.summary == "" {
			return m.setNotice(noticeError, "There is no summary to copy"), true
		}
		return m.copySummary(), true
	case key.Matches(msg, m.keys.ClearInput):
		m.input.Reset()
		return nil, true
	case key.Matches(msg, m.keys.ClearOutput):
		m.clearOutput()
		return nil, true
	case key.Matches(msg, m.keys.ToggleHistory):
		m.historyVisible = !m.historyVisible
		if !m.historyVisible {
			m.setFocus(focusInput)
		}
		return nil, true
	case key.Matches(msg, m.keys.SwitchFocus):
		if !m.historyVisible {
			return nil, false
		}
		if m.focus == focusInput {
			m.setFocus(focusHistory)
		} else {
			m.setFocus(focusInput)
		}
		return nil, true
	}

	if m.focus != focusHistory {
		return nil, false
	}
	items := m.service.History()
	switch {
	case key.Matches(msg, m.keys.Up):
		if len(items) > 0 {
			m.cursor = (m.cursor - 1 + len(items)) % len(items)
		}
	case key.Matches(msg, m.keys.Down):
		if len(items) > 0 {
			m.cursor = (m.cursor + 1) % len(items)
		}
	case key.Matches(msg, m.keys.Reuse):
		if m.cursor >= len(items) {
			return nil, true
		}
		item, err := m.service.Reuse(items[m.cursor].ID)
		if err != nil {
			return m.setNotice(noticeError, err.Error()), true
		}
		m.input.SetValue(item.InputText)
		m.showSummary(item.Summary, item.SummaryWordCount)
		m.setFocus(focusInput)
		return m.setNotice(noticeSuccess, "History item loaded"), true
	case key.Matches(msg, m.keys.Delete):
		if m.cursor >= len(items) {
			return nil, true
		}
		if err := m.service.Delete(items[m.cursor].ID); err != nil {
			return m.setNotice(noticeError, err.Error()), true
		}
		if m.cursor > 0 && m.cursor >= len(items)-1 {
			m.cursor--
		}
		return m.setNotice(noticeSuccess, "History item deleted"), true
	}
	return nil, true
}

func (m Model) summarize(text string) tea.Cmd {
	ctx, service := m.ctx, m.service
	return func() tea.Msg {
		item, err := service.Summarize(ctx, text)
		if err != nil {
			return summaryErrMsg{err: err}
		}
		return summaryDoneMsg{item: item}
	}
}

func (m Model) copySummary() tea.Cmd {
	text, copyFn := m.summary, m.copy
	return func() tea.Msg {
		if err := copyFn(text); err != nil {
			return copyErrMsg{err: fmt.Errorf("failed to copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func (m *Model) setNotice(kind noticeKind, text string) tea.Cmd {
	m.noticeSeq++
	m.notice = text
	m.noticeKind = kind
	seq := m.noticeSeq
	return tea.Tick(m.noticeTTL, func(time.Time) tea.Msg { return noticeExpiredMsg{seq: seq} })
}

func (m *Model) setFocus(f focus) {
	m.focus = f
	if f == focusInput {
		m.input.Focus()
	} else {
		m.input.Blur()
	}
}

func (m *Model) showSummary(summary string, words int) {
	m.summary = summary
	m.sumWords = words
	m.output.SetContent(m.wrap(summary))
	m.output.GotoTop()
}

func (m *Model) clearOutput() {
	m.summary = ""
	m.sumWords = 0
	m.output.SetContent(placeholderStyle.Render("Your summary will appear here"))
}

func (m *Model) resize(width, height int) {
	_, ih := inputBoxStyle.GetFrameSize()
	fw, sh := summaryBoxStyle.GetFrameSize()
	inner := max(20, width-fw)
	m.input.SetWidth(inner)
	// header, counters, summary footer, status and help lines
	reserved := 5 + m.input.Height() + ih + sh
	m.output.Width = inner
	m.output.Height = max(3, height-reserved)
	if m.summary != "" {
		m.output.SetContent(m.wrap(m.summary))
	}
}

func (m Model) wrap(s string) string {
	if m.output.Width <= 0 {
		return s
	}
	return lipgloss.NewStyle().Width(m.output.Width).Render(s)
}

// View renders the summarizer page and, when toggled, the history pane.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	header := titleStyle.Render("Text Summarizer") + "  " + mutedStyle.Render("signed in as "+m.user.Name)

	stats := m.service.Stats(m.input.Value())
	counters := mutedStyle.Render(fmt.Sprintf("%d characters · %d words", stats.Characters, stats.Words))
	input := inputBoxStyle.Render(m.input.View())

	summary := summaryBoxStyle.Render(m.output.View())
	summaryInfo := mutedStyle.Render(fmt.Sprintf("%d words", m.sumWords))

	var status string
	switch {
	case m.loading:
		status = m.spinner.View() + " Summarizing..."
	case m.notice != "" && m.noticeKind == noticeError:
		status = errorStyle.Render("✗ " + m.notice)
	case m.notice != "":
		status = successStyle.Render("✓ " + m.notice)
	}

	sections := []string{header, input, counters, summary, summaryInfo, status}
	if m.historyVisible {
		sections = append(sections, m.renderHistory())
	}
	sections = append(sections, m.help.View(m.keys))
	return strings.Join(sections, "\n")
}

func (m Model) renderHistory() string {
	items := m.service.History()
	if len(items) == 0 {
		return historyBoxStyle.Render(mutedStyle.Render("No summarization history yet. Start by summarizing your first text!"))
	}
	width := max(20, m.width-8)
	lines := make([]string, 0, len(items)*3)
	for i, item := range items {
		marker := "  "
		style := lipgloss.NewStyle()
		if i == m.cursor && m.focus == focusHistory {
			marker = "> "
			style = highlightStyle
		}
		lines = append(lines,
			style.Render(fmt.Sprintf("%s%s  original %d words, summary %d words",
				marker, item.CreatedAt.Format("2006-01-02 15:04:05"), item.InputWordCount, item.SummaryWordCount)),
			mutedStyle.Render("    "+preview(item.InputText, width)),
			"    "+preview(item.Summary, width),
		)
	}
	return historyBoxStyle.Render(strings.Join(lines, "\n"))
}

func preview(s string, limit int) string {
	s = strings.Join(strings.Fields(s), " ")
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit-3]) + "..."
}

var (
	inputBoxStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	summaryBoxStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	historyBoxStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("8")).Padding(0, 1)
	titleStyle       = lipgloss.NewStyle().Bold(true)
	mutedStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	placeholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true)
	highlightStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	successStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)
