package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/scoreboard/internal/command"
	apperrors "github.com/agbru/scoreboard/internal/errors"
	"github.com/agbru/scoreboard/internal/format"
	"github.com/agbru/scoreboard/internal/metrics"
	"github.com/agbru/scoreboard/internal/scoreboard"
	"github.com/agbru/scoreboard/internal/sysmon"
)

// RefreshInterval is how often the dashboard re-reads the board, so that
// mutations made through the HTTP API show up without any key press.
const RefreshInterval = 500 * time.Millisecond

// Board is the scoreboard surface the dashboard drives.
type Board interface {
	command.Board
	Summary() []scoreboard.Game
}

// TickMsg triggers a board refresh.
type TickMsg time.Time

// SysStatsMsg carries a host load reading.
type SysStatsMsg sysmon.Stats

// ContextCancelledMsg is sent when the parent context is done.
type ContextCancelledMsg struct {
	Err error
}

// statusKind selects the style of the status line.
type statusKind int

const (
	statusInfo statusKind = iota
	statusOK
	statusError
)

// helpLine is the one-line command reference shown by "help".
const helpLine = "start <Home> <Away> · update <Home> <n> <Away> <n> · finish <Home> <Away> · exit"

// LayoutManager holds terminal dimensions and provides layout calculations.
type LayoutManager struct {
	width  int
	height int
}

// Layout constants for the TUI dashboard.
const (
	headerHeight             = 1
	statusHeight             = 1
	inputHeight              = 1
	footerHeight             = 1
	minBodyHeight            = 5
	SummaryPanelWidthPercent = 62
)

// bodyHeight returns the available height for the main body panels.
func (l LayoutManager) bodyHeight() int {
	h := l.height - headerHeight - statusHeight - inputHeight - footerHeight
	if h < minBodyHeight {
		h = minBodyHeight
	}
	return h
}

// summaryWidth returns the width allocated to the summary panel.
func (l LayoutManager) summaryWidth() int {
	return l.width * SummaryPanelWidthPercent / 100
}

// statsWidth returns the width allocated to the activity panel.
func (l LayoutManager) statsWidth() int {
	return l.width - l.summaryWidth()
}

// Options configures a dashboard.
type Options struct {
	// Version is shown in the header.
	Version string
	// Clients, when set, adds a live-feed client count to the activity panel.
	Clients ClientCounter
}

// Model is the root bubbletea model for the TUI dashboard.
type Model struct {
	board   Board
	sampler *metrics.RuntimeSampler

	header  HeaderModel
	summary SummaryModel
	stats   StatsModel
	input   textinput.Model
	keymap  KeyMap

	statusKind statusKind
	statusText string

	LayoutManager

	ctx      context.Context
	quitting bool
}

// NewModel creates a new TUI model.
func NewModel(ctx context.Context, board Board, opts Options) Model {
	input := textinput.New()
	input.Prompt = "score> "
	input.Placeholder = "start Mexico Canada"
	input.CharLimit = 256
	input.PromptStyle = promptStyle
	input.TextStyle = inputTextStyle
	input.Focus()

	m := Model{
		board:      board,
		sampler:    metrics.NewRuntimeSampler(),
		header:     NewHeaderModel(opts.Version),
		summary:    NewSummaryModel(),
		stats:      NewStatsModel(opts.Clients),
		input:      input,
		keymap:     DefaultKeyMap(),
		statusKind: statusInfo,
		statusText: "Type a command and press enter. 'help' lists them.",
		ctx:        ctx,
	}
	m.refresh()
	return m
}

// Init returns the initial commands.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		tickCmd(),
		sampleSysStatsCmd(m.ctx),
		watchContextCmd(m.ctx),
	)
}

// Update handles all incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layoutPanels()
		return m, nil

	case TickMsg:
		m.refresh()
		return m, tea.Batch(tickCmd(), sampleSysStatsCmd(m.ctx))

	case SysStatsMsg:
		m.stats.SetSystem(sysmon.Stats(msg))
		return m, nil

	case ContextCancelledMsg:
		m.quitting = true
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Submit):
		return m.submit()

	case key.Matches(msg, m.keymap.Up):
		m.summary.ScrollBy(-1)
		return m, nil

	case key.Matches(msg, m.keymap.Down):
		m.summary.ScrollBy(1)
		return m, nil

	case key.Matches(msg, m.keymap.PageUp):
		m.summary.ScrollBy(-m.summary.visibleRows())
		return m, nil

	case key.Matches(msg, m.keymap.PageDown):
		m.summary.ScrollBy(m.summary.visibleRows())
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit runs the command line against the board.
func (m Model) submit() (tea.Model, tea.Cmd) {
	line := m.input.Value()
	m.input.Reset()

	cmd, err := command.Parse(line)
	if err != nil {
		m.setStatus(statusError, "✗ "+err.Error())
		return m, nil
	}

	if cmd.Mutates() {
		m.apply(cmd)
		return m, nil
	}

	switch cmd.Kind {
	case command.KindExit:
		m.quitting = true
		return m, tea.Quit
	case command.KindHelp:
		m.setStatus(statusInfo, helpLine)
	case command.KindSummary:
		m.refresh()
		m.setStatus(statusInfo, "Summary refreshed.")
	}
	return m, nil
}

// apply runs a board mutation, times it and refreshes the panels.
func (m *Model) apply(cmd command.Command) {
	start := time.Now()
	err := cmd.Apply(m.board)
	elapsed := time.Since(start)
	if err != nil {
		m.setStatus(statusError, "✗ "+err.Error())
	} else {
		m.setStatus(statusOK, "✓ "+cmd.String()+" ("+format.FormatExecutionDuration(elapsed)+")")
	}
	m.refresh()
}

func (m *Model) setStatus(kind statusKind, text string) {
	m.statusKind = kind
	m.statusText = text
}

// refresh re-reads the board and the runtime statistics.
func (m *Model) refresh() {
	games := m.board.Summary()
	m.summary.SetGames(games)
	m.header.SetActive(len(games))
	m.stats.Record(games)
	m.stats.SetRuntime(m.sampler.Sample())
}

// View renders the entire dashboard.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top, m.summary.View(), m.stats.View())

	return lipgloss.JoinVertical(lipgloss.Left,
		m.header.View(),
		body,
		m.statusView(),
		m.input.View(),
		m.footerView(),
	)
}

func (m Model) statusView() string {
	style := statusInfoStyle
	switch m.statusKind {
	case statusOK:
		style = statusOKStyle
	case statusError:
		style = statusErrorStyle
	}
	return style.MaxWidth(m.width).Render(m.statusText)
}

func (m Model) footerView() string {
	var out string
	for i, b := range m.keymap.ShortHelp() {
		if i > 0 {
			out += footerDescStyle.Render("  ")
		}
		out += footerKeyStyle.Render(b.Help().Key) + " " + footerDescStyle.Render(b.Help().Desc)
	}
	return out
}

func (m *Model) layoutPanels() {
	m.header.SetWidth(m.width)
	m.summary.SetSize(m.summaryWidth(), m.bodyHeight())
	m.stats.SetSize(m.statsWidth(), m.bodyHeight())
	m.input.Width = m.width - lipgloss.Width(m.input.Prompt) - 1
}

// Run is the public entry point for the TUI mode. It blocks until the user
// quits or ctx is cancelled.
func Run(ctx context.Context, board Board, opts Options) error {
	// Rebuild styles from the current ui theme (set by app.Run via InitTheme).
	initTUIStyles()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := tea.NewProgram(NewModel(ctx, board, opts), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return apperrors.WrapError(err, "tui")
	}
	return nil
}

// tickCmd returns a command that sends a TickMsg after RefreshInterval.
func tickCmd() tea.Cmd {
	return tea.Tick(RefreshInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// sampleSysStatsCmd reads host CPU and memory usage off the UI goroutine.
func sampleSysStatsCmd(ctx context.Context) tea.Cmd {
	return func() tea.Msg {
		return SysStatsMsg(sysmon.Sample(ctx))
	}
}

// watchContextCmd waits for context cancellation and sends a message.
func watchContextCmd(ctx context.Context) tea.Cmd {
	return func() tea.Msg {
		<-ctx.Done()
		return ContextCancelledMsg{Err: ctx.Err()}
	}
}
