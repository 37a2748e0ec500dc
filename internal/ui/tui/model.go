package tui

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"eduquiz/internal/quiz"
)

// Options configures the interactive model.
type Options struct {
	HistoryLimit int
	NoColor      bool
}

// Model renders a session with Bubble Tea and forwards key presses to it.
type Model struct {
	ctx      context.Context
	service  *quiz.Service
	session  *quiz.Session
	snap     quiz.Snapshot
	keys     keyMap
	help     help.Model
	progress progress.Model
	opts     Options

	notice   string
	result   *quiz.Result
	history  []quiz.Result
	err      error
	quitting bool
}

// New constructs a model over a fresh session of service.
func New(ctx context.Context, service *quiz.Service, opts Options) Model {
	session := service.NewSession()
	return Model{
		ctx:      ctx,
		service:  service,
		session:  session,
		snap:     session.Snapshot(),
		keys:     defaultKeyMap(),
		help:     help.New(),
		progress: progress.New(progress.WithDefaultGradient(), progress.WithWidth(40)),
		opts:     opts,
	}
}

// Run starts a full-screen program over in/out and blocks until it exits.
func Run(ctx context.Context, service *quiz.Service, in io.Reader, out io.Writer, opts Options) error {
	program := tea.NewProgram(
		New(ctx, service, opts),
		tea.WithInput(in),
		tea.WithOutput(out),
		tea.WithContext(ctx),
		tea.WithAltScreen(),
	)
	final, err := program.Run()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}
	if model, ok := final.(Model); ok && model.err != nil {
		return model.err
	}
	return nil
}

// Init has nothing to start; the first question is already in the snapshot.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update maps key presses to session intents.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = typed.Width
		return m, nil
	case finishedMsg:
		stale := typed.passID != m.snap.PassID
		if typed.err != nil {
			m.notice = "Could not record the result: " + typed.err.Error()
			if !stale {
				m.err = typed.err
			}
			return m, nil
		}
		if !stale {
			m.history = typed.history
		}
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(typed)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Reset):
		m.session.Reset()
		m.result = nil
		m.history = nil
		m.err = nil
		m.notice = "Starting over."
		m.snap = m.session.Snapshot()
		return m, nil
	}

	if m.session.Phase() == quiz.PhaseComplete {
		return m, nil
	}

	var (
		err error
		cmd tea.Cmd
	)
	m.notice = ""
	switch {
	case key.Matches(msg, m.keys.Enter):
		if m.session.Phase() == quiz.PhaseRevealed {
			cmd, err = m.advance()
		} else {
			err = m.session.Confirm()
		}
	case key.Matches(msg, m.keys.Hint):
		err = m.session.RequestHint()
	case key.Matches(msg, m.keys.FiftyFifty):
		err = m.session.UseFiftyFifty()
	case key.Matches(msg, m.keys.Skip):
		if err = m.session.Skip(); err == nil {
			m.notice = "Skipped."
			cmd, err = m.advance()
		}
	default:
		for idx, binding := range m.keys.Options {
			if key.Matches(msg, binding) {
				err = m.session.SelectOption(idx)
				break
			}
		}
	}

	if err != nil {
		m.notice = rejectionText(err)
	}
	m.snap = m.session.Snapshot()
	return m, cmd
}

// advance moves past a revealed question. When the pass completes the
// result is captured here and the returned command only stores it.
func (m *Model) advance() (tea.Cmd, error) {
	if err := m.session.Advance(); err != nil {
		return nil, err
	}
	if m.session.Phase() != quiz.PhaseComplete {
		return nil, nil
	}
	result, err := m.service.BuildResult(m.session)
	if err != nil {
		return nil, err
	}
	m.result = &result
	return record(m.ctx, m.service, result, m.opts.HistoryLimit), nil
}

// finishedMsg reports that the result of pass passID was stored.
type finishedMsg struct {
	passID  string
	history []quiz.Result
	err     error
}

func record(ctx context.Context, service *quiz.Service, result quiz.Result, historyLimit int) tea.Cmd {
	return func() tea.Msg {
		if err := service.Record(ctx, result); err != nil {
			return finishedMsg{passID: result.PassID, err: err}
		}
		history, err := service.RecentResults(ctx, historyLimit)
		return finishedMsg{passID: result.PassID, history: history, err: err}
	}
}

func rejectionText(err error) string {
	switch {
	case errors.Is(err, quiz.ErrOutOfRange):
		return "No such option."
	case errors.Is(err, quiz.ErrInvalidTransition):
		return fmt.Sprintf("Not now: %v", err)
	default:
		return err.Error()
	}
}

// View renders the current question or the summary.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	var body string
	if m.snap.Phase == quiz.PhaseComplete {
		body = renderSummary(m.snap, m.result, m.history, m.opts.NoColor)
	} else {
		body = renderQuestion(m.snap, m.opts.NoColor)
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		renderHeader(m.snap, m.progress, m.opts.NoColor),
		body,
		renderNotice(m.notice, m.opts.NoColor),
		m.help.View(m.keys),
	)
}
