// Package tui provides the terminal user interface for together.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/javiermolinar/together/internal/calendar"
	"github.com/javiermolinar/together/internal/config"
	"github.com/javiermolinar/together/internal/journal"
	"github.com/javiermolinar/together/internal/tui/commands"
	"github.com/javiermolinar/together/internal/tui/theme"
)

// Mode represents the current interaction mode.
type Mode int

const (
	ModeNormal  Mode = iota
	ModePrompt       // typing a new entry
	ModeConfirm      // confirming a delete
	ModeSetup        // config or database missing
)

func (m Mode) String() string {
	switch m {
	case ModePrompt:
		return "prompt"
	case ModeConfirm:
		return "confirm"
	case ModeSetup:
		return "setup"
	default:
		return "normal"
	}
}

// Model is the main TUI model.
type Model struct {
	// Dependencies
	repo   journal.Repository
	config *config.Config
	log    *zap.Logger
	now    func() time.Time

	// Theme and styles
	theme  *theme.Theme
	styles *Styles

	// Calendar state. loadedStart and loadedEnd record the span that marks
	// and entries were fetched for.
	cal         calendar.View
	marks       calendar.MarkSet
	entries     []*journal.Entry
	loadedStart calendar.Date
	loadedEnd   calendar.Date
	loading     bool

	mode          Mode
	prompt        textinput.Model
	pendingDelete *journal.Entry
	initState     InitState
	initError     string

	// Terminal dimensions
	width  int
	height int

	// Messages
	statusMsg  string
	statusErr  bool
	statusTime time.Time
	err        error
}

// ModelOption configures optional model behavior.
type ModelOption func(*Model)

// WithInitState sets the startup initialization state.
func WithInitState(state InitState) ModelOption {
	return func(m *Model) {
		m.initState = state
		if state.NeedsInit {
			m.mode = ModeSetup
		}
	}
}

// WithLogger sets the logger for key presses and navigation.
func WithLogger(l *zap.Logger) ModelOption {
	return func(m *Model) {
		if l != nil {
			m.log = l.Named("tui")
		}
	}
}

// WithClock overrides the clock used for "today".
func WithClock(now func() time.Time) ModelOption {
	return func(m *Model) {
		m.now = now
		m.cal = calendar.NewView(now, m.cal.Mode)
	}
}

// New creates a new TUI model.
func New(repo journal.Repository, cfg *config.Config, opts ...ModelOption) Model {
	t, err := theme.Load(cfg.UI.Theme)
	if err != nil {
		t, _ = theme.Load("mocha")
	}
	styles := NewStyles(t)

	ti := textinput.New()
	ti.Placeholder = "@who title | note"
	ti.CharLimit = 512
	ti.Prompt = ""
	ti.TextStyle = styles.EntryTitleStyle
	ti.PlaceholderStyle = styles.HelpStyle

	m := Model{
		repo:   repo,
		config: cfg,
		log:    zap.NewNop(),
		now:    time.Now,
		theme:  t,
		styles: styles,
		cal:    calendar.NewView(time.Now, calendar.ParseMode(cfg.Calendar.DefaultMode)),
		mode:   ModeNormal,
		prompt: ti,
	}

	for _, opt := range opts {
		opt(&m)
	}

	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	if m.mode == ModeSetup {
		return nil
	}
	return commands.LoadGrid(m.repo, m.cal.Grid())
}

// Calendar returns the current navigation state.
func (m Model) Calendar() calendar.View { return m.cal }

// SelectedEntries returns the loaded entries of the selected day.
func (m Model) SelectedEntries() []*journal.Entry {
	return journal.EntriesOn(m.entries, m.cal.Selected)
}

// Run starts the TUI. When repo is nil the database is opened from cfg,
// offering to create it first if it does not exist.
func Run(repo journal.Repository, cfg *config.Config, log *zap.Logger) error {
	if log == nil {
		log = zap.NewNop()
	}

	initialRepo := repo
	var initState InitState

	if repo == nil {
		state, err := DetectInitState(cfg)
		if err != nil {
			return err
		}
		initState = state
		if !state.NeedsInit {
			repo, err = openRepo(state.DBPath, log)
			if err != nil {
				return err
			}
		}
	}

	model := New(repo, cfg, WithInitState(initState), WithLogger(log))
	log.Info("tui started",
		zap.Stringer("mode", model.cal.Mode),
		zap.Bool("needs_init", initState.NeedsInit),
	)

	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()
	if initialRepo == nil {
		if m, ok := finalModel.(Model); ok && m.repo != nil {
			_ = m.repo.Close()
		}
	}
	log.Info("tui stopped")
	return err
}
