// Package ui provides the Bubble Tea-based dashboard for cityline.
package ui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/cityline/cityline/internal/logging"
	"github.com/cityline/cityline/internal/nav"
	"github.com/cityline/cityline/internal/pages"
	"github.com/cityline/cityline/internal/prefs"
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Entries   []nav.Entry
	Pages     *pages.Table
	Tick      time.Duration
	ThemeName string
	PrefsPath string
}

// Model is the root application state for Bubble Tea. It owns the selected
// menu index and the input line exclusively; nothing mutates them outside
// Update.
type Model struct {
	// Configuration
	ctx       context.Context
	entries   []nav.Entry
	pages     *pages.Table
	tick      time.Duration
	prefsPath string

	// UI state
	theme    Theme
	keys     keyMap
	helpView help.Model
	input    textinput.Model
	selected int
	width    int
	height   int
	ready    bool
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	tick := opts.Tick
	if tick == 0 {
		tick = DefaultTick
	}

	entries := opts.Entries
	if len(entries) == 0 {
		entries = nav.Entries()
	}

	table := opts.Pages
	if table == nil {
		table = pages.NewTable()
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = "Nightfox"
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	return Model{
		ctx:       ctx,
		entries:   entries,
		pages:     table,
		tick:      tick,
		prefsPath: prefsPath,
		theme:     GetTheme(themeName),
		keys:      DefaultKeyMap(),
		helpView:  help.New(),
		input:     newInput(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		textinput.Blink,
		tickCmd(m.tick),
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.helpView.Width = msg.Width
		m.ready = true
		return m, nil

	case tickMsg:
		// Nothing changes between events, but the periodic redraw keeps the
		// loop live for future animation.
		return m, tickCmd(m.tick)
	}

	return m, nil
}

// handleKey processes keyboard input. Everything not bound in the keyMap is
// forwarded to the input line, where printable runes append and backspace
// removes; keys the input doesn't understand are no-ops.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		logging.Trace("ui.quit", nil)
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		m.selected = nav.MoveUp(m.selected, len(m.entries))
		logging.Trace("ui.select", map[string]any{"index": m.selected, "label": m.SelectedEntry().Label})
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.selected = nav.MoveDown(m.selected, len(m.entries))
		logging.Trace("ui.select", map[string]any{"index": m.selected, "label": m.SelectedEntry().Label})
		return m, nil

	case key.Matches(msg, m.keys.Confirm):
		// Confirm has no submit semantics; it only clears the line.
		m.input.Reset()
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		logging.Trace("ui.theme", map[string]any{"name": m.theme.Name})
		if m.prefsPath != "" {
			if err := prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name}); err != nil {
				logging.Error(err)
			}
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// SelectedEntry returns the currently highlighted navigation entry.
func (m Model) SelectedEntry() nav.Entry {
	if len(m.entries) == 0 {
		return nav.Entry{}
	}
	return m.entries[nav.Clamp(m.selected, len(m.entries))]
}

// SelectedPage returns the content page for the current selection.
func (m Model) SelectedPage() pages.Page {
	return m.pages.Lookup(m.SelectedEntry().Label)
}

// InputValue returns the current contents of the input line.
func (m Model) InputValue() string {
	return m.input.Value()
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.width < MinWidth || m.height < MinHeight {
		hint := m.theme.Styles().MutedText.Render("Terminal too small, resize to continue")
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, hint)
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderMenu(),
		m.renderContent(),
	)

	return m.renderHeader() + "\n" + body + "\n" + m.renderHintBar()
}

// Messages

type tickMsg time.Time

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Run starts the Bubble Tea program. The options context bounds the program:
// cancelling it (for example on SIGINT/SIGTERM) shuts the UI down.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))
	_, err := p.Run()
	return runErr(m.ctx, err)
}

// runErr normalizes Program.Run errors: a shutdown caused by context
// cancellation is a clean exit, not a failure.
func runErr(ctx context.Context, err error) error {
	if err != nil && ctx.Err() != nil {
		return nil
	}
	return err
}
