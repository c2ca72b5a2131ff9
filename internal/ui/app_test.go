package ui

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/cityline/cityline/internal/nav"
	"github.com/cityline/cityline/internal/prefs"
)

func newTestModel(t *testing.T, opts Options) Model {
	t.Helper()
	if opts.PrefsPath == "" {
		opts.PrefsPath = filepath.Join(t.TempDir(), "prefs.toml")
	}
	m := New(opts)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return next.(Model)
}

func press(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func keyDown() tea.Msg  { return tea.KeyMsg{Type: tea.KeyDown} }
func keyUp() tea.Msg    { return tea.KeyMsg{Type: tea.KeyUp} }
func keyEnter() tea.Msg { return tea.KeyMsg{Type: tea.KeyEnter} }
func keyBackspace() tea.Msg {
	return tea.KeyMsg{Type: tea.KeyBackspace}
}

func typeRunes(t *testing.T, m Model, s string) Model {
	t.Helper()
	for _, r := range s {
		m = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func TestDownThreeTimesSelectsJob(t *testing.T) {
	m := newTestModel(t, Options{})

	if got := m.SelectedEntry().Label; got != "Home" {
		t.Fatalf("initial selection = %q, want Home", got)
	}

	m = press(t, m, keyDown(), keyDown(), keyDown())

	if got := m.SelectedEntry().Label; got != "Job" {
		t.Fatalf("selection after 3 downs = %q, want Job", got)
	}

	view := m.View()
	for _, want := range []string{
		"Check your current job",
		"Job title and salary",
		"Current tasks",
	} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q after selecting Job", want)
		}
	}
}

func TestMoveUpAtTopIsNoOp(t *testing.T) {
	m := newTestModel(t, Options{})

	m = press(t, m, keyUp(), keyUp())
	if got := m.SelectedEntry().Label; got != "Home" {
		t.Fatalf("selection = %q, want Home", got)
	}
}

func TestMoveDownAtBottomIsNoOp(t *testing.T) {
	m := newTestModel(t, Options{})

	downs := make([]tea.Msg, 0, 30)
	for i := 0; i < 30; i++ {
		downs = append(downs, keyDown())
	}
	m = press(t, m, downs...)

	if got := m.SelectedEntry().Label; got != "Rules" {
		t.Fatalf("selection = %q, want Rules", got)
	}

	m = press(t, m, keyDown())
	if got := m.SelectedEntry().Label; got != "Rules" {
		t.Fatalf("selection after extra down = %q, want Rules", got)
	}
}

func TestTypingAndBackspace(t *testing.T) {
	m := newTestModel(t, Options{})

	m = typeRunes(t, m, "abc")
	if got := m.InputValue(); got != "abc" {
		t.Fatalf("input = %q, want abc", got)
	}

	m = press(t, m, keyBackspace())
	if got := m.InputValue(); got != "ab" {
		t.Fatalf("input after backspace = %q, want ab", got)
	}
}

func TestBackspaceOnEmptyBufferIsNoOp(t *testing.T) {
	m := newTestModel(t, Options{})

	m = press(t, m, keyBackspace())
	if got := m.InputValue(); got != "" {
		t.Fatalf("input = %q, want empty", got)
	}
}

func TestAppendThenBackspaceRoundTrips(t *testing.T) {
	m := newTestModel(t, Options{})
	m = typeRunes(t, m, "xy")

	before := m.InputValue()
	m = typeRunes(t, m, "z")
	m = press(t, m, keyBackspace())

	if got := m.InputValue(); got != before {
		t.Fatalf("input = %q, want %q", got, before)
	}
}

func TestConfirmClearsInput(t *testing.T) {
	m := newTestModel(t, Options{})

	m = typeRunes(t, m, "hello world")
	m = press(t, m, keyEnter())
	if got := m.InputValue(); got != "" {
		t.Fatalf("input after enter = %q, want empty", got)
	}

	// Enter on an already-empty buffer stays empty.
	m = press(t, m, keyEnter())
	if got := m.InputValue(); got != "" {
		t.Fatalf("input after second enter = %q, want empty", got)
	}
}

func TestPrintableKeysDoNotMoveSelection(t *testing.T) {
	m := newTestModel(t, Options{})

	m = typeRunes(t, m, "jk")
	if got := m.SelectedEntry().Label; got != "Home" {
		t.Fatalf("selection = %q, want Home (j/k are input, not navigation)", got)
	}
	if got := m.InputValue(); got != "jk" {
		t.Fatalf("input = %q, want jk", got)
	}
}

func TestQuitKeys(t *testing.T) {
	for _, keyType := range []tea.KeyType{tea.KeyEsc, tea.KeyCtrlC} {
		m := newTestModel(t, Options{})
		_, cmd := m.Update(tea.KeyMsg{Type: keyType})
		if cmd == nil {
			t.Fatalf("key %v: cmd = nil, want quit", keyType)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Fatalf("key %v: cmd() = %T, want tea.QuitMsg", keyType, cmd())
		}
	}
}

func TestUnmappedLabelRendersFallback(t *testing.T) {
	m := newTestModel(t, Options{
		Entries: []nav.Entry{{Label: "Mystery", Category: nav.CategoryNormal}},
	})

	view := m.View()
	if !strings.Contains(view, "This page is under construction.") {
		t.Fatalf("view missing fallback info text")
	}
}

func TestCycleThemePersistsChoice(t *testing.T) {
	prefsPath := filepath.Join(t.TempDir(), "prefs.toml")
	m := newTestModel(t, Options{ThemeName: "Nightfox", PrefsPath: prefsPath})

	m = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlT})
	if m.theme.Name != "Kanagawa" {
		t.Fatalf("theme = %q, want Kanagawa", m.theme.Name)
	}

	saved := prefs.Load(prefsPath)
	if saved.Theme != "Kanagawa" {
		t.Fatalf("saved theme = %q, want Kanagawa", saved.Theme)
	}
}

func TestTickReschedules(t *testing.T) {
	m := newTestModel(t, Options{})
	_, cmd := m.Update(tickMsg{})
	if cmd == nil {
		t.Fatalf("tick returned nil cmd, want rescheduled tick")
	}
}

func TestViewBeforeReady(t *testing.T) {
	m := New(Options{})
	if got := m.View(); got != "Loading..." {
		t.Fatalf("View before ready = %q, want Loading...", got)
	}
}

func TestTinyWindowShowsResizeHint(t *testing.T) {
	sizes := []tea.WindowSizeMsg{
		{Width: 10, Height: 40},
		{Width: 120, Height: 5},
		{Width: 1, Height: 1},
		{Width: 0, Height: 0},
	}
	for _, size := range sizes {
		m := newTestModel(t, Options{})
		m = press(t, m, size)
		view := m.View()
		if !strings.Contains(view, "Terminal too small") {
			t.Fatalf("view at %dx%d missing resize hint", size.Width, size.Height)
		}
	}
}

func TestViewAtMinimumSize(t *testing.T) {
	m := newTestModel(t, Options{})
	m = press(t, m, tea.WindowSizeMsg{Width: MinWidth, Height: MinHeight})

	view := m.View()
	if strings.Contains(view, "Terminal too small") {
		t.Fatalf("view at minimum size shows resize hint")
	}
	if !strings.Contains(view, "Menu") {
		t.Fatalf("view at minimum size missing menu box")
	}
}

func TestTitledBoxClampsTinySizes(t *testing.T) {
	m := newTestModel(t, Options{})

	for _, dim := range []int{0, 1, 2} {
		if got := m.renderTitledBox("Info", "x", dim, dim, false); got == "" {
			t.Fatalf("renderTitledBox(%d, %d) produced no output", dim, dim)
		}
	}
}

func TestRunErrTreatsCancellationAsClean(t *testing.T) {
	cancelled, cancel := context.WithCancel(context.Background())
	cancel()

	if err := runErr(cancelled, errors.New("killed")); err != nil {
		t.Fatalf("runErr with cancelled context = %v, want nil", err)
	}
	if err := runErr(context.Background(), errors.New("boom")); err == nil {
		t.Fatalf("runErr with live context swallowed the error")
	}
	if err := runErr(cancelled, nil); err != nil {
		t.Fatalf("runErr with nil error = %v, want nil", err)
	}
}
