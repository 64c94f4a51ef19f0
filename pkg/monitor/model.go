// Package monitor implements the interactive feature-toggle dashboard.
package monitor

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/marcus/ft/internal/buildcfg"
	"github.com/marcus/ft/internal/features"
)

// Row is one display line: either a category header or a feature with its
// resolved state.
type Row struct {
	Header  string // non-empty for category header rows
	Feature features.Feature
	Enabled bool
	Source  features.Source
}

// Model is the Bubble Tea model for the toggle dashboard
type Model struct {
	Svc *features.Service
	Cfg buildcfg.Config

	// Window dimensions
	Width  int
	Height int

	// Flattened rows (headers + features) honoring the current filter
	Rows   []Row
	Cursor int // index into Rows; always on a feature row when any exist

	// Search state
	SearchMode  bool
	SearchInput textinput.Model

	Status string // last action feedback, shown in the footer
	Err    error  // last store error, if any

	quitting bool
}

// New builds the dashboard model and loads the initial rows.
func New(svc *features.Service, cfg buildcfg.Config) Model {
	input := textinput.New()
	input.Placeholder = "filter features"
	input.CharLimit = 64
	input.Width = 32

	m := Model{
		Svc:         svc,
		Cfg:         cfg,
		SearchInput: input,
	}
	m.refresh()
	return m
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// refresh rebuilds the row list from the registry and current store state,
// applying the search filter, and clamps the cursor onto a feature row.
func (m *Model) refresh() {
	filter := m.SearchInput.Value()

	var rows []Row
	for _, category := range features.Categories() {
		var section []Row
		for _, feature := range features.ByCategory(category) {
			if !matchesFilter(feature, filter) {
				continue
			}
			enabled, source := features.Resolve(feature, m.Cfg, m.Svc)
			section = append(section, Row{Feature: feature, Enabled: enabled, Source: source})
		}
		if len(section) == 0 {
			continue
		}
		rows = append(rows, Row{Header: category.Label()})
		rows = append(rows, section...)
	}
	m.Rows = rows
	m.clampCursor()
}

func matchesFilter(f features.Feature, filter string) bool {
	if filter == "" {
		return true
	}
	return containsFold(f.ID, filter) || containsFold(f.Name, filter)
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// clampCursor moves the cursor to the nearest feature row, or 0 when empty.
func (m *Model) clampCursor() {
	if len(m.Rows) == 0 {
		m.Cursor = 0
		return
	}
	if m.Cursor >= len(m.Rows) {
		m.Cursor = len(m.Rows) - 1
	}
	if m.Cursor < 0 {
		m.Cursor = 0
	}
	if m.Rows[m.Cursor].Header == "" {
		return
	}
	// Sitting on a header: prefer the next feature row, else the previous
	for i := m.Cursor + 1; i < len(m.Rows); i++ {
		if m.Rows[i].Header == "" {
			m.Cursor = i
			return
		}
	}
	for i := m.Cursor - 1; i >= 0; i-- {
		if m.Rows[i].Header == "" {
			m.Cursor = i
			return
		}
	}
}

func (m *Model) moveCursor(delta int) {
	if len(m.Rows) == 0 {
		return
	}
	i := m.Cursor
	for {
		i += delta
		if i < 0 || i >= len(m.Rows) {
			return // stay put at the edge
		}
		if m.Rows[i].Header == "" {
			m.Cursor = i
			return
		}
	}
}

// current returns the feature under the cursor.
func (m *Model) current() (features.Feature, bool) {
	if m.Cursor < 0 || m.Cursor >= len(m.Rows) {
		return features.Feature{}, false
	}
	row := m.Rows[m.Cursor]
	if row.Header != "" {
		return features.Feature{}, false
	}
	return row.Feature, true
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.SearchMode {
			return m.updateSearch(msg)
		}
		return m.updateMain(msg)
	}

	return m, nil
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.SearchMode = false
		m.SearchInput.Blur()
		return m, nil
	case "esc":
		m.SearchMode = false
		m.SearchInput.Blur()
		m.SearchInput.SetValue("")
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	m.SearchInput, cmd = m.SearchInput.Update(msg)
	m.refresh()
	return m, cmd
}

func (m Model) updateMain(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.Status = ""

	switch msg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "j", "down":
		m.moveCursor(1)
	case "k", "up":
		m.moveCursor(-1)
	case "g", "home":
		m.Cursor = 0
		m.clampCursor()
	case "G", "end":
		m.Cursor = len(m.Rows) - 1
		m.clampCursor()

	case "/":
		m.SearchMode = true
		m.SearchInput.Focus()

	case "esc":
		if m.SearchInput.Value() != "" {
			m.SearchInput.SetValue("")
			m.refresh()
		}

	case " ", "enter", "t":
		m.toggleCurrent()

	case "u":
		m.unsetCurrent()

	case "R":
		if err := m.Svc.ResetAll(); err != nil {
			m.Err = err
		} else {
			m.Status = "all toggles removed"
		}
		m.refresh()
	}

	return m, nil
}

func (m *Model) toggleCurrent() {
	feature, ok := m.current()
	if !ok {
		return
	}
	if locked, reason := m.locked(feature); locked {
		m.Status = reason
		return
	}

	next, err := m.Svc.Toggle(feature.ID)
	if err != nil {
		m.Err = err
		return
	}
	m.Err = nil
	if next {
		m.Status = feature.ID + " enabled"
	} else {
		m.Status = feature.ID + " disabled"
	}
	m.refresh()
}

func (m *Model) unsetCurrent() {
	feature, ok := m.current()
	if !ok {
		return
	}
	if err := m.Svc.Unset(feature.ID); err != nil {
		m.Err = err
		return
	}
	m.Err = nil
	m.Status = feature.ID + " reset to default"
	m.refresh()
}

// locked reports whether toggling the feature cannot change its resolved
// state, with a footer message explaining why.
func (m *Model) locked(f features.Feature) (bool, string) {
	if !f.RuntimeToggle {
		return true, f.ID + " does not honor runtime toggles"
	}
	if m.Cfg.Restricted && f.BuildFlag != "" {
		return true, f.ID + " is build-gated in this restricted build"
	}
	return false, ""
}
