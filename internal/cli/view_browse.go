package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/trailog/internal/cli/formatter"
	"github.com/alexanderramin/trailog/internal/domain"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// workoutsLoadedMsg carries the session's workouts into the browser.
type workoutsLoadedMsg struct {
	workouts []domain.Workout
}

type browseKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Center key.Binding
	Quit   key.Binding
}

func (k browseKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Center, k.Quit}
}

func (k browseKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func newBrowseKeyMap() browseKeyMap {
	return browseKeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Center: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "center on map")),
		Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// browseModel lists workouts and centers the map on the chosen one.
type browseModel struct {
	app      *App
	keys     browseKeyMap
	help     help.Model
	workouts []domain.Workout
	cursor   int
	centered domain.Workout
	loading  bool
	err      error
}

func newBrowseModel(app *App) *browseModel {
	return &browseModel{
		app:     app,
		keys:    newBrowseKeyMap(),
		help:    help.New(),
		loading: true,
	}
}

func (m *browseModel) Init() tea.Cmd {
	workouts := m.app.Workouts
	return func() tea.Msg {
		return workoutsLoadedMsg{workouts: workouts.Workouts()}
	}
}

func (m *browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case workoutsLoadedMsg:
		m.loading = false
		m.workouts = msg.workouts
		if m.cursor >= len(m.workouts) {
			m.cursor = max(len(m.workouts)-1, 0)
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.workouts)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Center):
			m.center()
		}
	}
	return m, nil
}

func (m *browseModel) center() {
	if m.cursor >= len(m.workouts) {
		return
	}
	w, err := m.app.Workouts.Select(context.Background(), m.workouts[m.cursor].ID())
	if err != nil {
		m.err = err
		m.centered = nil
		return
	}
	m.err = nil
	m.centered = w
}

func (m *browseModel) View() string {
	if m.loading {
		return formatter.Dim("Loading workouts...")
	}

	var b strings.Builder
	b.WriteString(formatter.Header("Workouts"))
	b.WriteString("\n")

	if len(m.workouts) == 0 {
		b.WriteString(formatter.Dim("No workouts yet. Log one with `trailog log`."))
		b.WriteString("\n")
	}
	for i, w := range m.workouts {
		pointer := "  "
		if i == m.cursor {
			pointer = formatter.StyleHeader.Render("▸ ")
		}
		metric, unit := formatter.Metric(w)
		line := fmt.Sprintf("%s %s  %s",
			formatter.KindIcon(w.Kind()),
			formatter.KindStyle(w.Kind()).Render(w.Description()),
			formatter.Dim(metric+" "+unit),
		)
		b.WriteString(pointer + line + "\n")
	}

	if m.err != nil {
		b.WriteString("\n" + formatter.StyleRed.Render(m.err.Error()) + "\n")
	}
	if m.centered != nil {
		b.WriteString("\n" + formatter.RenderBox("Centered", formatter.WorkoutDetail(m.centered, m.app.zoom())) + "\n")
	}

	b.WriteString("\n" + m.help.View(m.keys))
	return b.String()
}
