package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/potkit/potview/internal/pot"
)

// PotEntry pairs a resolved pot configuration with its live run state.
type PotEntry struct {
	Conf    pot.Conf
	Running bool
}

// potItem implements list.Item for pot display
type potItem struct {
	entry PotEntry
}

func (i potItem) Title() string {
	return i.entry.Conf.Name
}

func (i potItem) Description() string {
	statusIcon := "●"
	status := "stopped"
	if i.entry.Running {
		statusIcon = "✓"
		status = "running"
	}

	addr := "-"
	if i.entry.Conf.IPAddr != nil {
		addr = i.entry.Conf.IPAddr.String()
	}

	return fmt.Sprintf("%s %s | %s | %s", statusIcon, status, i.entry.Conf.NetworkType, addr)
}

func (i potItem) FilterValue() string {
	return i.entry.Conf.Name
}

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			MarginBottom(1)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true)
)

// Model is the bubbletea model for the pot picker
type Model struct {
	list     list.Model
	selected *PotEntry
	quitting bool
	width    int
	height   int
}

// NewPicker creates a new pot picker
func NewPicker(entries []PotEntry) Model {
	items := make([]list.Item, len(entries))
	for i, entry := range entries {
		items[i] = potItem{entry: entry}
	}

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = selectedStyle
	delegate.Styles.SelectedDesc = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	l := list.New(items, delegate, 80, 20)
	l.Title = "potview - Select Pot"
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = titleStyle

	return Model{
		list: l,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width, msg.Height-4)
		return m, nil

	case tea.KeyMsg:
		// Don't handle keys if filtering
		if m.list.FilterState() == list.Filtering {
			break
		}

		switch msg.String() {
		case "enter":
			if item, ok := m.list.SelectedItem().(potItem); ok {
				entry := item.entry
				m.selected = &entry
				m.quitting = true
				return m, tea.Quit
			}

		case "q", "esc":
			m.quitting = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	help := helpStyle.Render("[enter] Select  [/] Filter  [q] Quit")

	return m.list.View() + "\n" + help
}

// Selected returns the entry chosen by the user, or nil if none was.
func (m Model) Selected() *PotEntry {
	return m.selected
}

// RunPicker runs the interactive pot picker. It returns nil without error
// when the user quits without selecting.
func RunPicker(entries []PotEntry) (*PotEntry, error) {
	if len(entries) == 0 {
		return nil, nil
	}

	m := NewPicker(entries)
	p := tea.NewProgram(m, tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	return finalModel.(Model).Selected(), nil
}
