package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"autocase/internal/model"
	"autocase/internal/scoring"
)

// CaseItem is one test case as shown on the triage board.
type CaseItem struct {
	ID         string
	Name       string
	ChangeType string
	Total      int
	Notes      string
}

func (i CaseItem) Title() string       { return fmt.Sprintf("[%d] %s", i.Total, i.Name) }
func (i CaseItem) Description() string { return i.ChangeType }
func (i CaseItem) FilterValue() string { return i.Name }

// BoardModel is a three-column triage board: one column per recommendation
// bucket. Enter selects a case for the detail view the caller renders after
// the program exits.
type BoardModel struct {
	automate list.Model
	maybe    list.Model
	dont     list.Model
	focused  int // 0: automate, 1: maybe, 2: don't

	SelectedCase *CaseItem
	Quitting     bool
	Width        int
	Height       int
}

// NewBoardModel buckets the cases by recommendation and builds the columns.
func NewBoardModel(cases []model.TestCase) BoardModel {
	var automate, maybe, dont []CaseItem
	for _, tc := range SortByTotal(cases) {
		item := CaseItem{
			ID:         tc.ID,
			Name:       tc.TestName,
			ChangeType: string(tc.ChangeType),
			Total:      tc.Scores.Total,
			Notes:      tc.Notes,
		}
		switch tc.Recommendation {
		case scoring.Automate:
			automate = append(automate, item)
		case scoring.Maybe:
			maybe = append(maybe, item)
		default:
			dont = append(dont, item)
		}
	}

	delegate := list.NewDefaultDelegate()

	lAutomate := list.New(itemsToInterface(automate), delegate, 0, 0)
	lAutomate.Title = "Automate"
	lAutomate.SetShowHelp(false)

	lMaybe := list.New(itemsToInterface(maybe), delegate, 0, 0)
	lMaybe.Title = "Maybe"
	lMaybe.SetShowHelp(false)

	lDont := list.New(itemsToInterface(dont), delegate, 0, 0)
	lDont.Title = "Don't automate"
	lDont.SetShowHelp(false)

	return BoardModel{
		automate: lAutomate,
		maybe:    lMaybe,
		dont:     lDont,
		focused:  0,
	}
}

func itemsToInterface(items []CaseItem) []list.Item {
	res := make([]list.Item, len(items))
	for i, it := range items {
		res[i] = it
	}
	return res
}

func (m BoardModel) Init() tea.Cmd {
	return nil
}

func (m BoardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.Quitting = true
			return m, tea.Quit
		case "tab", "right", "l":
			m.focused = (m.focused + 1) % 3
			return m, nil
		case "shift+tab", "left", "h":
			m.focused--
			if m.focused < 0 {
				m.focused = 2
			}
			return m, nil
		case "enter":
			if i := m.focusedList().SelectedItem(); i != nil {
				c := i.(CaseItem)
				m.SelectedCase = &c
				m.Quitting = true
				return m, tea.Quit
			}
		}

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		columnWidth := msg.Width/3 - 4
		m.automate.SetSize(columnWidth, msg.Height-4)
		m.maybe.SetSize(columnWidth, msg.Height-4)
		m.dont.SetSize(columnWidth, msg.Height-4)
	}

	// Update focused list
	switch m.focused {
	case 0:
		m.automate, cmd = m.automate.Update(msg)
	case 1:
		m.maybe, cmd = m.maybe.Update(msg)
	default:
		m.dont, cmd = m.dont.Update(msg)
	}
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m *BoardModel) focusedList() *list.Model {
	switch m.focused {
	case 0:
		return &m.automate
	case 1:
		return &m.maybe
	default:
		return &m.dont
	}
}

func (m BoardModel) View() string {
	if m.Quitting {
		return ""
	}

	automateView := m.automate.View()
	maybeView := m.maybe.View()
	dontView := m.dont.View()

	switch m.focused {
	case 0:
		automateView = focusedStyle.Render(automateView)
		maybeView = columnStyle.Render(maybeView)
		dontView = columnStyle.Render(dontView)
	case 1:
		automateView = columnStyle.Render(automateView)
		maybeView = focusedStyle.Render(maybeView)
		dontView = columnStyle.Render(dontView)
	default:
		automateView = columnStyle.Render(automateView)
		maybeView = columnStyle.Render(maybeView)
		dontView = focusedStyle.Render(dontView)
	}

	board := lipgloss.JoinHorizontal(lipgloss.Top, automateView, maybeView, dontView)
	help := boardHelpStyle.Render("tab/←→: switch column • enter: inspect • q: quit")
	return board + "\n" + help
}
