package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"autocase/internal/model"
)

func sampleCases() []model.TestCase {
	checkout := model.TestCase{
		ID:             "tc-1",
		TestName:       "Checkout flow",
		ChangeType:     "new",
		UserFrequency:  5,
		BusinessImpact: 5,
		AffectedAreas:  4,
		IsLegal:        true,
		EasyToAutomate: 5, QuickToAutomate: 5,
	}
	checkout.Recompute()

	settings := model.TestCase{
		ID:             "tc-2",
		TestName:       "Settings rename",
		ChangeType:     "modified-ui",
		UserFrequency:  3,
		BusinessImpact: 3,
		AffectedAreas:  2,
		EasyToAutomate: 3, QuickToAutomate: 3,
	}
	settings.Recompute()

	legacy := model.TestCase{
		ID:             "tc-3",
		TestName:       "Legacy banner",
		ChangeType:     "unchanged",
		UserFrequency:  1,
		BusinessImpact: 1,
		AffectedAreas:  1,
		Implementation: "custom",
	}
	legacy.Recompute()

	return []model.TestCase{checkout, settings, legacy}
}

func TestBoardModel_BucketsByRecommendation(t *testing.T) {
	board := NewBoardModel(sampleCases())

	if got := len(board.automate.Items()); got != 1 {
		t.Errorf("Expected 1 case in automate column, got %d", got)
	}
	if got := len(board.maybe.Items()); got != 1 {
		t.Errorf("Expected 1 case in maybe column, got %d", got)
	}
	if got := len(board.dont.Items()); got != 1 {
		t.Errorf("Expected 1 case in don't column, got %d", got)
	}

	item := board.automate.Items()[0].(CaseItem)
	if item.Name != "Checkout flow" {
		t.Errorf("Expected highest scorer in automate column, got %q", item.Name)
	}
}

func TestBoardModel_ViewColumns(t *testing.T) {
	board := NewBoardModel(sampleCases())
	updated, _ := board.Update(tea.WindowSizeMsg{Width: 120, Height: 30})
	board = updated.(BoardModel)

	view := board.View()

	for _, want := range []string{"Automate", "Maybe", "Don't automate", "Checkout flow", "Settings rename", "Legacy banner"} {
		if !strings.Contains(view, want) {
			t.Errorf("Expected %q in board view", want)
		}
	}
}

func TestBoardModel_FocusCycling(t *testing.T) {
	board := NewBoardModel(sampleCases())

	updated, _ := board.Update(tea.KeyMsg{Type: tea.KeyTab})
	board = updated.(BoardModel)
	if board.focused != 1 {
		t.Errorf("Expected focus on column 1 after tab, got %d", board.focused)
	}

	updated, _ = board.Update(tea.KeyMsg{Type: tea.KeyTab})
	board = updated.(BoardModel)
	updated, _ = board.Update(tea.KeyMsg{Type: tea.KeyTab})
	board = updated.(BoardModel)
	if board.focused != 0 {
		t.Errorf("Expected focus to wrap back to column 0, got %d", board.focused)
	}

	updated, _ = board.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	board = updated.(BoardModel)
	if board.focused != 2 {
		t.Errorf("Expected shift+tab to wrap to column 2, got %d", board.focused)
	}
}

func TestBoardModel_EnterSelectsCase(t *testing.T) {
	board := NewBoardModel(sampleCases())
	updated, _ := board.Update(tea.WindowSizeMsg{Width: 120, Height: 30})
	board = updated.(BoardModel)

	updated, cmd := board.Update(tea.KeyMsg{Type: tea.KeyEnter})
	board = updated.(BoardModel)

	if board.SelectedCase == nil {
		t.Fatal("Expected a selected case after enter")
	}
	if board.SelectedCase.ID != "tc-1" {
		t.Errorf("Expected tc-1 selected, got %q", board.SelectedCase.ID)
	}
	if cmd == nil {
		t.Error("Expected quit command after selection")
	}
}

func TestBoardModel_Quit(t *testing.T) {
	board := NewBoardModel(sampleCases())

	updated, cmd := board.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	board = updated.(BoardModel)

	if !board.Quitting {
		t.Error("Expected quitting state after 'q'")
	}
	if cmd == nil {
		t.Error("Expected quit command on 'q' keypress")
	}
	if board.View() != "" {
		t.Error("Expected empty view while quitting")
	}
}
