// Package tui implements an interactive viewer that steps a solve one
// deduction pass at a time.
package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tfpf/solve-sudoku/internal/board"
	"github.com/tfpf/solve-sudoku/internal/render"
	"github.com/tfpf/solve-sudoku/internal/solver"
)

const autoplayInterval = 150 * time.Millisecond

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8")).
			Margin(1, 0, 0, 0)

	solvedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00FF00")).
			Bold(true)

	gaveUpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF0000")).
			Bold(true)
)

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(autoplayInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Model steps a solver pass by pass and renders the board after each pass,
// highlighting the cells the latest pass filled in.
type Model struct {
	puzzle *board.Board
	solver *solver.Solver
	KeyMap KeyMap

	marks         map[int]bool
	auto          bool
	width, height int
	startTime     time.Time
}

// New creates a viewer for the given puzzle. The puzzle is kept aside
// untouched so the solve can be restarted with a fresh seed.
func New(puzzle *board.Board, seed int64, width, height int) Model {
	return Model{
		puzzle:    puzzle.Clone(),
		solver:    solver.New(puzzle, &solver.Options{Seed: seed}),
		KeyMap:    Keys,
		width:     width,
		height:    height,
		startTime: time.Now(),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.KeyMap.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.KeyMap.Step):
			m.step()

		case key.Matches(msg, m.KeyMap.Auto):
			m.auto = !m.auto
			if m.auto {
				return m, tick()
			}

		case key.Matches(msg, m.KeyMap.Restart):
			m.restart()
		}

	case tickMsg:
		if m.auto {
			m.step()
			if st := m.solver.State(); st == solver.StateDone || st == solver.StateGaveUp {
				m.auto = false
			} else {
				return m, tick()
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	return m, nil
}

// step runs one deduction pass and records which cells it filled.
func (m *Model) step() {
	before := m.solver.Board.Clone()
	m.solver.Step()

	marks := make(map[int]bool)
	for pos := 0; pos < board.CellCount; pos++ {
		if before.Get(pos) != m.solver.Board.Get(pos) {
			marks[pos] = true
		}
	}
	m.marks = marks
}

// restart discards progress and begins a fresh solve with a new seed.
func (m *Model) restart() {
	m.solver = solver.New(m.puzzle, &solver.Options{Seed: time.Now().UnixNano()})
	m.marks = nil
	m.auto = false
	m.startTime = time.Now()
}

func (m Model) View() string {
	title := titleStyle.Render("solve-sudoku")
	grid := render.GridMarked(m.solver.Board, m.marks)

	status := fmt.Sprintf("state: %s  passes: %d  empty: %d",
		m.solver.State(), m.solver.Passes(), m.solver.Board.EmptyCount())

	var verdict string
	switch m.solver.Outcome() {
	case solver.OutcomeSolved:
		elapsed := time.Since(m.startTime).Round(time.Millisecond)
		verdict = solvedStyle.Render(fmt.Sprintf("Solved in %d passes (%s)", m.solver.Passes(), elapsed))
	case solver.OutcomeGaveUp:
		verdict = gaveUpStyle.Render("Gave up: deduction stalled twice in a row")
	case solver.OutcomeDefect:
		verdict = gaveUpStyle.Render("Defect: board completed but failed validation")
	}

	help := statusStyle.Render("space/n next pass • a autoplay • r restart • q quit")

	view := lipgloss.JoinVertical(lipgloss.Center, title, "", grid, status, verdict, help)
	if m.width == 0 || m.height == 0 {
		return view
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, view)
}
