package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	sapp "github.com/alexanderramin/stricto/internal/app"
	"github.com/alexanderramin/stricto/internal/domain"
)

type boardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Complete key.Binding
	Quit     key.Binding
}

var boardKeys = boardKeyMap{
	Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Complete: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "complete")),
	Quit:     key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
}

// boardModel is the interactive protocol board: cursor over today's tasks,
// enter marks the selected task complete through the completion service.
type boardModel struct {
	app    *App
	tasks  []domain.Task
	cursor int
	notice string
	err    error
}

func newBoardModel(a *App, tasks []domain.Task) *boardModel {
	return &boardModel{app: a, tasks: tasks}
}

func (m *boardModel) Init() tea.Cmd {
	return nil
}

type completedMsg struct {
	resp *sapp.CompleteResponse
	err  error
}

func (m *boardModel) completeSelected() tea.Cmd {
	task := m.tasks[m.cursor]
	return func() tea.Msg {
		resp, err := m.app.Completion.Complete(context.Background(), sapp.CompleteRequest{
			UserID: m.app.UserID,
			TaskID: task.ID,
		})
		return completedMsg{resp: resp, err: err}
	}
}

func (m *boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, boardKeys.Quit):
			return m, tea.Quit
		case key.Matches(msg, boardKeys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, boardKeys.Down):
			if m.cursor < len(m.tasks)-1 {
				m.cursor++
			}
		case key.Matches(msg, boardKeys.Complete):
			if !m.tasks[m.cursor].Completed {
				return m, m.completeSelected()
			}
		}
	case completedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.tasks[m.cursor].Completed = true
		m.notice = fmt.Sprintf("+%d pts (total %d, streak %d)",
			msg.resp.PointsAwarded, msg.resp.TotalPoints, msg.resp.Streak)
		for _, b := range msg.resp.NewBadges {
			m.notice += "  " + okStyle.Render("BADGE: "+b.Title)
		}
	}
	return m, nil
}

func (m *boardModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("TODAY'S PROTOCOL") + "\n\n")

	for i, task := range m.tasks {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(cursor + formatTaskLine(i+1, task))
	}

	if m.notice != "" {
		b.WriteString("\n" + m.notice + "\n")
	}
	if m.err != nil {
		b.WriteString("\n" + alertStyle.Render("error: "+m.err.Error()) + "\n")
	}
	b.WriteString(dimStyle.Render("\n↑/↓ move · enter complete · q quit\n"))
	return b.String()
}
