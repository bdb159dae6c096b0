package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"detective/internal/game/session"
)

const (
	echoPrefix  = "> "
	errorPrefix = "Error: "
	hintPrefix  = "   "
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowResize(msg)
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}
	return m, nil
}

func (m Model) handleWindowResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}
	if m.session.Phase() == session.Done {
		return m, tea.Quit
	}

	switch msg.Type {
	case tea.KeyEnter:
		return m.submit()

	case tea.KeyBackspace:
		if r := []rune(m.input); len(r) > 0 {
			m.input = string(r[:len(r)-1])
		}
		return m, nil

	case tea.KeySpace:
		m.input += " "
		return m, nil

	case tea.KeyRunes:
		m.input += string(msg.Runes)
		return m, nil
	}
	return m, nil
}

// submit sends the typed line to the session. Empty lines are sent too: they mean "no accusation".
func (m Model) submit() (tea.Model, tea.Cmd) {
	line := m.input
	m.input = ""
	m.messages = append(m.messages, echoPrefix+line)

	lines, err := m.session.Handle(m.ctx, line)
	if err != nil {
		m.err = err
		m.messages = append(m.messages, errorPrefix+err.Error())
		return m, tea.Quit
	}
	m.messages = append(m.messages, lines...)
	m.afterSessionOutput()
	return m, nil
}
