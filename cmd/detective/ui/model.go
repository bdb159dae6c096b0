// Package ui is the full-screen terminal interface over a game session.
package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"detective/internal/game/session"
	"detective/internal/text"
)

type Model struct {
	messages []string
	input    string
	width    int
	height   int
	ctx      context.Context
	session  *session.Session
	err      error
}

// NewModel starts s and shows its opening lines.
func NewModel(ctx context.Context, s *session.Session) Model {
	m := Model{
		ctx:     ctx,
		session: s,
	}
	m.messages = append(m.messages, s.Start(ctx)...)
	m.afterSessionOutput()
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

// Err is the session error that stopped the interface, if any.
func (m Model) Err() error {
	return m.err
}

func (m *Model) afterSessionOutput() {
	if m.session.Phase() == session.Done {
		m.messages = append(m.messages, "", hintPrefix+text.PressAnyKey())
	}
}
