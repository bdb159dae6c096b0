package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	inputHeight := 3
	chatHeight := m.height - inputHeight
	rightWidth := m.width

	messageStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("7"))

	userStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("12")).
		Bold(true)

	errorStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("9"))

	hintStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Italic(true)

	promptStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("6"))

	inputStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("8")).
		Padding(0, 1).
		Width(max(m.width-4, 1))

	chatPanel := lipgloss.NewStyle().
		Width(rightWidth).
		Height(max(chatHeight, 1)).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("8")).
		Padding(1)

	contentWidth := rightWidth - 4

	var lines []string
	for _, message := range m.messages {
		switch {
		case message == "":
			lines = append(lines, "")
		case strings.HasPrefix(message, echoPrefix):
			lines = append(lines, userStyle.Render(wrapAndIndent(message, contentWidth, " ")))
		case strings.HasPrefix(message, errorPrefix):
			lines = append(lines, errorStyle.Render(wrapAndIndent(message, contentWidth, " ")))
		case strings.HasPrefix(message, hintPrefix):
			lines = append(lines, hintStyle.Render(wrapAndIndent(strings.TrimSpace(message), contentWidth, " ")))
		default:
			lines = append(lines, messageStyle.Render(wrapAndIndent(message, contentWidth, " ")))
		}
	}

	maxLines := max(chatHeight-2, 1)
	var chatContent strings.Builder
	visible := strings.Split(strings.Join(lines, "\n"), "\n")
	if len(visible) > maxLines {
		visible = visible[len(visible)-maxLines:]
	}
	for i := len(visible); i < maxLines; i++ {
		chatContent.WriteString("\n")
	}
	chatContent.WriteString(strings.Join(visible, "\n"))

	chat := chatPanel.Render(chatContent.String())
	input := inputStyle.Render(promptStyle.Render(m.session.Prompt()) + m.input + "│")

	return chat + "\n" + input
}

func wrapAndIndent(text string, width int, indent string) string {
	if width <= 0 || lipgloss.Width(text) <= width {
		return indent + text
	}

	var result strings.Builder
	words := strings.Fields(text)
	if len(words) == 0 {
		return indent + text
	}

	currentLine := indent + words[0]

	for _, word := range words[1:] {
		if lipgloss.Width(currentLine)+1+lipgloss.Width(word) <= width {
			currentLine += " " + word
		} else {
			result.WriteString(currentLine + "\n")
			currentLine = indent + word
		}
	}

	result.WriteString(currentLine)
	return result.String()
}
