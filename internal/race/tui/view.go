package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Crazytieguy/type-harder/pkg/typing"
)

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(m.paragraph.ArticleTitle))
	b.WriteString("\n")
	b.WriteString(statusStyle.Render(fmt.Sprintf("%s — %s", m.paragraph.BookTitle, m.paragraph.SequenceTitle)))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().Width(m.width - 2).Render(m.renderTarget()))
	b.WriteString("\n")

	status := fmt.Sprintf("%d/%d words | %.0f WPM", m.engine.Words(), m.engine.TotalWords(), m.wpm())
	if m.reportErr != nil {
		status += " | progress update failed"
	}
	b.WriteString(statusStyle.Render(status))
	b.WriteString("\n")

	if m.engine.Finished() {
		b.WriteString(doneStyle.Render("Finished! Press enter to exit."))
		b.WriteString("\n")
	} else {
		b.WriteString(statusStyle.Render("Type the text above. Esc to quit."))
		b.WriteString("\n")
	}
	return b.String()
}

// renderTarget styles every target character by its engine state.
func (m Model) renderTarget() string {
	target := []rune(m.engine.Target())
	states := m.engine.States()

	var b strings.Builder
	for i, r := range target {
		ch := string(r)
		switch states[i] {
		case typing.StateCorrect:
			b.WriteString(correctStyle.Render(ch))
		case typing.StateIncorrect:
			b.WriteString(incorrectStyle.Render(ch))
		case typing.StatePending:
			b.WriteString(pendingStyle.Render(ch))
		case typing.StateCurrent:
			b.WriteString(cursorStyle.Render(ch))
		default:
			b.WriteString(untypedStyle.Render(ch))
		}
	}
	return b.String()
}
