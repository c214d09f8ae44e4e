package tui

import "github.com/charmbracelet/lipgloss"

const (
	colorCorrect = "#04B575"
	colorError   = "#FF5F5F"
	colorPending = "#E5C07B"
	colorCursor  = "#FAFAFA"
	colorDim     = "#626262"
	colorTitle   = "#7D56F4"
)

var (
	titleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colorTitle)).
		MarginBottom(1)

	correctStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colorCorrect))

	incorrectStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colorCursor)).
		Background(lipgloss.Color(colorError))

	pendingStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colorPending)).
		Underline(true)

	cursorStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colorCursor)).
		Background(lipgloss.Color(colorTitle))

	untypedStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colorDim))

	statusStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colorDim)).
		MarginTop(1)

	doneStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colorCorrect)).
		MarginTop(1)
)
