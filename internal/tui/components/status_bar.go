package components

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	statusBarStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Background(lipgloss.Color("236")).
		Padding(0, 1)
)

// StatusBar represents the status bar component
type StatusBar struct {
	width   int
	message string
}

// NewStatusBar creates a new status bar
func NewStatusBar() *StatusBar {
	return &StatusBar{}
}

// SetWidth sets the width of the status bar
func (sb *StatusBar) SetWidth(width int) {
	sb.width = width
}

// SetMessage sets a transient message shown instead of the key hints
func (sb *StatusBar) SetMessage(message string) {
	sb.message = message
}

// View renders the status bar
func (sb *StatusBar) View() string {
	hints := "q:quit h/l:prev/next day t:today r:refresh"
	if sb.message != "" {
		hints = sb.message
	}

	// Truncate if too long
	if len(hints) > sb.width-2 && sb.width > 5 {
		hints = hints[:sb.width-5] + "..."
	}

	return statusBarStyle.Width(sb.width).Render(hints)
}
