package admintab

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"admintab/style"
)

// RenderFooter renders a footer with the row position, if any, and who is
// connected where.
func RenderFooter(position, operator, backend string, width int) string {

	left := position
	right := backend
	if operator != "" {
		right = fmt.Sprintf("%s@%s", operator, backend)
	}

	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}

	return style.MutedStyle.Render(left + strings.Repeat(" ", padding) + right)
}

// Position formats a 1-based row position.
func Position(current, total int) string {
	return fmt.Sprintf("%d/%d", current, total)
}

// RenderAlert renders an error in place of the footer.
func RenderAlert(msg string, width int) string {
	return style.AlertStyle.MaxWidth(width).Render(msg)
}
