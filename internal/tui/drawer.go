package tui

import "github.com/charmbracelet/lipgloss"

const drawerWidth = 28

// drawer is the side sheet holding a single text button
type drawer struct {
	open bool
}

func (d *drawer) Toggle() {
	d.open = !d.open
}

func (d *drawer) Close() {
	d.open = false
}

// View renders the sheet at the given height
func (d drawer) View(height int) string {
	content := lipgloss.JoinVertical(lipgloss.Left,
		dialogTitleStyle.Render("Drawer"),
		"",
		focusedButtonStyle.Render("Text button"),
		"",
		helpDescStyle.Render("enter: click • esc: close"),
	)
	inner := height - drawerStyle.GetVerticalBorderSize()
	if inner < 1 {
		inner = 1
	}
	return drawerStyle.Width(drawerWidth).Height(inner).Render(content)
}
