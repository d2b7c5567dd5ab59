package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// navItem is one bottom navigation destination
type navItem struct {
	control control
	label   string
}

var bottomNavItems = []navItem{
	{control: controlNavItemFirst, label: "test"},
	{control: controlNavItemSecond, label: "test 2"},
}

// bottomNavToast returns the toast raised when item is clicked
func bottomNavToast(item navItem) string {
	return "BottomNavigationItem " + item.label
}

// bottomNavigation renders the items evenly across width as two lines:
// icon row and label row. Items are never selected.
func bottomNavigation(width int, focused control, hasFocus bool) string {
	if len(bottomNavItems) == 0 || width <= 0 {
		return ""
	}

	slot := width / len(bottomNavItems)
	var icons, labels []string
	for i, item := range bottomNavItems {
		w := slot
		if i == len(bottomNavItems)-1 {
			w = width - slot*(len(bottomNavItems)-1)
		}
		style := bottomNavStyle
		if hasFocus && focused == item.control {
			style = bottomNavFocusedStyle
		}
		style = style.Width(w).Align(lipgloss.Center)
		icons = append(icons, style.Render("◆"))
		labels = append(labels, style.Render(FitCellContent(item.label, w)))
	}

	return strings.Join(icons, "") + "\n" + strings.Join(labels, "")
}
