package tui

import "strings"

// menuEntry is one row of a dropdown menu. Dividers are not selectable.
type menuEntry struct {
	label   string
	toast   string
	divider bool
}

var moreMenuEntries = []menuEntry{
	{label: "First Item", toast: "First item"},
	{label: "Second item", toast: "Second item"},
	{divider: true},
	{label: "Third item", toast: "Third item"},
	{divider: true},
	{label: "Fourth item", toast: "Fourth item"},
}

// dropdownMenu is a popup list anchored to the top bar's overflow icon
type dropdownMenu struct {
	entries  []menuEntry
	expanded bool
	cursor   int
}

func newDropdownMenu(entries []menuEntry) dropdownMenu {
	return dropdownMenu{entries: entries}
}

// Open expands the menu with the first item highlighted
func (d *dropdownMenu) Open() {
	d.expanded = true
	d.cursor = d.nextSelectable(-1, 1)
}

// Dismiss collapses the menu without selecting anything
func (d *dropdownMenu) Dismiss() {
	d.expanded = false
}

// Up moves the highlight to the previous item, skipping dividers
func (d *dropdownMenu) Up() {
	d.cursor = d.nextSelectable(d.cursor, -1)
}

// Down moves the highlight to the next item, skipping dividers
func (d *dropdownMenu) Down() {
	d.cursor = d.nextSelectable(d.cursor, 1)
}

// Select collapses the menu and returns the highlighted entry
func (d *dropdownMenu) Select() (menuEntry, bool) {
	if !d.expanded || d.cursor < 0 || d.cursor >= len(d.entries) {
		return menuEntry{}, false
	}
	d.expanded = false
	return d.entries[d.cursor], true
}

// nextSelectable walks from index in dir until it finds a non-divider.
// The cursor stays put at either end.
func (d *dropdownMenu) nextSelectable(from, dir int) int {
	for i := from + dir; i >= 0 && i < len(d.entries); i += dir {
		if !d.entries[i].divider {
			return i
		}
	}
	if from < 0 {
		return 0
	}
	return from
}

func (d dropdownMenu) View() string {
	width := 0
	for _, e := range d.entries {
		if len(e.label) > width {
			width = len(e.label)
		}
	}

	lines := make([]string, len(d.entries))
	for i, e := range d.entries {
		switch {
		case e.divider:
			lines[i] = menuDividerStyle.Render(strings.Repeat("─", width+2))
		case i == d.cursor:
			lines[i] = menuSelectedStyle.Render(" " + FitToWidth(e.label, width) + " ")
		default:
			lines[i] = menuItemStyle.Render(" " + FitToWidth(e.label, width) + " ")
		}
	}
	return menuStyle.Render(strings.Join(lines, "\n"))
}
