package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const topBarTitle = "Page title"

// topBar is the app bar: navigation icon, title and action icons.
// It owns the like toggle and the overflow menu.
type topBar struct {
	liked bool
	menu  dropdownMenu
}

func newTopBar() topBar {
	return topBar{
		liked: true,
		menu:  newDropdownMenu(moreMenuEntries),
	}
}

// ToggleLike flips the like state and returns the toast to show
func (b *topBar) ToggleLike() string {
	b.liked = !b.liked
	if b.liked {
		return "Liked"
	}
	return "Unliked"
}

// View renders the bar across width columns. focused is highlighted.
func (b topBar) View(width int, focused control, hasFocus bool) string {
	icon := func(c control, glyph string, tint lipgloss.TerminalColor) string {
		style := iconStyle
		if hasFocus && focused == c {
			style = focusedIconStyle
		}
		if tint != nil {
			style = style.Foreground(tint)
		}
		return style.Render(glyph)
	}

	likeTint := colorLightGray
	if b.liked {
		likeTint = colorLiked
	}

	nav := icon(controlNavIcon, "⌂", nil)
	actions := icon(controlPlay, "▶", nil) +
		icon(controlLike, "♥", likeTint) +
		icon(controlMore, "⋮", nil)

	titleWidth := width - lipgloss.Width(nav) - lipgloss.Width(actions)
	if titleWidth < 0 {
		titleWidth = 0
	}
	title := topBarTitleStyle.Render(FitCellContent(topBarTitle, max(titleWidth-2, 0)))
	gap := titleWidth - lipgloss.Width(title)
	if gap < 0 {
		gap = 0
	}

	return nav + title + topBarStyle.Render(strings.Repeat(" ", gap)) + actions
}

// menuAnchor returns the column where the dropdown should open so its
// right edge lines up with the overflow icon
func (b topBar) menuAnchor(width int) int {
	x := width - lipgloss.Width(b.menu.View())
	if x < 0 {
		return 0
	}
	return x
}
