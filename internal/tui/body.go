package tui

import "github.com/charmbracelet/lipgloss"

// photographerCard renders the avatar placeholder with name and timestamp
func photographerCard(focused bool) string {
	avatar := avatarStyle.Render("╭──╮\n╰──╯")
	text := lipgloss.JoinVertical(lipgloss.Left,
		cardTitleStyle.Render("Hello Vinc"),
		cardSubtitleStyle.Render("3 minutes ago"),
	)
	row := lipgloss.JoinHorizontal(lipgloss.Center, avatar, avatarStyle.Render("  "), text)

	if focused {
		return focusedCardStyle.Render(row)
	}
	return cardStyle.Render(row)
}

// imageButton renders the red button with its leading icon
func imageButton(focused bool) string {
	if focused {
		return focusedButtonStyle.Render("▣ Button")
	}
	return buttonStyle.Render("▣ Button")
}

// listButtons renders the scroll-to-top and scroll-to-end pair
func listButtons(focused control, hasFocus bool) string {
	button := func(c control, label string) string {
		if hasFocus && focused == c {
			return focusedListButtonStyle.Render(label)
		}
		return listButtonStyle.Render(label)
	}
	return button(controlScrollTop, "Scroll to the top") + " " + button(controlScrollEnd, "Scroll to the end")
}

// floatingActionButton renders the FAB glyph
func floatingActionButton(focused bool) string {
	if focused {
		return focusedFabStyle.Render("+")
	}
	return fabStyle.Render("+")
}
