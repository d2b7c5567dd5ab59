package tui

import "github.com/charmbracelet/lipgloss"

// Terminal theme colors (ANSI 0-15)
// These adapt to the user's terminal color scheme
var (
	colorBlack       = lipgloss.Color("0")
	colorWhite       = lipgloss.Color("7")
	colorBrightBlack = lipgloss.Color("8")
	colorBrightWhite = lipgloss.Color("15")

	// Fixed palette for the tutorial surfaces
	colorPurple    = lipgloss.Color("#BB86FC") // app bar background
	colorRed       = lipgloss.Color("#E53935") // card and button surfaces
	colorLiked     = lipgloss.Color("#7BB661")
	colorLightGray = lipgloss.Color("#D3D3D3")
	colorNavBar    = lipgloss.Color("#6200EE")

	// Semantic aliases
	primaryColor = colorPurple
	dangerColor  = lipgloss.Color("1")
	successColor = lipgloss.Color("2")
	mutedColor   = colorBrightBlack
	fgColor      = colorWhite

	// Top app bar
	topBarStyle = lipgloss.NewStyle().
			Background(colorPurple).
			Foreground(colorBrightWhite)

	topBarTitleStyle = lipgloss.NewStyle().
				Background(colorPurple).
				Foreground(colorBrightWhite).
				Bold(true).
				Padding(0, 1)

	iconStyle = lipgloss.NewStyle().
			Background(colorPurple).
			Foreground(colorBrightWhite).
			Padding(0, 1)

	focusedIconStyle = lipgloss.NewStyle().
				Background(colorBrightWhite).
				Foreground(colorBlack).
				Padding(0, 1)

	// Card
	cardStyle = lipgloss.NewStyle().
			Background(colorRed).
			Foreground(colorBrightWhite).
			Padding(1, 2).
			Margin(0, 1)

	focusedCardStyle = cardStyle.
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorBrightWhite).
				Padding(0, 1)

	avatarStyle = lipgloss.NewStyle().
			Background(colorRed).
			Foreground(colorLightGray)

	cardTitleStyle = lipgloss.NewStyle().
			Background(colorRed).
			Foreground(colorBrightWhite).
			Bold(true)

	cardSubtitleStyle = lipgloss.NewStyle().
				Background(colorRed).
				Foreground(colorLightGray)

	// Buttons
	buttonStyle = lipgloss.NewStyle().
			Background(colorRed).
			Foreground(colorBrightWhite).
			Padding(0, 2)

	focusedButtonStyle = buttonStyle.
				Background(colorBrightWhite).
				Foreground(colorRed).
				Bold(true)

	listButtonStyle = lipgloss.NewStyle().
			Background(colorNavBar).
			Foreground(colorBrightWhite).
			Padding(0, 2)

	focusedListButtonStyle = listButtonStyle.
				Background(colorBrightWhite).
				Foreground(colorNavBar).
				Bold(true)

	// List rows
	listItemStyle = lipgloss.NewStyle().
			Foreground(fgColor)

	listCursorStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true)

	// Bottom navigation (items are never selected, so labels stay dimmed)
	bottomNavStyle = lipgloss.NewStyle().
			Background(colorNavBar).
			Foreground(colorLightGray)

	bottomNavFocusedStyle = lipgloss.NewStyle().
				Background(colorBrightWhite).
				Foreground(colorNavBar).
				Bold(true)

	// Floating action button
	fabStyle = lipgloss.NewStyle().
			Background(colorPurple).
			Foreground(colorBlack).
			Bold(true).
			Padding(0, 1)

	focusedFabStyle = fabStyle.
			Background(colorBrightWhite)

	// Drawer
	drawerStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, true, false, false).
			BorderForeground(mutedColor).
			Padding(1, 2)

	// Dropdown menu
	menuStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(mutedColor).
			Padding(0, 1)

	menuItemStyle = lipgloss.NewStyle().
			Foreground(fgColor)

	menuSelectedStyle = lipgloss.NewStyle().
				Background(colorBrightBlack).
				Foreground(colorBrightWhite).
				Bold(true)

	menuDividerStyle = lipgloss.NewStyle().
				Foreground(mutedColor)

	// Status bar (no background - uses terminal default)
	statusBarStyle = lipgloss.NewStyle().
			Foreground(fgColor)

	// Modal/dialog styles
	dialogStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primaryColor).
			Padding(1, 2)

	dialogTitleStyle = lipgloss.NewStyle().
				Foreground(primaryColor).
				Bold(true)

	// Toasts
	errorStyle = lipgloss.NewStyle().
			Foreground(dangerColor).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(successColor).
			Bold(true)

	mutedStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	// Help key style
	helpKeyStyle = lipgloss.NewStyle().
			Foreground(primaryColor)

	helpDescStyle = lipgloss.NewStyle().
			Foreground(fgColor)
)
