package tui

// control identifies a clickable element on the screen
type control int

const (
	controlNavIcon control = iota
	controlPlay
	controlLike
	controlMore
	controlCard
	controlButton
	controlScrollTop
	controlScrollEnd
	controlNavItemFirst
	controlNavItemSecond
	controlFAB
	controlCount
)

var controlNames = map[control]string{
	controlNavIcon:       "nav_icon",
	controlPlay:          "play_icon",
	controlLike:          "like_toggle",
	controlMore:          "more_icon",
	controlCard:          "photographer_card",
	controlButton:        "button",
	controlScrollTop:     "scroll_top",
	controlScrollEnd:     "scroll_end",
	controlNavItemFirst:  "bottom_nav_first",
	controlNavItemSecond: "bottom_nav_second",
	controlFAB:           "fab",
}

// String returns the name recorded by telemetry
func (c control) String() string {
	if name, ok := controlNames[c]; ok {
		return name
	}
	return "unknown"
}

// next returns the control after c in tab order, wrapping around
func (c control) next() control {
	return (c + 1) % controlCount
}

// prev returns the control before c in tab order, wrapping around
func (c control) prev() control {
	return (c + controlCount - 1) % controlCount
}
