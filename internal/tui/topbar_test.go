package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func TestTopBar_ViewFillsWidth(t *testing.T) {
	for _, width := range []int{20, 40, 120} {
		b := newTopBar()
		out := b.View(width, controlNavIcon, false)
		if got := lipgloss.Width(out); got != width {
			t.Errorf("View(%d) width = %d", width, got)
		}
		if strings.Contains(out, "\n") {
			t.Errorf("View(%d) spans multiple lines", width)
		}
	}
}

func TestTopBar_ViewShowsTitleAndIcons(t *testing.T) {
	out := ansi.Strip(newTopBar().View(60, controlNavIcon, false))
	for _, want := range []string{"⌂", "Page title", "▶", "♥", "⋮"} {
		if !strings.Contains(out, want) {
			t.Errorf("View() missing %q: %q", want, out)
		}
	}
}

func TestTopBar_ToggleLike(t *testing.T) {
	b := newTopBar()
	want := []string{"Unliked", "Liked", "Unliked"}
	for i, w := range want {
		if got := b.ToggleLike(); got != w {
			t.Errorf("toggle %d = %q, want %q", i, got, w)
		}
	}
}

func TestBottomNavigation(t *testing.T) {
	out := bottomNavigation(41, controlNavItemFirst, true)
	lines := strings.Split(ansi.Strip(out), "\n")
	if len(lines) != 2 {
		t.Fatalf("bottomNavigation() has %d lines, want 2", len(lines))
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w != 41 {
			t.Errorf("line %d width = %d, want 41", i, w)
		}
	}
	if !strings.Contains(lines[1], "test 2") {
		t.Errorf("labels = %q, want test 2", lines[1])
	}
	if got := bottomNavToast(bottomNavItems[1]); got != "BottomNavigationItem test 2" {
		t.Errorf("bottomNavToast() = %q", got)
	}
}

func TestControl_TabOrderWraps(t *testing.T) {
	if got := controlFAB.next(); got != controlNavIcon {
		t.Errorf("controlFAB.next() = %v, want %v", got, controlNavIcon)
	}
	if got := controlNavIcon.prev(); got != controlFAB {
		t.Errorf("controlNavIcon.prev() = %v, want %v", got, controlFAB)
	}
	for c := control(0); c < controlCount; c++ {
		if c.String() == "unknown" {
			t.Errorf("control %d has no telemetry name", c)
		}
	}
}
