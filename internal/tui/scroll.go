package tui

import (
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// scrollFrames is the number of ticks an animated scroll is split into
const scrollFrames = 12

// scrollFrameMsg advances an in-flight scroll animation.
// gen identifies the request that scheduled it.
type scrollFrameMsg struct {
	gen int
}

type scrollAnimation struct {
	active bool
	from   int
	to     int
	frame  int
}

// ScrollState tracks the selected item and the leading item of a list.
// Offset may sit past the last full page; the rendered window is pulled
// back so the viewport stays full.
type ScrollState struct {
	Cursor      int // Selected item index
	Offset      int // Leading item index
	VisibleRows int // Number of visible rows (set on window resize)
}

// Up moves the cursor up by one, adjusting offset if needed.
// Returns true if cursor changed.
func (s *ScrollState) Up() bool {
	if s.Cursor <= 0 {
		return false
	}
	s.Cursor--
	if s.Cursor < s.Offset {
		s.Offset = s.Cursor
	}
	return true
}

// Down moves the cursor down by one, adjusting offset if needed.
// Returns true if cursor changed.
func (s *ScrollState) Down(itemCount int) bool {
	if s.Cursor >= itemCount-1 {
		return false
	}
	s.Cursor++
	if s.Cursor >= s.Offset+s.rows() {
		s.Offset = s.Cursor - s.rows() + 1
	}
	return true
}

// First moves cursor to the first item.
func (s *ScrollState) First() {
	s.Reset()
}

// Last moves cursor to the last item with a full page above it.
func (s *ScrollState) Last(itemCount int) {
	if itemCount <= 0 {
		return
	}
	s.Cursor = itemCount - 1
	s.Offset = max(itemCount-s.rows(), 0)
}

// VisibleRange returns the start (inclusive) and end (exclusive) indices
// of items that should be rendered. The window starts at the offset but
// never runs past the last item.
func (s *ScrollState) VisibleRange(itemCount int) (start, end int) {
	rows := s.rows()
	start = min(s.Offset, itemCount-rows)
	if start < 0 {
		start = 0
	}
	end = min(start+rows, itemCount)
	return start, end
}

// ClampToCount ensures cursor and offset are valid for the given item count
// and that the cursor is on screen.
func (s *ScrollState) ClampToCount(itemCount int) {
	if itemCount <= 0 {
		s.Reset()
		return
	}
	s.Cursor = min(max(s.Cursor, 0), itemCount-1)
	s.Offset = min(max(s.Offset, 0), itemCount-1)
	if start, _ := s.VisibleRange(itemCount); s.Cursor < start {
		s.Offset = s.Cursor
	}
	if s.Cursor >= s.Offset+s.rows() {
		s.Offset = s.Cursor - s.rows() + 1
	}
}

// Reset resets cursor and offset to zero.
func (s *ScrollState) Reset() {
	s.Cursor = 0
	s.Offset = 0
}

// SetCursorTo moves cursor to the specified index, adjusting offset to keep it visible.
func (s *ScrollState) SetCursorTo(index int) {
	s.Cursor = index
	if s.Cursor < s.Offset {
		s.Offset = s.Cursor
	}
	if s.Cursor >= s.Offset+s.rows() {
		s.Offset = s.Cursor - s.rows() + 1
	}
}

// follow drags the cursor into the window after the offset moved
func (s *ScrollState) follow(itemCount int) {
	start, end := s.VisibleRange(itemCount)
	if start == end {
		return
	}
	if s.Cursor < start {
		s.Cursor = start
	}
	if s.Cursor >= end {
		s.Cursor = end - 1
	}
}

func (s *ScrollState) rows() int {
	if s.VisibleRows < 1 {
		return 1
	}
	return s.VisibleRows
}

// ScrollController owns the scroll state of a fixed-length virtualized list.
// Offset can be animated to a target index, and a newer request always
// supersedes an older one. The cursor follows the viewport.
type ScrollController struct {
	ScrollState

	size     int
	duration time.Duration

	gen  int
	anim scrollAnimation
}

// NewScrollController creates a controller for a list of size items.
// A zero duration jumps instead of animating.
func NewScrollController(size int, duration time.Duration) ScrollController {
	c := ScrollController{duration: duration}
	c.SetSize(size)
	return c
}

// Size returns the number of items in the list
func (c *ScrollController) Size() int {
	return c.size
}

// SetSize changes the number of items. Any animation is cancelled and the
// cursor and offset are clamped into the new list.
func (c *ScrollController) SetSize(n int) {
	c.cancel()
	c.size = max(n, 0)
	c.ClampToCount(c.size)
}

// Animating reports whether an animation is in flight
func (c *ScrollController) Animating() bool {
	return c.anim.active
}

// SetVisibleRows records how many items fit in the viewport (set on window resize)
func (c *ScrollController) SetVisibleRows(rows int) {
	c.VisibleRows = max(rows, 1)
	c.follow(c.size)
}

// VisibleRange returns the start (inclusive) and end (exclusive) indices of
// items to render.
func (c *ScrollController) VisibleRange() (start, end int) {
	return c.ScrollState.VisibleRange(c.size)
}

// CursorUp selects the previous item, cancelling any animation
func (c *ScrollController) CursorUp() bool {
	c.cancel()
	return c.Up()
}

// CursorDown selects the next item, cancelling any animation
func (c *ScrollController) CursorDown() bool {
	c.cancel()
	return c.Down(c.size)
}

// CursorFirst jumps the selection to the first item
func (c *ScrollController) CursorFirst() {
	c.cancel()
	c.First()
}

// CursorLast jumps the selection to the last item
func (c *ScrollController) CursorLast() {
	c.cancel()
	c.Last(c.size)
}

// Select moves the cursor to index, clamped to the list
func (c *ScrollController) Select(index int) {
	if c.size == 0 {
		return
	}
	c.cancel()
	c.SetCursorTo(c.clamp(index))
}

// ScrollToTop animates the offset to the first item
func (c *ScrollController) ScrollToTop() tea.Cmd {
	return c.AnimateTo(0)
}

// ScrollToEnd animates the offset to the last item
func (c *ScrollController) ScrollToEnd() tea.Cmd {
	return c.AnimateTo(c.size - 1)
}

// AnimateTo starts an animated transition to index and returns the command
// driving it. Any in-flight animation is cancelled and the new one starts
// from wherever the offset was interrupted. Returns nil when there is nothing
// to do: an empty list, or already resting at the target.
func (c *ScrollController) AnimateTo(index int) tea.Cmd {
	if c.size == 0 {
		return nil
	}
	index = c.clamp(index)

	if !c.anim.active && c.Offset == index {
		return nil
	}

	c.gen++
	if c.duration <= 0 {
		c.anim = scrollAnimation{}
		c.Offset = index
		c.follow(c.size)
		return nil
	}

	c.anim = scrollAnimation{active: true, from: c.Offset, to: index}
	return c.nextFrame()
}

// ScrollBy moves the offset by delta immediately, cancelling any animation.
// Returns true if the offset changed.
func (c *ScrollController) ScrollBy(delta int) bool {
	if c.size == 0 {
		return false
	}
	c.cancel()
	next := c.clamp(c.Offset + delta)
	if next == c.Offset {
		return false
	}
	c.Offset = next
	c.follow(c.size)
	return true
}

// PageUp scrolls back by one viewport
func (c *ScrollController) PageUp() bool {
	return c.ScrollBy(-c.page())
}

// PageDown scrolls forward by one viewport
func (c *ScrollController) PageDown() bool {
	return c.ScrollBy(c.page())
}

// Update applies an animation frame. Frames from superseded requests are dropped.
func (c *ScrollController) Update(msg scrollFrameMsg) tea.Cmd {
	if !c.anim.active || msg.gen != c.gen {
		return nil
	}

	c.anim.frame++
	if c.anim.frame >= scrollFrames {
		c.Offset = c.anim.to
		c.anim = scrollAnimation{}
		c.follow(c.size)
		return nil
	}

	progress := easeOutCubic(float64(c.anim.frame) / scrollFrames)
	distance := float64(c.anim.to - c.anim.from)
	c.Offset = c.clamp(c.anim.from + int(math.Round(distance*progress)))
	c.follow(c.size)
	return c.nextFrame()
}

func (c *ScrollController) cancel() {
	if c.anim.active {
		c.gen++
		c.anim = scrollAnimation{}
	}
}

func (c *ScrollController) nextFrame() tea.Cmd {
	gen := c.gen
	return tea.Tick(c.duration/scrollFrames, func(time.Time) tea.Msg {
		return scrollFrameMsg{gen: gen}
	})
}

func (c *ScrollController) clamp(index int) int {
	if index >= c.size {
		index = c.size - 1
	}
	if index < 0 {
		index = 0
	}
	return index
}

func (c *ScrollController) page() int {
	return c.rows()
}

// easeOutCubic decelerates towards the target
func easeOutCubic(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	u := 1 - t
	return 1 - u*u*u
}
