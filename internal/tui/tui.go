package tui

import (
	"context"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/juanibiapina/layouts/internal/logging"
	"github.com/juanibiapina/layouts/internal/telemetry"
)

// Modal mode
type modalMode int

const (
	modalNone modalMode = iota
	modalHelp
)

// Options configures the screen
type Options struct {
	ListSize       int
	ImageURL       string
	ScrollDuration time.Duration
	ToastDuration  time.Duration
	// Loader fetches the list thumbnail. Nil keeps the placeholder.
	Loader ImageLoader
}

// Model is the main TUI model
type Model struct {
	// State
	width   int
	height  int
	ready   bool
	modal   modalMode
	focused control
	// hasFocus is false until the user tabs into the controls
	hasFocus bool
	loading  bool

	// Components
	topBar  topBar
	list    lazyList
	drawer  drawer
	toaster Toaster
	help    help.Model
	spinner spinner.Model

	imageURL string
	loader   ImageLoader
	// ctx bounds background loads; Run cancels it on exit
	ctx context.Context

	// writeClipboard is swapped out in tests
	writeClipboard func(string) error
}

// New creates a new TUI model
func New(opts Options) Model {
	h := help.New()
	h.ShowAll = true

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = mutedStyle

	toastDuration := opts.ToastDuration
	if toastDuration <= 0 {
		toastDuration = 2 * time.Second
	}

	return Model{
		focused:        controlNavIcon,
		topBar:         newTopBar(),
		list:           newLazyList(NewScrollController(opts.ListSize, opts.ScrollDuration)),
		toaster:        NewToaster(toastDuration),
		help:           h,
		spinner:        s,
		imageURL:       opts.ImageURL,
		loader:         opts.Loader,
		ctx:            context.Background(),
		loading:        opts.Loader != nil && opts.ImageURL != "",
		writeClipboard: clipboard.WriteAll,
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	if !m.loading {
		return nil
	}
	return tea.Batch(loadThumbnail(m.ctx, m.loader, m.imageURL), m.spinner.Tick)
}

// click records the action and raises its toast
func (m Model) click(action, text string) tea.Cmd {
	telemetry.TUIActionExecute(action)
	return notify(text)
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.help.Width = msg.Width
		m.list.scroll.SetVisibleRows(m.listHeight() / rowHeight)
		return m, nil

	case scrollFrameMsg:
		cmd := m.list.scroll.Update(msg)
		return m, cmd

	case toastMsg:
		cmd := m.toaster.Show(msg)
		return m, cmd

	case toastExpiredMsg:
		m.toaster.Expire(msg)
		return m, nil

	case thumbnailLoadedMsg:
		m.loading = false
		if msg.err == nil {
			m.list.thumb = msg.rendered
		}
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress {
			return m, nil
		}
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.list.scroll.ScrollBy(-1)
		case tea.MouseButtonWheelDown:
			m.list.scroll.ScrollBy(1)
		case tea.MouseButtonLeft:
			if m.overlayOpen() {
				return m, nil
			}
			if index, ok := m.itemAt(msg.Y); ok {
				m.list.scroll.Select(index)
			}
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.modal != modalNone {
			return m.updateModal(msg)
		}
		if m.topBar.menu.expanded {
			return m.updateMenu(msg)
		}
		if m.drawer.open {
			return m.updateDrawer(msg)
		}
		return m.updateMain(msg)
	}

	return m, nil
}

func (m Model) updateModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Escape), key.Matches(msg, keys.Help):
		m.modal = modalNone
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Up):
		m.topBar.menu.Up()
	case key.Matches(msg, keys.Down):
		m.topBar.menu.Down()
	case key.Matches(msg, keys.Activate):
		entry, ok := m.topBar.menu.Select()
		if ok {
			return m, m.click("menu_item", entry.toast)
		}
	case key.Matches(msg, keys.Escape), key.Matches(msg, keys.More):
		m.topBar.menu.Dismiss()
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) updateDrawer(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Activate):
		return m, m.click("drawer_button", "drawerButton")
	case key.Matches(msg, keys.Escape), key.Matches(msg, keys.Drawer):
		m.drawer.Close()
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) updateMain(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, keys.Help):
		m.modal = modalHelp
		return m, nil

	case key.Matches(msg, keys.Next):
		if m.hasFocus {
			m.focused = m.focused.next()
		}
		m.hasFocus = true
		return m, nil

	case key.Matches(msg, keys.Prev):
		if m.hasFocus {
			m.focused = m.focused.prev()
		} else {
			m.focused = controlCount - 1
		}
		m.hasFocus = true
		return m, nil

	case key.Matches(msg, keys.Escape):
		m.hasFocus = false
		return m, nil

	case key.Matches(msg, keys.Activate):
		if !m.hasFocus {
			return m, nil
		}
		return m.activate(m.focused)

	case key.Matches(msg, keys.Up):
		m.list.scroll.CursorUp()
	case key.Matches(msg, keys.Down):
		m.list.scroll.CursorDown()
	case key.Matches(msg, keys.First):
		m.list.scroll.CursorFirst()
	case key.Matches(msg, keys.Last):
		m.list.scroll.CursorLast()
	case key.Matches(msg, keys.PageUp):
		m.list.scroll.PageUp()
	case key.Matches(msg, keys.PageDown):
		m.list.scroll.PageDown()

	case key.Matches(msg, keys.Top):
		return m.activate(controlScrollTop)
	case key.Matches(msg, keys.End):
		return m.activate(controlScrollEnd)
	case key.Matches(msg, keys.NavIcon):
		return m.activate(controlNavIcon)
	case key.Matches(msg, keys.Play):
		return m.activate(controlPlay)
	case key.Matches(msg, keys.Like):
		return m.activate(controlLike)
	case key.Matches(msg, keys.More):
		return m.activate(controlMore)
	case key.Matches(msg, keys.Card):
		return m.activate(controlCard)
	case key.Matches(msg, keys.Button):
		return m.activate(controlButton)
	case key.Matches(msg, keys.NavFirst):
		return m.activate(controlNavItemFirst)
	case key.Matches(msg, keys.NavSecond):
		return m.activate(controlNavItemSecond)
	case key.Matches(msg, keys.FAB):
		return m.activate(controlFAB)

	case key.Matches(msg, keys.Drawer):
		m.drawer.Toggle()
		return m, nil

	case key.Matches(msg, keys.Copy):
		return m, m.copySelectedItem()
	}

	return m, nil
}

// activate performs the click action of c
func (m Model) activate(c control) (tea.Model, tea.Cmd) {
	switch c {
	case controlNavIcon:
		return m, m.click(c.String(), "NavIcon")
	case controlPlay:
		return m, m.click(c.String(), "PlayIcon")
	case controlLike:
		text := m.topBar.ToggleLike()
		return m, m.click(c.String(), text)
	case controlMore:
		m.topBar.menu.Open()
		return m, m.click(c.String(), "More icon")
	case controlCard:
		return m, m.click(c.String(), "Row")
	case controlButton:
		return m, m.click(c.String(), "Hello")
	case controlScrollTop:
		telemetry.TUIActionExecute(c.String())
		cmd := m.list.scroll.ScrollToTop()
		return m, cmd
	case controlScrollEnd:
		telemetry.TUIActionExecute(c.String())
		cmd := m.list.scroll.ScrollToEnd()
		return m, cmd
	case controlNavItemFirst:
		return m, m.click(c.String(), bottomNavToast(bottomNavItems[0]))
	case controlNavItemSecond:
		return m, m.click(c.String(), bottomNavToast(bottomNavItems[1]))
	case controlFAB:
		return m, m.click(c.String(), "floatingActionButton")
	}
	return m, nil
}

// copySelectedItem copies the caption of the item under the cursor
func (m Model) copySelectedItem() tea.Cmd {
	if m.list.scroll.Size() == 0 {
		return notifyError("Nothing to copy")
	}
	caption := ItemCaption(m.list.scroll.Cursor)
	if err := m.writeClipboard(caption); err != nil {
		logging.Logger.Warn("Clipboard write failed", "error", err)
		telemetry.Error(err, "action", "copy_item")
		return notifyError("Failed to copy: " + err.Error())
	}
	telemetry.TUIActionExecute("copy_item")
	return notify("Copied: " + caption)
}

// Layout

const (
	topBarHeight    = 1
	bottomNavHeight = 2
	statusBarHeight = 1
	spacerHeight    = 1
)

// bodyHeader renders everything above the list, centred
func (m Model) bodyHeader() string {
	focus := func(c control) bool { return m.hasFocus && m.focused == c }
	column := lipgloss.JoinVertical(lipgloss.Center,
		photographerCard(focus(controlCard)),
		"",
		imageButton(focus(controlButton)),
		"",
		listButtons(m.focused, m.hasFocus),
	)
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, column)
}

// listTop is the screen row of the first list line
func (m Model) listTop() int {
	return topBarHeight + lipgloss.Height(m.bodyHeader()) + spacerHeight
}

// itemAt maps a screen row to the list item drawn there
func (m Model) itemAt(y int) (int, bool) {
	line := y - m.listTop()
	if line < 0 || line >= m.listHeight() {
		return 0, false
	}
	start, end := m.list.scroll.VisibleRange()
	index := start + line/rowHeight
	if index >= end {
		return 0, false
	}
	return index, true
}

// overlayOpen reports whether something is drawn over the list
func (m Model) overlayOpen() bool {
	return m.modal != modalNone || m.topBar.menu.expanded || m.drawer.open
}

// listHeight is what remains for the list once the fixed rows are laid out
func (m Model) listHeight() int {
	h := m.height - topBarHeight - lipgloss.Height(m.bodyHeader()) - spacerHeight - bottomNavHeight - statusBarHeight
	if h < rowHeight {
		return rowHeight
	}
	return h
}

func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	var s strings.Builder
	s.WriteString(FitToWidth(m.topBar.View(m.width, m.focused, m.hasFocus), m.width))
	s.WriteString("\n")
	s.WriteString(m.bodyHeader())
	s.WriteString("\n")
	s.WriteString(strings.Repeat(" ", m.width))
	s.WriteString("\n")
	s.WriteString(m.list.View(m.width, m.listHeight()))
	s.WriteString("\n")
	s.WriteString(m.renderStatusBar())
	s.WriteString("\n")
	s.WriteString(bottomNavigation(m.width, m.focused, m.hasFocus))

	screen := s.String()

	// Floating action button sits above the bottom bar, inset from the right
	fab := floatingActionButton(m.hasFocus && m.focused == controlFAB)
	fabY := m.height - bottomNavHeight - statusBarHeight - 1
	screen = placeOverlay(m.width-lipgloss.Width(fab)-2, fabY, fab, screen)

	if m.drawer.open {
		screen = placeOverlay(0, topBarHeight, m.drawer.View(m.height-topBarHeight-bottomNavHeight), screen)
	}

	if m.topBar.menu.expanded {
		screen = placeOverlay(m.topBar.menuAnchor(m.width), topBarHeight, m.topBar.menu.View(), screen)
	}

	if m.modal != modalNone {
		return m.renderModal(screen)
	}

	return screen
}

func (m Model) renderStatusBar() string {
	var content string

	if toast := m.toaster.View(); toast != "" {
		content = " " + toast
	} else {
		var parts []string
		if m.loading {
			parts = append(parts, m.spinner.View()+" "+helpDescStyle.Render("loading image"))
		}
		parts = append(parts,
			m.renderKey("tab", "focus"),
			m.renderKey("enter", "click"),
			m.renderKey("g/G", "top/end"),
			m.renderKey("m", "menu"),
			m.renderKey("d", "drawer"),
			m.renderKey("?", "help"),
			m.renderKey("q", "quit"),
		)
		content = " " + strings.Join(parts, " ")
	}

	return statusBarStyle.Render(FitToWidth(content, m.width))
}

func (m Model) renderKey(key, desc string) string {
	return helpKeyStyle.Render(key) + " " + helpDescStyle.Render(desc)
}

func (m Model) renderModal(background string) string {
	var content string

	switch m.modal {
	case modalHelp:
		content = m.renderHelpModal()
	}

	modalWidth := lipgloss.Width(content)
	modalHeight := lipgloss.Height(content)
	x := (m.width - modalWidth) / 2
	y := (m.height - modalHeight) / 2

	return placeOverlay(x, y, content, background)
}

func (m Model) renderHelpModal() string {
	title := dialogTitleStyle.Render("Keyboard Shortcuts")
	footer := helpDescStyle.Render("press esc or ? to close")
	return dialogStyle.Render(title + "\n\n" + m.help.View(keys) + "\n\n" + footer)
}

// Run starts the TUI and blocks until it exits.
// Background work still in flight is cancelled on return.
func Run(ctx context.Context, opts Options) error {
	telemetry.TUISessionStart()
	defer telemetry.TUISessionEnd()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	logging.Logger.Info("Starting screen", "list_size", opts.ListSize, "image_url", opts.ImageURL)

	m := New(opts)
	m.ctx = ctx

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
