package tui

import (
	"context"
	"fmt"
	"image"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/juanibiapina/layouts/internal/logging"
	"github.com/juanibiapina/layouts/internal/thumbnail"
)

const (
	// Each list row is as tall as its thumbnail
	thumbCols = 4
	thumbRows = 2
	rowHeight = thumbRows
)

// ImageLoader fetches the thumbnail shown next to every list item
type ImageLoader interface {
	Load(ctx context.Context, url string) (image.Image, error)
}

// thumbnailLoadedMsg carries the rendered thumbnail, or the load error
type thumbnailLoadedMsg struct {
	rendered string
	err      error
}

// loadThumbnail fetches url in the background until ctx is done.
// Failures are logged and leave the placeholder in place.
func loadThumbnail(ctx context.Context, loader ImageLoader, url string) tea.Cmd {
	return func() tea.Msg {
		img, err := loader.Load(ctx, url)
		if err != nil {
			logging.Logger.Debug("Thumbnail load failed", "url", url, "error", err)
			return thumbnailLoadedMsg{err: err}
		}
		return thumbnailLoadedMsg{rendered: thumbnail.Render(img, thumbCols, thumbRows)}
	}
}

// ItemCaption is the text of list row index
func ItemCaption(index int) string {
	return fmt.Sprintf("Item #%d", index)
}

// lazyList renders only the rows inside the scroll controller's window
type lazyList struct {
	scroll ScrollController
	thumb  string
}

func newLazyList(scroll ScrollController) lazyList {
	return lazyList{
		scroll: scroll,
		thumb:  thumbnail.Placeholder(thumbCols, thumbRows),
	}
}

// View renders exactly height lines, each width columns wide
func (l lazyList) View(width, height int) string {
	var lines []string

	if l.scroll.Size() == 0 {
		lines = append(lines, mutedStyle.Render("No items."))
	}

	thumbLines := strings.Split(l.thumb, "\n")
	start, end := l.scroll.VisibleRange()
	for i := start; i < end; i++ {
		for r := 0; r < rowHeight; r++ {
			var thumb string
			if r < len(thumbLines) {
				thumb = thumbLines[r]
			}
			caption := ""
			if r == rowHeight/2 {
				if i == l.scroll.Cursor {
					caption = listCursorStyle.Render("› " + ItemCaption(i))
				} else {
					caption = listItemStyle.Render("  " + ItemCaption(i))
				}
			}
			lines = append(lines, FitToWidth(thumb, thumbCols)+"  "+caption)
		}
	}

	out := make([]string, height)
	for i := range out {
		var line string
		if i < len(lines) {
			line = lines[i]
		}
		out[i] = FitCellContent(line, width)
	}
	return strings.Join(out, "\n")
}
