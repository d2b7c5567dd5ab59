package thumbnail

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/image/draw"
)

// Pixels with alpha below this are treated as transparent
const alphaThreshold = 0x80

var placeholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

// Placeholder returns a cols x rows block shown until an image loads
func Placeholder(cols, rows int) string {
	if cols <= 0 || rows <= 0 {
		return ""
	}
	line := placeholderStyle.Render(strings.Repeat("░", cols))
	lines := make([]string, rows)
	for i := range lines {
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}

// Render paints img into cols x rows terminal cells. Each cell carries two
// vertical pixels using the upper half block, so the image is scaled to
// cols x rows*2 pixels, preserving aspect ratio and centred.
func Render(img image.Image, cols, rows int) string {
	if img == nil || cols <= 0 || rows <= 0 {
		return Placeholder(cols, rows)
	}

	canvas := image.NewNRGBA(image.Rect(0, 0, cols, rows*2))
	draw.ApproxBiLinear.Scale(canvas, fitRect(img.Bounds(), canvas.Bounds()), img, img.Bounds(), draw.Over, nil)

	lines := make([]string, rows)
	for y := 0; y < rows; y++ {
		var b strings.Builder
		for x := 0; x < cols; x++ {
			b.WriteString(cell(canvas.NRGBAAt(x, y*2), canvas.NRGBAAt(x, y*2+1)))
		}
		lines[y] = b.String()
	}
	return strings.Join(lines, "\n")
}

// fitRect returns the largest rectangle with src's aspect ratio centred in dst
func fitRect(src, dst image.Rectangle) image.Rectangle {
	sw, sh := src.Dx(), src.Dy()
	dw, dh := dst.Dx(), dst.Dy()
	if sw == 0 || sh == 0 {
		return dst
	}

	w, h := dw, sh*dw/sw
	if h > dh {
		w, h = sw*dh/sh, dh
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	x0 := dst.Min.X + (dw-w)/2
	y0 := dst.Min.Y + (dh-h)/2
	return image.Rect(x0, y0, x0+w, y0+h)
}

func cell(top, bottom color.NRGBA) string {
	topOn := top.A >= alphaThreshold
	bottomOn := bottom.A >= alphaThreshold

	switch {
	case topOn && bottomOn:
		return lipgloss.NewStyle().Foreground(hex(top)).Background(hex(bottom)).Render("▀")
	case topOn:
		return lipgloss.NewStyle().Foreground(hex(top)).Render("▀")
	case bottomOn:
		return lipgloss.NewStyle().Foreground(hex(bottom)).Render("▄")
	default:
		return " "
	}
}

func hex(c color.NRGBA) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
}
