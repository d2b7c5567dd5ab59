package thumbnail

import (
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func solid(w, h int, c color.Color) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestRender_Dimensions(t *testing.T) {
	tests := []struct {
		name string
		img  image.Image
		cols int
		rows int
	}{
		{name: "square image", img: solid(50, 50, color.White), cols: 4, rows: 2},
		{name: "wide image", img: solid(200, 20, color.White), cols: 6, rows: 3},
		{name: "tall image", img: solid(10, 300, color.White), cols: 5, rows: 2},
		{name: "nil image renders placeholder", img: nil, cols: 3, rows: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Render(tt.img, tt.cols, tt.rows)
			lines := strings.Split(out, "\n")
			if len(lines) != tt.rows {
				t.Fatalf("Render() has %d lines, want %d", len(lines), tt.rows)
			}
			for i, line := range lines {
				if w := lipgloss.Width(line); w != tt.cols {
					t.Errorf("line %d width = %d, want %d", i, w, tt.cols)
				}
			}
		})
	}
}

func TestRender_OpaqueUsesUpperHalfBlocks(t *testing.T) {
	out := ansi.Strip(Render(solid(8, 8, color.NRGBA{R: 0x7b, G: 0xb6, B: 0x61, A: 0xff}), 4, 2))
	if got := strings.Count(out, "▀"); got != 8 {
		t.Errorf("Render() has %d upper half blocks, want 8: %q", got, out)
	}
}

func TestRender_TransparentIsBlank(t *testing.T) {
	out := ansi.Strip(Render(solid(8, 8, color.NRGBA{}), 4, 2))
	if strings.Trim(out, " \n") != "" {
		t.Errorf("Render() of transparent image = %q, want only spaces", out)
	}
}

func TestPlaceholder(t *testing.T) {
	if got := Placeholder(0, 2); got != "" {
		t.Errorf("Placeholder(0, 2) = %q, want empty", got)
	}
	out := ansi.Strip(Placeholder(3, 2))
	if out != "░░░\n░░░" {
		t.Errorf("Placeholder(3, 2) = %q", out)
	}
}

func TestFitRect(t *testing.T) {
	tests := []struct {
		name string
		src  image.Rectangle
		dst  image.Rectangle
		want image.Rectangle
	}{
		{
			name: "same aspect fills",
			src:  image.Rect(0, 0, 10, 10),
			dst:  image.Rect(0, 0, 4, 4),
			want: image.Rect(0, 0, 4, 4),
		},
		{
			name: "wide source letterboxes vertically",
			src:  image.Rect(0, 0, 20, 10),
			dst:  image.Rect(0, 0, 4, 4),
			want: image.Rect(0, 1, 4, 3),
		},
		{
			name: "tall source pillarboxes horizontally",
			src:  image.Rect(0, 0, 10, 20),
			dst:  image.Rect(0, 0, 4, 4),
			want: image.Rect(1, 0, 3, 4),
		},
		{
			name: "empty source uses destination",
			src:  image.Rectangle{},
			dst:  image.Rect(0, 0, 4, 4),
			want: image.Rect(0, 0, 4, 4),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := fitRect(tt.src, tt.dst); got != tt.want {
				t.Errorf("fitRect() = %v, want %v", got, tt.want)
			}
		})
	}
}
