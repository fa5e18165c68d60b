package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/alexisbeaulieu97/rangeslider/internal/slider"
)

// overlayAlpha is how far a dragged thumb's fill is pulled toward black.
const overlayAlpha = 0.1

const (
	glyphTrack         = '─'
	glyphTrackCapLeft  = '╶'
	glyphTrackCapRight = '╴'
	glyphHighlight     = '━'
	glyphThumbRound    = '●'
	glyphThumbSquare   = '■'
	glyphBorderH       = '─'
	glyphBorderV       = '│'
	glyphBlank         = ' '
)

var (
	roundCorners  = [4]rune{'╭', '╮', '╰', '╯'}
	squareCorners = [4]rune{'┌', '┐', '└', '┘'}
)

type cell struct {
	glyph rune
	fg    lipgloss.Color
	bg    lipgloss.Color
}

type canvas struct {
	width  int
	height int
	cells  []cell
}

func newCanvas(width, height int) *canvas {
	c := &canvas{width: width, height: height, cells: make([]cell, width*height)}
	for i := range c.cells {
		c.cells[i].glyph = glyphBlank
	}
	return c
}

func (c *canvas) at(x, y int) *cell {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return nil
	}
	return &c.cells[y*c.width+x]
}

// Paint rasterises a scene onto a grid of Bounds.Width x Bounds.Height cells
// and returns it as styled lines. The track is drawn first, then the lower
// thumb, then the upper thumb on top.
func Paint(scene slider.Scene) string {
	w := int(math.Round(scene.Bounds.Width))
	h := int(math.Round(scene.Bounds.Height))
	if w <= 0 || h <= 0 {
		return ""
	}

	c := newCanvas(w, h)
	c.drawTrack(scene.Track)
	c.drawThumb(scene.Lower)
	c.drawThumb(scene.Upper)
	return c.String()
}

// coverSpan returns the cells [lo, hi) touched by [start, start+size).
func coverSpan(start, size float64) (int, int) {
	if size <= 0 {
		return 0, 0
	}
	return int(math.Floor(start)), int(math.Ceil(start + size))
}

// centerSpan returns round(size) cells, at least one, centred on the middle
// of [start, start+size).
func centerSpan(start, size float64) (int, int) {
	n := int(math.Max(1, math.Round(size)))
	center := start + size/2
	lo := int(math.Floor(center - float64(n)/2 + 0.5))
	return lo, lo + n
}

func (c *canvas) drawTrack(t slider.TrackShape) {
	if t.Frame.W <= 0 || t.Frame.H <= 0 {
		return
	}
	x0, x1 := coverSpan(t.Frame.X, t.Frame.W)
	y0, y1 := centerSpan(t.Frame.Y, t.Frame.H)
	rounded := t.CornerRadius > 0

	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			glyph := glyphTrack
			switch {
			case rounded && x == x0:
				glyph = glyphTrackCapLeft
			case rounded && x == x1-1:
				glyph = glyphTrackCapRight
			}
			if cl := c.at(x, y); cl != nil {
				*cl = cell{glyph: glyph, fg: t.Fill}
			}
		}
	}

	hx0, hx1 := coverSpan(t.Highlight.X, t.Highlight.W)
	hx0, hx1 = max(hx0, x0), min(hx1, x1)
	for y := y0; y < y1; y++ {
		for x := hx0; x < hx1; x++ {
			if cl := c.at(x, y); cl != nil {
				*cl = cell{glyph: glyphHighlight, fg: t.HighlightFill}
			}
		}
	}
}

func (c *canvas) drawThumb(t slider.ThumbShape) {
	x0, x1 := centerSpan(t.Body.X, t.Body.W)
	y0, y1 := centerSpan(t.Body.Y, t.Body.H)
	fill := t.Fill
	if t.Overlay {
		fill = overlay(fill)
	}

	if x1-x0 == 1 && y1-y0 == 1 {
		glyph := glyphThumbSquare
		if t.Rounded() {
			glyph = glyphThumbRound
		}
		if cl := c.at(x0, y0); cl != nil {
			*cl = cell{glyph: glyph, fg: fill}
		}
		return
	}

	corners := squareCorners
	if t.CornerRadius > 0 {
		corners = roundCorners
	}
	outline := t.LineWidth > 0 && x1-x0 >= 2 && y1-y0 >= 2

	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			cl := c.at(x, y)
			if cl == nil {
				continue
			}
			*cl = cell{glyph: glyphBlank, bg: fill}
			if !outline {
				continue
			}
			top, bottom := y == y0, y == y1-1
			left, right := x == x0, x == x1-1
			switch {
			case top && left:
				cl.glyph = corners[0]
			case top && right:
				cl.glyph = corners[1]
			case bottom && left:
				cl.glyph = corners[2]
			case bottom && right:
				cl.glyph = corners[3]
			case top || bottom:
				cl.glyph = glyphBorderH
			case left || right:
				cl.glyph = glyphBorderV
			default:
				continue
			}
			cl.fg = t.Stroke
		}
	}
}

// overlay darkens a hex color as a translucent black layer would. Colors
// that are not hex (ANSI indices) are returned unchanged.
func overlay(c lipgloss.Color) lipgloss.Color {
	base, err := colorful.Hex(string(c))
	if err != nil {
		return c
	}
	return lipgloss.Color(base.BlendRgb(colorful.Color{}, overlayAlpha).Hex())
}

func (c *canvas) String() string {
	var b strings.Builder
	for y := 0; y < c.height; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		row := c.cells[y*c.width : (y+1)*c.width]
		start := 0
		for x := 1; x <= len(row); x++ {
			if x < len(row) && row[x].fg == row[start].fg && row[x].bg == row[start].bg {
				continue
			}
			b.WriteString(renderRun(row[start:x]))
			start = x
		}
	}
	return b.String()
}

func renderRun(run []cell) string {
	glyphs := make([]rune, len(run))
	for i, cl := range run {
		glyphs[i] = cl.glyph
	}
	text := string(glyphs)

	head := run[0]
	if head.fg == "" && head.bg == "" {
		return text
	}
	style := lipgloss.NewStyle()
	if head.fg != "" {
		style = style.Foreground(head.fg)
	}
	if head.bg != "" {
		style = style.Background(head.bg)
	}
	return style.Render(text)
}
