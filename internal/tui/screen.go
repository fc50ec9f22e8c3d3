package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"calwatch/internal/graphics"
	"calwatch/internal/host"
)

// One terminal cell covers CellW x CellH display pixels
const (
	CellW = 4
	CellH = 8
)

// Glyphs for pixel coverage of a cell
const (
	glyphFull    = "█"
	glyphPartial = "░"
)

// fontHeights approximates each system font's cap height in pixels
var fontHeights = map[string]int{
	host.FontLeco36BoldNumbers: 36,
	host.FontGothic18Bold:      18,
}

type cell struct {
	ch string // "" marks the right half of a wide rune
	fg graphics.Color
	bg graphics.Color
}

// Screen is a window rasterized to terminal cells
type Screen struct {
	Cols, Rows int
	cells      [][]cell
}

// Composite renders w's layer tree into a frame buffer and downsamples it to
// cells, then lays text layers over the result
func Composite(w *host.Window) *Screen {
	root := w.RootLayer()
	size := root.Frame().Size
	bg := w.BackgroundColor()

	fb := graphics.NewFrameBuffer(size.W, size.H, bg)
	root.Walk(func(layer *host.Layer, origin graphics.Point) {
		tl := layer.TextLayer()
		if tl == nil || tl.BackgroundColor() == graphics.ColorClear {
			return
		}
		fb.SetFillColor(tl.BackgroundColor())
		fb.FillRect(graphics.Rect{Origin: origin, Size: layer.Frame().Size})
	})
	root.Render(fb)

	s := &Screen{
		Cols: (size.W + CellW - 1) / CellW,
		Rows: (size.H + CellH - 1) / CellH,
	}
	s.cells = make([][]cell, s.Rows)
	for r := range s.cells {
		s.cells[r] = make([]cell, s.Cols)
		for c := range s.cells[r] {
			s.cells[r][c] = sampleCell(fb, c*CellW, r*CellH, bg)
		}
	}

	root.Walk(func(layer *host.Layer, origin graphics.Point) {
		if tl := layer.TextLayer(); tl != nil && tl.Text() != "" {
			s.drawText(tl, origin, bg)
		}
	})
	return s
}

// sampleCell picks the most common non-background colour in the cell's pixels
func sampleCell(fb *graphics.FrameBuffer, x0, y0 int, bg graphics.Color) cell {
	counts := make(map[graphics.Color]int)
	total := 0
	for y := y0; y < y0+CellH; y++ {
		for x := x0; x < x0+CellW; x++ {
			c := fb.At(x, y)
			total++
			if c != bg && c != graphics.ColorClear {
				counts[c]++
			}
		}
	}

	best, n := bg, 0
	for c, k := range counts {
		if k > n || (k == n && c < best) {
			best, n = c, k
		}
	}

	switch {
	case n == 0:
		return cell{ch: " ", fg: bg, bg: bg}
	case 2*n >= total:
		return cell{ch: glyphFull, fg: best, bg: bg}
	default:
		return cell{ch: glyphPartial, fg: best, bg: bg}
	}
}

func (s *Screen) drawText(tl *host.TextLayer, origin graphics.Point, bg graphics.Color) {
	frame := tl.Layer().Frame()
	text := tl.Text()
	width := runewidth.StringWidth(text)

	row := (origin.Y + fontHeights[tl.Font()]/2) / CellH
	if row < 0 || row >= s.Rows {
		return
	}

	left := origin.X / CellW
	span := frame.Size.W / CellW
	col := left
	switch tl.Alignment() {
	case host.AlignCenter:
		col = left + (span-width)/2
	case host.AlignRight:
		col = left + span - width
	}

	cellBg := bg
	if tl.BackgroundColor() != graphics.ColorClear {
		cellBg = tl.BackgroundColor()
	}

	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if col >= 0 && col+w <= s.Cols {
			s.cells[row][col] = cell{ch: string(r), fg: tl.TextColor(), bg: cellBg}
			for i := 1; i < w; i++ {
				s.cells[row][col+i] = cell{fg: tl.TextColor(), bg: cellBg}
			}
		}
		col += w
	}
}

// PlainRow returns row r without colour
func (s *Screen) PlainRow(r int) string {
	var b strings.Builder
	for _, c := range s.cells[r] {
		b.WriteString(c.ch)
	}
	return b.String()
}

// ColorAt returns the foreground colour of a cell
func (s *Screen) ColorAt(col, row int) graphics.Color {
	return s.cells[row][col].fg
}

// Render returns the screen with ANSI colours, batching runs of equal style
func (s *Screen) Render() string {
	lines := make([]string, s.Rows)
	for r, row := range s.cells {
		var b strings.Builder
		start := 0
		for i := 1; i <= len(row); i++ {
			if i < len(row) && row[i].fg == row[start].fg && row[i].bg == row[start].bg {
				continue
			}
			var run strings.Builder
			for _, c := range row[start:i] {
				run.WriteString(c.ch)
			}
			b.WriteString(cellStyle(row[start].fg, row[start].bg).Render(run.String()))
			start = i
		}
		lines[r] = b.String()
	}
	return strings.Join(lines, "\n")
}

func cellStyle(fg, bg graphics.Color) lipgloss.Style {
	style := lipgloss.NewStyle()
	if hex := fg.Hex(); hex != "" {
		style = style.Foreground(lipgloss.Color(hex))
	}
	if hex := bg.Hex(); hex != "" {
		style = style.Background(lipgloss.Color(hex))
	}
	return style
}
