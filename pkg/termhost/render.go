// Package termhost draws the navigation bar in a terminal with tcell.
//
// One surface unit is one terminal column horizontally and half a row
// vertically, so the outline is rasterized with half-block characters.
package termhost

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/gonewx/flownav/pkg/config"
	"github.com/gonewx/flownav/pkg/navigation"
	"github.com/gonewx/flownav/pkg/wave"
)

const (
	blockFull  = '█'
	blockUpper = '▀'
	blockLower = '▄'
)

// 曲线展平精度：终端分辨率很低，8 段已足够
const flattenSteps = 8

// 低于此不透明度的图标不绘制
const minVisibleOpacity = 0.15

// Cell is one terminal cell.
type Cell struct {
	Rune rune
	Fg   tcell.Color
	Bg   tcell.Color
	Bold bool
}

// Style converts the cell colours into a tcell style.
func (c Cell) Style() tcell.Style {
	return tcell.StyleDefault.Foreground(c.Fg).Background(c.Bg).Bold(c.Bold)
}

// Grid is a rasterized bar, row-major.
type Grid struct {
	Cols, Rows int
	Cells      []Cell
}

// At returns the cell at column x, row y.
func (g Grid) At(x, y int) Cell {
	return g.Cells[y*g.Cols+x]
}

func (g Grid) set(x, y int, c Cell) {
	if x < 0 || y < 0 || x >= g.Cols || y >= g.Rows {
		return
	}
	g.Cells[y*g.Cols+x] = c
}

// Renderer turns frames into cell grids.
type Renderer struct {
	BarColor    tcell.Color
	IconColor   tcell.Color
	ActionColor tcell.Color
	ActionText  tcell.Color
}

// NewRenderer returns a renderer with the default palette.
func NewRenderer() *Renderer {
	return &Renderer{
		BarColor:    tcell.NewRGBColor(98, 0, 238),
		IconColor:   tcell.NewRGBColor(255, 255, 255),
		ActionColor: tcell.NewRGBColor(3, 218, 197),
		ActionText:  tcell.NewRGBColor(0, 0, 0),
	}
}

// RowsFor returns how many rows a surface of height units occupies.
func RowsFor(height float64) int {
	// FitConfig 的换算可能留下微小的浮点误差
	return int(math.Ceil(height/2 - 1e-9))
}

// FitConfig scales cfg so the bar is rows terminal rows tall.
func FitConfig(cfg config.NavBarConfig, rows int) config.NavBarConfig {
	cfg.ApplyDefaults()
	if rows < 1 {
		rows = 1
	}
	return cfg.WithDensity(float64(2*rows) / *cfg.Height)
}

// Render rasterizes f into a cols x RowsFor(f.Height) grid.
func (r *Renderer) Render(f navigation.Frame, cols int) Grid {
	rows := RowsFor(f.Height)
	g := Grid{Cols: cols, Rows: rows, Cells: make([]Cell, cols*rows)}
	for i := range g.Cells {
		g.Cells[i] = Cell{Rune: ' ', Fg: tcell.ColorDefault, Bg: tcell.ColorDefault}
	}

	poly := wave.Polygon(f.Outline.Flatten(flattenSteps))
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			cx := float64(x) + 0.5
			top := poly.Contains(wave.Point{X: cx, Y: float64(2*y) + 0.5})
			bottom := poly.Contains(wave.Point{X: cx, Y: float64(2*y) + 1.5})
			g.set(x, y, r.fillCell(top, bottom))
		}
	}

	for _, it := range f.Items {
		if it.Opacity < minVisibleOpacity {
			continue
		}
		x, y := cellOf(it.CenterX, it.Icon.Y+it.Icon.H/2)
		fg := blend(r.BarColor, r.IconColor, it.Opacity)
		r.putText(g, it.Entry.Glyph, x, y, fg, r.BarColor, false)
	}

	a := f.Action
	ax, ay := cellOf(a.Rect.X+a.Rect.W/2, a.Rect.Y+a.Rect.H/2)
	r.putText(g, " "+a.Glyph+" ", ax, ay, r.ActionText, r.ActionColor, true)
	return g
}

func (r *Renderer) fillCell(top, bottom bool) Cell {
	switch {
	case top && bottom:
		return Cell{Rune: blockFull, Fg: r.BarColor, Bg: r.BarColor}
	case top:
		return Cell{Rune: blockUpper, Fg: r.BarColor, Bg: tcell.ColorDefault}
	case bottom:
		return Cell{Rune: blockLower, Fg: r.BarColor, Bg: tcell.ColorDefault}
	}
	return Cell{Rune: ' ', Fg: tcell.ColorDefault, Bg: tcell.ColorDefault}
}

// putText 以第 x 列为中心写入文字，超出网格的部分被裁掉
func (r *Renderer) putText(g Grid, s string, x, y int, fg, bg tcell.Color, bold bool) {
	runes := []rune(s)
	x -= (len(runes) - 1) / 2
	for i, ch := range runes {
		g.set(x+i, y, Cell{Rune: ch, Fg: fg, Bg: bg, Bold: bold})
	}
}

// cellOf maps a surface point to a cell.
func cellOf(x, y float64) (int, int) {
	return int(math.Floor(x)), int(math.Floor(y / 2))
}

// blend mixes from → to by t in RGB.
func blend(from, to tcell.Color, t float64) tcell.Color {
	if t <= 0 {
		return from
	}
	if t >= 1 {
		return to
	}
	r1, g1, b1 := from.RGB()
	r2, g2, b2 := to.RGB()
	mix := func(a, b int32) int32 {
		return int32(math.Round(float64(a) + (float64(b)-float64(a))*t))
	}
	return tcell.NewRGBColor(mix(r1, r2), mix(g1, g2), mix(b1, b2))
}
