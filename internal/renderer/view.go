package renderer

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/polydraw/internal/engine/drawing"
	"github.com/dshills/polydraw/internal/geom"
)

// StateReader is the engine surface the view reads. It sees only copies of
// state; nothing the view does can mutate the model.
type StateReader interface {
	Finished() []drawing.Polygon
	Current() geom.PolyLine
	Cursor() (geom.Point, bool)
	UndoCount() int
	RedoCount() int
}

// View rasterizes drawing state into a cell buffer.
type View struct {
	theme      Theme
	statusLine bool
	buf        *CellBuffer
}

// NewView creates a view with the given theme.
func NewView(theme Theme, statusLine bool, width, height int) *View {
	return &View{
		theme:      theme,
		statusLine: statusLine,
		buf:        NewCellBuffer(width, height),
	}
}

// Resize adjusts the view to new terminal dimensions.
func (v *View) Resize(width, height int) {
	v.buf.Resize(width, height)
}

// SetTheme swaps the color theme, e.g. after a config reload.
func (v *View) SetTheme(theme Theme) {
	v.theme = theme
}

// SetStatusLine toggles the status line.
func (v *View) SetStatusLine(on bool) {
	v.statusLine = on
}

// Render rasterizes state and flushes the result to the backend.
func (v *View) Render(state StateReader, b Backend) {
	v.RenderInto(state, v.buf)
	v.buf.FlushTo(b)
}

// RenderInto rasterizes state into an arbitrary buffer.
func (v *View) RenderInto(state StateReader, buf *CellBuffer) {
	buf.Fill(Cell{Rune: ' ', Style: v.theme.Background})

	// Finished polygons: closed outlines, oldest drawn first so newer
	// polygons overdraw older ones.
	finished := state.Finished()
	for i := len(finished) - 1; i >= 0; i-- {
		v.drawPolyLine(buf, finished[i].Points, v.theme.Finished, true)
	}

	// In-progress polyline: open outline.
	current := state.Current()
	v.drawPolyLine(buf, current, v.theme.Current, false)

	// Rubber band from the last vertex to the cursor, then the cursor
	// marker itself.
	if cur, ok := state.Cursor(); ok {
		if n := current.Len(); n > 0 {
			v.drawSegment(buf, current[n-1], cur, v.theme.Preview)
		}
		cx, cy := cellOf(cur)
		buf.Set(cx, cy, Cell{Rune: GlyphCursor, Style: v.theme.Cursor})
	}

	if v.statusLine {
		v.drawStatus(buf, state)
	}
}

// drawPolyLine draws edges between consecutive vertices, optionally the
// closing edge, and then vertex markers on top.
func (v *View) drawPolyLine(buf *CellBuffer, pl geom.PolyLine, style tcell.Style, closed bool) {
	n := pl.Len()
	for i := 0; i+1 < n; i++ {
		v.drawSegment(buf, pl[i], pl[i+1], style)
	}
	if closed && n > 2 {
		v.drawSegment(buf, pl[n-1], pl[0], style)
	}
	for _, p := range pl {
		x, y := cellOf(p)
		buf.Set(x, y, Cell{Rune: GlyphVertex, Style: style})
	}
}

// drawSegment draws edge cells between two points with Bresenham stepping.
// Endpoints are left for the vertex markers.
func (v *View) drawSegment(buf *CellBuffer, a, b geom.Point, style tcell.Style) {
	x0, y0 := cellOf(a)
	x1, y1 := cellOf(b)

	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	x, y := x0, y0
	for {
		if x != x0 || y != y0 {
			buf.Set(x, y, Cell{Rune: GlyphEdge, Style: style})
		}
		if x == x1 && y == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

// drawStatus writes the status line into the bottom row.
func (v *View) drawStatus(buf *CellBuffer, state StateReader) {
	w, h := buf.Size()
	if h == 0 {
		return
	}
	y := h - 1

	for x := 0; x < w; x++ {
		buf.Set(x, y, Cell{Rune: ' ', Style: v.theme.Status})
	}

	text := fmt.Sprintf(" polygons: %d | drawing: %d pts | undo: %d | redo: %d ",
		len(state.Finished()), state.Current().Len(), state.UndoCount(), state.RedoCount())
	buf.SetText(0, y, text, v.theme.Status)
}

// cellOf maps a logical point to its cell, rounding to nearest.
func cellOf(p geom.Point) (int, int) {
	return int(math.Round(p.X)), int(math.Round(p.Y))
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
