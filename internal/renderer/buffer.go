package renderer

import "github.com/gdamore/tcell/v2"

// CellBuffer is an in-memory grid of cells the view draws into before the
// result is flushed to a backend in one pass.
type CellBuffer struct {
	width, height int
	cells         [][]Cell
}

// NewCellBuffer creates a buffer with the given dimensions.
func NewCellBuffer(width, height int) *CellBuffer {
	cb := &CellBuffer{}
	cb.Resize(width, height)
	return cb
}

// Resize reallocates the buffer. Content is discarded.
func (cb *CellBuffer) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	cb.width = width
	cb.height = height
	cb.cells = make([][]Cell, height)
	for y := 0; y < height; y++ {
		row := make([]Cell, width)
		for x := range row {
			row[x] = EmptyCell()
		}
		cb.cells[y] = row
	}
}

// Size returns the buffer dimensions.
func (cb *CellBuffer) Size() (width, height int) {
	return cb.width, cb.height
}

// Fill sets every cell to the given cell.
func (cb *CellBuffer) Fill(cell Cell) {
	for y := 0; y < cb.height; y++ {
		for x := 0; x < cb.width; x++ {
			cb.cells[y][x] = cell
		}
	}
}

// Set writes a cell. Out-of-bounds writes are ignored.
func (cb *CellBuffer) Set(x, y int, cell Cell) {
	if x < 0 || x >= cb.width || y < 0 || y >= cb.height {
		return
	}
	cb.cells[y][x] = cell
}

// Get reads a cell. Out-of-bounds reads return the empty cell.
func (cb *CellBuffer) Get(x, y int) Cell {
	if x < 0 || x >= cb.width || y < 0 || y >= cb.height {
		return EmptyCell()
	}
	return cb.cells[y][x]
}

// SetText writes a string starting at (x, y), clipped to the row.
func (cb *CellBuffer) SetText(x, y int, text string, style tcell.Style) {
	for _, r := range text {
		cb.Set(x, y, Cell{Rune: r, Style: style})
		x++
	}
}

// FlushTo copies every cell to the backend.
func (cb *CellBuffer) FlushTo(b Backend) {
	for y := 0; y < cb.height; y++ {
		for x := 0; x < cb.width; x++ {
			c := cb.cells[y][x]
			b.SetCell(x, y, c.Rune, c.Style)
		}
	}
	b.Show()
}
