package renderer

import "github.com/gdamore/tcell/v2"

// Cell is one rendered screen cell.
type Cell struct {
	Rune  rune
	Style tcell.Style
}

// EmptyCell returns a blank cell in the default style.
func EmptyCell() Cell {
	return Cell{Rune: ' ', Style: tcell.StyleDefault}
}

// Glyphs used by the view.
const (
	// GlyphVertex marks a polygon vertex.
	GlyphVertex = '●'

	// GlyphEdge marks an edge cell between vertices.
	GlyphEdge = '·'

	// GlyphCursor marks the pointer preview position.
	GlyphCursor = '+'
)

// Theme bundles the styles used by the view.
type Theme struct {
	Background tcell.Style
	Finished   tcell.Style
	Current    tcell.Style
	Preview    tcell.Style
	Cursor     tcell.Style
	Status     tcell.Style
}

// DarkTheme returns styles for dark terminals.
func DarkTheme() Theme {
	base := tcell.StyleDefault.Background(tcell.ColorBlack)
	return Theme{
		Background: base,
		Finished:   base.Foreground(tcell.ColorWhite),
		Current:    base.Foreground(tcell.ColorYellow),
		Preview:    base.Foreground(tcell.ColorGray).Dim(true),
		Cursor:     base.Foreground(tcell.ColorAqua).Bold(true),
		Status:     tcell.StyleDefault.Reverse(true),
	}
}

// LightTheme returns styles for light terminals.
func LightTheme() Theme {
	base := tcell.StyleDefault.Background(tcell.ColorWhite)
	return Theme{
		Background: base,
		Finished:   base.Foreground(tcell.ColorBlack),
		Current:    base.Foreground(tcell.ColorDarkBlue),
		Preview:    base.Foreground(tcell.ColorGray).Dim(true),
		Cursor:     base.Foreground(tcell.ColorDarkRed).Bold(true),
		Status:     tcell.StyleDefault.Reverse(true),
	}
}

// ThemeByName returns the theme for a config name, defaulting to dark.
func ThemeByName(name string) Theme {
	if name == "light" {
		return LightTheme()
	}
	return DarkTheme()
}
