package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// struct Palette is a simple stylesheet built with named [lipgloss.Style] fields
type Palette struct {
	title   lipgloss.Style
	ok      lipgloss.Style
	err     lipgloss.Style
	warn    lipgloss.Style
	help    lipgloss.Style
	subtle  lipgloss.Style
	focused lipgloss.Style
}

func NewPalette(t, s, e, w, h, sub, f string) *Palette {
	return &Palette{
		title:   NewBold(t).MarginBottom(1),
		ok:      NewBold(s),
		err:     NewBold(e),
		warn:    NewStyle(w),
		help:    NewEm(h),
		subtle:  NewStyle(sub),
		focused: NewBold(f),
	}
}

// lightPalette and darkPalette back the persisted theme preference.
var (
	lightPalette = NewPalette("#7D56F4", "#04B575", "#FF0000", "#FFA500", "#626262", "#9A9A9A", "#1DB954")
	darkPalette  = NewPalette("#B794F6", "#2EE6A8", "#FF6B6B", "#FFC04D", "#8A8A8A", "#5C5C5C", "#1ED760")
)

// paletteFor maps a theme name to its palette, defaulting to light.
func paletteFor(theme string) *Palette {
	if theme == "dark" {
		return darkPalette
	}
	return lightPalette
}

func NewStyle(fg string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(fg))
}

func NewBold(fg string) lipgloss.Style {
	return NewStyle(fg).Bold(true)
}

func NewEm(fg string) lipgloss.Style {
	return NewStyle(fg).Italic(true)
}
