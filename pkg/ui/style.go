// Package ui contains types for styled text.
package ui

import (
	"strconv"
	"strings"
)

// Color is one of the 8 basic terminal colors.
type Color int

// Basic colors. The zero value means the default color.
const (
	Default Color = iota
	Black
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
)

func (c Color) fgSGR() string { return strconv.Itoa(30 + int(c) - 1) }

// Style specifies how a string shall be displayed.
type Style struct {
	Foreground Color
	Bold       bool
	Dim        bool
}

// SGR returns SGR sequence for the style.
func (s Style) SGR() string {
	var sgr []string

	addIf := func(b bool, code string) {
		if b {
			sgr = append(sgr, code)
		}
	}
	addIf(s.Bold, "1")
	addIf(s.Dim, "2")
	if s.Foreground != Default {
		sgr = append(sgr, s.Foreground.fgSGR())
	}

	return strings.Join(sgr, ";")
}

// Styling specifies how to change a Style.
type Styling func(*Style)

// Common stylings.
var (
	FgRed    Styling = func(s *Style) { s.Foreground = Red }
	FgGreen  Styling = func(s *Style) { s.Foreground = Green }
	FgYellow Styling = func(s *Style) { s.Foreground = Yellow }
	FgCyan   Styling = func(s *Style) { s.Foreground = Cyan }

	Bold Styling = func(s *Style) { s.Bold = true }
	Dim  Styling = func(s *Style) { s.Dim = true }
)
