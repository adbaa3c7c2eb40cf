package ui

import (
	"fmt"
	"strings"
)

// Segment is a string with a Style.
type Segment struct {
	Style
	Text string
}

// VTString renders the styled segment using VT-style escape sequences.
func (s *Segment) VTString() string {
	sgr := s.SGR()
	if sgr == "" {
		return s.Text
	}
	return fmt.Sprintf("\033[%sm%s\033[m", sgr, s.Text)
}

// Text contains of a list of styled Segments.
type Text []*Segment

// T constructs a new Text with the given content and the given Styling's
// applied.
func T(s string, ts ...Styling) Text {
	seg := &Segment{Text: s}
	for _, t := range ts {
		t(&seg.Style)
	}
	return Text{seg}
}

// Concat returns a new Text with the segments of t2 appended to those of t.
func (t Text) Concat(t2 Text) Text {
	nt := make(Text, 0, len(t)+len(t2))
	return append(append(nt, t...), t2...)
}

// String returns the content of the text with all styling dropped.
func (t Text) String() string {
	var sb strings.Builder
	for _, seg := range t {
		sb.WriteString(seg.Text)
	}
	return sb.String()
}

// VTString renders the styled text using VT-style escape sequences.
func (t Text) VTString() string {
	var sb strings.Builder
	for _, seg := range t {
		sb.WriteString(seg.VTString())
	}
	return sb.String()
}

// Render renders the text with VT-style escape sequences if color is true, or
// as plain text otherwise.
func (t Text) Render(color bool) string {
	if color {
		return t.VTString()
	}
	return t.String()
}
