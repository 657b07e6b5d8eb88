// Package source groups the glyph sources that fill a
// [microfont.Table]: the textual glyph format (text), raw Fony
// dumps (fony), BDF fonts (bdf) and font.Face rasterization (face).
//
// All sources produce tables where every glyph has the same height,
// which the compiled font then stores as its single height.
package source

import "fmt"

// Error for malformed source data. Line is 1-based, or 0 when the
// error can't be attributed to a specific line.
type ParseError struct {
	Source string // file name or format name
	Line int
	Msg string
}

func (self *ParseError) Error() string {
	if self.Line > 0 {
		return fmt.Sprintf("%s:%d: %s", self.Source, self.Line, self.Msg)
	}
	return self.Source + ": " + self.Msg
}

// Returns a [*ParseError] with a formatted message.
func Errorf(source string, line int, format string, args ...any) error {
	return &ParseError{ Source: source, Line: line, Msg: fmt.Sprintf(format, args...) }
}
