package bdf

import "testing"
import "errors"
import "strings"

import "github.com/tinne26/microfont/source"
import "github.com/tinne26/microfont/source/face"

const testBDF = `STARTFONT 2.1
FONT -test-micro-medium-r-normal--6-60-75-75-c-40-iso10646-1
SIZE 6 75 75
FONTBOUNDINGBOX 4 6 0 -1
STARTPROPERTIES 4
FONT_ASCENT 5
FONT_DESCENT 1
DEFAULT_CHAR 65
PIXEL_SIZE 6
ENDPROPERTIES
CHARS 2
STARTCHAR A
ENCODING 65
SWIDTH 666 0
DWIDTH 4 0
BBX 3 5 0 0
BITMAP
40
A0
E0
A0
A0
ENDCHAR
STARTCHAR B
ENCODING 66
SWIDTH 666 0
DWIDTH 4 0
BBX 3 5 0 0
BITMAP
C0
A0
C0
A0
C0
ENDCHAR
ENDFONT
`

func TestDecode(t *testing.T) {
	table, err := Decode(strings.NewReader(testBDF), face.Options{})
	if err != nil { t.Fatalf("unexpected Decode() error: %s", err) }
	if table.Count() != 2 { t.Fatalf("expected 2 glyphs, got %d", table.Count()) }

	a, foundA := table.Get('A')
	b, foundB := table.Get('B')
	if !foundA || !foundB { t.Fatalf("expected glyphs 'A' and 'B'") }
	if a.Width != 4 || b.Width != 4 {
		t.Fatalf("expected advance widths 4, got %d and %d", a.Width, b.Width)
	}
	if a.Height != b.Height || a.Height < 5 || a.Height > 8 {
		t.Fatalf("expected equal heights in [5, 8], got %d and %d", a.Height, b.Height)
	}
	if a.Ink() != 10 || b.Ink() != 10 {
		t.Fatalf("expected 10 set pixels per glyph, got %d and %d", a.Ink(), b.Ink())
	}
	if a.Equal(b) { t.Fatalf("expected 'A' and 'B' to differ") }
}

func TestParseAlphabet(t *testing.T) {
	table, err := Parse([]byte(testBDF), face.Options{ Alphabet: []rune("BC"), Proportional: true })
	if err != nil { t.Fatalf("unexpected Parse() error: %s", err) }
	if table.Count() != 1 { t.Fatalf("expected 1 glyph, got %d", table.Count()) }
	glyph, found := table.Get('B')
	if !found { t.Fatalf("expected glyph 'B'") }
	if glyph.Width != 3 {
		t.Fatalf("expected proportional width 3, got %d\n%s", glyph.Width, glyph)
	}
}

func TestParseInvalid(t *testing.T) {
	_, err := Parse([]byte("STARTFONT 2.1\nENDFONT\n"), face.Options{})
	var parseErr *source.ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected *source.ParseError, got %v", err)
	}
}
