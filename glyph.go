package microfont

import "errors"
import "strings"

import "github.com/bits-and-blooms/bitset"

import "github.com/tinne26/microfont/internal"

var ErrCodeOutOfRange = errors.New("glyph code out of range (must be in [0x20, 0xFF])")
var ErrNilGlyph = errors.New("nil glyph")
var ErrInvalidGlyphDimensions = errors.New("invalid glyph dimensions (width must be in [0, 32] and height in [0, 64])")

// A glyph bitmap for a single code. Pixels are stored row-major,
// pixel (x, y) at bit index y*Width + x.
//
// Glyphs with zero width or height are empty: they are stored in
// a [Table] like any other glyph, but they don't get encoded.
type Glyph struct {
	Code byte
	Width int
	Height int
	Pixels *bitset.BitSet
}

// Creates a glyph with all pixels unset.
func NewGlyph(code byte, width, height int) (*Glyph, error) {
	if code < FirstCode { return nil, ErrCodeOutOfRange }
	err := checkDimensions(width, height)
	if err != nil { return nil, err }
	return &Glyph{
		Code: code,
		Width: width,
		Height: height,
		Pixels: bitset.New(uint(width*height)),
	}, nil
}

// Creates a glyph from text rows, where 'X' or '#' mark set
// pixels and anything else is unset. The width is the length of
// the longest row. Mostly useful for tests and small tools.
func NewGlyphFromRows(code byte, rows ...string) (*Glyph, error) {
	width := 0
	for _, row := range rows {
		if len(row) > width { width = len(row) }
	}
	glyph, err := NewGlyph(code, width, len(rows))
	if err != nil { return nil, err }
	for y, row := range rows {
		for x := 0; x < len(row); x++ {
			if row[x] == 'X' || row[x] == '#' {
				glyph.Set(x, y, true)
			}
		}
	}
	return glyph, nil
}

func checkDimensions(width, height int) error {
	if width  < 0 || width  > MaxGlyphWidth  { return ErrInvalidGlyphDimensions }
	if height < 0 || height > MaxGlyphHeight { return ErrInvalidGlyphDimensions }
	return nil
}

// Returns an error if the glyph can't be stored in a [Table].
func (self *Glyph) Validate() error {
	if self == nil { return ErrNilGlyph }
	if self.Code < FirstCode { return ErrCodeOutOfRange }
	err := checkDimensions(self.Width, self.Height)
	if err != nil { return err }
	if self.Pixels == nil || self.Pixels.Len() != uint(self.Width*self.Height) {
		return ErrInvalidGlyphDimensions
	}
	return nil
}

func (self *Glyph) IsEmpty() bool {
	return self.Width == 0 || self.Height == 0
}

func (self *Glyph) At(x, y int) bool {
	if x < 0 || x >= self.Width || y < 0 || y >= self.Height { return false }
	return self.Pixels.Test(uint(y*self.Width + x))
}

// Panics if (x, y) is out of bounds.
func (self *Glyph) Set(x, y int, on bool) {
	if x < 0 || x >= self.Width || y < 0 || y >= self.Height {
		panic("glyph pixel out of bounds")
	}
	self.Pixels.SetTo(uint(y*self.Width + x), on)
}

// Number of set pixels.
func (self *Glyph) Ink() int { return int(self.Pixels.Count()) }

// Reports whether both glyphs have the same dimensions and pixels.
// The code is not compared.
func (self *Glyph) Equal(other *Glyph) bool {
	if self.Width != other.Width || self.Height != other.Height { return false }
	return self.Pixels.Equal(other.Pixels)
}

func (self *Glyph) Clone() *Glyph {
	return &Glyph{
		Code: self.Code,
		Width: self.Width,
		Height: self.Height,
		Pixels: self.Pixels.Clone(),
	}
}

// Text representation with one line per row, 'X' for set
// pixels and ' ' for unset ones.
func (self *Glyph) String() string {
	var builder strings.Builder
	builder.Grow((self.Width + 1)*self.Height)
	for y := 0; y < self.Height; y++ {
		for x := 0; x < self.Width; x++ {
			if self.At(x, y) {
				builder.WriteByte('X')
			} else {
				builder.WriteByte(' ')
			}
		}
		if y != self.Height - 1 { builder.WriteByte('\n') }
	}
	return builder.String()
}

// ---- internal helpers for the codec ----

func codeIndex(code byte) (int, bool) { return internal.CodeToIndex(code) }
