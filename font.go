package microfont

import "errors"
import "image"

import "github.com/tinne26/microfont/bitstream"
import "github.com/tinne26/microfont/internal"

// A [Font] is a read-only compiled microfont. Fonts are created
// with the builder package or with [Parse]().
//
// The resource layout, all integers little-endian:
//
//	offset 0:       uint16     magic (0xFACE)
//	offset 2:       uint8      height
//	offset 3:       uint8      width bits
//	offset 4:       uint16[N]  index, N = NumCodes, Empty = 0xFFFF
//	offset 4 + 2N:  uint32[]   payload
//
// Each index entry is the bit offset of the glyph within the
// payload. Glyph data is a (width - 1) field of 'width bits' bits,
// followed by the pixels column by column, top to bottom, one bit
// each. Glyphs that share the same bitmap may share the offset.
type Font internal.Font

var ErrNoPayload = errors.New("font payload can't be empty when glyphs are present")
var ErrInvalidHeight = errors.New("font height must be in [1, 64]")
var ErrInvalidWidthBits = errors.New("width bits can't exceed 5")

func (self *Font) Magic() uint16 { return internal.DecodeUint16LE(self.Data[0 : 2]) }
func (self *Font) Height() uint8 { return self.Data[2] }
func (self *Font) WidthBits() uint8 { return self.Data[3] }

// Total size of the resource in bytes.
func (self *Font) Size() int { return len(self.Data) }

func (self *Font) PayloadWords() int { return len(self.Payload) }

// Returns the payload bit offset for the given code, or [Empty].
func (self *Font) Offset(code byte) uint16 {
	index, ok := codeIndex(code)
	if !ok { return Empty }
	start := HeaderSize + index*2
	return internal.DecodeUint16LE(self.Data[start : start + 2])
}

func (self *Font) Has(code byte) bool { return self.Offset(code) != Empty }

// Returns the width of the glyph for the given code, or 0 if
// the font has no glyph for it.
func (self *Font) Width(code byte) int {
	offset := self.Offset(code)
	if offset == Empty { return 0 }
	reader := bitstream.NewReader(self.Payload)
	reader.Seek(int(offset))
	return int(reader.ReadBits(int(self.WidthBits()))) + 1
}

// Decodes the glyph for the given code. The font doesn't store
// per glyph heights, so the glyph is decoded with the font height,
// which is the height of every glyph compiled by the builder. Rows
// that would extend beyond the end of the payload are left unset.
func (self *Font) Glyph(code byte) (*Glyph, bool) {
	offset := self.Offset(code)
	if offset == Empty { return nil, false }

	reader := bitstream.NewReader(self.Payload)
	reader.Seek(int(offset))
	width  := int(reader.ReadBits(int(self.WidthBits()))) + 1
	height := int(self.Height())
	glyph, err := NewGlyph(code, width, height)
	if err != nil { panic(err) } // Validate() guarantees proper widths
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			if reader.Remaining() == 0 { return glyph, true }
			if reader.ReadBit() { glyph.Set(x, y, true) }
		}
	}
	return glyph, true
}

// Returns a copy of the resource bytes.
func (self *Font) Bytes() []byte {
	return self.AppendTo(make([]byte, 0, len(self.Data)))
}

func (self *Font) AppendTo(buffer []byte) []byte {
	return append(buffer, self.Data...)
}

// Sends the resource to the given sink in a single call.
func (self *Font) Export(sink Sink) error {
	return sink.WriteBytes(self.Data)
}

// Checks the header and that the width field of every indexed
// glyph lies within the payload. Glyph pixels are not checked, as
// glyphs shorter than the font height may end before it.
func (self *Font) Validate() error {
	if len(self.Data) < HeaderSize + IndexSize {
		return errors.New("font data is shorter than header and index")
	}
	if (len(self.Data) - HeaderSize - IndexSize) & 0b11 != 0 {
		return errors.New("payload size must be a multiple of 4")
	}
	if self.Magic() != Magic { return errors.New("invalid magic") }
	err := checkHeader(self.Height(), self.WidthBits())
	if err != nil { return err }
	if len(self.Payload) != (len(self.Data) - HeaderSize - IndexSize) >> 2 {
		panic("broken code")
	}

	payloadBits := len(self.Payload)*32
	for i := 0; i < NumCodes; i++ {
		offset := self.Offset(CodeAt(i))
		if offset == Empty { continue }
		if len(self.Payload) == 0 { return ErrNoPayload }
		if int(offset) + int(self.WidthBits()) >= payloadBits {
			return errors.New("glyph offset beyond payload end")
		}
	}
	return nil
}

func checkHeader(height, widthBits uint8) error {
	if height == 0 || height > MaxGlyphHeight { return ErrInvalidHeight }
	if widthBits > internal.MaxWidthBits { return ErrInvalidWidthBits }
	return nil
}

// Draws the given codes into a new mask, left to right, with the
// given number of empty columns between glyphs. Codes without glyph
// are skipped.
func (self *Font) RenderText(codes []byte, spacing int) *image.Alpha {
	if spacing < 0 { spacing = 0 }
	width := 0
	for _, code := range codes {
		glyphWidth := self.Width(code)
		if glyphWidth == 0 { continue }
		if width > 0 { width += spacing }
		width += glyphWidth
	}

	mask := image.NewAlpha(image.Rect(0, 0, width, int(self.Height())))
	x := 0
	for _, code := range codes {
		glyph, found := self.Glyph(code)
		if !found { continue }
		if x > 0 { x += spacing }
		for gy := 0; gy < glyph.Height; gy++ {
			index := gy*mask.Stride + x
			for gx := 0; gx < glyph.Width; gx++ {
				if glyph.At(gx, gy) { mask.Pix[index + gx] = 255 }
			}
		}
		x += glyph.Width
	}
	return mask
}
