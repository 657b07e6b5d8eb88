package builder

import "fmt"

import "github.com/tinne26/microfont"
import "github.com/tinne26/microfont/internal"

// Global parameters of the binary layout, derived from the glyph
// table before encoding.
type Layout struct {
	Height uint8 // max glyph height, at least 1
	WidthBits uint8 // bits of the (width - 1) field of each glyph
}

// Scans the table once and computes the font layout. Widths are
// stored as (width - 1), which saves a bit whenever the maximum
// width is a power of two: width 8 needs 3 bits, width 9 needs 4.
// Tables without glyphs get WidthBits = 0 and Height = 1.
func PlanLayout(table *microfont.Table) Layout {
	maxWidth, maxHeight := table.Bounds()
	if maxHeight < 1 { maxHeight = 1 }

	var widthBits uint8
	if maxWidth > 0 {
		widthBits = internal.BitLen(uint32(maxWidth - 1))
	}
	return Layout{ Height: uint8(maxHeight), WidthBits: widthBits }
}

// Number of payload bits a glyph takes when encoded with this layout.
func (self Layout) GlyphBits(glyph *microfont.Glyph) int {
	return int(self.WidthBits) + glyph.Width*glyph.Height
}

func (self Layout) fits(glyph *microfont.Glyph) bool {
	if glyph.Height > int(self.Height) { return false }
	return internal.BitLen(uint32(glyph.Width - 1)) <= self.WidthBits
}

// The resource stores no per glyph height, so every present glyph
// must have the layout height to decode back as it was encoded.
func (self Layout) checkHeights(table *microfont.Table) error {
	var err error
	table.Each(func(glyph *microfont.Glyph) {
		if err != nil || glyph.Height == int(self.Height) { return }
		err = fmt.Errorf(
			"%w: glyph 0x%02X has %d rows, but the font height is %d",
			microfont.ErrInvalidGlyphDimensions, glyph.Code, glyph.Height, self.Height,
		)
	})
	return err
}
