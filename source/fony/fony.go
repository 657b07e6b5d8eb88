// Package fony reads the raw binary glyph dumps exported by the
// Fony bitmap font editor.
//
// A dump is a plain sequence of glyphs starting at code 0x20, each
// glyph 'size' bytes long: one byte per pixel row, top to bottom,
// with the most significant bit being the leftmost pixel. Glyphs
// are thus always 8 pixels wide.
package fony

import "io"

import "github.com/sirupsen/logrus"

import "github.com/tinne26/microfont"
import "github.com/tinne26/microfont/source"

const GlyphWidth = 8

// Decodes a dump with the given number of rows per glyph. An
// incomplete trailing glyph is ignored. Glyphs with no ink are
// kept, as they still carry a width (e.g. the space).
func Decode(reader io.Reader, size int) (*microfont.Table, error) {
	if size < 1 || size > microfont.MaxGlyphHeight {
		return nil, source.Errorf("fony", 0, "glyph size must be in [1, %d], got %d", microfont.MaxGlyphHeight, size)
	}

	data, err := io.ReadAll(io.LimitReader(reader, int64(microfont.NumCodes*size + 1)))
	if err != nil { return nil, err }
	if len(data) > microfont.NumCodes*size {
		return nil, source.Errorf("fony", 0, "dump has more than %d glyphs", microfont.NumCodes)
	}
	numGlyphs := len(data)/size
	if len(data) % size != 0 {
		microfont.Logger().WithFields(logrus.Fields{
			"size": size, "trailing_bytes": len(data) % size,
		}).Warn("ignoring incomplete trailing glyph")
	}

	table := microfont.NewTable()
	for i := 0; i < numGlyphs; i++ {
		glyph, err := microfont.NewGlyph(microfont.CodeAt(i), GlyphWidth, size)
		if err != nil { panic(err) } // sizes already checked
		bitmap := data[i*size : (i + 1)*size]
		for y, row := range bitmap {
			for x := 0; x < GlyphWidth; x++ {
				if (row >> (7 - x)) & 1 == 1 { glyph.Set(x, y, true) }
			}
		}
		err = table.Set(glyph)
		if err != nil { return nil, err }
	}
	microfont.Logger().WithField("glyphs", numGlyphs).Debug("decoded fony dump")
	return table, nil
}
