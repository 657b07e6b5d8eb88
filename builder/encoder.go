package builder

import "fmt"
import "errors"
import "slices"

import "github.com/sirupsen/logrus"

import "github.com/tinne26/microfont"
import "github.com/tinne26/microfont/bitstream"
import "github.com/tinne26/microfont/internal"

var ErrCapacityExceeded = errors.New("glyph data exceeds the addressable payload capacity")
var ErrLayoutMismatch = errors.New("glyph doesn't fit the given layout")

// Returned when a glyph would have to start at a bit offset that
// the index can't address. Wraps [ErrCapacityExceeded].
type CapacityError struct {
	Code byte // first glyph that couldn't be placed
	Offset int // bit offset where it would have started
}

func (self *CapacityError) Error() string {
	return fmt.Sprintf(
		"%s: glyph 0x%02X would start at bit offset %d (limit is %d)",
		ErrCapacityExceeded.Error(), self.Code, self.Offset, microfont.Empty - 1,
	)
}

func (self *CapacityError) Unwrap() error { return ErrCapacityExceeded }

// Result of encoding a glyph table.
type Encoding struct {
	Index [microfont.NumCodes]uint16 // bit offsets or microfont.Empty
	Payload []uint32 // internal.CeilWords(Bits) words, unused bits are zero
	Bits int // final cursor position
}

// Encodes all the glyphs of the table in ascending code order.
//
// With dedup enabled, a glyph identical to a previous one (same
// width, height and pixels) reuses the previous index entry and
// writes no data.
//
// Glyph data is the (width - 1) field followed by the pixels column
// by column, top to bottom, for the glyph's own height.
//
// Glyph heights are not checked against each other: use [Compile]()
// unless the table is known to have a single height.
//
// Encoding fails with a [*CapacityError] as soon as a glyph would
// start at an offset >= microfont.Empty. No partial result is
// returned in that case.
func Encode(table *microfont.Table, layout Layout, dedup bool) (*Encoding, error) {
	var encoding Encoding
	logger := microfont.Logger()

	words := make([]uint32, internal.MaxPayloadWords)
	writer := bitstream.NewWriter(words)
	for i := 0; i < microfont.NumCodes; i++ {
		glyph := table.At(i)
		if glyph == nil || glyph.IsEmpty() {
			encoding.Index[i] = microfont.Empty
			continue
		}

		offset := writer.Tell()
		if offset >= microfont.Empty {
			return nil, &CapacityError{ Code: glyph.Code, Offset: offset }
		}

		if dedup {
			match := findDuplicate(table, i, glyph)
			if match >= 0 {
				encoding.Index[i] = encoding.Index[match]
				logger.WithFields(logrus.Fields{
					"code": glyph.Code, "alias": microfont.CodeAt(match), "offset": encoding.Index[i],
				}).Trace("aliased glyph")
				continue
			}
		}

		if !layout.fits(glyph) { return nil, ErrLayoutMismatch }
		encoding.Index[i] = uint16(offset)
		writer.WriteBits(uint32(glyph.Width - 1), int(layout.WidthBits))
		for x := 0; x < glyph.Width; x++ {
			for y := 0; y < glyph.Height; y++ {
				writer.WriteBit(glyph.At(x, y))
			}
		}
		logger.WithFields(logrus.Fields{
			"code": glyph.Code, "offset": offset, "bits": writer.Tell() - offset,
		}).Trace("encoded glyph")
	}

	encoding.Bits = writer.Tell()
	encoding.Payload = slices.Clone(words[ : internal.CeilWords(encoding.Bits)])
	return &encoding, nil
}

// Returns the position of the first glyph before 'index' that is
// identical to the given one, or -1.
func findDuplicate(table *microfont.Table, index int, glyph *microfont.Glyph) int {
	for i := 0; i < index; i++ {
		prev := table.At(i)
		if prev == nil || prev.IsEmpty() { continue }
		if prev.Equal(glyph) { return i }
	}
	return -1
}
