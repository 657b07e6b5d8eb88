package mask

import "image"

import "github.com/tinne26/microfont"

// Creates a glyph from the given region of the mask. Pixels with
// alpha >= threshold are set (a zero threshold is treated as 1).
// Parts of the region outside the mask bounds are left unset.
func ToGlyph(code byte, mask *image.Alpha, region image.Rectangle, threshold uint8) (*microfont.Glyph, error) {
	if threshold == 0 { threshold = 1 }
	glyph, err := microfont.NewGlyph(code, region.Dx(), region.Dy())
	if err != nil { return nil, err }

	visible := region.Intersect(mask.Rect)
	for y := visible.Min.Y; y < visible.Max.Y; y++ {
		index := mask.PixOffset(visible.Min.X, y)
		for x := visible.Min.X; x < visible.Max.X; x++ {
			if mask.Pix[index] >= threshold {
				glyph.Set(x - region.Min.X, y - region.Min.Y, true)
			}
			index += 1
		}
	}
	return glyph, nil
}
