// Package mask converts rasterized alpha masks into glyph bitmaps.
package mask

import "image"

// Returns the bounds of the pixels with alpha >= threshold. A zero
// threshold is treated as 1. Masks without such pixels return the
// zero rectangle.
func ComputeRect(mask *image.Alpha, threshold uint8) image.Rectangle {
	if threshold == 0 { threshold = 1 }
	minX := mask.Rect.Max.X + 1
	maxX := mask.Rect.Min.X - 1
	minY := mask.Rect.Max.Y + 1
	maxY := mask.Rect.Min.Y - 1

	empty := true
	for y := mask.Rect.Min.Y; y < mask.Rect.Max.Y; y++ {
		index := (y - mask.Rect.Min.Y)*mask.Stride
		activeValueInRow := false
		for x := mask.Rect.Min.X; x < mask.Rect.Max.X; x++ {
			if mask.Pix[index] >= threshold {
				activeValueInRow = true
				if x < minX { minX = x }
				if x > maxX { maxX = x }
			}
			index += 1
		}

		if activeValueInRow {
			empty = false
			if y < minY { minY = y }
			if y > maxY { maxY = y }
		}
	}

	if empty { return image.Rectangle{} }
	return image.Rect(minX, minY, maxX + 1, maxY + 1)
}
