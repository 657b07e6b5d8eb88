package mask

import "image"
import "image/color"
import "testing"

func TestComputeRect(t *testing.T) {
	// mask test #1
	mask := image.NewAlpha(image.Rect(-1, -1, 2, 2))
	mask.SetAlpha(-1, -1, color.Alpha{255})
	expected := image.Rect(-1, -1, 0, 0)

	rect := ComputeRect(mask, 0)
	if !rect.Eq(expected) {
		t.Fatalf("expected rect %s, got %s", expected, rect)
	}

	// mask test #2
	mask.SetAlpha(1, 1, color.Alpha{255})
	expected = image.Rect(-1, -1, 2, 2)

	rect = ComputeRect(mask, 0)
	if !rect.Eq(expected) {
		t.Fatalf("expected rect %s, got %s", expected, rect)
	}

	// mask test #3
	mask.SetAlpha(-1, -1, color.Alpha{0}) // clear
	mask.SetAlpha(1, 0, color.Alpha{255})
	expected = image.Rect(1, 0, 2, 2)

	rect = ComputeRect(mask, 0)
	if !rect.Eq(expected) {
		t.Fatalf("expected rect %s, got %s", expected, rect)
	}

	// mask test #4, faint pixels below the threshold
	mask.SetAlpha(-1, 0, color.Alpha{100})
	rect = ComputeRect(mask, 128)
	if !rect.Eq(expected) {
		t.Fatalf("expected rect %s, got %s", expected, rect)
	}
	rect = ComputeRect(mask, 100)
	expected = image.Rect(-1, 0, 2, 2)
	if !rect.Eq(expected) {
		t.Fatalf("expected rect %s, got %s", expected, rect)
	}

	// mask test #5, empty
	rect = ComputeRect(image.NewAlpha(image.Rect(0, 0, 4, 4)), 0)
	if !rect.Empty() {
		t.Fatalf("expected empty rect, got %s", rect)
	}
}

func TestToGlyph(t *testing.T) {
	mask := image.NewAlpha(image.Rect(0, -2, 3, 2))
	mask.SetAlpha(0, -2, color.Alpha{255})
	mask.SetAlpha(2, 1, color.Alpha{200})
	mask.SetAlpha(1, 0, color.Alpha{60})

	glyph, err := ToGlyph('a', mask, mask.Rect, 128)
	if err != nil { t.Fatalf("unexpected ToGlyph() error: %s", err) }
	if glyph.Width != 3 || glyph.Height != 4 {
		t.Fatalf("expected 3x4 glyph, got %dx%d", glyph.Width, glyph.Height)
	}
	expected := "X  \n   \n   \n  X"
	if glyph.String() != expected {
		t.Fatalf("expected glyph %q, got %q", expected, glyph.String())
	}

	// region partially outside the mask
	glyph, err = ToGlyph('b', mask, image.Rect(1, -3, 5, 2), 50)
	if err != nil { t.Fatalf("unexpected ToGlyph() error: %s", err) }
	if glyph.Width != 4 || glyph.Height != 5 || glyph.Ink() != 2 {
		t.Fatalf("expected 4x5 glyph with 2 set pixels, got %dx%d with %d", glyph.Width, glyph.Height, glyph.Ink())
	}
	if !glyph.At(0, 3) || !glyph.At(1, 4) {
		t.Fatalf("unexpected glyph:\n%s", glyph)
	}

	_, err = ToGlyph('c', mask, image.Rect(0, 0, 40, 1), 1)
	if err == nil { t.Fatalf("expected error for a region wider than the maximum glyph width") }
}
