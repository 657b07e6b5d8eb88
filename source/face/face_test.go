package face

import "testing"
import "errors"

import "golang.org/x/image/font/basicfont"
import "golang.org/x/image/font/gofont/goregular"
import "golang.org/x/image/math/fixed"
import "golang.org/x/text/encoding/charmap"

import "github.com/tinne26/microfont"

func TestLoadBasicFace(t *testing.T) {
	face := basicfont.Face7x13
	table, err := Load(face, Options{ Alphabet: []rune("AB .") })
	if err != nil { t.Fatalf("unexpected Load() error: %s", err) }
	if table.Count() != 4 { t.Fatalf("expected 4 glyphs, got %d", table.Count()) }

	table.Each(func(glyph *microfont.Glyph) {
		if glyph.Width != 7 || glyph.Height != 13 {
			t.Fatalf("glyph %q: expected 7x13, got %dx%d", glyph.Code, glyph.Width, glyph.Height)
		}
	})

	space, _ := table.Get(' ')
	if space.Ink() != 0 { t.Fatalf("expected space to have no ink") }

	// compare against the face atlas
	glyph, _ := table.Get('A')
	_, _, maskp, _, _ := face.Glyph(fixed.P(0, 11), 'A')
	for y := 0; y < 13; y++ {
		for x := 0; x < 7; x++ {
			expected := false
			if x < face.Width {
				_, _, _, alpha := face.Mask.At(x, maskp.Y + y).RGBA()
				expected = (alpha >> 8 >= DefaultThreshold)
			}
			if glyph.At(x, y) != expected {
				t.Fatalf("glyph 'A' pixel (%d, %d): expected %t, got %t\n%s", x, y, expected, glyph.At(x, y), glyph)
			}
		}
	}
	if glyph.Ink() == 0 { t.Fatalf("expected 'A' to have ink") }
}

func TestLoadProportional(t *testing.T) {
	table, err := Load(basicfont.Face7x13, Options{ Alphabet: []rune("i. "), Proportional: true })
	if err != nil { t.Fatalf("unexpected Load() error: %s", err) }
	spaced, err := Load(basicfont.Face7x13, Options{ Alphabet: []rune("i. "), Proportional: true, Spacing: 2 })
	if err != nil { t.Fatalf("unexpected Load() error: %s", err) }

	for _, code := range []byte("i.") {
		glyph, _ := table.Get(code)
		if glyph.Width >= 7 || glyph.Width < 1 {
			t.Fatalf("glyph %q: expected ink width in [1, 6], got %d", code, glyph.Width)
		}
		if glyph.Height != 13 {
			t.Fatalf("glyph %q: expected height 13, got %d", code, glyph.Height)
		}
		for x := 0; x < glyph.Width; x++ {
			// the first and last columns must have ink
			if x != 0 && x != glyph.Width - 1 { continue }
			ink := false
			for y := 0; y < glyph.Height; y++ { ink = ink || glyph.At(x, y) }
			if !ink { t.Fatalf("glyph %q: expected ink at column %d\n%s", code, x, glyph) }
		}

		spacedGlyph, _ := spaced.Get(code)
		if spacedGlyph.Width != glyph.Width + 2 || spacedGlyph.Ink() != glyph.Ink() {
			t.Fatalf("glyph %q: expected 2 extra empty columns", code)
		}
	}

	space, _ := table.Get(' ')
	if space.Width != 7 { t.Fatalf("expected space to keep its advance width, got %d", space.Width) }
}

func TestLoadCodePage(t *testing.T) {
	options := Options{ Alphabet: []rune("é"), CodePage: microfont.NewCodePage(charmap.ISO8859_1) }
	table, err := Load(basicfont.Face7x13, options)
	if err != nil { t.Fatalf("unexpected Load() error: %s", err) }
	if _, found := table.Get(0xE9); !found || table.Count() != 1 {
		t.Fatalf("expected a single glyph at code 0xE9")
	}
}

func TestLoadLimits(t *testing.T) {
	ref := basicfont.Face7x13
	tall := &basicfont.Face{
		Advance: 7, Width: 6, Height: 70, Ascent: 60, Descent: 10,
		Mask: ref.Mask, Ranges: ref.Ranges,
	}
	_, err := Load(tall, Options{ Alphabet: []rune("A") })
	if !errors.Is(err, ErrFaceTooTall) { t.Fatalf("expected ErrFaceTooTall, got %v", err) }

	wide := &basicfont.Face{
		Advance: 40, Width: 6, Height: 13, Ascent: 11, Descent: 2,
		Mask: ref.Mask, Ranges: ref.Ranges,
	}
	_, err = Load(wide, Options{ Alphabet: []rune("A") })
	if !errors.Is(err, ErrGlyphTooWide) { t.Fatalf("expected ErrGlyphTooWide, got %v", err) }

	// the same face works in proportional mode
	table, err := Load(wide, Options{ Alphabet: []rune("A"), Proportional: true })
	if err != nil { t.Fatalf("unexpected Load() error: %s", err) }
	if table.Count() != 1 { t.Fatalf("expected 1 glyph, got %d", table.Count()) }
}

func TestLoadTTF(t *testing.T) {
	table, err := LoadTTF(goregular.TTF, 12, Options{ Alphabet: []rune("Hi!") })
	if err != nil { t.Fatalf("unexpected LoadTTF() error: %s", err) }
	if table.Count() != 3 { t.Fatalf("expected 3 glyphs, got %d", table.Count()) }

	maxWidth, height := table.Bounds()
	if height < 12 || height > 20 {
		t.Fatalf("expected line height around 15 pixels, got %d", height)
	}
	if maxWidth > 12 { t.Fatalf("expected glyphs narrower than 12 pixels, got %d", maxWidth) }
	table.Each(func(glyph *microfont.Glyph) {
		if glyph.Height != height {
			t.Fatalf("glyph %q: expected uniform height %d, got %d", glyph.Code, height, glyph.Height)
		}
		if glyph.Ink() == 0 {
			t.Fatalf("glyph %q: expected ink", glyph.Code)
		}
	})

	_, err = LoadTTF([]byte("not a font"), 12, Options{})
	if err == nil { t.Fatalf("expected error for invalid font data") }
}
