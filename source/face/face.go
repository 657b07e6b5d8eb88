// Package face rasterizes the glyphs of a [font.Face] into a glyph
// table. Outline fonts (TTF, OTF) can be loaded with [LoadTTF]().
package face

import "fmt"
import "image"
import "errors"
import "slices"
import "unicode/utf8"

import "golang.org/x/image/font"
import "golang.org/x/image/font/opentype"
import "golang.org/x/image/math/fixed"
import "golang.org/x/image/draw"
import "github.com/sirupsen/logrus"

import "github.com/tinne26/microfont"
import "github.com/tinne26/microfont/mask"

const DefaultThreshold = 128

var ErrFaceTooTall = errors.New("face line height exceeds the maximum glyph height")
var ErrGlyphTooWide = errors.New("glyph exceeds the maximum glyph width")

type Options struct {
	// Alpha values >= Threshold become set pixels. Zero means
	// [DefaultThreshold].
	Threshold uint8

	// Monospaced glyphs take their advance width. Proportional
	// glyphs take their ink width plus Spacing empty columns.
	// Proportional glyphs without ink keep their advance width.
	Proportional bool
	Spacing int

	// When non-nil, only these runes are loaded. Useful for faces
	// that substitute missing runes with a replacement glyph.
	Alphabet []rune

	// Zero value means [microfont.DefaultCodePage].
	CodePage microfont.CodePage
}

type entry struct {
	code byte
	r rune
}

// Rasterizes every rune of the code page that the face provides.
// All glyphs get the line height of the face: the ceiled ascent
// plus descent, extended if any glyph reaches beyond them.
func Load(face font.Face, options Options) (*microfont.Table, error) {
	if options.Threshold == 0 { options.Threshold = DefaultThreshold }
	if options.Spacing < 0 { options.Spacing = 0 }

	entries := collectEntries(face, options)
	ascent, descent := lineBounds(face, entries)
	height := ascent + descent
	if height > microfont.MaxGlyphHeight {
		return nil, fmt.Errorf("%w: %d pixels", ErrFaceTooTall, height)
	}
	if height < 1 { height = 1 }

	table := microfont.NewTable()
	for _, entry := range entries {
		glyph, err := rasterize(face, entry, ascent, height, options)
		if err != nil { return nil, err }
		if glyph == nil { continue }
		err = table.Set(glyph)
		if err != nil { return nil, err }
	}

	microfont.Logger().WithFields(logrus.Fields{
		"glyphs": table.Count(), "ascent": ascent, "descent": descent,
	}).Debug("rasterized face")
	return table, nil
}

// Parses TTF or OTF data and rasterizes it at the given size in
// pixels (72 DPI).
func LoadTTF(data []byte, size float64, options Options) (*microfont.Table, error) {
	parsed, err := opentype.Parse(data)
	if err != nil { return nil, err }
	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size: size,
		DPI: 72,
		Hinting: font.HintingFull,
	})
	if err != nil { return nil, err }
	defer face.Close()
	return Load(face, options)
}

func collectEntries(face font.Face, options Options) []entry {
	entries := make([]entry, 0, microfont.NumCodes)
	for i := 0; i < microfont.NumCodes; i++ {
		code := microfont.CodeAt(i)
		r := options.CodePage.Rune(code)
		if r == utf8.RuneError { continue }
		if options.Alphabet != nil && !slices.Contains(options.Alphabet, r) { continue }
		if _, ok := face.GlyphAdvance(r); !ok { continue }
		entries = append(entries, entry{ code, r })
	}
	return entries
}

func lineBounds(face font.Face, entries []entry) (ascent, descent int) {
	metrics := face.Metrics()
	ascent, descent = metrics.Ascent.Ceil(), metrics.Descent.Ceil()
	for _, entry := range entries {
		bounds, _, ok := face.GlyphBounds(entry.r)
		if !ok || bounds.Empty() { continue }
		ascent  = max(ascent, -bounds.Min.Y.Floor())
		descent = max(descent, bounds.Max.Y.Ceil())
	}
	return max(ascent, 0), max(descent, 0)
}

// Returns nil if the face reports no glyph for the rune.
func rasterize(face font.Face, entry entry, ascent, height int, options Options) (*microfont.Glyph, error) {
	advance, _ := face.GlyphAdvance(entry.r)
	advanceWidth := max(advance.Ceil(), 1)

	// proportional glyphs are drawn with room for negative bearings
	originX, canvasWidth := 0, advanceWidth
	if options.Proportional {
		bounds, _, ok := face.GlyphBounds(entry.r)
		if ok {
			originX = max(0, -bounds.Min.X.Floor())
			canvasWidth = max(canvasWidth, originX + bounds.Max.X.Ceil())
		}
	}

	canvas := image.NewAlpha(image.Rect(0, 0, canvasWidth, height))
	dot := fixed.P(originX, ascent)
	dr, glyphMask, maskp, _, ok := face.Glyph(dot, entry.r)
	if !ok { return nil, nil }
	draw.DrawMask(canvas, dr, image.Opaque, image.Point{}, glyphMask, maskp, draw.Over)

	region := image.Rect(0, 0, advanceWidth, height)
	if options.Proportional {
		ink := mask.ComputeRect(canvas, options.Threshold)
		if !ink.Empty() {
			region = image.Rect(ink.Min.X, 0, ink.Max.X + options.Spacing, height)
		}
	}
	if region.Dx() > microfont.MaxGlyphWidth {
		return nil, fmt.Errorf("%w: code 0x%02X is %d pixels wide", ErrGlyphTooWide, entry.code, region.Dx())
	}
	return mask.ToGlyph(entry.code, canvas, region, options.Threshold)
}
