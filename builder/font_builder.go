package builder

import "errors"

import "github.com/sirupsen/logrus"

import "github.com/tinne26/microfont"

var ErrNilTable = errors.New("nil glyph table")

// Compilation options.
type Options struct {
	// Store identical glyphs only once. Enabled by default in [New]().
	Dedup bool
}

// A [Font] builder that collects glyphs and compiles them into a
// [microfont.Font].
//
// The builder owns its table: glyphs are cloned on the way in and
// on the way out, so callers can keep modifying their own copies.
type Font struct {
	table microfont.Table
	dedup bool
}

// Creates a new builder with no glyphs and deduplication enabled.
func New() *Font {
	return &Font{ dedup: true }
}

// Creates a new builder with a copy of the glyphs of the given table.
func NewFrom(table *microfont.Table) *Font {
	builder := New()
	table.Each(func(glyph *microfont.Glyph) {
		err := builder.table.Set(glyph.Clone())
		if err != nil { panic(err) } // table glyphs are always valid
	})
	return builder
}

func (self *Font) SetGlyph(glyph *microfont.Glyph) error {
	if glyph == nil { return microfont.ErrNilGlyph }
	return self.table.Set(glyph.Clone())
}

func (self *Font) RemoveGlyph(code byte) {
	self.table.Remove(code)
}

func (self *Font) GetGlyph(code byte) (*microfont.Glyph, bool) {
	glyph, found := self.table.Get(code)
	if !found { return nil, false }
	return glyph.Clone(), true
}

func (self *Font) GetNumGlyphs() int { return self.table.Count() }

func (self *Font) SetDedup(enabled bool) { self.dedup = enabled }
func (self *Font) GetDedup() bool { return self.dedup }

// Returns the layout that [Font.Build]() would use with the current glyphs.
func (self *Font) Layout() Layout { return PlanLayout(&self.table) }

func (self *Font) Build() (*microfont.Font, error) {
	return Compile(&self.table, Options{ Dedup: self.dedup })
}

// Builds the font and sends it to the given sink.
func (self *Font) Export(sink microfont.Sink) error {
	font, err := self.Build()
	if err != nil { return err }
	return font.Export(sink)
}

// Runs the three compilation stages on the given table: layout
// planning, glyph encoding and assembly. The table is not modified.
//
// All present glyphs must share the same height. Otherwise the
// error wraps [microfont.ErrInvalidGlyphDimensions].
func Compile(table *microfont.Table, options Options) (*microfont.Font, error) {
	if table == nil { return nil, ErrNilTable }
	logger := microfont.Logger()

	layout := PlanLayout(table)
	err := layout.checkHeights(table)
	if err != nil { return nil, err }
	logger.WithFields(logrus.Fields{
		"glyphs": table.Count(), "height": layout.Height, "width_bits": layout.WidthBits,
	}).Debug("planned font layout")

	encoding, err := Encode(table, layout, options.Dedup)
	if err != nil { return nil, err }

	font := Assemble(layout, encoding)
	logger.WithFields(logrus.Fields{
		"payload_bits": encoding.Bits, "payload_words": len(encoding.Payload), "size": font.Size(),
	}).Debug("assembled font")
	return font, nil
}
