package microfont

import "github.com/tinne26/microfont/internal"

const Magic = internal.Magic

// Fonts cover a fixed, contiguous range of single byte codes.
// See [CodePage] for the mapping between codes and runes.
const (
	FirstCode = internal.FirstCode
	LastCode  = internal.LastCode
	NumCodes  = internal.NumCodes
)

const MaxGlyphWidth  = internal.MaxGlyphWidth
const MaxGlyphHeight = internal.MaxGlyphHeight

// Index value for codes that have no glyph. Glyph data can't
// start at this bit offset or beyond.
const Empty = internal.Empty

const HeaderSize = internal.HeaderSize
const IndexSize  = internal.IndexSize
const MaxFontDataSize = internal.MaxFontDataSize
