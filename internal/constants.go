package internal

const Magic = 0xFACE

// code range of the font. codes are single bytes in the font code page
const FirstCode = 0x20
const LastCode  = 0xFF
const NumCodes  = LastCode - FirstCode + 1
const NumCodesStr = "224"

const MaxGlyphWidth  = 32
const MaxGlyphHeight = 64

// Index value for codes without glyph. It's also the first bit
// offset that can't be addressed by the index.
const Empty = 0xFFFF

// (MaxGlyphWidth - 1) needs 5 bits
const MaxWidthBits = 5
const MaxGlyphBits = MaxWidthBits + MaxGlyphWidth*MaxGlyphHeight

// the last glyph may start at Empty - 1 and still be written in full
const MaxPayloadBits  = (Empty - 1) + MaxGlyphBits
const MaxPayloadWords = (MaxPayloadBits + 31) >> 5

const HeaderSize = 4
const IndexSize  = NumCodes*2
const MaxFontDataSize = HeaderSize + IndexSize + MaxPayloadWords*4
