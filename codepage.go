package microfont

import "golang.org/x/text/encoding/charmap"

// A single byte code page, mapping font codes to runes.
type CodePage struct {
	charmap *charmap.Charmap
}

// The default code page of microfonts is Windows-1251: the upper
// half of the code range holds Cyrillic letters, with 0xC0 - 0xFF
// being 'А' to 'я'.
var DefaultCodePage = CodePage{ charmap: charmap.Windows1251 }

// Creates a code page from any of the charmaps in
// golang.org/x/text/encoding/charmap.
func NewCodePage(cm *charmap.Charmap) CodePage {
	if cm == nil { panic("nil charmap") }
	return CodePage{ charmap: cm }
}

func (self CodePage) cm() *charmap.Charmap {
	if self.charmap == nil { return charmap.Windows1251 }
	return self.charmap
}

func (self CodePage) String() string { return self.cm().String() }

// Returns the rune for the given code. Codes without a mapping
// return utf8.RuneError.
func (self CodePage) Rune(code byte) rune {
	return self.cm().DecodeByte(code)
}

// Returns the code for the given rune, if it's representable in
// the code page and in the font code range.
func (self CodePage) Code(r rune) (byte, bool) {
	code, ok := self.cm().EncodeRune(r)
	if !ok || code < FirstCode { return 0, false }
	return code, true
}

// Converts a string to font codes. Runes that can't be represented
// are replaced by the given fallback code.
func (self CodePage) Codes(text string, fallback byte) []byte {
	codes := make([]byte, 0, len(text))
	for _, r := range text {
		code, ok := self.Code(r)
		if !ok { code = fallback }
		codes = append(codes, code)
	}
	return codes
}
