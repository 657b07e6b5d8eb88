// Package bdf loads BDF bitmap fonts. Characters are looked up by
// their ENCODING value as a rune, mapped to codes through the code
// page and rasterized with the face source.
package bdf

import "io"
import "slices"

import gobdf "github.com/zachomedia/go-bdf"

import "github.com/tinne26/microfont"
import "github.com/tinne26/microfont/source"
import "github.com/tinne26/microfont/source/face"

// Like [Parse](), reading the whole BDF data from the reader first.
func Decode(reader io.Reader, options face.Options) (*microfont.Table, error) {
	data, err := io.ReadAll(reader)
	if err != nil { return nil, err }
	return Parse(data, options)
}

// Parses the BDF data and rasterizes its characters. Only the
// characters defined by the font are considered, further restricted
// to options.Alphabet when it's non-nil.
func Parse(data []byte, options face.Options) (*microfont.Table, error) {
	font, err := gobdf.Parse(data)
	if err != nil { return nil, &source.ParseError{ Source: "bdf", Msg: err.Error() } }
	if len(font.Characters) == 0 {
		return nil, &source.ParseError{ Source: "bdf", Msg: "font has no characters" }
	}

	alphabet := make([]rune, 0, len(font.Characters))
	for _, char := range font.Characters {
		if options.Alphabet != nil && !slices.Contains(options.Alphabet, char.Encoding) { continue }
		alphabet = append(alphabet, char.Encoding)
	}
	options.Alphabet = alphabet
	return face.Load(font.NewFace(), options)
}
