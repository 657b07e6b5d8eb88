package microfont

import "github.com/tinne26/microfont/internal"

// A fixed capacity glyph table indexed by code, covering
// [FirstCode, LastCode]. Codes without glyph are absent.
//
// Tables are filled by glyph sources and only read by the
// compiler. The zero value is an empty table ready to use.
type Table struct {
	glyphs [NumCodes]*Glyph
}

func NewTable() *Table { return &Table{} }

// Stores the glyph at its code, replacing any previous one. The
// table keeps the pointer, so the glyph shouldn't be modified
// afterwards.
func (self *Table) Set(glyph *Glyph) error {
	err := glyph.Validate()
	if err != nil { return err }
	index, _ := codeIndex(glyph.Code)
	self.glyphs[index] = glyph
	return nil
}

func (self *Table) Remove(code byte) {
	index, ok := codeIndex(code)
	if !ok { return }
	self.glyphs[index] = nil
}

// Returns the glyph for the given code. The bool is false when
// the code is out of range or the glyph is absent or empty.
func (self *Table) Get(code byte) (*Glyph, bool) {
	index, ok := codeIndex(code)
	if !ok { return nil, false }
	glyph := self.glyphs[index]
	if glyph == nil || glyph.IsEmpty() { return nil, false }
	return glyph, true
}

// Number of present (non-empty) glyphs.
func (self *Table) Count() int {
	var count int
	for _, glyph := range self.glyphs {
		if glyph != nil && !glyph.IsEmpty() { count += 1 }
	}
	return count
}

// Calls the function for each present glyph, in ascending code order.
func (self *Table) Each(fn func(*Glyph)) {
	for _, glyph := range self.glyphs {
		if glyph == nil || glyph.IsEmpty() { continue }
		fn(glyph)
	}
}

// Returns the glyph stored at the given table position, which
// may be nil or empty. Position i corresponds to code FirstCode + i.
func (self *Table) At(index int) *Glyph {
	if index < 0 || index >= NumCodes { panic("table index out of range") }
	return self.glyphs[index]
}

// Maximum height and width among present glyphs.
func (self *Table) Bounds() (maxWidth, maxHeight int) {
	self.Each(func(glyph *Glyph) {
		if glyph.Width  > maxWidth  { maxWidth  = glyph.Width  }
		if glyph.Height > maxHeight { maxHeight = glyph.Height }
	})
	return maxWidth, maxHeight
}

// Code stored at table position i.
func CodeAt(index int) byte { return internal.IndexToCode(index) }
