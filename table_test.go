package microfont

import "testing"

func TestTable(t *testing.T) {
	var table Table // zero value must be usable
	if table.Count() != 0 { t.Fatalf("expected empty table") }
	w, h := table.Bounds()
	if w != 0 || h != 0 { t.Fatalf("expected bounds (0, 0), got (%d, %d)", w, h) }

	a, _ := NewGlyphFromRows('a', "XX", "XX", "X.")
	z, _ := NewGlyphFromRows(0xFF, "XXXX")
	empty, _ := NewGlyph('b', 20, 0)
	for _, glyph := range []*Glyph{z, empty, a} {
		err := table.Set(glyph)
		if err != nil { t.Fatalf("unexpected Set() error: %s", err) }
	}

	if table.Count() != 2 { t.Fatalf("expected 2 glyphs, got %d", table.Count()) }
	w, h = table.Bounds()
	if w != 4 || h != 3 { t.Fatalf("expected bounds (4, 3), got (%d, %d)", w, h) }

	if _, found := table.Get('b'); found {
		t.Fatalf("expected empty glyph to be reported as absent")
	}
	if table.At('b' - FirstCode) != empty {
		t.Fatalf("expected empty glyph to be stored")
	}
	if _, found := table.Get(0x05); found {
		t.Fatalf("expected out of range code to be absent")
	}

	var order []byte
	table.Each(func(glyph *Glyph) { order = append(order, glyph.Code) })
	if len(order) != 2 || order[0] != 'a' || order[1] != 0xFF {
		t.Fatalf("expected iteration order [a 0xFF], got %v", order)
	}

	table.Remove('a')
	table.Remove(0x01) // no-op
	if _, found := table.Get('a'); found { t.Fatalf("expected 'a' to be removed") }
	w, h = table.Bounds()
	if w != 4 || h != 1 { t.Fatalf("expected bounds (4, 1), got (%d, %d)", w, h) }
}

func TestTableRejectsInvalidGlyphs(t *testing.T) {
	table := NewTable()
	glyph, _ := NewGlyph('a', 2, 2)
	glyph.Code = 0x10
	if table.Set(glyph) != ErrCodeOutOfRange {
		t.Fatalf("expected ErrCodeOutOfRange")
	}
	glyph.Code = 'a'
	glyph.Height = 70
	if table.Set(glyph) != ErrInvalidGlyphDimensions {
		t.Fatalf("expected ErrInvalidGlyphDimensions")
	}
	err := table.Set(nil)
	if err != ErrNilGlyph { t.Fatalf("expected ErrNilGlyph, got %v", err) }
	if table.Count() != 0 { t.Fatalf("expected no glyphs to be stored") }
}

func TestCodeAt(t *testing.T) {
	if CodeAt(0) != 0x20 || CodeAt(NumCodes - 1) != 0xFF {
		t.Fatalf("expected code range [0x20, 0xFF], got [0x%02X, 0x%02X]", CodeAt(0), CodeAt(NumCodes - 1))
	}
	defer func() {
		if recover() == nil { t.Fatalf("expected CodeAt(NumCodes) to panic") }
	}()
	_ = CodeAt(NumCodes)
}
