// Package text reads and writes the textual glyph description
// format:
//
//	# 'A' 0x41
//	00100000b
//	01010000b
//	...
//
// Each glyph starts with a '#' header line whose last field is the
// code in hex (the quoted character is informational), followed by
// one line per pixel row made of '0' and '1' digits, leftmost pixel
// first. The trailing 'b' is optional when reading. Blank lines and
// lines starting with "//" are ignored.
package text

import "io"
import "bufio"
import "strings"
import "strconv"
import "unicode"
import "unicode/utf8"

import "github.com/tinne26/microfont"
import "github.com/tinne26/microfont/source"

type Options struct {
	// Trim empty columns at the right of each glyph, keeping at
	// least one column. Glyphs with no ink keep their full width.
	Proportional bool

	// Name used in errors. Defaults to "text".
	Source string
}

type pendingGlyph struct {
	code byte
	line int
	rows []string
}

type decoder struct {
	options Options
	table *microfont.Table
	seen [microfont.NumCodes]bool
	height int
}

// Parses glyphs in the textual format. All glyphs must have the
// same number of rows, and the rows of a glyph must all have the
// same length. Headers without rows are skipped.
func Decode(reader io.Reader, options Options) (*microfont.Table, error) {
	if options.Source == "" { options.Source = "text" }
	dec := decoder{ options: options, table: microfont.NewTable() }

	var current *pendingGlyph
	scanner := bufio.NewScanner(reader)
	lineNum := 0
	for scanner.Scan() {
		lineNum += 1
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "//") { continue }

		if line[0] == '#' {
			if current != nil {
				err := dec.flush(current)
				if err != nil { return nil, err }
			}
			code, err := dec.parseHeader(line, lineNum)
			if err != nil { return nil, err }
			current = &pendingGlyph{ code: code, line: lineNum }
			continue
		}

		if current == nil {
			return nil, source.Errorf(options.Source, lineNum, "pixel row outside of any glyph")
		}
		row, err := dec.parseRow(line, lineNum, current)
		if err != nil { return nil, err }
		current.rows = append(current.rows, row)
	}
	err := scanner.Err()
	if err != nil { return nil, err }

	if current != nil {
		err := dec.flush(current)
		if err != nil { return nil, err }
	}
	microfont.Logger().WithField("glyphs", dec.table.Count()).Debug("decoded text glyphs")
	return dec.table, nil
}

func (self *decoder) parseHeader(line string, lineNum int) (byte, error) {
	fields := strings.Fields(line[1 : ])
	if len(fields) == 0 {
		return 0, source.Errorf(self.options.Source, lineNum, "glyph header without code")
	}
	hexCode := fields[len(fields) - 1]
	if !strings.HasPrefix(hexCode, "0x") && !strings.HasPrefix(hexCode, "0X") {
		return 0, source.Errorf(self.options.Source, lineNum, "invalid glyph code %q", hexCode)
	}
	value, err := strconv.ParseUint(hexCode[2 : ], 16, 8)
	if err != nil {
		return 0, source.Errorf(self.options.Source, lineNum, "invalid glyph code %q", hexCode)
	}
	code := byte(value)
	if code < microfont.FirstCode {
		return 0, source.Errorf(self.options.Source, lineNum, "glyph code 0x%02X out of range", code)
	}
	if self.seen[code - microfont.FirstCode] {
		return 0, source.Errorf(self.options.Source, lineNum, "duplicated glyph code 0x%02X", code)
	}
	self.seen[code - microfont.FirstCode] = true
	return code, nil
}

func (self *decoder) parseRow(line string, lineNum int, glyph *pendingGlyph) (string, error) {
	row := strings.TrimSuffix(line, "b")
	if row == "" {
		return "", source.Errorf(self.options.Source, lineNum, "empty pixel row")
	}
	for i := 0; i < len(row); i++ {
		if row[i] != '0' && row[i] != '1' {
			return "", source.Errorf(self.options.Source, lineNum, "invalid pixel row %q", line)
		}
	}
	if len(row) > microfont.MaxGlyphWidth {
		return "", source.Errorf(self.options.Source, lineNum, "row width %d exceeds %d", len(row), microfont.MaxGlyphWidth)
	}
	if len(glyph.rows) > 0 && len(row) != len(glyph.rows[0]) {
		return "", source.Errorf(self.options.Source, lineNum, "row width %d doesn't match glyph width %d", len(row), len(glyph.rows[0]))
	}
	if len(glyph.rows) >= microfont.MaxGlyphHeight {
		return "", source.Errorf(self.options.Source, lineNum, "glyph 0x%02X exceeds %d rows", glyph.code, microfont.MaxGlyphHeight)
	}
	return row, nil
}

func (self *decoder) flush(pending *pendingGlyph) error {
	if len(pending.rows) == 0 { return nil }
	if self.height == 0 {
		self.height = len(pending.rows)
	} else if len(pending.rows) != self.height {
		return source.Errorf(
			self.options.Source, pending.line, "glyph 0x%02X has %d rows, previous glyphs have %d",
			pending.code, len(pending.rows), self.height,
		)
	}

	width := len(pending.rows[0])
	if self.options.Proportional {
		inkWidth := 0
		for _, row := range pending.rows {
			last := strings.LastIndexByte(row, '1') + 1
			if last > inkWidth { inkWidth = last }
		}
		if inkWidth > 0 { width = inkWidth }
	}

	glyph, err := microfont.NewGlyph(pending.code, width, len(pending.rows))
	if err != nil { return err }
	for y, row := range pending.rows {
		for x := 0; x < width; x++ {
			if row[x] == '1' { glyph.Set(x, y, true) }
		}
	}
	return self.table.Set(glyph)
}

// Writes all the glyphs of the table in the textual format, in
// ascending code order. The quoted character in each header comes
// from [microfont.DefaultCodePage].
func Encode(writer io.Writer, table *microfont.Table) error {
	buffered := bufio.NewWriter(writer)
	var line []byte
	var err error
	table.Each(func(glyph *microfont.Glyph) {
		if err != nil { return }
		line = append(line[ : 0], "# '"...)
		line = utf8.AppendRune(line, headerRune(glyph.Code))
		line = append(line, "' 0x"...)
		line = append(line, strings.ToUpper(strconv.FormatUint(uint64(glyph.Code), 16))...)
		line = append(line, '\n')
		_, err = buffered.Write(line)
		if err != nil { return }

		for y := 0; y < glyph.Height; y++ {
			line = line[ : 0]
			for x := 0; x < glyph.Width; x++ {
				if glyph.At(x, y) {
					line = append(line, '1')
				} else {
					line = append(line, '0')
				}
			}
			line = append(line, 'b', '\n')
			_, err = buffered.Write(line)
			if err != nil { return }
		}
	})
	if err != nil { return err }
	return buffered.Flush()
}

func headerRune(code byte) rune {
	r := microfont.DefaultCodePage.Rune(code)
	if r == utf8.RuneError || !unicode.IsPrint(r) { return '?' }
	return r
}
