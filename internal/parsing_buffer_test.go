package internal

import "bytes"
import "errors"
import "slices"
import "testing"

import "github.com/klauspost/compress/gzip"

func TestParsingBufferPlain(t *testing.T) {
	var parser ParsingBuffer
	parser.InitBuffers()
	parser.FileType = "test"
	err := parser.InitReader(bytes.NewReader([]byte{0xCE, 0xFA, 7, 3, 1, 2, 3, 4}))
	if err != nil { t.Fatal(err) }
	if parser.IsGzipped() { t.Fatalf("expected plain data not to be detected as gzipped") }

	magic, err := parser.ReadUint16()
	if err != nil { t.Fatal(err) }
	if magic != Magic { t.Fatalf("expected magic 0x%04X, got 0x%04X", Magic, magic) }
	height, err := parser.ReadUint8()
	if err != nil { t.Fatal(err) }
	if height != 7 { t.Fatalf("expected 7, got %d", height) }
	err = parser.AdvanceBytes(1)
	if err != nil { t.Fatal(err) }
	value, err := parser.ReadUint32()
	if err != nil { t.Fatal(err) }
	if value != 0x04030201 { t.Fatalf("expected 0x04030201, got 0x%08X", value) }
	atEOF, err := parser.AtEOF()
	if err != nil { t.Fatalf("unexpected AtEOF() error: %s", err) }
	if !atEOF { t.Fatalf("expected AtEOF() to be true after the last word") }
	if !slices.Equal(parser.Bytes, []byte{0xCE, 0xFA, 7, 3, 1, 2, 3, 4}) {
		t.Fatalf("expected all read bytes to be kept, got %v", parser.Bytes)
	}
}

func TestParsingBufferGzip(t *testing.T) {
	payload := make([]byte, 3000)
	for i := range payload { payload[i] = byte(i*7) }

	var compressed bytes.Buffer
	writer := gzip.NewWriter(&compressed)
	_, err := writer.Write(payload)
	if err != nil { t.Fatal(err) }
	err = writer.Close()
	if err != nil { t.Fatal(err) }

	var parser ParsingBuffer
	parser.InitBuffers()
	parser.FileType = "test"
	err = parser.InitReader(&compressed)
	if err != nil { t.Fatal(err) }
	if !parser.IsGzipped() { t.Fatalf("expected gzipped data to be detected") }

	for i := 0; i < len(payload); i += 4 {
		value, err := parser.ReadUint32()
		if err != nil { t.Fatal(err) }
		if value != DecodeUint32LE(payload[i : ]) {
			t.Fatalf("word %d: expected 0x%08X, got 0x%08X", i/4, DecodeUint32LE(payload[i : ]), value)
		}
	}
	atEOF, err := parser.AtEOF()
	if err != nil { t.Fatal(err) }
	if !atEOF { t.Fatalf("expected AtEOF() to be true after the last word") }
	if !slices.Equal(parser.Bytes, payload) {
		t.Fatalf("decompressed data doesn't match the compressed input")
	}
	err = parser.Close()
	if err != nil { t.Fatal(err) }
}

func TestParsingBufferPrematureEnd(t *testing.T) {
	var parser ParsingBuffer
	parser.InitBuffers()
	parser.FileType = "test"
	err := parser.InitReader(bytes.NewReader([]byte{1}))
	if err != nil { t.Fatal(err) }
	_, err = parser.ReadUint16()
	if err == nil { t.Fatalf("expected premature end of file error") }
}

func TestParsingBufferAtEOF(t *testing.T) {
	var parser ParsingBuffer
	parser.InitBuffers()
	parser.FileType = "test"
	err := parser.InitReader(bytes.NewReader([]byte{1, 2, 3}))
	if err != nil { t.Fatal(err) }
	_, err = parser.ReadUint16()
	if err != nil { t.Fatal(err) }
	atEOF, err := parser.AtEOF()
	if err != nil { t.Fatal(err) }
	if atEOF { t.Fatalf("expected AtEOF() to be false with one byte left") }
	_, err = parser.ReadUint8()
	if err != nil { t.Fatal(err) }
	atEOF, err = parser.AtEOF()
	if err != nil { t.Fatal(err) }
	if !atEOF { t.Fatalf("expected AtEOF() to be true once all bytes are read") }
}

func TestParsingBufferWrapError(t *testing.T) {
	var parser ParsingBuffer
	parser.FileType = "test"
	cause := errors.New("cause")
	err := parser.WrapError(cause)
	if !errors.Is(err, cause) { t.Fatalf("expected wrapped error to match its cause") }
	if err.Error() != "test parsing error: cause" {
		t.Fatalf("expected \"test parsing error: cause\", got %q", err.Error())
	}
}
