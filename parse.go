package microfont

import "io"
import "bytes"
import "io/fs"
import "errors"

import "github.com/sirupsen/logrus"

import "github.com/tinne26/microfont/internal"

// Utility method for parsing from a fs.FS, like when using embed.
func ParseFS(filesys fs.FS, filename string) (*Font, error) {
	file, err := filesys.Open(filename)
	if err != nil { return nil, err }
	stat, err := file.Stat()
	if err != nil { return nil, err }
	if stat.Size() > MaxFontDataSize*4 { // gzip can expand small data
		file.Close()
		return nil, errors.New("file size exceeds limit")
	}

	font, err := Parse(file)
	if err != nil {
		file.Close()
		return font, err
	}
	return font, file.Close()
}

// Parses a microfont resource. Gzipped resources are detected and
// decompressed automatically.
func Parse(reader io.Reader) (*Font, error) {
	var parser internal.ParsingBuffer
	parser.InitBuffers()
	parser.FileType = "microfont"

	err := parser.InitReader(reader)
	if err != nil { return nil, parser.WrapError(err) }
	defer parser.Close()

	magic, err := parser.ReadUint16()
	if err != nil { return nil, err }
	if magic != Magic { return nil, parser.NewError("invalid magic") }
	height, err := parser.ReadUint8()
	if err != nil { return nil, err }
	widthBits, err := parser.ReadUint8()
	if err != nil { return nil, err }
	err = checkHeader(height, widthBits)
	if err != nil { return nil, parser.WrapError(err) }
	err = parser.AdvanceBytes(IndexSize)
	if err != nil { return nil, err }

	payload := make([]uint32, 0, 64)
	for {
		atEOF, err := parser.AtEOF()
		if err != nil { return nil, err }
		if atEOF { break }
		word, err := parser.ReadUint32()
		if err != nil { return nil, err } // includes unaligned payloads
		payload = append(payload, word)
	}

	Logger().WithFields(logrus.Fields{
		"size": len(parser.Bytes), "gzipped": parser.IsGzipped(),
	}).Debug("parsed font")
	return finishParse(&parser, parser.Bytes, payload)
}

// Like [Parse](), for data already in memory. The data is copied.
func ParseBytes(data []byte) (*Font, error) {
	var parser internal.ParsingBuffer
	parser.FileType = "microfont"
	if len(data) > 0 && data[0] == 0x1F {
		return Parse(bytes.NewReader(data))
	}

	if len(data) < HeaderSize + IndexSize {
		return nil, parser.NewError("premature end of file")
	}
	payloadSize := len(data) - HeaderSize - IndexSize
	if payloadSize & 0b11 != 0 {
		return nil, parser.NewError("payload size must be a multiple of 4")
	}
	if len(data) > MaxFontDataSize {
		return nil, parser.NewError("font data size exceeds limit")
	}

	payload := make([]uint32, payloadSize >> 2)
	base := HeaderSize + IndexSize
	for i := range payload {
		payload[i] = internal.DecodeUint32LE(data[base + i*4 : ])
	}
	return finishParse(&parser, append([]byte(nil), data...), payload)
}

func finishParse(parser *internal.ParsingBuffer, data []byte, payload []uint32) (*Font, error) {
	font := Font(internal.Font{ Data: data, Payload: payload })
	err := font.Validate()
	if err != nil { return nil, parser.WrapError(err) }
	return &font, nil
}
