package sink

import "io"
import "strconv"
import "go/format"
import "go/token"

import "github.com/tinne26/microfont"
import "github.com/tinne26/microfont/internal"

const bytesPerLine = 12

type cArraySink struct {
	writer io.Writer
	name string
}

// Writes a C source fragment declaring the resource as
// 'const uint8_t name[NAME_SIZE]', with NAME_SIZE defined just
// before it. The name must be a valid C identifier.
func CArray(writer io.Writer, name string) microfont.Sink {
	return &cArraySink{ writer, name }
}

func (self *cArraySink) WriteBytes(data []byte) error {
	if !isCIdentifier(self.name) { return ErrInvalidIdentifier }
	sizeDefine := toUpperASCII(self.name) + "_SIZE"

	code := make([]byte, 0, 128 + len(data)*6)
	code = append(code, "// microfont resource, "...)
	code = strconv.AppendInt(code, int64(len(data)), 10)
	code = append(code, " bytes\n#include <stdint.h>\n\n#define "...)
	code = append(code, sizeDefine...)
	code = append(code, ' ')
	code = strconv.AppendInt(code, int64(len(data)), 10)
	code = append(code, "\n\nconst uint8_t "...)
	code = append(code, self.name...)
	code = append(code, '[')
	code = append(code, sizeDefine...)
	code = append(code, "] = {\n"...)
	code = appendByteLines(code, data, "\t", ",")
	code = append(code, "};\n"...)

	_, err := self.writer.Write(code)
	return err
}

type goSourceSink struct {
	writer io.Writer
	pkg string
	name string
}

// Writes a gofmt-ed Go source file declaring 'var name = []byte{...}'
// in the given package. The resource can then be loaded with
// [microfont.ParseBytes]().
func GoSource(writer io.Writer, pkg string, name string) microfont.Sink {
	return &goSourceSink{ writer, pkg, name }
}

func (self *goSourceSink) WriteBytes(data []byte) error {
	if !token.IsIdentifier(self.pkg) || !token.IsIdentifier(self.name) {
		return ErrInvalidIdentifier
	}

	code := make([]byte, 0, 128 + len(data)*6)
	code = append(code, "// Code generated by mfntc. DO NOT EDIT.\n\npackage "...)
	code = append(code, self.pkg...)
	code = append(code, "\n\n// microfont resource, "...)
	code = strconv.AppendInt(code, int64(len(data)), 10)
	code = append(code, " bytes\nvar "...)
	code = append(code, self.name...)
	code = append(code, " = []byte{\n"...)
	code = appendByteLines(code, data, "", ",")
	code = append(code, "}\n"...)

	formatted, err := format.Source(code)
	if err != nil { return err }
	_, err = self.writer.Write(formatted)
	return err
}

func appendByteLines(code []byte, data []byte, indent string, sep string) []byte {
	for i, value := range data {
		if i % bytesPerLine == 0 {
			code = append(code, indent...)
		} else {
			code = append(code, ' ')
		}
		code = internal.AppendHexByte(code, value)
		code = append(code, sep...)
		if i % bytesPerLine == bytesPerLine - 1 || i == len(data) - 1 {
			code = append(code, '\n')
		}
	}
	return code
}

func isCIdentifier(name string) bool {
	if name == "" { return false }
	for i := 0; i < len(name); i++ {
		char := name[i]
		switch {
		case char == '_', char >= 'a' && char <= 'z', char >= 'A' && char <= 'Z':
			// always valid
		case char >= '0' && char <= '9':
			if i == 0 { return false }
		default:
			return false
		}
	}
	return true
}

func toUpperASCII(name string) string {
	upper := []byte(name)
	for i, char := range upper {
		if char >= 'a' && char <= 'z' { upper[i] = char - 'a' + 'A' }
	}
	return string(upper)
}
