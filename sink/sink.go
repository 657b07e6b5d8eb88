// Package sink provides [microfont.Sink] implementations to store
// compiled fonts as raw binaries, compressed archives or source
// code literals for firmware and Go builds.
package sink

import "io"
import "errors"

import "github.com/andybalholm/brotli"
import "github.com/klauspost/compress/gzip"

import "github.com/tinne26/microfont"

var ErrInvalidIdentifier = errors.New("invalid identifier")

type rawSink struct {
	writer io.Writer
}

// Writes the resource bytes as they are.
func Raw(writer io.Writer) microfont.Sink {
	return &rawSink{ writer }
}

func (self *rawSink) WriteBytes(data []byte) error {
	_, err := self.writer.Write(data)
	return err
}

type gzipSink struct {
	writer io.Writer
}

// Writes a gzip stream with the resource. [microfont.Parse]()
// accepts this format directly.
func Gzip(writer io.Writer) microfont.Sink {
	return &gzipSink{ writer }
}

func (self *gzipSink) WriteBytes(data []byte) error {
	compressor, err := gzip.NewWriterLevel(self.writer, gzip.BestCompression)
	if err != nil { return err }
	_, err = compressor.Write(data)
	if err != nil {
		_ = compressor.Close()
		return err
	}
	return compressor.Close()
}

type brotliSink struct {
	writer io.Writer
}

// Writes a brotli stream with the resource.
func Brotli(writer io.Writer) microfont.Sink {
	return &brotliSink{ writer }
}

func (self *brotliSink) WriteBytes(data []byte) error {
	compressor := brotli.NewWriterLevel(self.writer, brotli.BestCompression)
	_, err := compressor.Write(data)
	if err != nil {
		_ = compressor.Close()
		return err
	}
	return compressor.Close()
}
