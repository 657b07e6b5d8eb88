// Command mfntc compiles bitmap glyph sources into microfont
// resources.
//
// Usage:
//
//	mfntc -i <source> [-f text|fony|bdf|ttf] [-s size] [-o output]
//	      [-e bin|gz|br|c|go] [-name ident] [-pkg name] [-nodedup]
//	      [-proportional] [-threshold n] [-dump] [-preview text] [-v level]
//
// Flag defaults can be set with MFNTC_* environment variables
// (MFNTC_INPUT, MFNTC_SIZE, MFNTC_LOG_LEVEL...), which are also
// read from .env.local and .env in the working directory.
package main

import "io"
import "os"
import "bufio"
import "path/filepath"

import "github.com/sirupsen/logrus"

import "github.com/tinne26/microfont"
import "github.com/tinne26/microfont/builder"
import "github.com/tinne26/microfont/sink"
import "github.com/tinne26/microfont/source/bdf"
import "github.com/tinne26/microfont/source/face"
import "github.com/tinne26/microfont/source/fony"
import "github.com/tinne26/microfont/source/text"

func main() {
	os.Exit(run(os.Args[1 : ], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	logger := logrus.New()
	logger.SetOutput(stderr)
	logger.SetFormatter(&logrus.TextFormatter{ DisableTimestamp: true })

	envFiles, err := loadEnvFiles(".")
	if err != nil {
		logger.WithError(err).Error("can't load environment file")
		return 1
	}
	cfg, err := parseConfig(args, stderr)
	if err != nil {
		logger.WithError(err).Error("invalid arguments")
		return 1
	}
	logger.SetLevel(cfg.logLevel)
	microfont.SetLogger(logger)
	defer microfont.SetLogger(nil)
	if len(envFiles) > 0 { logger.WithField("files", envFiles).Debug("loaded environment") }

	err = execute(cfg, stdin, stdout, logger)
	if err != nil {
		logger.WithError(err).Error("mfntc failed")
		return 1
	}
	return 0
}

func execute(cfg *config, stdin io.Reader, stdout io.Writer, logger logrus.FieldLogger) error {
	table, err := loadTable(cfg, stdin)
	if err != nil { return err }
	logger.WithFields(logrus.Fields{
		"source": cfg.input, "format": cfg.format, "glyphs": table.Count(),
	}).Info("loaded glyphs")

	if cfg.dump {
		return writeOutput(cfg.output, stdout, func(writer io.Writer) error {
			return text.Encode(writer, table)
		})
	}

	font, err := builder.Compile(table, builder.Options{ Dedup: !cfg.noDedup })
	if err != nil { return err }
	logger.WithFields(logrus.Fields{
		"height": font.Height(), "width_bits": font.WidthBits(), "size": font.Size(),
	}).Info("compiled font")

	if cfg.preview != "" {
		err = writePreview(stdout, font, cfg.preview)
		if err != nil { return err }
		if cfg.output == "-" { return nil }
	}

	return writeOutput(cfg.output, stdout, func(writer io.Writer) error {
		return font.Export(newSink(cfg, writer))
	})
}

func loadTable(cfg *config, stdin io.Reader) (*microfont.Table, error) {
	reader := stdin
	if cfg.input != "-" {
		file, err := os.Open(cfg.input)
		if err != nil { return nil, err }
		defer file.Close()
		reader = file
	}

	faceOptions := face.Options{ Threshold: uint8(cfg.threshold), Proportional: cfg.proportional }
	switch cfg.format {
	case "text":
		return text.Decode(reader, text.Options{ Proportional: cfg.proportional, Source: cfg.input })
	case "fony":
		return fony.Decode(reader, int(cfg.size))
	case "bdf":
		return bdf.Decode(reader, faceOptions)
	case "ttf":
		data, err := io.ReadAll(reader)
		if err != nil { return nil, err }
		return face.LoadTTF(data, cfg.size, faceOptions)
	}
	panic("unexpected format '" + cfg.format + "'") // validated by parseConfig
}

func newSink(cfg *config, writer io.Writer) microfont.Sink {
	switch cfg.encoding {
	case "gz":
		return sink.Gzip(writer)
	case "br":
		return sink.Brotli(writer)
	case "c":
		return sink.CArray(writer, cfg.name)
	case "go":
		return sink.GoSource(writer, cfg.pkg, cfg.name)
	}
	return sink.Raw(writer)
}

// Output files are only created once the content is ready, so
// failed compilations don't leave partial files behind.
func writeOutput(path string, stdout io.Writer, write func(io.Writer) error) error {
	if path == "-" { return write(stdout) }

	temp, err := os.CreateTemp(filepath.Dir(path), ".mfntc-*")
	if err != nil { return err }
	err = write(temp)
	if err == nil { err = temp.Close() } else { _ = temp.Close() }
	if err != nil {
		_ = os.Remove(temp.Name())
		return err
	}
	err = os.Chmod(temp.Name(), 0o644)
	if err == nil { err = os.Rename(temp.Name(), path) }
	if err != nil { _ = os.Remove(temp.Name()) }
	return err
}

// Renders the text with the font as '#' and '.' art.
func writePreview(writer io.Writer, font *microfont.Font, str string) error {
	codes := microfont.DefaultCodePage.Codes(str, '?')
	mask := font.RenderText(codes, 1)
	buffered := bufio.NewWriter(writer)
	bounds := mask.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if mask.AlphaAt(x, y).A != 0 {
				_ = buffered.WriteByte('#')
			} else {
				_ = buffered.WriteByte('.')
			}
		}
		_ = buffered.WriteByte('\n')
	}
	return buffered.Flush()
}
