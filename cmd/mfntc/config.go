package main

import "io"
import "os"
import "fmt"
import "flag"
import "errors"
import "math"
import "strconv"
import "strings"
import "path/filepath"

import "github.com/joho/godotenv"
import "github.com/sirupsen/logrus"

const envPrefix = "MFNTC_"

var errMissingSize = errors.New("font size is not defined (use -s)")
var errFractionalSize = errors.New("fony glyph size must be a whole number of rows")

type config struct {
	input string
	format string
	size float64
	output string
	encoding string
	name string
	pkg string
	noDedup bool
	proportional bool
	threshold int
	dump bool
	preview string
	logLevel logrus.Level
}

// Loads .env.local and .env from the given directory, in that
// order. Variables already set are never overridden, so the
// environment takes precedence over .env.local, and .env.local
// over .env. Returns the files that were loaded.
func loadEnvFiles(dir string) ([]string, error) {
	var loaded []string
	for _, name := range []string{ ".env.local", ".env" } {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err != nil { continue }
		err := godotenv.Load(path)
		if err != nil { return loaded, fmt.Errorf("%s: %w", path, err) }
		loaded = append(loaded, path)
	}
	return loaded, nil
}

func envString(key string, fallback string) string {
	value, found := os.LookupEnv(envPrefix + key)
	if !found { return fallback }
	return value
}

func envBool(key string) bool {
	value, err := strconv.ParseBool(envString(key, "false"))
	return err == nil && value
}

func envNumber(key string) float64 {
	value, err := strconv.ParseFloat(envString(key, "0"), 64)
	if err != nil { return 0 }
	return value
}

func parseConfig(args []string, output io.Writer) (*config, error) {
	var cfg config
	var logLevel string
	flags := flag.NewFlagSet("mfntc", flag.ContinueOnError)
	flags.SetOutput(output)
	flags.StringVar(&cfg.input, "i", envString("INPUT", "-"), "source file, '-' for stdin")
	flags.StringVar(&cfg.format, "f", envString("FORMAT", ""), "source format: text, fony, bdf or ttf (default from the extension)")
	flags.Float64Var(&cfg.size, "s", envNumber("SIZE"), "rows per glyph for fony dumps, pixel size for ttf")
	flags.StringVar(&cfg.output, "o", envString("OUTPUT", "-"), "output file, '-' for stdout")
	flags.StringVar(&cfg.encoding, "e", envString("ENCODING", ""), "output encoding: bin, gz, br, c or go (default from the extension)")
	flags.StringVar(&cfg.name, "name", envString("NAME", "font"), "identifier for c and go outputs")
	flags.StringVar(&cfg.pkg, "pkg", envString("PKG", "fonts"), "package name for go outputs")
	flags.BoolVar(&cfg.noDedup, "nodedup", envBool("NODEDUP"), "store identical glyphs separately")
	flags.BoolVar(&cfg.proportional, "proportional", envBool("PROPORTIONAL"), "trim glyphs to their ink width")
	flags.IntVar(&cfg.threshold, "threshold", int(envNumber("THRESHOLD")), "alpha threshold for bdf and ttf sources (0 for default)")
	flags.BoolVar(&cfg.dump, "dump", envBool("DUMP"), "write the glyphs in the text format instead of compiling")
	flags.StringVar(&cfg.preview, "preview", envString("PREVIEW", ""), "render the given text with the compiled font")
	flags.StringVar(&logLevel, "v", envString("LOG_LEVEL", "info"), "log level: error, warn, info, debug or trace")
	err := flags.Parse(args)
	if err != nil { return nil, err }
	if flags.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %s", strings.Join(flags.Args(), " "))
	}

	cfg.logLevel, err = logrus.ParseLevel(logLevel)
	if err != nil { return nil, err }
	if cfg.threshold < 0 || cfg.threshold > 255 {
		return nil, fmt.Errorf("threshold must be in [0, 255], got %d", cfg.threshold)
	}
	if cfg.format == "" {
		cfg.format, err = inferFormat(cfg.input)
		if err != nil { return nil, err }
	}
	if cfg.encoding == "" { cfg.encoding = inferEncoding(cfg.output) }

	switch cfg.format {
	case "text", "bdf":
		// size not needed
	case "fony", "ttf":
		if cfg.size <= 0 { return nil, errMissingSize }
		if cfg.format == "fony" && cfg.size != math.Trunc(cfg.size) {
			return nil, errFractionalSize
		}
	default:
		return nil, fmt.Errorf("unknown source format '%s'", cfg.format)
	}
	switch cfg.encoding {
	case "bin", "gz", "br", "c", "go":
		// valid
	default:
		return nil, fmt.Errorf("unknown output encoding '%s'", cfg.encoding)
	}
	return &cfg, nil
}

func inferFormat(input string) (string, error) {
	switch strings.ToLower(filepath.Ext(input)) {
	case ".txt":
		return "text", nil
	case ".bin":
		return "fony", nil
	case ".bdf":
		return "bdf", nil
	case ".ttf", ".otf":
		return "ttf", nil
	}
	return "", fmt.Errorf("can't infer source format from '%s' (use -f)", input)
}

func inferEncoding(output string) string {
	switch strings.ToLower(filepath.Ext(output)) {
	case ".gz":
		return "gz"
	case ".br":
		return "br"
	case ".c", ".h":
		return "c"
	case ".go":
		return "go"
	}
	return "bin"
}
