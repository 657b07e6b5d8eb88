package microfont

import "io"
import "sync/atomic"

import "github.com/sirupsen/logrus"

type loggerHolder struct {
	logger logrus.FieldLogger
}

var loggerPtr atomic.Pointer[loggerHolder]

func init() {
	loggerPtr.Store(&loggerHolder{ newDiscardLogger() })
}

func newDiscardLogger() logrus.FieldLogger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	logger.SetLevel(logrus.PanicLevel)
	return logger
}

// Configures the logger used by microfont and its sub-packages.
// By default nothing is logged. Passing nil restores the default.
//
// Levels in use:
//  - Debug: compilation summaries (layout, sizes).
//  - Trace: one entry per encoded or aliased glyph.
func SetLogger(logger logrus.FieldLogger) {
	if logger == nil { logger = newDiscardLogger() }
	loggerPtr.Store(&loggerHolder{ logger })
}

// Returns the current logger. Safe for concurrent use.
func Logger() logrus.FieldLogger {
	return loggerPtr.Load().logger
}
