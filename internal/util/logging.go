package util

import (
	"os"

	"github.com/sirupsen/logrus"
)

var LoggingEnabled = false

var logger = newLogger()

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetFormatter(lineFormatter{})
	return l
}

// lineFormatter renders an entry as its bare message on one line, so each
// line LogF writes starts with the "[hlasm-lsp] " prefix.
type lineFormatter struct{}

func (lineFormatter) Format(e *logrus.Entry) ([]byte, error) {
	return []byte(e.Message + "\n"), nil
}

// LogF writes one line to standard error, prefixed "[hlasm-lsp] ", when
// LoggingEnabled is set. Disabled by default so a normal editor session
// produces no chatter on stderr.
func LogF(format string, args ...interface{}) {
	if !LoggingEnabled {
		return
	}
	logger.Infof("[hlasm-lsp] "+format, args...)
}
