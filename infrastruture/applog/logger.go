// Package applog provides the leveled, component-tagged loggers used
// across the application. Each component gets its own logger with a
// colored prefix so interleaved output stays readable.
package applog

import (
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

const colorReset = "\033[0m"

// ErrEmptyPrefix is returned when a logger is created without a component name.
var ErrEmptyPrefix = errors.New("logger prefix must not be empty")

// Logger is the leveled logging contract components depend on.
type Logger interface {
	Debug(string)
	Info(string)
	Warning(string)
	Error(string)
}

// ComponentLogger tags every entry with its component prefix, colored
// with the given ANSI escape when one is provided.
type ComponentLogger struct {
	prefix string
	color  string
	log    *logrus.Logger
}

// New creates a component logger writing to out.
func New(prefix, color string, out io.Writer) (*ComponentLogger, error) {
	if prefix == "" {
		return nil, ErrEmptyPrefix
	}

	log := logrus.New()
	log.SetOutput(out)
	log.SetLevel(logrus.DebugLevel)
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
		// Escape sequences in the prefix must reach the terminal as-is.
		DisableQuote: true,
	})

	return &ComponentLogger{prefix: prefix, color: color, log: log}, nil
}

// Debug logs a message at debug level.
func (c *ComponentLogger) Debug(msg string) {
	c.log.Debug(c.decorate(msg))
}

// Info logs a message at info level.
func (c *ComponentLogger) Info(msg string) {
	c.log.Info(c.decorate(msg))
}

// Warning logs a message at warning level.
func (c *ComponentLogger) Warning(msg string) {
	c.log.Warn(c.decorate(msg))
}

// Error logs a message at error level.
func (c *ComponentLogger) Error(msg string) {
	c.log.Error(c.decorate(msg))
}

func (c *ComponentLogger) decorate(msg string) string {
	if c.color == "" {
		return fmt.Sprintf("[%s] %s", c.prefix, msg)
	}
	return fmt.Sprintf("%s[%s]%s %s", c.color, c.prefix, colorReset, msg)
}
