// Package logging builds the bolt structured logger shared by the CLI, the
// REST server and the episode service.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/felixgeelhaar/bolt/v3"
)

// Config configures the logger.
type Config struct {
	// Level is the minimum log level (trace, debug, info, warn, error).
	Level string

	// Format is the output format (json or console).
	Format string

	// Output is the output destination. Nil means stderr.
	Output io.Writer
}

// DefaultConfig returns the console configuration used by the CLI.
func DefaultConfig() Config {
	return Config{
		Level:  "info",
		Format: "console",
		Output: os.Stderr,
	}
}

// ParseLevel converts a string level to bolt.Level. Unknown levels are info.
func ParseLevel(s string) bolt.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return bolt.TRACE
	case "debug":
		return bolt.DEBUG
	case "warn":
		return bolt.WARN
	case "error":
		return bolt.ERROR
	default:
		return bolt.INFO
	}
}

// New builds a logger from config.
func New(config Config) *bolt.Logger {
	output := config.Output
	if output == nil {
		output = os.Stderr
	}

	var handler bolt.Handler
	if config.Format == "json" {
		handler = bolt.NewJSONHandler(output)
	} else {
		handler = bolt.NewConsoleHandler(output)
	}

	return bolt.New(handler).SetLevel(ParseLevel(config.Level))
}

// Discard returns a logger that drops everything; tests and library callers
// that pass no logger get this one.
func Discard() *bolt.Logger {
	return bolt.New(bolt.NewJSONHandler(io.Discard)).SetLevel(bolt.ERROR)
}

// LogEvent is a wrapper that allows adding Fields to a bolt.Event.
type LogEvent struct {
	event *bolt.Event
}

// NewEvent wraps a bolt.Event for field application.
func NewEvent(e *bolt.Event) *LogEvent {
	return &LogEvent{event: e}
}

// Add applies fields to the event and returns the wrapper for chaining.
func (l *LogEvent) Add(fields ...Field) *LogEvent {
	for _, f := range fields {
		l.event = f(l.event)
	}
	return l
}

// Msg sends the log event with a message.
func (l *LogEvent) Msg(msg string) {
	l.event.Msg(msg)
}

// Send sends the log event without a message.
func (l *LogEvent) Send() {
	l.event.Send()
}
