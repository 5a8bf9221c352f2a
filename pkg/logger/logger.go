package logger

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Mode selects how log output is rendered.
type Mode string

const (
	ModePretty Mode = "pretty" // colorized console output, info level
	ModeDebug  Mode = "debug"  // colorized console output, debug level
	ModeProd   Mode = "prod"   // plain JSON, info level
	ModeTest   Mode = "test"   // discarded
)

var log zerolog.Logger

// Init configures the global logger with the default pretty mode.
func Init() {
	InitWithMode(ModePretty)
}

// InitWithMode configures the global logger. Unknown modes fall back to
// pretty output.
func InitWithMode(mode Mode) {
	zerolog.TimeFieldFormat = time.RFC3339

	switch mode {
	case ModeProd:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		log = zerolog.New(os.Stderr).With().Timestamp().Logger()
	case ModeTest:
		zerolog.SetGlobalLevel(zerolog.Disabled)
		log = zerolog.New(io.Discard)
	case ModeDebug:
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		log = zerolog.New(consoleWriter()).With().Timestamp().Logger()
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		log = zerolog.New(consoleWriter()).With().Timestamp().Logger()
	}
	zerolog.DefaultContextLogger = &log
}

func consoleWriter() zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: "2006-01-02 15:04:05",
		FormatLevel: func(i interface{}) string {
			return colorizeLevel(fmt.Sprint(i))
		},
		FormatMessage: func(i interface{}) string {
			return colorize(fmt.Sprint(i), cyan)
		},
		FormatFieldName: func(i interface{}) string {
			return colorize(fmt.Sprint(i)+":", gray)
		},
	}
}

// ANSI color codes
const (
	gray  = "\x1b[37m"
	blue  = "\x1b[34m"
	cyan  = "\x1b[36m"
	red   = "\x1b[31m"
	reset = "\x1b[0m"
)

func colorize(s, color string) string {
	return color + s + reset
}

func colorizeLevel(level string) string {
	switch level {
	case "debug":
		return colorize("DBG", gray)
	case "info":
		return colorize("INF", blue)
	case "warn":
		return colorize("WRN", cyan)
	case "error":
		return colorize("ERR", red)
	default:
		return colorize(level, blue)
	}
}

// Get returns the logger instance
func Get() zerolog.Logger {
	return log
}
