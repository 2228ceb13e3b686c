package log

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/rs/zerolog"

	linclassErrors "github.com/YuminosukeSato/linclass/pkg/errors"
)

// SetupLogger configures the process-wide slog default logger with JSON
// output and stacktrace-aware error formatting, and routes library warnings
// (such as ConvergenceWarning) through a zerolog sink on stderr.
func SetupLogger(loglevel string) {
	ops := slog.HandlerOptions{
		AddSource: true,
		Level:     ToLogLevel(loglevel),
	}
	handler := slog.NewJSONHandler(os.Stdout, &ops)
	errFmtHandler := WrapByErrFmtHandler(handler)
	slog.SetDefault(slog.New(errFmtHandler))
	InstallWarningSink(os.Stderr)
}

// InstallWarningSink installs a zerolog-backed sink for library warnings.
// Warnings implementing zerolog.LogObjectMarshaler are emitted with their
// structured fields.
func InstallWarningSink(w io.Writer) {
	logger := zerolog.New(w).With().Timestamp().Logger()
	linclassErrors.SetZerologWarnFunc(func(warning error) {
		event := logger.Warn()
		if obj, ok := warning.(zerolog.LogObjectMarshaler); ok {
			event = event.Object("warning", obj)
		}
		event.Msg(warning.Error())
	})
}

// ToLogLevel converts a level name into a slog.Level.
func ToLogLevel(level string) slog.Level {
	switch level {
	case "info":
		return slog.LevelInfo
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		panic(fmt.Sprintf("invalid log level :%s", level))
	}
}

const (
	ErrAttrKey        = "error"
	StacktraceAttrKey = "stacktrace"
)

// ErrAttr is a wrapper to pass err to slog.
func ErrAttr(err error) slog.Attr {
	return slog.Any(ErrAttrKey, err)
}
