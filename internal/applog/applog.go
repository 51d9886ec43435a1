package applog

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/treebench/treebench/internal/appctx"
)

const (
	// scopeFieldName defines the key for the "scope" field in structured logs.
	scopeFieldName = "scope"
	// runIDFieldName defines the key for the "run_id" field in structured logs.
	runIDFieldName = "run_id"
)

// NewLogger creates the console logger handed to every component.
// noColor should be set when stdout is not a terminal.
func NewLogger(level zerolog.Level, noColor bool) zerolog.Logger {
	return newLogger(os.Stdout, level, noColor)
}

func newLogger(out io.Writer, level zerolog.Level, noColor bool) zerolog.Logger {
	partsOrder := []string{
		zerolog.LevelFieldName,
		zerolog.TimestampFieldName,
		runIDFieldName, // Custom fields are placed before the message.
		scopeFieldName,
		zerolog.MessageFieldName,
	}

	consoleWriter := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.RFC3339,
		PartsOrder: partsOrder,
		// FormatPrepare wraps the scope in brackets and blanks out
		// missing custom parts so zerolog does not print <nil>.
		FormatPrepare: func(m map[string]any) error {
			if v, ok := m[runIDFieldName].(string); !ok || v == "" {
				m[runIDFieldName] = ""
			}

			if v, ok := m[scopeFieldName].(string); ok && v != "" {
				m[scopeFieldName] = fmt.Sprintf("[%s]", v)
			} else {
				m[scopeFieldName] = ""
			}
			return nil
		},
		FieldsExclude: []string{runIDFieldName, scopeFieldName},
		NoColor:       noColor,
	}

	logger := zerolog.New(consoleWriter).Hook(ctxHook{}).Level(level)

	return logger.With().Timestamp().Logger()
}

// WithScope derives a component logger, e.g. "BENCH" or "CONFIG".
func WithScope(logger zerolog.Logger, scope string) zerolog.Logger {
	return logger.With().Str(scopeFieldName, scope).Logger()
}

// ctxHook adds request-scoped values to events created with .Ctx(ctx).
type ctxHook struct{}

func (h ctxHook) Run(e *zerolog.Event, level zerolog.Level, msg string) {
	ctx := e.GetCtx()
	if ctx == nil {
		return
	}

	if runID, ok := appctx.RunIDFrom(ctx); ok {
		e.Str(runIDFieldName, runID)
	}
}
