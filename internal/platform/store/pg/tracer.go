package pg

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"codecheck/internal/platform/logger"
)

// QueryEvent is one finished statement
type QueryEvent struct {
	SQL       string
	Args      any
	ElapsedUS int64
	Err       error
	Slow      bool
}

// QueryTracer is told about every statement the store adapter runs
type QueryTracer interface {
	OnQuery(ctx context.Context, ev QueryEvent)
}

type logTracer struct{ log logger.Logger }

// Tracer logs each statement on one line under component=pg
// it logs at info even when root is quieter, LogSQL is the switch
func Tracer(root logger.Logger) QueryTracer {
	return logTracer{log: root.Level(zerolog.DebugLevel).With().Str("component", "pg").Logger()}
}

func (t logTracer) OnQuery(_ context.Context, ev QueryEvent) {
	evt := t.log.Info()
	if ev.Slow {
		evt = t.log.Warn().Bool("slow", true)
	}
	evt.Str("sql", compact(ev.SQL)).
		Interface("args", ev.Args).
		Float64("elapsed_ms", float64(ev.ElapsedUS)/1e3).
		Err(ev.Err).
		Msg("pg query")
}

// compact puts a statement on one line
func compact(sql string) string { return strings.Join(strings.Fields(sql), " ") }
