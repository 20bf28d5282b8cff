package pg

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
)

func TestCompact(t *testing.T) {
	t.Parallel()

	cases := []struct{ in, want string }{
		{"select 1", "select 1"},
		{"  select   1  ", "select 1"},
		{"SELECT value\n  FROM daily_state\n WHERE key = $1", "SELECT value FROM daily_state WHERE key = $1"},
		{"", ""},
	}
	for _, c := range cases {
		if got := compact(c.in); got != c.want {
			t.Fatalf("compact(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestTracer_LevelsAndFields(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	tr := Tracer(zerolog.New(&buf))

	type logLine struct {
		Level     string  `json:"level"`
		ElapsedMS float64 `json:"elapsed_ms"`
		SQL       string  `json:"sql"`
		Error     string  `json:"error"`
		Component string  `json:"component"`
	}
	read := func() logLine {
		t.Helper()
		var l logLine
		if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &l); err != nil {
			t.Fatalf("unmarshal: %v\nraw=%s", err, buf.String())
		}
		buf.Reset()
		return l
	}

	ev := QueryEvent{SQL: "DELETE FROM daily_state\n WHERE key = $1", Args: []any{"42:2025-03-01"}, ElapsedUS: 1500, Err: errors.New("boom")}
	tr.OnQuery(context.Background(), ev)
	l := read()
	if l.Level != "info" || l.ElapsedMS != 1.5 || l.SQL != "DELETE FROM daily_state WHERE key = $1" || l.Error != "boom" || l.Component != "pg" {
		t.Fatalf("info line = %+v", l)
	}

	ev.Slow = true
	tr.OnQuery(context.Background(), ev)
	if l := read(); l.Level != "warn" {
		t.Fatalf("slow line level = %q", l.Level)
	}
}
