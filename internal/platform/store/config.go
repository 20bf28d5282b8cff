package store

import "time"

// Config says which backends Open connects, services build it from env
type Config struct {
	// AppName shows up as application_name in postgres and in clickhouse client info
	AppName string

	PG  PGConfig
	CH  CHConfig
	RDS RedisConfig
}

// PGConfig is the postgres pool, the connect loop and query logging
type PGConfig struct {
	Enabled  bool
	URL      string
	MaxConns int32

	// LogSQL logs every statement, SlowQueryMs promotes slow ones to warn
	LogSQL      bool
	SlowQueryMs int

	// zero means 20 tries with a 3s ping timeout
	ConnectRetries int
	PingTimeout    time.Duration
}

// CHConfig is a clickhouse DSN plus the role reported to the server
type CHConfig struct {
	Enabled bool
	URL     string
	Role    string
}

// RedisConfig is a single redis node
type RedisConfig struct {
	Enabled  bool
	Addr     string
	DB       int
	Password string
}

// Any reports whether at least one backend is enabled
func (c Config) Any() bool { return c.PG.Enabled || c.CH.Enabled || c.RDS.Enabled }
