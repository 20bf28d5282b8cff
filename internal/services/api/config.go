package api

import (
	"codecheck/internal/modkit/repokit"
	"codecheck/internal/platform/config"
	"codecheck/internal/platform/store"
	dailymod "codecheck/internal/services/daily/module"
)

// StoreConfig enables the backends the configured modules need
// redis or pg follow the daily backend, clickhouse follows SERVICE_CLICKHOUSE_DBURL
func StoreConfig(root config.Conf) store.Config {
	pg := root.Prefix("SERVICE_PGSQL_")
	ch := root.Prefix("SERVICE_CLICKHOUSE_")
	rds := root.Prefix("SERVICE_REDIS_")
	backend := dailymod.FromConfig(root).Backend

	cfg := store.Config{AppName: "codecheck"}
	if backend == repokit.BackendPG {
		cfg.PG = store.PGConfig{
			Enabled:     true,
			URL:         pg.MustString("DBURL"),
			MaxConns:    int32(pg.MayInt("MAX_CONNS", 4)),
			SlowQueryMs: pg.MayInt("SLOW_MS", 500),
			LogSQL:      pg.MayBool("LOG_SQL", false),
		}
	}
	if backend == repokit.BackendRedis {
		cfg.RDS = store.RedisConfig{
			Enabled:  true,
			Addr:     rds.MayString("ADDR", "localhost:6379"),
			DB:       rds.MayInt("DB", 0),
			Password: rds.MayString("PASSWORD", ""),
		}
	}
	if url := ch.MayString("DBURL", ""); url != "" {
		cfg.CH = store.CHConfig{Enabled: true, URL: url}
	}
	return cfg
}
