// Package rds provides a redis client over go-redis v9
package rds

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// Config configures redis connectivity
type Config struct {
	Addr        string
	DB          int
	Password    string
	DialTimeout time.Duration // default 5s
}

// RDS wraps a go-redis client with the handful of commands the app uses
type RDS struct {
	Client *goredis.Client
}

// Open connects and pings
func Open(ctx context.Context, cfg Config) (*RDS, error) {
	if cfg.Addr == "" {
		return nil, errors.New("rds: addr is required")
	}
	dial := cfg.DialTimeout
	if dial <= 0 {
		dial = 5 * time.Second
	}
	rdb := goredis.NewClient(&goredis.Options{
		Addr:        cfg.Addr,
		DB:          cfg.DB,
		Password:    cfg.Password,
		DialTimeout: dial,
	})

	pctx, cancel := context.WithTimeout(ctx, dial)
	defer cancel()
	if err := rdb.Ping(pctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return &RDS{Client: rdb}, nil
}

// Get returns the string value at key, ok is false when the key is absent
func (r *RDS) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := r.Client.Get(ctx, key).Result()
	if errors.Is(err, goredis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

// Set stores value at key with an expiry, ttl <= 0 means no expiry
func (r *RDS) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if ttl < 0 {
		ttl = 0
	}
	return r.Client.Set(ctx, key, value, ttl).Err()
}

// Del removes key, absent keys are not an error
func (r *RDS) Del(ctx context.Context, key string) error {
	return r.Client.Del(ctx, key).Err()
}

// Ping checks connectivity
func (r *RDS) Ping(ctx context.Context) error { return r.Client.Ping(ctx).Err() }

// Close closes the client
func (r *RDS) Close() error {
	if r == nil || r.Client == nil {
		return nil
	}
	return r.Client.Close()
}
