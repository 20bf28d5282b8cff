// Package repo provides daily state storage backends
package repo

import (
	"context"
	"time"

	"codecheck/internal/modkit/repokit"
	perr "codecheck/internal/platform/errors"
	"codecheck/internal/services/daily/domain"
)

// Redis binds a domain.Repo to a key value handle
var Redis repokit.BindFunc[repokit.KV, domain.Repo] = NewRedis

type redisRepo struct{ kv repokit.KV }

// NewRedis stores each day set as a plain string with a native expiry
func NewRedis(kv repokit.KV) domain.Repo { return &redisRepo{kv: kv} }

func (r *redisRepo) Get(ctx context.Context, key string) (string, bool, error) {
	v, ok, err := r.kv.Get(ctx, key)
	if err != nil {
		return "", false, perr.FromRedis(err, "daily get")
	}
	return v, ok, nil
}

func (r *redisRepo) Put(ctx context.Context, key, value string, ttl time.Duration) error {
	return perr.FromRedis(r.kv.Set(ctx, key, value, ttl), "daily put")
}

func (r *redisRepo) Delete(ctx context.Context, key string) error {
	return perr.FromRedis(r.kv.Del(ctx, key), "daily delete")
}
