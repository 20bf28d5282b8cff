package errors

import (
	"context"
	stderrs "errors"
	"net"

	goredis "github.com/redis/go-redis/v9"
)

// FromRedis wraps a redis error with a mapped ErrorCode and message
// redis.Nil maps to NotFound; network failures map to Unavailable
func FromRedis(err error, msg string) error {
	if err == nil {
		return nil
	}
	if stderrs.Is(err, goredis.Nil) {
		return Wrap(err, ErrorCodeNotFound, msg)
	}
	var ne net.Error
	if stderrs.As(err, &ne) || stderrs.Is(err, context.DeadlineExceeded) {
		return Wrap(err, ErrorCodeUnavailable, msg)
	}
	return Wrap(err, ErrorCodeDB, msg)
}
