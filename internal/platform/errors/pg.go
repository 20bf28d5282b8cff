package errors

import (
	"context"
	stderrs "errors"
	"net"

	"github.com/jackc/pgx/v5/pgconn"
)

// sqlstates that mean something other than a plain DB failure
var pgStates = map[string]ErrorCode{
	"22001": ErrorCodeInvalidArgument, // string_data_right_truncation
	"25006": ErrorCodeUnavailable,     // read_only_sql_transaction
	"57P01": ErrorCodeUnavailable,     // admin_shutdown
	"57P03": ErrorCodeUnavailable,     // cannot_connect_now
}

// DBErrorCode maps a *pgconn.PgError anywhere in err's chain, ok is false for anything else
func DBErrorCode(err error) (ErrorCode, bool) {
	var pgErr *pgconn.PgError
	if !stderrs.As(Root(err), &pgErr) {
		return ErrorCodeUnknown, false
	}
	if code, ok := pgStates[pgErr.Code]; ok {
		return code, true
	}
	return ErrorCodeDB, true
}

// FromPostgres wraps err with msg, connection trouble is Unavailable and the rest is DB
func FromPostgres(err error, msg string) error {
	if err == nil {
		return nil
	}
	if code, ok := DBErrorCode(err); ok {
		return Wrap(err, code, msg)
	}
	var ce *pgconn.ConnectError
	var ne net.Error
	if stderrs.As(err, &ce) || stderrs.As(err, &ne) || stderrs.Is(err, context.DeadlineExceeded) {
		return Wrap(err, ErrorCodeUnavailable, msg)
	}
	return Wrap(err, ErrorCodeDB, msg)
}
