package domain

import "context"

// Sender delivers a reply to a chat, a reply the Bot API refuses is
// reported as perr.ErrorCodeInvalidArgument
type Sender interface {
	Send(ctx context.Context, chatID int64, text string) error
}

// Handler processes one update, a nil error means the update is done with
type Handler interface {
	Handle(ctx context.Context, u Update) error
}
