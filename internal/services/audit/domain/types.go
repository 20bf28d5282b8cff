// Package domain holds the audit contracts
package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Submission is one processed message, counts only, never code values
type Submission struct {
	ID        uuid.UUID
	UserID    int64
	ChatID    int64
	Day       time.Time
	Tokens    int
	Valid     int
	Invalid   int
	DupGroups int
	CrossDay  int
	Fresh     int
	CreatedAt time.Time
}

// RecorderPort records submissions on a best effort basis
type RecorderPort interface {
	Record(ctx context.Context, s Submission)
}

// Sink is the storage behind RecorderPort
type Sink interface {
	Write(ctx context.Context, xs []Submission) error
}
