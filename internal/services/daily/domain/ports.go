// Package domain holds the daily state contracts
package domain

import (
	"context"
	"strconv"
	"time"

	ptime "codecheck/internal/platform/time"
)

// Day pins one user's state to one UTC calendar day
type Day struct {
	UserID int64
	Date   string
}

// DayOf is the Day of userID at the UTC date of at
func DayOf(userID int64, at time.Time) Day { return Day{UserID: userID, Date: ptime.Day(at)} }

// Key is "{userID}:{YYYY-MM-DD}"
func (d Day) Key() string { return strconv.FormatInt(d.UserID, 10) + ":" + d.Date }

// StatePort is the per user set of codes already submitted today
type StatePort interface {
	// Today is userID's current Day, take it once per submission
	Today(userID int64) Day
	// Load returns the day's codes, failures read as an empty set
	Load(ctx context.Context, d Day) ([]string, error)
	// Save replaces the day's codes and restarts the expiry window
	Save(ctx context.Context, d Day, codes []string) error
	// Reset forgets the day's codes
	Reset(ctx context.Context, d Day) error
}

// Repo is the expiring string store behind StatePort
type Repo interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Put(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
