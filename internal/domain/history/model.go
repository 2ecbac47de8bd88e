package history

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const (
	// DefaultLimit is used when the caller does not ask for a page size.
	DefaultLimit = 20
	// MaxLimit caps a single listing.
	MaxLimit = 100
)

// Entry is the audit record of one summarize request.
type Entry struct {
	ID           uuid.UUID `json:"id"`
	URL          string    `json:"url"`
	VideoID      string    `json:"videoId,omitempty"`
	Status       string    `json:"status"`
	TopicName    string    `json:"topicName"`
	TopicSummary string    `json:"topicSummary"`
	DurationMs   int64     `json:"durationMs"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Repository persists entries and lists the newest ones first.
type Repository interface {
	Save(ctx context.Context, entry Entry) error
	Recent(ctx context.Context, limit int) ([]Entry, error)
}
