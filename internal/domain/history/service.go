package history

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	apperrors "github.com/yanqian/yt-summarizer/pkg/errors"
	"github.com/yanqian/yt-summarizer/pkg/util"
)

// Service records request outcomes. It is an audit trail only and is never
// consulted to answer a summarize request.
type Service interface {
	// Record stores the entry. Failures are logged, never returned.
	Record(ctx context.Context, entry Entry)
	Recent(ctx context.Context, limit int) ([]Entry, error)
}

type service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService is a wire provider for the history domain.
func NewService(repo Repository, logger *slog.Logger) Service {
	return &service{repo: repo, logger: logger.With("component", "history.service")}
}

func (s *service) Record(ctx context.Context, entry Entry) {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = util.NowUTC()
	}
	if err := s.repo.Save(ctx, entry); err != nil {
		s.logger.Error("history save failed", "id", entry.ID, "error", err)
	}
}

func (s *service) Recent(ctx context.Context, limit int) ([]Entry, error) {
	switch {
	case limit == 0:
		limit = DefaultLimit
	case limit < 0:
		return nil, apperrors.Wrap(apperrors.CodeInvalidInput, "limit must be positive", nil)
	case limit > MaxLimit:
		limit = MaxLimit
	}
	entries, err := s.repo.Recent(ctx, limit)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeInternal, "list history failed", err)
	}
	if entries == nil {
		entries = []Entry{}
	}
	return entries, nil
}
