package historyrepo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yanqian/yt-summarizer/internal/domain/history"
)

const schema = `
CREATE TABLE IF NOT EXISTS summary_history (
	id            UUID PRIMARY KEY,
	url           TEXT NOT NULL,
	video_id      TEXT NOT NULL DEFAULT '',
	status        TEXT NOT NULL,
	topic_name    TEXT NOT NULL,
	topic_summary TEXT NOT NULL,
	duration_ms   BIGINT NOT NULL,
	created_at    TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS summary_history_created_at_idx ON summary_history (created_at DESC);
`

// PostgresRepository implements history.Repository using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository constructs the repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// EnsureSchema creates the history table when missing.
func (r *PostgresRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("ensure history schema: %w", err)
	}
	return nil
}

// Save inserts a new history row.
func (r *PostgresRepository) Save(ctx context.Context, entry history.Entry) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO summary_history (id, url, video_id, status, topic_name, topic_summary, duration_ms, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, entry.ID, entry.URL, entry.VideoID, entry.Status, entry.TopicName, entry.TopicSummary, entry.DurationMs, entry.CreatedAt)
	return err
}

// Recent returns the newest rows first.
func (r *PostgresRepository) Recent(ctx context.Context, limit int) ([]history.Entry, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, url, video_id, status, topic_name, topic_summary, duration_ms, created_at
		FROM summary_history
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanEntry)
}

func scanEntry(row pgx.CollectableRow) (history.Entry, error) {
	var entry history.Entry
	err := row.Scan(
		&entry.ID,
		&entry.URL,
		&entry.VideoID,
		&entry.Status,
		&entry.TopicName,
		&entry.TopicSummary,
		&entry.DurationMs,
		&entry.CreatedAt,
	)
	return entry, err
}

var _ history.Repository = (*PostgresRepository)(nil)
