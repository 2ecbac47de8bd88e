package historyrepo

import (
	"context"
	"sync"

	"github.com/yanqian/yt-summarizer/internal/domain/history"
)

// MemoryRepository keeps the most recent entries in a fixed size ring.
type MemoryRepository struct {
	mu      sync.RWMutex
	entries []history.Entry
	next    int
	full    bool
}

// NewMemoryRepository constructs a repo holding at most capacity entries.
func NewMemoryRepository(capacity int) *MemoryRepository {
	if capacity <= 0 {
		capacity = history.MaxLimit
	}
	return &MemoryRepository{entries: make([]history.Entry, capacity)}
}

// Save implements history.Repository. The oldest entry is overwritten once
// the ring is full.
func (r *MemoryRepository) Save(_ context.Context, entry history.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[r.next] = entry
	r.next = (r.next + 1) % len(r.entries)
	if r.next == 0 {
		r.full = true
	}
	return nil
}

// Recent implements history.Repository.
func (r *MemoryRepository) Recent(_ context.Context, limit int) ([]history.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	size := r.next
	if r.full {
		size = len(r.entries)
	}
	if limit <= 0 || limit > size {
		limit = size
	}
	out := make([]history.Entry, 0, limit)
	for i := 1; i <= limit; i++ {
		idx := (r.next - i + len(r.entries)) % len(r.entries)
		out = append(out, r.entries[idx])
	}
	return out, nil
}

var _ history.Repository = (*MemoryRepository)(nil)
