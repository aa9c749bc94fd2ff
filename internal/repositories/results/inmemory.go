package results

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"rift-server/internal/domain"
)

type memoryRepository struct {
	mu    sync.RWMutex
	items map[string]domain.MatchSummary
}

// NewInMemory создает репозиторий в памяти. Используется, когда
// адрес Redis не задан.
func NewInMemory() Repository {
	return &memoryRepository{items: make(map[string]domain.MatchSummary)}
}

func (r *memoryRepository) Save(_ context.Context, summary domain.MatchSummary) error {
	if summary.MatchID == "" {
		return ErrEmptyMatchID
	}
	r.mu.Lock()
	r.items[summary.MatchID] = summary
	r.mu.Unlock()
	return nil
}

func (r *memoryRepository) Get(_ context.Context, matchID string) (*domain.MatchSummary, error) {
	if matchID == "" {
		return nil, ErrEmptyMatchID
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.items[matchID]
	if !ok {
		return nil, fmt.Errorf("result %s: %w", matchID, ErrNotFound)
	}
	return &s, nil
}

func (r *memoryRepository) Recent(_ context.Context, limit int) ([]domain.MatchSummary, error) {
	r.mu.RLock()
	out := make([]domain.MatchSummary, 0, len(r.items))
	for _, s := range r.items {
		out = append(out, s)
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		return out[i].FinishedAt.After(out[j].FinishedAt)
	})
	if limit < 0 {
		limit = 0
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
