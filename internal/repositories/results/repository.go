// Package results хранит итоги завершенных матчей.
package results

//go:generate mockgen -destination=mock/mock_repository.go -package=resultsmock rift-server/internal/repositories/results Repository

import (
	"context"
	"errors"

	"rift-server/internal/domain"
)

// ErrNotFound - итогов матча с таким ID нет.
var ErrNotFound = errors.New("match result not found")

// ErrEmptyMatchID - пустой ID матча.
var ErrEmptyMatchID = errors.New("match id cannot be empty")

// Repository - хранилище итогов матчей.
type Repository interface {
	// Save сохраняет итоги. Повторное сохранение перезаписывает запись.
	Save(ctx context.Context, summary domain.MatchSummary) error

	// Get возвращает итоги матча или ErrNotFound.
	Get(ctx context.Context, matchID string) (*domain.MatchSummary, error)

	// Recent возвращает до limit последних итогов, новые первыми.
	Recent(ctx context.Context, limit int) ([]domain.MatchSummary, error)
}
