package results

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	redis "github.com/redis/go-redis/v9"

	"rift-server/internal/domain"
	redisclient "rift-server/internal/redis"
)

const (
	resultKeyPrefix = "match:result:"
	recentKey       = "match:results:recent"

	// Сколько матчей держим в индексе последних.
	recentCap = 200
)

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig - зависимости Redis-репозитория.
type RedisConfig struct {
	Client redisclient.Client
}

// Validate проверяет конфиг.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.New("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.New("client cannot be nil")
	}
	return nil
}

// NewRedis создает репозиторий поверх Redis.
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &redisRepository{client: cfg.Client}, nil
}

func (r *redisRepository) Save(ctx context.Context, summary domain.MatchSummary) error {
	if summary.MatchID == "" {
		return ErrEmptyMatchID
	}

	data, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("failed to marshal result %s: %w", summary.MatchID, err)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, GetKey(summary.MatchID), data, 0)
	pipe.ZAdd(ctx, recentKey, redis.Z{
		Score:  float64(summary.FinishedAt.UnixMilli()),
		Member: summary.MatchID,
	})
	pipe.ZRemRangeByRank(ctx, recentKey, 0, -recentCap-1)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save result %s: %w", summary.MatchID, err)
	}
	return nil
}

func (r *redisRepository) Get(ctx context.Context, matchID string) (*domain.MatchSummary, error) {
	if matchID == "" {
		return nil, ErrEmptyMatchID
	}

	raw, err := r.client.Get(ctx, GetKey(matchID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("result %s: %w", matchID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get result %s: %w", matchID, err)
	}

	var summary domain.MatchSummary
	if err := json.Unmarshal([]byte(raw), &summary); err != nil {
		return nil, fmt.Errorf("failed to unmarshal result %s: %w", matchID, err)
	}
	return &summary, nil
}

func (r *redisRepository) Recent(ctx context.Context, limit int) ([]domain.MatchSummary, error) {
	if limit <= 0 {
		return []domain.MatchSummary{}, nil
	}

	ids, err := r.client.ZRevRange(ctx, recentKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list recent results: %w", err)
	}

	out := make([]domain.MatchSummary, 0, len(ids))
	for _, id := range ids {
		s, err := r.Get(ctx, id)
		if errors.Is(err, ErrNotFound) {
			// Запись могла быть удалена вручную, индекс догонит сам.
			continue
		}
		if err != nil {
			return nil, err
		}
		out = append(out, *s)
	}
	return out, nil
}

// GetKey возвращает ключ Redis для итогов матча.
func GetKey(matchID string) string {
	return resultKeyPrefix + matchID
}
