package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client - то, что нужно репозиториям от Redis.
type Client interface {
	redis.UniversalClient
}
