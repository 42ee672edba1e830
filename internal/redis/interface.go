package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client is the redis client used by repositories
type Client interface {
	redis.UniversalClient
}
