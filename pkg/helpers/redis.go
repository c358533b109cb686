package helpers

import "github.com/redis/go-redis/v9"

// NewRedisClient initializes a redis client, or returns nil when no address
// is configured so callers can fall back to in-process alternatives.
func NewRedisClient(addr, password string, db int) *redis.Client {
	if addr == "" {
		return nil
	}
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
}
