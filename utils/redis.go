package utils

import (
	"context"
	"os"
	"strconv"

	"github.com/go-redis/redis/v8"
)

var (
	redisClient    *redis.Client
	redisAvailable bool
)

// InitRedis connects to redis when REDIS_ADDR is configured. Redis is
// optional: like-toggle guards and unique-visitor counting degrade without
// it, the rest of the API is unaffected.
func InitRedis() {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		LogInfo("REDIS_ADDR not set, running without redis")
		return
	}

	dbNum := 0
	if v := os.Getenv("REDIS_DB"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			dbNum = n
		}
	}

	redisClient = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       dbNum,
	})

	if _, err := redisClient.Ping(context.Background()).Result(); err != nil {
		LogError(err, "Redis unreachable, running in degraded mode")
		redisAvailable = false
		return
	}

	redisAvailable = true
	LogSuccess("Redis connection successful")
}

// GetRedis returns nil when redis is not configured or unreachable.
func GetRedis() *redis.Client {
	if !redisAvailable {
		return nil
	}
	return redisClient
}
