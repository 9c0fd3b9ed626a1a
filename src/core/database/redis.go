package database

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/tunde1256/flashcard/src/core/config"
)

// RedisClient is the global Redis client, used for the revoked-token set.
var RedisClient *redis.Client

func ConnectRedis() {
	addr := config.ConfigOr("REDIS_ADDR", "localhost:6379")

	RedisClient = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: config.Config("REDIS_PASSWORD"),
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := RedisClient.Ping(ctx).Err(); err != nil {
		log.Fatalf("Error connecting to Redis: %v", err)
	}
	log.Printf("Redis connected at %s", addr)
}
