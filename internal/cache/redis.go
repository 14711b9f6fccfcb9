package cache

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

// Board cache keys
const (
	boardKey       = "board:all"
	propertyKeyFmt = "board:property:%d"
)

const boardTTL = 30 * time.Second

var client *redis.Client

// Init initializes the Redis connection. The cache is optional: when Redis is
// unreachable every Get returns a miss and every Set is a no-op.
func Init() error {
	host := os.Getenv("REDIS_HOST")
	if host == "" {
		host = "localhost"
	}
	port := os.Getenv("REDIS_PORT")
	if port == "" {
		port = "6379"
	}

	client = redis.NewClient(&redis.Options{
		Addr:     host + ":" + port,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		client = nil
		return err
	}
	return nil
}

// GetCachedBoard returns the cached all-property board payload if present.
func GetCachedBoard(ctx context.Context) ([]byte, bool) {
	if client == nil {
		return nil, false
	}
	data, err := client.Get(ctx, boardKey).Bytes()
	if err != nil {
		return nil, false
	}
	return data, true
}

// CacheBoard stores the all-property board payload.
func CacheBoard(ctx context.Context, data []byte) {
	if client == nil {
		return
	}
	client.Set(ctx, boardKey, data, boardTTL)
}

// GetCachedPropertyBoard returns the cached single-property detail if present.
func GetCachedPropertyBoard(ctx context.Context, propertyID int) ([]byte, bool) {
	if client == nil {
		return nil, false
	}
	data, err := client.Get(ctx, fmt.Sprintf(propertyKeyFmt, propertyID)).Bytes()
	if err != nil {
		return nil, false
	}
	return data, true
}

// CachePropertyBoard stores a single-property detail payload.
func CachePropertyBoard(ctx context.Context, propertyID int, data []byte) {
	if client == nil {
		return
	}
	client.Set(ctx, fmt.Sprintf(propertyKeyFmt, propertyID), data, boardTTL)
}

// InvalidateBoards drops every cached board payload. Called after any room,
// staff or inventory mutation so the board never serves stale counts for
// longer than one request.
func InvalidateBoards(ctx context.Context, propertyID int) {
	if client == nil {
		return
	}
	client.Del(ctx, boardKey, fmt.Sprintf(propertyKeyFmt, propertyID))
}
