// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"tradecall/config"

	"github.com/go-redis/redis/v8"
)

var (
	// CacheClient is the generic cache client.
	CacheClient *redis.Client
	// SuggestClient is the dedicated client for the address suggestion index.
	SuggestClient *redis.Client
)

// InitCache initializes the generic Redis cache client (using DB from AppConfig for general caching).
func InitCache() {
	CacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := CacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Cache): %v", err)
	}
}

// GetCacheClient returns the generic cache client.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		InitCache()
	}
	return CacheClient
}

// InitSuggestCache initializes the Redis client holding the address suggestion index.
func InitSuggestCache() {
	SuggestClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisSuggestDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := SuggestClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Suggest): %v", err)
	}
}

// GetSuggestClient returns the Redis client for the address suggestion index.
func GetSuggestClient() *redis.Client {
	if SuggestClient == nil {
		InitSuggestCache()
	}
	return SuggestClient
}

// InitRedis initializes all Redis clients up front.
func InitRedis() {
	InitCache()
	InitSuggestCache()
}
