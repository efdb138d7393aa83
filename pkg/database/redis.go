package database

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Wannasingh/wannasingh-blog/config"
)

// InitRedis connects to redis and verifies the connection with a ping.
func InitRedis(cfg *config.Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return client, nil
}
