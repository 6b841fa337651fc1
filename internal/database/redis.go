package database

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// ConnectRedis connects to Redis at addr, which may be a bare host:port or a
// redis:// URL. Returns nil when Redis is unreachable; callers treat a nil
// client as "rate limiting disabled".
func ConnectRedis(addr string) *redis.Client {
	var opts *redis.Options
	if strings.Contains(addr, "://") {
		parsed, err := redis.ParseURL(addr)
		if err != nil {
			slog.Warn("invalid REDIS_URL, continuing without redis", "addr", addr, "err", err)
			return nil
		}
		opts = parsed
	} else {
		opts = &redis.Options{Addr: addr}
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		slog.Warn("redis unreachable, continuing without redis", "err", err)
		return nil
	}
	slog.Info("redis connected")
	return client
}
