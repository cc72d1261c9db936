package rediscache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/LavaJover/shvark-affiliate-service/internal/domain"
	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "session:"

// SessionCache - read-through кэш сессий поверх Redis. Любая ошибка Redis
// деградирует до промаха, источником истины остаётся Postgres.
type SessionCache struct {
	rdb *redis.Client
}

func NewSessionCache(addr, password string, db int) (*SessionCache, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}
	return &SessionCache{rdb: rdb}, nil
}

func (c *SessionCache) Get(key string) (*domain.ClickSession, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	raw, err := c.rdb.Get(ctx, sessionKeyPrefix+key).Result()
	if err != nil {
		return nil, false
	}
	var session domain.ClickSession
	if err := json.Unmarshal([]byte(raw), &session); err != nil {
		// битое значение выбрасываем
		c.rdb.Del(ctx, sessionKeyPrefix+key)
		return nil, false
	}
	return &session, true
}

func (c *SessionCache) Set(session *domain.ClickSession) {
	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return
	}
	raw, err := json.Marshal(session)
	if err != nil {
		slog.Error("failed to marshal session for cache", "error", err.Error())
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	if err := c.rdb.Set(ctx, sessionKeyPrefix+session.Key, raw, ttl).Err(); err != nil {
		slog.Error("failed to cache session", "error", err.Error())
	}
}

func (c *SessionCache) Invalidate(key string) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	c.rdb.Del(ctx, sessionKeyPrefix+key)
}

// NoopSessionCache используется, когда Redis не сконфигурирован.
type NoopSessionCache struct{}

func (NoopSessionCache) Get(key string) (*domain.ClickSession, bool) { return nil, false }
func (NoopSessionCache) Set(session *domain.ClickSession)            {}
func (NoopSessionCache) Invalidate(key string)                       {}
