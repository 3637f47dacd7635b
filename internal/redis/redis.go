package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// Snapshot keys. Dashboard reads fall back to these when the database is
// unreachable; the widget feed is served from here directly.
const (
	KeyRoutines   = "snapshot:routines"
	KeyEvents     = "snapshot:events"
	KeyWidgetData = "widget:data"
)

var Rdb *redis.Client

func InitRedis(redisAddress string, redisUsername string, redisPassword string) {
	Rdb = redis.NewClient(&redis.Options{
		Addr:     redisAddress,
		Username: redisUsername,
		Password: redisPassword,
		DB:       0,
	})
}

// SetJSON stores value marshalled as JSON. Failures are logged, never
// returned: a dead cache must not break a successful fetch.
func SetJSON(ctx context.Context, key string, value any, expiration time.Duration) {
	payload, err := json.Marshal(value)
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to encode cache value")
		return
	}
	if err := Rdb.Set(ctx, key, payload, expiration).Err(); err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to write cache")
	}
}

// GetJSON loads a key into out. Returns false when the key is missing or
// unreadable.
func GetJSON(ctx context.Context, key string, out any) bool {
	payload, err := Rdb.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Error().Err(err).Str("key", key).Msg("failed to read cache")
		}
		return false
	}
	if err := json.Unmarshal(payload, out); err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to decode cache value")
		return false
	}
	return true
}
