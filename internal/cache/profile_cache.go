// Package cache keeps computed profile summaries in Redis so repeated
// profile reads on the same day skip the exercise log scan.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/terraincognita07/daystreak/internal/metrics"
	"github.com/terraincognita07/daystreak/internal/services"
)

const (
	keyPrefix     = "daystreak:profile:"
	generationTTL = 24 * time.Hour
)

var errGenerationChanged = errors.New("profile generation changed")

type ProfileCache struct {
	client *redis.Client
	ttl    time.Duration
	logger zerolog.Logger
}

func NewProfileCache(client *redis.Client, ttl time.Duration, logger zerolog.Logger) *ProfileCache {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &ProfileCache{
		client: client,
		ttl:    ttl,
		logger: logger.With().Str("component", "profile_cache").Logger(),
	}
}

// Connect parses a redis:// URL or host:port address and pings the server.
func Connect(ctx context.Context, address string) (*redis.Client, error) {
	options, err := redis.ParseURL(address)
	if err != nil {
		options = &redis.Options{Addr: address}
	}

	client := redis.NewClient(options)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis %s: %w", options.Addr, err)
	}
	return client, nil
}

// Summaries live in one hash per user, one field per day, so a single DEL
// drops every cached day.
func profileKey(userID string) string {
	return keyPrefix + userID
}

func generationKey(userID string) string {
	return keyPrefix + userID + ":gen"
}

type stringGetter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

func readGeneration(ctx context.Context, reader stringGetter, userID string) (int64, error) {
	generation, err := reader.Get(ctx, generationKey(userID)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return generation, err
}

func (cache *ProfileCache) Generation(ctx context.Context, userID string) (int64, bool) {
	generation, err := readGeneration(ctx, cache.client, userID)
	if err != nil {
		cache.logger.Warn().Err(err).Str("user_id", userID).Msg("profile cache generation read failed")
		return 0, false
	}
	return generation, true
}

func (cache *ProfileCache) Get(ctx context.Context, userID string, day services.ExerciseDay) (services.UserProfileSummary, bool) {
	raw, err := cache.client.HGet(ctx, profileKey(userID), day.String()).Bytes()
	if errors.Is(err, redis.Nil) {
		metrics.ProfileCacheLookupsTotal.WithLabelValues("miss").Inc()
		return services.UserProfileSummary{}, false
	}
	if err != nil {
		metrics.ProfileCacheLookupsTotal.WithLabelValues("error").Inc()
		cache.logger.Warn().Err(err).Str("user_id", userID).Msg("profile cache read failed")
		return services.UserProfileSummary{}, false
	}

	var summary services.UserProfileSummary
	if err := json.Unmarshal(raw, &summary); err != nil {
		metrics.ProfileCacheLookupsTotal.WithLabelValues("error").Inc()
		cache.logger.Warn().Err(err).Str("user_id", userID).Msg("profile cache entry is corrupt")
		return services.UserProfileSummary{}, false
	}

	metrics.ProfileCacheLookupsTotal.WithLabelValues("hit").Inc()
	return summary, true
}

// Set stores summary only while the user's generation still equals
// generation. The check and the write run under WATCH so an Invalidate in
// between aborts the transaction.
func (cache *ProfileCache) Set(ctx context.Context, userID string, day services.ExerciseDay, generation int64, summary services.UserProfileSummary) {
	payload, err := json.Marshal(summary)
	if err != nil {
		cache.logger.Warn().Err(err).Str("user_id", userID).Msg("encode profile summary")
		return
	}

	key := profileKey(userID)
	err = cache.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := readGeneration(ctx, tx, userID)
		if err != nil {
			return err
		}
		if current != generation {
			return errGenerationChanged
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HSet(ctx, key, day.String(), payload)
			pipe.Expire(ctx, key, cache.ttl)
			return nil
		})
		return err
	}, generationKey(userID))

	switch {
	case err == nil:
	case errors.Is(err, errGenerationChanged), errors.Is(err, redis.TxFailedErr):
		cache.logger.Debug().Str("user_id", userID).Msg("skip stale profile summary")
	default:
		cache.logger.Warn().Err(err).Str("user_id", userID).Msg("profile cache write failed")
	}
}

// Invalidate drops every cached day and bumps the generation so summaries
// computed before this call are refused by Set.
func (cache *ProfileCache) Invalidate(ctx context.Context, userID string) {
	pipe := cache.client.TxPipeline()
	pipe.Incr(ctx, generationKey(userID))
	pipe.Expire(ctx, generationKey(userID), generationTTL)
	pipe.Del(ctx, profileKey(userID))
	if _, err := pipe.Exec(ctx); err != nil {
		cache.logger.Warn().Err(err).Str("user_id", userID).Msg("profile cache invalidation failed")
	}
}
