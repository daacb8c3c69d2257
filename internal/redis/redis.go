package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
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

func playlistETagKey(displayID int) string {
	return fmt.Sprintf("display:%d:playlist:etag", displayID)
}

// GetPlaylistETag returns the cached playlist ETag for a display, or ""
// when none is cached.
func GetPlaylistETag(ctx context.Context, displayID int) string {
	if Rdb == nil {
		return ""
	}
	etag, err := Rdb.Get(ctx, playlistETagKey(displayID)).Result()
	if err != nil {
		return ""
	}
	return etag
}

// SetPlaylistETag caches a display's playlist ETag so TV polls can be
// answered with 304 until the next assignment mutation.
func SetPlaylistETag(ctx context.Context, displayID int, etag string, ttl time.Duration) {
	if Rdb == nil {
		return
	}
	if err := Rdb.Set(ctx, playlistETagKey(displayID), etag, ttl).Err(); err != nil {
		log.Warn().Err(err).Int("display_id", displayID).Msg("failed to cache playlist etag")
	}
}

// InvalidatePlaylistETag drops the cached ETag after any assignment or
// content mutation touching the display.
func InvalidatePlaylistETag(ctx context.Context, displayID int) {
	if Rdb == nil {
		return
	}
	if err := Rdb.Del(ctx, playlistETagKey(displayID)).Err(); err != nil {
		log.Warn().Err(err).Int("display_id", displayID).Msg("failed to invalidate playlist etag")
	} else {
		log.Debug().Int("display_id", displayID).Msg("invalidated playlist etag")
	}
}
