package redis

import (
	"time"

	"mindmap-srv/internal/mindmap/repository"
	"mindmap-srv/pkg/log"
	pkgRedis "mindmap-srv/pkg/redis"
)

const (
	keyPrefix  = "mindmap:nodes:"
	defaultTTL = time.Hour
)

type implCacheRepository struct {
	redis pkgRedis.IRedis
	l     log.Logger
	ttl   time.Duration
}

// New creates the Redis-backed node cache. A non-positive ttl falls back to one hour.
func New(redis pkgRedis.IRedis, l log.Logger, ttl time.Duration) repository.CacheRepository {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &implCacheRepository{
		redis: redis,
		l:     l,
		ttl:   ttl,
	}
}

func cacheKey(videoID string) string {
	return keyPrefix + videoID
}
