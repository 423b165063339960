package catalog

import (
	"context"
	"errors"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

const cacheKeyPrefix = "catalog:service:"

// CachedClient кеширует ответы каталога в Redis
// Ошибки Redis не прерывают запрос: данные берутся из источника напрямую
type CachedClient struct {
	source Source
	rdb    redis.UniversalClient
	ttl    time.Duration
	log    Logger
}

// NewCachedClient создает кеширующую обертку над источником услуг
func NewCachedClient(source Source, rdb redis.UniversalClient, ttl time.Duration, log Logger) *CachedClient {
	return &CachedClient{
		source: source,
		rdb:    rdb,
		ttl:    ttl,
		log:    log,
	}
}

// GetService получает услугу из кеша или из источника
func (c *CachedClient) GetService(ctx context.Context, slug string) (*Service, error) {
	key := cacheKeyPrefix + slug

	raw, err := c.rdb.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var service Service
		if err := json.Unmarshal(raw, &service); err == nil {
			return &service, nil
		}
		c.log.Warn("Corrupted catalog cache entry %s, refetching", key)
	case !errors.Is(err, redis.Nil):
		c.log.Warn("Catalog cache read failed for %s: %v", key, err)
	}

	service, err := c.source.GetService(ctx, slug)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(service); err == nil {
		if err := c.rdb.Set(ctx, key, payload, c.ttl).Err(); err != nil {
			c.log.Warn("Catalog cache write failed for %s: %v", key, err)
		}
	}

	return service, nil
}
