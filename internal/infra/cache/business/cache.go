package business

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

const keyPrefix = "availability:business:"

// Cache Redis кэш карточек бизнеса
type Cache struct {
	client RedisClient
	ttl    time.Duration
}

// NewCache создает кэш с временем жизни записи ttl
func NewCache(client RedisClient, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

// Get возвращает карточку бизнеса или ErrCacheMiss
func (c *Cache) Get(ctx context.Context, businessID int64) (*domain.Business, error) {
	raw, err := c.client.Get(ctx, key(businessID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - business_id=%d: %v", ErrCache, businessID, err)
	}

	var s snapshot
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("%w: Get - decode business_id=%d: %v", ErrCodec, businessID, err)
	}
	if s.Version != snapshotVersion {
		return nil, ErrCacheMiss
	}

	return s.toDomain(), nil
}

// Set сохраняет карточку бизнеса
func (c *Cache) Set(ctx context.Context, business *domain.Business) error {
	raw, err := json.Marshal(fromDomain(business))
	if err != nil {
		return fmt.Errorf("%w: Set - encode business_id=%d: %v", ErrCodec, business.ID, err)
	}

	if err := c.client.Set(ctx, key(business.ID), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("%w: Set - business_id=%d: %v", ErrCache, business.ID, err)
	}
	return nil
}

// Invalidate удаляет карточку бизнеса из кэша
func (c *Cache) Invalidate(ctx context.Context, businessID int64) error {
	if err := c.client.Del(ctx, key(businessID)).Err(); err != nil {
		return fmt.Errorf("%w: Invalidate - business_id=%d: %v", ErrCache, businessID, err)
	}
	return nil
}

func key(businessID int64) string {
	return fmt.Sprintf("%s%d", keyPrefix, businessID)
}
