package business

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	cacheBusiness "github.com/m04kA/SMC-AvailabilityService/internal/infra/cache/business"
	"github.com/m04kA/SMC-AvailabilityService/internal/integrations/businessservice"
)

const (
	cacheHit   = "hit"
	cacheMiss  = "miss"
	cacheError = "error"
)

// Service получение карточек бизнеса с кэшированием
type Service struct {
	client  BusinessServiceClient
	cache   BusinessCache
	metrics CacheMetrics
	logger  Logger
}

// NewService создает новый экземпляр сервиса
// cache и metrics могут быть nil: тогда карточка всегда запрашивается у BusinessService
func NewService(
	client BusinessServiceClient,
	cache BusinessCache,
	metrics CacheMetrics,
	logger Logger,
) *Service {
	return &Service{
		client:  client,
		cache:   cache,
		metrics: metrics,
		logger:  logger,
	}
}

// Get возвращает карточку бизнеса
// Сначала ищет в кэше, затем запрашивает BusinessService и кладет ответ в кэш.
// Недоступность кэша не ломает запрос: ошибка логируется, карточка берется из BusinessService.
func (s *Service) Get(ctx context.Context, businessID int64) (*domain.Business, error) {
	if cached, ok := s.fromCache(ctx, businessID); ok {
		return cached, nil
	}

	business, err := s.client.GetBusiness(ctx, businessID)
	if err != nil {
		if errors.Is(err, businessservice.ErrBusinessNotFound) {
			s.logger.Warn("Get: business id=%d not found", businessID)
			return nil, ErrBusinessNotFound
		}
		s.logger.Error("Get: failed to get business id=%d: %v", businessID, err)
		return nil, fmt.Errorf("%w: failed to get business: %v", ErrInternal, err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, business); err != nil {
			s.logger.Warn("Get: failed to cache business id=%d: %v", businessID, err)
		}
	}

	return business, nil
}

func (s *Service) fromCache(ctx context.Context, businessID int64) (*domain.Business, bool) {
	if s.cache == nil {
		return nil, false
	}

	business, err := s.cache.Get(ctx, businessID)
	switch {
	case err == nil:
		s.observe(cacheHit)
		return business, true
	case errors.Is(err, cacheBusiness.ErrCacheMiss):
		s.observe(cacheMiss)
	case errors.Is(err, cacheBusiness.ErrCodec):
		// Битая запись удаляется, чтобы следующий запрос записал свежую
		s.observe(cacheError)
		s.logger.Warn("Get: corrupted cache entry for business id=%d: %v", businessID, err)
		if err := s.cache.Invalidate(ctx, businessID); err != nil {
			s.logger.Warn("Get: failed to invalidate business id=%d: %v", businessID, err)
		}
	default:
		s.observe(cacheError)
		s.logger.Warn("Get: cache unavailable for business id=%d, bypassing: %v", businessID, err)
	}

	return nil, false
}

func (s *Service) observe(result string) {
	if s.metrics != nil {
		s.metrics.IncCacheRequest(result)
	}
}
