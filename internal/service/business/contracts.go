package business

import (
	"context"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// BusinessServiceClient интерфейс клиента для BusinessService
type BusinessServiceClient interface {
	GetBusiness(ctx context.Context, businessID int64) (*domain.Business, error)
}

// BusinessCache интерфейс кэша карточек бизнеса
type BusinessCache interface {
	Get(ctx context.Context, businessID int64) (*domain.Business, error)
	Set(ctx context.Context, business *domain.Business) error
	Invalidate(ctx context.Context, businessID int64) error
}

// CacheMetrics счетчик обращений к кэшу
type CacheMetrics interface {
	IncCacheRequest(result string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
