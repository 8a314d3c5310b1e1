package reconcile_selection

import (
	"context"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// BusinessProvider источник карточек бизнеса
type BusinessProvider interface {
	Get(ctx context.Context, businessID int64) (*domain.Business, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
