package prepare_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// BusinessProvider источник карточек бизнеса
type BusinessProvider interface {
	Get(ctx context.Context, businessID int64) (*domain.Business, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByBusinessAndDate(ctx context.Context, filter domain.BookingsFilter) ([]domain.ExistingBooking, error)
}

// BlockedPeriodRepository интерфейс репозитория блокировок
type BlockedPeriodRepository interface {
	GetByBusinessAndDate(ctx context.Context, filter domain.BookingsFilter) ([]domain.BlockedPeriod, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
