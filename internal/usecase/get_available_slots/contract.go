package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// BusinessProvider источник карточек бизнеса (расписание, услуги, сотрудники)
type BusinessProvider interface {
	Get(ctx context.Context, businessID int64) (*domain.Business, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// GetByBusinessAndDate получает бронирования бизнеса на конкретную дату
	GetByBusinessAndDate(ctx context.Context, filter domain.BookingsFilter) ([]domain.ExistingBooking, error)
}

// BlockedPeriodRepository интерфейс репозитория блокировок
type BlockedPeriodRepository interface {
	GetByBusinessAndDate(ctx context.Context, filter domain.BookingsFilter) ([]domain.BlockedPeriod, error)
}

// SlotMetrics метрики расчета слотов
type SlotMetrics interface {
	ObserveSlotCalculation(slots int, staffSelected bool, duration time.Duration)
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

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct {
	Location *time.Location // nil = локальный часовой пояс
}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	if p.Location == nil {
		return time.Now()
	}
	return time.Now().In(p.Location)
}
