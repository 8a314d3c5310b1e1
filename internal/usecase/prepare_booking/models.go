package prepare_booking

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// Request модель запроса на подготовку бронирования
type Request struct {
	BusinessID    int64            // ID бизнеса
	Date          time.Time        // Дата записи (без времени)
	StartTime     types.TimeString // Время начала, например "10:20"
	ServiceNames  []string         // Выбранные услуги
	StaffName     *string          // Выбранный сотрудник (опционально)
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	Notes         *string // Дополнительные заметки (опционально)
}

// Response модель ответа с готовыми данными для создания бронирования
type Response struct {
	Draft domain.BookingDraft
}

// serviceLine элемент списка услуг в поле serviceName
type serviceLine struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Duration int     `json:"duration"`
}
