package get_available_dates

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/availability"
)

// Request модель запроса календаря доступных дат
type Request struct {
	BusinessID int64
	From       time.Time // Первая дата диапазона (нулевая - сегодня)
	Days       int       // Количество дней (0 - значение по умолчанию)
	StaffName  *string   // Выбранный сотрудник (опционально)
}

// Response модель ответа
type Response struct {
	BusinessID int64
	StaffName  *string
	Dates      []domain.DateStatus
	Warnings   []availability.Warning
}
