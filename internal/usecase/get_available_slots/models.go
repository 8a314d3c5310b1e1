package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/availability"
)

// Request модель запроса на получение доступных времен начала
type Request struct {
	BusinessID   int64     // ID бизнеса
	Date         time.Time // Дата (без времени)
	ServiceNames []string  // Выбранные услуги (по названию)
	StaffName    *string   // Выбранный сотрудник (опционально)
}

// Response модель ответа со списком доступных времен начала
type Response struct {
	Date                 time.Time                 // Дата, на которую запрашивались слоты
	BusinessID           int64                     // ID бизнеса
	Slots                domain.SlotSet            // Отсортированные времена начала
	TotalDurationMinutes int                       // Суммарная длительность выбранных услуг
	TotalPrice           float64                   // Суммарная стоимость выбранных услуг
	StaffName            *string                   // Сотрудник, для которого считались слоты (nil - любой)
	DateEnabled          bool                      // Можно ли выбрать дату
	DisabledReason       domain.DateDisabledReason // Причина, если дата недоступна
	Warnings             []availability.Warning    // Сброшенный несовместимый выбор
}
