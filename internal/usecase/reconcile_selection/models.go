package reconcile_selection

import "github.com/m04kA/SMC-AvailabilityService/internal/service/availability"

// Request текущий выбор пользователя и то, что он изменил последним
type Request struct {
	BusinessID   int64
	ServiceNames []string
	StaffName    *string
	Change       availability.Change
}

// Response согласованный выбор
type Response struct {
	ServiceNames         []string
	StaffName            *string
	TotalDurationMinutes int
	TotalPrice           float64
	Warnings             []availability.Warning
	EligibleStaff        []string        // сотрудники, которых можно выбрать для текущих услуг
	Services             []ServiceOption // карточки услуг с учетом выбранного сотрудника
}

// ServiceOption карточка услуги
type ServiceOption struct {
	Name            string
	Price           float64
	DurationMinutes int
	Selectable      bool // false - выбранный сотрудник не выполняет услугу
	Selected        bool
}
