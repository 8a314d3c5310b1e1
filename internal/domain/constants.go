package domain

// Engine defaults
const (
	// GridStepMinutes шаг сетки кандидатов (бронирования и блокировки создаются с такой точностью)
	GridStepMinutes = 15

	// DefaultDurationMinutes длительность по умолчанию для нераспознанных меток и пустого выбора услуг
	DefaultDurationMinutes = 30

	// DefaultMinLeadMinutes минимальный запас до начала слота на сегодня (0 = только будущее время)
	DefaultMinLeadMinutes = 0

	// DefaultAvailableDatesDays сколько дней отдавать в календарь по умолчанию
	DefaultAvailableDatesDays = 30
)

// Business validation constants
const (
	MinGridStepMinutes    = 5
	MaxGridStepMinutes    = 60
	MaxMinLeadMinutes     = 1440 // 1 day
	MaxAvailableDatesDays = 365  // 1 year
	MaxServicesPerBooking = 10
	MaxNotesLength        = 500
	MaxCustomerNameLength = 200
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
