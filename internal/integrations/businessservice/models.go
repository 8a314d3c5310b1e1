package businessservice

import (
	"bytes"
	"encoding/json"
	"math"
)

// BusinessResponse карточка бизнеса из BusinessService
type BusinessResponse struct {
	ID             int64                  `json:"id"`
	Name           string                 `json:"name"`
	OperatingHours map[string]DayHoursDTO `json:"operating_hours"`
	Services       []ServiceDTO           `json:"services"`
	Staff          []StaffDTO             `json:"staff"`
}

// DayHoursDTO окно работы на день недели
type DayHoursDTO struct {
	Open   string `json:"open"`
	Close  string `json:"close"`
	Closed bool   `json:"closed"`
}

// ServiceDTO услуга бизнеса
type ServiceDTO struct {
	Name            string   `json:"name"`
	Price           float64  `json:"price"`
	Duration        Duration `json:"duration"`         // число минут или метка "1 orë 30 min"
	DurationMinutes int      `json:"duration_minutes"` // заполняется не всеми версиями BusinessService
}

// StaffDTO сотрудник бизнеса
type StaffDTO struct {
	Name              string                 `json:"name"`
	IsActive          *bool                  `json:"is_active"` // отсутствует = активен
	AssignedServices  []string               `json:"assigned_services"`
	OperatingSchedule map[string]DayHoursDTO `json:"operating_schedule"`
	Breaks            []BreakDTO             `json:"breaks"`
}

// BreakDTO ежедневный перерыв сотрудника
type BreakDTO struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// ErrorResponse модель ошибки от BusinessService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Duration длительность услуги в одном из двух форматов: число минут или строковая метка
type Duration struct {
	Minutes int
	Label   string
}

// UnmarshalJSON принимает число или строку
// Значение другой формы игнорируется, длительность потом берется по умолчанию
func (d *Duration) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	var number float64
	if err := json.Unmarshal(data, &number); err == nil {
		d.Minutes = int(math.Round(number))
		return nil
	}

	var label string
	if err := json.Unmarshal(data, &label); err == nil {
		d.Label = label
	}

	return nil
}
