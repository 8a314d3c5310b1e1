package handlers

import "github.com/m04kA/SMC-AvailabilityService/internal/service/availability"

// WarningResponse предупреждение о сброшенном выборе
type WarningResponse struct {
	Code     string   `json:"code"`
	Subjects []string `json:"subjects"`
}

// FromWarnings конвертирует предупреждения в HTTP модель, nil - пустой список
func FromWarnings(warnings []availability.Warning) []WarningResponse {
	result := make([]WarningResponse, 0, len(warnings))
	for _, w := range warnings {
		subjects := w.Subjects
		if subjects == nil {
			subjects = []string{}
		}
		result = append(result, WarningResponse{Code: string(w.Code), Subjects: subjects})
	}
	return result
}
