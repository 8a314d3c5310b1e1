package reconcile_selection

import (
	"strings"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/availability"
	reconcileSelection "github.com/m04kA/SMC-AvailabilityService/internal/usecase/reconcile_selection"
)

// SelectionRequest HTTP request model
type SelectionRequest struct {
	Services []string `json:"services"`
	Staff    string   `json:"staff,omitempty"`
	Change   string   `json:"change"` // "services" | "staff"
}

// SelectionResponse HTTP response model
type SelectionResponse struct {
	Services             []string                   `json:"services"`
	Staff                string                     `json:"staff"`
	TotalDurationMinutes int                        `json:"totalDurationMinutes"`
	TotalPrice           float64                    `json:"totalPrice"`
	EligibleStaff        []string                   `json:"eligibleStaff"`
	ServiceOptions       []ServiceOption            `json:"serviceOptions"`
	Warnings             []handlers.WarningResponse `json:"warnings"`
}

// ServiceOption карточка услуги
type ServiceOption struct {
	Name            string  `json:"name"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"durationMinutes"`
	Selectable      bool    `json:"selectable"`
	Selected        bool    `json:"selected"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *SelectionRequest) ToUseCaseRequest(businessID int64) *reconcileSelection.Request {
	req := &reconcileSelection.Request{
		BusinessID:   businessID,
		ServiceNames: r.Services,
		Change:       availability.Change(strings.ToLower(strings.TrimSpace(r.Change))),
	}
	if name := strings.TrimSpace(r.Staff); name != "" {
		req.StaffName = &name
	}
	return req
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *reconcileSelection.Response) *SelectionResponse {
	options := make([]ServiceOption, 0, len(resp.Services))
	for _, s := range resp.Services {
		options = append(options, ServiceOption{
			Name:            s.Name,
			Price:           s.Price,
			DurationMinutes: s.DurationMinutes,
			Selectable:      s.Selectable,
			Selected:        s.Selected,
		})
	}

	response := &SelectionResponse{
		Services:             resp.ServiceNames,
		TotalDurationMinutes: resp.TotalDurationMinutes,
		TotalPrice:           resp.TotalPrice,
		EligibleStaff:        resp.EligibleStaff,
		ServiceOptions:       options,
		Warnings:             handlers.FromWarnings(resp.Warnings),
	}
	if response.Services == nil {
		response.Services = []string{}
	}
	if response.EligibleStaff == nil {
		response.EligibleStaff = []string{}
	}
	if resp.StaffName != nil {
		response.Staff = *resp.StaffName
	}
	return response
}
