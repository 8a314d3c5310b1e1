package get_available_slots

import (
	"strings"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date                 string                     `json:"date"`
	BusinessID           int64                      `json:"businessId"`
	Slots                []string                   `json:"slots"`
	TotalDurationMinutes int                        `json:"totalDurationMinutes"`
	TotalPrice           float64                    `json:"totalPrice"`
	StaffName            string                     `json:"staffName"`
	DateEnabled          bool                       `json:"dateEnabled"`
	DisabledReason       string                     `json:"disabledReason,omitempty"`
	Warnings             []handlers.WarningResponse `json:"warnings"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	response := &AvailableSlotsResponse{
		Date:                 resp.Date.Format(domain.DateFormat),
		BusinessID:           resp.BusinessID,
		Slots:                resp.Slots.Strings(),
		TotalDurationMinutes: resp.TotalDurationMinutes,
		TotalPrice:           resp.TotalPrice,
		DateEnabled:          resp.DateEnabled,
		DisabledReason:       string(resp.DisabledReason),
		Warnings:             handlers.FromWarnings(resp.Warnings),
	}
	if resp.StaffName != nil {
		response.StaffName = *resp.StaffName
	}
	return response
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(businessID int64, dateStr string, serviceNames []string, staffName string) (*getAvailableSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	req := &getAvailableSlots.Request{
		BusinessID:   businessID,
		Date:         date,
		ServiceNames: serviceNames,
	}
	if name := strings.TrimSpace(staffName); name != "" {
		req.StaffName = &name
	}
	return req, nil
}
