package get_available_dates

import (
	"strconv"
	"strings"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	getAvailableDates "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_available_dates"
)

// AvailableDatesResponse HTTP response model
type AvailableDatesResponse struct {
	BusinessID int64                      `json:"businessId"`
	StaffName  string                     `json:"staffName"`
	Dates      []DateStatus               `json:"dates"`
	Warnings   []handlers.WarningResponse `json:"warnings"`
}

// DateStatus доступность одной даты календаря
type DateStatus struct {
	Date    string `json:"date"`
	Enabled bool   `json:"enabled"`
	Reason  string `json:"reason,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableDates.Response) *AvailableDatesResponse {
	dates := make([]DateStatus, 0, len(resp.Dates))
	for _, d := range resp.Dates {
		dates = append(dates, DateStatus{
			Date:    d.Date.Format(domain.DateFormat),
			Enabled: d.Enabled,
			Reason:  string(d.Reason),
		})
	}

	response := &AvailableDatesResponse{
		BusinessID: resp.BusinessID,
		Dates:      dates,
		Warnings:   handlers.FromWarnings(resp.Warnings),
	}
	if resp.StaffName != nil {
		response.StaffName = *resp.StaffName
	}
	return response
}

// ToUseCaseRequest создает запрос use case из query параметров
// Пустые from и days означают значения по умолчанию
func ToUseCaseRequest(businessID int64, fromStr, daysStr, staffName string) (*getAvailableDates.Request, error) {
	req := &getAvailableDates.Request{BusinessID: businessID}

	if fromStr != "" {
		from, err := time.Parse(domain.DateFormat, fromStr)
		if err != nil {
			return nil, err
		}
		req.From = from
	}

	if daysStr != "" {
		days, err := strconv.Atoi(daysStr)
		if err != nil {
			return nil, err
		}
		req.Days = days
	}

	if name := strings.TrimSpace(staffName); name != "" {
		req.StaffName = &name
	}
	return req, nil
}
