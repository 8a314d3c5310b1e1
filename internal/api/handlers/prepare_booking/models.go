package prepare_booking

import (
	"errors"
	"strings"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	prepareBooking "github.com/m04kA/SMC-AvailabilityService/internal/usecase/prepare_booking"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

var (
	errInvalidDate = errors.New("invalid appointment date")
	errInvalidTime = errors.New("invalid appointment time")
)

// BookingDraftRequest HTTP request model
type BookingDraftRequest struct {
	AppointmentDate string   `json:"appointmentDate"` // "2026-10-19"
	AppointmentTime string   `json:"appointmentTime"` // "10:20"
	Services        []string `json:"services"`
	Staff           string   `json:"staff,omitempty"`
	CustomerName    string   `json:"customerName"`
	CustomerEmail   string   `json:"customerEmail,omitempty"`
	CustomerPhone   string   `json:"customerPhone,omitempty"`
	Notes           *string  `json:"notes,omitempty"`
}

// BookingDraftResponse данные для вызова создания бронирования
type BookingDraftResponse struct {
	BusinessID      int64    `json:"businessId"`
	ServiceName     string   `json:"serviceName"`
	Services        []string `json:"services"`
	StaffName       string   `json:"staffName"`
	AppointmentDate string   `json:"appointmentDate"`
	AppointmentTime string   `json:"appointmentTime"`
	TotalPrice      float64  `json:"totalPrice"`
	ServiceDuration int      `json:"serviceDuration"`
	CustomerName    string   `json:"customerName"`
	CustomerEmail   string   `json:"customerEmail,omitempty"`
	CustomerPhone   string   `json:"customerPhone,omitempty"`
	Notes           *string  `json:"notes,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *BookingDraftRequest) ToUseCaseRequest(businessID int64) (*prepareBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.AppointmentDate)
	if err != nil {
		return nil, errInvalidDate
	}

	startTime, err := types.NewTimeStringFromString(r.AppointmentTime)
	if err != nil {
		return nil, errInvalidTime
	}

	req := &prepareBooking.Request{
		BusinessID:    businessID,
		Date:          date,
		StartTime:     startTime,
		ServiceNames:  r.Services,
		CustomerName:  r.CustomerName,
		CustomerEmail: r.CustomerEmail,
		CustomerPhone: r.CustomerPhone,
		Notes:         r.Notes,
	}
	if name := strings.TrimSpace(r.Staff); name != "" {
		req.StaffName = &name
	}
	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *prepareBooking.Response) *BookingDraftResponse {
	draft := resp.Draft
	return &BookingDraftResponse{
		BusinessID:      draft.BusinessID,
		ServiceName:     draft.ServiceName,
		Services:        draft.ServiceNames,
		StaffName:       draft.StaffName,
		AppointmentDate: draft.AppointmentDate.Format(domain.DateFormat),
		AppointmentTime: draft.AppointmentTime,
		TotalPrice:      draft.TotalPrice,
		ServiceDuration: draft.ServiceDuration,
		CustomerName:    draft.CustomerName,
		CustomerEmail:   draft.CustomerEmail,
		CustomerPhone:   draft.CustomerPhone,
		Notes:           draft.Notes,
	}
}
