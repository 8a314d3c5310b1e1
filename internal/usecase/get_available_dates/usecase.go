package get_available_dates

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/availability"
	businessService "github.com/m04kA/SMC-AvailabilityService/internal/service/business"
)

// UseCase use case получения доступности дат для календаря
// Дата доступна, если она не в прошлом, бизнес открыт и выбранный сотрудник работает в этот день недели
type UseCase struct {
	businessProvider BusinessProvider
	maxDays          int
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
// maxDays ограничивает длину запрашиваемого диапазона
func NewUseCase(businessProvider BusinessProvider, maxDays int, timeProvider TimeProvider, logger Logger) *UseCase {
	if maxDays <= 0 || maxDays > domain.MaxAvailableDatesDays {
		maxDays = domain.DefaultAvailableDatesDays
	}
	return &UseCase{
		businessProvider: businessProvider,
		maxDays:          maxDays,
		timeProvider:     timeProvider,
		logger:           logger,
	}
}

// Execute выполняет use case
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableDates: business=%d, from=%s, days=%d, staff=%s",
		req.BusinessID, req.From.Format(domain.DateFormat), req.Days, staffLabel(req.StaffName))

	if err := uc.validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableDates: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	from := req.From
	if from.IsZero() {
		from = now
	}
	from = dateOnly(from)

	days := req.Days
	if days == 0 {
		days = min(domain.DefaultAvailableDatesDays, uc.maxDays)
	}

	business, err := uc.businessProvider.Get(ctx, req.BusinessID)
	if err != nil {
		if errors.Is(err, businessService.ErrBusinessNotFound) {
			uc.logger.Warn("GetAvailableDates: business id=%d not found", req.BusinessID)
			return nil, ErrBusinessNotFound
		}
		uc.logger.Error("GetAvailableDates: failed to get business id=%d: %v", req.BusinessID, err)
		return nil, fmt.Errorf("%w: failed to get business: %v", ErrInternal, err)
	}

	selection := availability.Selection{}
	if req.StaffName != nil && *req.StaffName != "" {
		staff, ok := business.FindStaff(*req.StaffName)
		if !ok {
			uc.logger.Warn("GetAvailableDates: staff %q not found in business=%d", *req.StaffName, req.BusinessID)
			return nil, fmt.Errorf("%w: %q", ErrStaffNotFound, *req.StaffName)
		}
		selection.Staff = staff
	}

	// Неактивный сотрудник сбрасывается, календарь строится по расписанию бизнеса
	selection, warnings := availability.Reconcile(selection, availability.ChangeStaff)

	response := &Response{
		BusinessID: req.BusinessID,
		Dates:      make([]domain.DateStatus, 0, days),
		Warnings:   warnings,
	}
	if selection.Staff != nil {
		response.StaffName = &selection.Staff.Name
	}

	enabled := 0
	for i := 0; i < days; i++ {
		status := availability.CheckDate(from.AddDate(0, 0, i), now, business.Schedule, selection.Staff)
		if status.Enabled {
			enabled++
		}
		response.Dates = append(response.Dates, status)
	}

	uc.logger.Info("GetAvailableDates: %d of %d dates enabled for business=%d", enabled, days, req.BusinessID)

	return response, nil
}

func (uc *UseCase) validateRequest(req *Request) error {
	if req.BusinessID <= 0 {
		return fmt.Errorf("%w: businessID must be positive", ErrInvalidInput)
	}
	if req.Days < 0 || req.Days > uc.maxDays {
		return fmt.Errorf("%w: days must be in 1..%d", ErrInvalidInput, uc.maxDays)
	}
	return nil
}
