package prepare_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/availability"
	businessService "github.com/m04kA/SMC-AvailabilityService/internal/service/business"
)

// UseCase use case подготовки данных для создания бронирования
// Повторно проверяет время начала на свежем снимке, ничего не сохраняет
type UseCase struct {
	businessProvider BusinessProvider
	bookingRepo      BookingRepository
	blockedRepo      BlockedPeriodRepository
	calculator       *availability.Calculator
	maxDays          int
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
// maxDays - горизонт записи в днях (0 = без ограничения)
func NewUseCase(
	businessProvider BusinessProvider,
	bookingRepo BookingRepository,
	blockedRepo BlockedPeriodRepository,
	calculator *availability.Calculator,
	maxDays int,
	timeProvider TimeProvider,
	logger Logger,
) *UseCase {
	return &UseCase{
		businessProvider: businessProvider,
		bookingRepo:      bookingRepo,
		blockedRepo:      blockedRepo,
		calculator:       calculator,
		maxDays:          maxDays,
		timeProvider:     timeProvider,
		logger:           logger,
	}
}

type snapshot struct {
	business *domain.Business
	bookings []domain.ExistingBooking
	blocked  []domain.BlockedPeriod
}

// Execute выполняет use case подготовки бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("PrepareBooking: business=%d, date=%s, time=%s, services=%v",
		req.BusinessID, req.Date.Format(domain.DateFormat), req.StartTime, req.ServiceNames)

	// 1. Валидация входных данных
	startTime, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("PrepareBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время и проверяем горизонт записи
	now := uc.timeProvider.Now()
	if err := validateHorizon(req.Date, now, uc.maxDays); err != nil {
		uc.logger.Warn("PrepareBooking: %v", err)
		return nil, err
	}

	// 3. Получаем свежий снимок бизнеса, бронирований и блокировок
	snap, err := uc.fetchSnapshot(ctx, req)
	if err != nil {
		return nil, err
	}

	// 4. Находим выбранные услуги
	services, err := resolveServices(snap.business, req.ServiceNames)
	if err != nil {
		uc.logger.Warn("PrepareBooking: business=%d: %v", req.BusinessID, err)
		return nil, err
	}

	// 5. Проверяем сотрудника: на этом шаге несовместимость - ошибка, а не сброс выбора
	var staff *domain.StaffMember
	if req.StaffName != nil && *req.StaffName != "" {
		member, ok := snap.business.FindStaff(*req.StaffName)
		if !ok {
			uc.logger.Warn("PrepareBooking: staff %q not found in business=%d", *req.StaffName, req.BusinessID)
			return nil, fmt.Errorf("%w: %q", ErrStaffNotFound, *req.StaffName)
		}
		if !member.IsActive || !availability.IsEligible(member, services) {
			uc.logger.Warn("PrepareBooking: staff %q cannot perform %v", member.Name, req.ServiceNames)
			return nil, fmt.Errorf("%w: %q", ErrStaffIncompatible, member.Name)
		}
		staff = member
	}

	// 6. Проверяем дату
	status := availability.CheckDate(req.Date, now, snap.business.Schedule, staff)
	if !status.Enabled {
		uc.logger.Warn("PrepareBooking: date %s disabled for business=%d: %s",
			req.Date.Format(domain.DateFormat), req.BusinessID, status.Reason)
		return nil, fmt.Errorf("%w: %s", ErrDateNotAvailable, status.Reason)
	}

	// 7. Проверяем, что время начала по-прежнему доступно
	totalMinutes, totalPrice := availability.Aggregate(services)
	input := availability.Input{
		Date:            req.Date,
		Now:             now,
		Schedule:        snap.business.Schedule,
		Staff:           staff,
		DurationMinutes: totalMinutes,
		Bookings:        snap.bookings,
		BlockedPeriods:  snap.blocked,
	}
	if !uc.calculator.IsAvailable(input, startTime) {
		uc.logger.Warn("PrepareBooking: slot %s on %s is not available for business=%d",
			req.StartTime, req.Date.Format(domain.DateFormat), req.BusinessID)
		return nil, ErrSlotNotAvailable
	}

	// 8. Формируем данные для создания бронирования
	serviceName, err := serviceNameField(services)
	if err != nil {
		uc.logger.Error("PrepareBooking: failed to encode services: %v", err)
		return nil, fmt.Errorf("%w: failed to encode services: %v", ErrInternal, err)
	}

	draft := domain.BookingDraft{
		BusinessID:      req.BusinessID,
		ServiceName:     serviceName,
		ServiceNames:    make([]string, 0, len(services)),
		AppointmentDate: req.Date,
		AppointmentTime: startTime.String(),
		TotalPrice:      totalPrice,
		ServiceDuration: totalMinutes,
		CustomerName:    strings.TrimSpace(req.CustomerName),
		CustomerEmail:   strings.TrimSpace(req.CustomerEmail),
		CustomerPhone:   strings.TrimSpace(req.CustomerPhone),
		Notes:           req.Notes,
	}
	for _, service := range services {
		draft.ServiceNames = append(draft.ServiceNames, service.Name)
	}
	if staff != nil {
		draft.StaffName = staff.Name
	}

	uc.logger.Info("PrepareBooking: draft ready for business=%d, date=%s, time=%s, duration=%d",
		req.BusinessID, req.Date.Format(domain.DateFormat), draft.AppointmentTime, totalMinutes)

	return &Response{Draft: draft}, nil
}

func (uc *UseCase) fetchSnapshot(ctx context.Context, req *Request) (*snapshot, error) {
	snap := &snapshot{}
	filter := domain.BookingsFilter{
		BusinessID: req.BusinessID,
		Date:       req.Date,
	}

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		business, err := uc.businessProvider.Get(groupCtx, req.BusinessID)
		if err != nil {
			if errors.Is(err, businessService.ErrBusinessNotFound) {
				uc.logger.Warn("PrepareBooking: business id=%d not found", req.BusinessID)
				return ErrBusinessNotFound
			}
			uc.logger.Error("PrepareBooking: failed to get business id=%d: %v", req.BusinessID, err)
			return fmt.Errorf("%w: failed to get business: %v", ErrInternal, err)
		}
		snap.business = business
		return nil
	})

	group.Go(func() error {
		bookings, err := uc.bookingRepo.GetByBusinessAndDate(groupCtx, filter)
		if err != nil {
			uc.logger.Error("PrepareBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}
		snap.bookings = bookings
		return nil
	})

	group.Go(func() error {
		blocked, err := uc.blockedRepo.GetByBusinessAndDate(groupCtx, filter)
		if err != nil {
			uc.logger.Error("PrepareBooking: failed to get blocked periods: %v", err)
			return fmt.Errorf("%w: failed to get blocked periods: %v", ErrInternal, err)
		}
		snap.blocked = blocked
		return nil
	})

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return snap, nil
}
