package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/availability"
	businessService "github.com/m04kA/SMC-AvailabilityService/internal/service/business"
)

// UseCase use case для получения доступных времен начала на дату
type UseCase struct {
	businessProvider BusinessProvider
	bookingRepo      BookingRepository
	blockedRepo      BlockedPeriodRepository
	calculator       *availability.Calculator
	metrics          SlotMetrics
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
// metrics может быть nil
func NewUseCase(
	businessProvider BusinessProvider,
	bookingRepo BookingRepository,
	blockedRepo BlockedPeriodRepository,
	calculator *availability.Calculator,
	metrics SlotMetrics,
	timeProvider TimeProvider,
	logger Logger,
) *UseCase {
	return &UseCase{
		businessProvider: businessProvider,
		bookingRepo:      bookingRepo,
		blockedRepo:      blockedRepo,
		calculator:       calculator,
		metrics:          metrics,
		timeProvider:     timeProvider,
		logger:           logger,
	}
}

// snapshot входные данные расчета, собранные за один запрос
type snapshot struct {
	business *domain.Business
	bookings []domain.ExistingBooking
	blocked  []domain.BlockedPeriod
}

// Execute выполняет use case получения доступных времен начала
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: business=%d, date=%s, services=%v, staff=%s",
		req.BusinessID, req.Date.Format(domain.DateFormat), req.ServiceNames, staffLabel(req.StaffName))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Параллельно получаем бизнес, бронирования и блокировки на дату
	// Бронирования берутся по всем сотрудникам: выбранный сотрудник может быть сброшен ниже
	snap, err := uc.fetchSnapshot(ctx, req)
	if err != nil {
		return nil, err
	}

	// 4. Находим выбранные услуги
	services, err := resolveServices(snap.business, req.ServiceNames)
	if err != nil {
		uc.logger.Warn("GetAvailableSlots: business=%d: %v", req.BusinessID, err)
		return nil, err
	}

	// 5. Находим выбранного сотрудника и проверяем совместимость с услугами
	selection := availability.Selection{Services: services}
	if req.StaffName != nil && *req.StaffName != "" {
		staff, ok := snap.business.FindStaff(*req.StaffName)
		if !ok {
			uc.logger.Warn("GetAvailableSlots: staff %q not found in business=%d", *req.StaffName, req.BusinessID)
			return nil, fmt.Errorf("%w: %q", ErrStaffNotFound, *req.StaffName)
		}
		selection.Staff = staff
	}

	selection, warnings := availability.Reconcile(selection, availability.ChangeServices)
	for _, w := range warnings {
		uc.logger.Info("GetAvailableSlots: selection adjusted for business=%d: %s %v", req.BusinessID, w.Code, w.Subjects)
	}

	totalMinutes, totalPrice := availability.Aggregate(selection.Services)

	response := &Response{
		Date:                 req.Date,
		BusinessID:           req.BusinessID,
		Slots:                domain.SlotSet{},
		TotalDurationMinutes: totalMinutes,
		TotalPrice:           totalPrice,
		Warnings:             warnings,
	}
	if selection.Staff != nil {
		response.StaffName = &selection.Staff.Name
	}

	// 6. Проверяем, что дату можно выбрать
	status := availability.CheckDate(req.Date, now, snap.business.Schedule, selection.Staff)
	response.DateEnabled = status.Enabled
	response.DisabledReason = status.Reason
	if !status.Enabled {
		uc.logger.Info("GetAvailableSlots: date %s disabled for business=%d: %s",
			req.Date.Format(domain.DateFormat), req.BusinessID, status.Reason)
		return response, nil
	}

	// 7. Вычисляем доступные времена начала
	started := time.Now()
	response.Slots = uc.calculator.Calculate(availability.Input{
		Date:            req.Date,
		Now:             now,
		Schedule:        snap.business.Schedule,
		Staff:           selection.Staff,
		DurationMinutes: totalMinutes,
		Bookings:        snap.bookings,
		BlockedPeriods:  snap.blocked,
	})
	if uc.metrics != nil {
		uc.metrics.ObserveSlotCalculation(len(response.Slots), selection.Staff != nil, time.Since(started))
	}

	uc.logger.Info("GetAvailableSlots: %d slots for business=%d, date=%s, duration=%d, staff=%s",
		len(response.Slots), req.BusinessID, req.Date.Format(domain.DateFormat), totalMinutes, staffLabel(response.StaffName))

	return response, nil
}

func (uc *UseCase) fetchSnapshot(ctx context.Context, req *Request) (*snapshot, error) {
	snap := &snapshot{}
	filter := domain.BookingsFilter{
		BusinessID:      req.BusinessID,
		Date:            req.Date,
		IncludeInactive: false, // Только занимающие время бронирования
	}

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		business, err := uc.businessProvider.Get(groupCtx, req.BusinessID)
		if err != nil {
			if errors.Is(err, businessService.ErrBusinessNotFound) {
				uc.logger.Warn("GetAvailableSlots: business id=%d not found", req.BusinessID)
				return ErrBusinessNotFound
			}
			uc.logger.Error("GetAvailableSlots: failed to get business id=%d: %v", req.BusinessID, err)
			return fmt.Errorf("%w: failed to get business: %v", ErrInternal, err)
		}
		snap.business = business
		return nil
	})

	group.Go(func() error {
		bookings, err := uc.bookingRepo.GetByBusinessAndDate(groupCtx, filter)
		if err != nil {
			uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}
		snap.bookings = bookings
		return nil
	})

	group.Go(func() error {
		blocked, err := uc.blockedRepo.GetByBusinessAndDate(groupCtx, filter)
		if err != nil {
			uc.logger.Error("GetAvailableSlots: failed to get blocked periods: %v", err)
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

func staffLabel(name *string) string {
	if name == nil || *name == "" {
		return "any"
	}
	return *name
}
