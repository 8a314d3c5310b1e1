package reconcile_selection

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/availability"
	businessService "github.com/m04kA/SMC-AvailabilityService/internal/service/business"
)

// UseCase use case согласования выбора услуг и сотрудника
// Последнее изменение пользователя сохраняется, несовместимая часть прежнего выбора сбрасывается
type UseCase struct {
	businessProvider BusinessProvider
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(businessProvider BusinessProvider, logger Logger) *UseCase {
	return &UseCase{
		businessProvider: businessProvider,
		logger:           logger,
	}
}

// Execute выполняет use case
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ReconcileSelection: business=%d, change=%s, services=%v", req.BusinessID, req.Change, req.ServiceNames)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ReconcileSelection: validation failed: %v", err)
		return nil, err
	}

	business, err := uc.businessProvider.Get(ctx, req.BusinessID)
	if err != nil {
		if errors.Is(err, businessService.ErrBusinessNotFound) {
			uc.logger.Warn("ReconcileSelection: business id=%d not found", req.BusinessID)
			return nil, ErrBusinessNotFound
		}
		uc.logger.Error("ReconcileSelection: failed to get business id=%d: %v", req.BusinessID, err)
		return nil, fmt.Errorf("%w: failed to get business: %v", ErrInternal, err)
	}

	services, missing, ok := business.FindServices(req.ServiceNames)
	if !ok {
		uc.logger.Warn("ReconcileSelection: service %q not found in business=%d", missing, req.BusinessID)
		return nil, fmt.Errorf("%w: %q", ErrServiceNotFound, missing)
	}
	selection := availability.Selection{Services: services}

	if req.StaffName != nil && *req.StaffName != "" {
		staff, ok := business.FindStaff(*req.StaffName)
		if !ok {
			uc.logger.Warn("ReconcileSelection: staff %q not found in business=%d", *req.StaffName, req.BusinessID)
			return nil, fmt.Errorf("%w: %q", ErrStaffNotFound, *req.StaffName)
		}
		selection.Staff = staff
	}

	selection, warnings := availability.Reconcile(selection, req.Change)
	for _, w := range warnings {
		uc.logger.Info("ReconcileSelection: business=%d: %s %v", req.BusinessID, w.Code, w.Subjects)
	}

	return buildResponse(business, selection, warnings), nil
}

func buildResponse(business *domain.Business, selection availability.Selection, warnings []availability.Warning) *Response {
	totalMinutes, totalPrice := availability.Aggregate(selection.Services)

	response := &Response{
		ServiceNames:         make([]string, 0, len(selection.Services)),
		TotalDurationMinutes: totalMinutes,
		TotalPrice:           totalPrice,
		Warnings:             warnings,
		EligibleStaff:        make([]string, 0),
		Services:             make([]ServiceOption, 0, len(business.Services)),
	}

	selected := make(map[string]struct{}, len(selection.Services))
	for _, service := range selection.Services {
		response.ServiceNames = append(response.ServiceNames, service.Name)
		selected[service.Name] = struct{}{}
	}

	if selection.Staff != nil {
		response.StaffName = &selection.Staff.Name
	}

	for _, staff := range availability.EligibleStaff(business.Staff, selection.Services) {
		response.EligibleStaff = append(response.EligibleStaff, staff.Name)
	}

	for _, service := range business.Services {
		_, isSelected := selected[service.Name]
		response.Services = append(response.Services, ServiceOption{
			Name:            service.Name,
			Price:           service.Price,
			DurationMinutes: availability.ServiceDuration(service),
			Selectable:      availability.ServiceSelectable(selection.Staff, service),
			Selected:        isSelected,
		})
	}

	return response
}

func validateRequest(req *Request) error {
	if req.BusinessID <= 0 {
		return fmt.Errorf("%w: businessID must be positive", ErrInvalidInput)
	}
	if req.Change != availability.ChangeServices && req.Change != availability.ChangeStaff {
		return fmt.Errorf("%w: change must be %q or %q", ErrInvalidInput, availability.ChangeServices, availability.ChangeStaff)
	}
	if len(req.ServiceNames) > domain.MaxServicesPerBooking {
		return fmt.Errorf("%w: at most %d services can be selected", ErrInvalidInput, domain.MaxServicesPerBooking)
	}
	return nil
}
