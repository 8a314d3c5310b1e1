package get_eligible_staff

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/availability"
	businessService "github.com/m04kA/SMC-AvailabilityService/internal/service/business"
)

// UseCase use case получения сотрудников, способных выполнить все выбранные услуги
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
	uc.logger.Info("GetEligibleStaff: business=%d, services=%v", req.BusinessID, req.ServiceNames)

	if req.BusinessID <= 0 {
		return nil, fmt.Errorf("%w: businessID must be positive", ErrInvalidInput)
	}
	if len(req.ServiceNames) > domain.MaxServicesPerBooking {
		return nil, fmt.Errorf("%w: at most %d services can be selected", ErrInvalidInput, domain.MaxServicesPerBooking)
	}

	business, err := uc.businessProvider.Get(ctx, req.BusinessID)
	if err != nil {
		if errors.Is(err, businessService.ErrBusinessNotFound) {
			uc.logger.Warn("GetEligibleStaff: business id=%d not found", req.BusinessID)
			return nil, ErrBusinessNotFound
		}
		uc.logger.Error("GetEligibleStaff: failed to get business id=%d: %v", req.BusinessID, err)
		return nil, fmt.Errorf("%w: failed to get business: %v", ErrInternal, err)
	}

	services := make([]domain.Service, 0, len(req.ServiceNames))
	for _, name := range req.ServiceNames {
		name = strings.TrimSpace(name)
		service, ok := business.FindService(name)
		if !ok {
			uc.logger.Warn("GetEligibleStaff: service %q not found in business=%d", name, req.BusinessID)
			return nil, fmt.Errorf("%w: %q", ErrServiceNotFound, name)
		}
		services = append(services, *service)
	}

	eligible := availability.EligibleStaff(business.Staff, services)

	response := &Response{
		BusinessID: req.BusinessID,
		Staff:      make([]StaffOption, 0, len(eligible)),
	}
	for i := range eligible {
		member := &eligible[i]
		response.Staff = append(response.Staff, StaffOption{
			Name:           member.Name,
			HandlesAll:     member.HandlesAllServices(),
			ServiceNames:   member.AssignedServiceNames,
			HasOwnSchedule: len(member.OperatingSchedule) > 0,
		})
	}

	uc.logger.Info("GetEligibleStaff: %d of %d staff eligible for business=%d",
		len(response.Staff), len(business.Staff), req.BusinessID)

	return response, nil
}
