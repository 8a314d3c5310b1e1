package get_available_slots

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.BusinessID <= 0 {
		return fmt.Errorf("%w: businessID must be positive", ErrInvalidInput)
	}

	// Проверяем, что дата не является нулевой
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if len(req.ServiceNames) == 0 {
		return fmt.Errorf("%w: at least one service is required", ErrInvalidInput)
	}
	if len(req.ServiceNames) > domain.MaxServicesPerBooking {
		return fmt.Errorf("%w: at most %d services can be selected", ErrInvalidInput, domain.MaxServicesPerBooking)
	}
	for _, name := range req.ServiceNames {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("%w: service name must not be empty", ErrInvalidInput)
		}
	}

	return nil
}

// resolveServices находит выбранные услуги по точному названию, повторы отбрасываются
func resolveServices(business *domain.Business, names []string) ([]domain.Service, error) {
	services, missing, ok := business.FindServices(names)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrServiceNotFound, missing)
	}
	return services, nil
}
