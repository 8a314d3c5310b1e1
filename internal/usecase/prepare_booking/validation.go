package prepare_booking

import (
	"encoding/json"
	"fmt"
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/availability"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// validateRequest валидирует входные данные запроса
// Возвращает время начала, приведенное к виду HH:MM
func validateRequest(req *Request) (types.TimeString, error) {
	if req.BusinessID <= 0 {
		return "", fmt.Errorf("%w: businessID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return "", fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return "", fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}
	startTime, err := types.NewTimeStringFromString(string(req.StartTime))
	if err != nil {
		return "", fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if err := validateDetails(req); err != nil {
		return "", err
	}

	return startTime, nil
}

// validateDetails проверяет выбор услуг, контакты клиента и заметки
func validateDetails(req *Request) error {
	if len(req.ServiceNames) == 0 {
		return fmt.Errorf("%w: at least one service is required", ErrInvalidInput)
	}
	if len(req.ServiceNames) > domain.MaxServicesPerBooking {
		return fmt.Errorf("%w: at most %d services can be selected", ErrInvalidInput, domain.MaxServicesPerBooking)
	}

	name := strings.TrimSpace(req.CustomerName)
	if name == "" {
		return fmt.Errorf("%w: customerName is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(name) > domain.MaxCustomerNameLength {
		return fmt.Errorf("%w: customerName must be at most %d characters", ErrInvalidInput, domain.MaxCustomerNameLength)
	}

	// Нужен хотя бы один способ связи
	email := strings.TrimSpace(req.CustomerEmail)
	phone := strings.TrimSpace(req.CustomerPhone)
	if email == "" && phone == "" {
		return fmt.Errorf("%w: customerEmail or customerPhone is required", ErrInvalidInput)
	}
	if email != "" {
		if _, err := mail.ParseAddress(email); err != nil {
			return fmt.Errorf("%w: invalid customerEmail: %v", ErrInvalidInput, err)
		}
	}

	if req.Notes != nil && utf8.RuneCountInString(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must be at most %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validateHorizon проверяет, что дата не дальше maxDays от сегодняшнего дня
func validateHorizon(date, now time.Time, maxDays int) error {
	if maxDays <= 0 {
		return nil
	}

	maxDate := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, maxDays)
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, now.Location())
	if dateOnly.After(maxDate) {
		return fmt.Errorf("%w: can only book %d days in advance", ErrDateTooFarInFuture, maxDays)
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

// serviceNameField формирует поле serviceName:
// одна услуга - ее имя, несколько - JSON список {name, price, duration}
func serviceNameField(services []domain.Service) (string, error) {
	if len(services) == 1 {
		return services[0].Name, nil
	}

	lines := make([]serviceLine, 0, len(services))
	for _, service := range services {
		lines = append(lines, serviceLine{
			Name:     service.Name,
			Price:    service.Price,
			Duration: availability.ServiceDuration(service),
		})
	}

	data, err := json.Marshal(lines)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
