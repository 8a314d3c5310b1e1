package businessservice

import (
	"strings"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// toDomain переводит ответ BusinessService в доменную модель
// Возвращает количество некорректных записей расписаний и перерывов
func toDomain(dto BusinessResponse) (*domain.Business, int) {
	skipped := 0

	schedule, n := toSchedule(dto.OperatingHours, false)
	skipped += n

	business := &domain.Business{
		ID:       dto.ID,
		Name:     dto.Name,
		Schedule: schedule,
		Services: make([]domain.Service, 0, len(dto.Services)),
		Staff:    make([]domain.StaffMember, 0, len(dto.Staff)),
	}

	for _, s := range dto.Services {
		name := strings.TrimSpace(s.Name)
		if name == "" {
			continue
		}
		business.Services = append(business.Services, toService(name, s))
	}

	for _, s := range dto.Staff {
		name := strings.TrimSpace(s.Name)
		if name == "" {
			continue
		}

		member := domain.StaffMember{
			Name:                 name,
			IsActive:             s.IsActive == nil || *s.IsActive,
			AssignedServiceNames: assignedServices(s.AssignedServices),
		}

		if len(s.OperatingSchedule) > 0 {
			// Некорректный день сотрудника не считается выходным: действует окно бизнеса
			member.OperatingSchedule, n = toSchedule(s.OperatingSchedule, true)
			skipped += n
		}

		member.Breaks, n = toBreaks(s.Breaks)
		skipped += n

		business.Staff = append(business.Staff, member)
	}

	return business, skipped
}

func toService(name string, dto ServiceDTO) domain.Service {
	minutes := dto.Duration.Minutes
	if minutes <= 0 {
		minutes = dto.DurationMinutes
	}
	if minutes < 0 {
		minutes = 0
	}

	price := dto.Price
	if price < 0 {
		price = 0
	}

	return domain.Service{
		Name:            name,
		Price:           price,
		DurationLabel:   strings.TrimSpace(dto.Duration.Label),
		DurationMinutes: minutes,
	}
}

// toSchedule переводит расписание, ключи - названия дней недели в нижнем регистре
// Неизвестные ключи пропускаются. Некорректное окно становится выходным,
// а при dropMalformed день не попадает в расписание вовсе
func toSchedule(hours map[string]DayHoursDTO, dropMalformed bool) (domain.WeeklySchedule, int) {
	if len(hours) == 0 {
		return nil, 0
	}

	skipped := 0
	schedule := make(domain.WeeklySchedule, len(hours))
	for key, day := range hours {
		weekday := strings.ToLower(strings.TrimSpace(key))
		if !isWeekday(weekday) {
			skipped++
			continue
		}

		window, ok := toWindow(day)
		if !ok {
			skipped++
			if dropMalformed {
				continue
			}
		}
		schedule[weekday] = window
	}

	return schedule, skipped
}

func toWindow(day DayHoursDTO) (domain.DayWindow, bool) {
	if day.Closed || (strings.TrimSpace(day.Open) == "" && strings.TrimSpace(day.Close) == "") {
		return domain.ClosedDay(), true
	}

	open, err := types.NewTimeStringFromString(day.Open)
	if err != nil {
		return domain.ClosedDay(), false
	}
	closeAt, err := types.NewTimeStringFromString(day.Close)
	if err != nil {
		return domain.ClosedDay(), false
	}

	window := domain.OpenDay(open, closeAt)
	if !window.IsOpen() {
		return domain.ClosedDay(), false
	}
	return window, true
}

func toBreaks(dtos []BreakDTO) ([]domain.BreakInterval, int) {
	if len(dtos) == 0 {
		return nil, 0
	}

	skipped := 0
	breaks := make([]domain.BreakInterval, 0, len(dtos))
	for _, b := range dtos {
		start, err := types.NewTimeStringFromString(b.Start)
		if err != nil {
			skipped++
			continue
		}
		end, err := types.NewTimeStringFromString(b.End)
		if err != nil {
			skipped++
			continue
		}
		if !start.IsBefore(end) {
			skipped++
			continue
		}
		breaks = append(breaks, domain.BreakInterval{Start: start, End: end})
	}

	return breaks, skipped
}

func assignedServices(names []string) []string {
	result := make([]string, 0, len(names))
	for _, name := range names {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	if len(result) == 0 {
		return nil
	}
	return result
}

func isWeekday(name string) bool {
	switch name {
	case domain.Monday, domain.Tuesday, domain.Wednesday, domain.Thursday,
		domain.Friday, domain.Saturday, domain.Sunday:
		return true
	}
	return false
}
