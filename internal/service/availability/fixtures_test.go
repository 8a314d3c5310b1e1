package availability

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/ptr"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

var (
	// now - среда 14.10.2026 10:07
	now = time.Date(2026, 10, 14, 10, 7, 0, 0, time.UTC)

	today      = time.Date(2026, 10, 14, 0, 0, 0, 0, time.UTC)
	yesterday  = time.Date(2026, 10, 13, 0, 0, 0, 0, time.UTC)
	nextMonday = time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)
	nextSunday = time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC)
)

func weekdays(open, close types.TimeString) domain.WeeklySchedule {
	return domain.WeeklySchedule{
		domain.Monday:    domain.OpenDay(open, close),
		domain.Tuesday:   domain.OpenDay(open, close),
		domain.Wednesday: domain.OpenDay(open, close),
		domain.Thursday:  domain.OpenDay(open, close),
		domain.Friday:    domain.OpenDay(open, close),
		domain.Saturday:  domain.OpenDay(open, close),
		domain.Sunday:    domain.ClosedDay(),
	}
}

func booking(date time.Time, start types.TimeString, duration int, staff *string) domain.ExistingBooking {
	return domain.ExistingBooking{
		Date:            date,
		StartTime:       start,
		DurationMinutes: duration,
		StaffName:       staff,
		Status:          domain.StatusConfirmed,
	}
}

func block(date time.Time, start, end types.TimeString, staff *string) domain.BlockedPeriod {
	return domain.BlockedPeriod{Date: date, StartTime: start, EndTime: end, StaffName: staff}
}

func staffMember(name string, services ...string) *domain.StaffMember {
	return &domain.StaffMember{Name: name, IsActive: true, AssignedServiceNames: services}
}

func slots(values ...string) domain.SlotSet {
	result := make(domain.SlotSet, len(values))
	for i, v := range values {
		result[i] = types.TimeString(v)
	}
	return result
}

// everyStep перечисляет HH:MM от from до to включительно с шагом step
func everyStep(from, to string, step int) domain.SlotSet {
	start, _ := types.TimeString(from).Minutes()
	end, _ := types.TimeString(to).Minutes()
	result := domain.SlotSet{}
	for m := start; m <= end; m += step {
		ts, _ := types.FromMinutes(m)
		result = append(result, ts)
	}
	return result
}

var staffAna = ptr.Ptr("Ana")
