package domain

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// Weekday names used as keys of WeeklySchedule (lowercase English, as in operating_hours JSON)
const (
	Monday    = "monday"
	Tuesday   = "tuesday"
	Wednesday = "wednesday"
	Thursday  = "thursday"
	Friday    = "friday"
	Saturday  = "saturday"
	Sunday    = "sunday"
)

// weekdayNames индексируется time.Weekday (Sunday = 0)
var weekdayNames = [...]string{Sunday, Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}

// WeekdayName returns the schedule key for the calendar date.
// Every component derives the weekday through this function only.
func WeekdayName(date time.Time) string {
	return weekdayNames[date.Weekday()]
}

// DayWindow represents opening hours for one weekday
type DayWindow struct {
	IsClosed bool
	Open     *types.TimeString
	Close    *types.TimeString
}

// ClosedDay returns a closed window
func ClosedDay() DayWindow {
	return DayWindow{IsClosed: true}
}

// OpenDay returns an open window, e.g. OpenDay("09:00", "17:00")
func OpenDay(open, close types.TimeString) DayWindow {
	return DayWindow{Open: &open, Close: &close}
}

// IsEmpty returns true if the window is closed or has no open/close time
func (w DayWindow) IsEmpty() bool {
	return w.IsClosed || w.Open == nil || w.Close == nil || w.Open.IsZero() || w.Close.IsZero()
}

// Bounds returns open and close as minutes since midnight.
// ok is false for empty or malformed windows (open >= close included).
func (w DayWindow) Bounds() (open, close int, ok bool) {
	if w.IsEmpty() {
		return 0, 0, false
	}
	open, err := w.Open.Minutes()
	if err != nil {
		return 0, 0, false
	}
	close, err = w.Close.Minutes()
	if err != nil {
		return 0, 0, false
	}
	if open >= close {
		return 0, 0, false
	}
	return open, close, true
}

// IsOpen returns true if the window is usable for bookings
func (w DayWindow) IsOpen() bool {
	_, _, ok := w.Bounds()
	return ok
}

// WeeklySchedule maps weekday name to its window
type WeeklySchedule map[string]DayWindow

// Day returns the window for the weekday and whether it is defined at all
func (s WeeklySchedule) Day(weekday string) (DayWindow, bool) {
	if s == nil {
		return DayWindow{}, false
	}
	w, ok := s[weekday]
	return w, ok
}

// Service represents a bookable service of a business
type Service struct {
	Name            string
	Price           float64
	DurationLabel   string // "30 min", "1 orë 30 min"
	DurationMinutes int    // 0 = not resolved yet, use DurationLabel
}

// BreakInterval is a daily staff break, applied on every working day
type BreakInterval struct {
	Start types.TimeString
	End   types.TimeString
}

// StaffMember represents an employee of a business
type StaffMember struct {
	Name                 string
	IsActive             bool
	AssignedServiceNames []string       // empty = handles all services
	OperatingSchedule    WeeklySchedule // nil = works business hours
	Breaks               []BreakInterval
}

// HandlesAllServices returns true if the staff member has no explicit service assignment
func (s *StaffMember) HandlesAllServices() bool {
	return len(s.AssignedServiceNames) == 0
}

// CanPerform returns true if the staff member handles the service (exact, case-sensitive name match)
func (s *StaffMember) CanPerform(serviceName string) bool {
	if s.HandlesAllServices() {
		return true
	}
	for _, name := range s.AssignedServiceNames {
		if name == serviceName {
			return true
		}
	}
	return false
}

// Business represents a business snapshot used for availability calculation
type Business struct {
	ID       int64
	Name     string
	Schedule WeeklySchedule
	Services []Service
	Staff    []StaffMember
}

// FindService returns the service by exact name
func (b *Business) FindService(name string) (*Service, bool) {
	for i := range b.Services {
		if b.Services[i].Name == name {
			return &b.Services[i], true
		}
	}
	return nil, false
}

// FindServices returns services by exact names in request order, repeated names are skipped
// On an unknown name it returns that name and ok=false
func (b *Business) FindServices(names []string) (services []Service, missing string, ok bool) {
	services = make([]Service, 0, len(names))
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}

		service, found := b.FindService(name)
		if !found {
			return nil, name, false
		}
		services = append(services, *service)
	}
	return services, "", true
}

// FindStaff returns the staff member by exact name
func (b *Business) FindStaff(name string) (*StaffMember, bool) {
	for i := range b.Staff {
		if b.Staff[i].Name == name {
			return &b.Staff[i], true
		}
	}
	return nil, false
}
