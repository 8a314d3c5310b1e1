package business

import (
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// snapshotVersion меняется при несовместимом изменении формата снимка
const snapshotVersion = 1

type snapshot struct {
	Version  int                  `json:"v"`
	ID       int64                `json:"id"`
	Name     string               `json:"name"`
	Schedule map[string]dayWindow `json:"schedule,omitempty"`
	Services []service            `json:"services"`
	Staff    []staffMember        `json:"staff"`
}

type dayWindow struct {
	Closed bool              `json:"closed,omitempty"`
	Open   *types.TimeString `json:"open,omitempty"`
	Close  *types.TimeString `json:"close,omitempty"`
}

type service struct {
	Name            string  `json:"name"`
	Price           float64 `json:"price"`
	DurationLabel   string  `json:"duration_label,omitempty"`
	DurationMinutes int     `json:"duration_minutes,omitempty"`
}

type breakInterval struct {
	Start types.TimeString `json:"start"`
	End   types.TimeString `json:"end"`
}

type staffMember struct {
	Name     string               `json:"name"`
	IsActive bool                 `json:"is_active"`
	Services []string             `json:"services,omitempty"`
	Schedule map[string]dayWindow `json:"schedule,omitempty"`
	Breaks   []breakInterval      `json:"breaks,omitempty"`
}

func fromDomain(b *domain.Business) snapshot {
	s := snapshot{
		Version:  snapshotVersion,
		ID:       b.ID,
		Name:     b.Name,
		Schedule: fromSchedule(b.Schedule),
		Services: make([]service, 0, len(b.Services)),
		Staff:    make([]staffMember, 0, len(b.Staff)),
	}

	for _, svc := range b.Services {
		s.Services = append(s.Services, service(svc))
	}

	for _, member := range b.Staff {
		staff := staffMember{
			Name:     member.Name,
			IsActive: member.IsActive,
			Services: member.AssignedServiceNames,
			Schedule: fromSchedule(member.OperatingSchedule),
		}
		for _, brk := range member.Breaks {
			staff.Breaks = append(staff.Breaks, breakInterval(brk))
		}
		s.Staff = append(s.Staff, staff)
	}

	return s
}

func (s snapshot) toDomain() *domain.Business {
	b := &domain.Business{
		ID:       s.ID,
		Name:     s.Name,
		Schedule: toSchedule(s.Schedule),
		Services: make([]domain.Service, 0, len(s.Services)),
		Staff:    make([]domain.StaffMember, 0, len(s.Staff)),
	}

	for _, svc := range s.Services {
		b.Services = append(b.Services, domain.Service(svc))
	}

	for _, staff := range s.Staff {
		member := domain.StaffMember{
			Name:                 staff.Name,
			IsActive:             staff.IsActive,
			AssignedServiceNames: staff.Services,
			OperatingSchedule:    toSchedule(staff.Schedule),
		}
		for _, brk := range staff.Breaks {
			member.Breaks = append(member.Breaks, domain.BreakInterval(brk))
		}
		b.Staff = append(b.Staff, member)
	}

	return b
}

func fromSchedule(schedule domain.WeeklySchedule) map[string]dayWindow {
	if schedule == nil {
		return nil
	}
	result := make(map[string]dayWindow, len(schedule))
	for day, w := range schedule {
		result[day] = dayWindow{Closed: w.IsClosed, Open: w.Open, Close: w.Close}
	}
	return result
}

func toSchedule(windows map[string]dayWindow) domain.WeeklySchedule {
	if windows == nil {
		return nil
	}
	result := make(domain.WeeklySchedule, len(windows))
	for day, w := range windows {
		result[day] = domain.DayWindow{IsClosed: w.Closed, Open: w.Open, Close: w.Close}
	}
	return result
}
