package domain

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "PENDING"
	StatusActive    BookingStatus = "ACTIVE"
	StatusConfirmed BookingStatus = "CONFIRMED"
	StatusCancelled BookingStatus = "CANCELLED"
	StatusCompleted BookingStatus = "COMPLETED"
)

// ExistingBooking represents an already placed booking (read-only input of the engine)
type ExistingBooking struct {
	ID              int64
	BusinessID      int64
	Date            time.Time
	StartTime       types.TimeString
	DurationMinutes int
	StaffName       *string // nil = not pinned to staff, occupies everyone
	Status          BookingStatus
}

// IsOccupying returns true if the booking takes time in the calendar.
// Unknown statuses are treated as occupying.
func (b *ExistingBooking) IsOccupying() bool {
	return b.Status != StatusCancelled
}

// BlockedPeriod represents a business-initiated blocked interval
type BlockedPeriod struct {
	ID         int64
	BusinessID int64
	Date       time.Time
	StartTime  types.TimeString
	EndTime    types.TimeString
	StaffName  *string // nil = blocks everyone
	Reason     *string
}

// BookingsFilter фильтр для получения бронирований и блокировок бизнеса на дату
type BookingsFilter struct {
	BusinessID      int64     // Обязательный параметр
	Date            time.Time // Дата (учитываются только год, месяц, день)
	StaffName       *string   // Если указан - только записи этого сотрудника и записи без сотрудника
	IncludeInactive bool      // Включать ли отмененные бронирования
}

// InactiveStatuses статусы, не занимающие время
var InactiveStatuses = []BookingStatus{
	StatusCancelled,
}

// ActiveStatuses статусы, занимающие время
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusActive,
	StatusConfirmed,
	StatusCompleted,
}

// IsValidStatus returns true for a known booking status
func IsValidStatus(status BookingStatus) bool {
	for _, s := range ActiveStatuses {
		if s == status {
			return true
		}
	}
	return status == StatusCancelled
}
