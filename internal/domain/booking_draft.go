package domain

import "time"

// BookingDraft is the payload handed to booking creation.
// It is produced after availability is re-validated; persistence happens elsewhere.
type BookingDraft struct {
	BusinessID      int64
	ServiceName     string // single name, or JSON list of {name,price,duration} for several services
	ServiceNames    []string
	StaffName       string // empty = no staff assigned
	AppointmentDate time.Time
	AppointmentTime string // HH:MM
	TotalPrice      float64
	ServiceDuration int // minutes
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	Notes           *string
}
