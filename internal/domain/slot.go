package domain

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// DateDisabledReason explains why a date cannot be selected
type DateDisabledReason string

const (
	ReasonNone        DateDisabledReason = ""
	ReasonPast        DateDisabledReason = "past"
	ReasonClosed      DateDisabledReason = "closed"
	ReasonStaffDayOff DateDisabledReason = "staff_day_off"
)

// DateStatus represents selectability of a calendar date
type DateStatus struct {
	Date    time.Time
	Enabled bool
	Reason  DateDisabledReason
}

// SlotSet is the sorted, de-duplicated set of bookable start times
type SlotSet []types.TimeString

// Contains returns true if the start time is in the set ("9:00" and "09:00" are the same time)
func (s SlotSet) Contains(t types.TimeString) bool {
	target, err := t.Minutes()
	if err != nil {
		return false
	}
	for _, slot := range s {
		if m, err := slot.Minutes(); err == nil && m == target {
			return true
		}
	}
	return false
}

// Strings returns the set as HH:MM strings
func (s SlotSet) Strings() []string {
	result := make([]string, len(s))
	for i, slot := range s {
		result[i] = slot.String()
	}
	return result
}
