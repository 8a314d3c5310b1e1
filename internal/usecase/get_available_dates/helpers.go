package get_available_dates

import "time"

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func staffLabel(name *string) string {
	if name == nil || *name == "" {
		return "any"
	}
	return *name
}
