package availability

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// ResolveWindow возвращает рабочее окно на дату
// Окно сотрудника на этот день недели используется, только если оно задано и не пустое,
// иначе берется окно бизнеса. Отсутствующее окно означает выходной.
func ResolveWindow(date time.Time, schedule domain.WeeklySchedule, staff *domain.StaffMember) domain.DayWindow {
	weekday := domain.WeekdayName(date)

	if staff != nil {
		if window, ok := staff.OperatingSchedule.Day(weekday); ok && window.IsOpen() {
			return window
		}
	}

	if window, ok := schedule.Day(weekday); ok {
		return window
	}

	return domain.ClosedDay()
}

// CheckDate определяет, можно ли выбрать дату для бронирования
//
// Дата недоступна, если:
// - она строго в прошлом
// - у выбранного сотрудника на этот день недели явно пустое окно (не работает), даже если бизнес открыт
// - итоговое окно на дату закрыто или некорректно
func CheckDate(date, now time.Time, schedule domain.WeeklySchedule, staff *domain.StaffMember) domain.DateStatus {
	status := domain.DateStatus{Date: dateOnly(date)}

	if isDateInPast(date, now) {
		status.Reason = domain.ReasonPast
		return status
	}

	if staff != nil {
		if window, ok := staff.OperatingSchedule.Day(domain.WeekdayName(date)); ok && window.IsEmpty() {
			status.Reason = domain.ReasonStaffDayOff
			return status
		}
	}

	if !ResolveWindow(date, schedule, staff).IsOpen() {
		status.Reason = domain.ReasonClosed
		return status
	}

	status.Enabled = true
	return status
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню (по локальным компонентам даты)
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	return dateOnly(date).Before(time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, date.Location()))
}

// dateOnly обнуляет время, оставляя компоненты даты
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// minuteOfDay возвращает минуты с полуночи (секунды отбрасываются)
func minuteOfDay(t time.Time) int {
	return t.Hour()*minutesPerHour + t.Minute()
}
