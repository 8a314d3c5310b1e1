package availability

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// interval полуоткрытый интервал [start, end) в минутах с полуночи
type interval struct {
	start int
	end   int
}

// overlaps проверяет РЕАЛЬНОЕ пересечение [start, end) с интервалом
// Если один интервал заканчивается ровно там, где начинается другой - это НЕ пересечение
//
// Примеры:
// - Кандидат 11:30-12:00, занятость 11:20-11:40 → ЕСТЬ пересечение
// - Кандидат 11:30-12:00, занятость 11:00-11:30 → НЕТ пересечения (граничат)
func (i interval) overlaps(start, end int) bool {
	return start < i.end && end > i.start
}

// occupancy занятые интервалы на дату для выбранного сотрудника (или для всех, если сотрудник не выбран)
type occupancy struct {
	busy []interval
	// releases концы бронирований и блокировок - точки, с которых можно начать услугу сразу после них
	releases []int
}

// collectOccupancy собирает все интервалы, относящиеся к дате и сотруднику
func collectOccupancy(date time.Time, staff *domain.StaffMember, bookings []domain.ExistingBooking, blocked []domain.BlockedPeriod) occupancy {
	var occ occupancy

	for i := range bookings {
		booking := &bookings[i]
		if !booking.IsOccupying() || !isSameDay(booking.Date, date) || !staffMatches(booking.StaffName, staff) {
			continue
		}

		start, err := booking.StartTime.Minutes()
		if err != nil {
			// Некорректное время в данных не должно ломать расчет
			continue
		}
		bookingInterval := interval{start: start, end: start + ResolveMinutes(booking.DurationMinutes)}
		occ.busy = append(occ.busy, bookingInterval)
		occ.releases = append(occ.releases, bookingInterval.end)
	}

	for i := range blocked {
		period := &blocked[i]
		if !isSameDay(period.Date, date) || !staffMatches(period.StaffName, staff) {
			continue
		}

		blockInterval, ok := toInterval(period.StartTime.Minutes, period.EndTime.Minutes)
		if !ok {
			continue
		}
		occ.busy = append(occ.busy, blockInterval)
		occ.releases = append(occ.releases, blockInterval.end)
	}

	// Перерывы принадлежат только конкретному сотруднику
	if staff != nil {
		for _, brk := range staff.Breaks {
			breakInterval, ok := toInterval(brk.Start.Minutes, brk.End.Minutes)
			if !ok {
				continue
			}
			occ.busy = append(occ.busy, breakInterval)
		}
	}

	return occ
}

// isFree проверяет, что [start, start+duration) не пересекается ни с одним занятым интервалом
func (o occupancy) isFree(start, duration int) bool {
	end := start + duration
	for _, busy := range o.busy {
		if busy.overlaps(start, end) {
			return false
		}
	}
	return true
}

// filterOccupied убирает кандидатов, пересекающихся с занятостью на всю длительность услуги
func filterOccupied(candidates []int, duration int, occ occupancy) []int {
	free := make([]int, 0, len(candidates))
	for _, t := range candidates {
		if occ.isFree(t, duration) {
			free = append(free, t)
		}
	}
	return free
}

// staffMatches правило сопоставления сотрудника для бронирований и блокировок:
// - сотрудник не выбран → запись относится ко всем
// - у записи нет сотрудника → запись занимает время всех сотрудников
// - иначе имя должно совпадать с выбранным сотрудником
func staffMatches(recordStaff *string, selected *domain.StaffMember) bool {
	if selected == nil {
		return true
	}
	if recordStaff == nil || *recordStaff == "" {
		return true
	}
	return *recordStaff == selected.Name
}

func toInterval(startFn, endFn func() (int, error)) (interval, bool) {
	start, err := startFn()
	if err != nil {
		return interval{}, false
	}
	end, err := endFn()
	if err != nil {
		return interval{}, false
	}
	if end <= start {
		return interval{}, false
	}
	return interval{start: start, end: end}, true
}
