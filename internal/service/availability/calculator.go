package availability

import (
	"sort"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// Options параметры калькулятора
type Options struct {
	GridStepMinutes int // шаг сетки кандидатов
	MinLeadMinutes  int // запас от текущего времени для сегодняшней даты (0 = строго после "сейчас")
}

// DefaultOptions возвращает параметры по умолчанию
func DefaultOptions() Options {
	return Options{
		GridStepMinutes: domain.GridStepMinutes,
		MinLeadMinutes:  domain.DefaultMinLeadMinutes,
	}
}

// Input снимок входных данных одного расчета
// Калькулятор ничего не изменяет во входных данных
type Input struct {
	Date            time.Time             // Дата (учитываются только год, месяц, день)
	Now             time.Time             // Текущее время, передается явно
	Schedule        domain.WeeklySchedule // Расписание бизнеса
	Staff           *domain.StaffMember   // Выбранный сотрудник (nil - любой)
	DurationMinutes int                   // Суммарная длительность выбранных услуг
	Bookings        []domain.ExistingBooking
	BlockedPeriods  []domain.BlockedPeriod
}

// Calculator вычисляет доступные времена начала на дату
// Чистый: одинаковый Input всегда дает одинаковый результат
type Calculator struct {
	step int
	lead int
}

// NewCalculator создает калькулятор, некорректные параметры заменяются значениями по умолчанию
func NewCalculator(opts Options) *Calculator {
	step := opts.GridStepMinutes
	if step < domain.MinGridStepMinutes || step > domain.MaxGridStepMinutes {
		step = domain.GridStepMinutes
	}

	lead := opts.MinLeadMinutes
	if lead < 0 || lead > domain.MaxMinLeadMinutes {
		lead = domain.DefaultMinLeadMinutes
	}

	return &Calculator{step: step, lead: lead}
}

// GridStep возвращает шаг сетки
func (c *Calculator) GridStep() int {
	return c.step
}

// Calculate возвращает отсортированный набор доступных времен начала
//
// Шаги:
// 1. Окно на дату (расписание сотрудника приоритетнее расписания бизнеса)
// 2. Сетка кандидатов с шагом step, услуга должна закончиться не позже закрытия
// 3. Удаление кандидатов, пересекающихся с бронированиями, блокировками и перерывами
// 4. Добавление точных времен окончания бронирований/блокировок вне сетки
func (c *Calculator) Calculate(in Input) domain.SlotSet {
	if isDateInPast(in.Date, in.Now) {
		return domain.SlotSet{}
	}

	window := ResolveWindow(in.Date, in.Schedule, in.Staff)
	open, close, ok := window.Bounds()
	if !ok {
		return domain.SlotSet{}
	}

	duration := ResolveMinutes(in.DurationMinutes)
	cutoff := c.cutoff(in.Date, in.Now)

	occ := collectOccupancy(in.Date, in.Staff, in.Bookings, in.BlockedPeriods)

	base := generateCandidates(open, close, duration, c.step, cutoff)
	free := filterOccupied(base, duration, occ)
	gaps := gapFillPoints(occ, open, close, duration, c.step, cutoff)

	return toSlotSet(append(free, gaps...))
}

// IsAvailable проверяет, что конкретное время начала входит в доступный набор
func (c *Calculator) IsAvailable(in Input, start types.TimeString) bool {
	return c.Calculate(in).Contains(start)
}

// cutoff возвращает минуту дня, до которой (включительно) кандидаты отбрасываются
func (c *Calculator) cutoff(date, now time.Time) int {
	if !isSameDay(date, now) {
		return noCutoff
	}
	return minuteOfDay(now) + c.lead
}

// toSlotSet сортирует, удаляет дубликаты и переводит минуты в HH:MM
func toSlotSet(minutes []int) domain.SlotSet {
	sort.Ints(minutes)

	result := make(domain.SlotSet, 0, len(minutes))
	last := -1
	for _, m := range minutes {
		if m == last {
			continue
		}
		last = m

		slot, err := types.FromMinutes(m)
		if err != nil {
			continue
		}
		result = append(result, slot)
	}

	return result
}
