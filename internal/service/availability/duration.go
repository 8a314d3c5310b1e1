package availability

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

const (
	minutesPerHour = 60
	minutesPerDay  = 24 * minutesPerHour
)

// labelPartPattern находит части метки вида "<число> <единица>"
// Число может быть дробным ("1.5", "1,5"), единица - целое слово, неизвестные слова пропускаются
var labelPartPattern = regexp.MustCompile(`(\d+(?:[.,]\d+)?)\s*(\p{L}+)`)

var firstIntegerPattern = regexp.MustCompile(`\d+`)

// ResolveDuration переводит длительность (число минут или метку) в минуты
// Никогда не возвращает ошибку: нераспознанное значение дает domain.DefaultDurationMinutes
func ResolveDuration(value interface{}) int {
	switch v := value.(type) {
	case int:
		return ResolveMinutes(v)
	case int32:
		return ResolveMinutes(int(v))
	case int64:
		return ResolveMinutes(int(v))
	case float64:
		return ResolveMinutes(int(math.Round(v)))
	case string:
		return ResolveLabel(v)
	default:
		return domain.DefaultDurationMinutes
	}
}

// ResolveMinutes возвращает minutes, если значение положительное, иначе значение по умолчанию
func ResolveMinutes(minutes int) int {
	if minutes > 0 {
		return minutes
	}
	return domain.DefaultDurationMinutes
}

// ResolveLabel разбирает метку длительности: "30 min", "1 orë 30 min", "2 ditë", "90"
//
// Порядок разбора:
// 1. Сумма всех частей "<число> <единица>" (min, orë/h, ditë/d), округленная до минуты
// 2. Первое целое число в строке как минуты
// 3. domain.DefaultDurationMinutes
func ResolveLabel(label string) int {
	normalized := strings.ToLower(strings.TrimSpace(label))
	if normalized == "" {
		return domain.DefaultDurationMinutes
	}

	total := 0.0
	for _, match := range labelPartPattern.FindAllStringSubmatch(normalized, -1) {
		unit, ok := unitMinutes(match[2])
		if !ok {
			continue
		}
		amount, err := strconv.ParseFloat(strings.Replace(match[1], ",", ".", 1), 64)
		if err != nil {
			continue
		}
		total += amount * float64(unit)
	}
	if minutes := int(math.Round(total)); minutes > 0 {
		return minutes
	}

	if raw := firstIntegerPattern.FindString(normalized); raw != "" {
		if minutes, err := strconv.Atoi(raw); err == nil && minutes > 0 {
			return minutes
		}
	}

	return domain.DefaultDurationMinutes
}

func unitMinutes(unit string) (int, bool) {
	switch unit {
	case "ditë", "dite", "dit", "days", "day", "d":
		return minutesPerDay, true
	case "orë", "ore", "hours", "hour", "h":
		return minutesPerHour, true
	case "minuta", "minutë", "minutes", "minute", "min", "m":
		return 1, true
	default:
		return 0, false
	}
}

// ServiceDuration возвращает длительность услуги в минутах
// Явно заданные минуты приоритетнее метки
func ServiceDuration(service domain.Service) int {
	if service.DurationMinutes > 0 {
		return service.DurationMinutes
	}
	return ResolveLabel(service.DurationLabel)
}

// Aggregate суммирует длительность и стоимость выбранных услуг
// Пустой выбор дает длительность по умолчанию и нулевую цену
func Aggregate(services []domain.Service) (totalMinutes int, totalPrice float64) {
	if len(services) == 0 {
		return domain.DefaultDurationMinutes, 0
	}

	for _, service := range services {
		totalMinutes += ServiceDuration(service)
		if service.Price > 0 {
			totalPrice += service.Price
		}
	}

	return totalMinutes, totalPrice
}
