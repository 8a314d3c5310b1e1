package availability

// noCutoff означает, что дата не сегодняшняя и ограничение по текущему времени не применяется
const noCutoff = -1

// generateCandidates генерирует сетку кандидатов: все значения, кратные step, в [open, close-duration]
// Кандидаты t <= cutoff отбрасываются (прошедшее время сегодняшнего дня)
func generateCandidates(open, close, duration, step, cutoff int) []int {
	latestStart := close - duration
	if latestStart < open {
		// Услуга не помещается в рабочее окно
		return []int{}
	}

	first := roundUpToStep(open, step)
	candidates := make([]int, 0, (latestStart-first)/step+1)

	for t := first; t <= latestStart; t += step {
		if t <= cutoff {
			continue
		}
		candidates = append(candidates, t)
	}

	return candidates
}

// fitsWindow проверяет ограничения окна и текущего времени для произвольного начала (не обязательно на сетке)
func fitsWindow(start, open, close, duration, cutoff int) bool {
	return start >= open && start+duration <= close && start > cutoff
}

func roundUpToStep(minutes, step int) int {
	if rem := minutes % step; rem != 0 {
		return minutes + step - rem
	}
	return minutes
}
