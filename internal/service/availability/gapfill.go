package availability

// gapFillPoints возвращает дополнительные кандидаты, не лежащие на сетке:
// точное время окончания бронирования или блокировки, если оно не кратно step.
// Точка проходит те же проверки окна, текущего времени и занятости, что и кандидаты сетки.
// Из добавленных точек новые точки не порождаются.
func gapFillPoints(occ occupancy, open, close, duration, step, cutoff int) []int {
	points := make([]int, 0)

	for _, release := range occ.releases {
		if release%step == 0 {
			// Уже на сетке
			continue
		}
		if !fitsWindow(release, open, close, duration, cutoff) {
			continue
		}
		if !occ.isFree(release, duration) {
			continue
		}
		points = append(points, release)
	}

	return points
}
