package prepare_booking

import "errors"

var (
	// ErrBusinessNotFound возвращается, когда бизнес не найден
	ErrBusinessNotFound = errors.New("prepare_booking: business not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена в бизнесе
	ErrServiceNotFound = errors.New("prepare_booking: service not found")

	// ErrStaffNotFound возвращается, когда сотрудник не найден в бизнесе
	ErrStaffNotFound = errors.New("prepare_booking: staff not found")

	// ErrStaffIncompatible возвращается, когда сотрудник неактивен или не выполняет выбранные услуги
	ErrStaffIncompatible = errors.New("prepare_booking: staff cannot perform selected services")

	// ErrDateTooFarInFuture возвращается, когда дата дальше допустимого горизонта записи
	ErrDateTooFarInFuture = errors.New("prepare_booking: date is too far in the future")

	// ErrDateNotAvailable возвращается для прошедшей даты, выходного бизнеса или сотрудника
	ErrDateNotAvailable = errors.New("prepare_booking: date is not available")

	// ErrSlotNotAvailable возвращается, когда время начала уже нельзя выбрать
	ErrSlotNotAvailable = errors.New("prepare_booking: slot is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("prepare_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("prepare_booking: internal error")
)
