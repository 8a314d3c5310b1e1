package prepare_booking

import (
	"context"

	prepareBooking "github.com/m04kA/SMC-AvailabilityService/internal/usecase/prepare_booking"
)

type PrepareBookingUseCase interface {
	Execute(ctx context.Context, req *prepareBooking.Request) (*prepareBooking.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
