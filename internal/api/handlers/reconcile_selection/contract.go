package reconcile_selection

import (
	"context"

	reconcileSelection "github.com/m04kA/SMC-AvailabilityService/internal/usecase/reconcile_selection"
)

type ReconcileSelectionUseCase interface {
	Execute(ctx context.Context, req *reconcileSelection.Request) (*reconcileSelection.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
