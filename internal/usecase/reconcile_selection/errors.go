package reconcile_selection

import "errors"

var (
	ErrBusinessNotFound = errors.New("reconcile_selection: business not found")
	ErrServiceNotFound  = errors.New("reconcile_selection: service not found")
	ErrStaffNotFound    = errors.New("reconcile_selection: staff not found")
	ErrInvalidInput     = errors.New("reconcile_selection: invalid input data")
	ErrInternal         = errors.New("reconcile_selection: internal error")
)
