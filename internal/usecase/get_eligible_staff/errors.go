package get_eligible_staff

import "errors"

var (
	ErrBusinessNotFound = errors.New("get_eligible_staff: business not found")
	ErrServiceNotFound  = errors.New("get_eligible_staff: service not found")
	ErrInvalidInput     = errors.New("get_eligible_staff: invalid input data")
	ErrInternal         = errors.New("get_eligible_staff: internal error")
)
