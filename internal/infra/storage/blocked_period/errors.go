package blocked_period

import "errors"

var (
	ErrBuildQuery = errors.New("blocked_period.repository: failed to build query")
	ErrExecQuery  = errors.New("blocked_period.repository: failed to execute query")
	ErrScanRow    = errors.New("blocked_period.repository: failed to scan row")
)
