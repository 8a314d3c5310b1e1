package blocked_period

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/ptr"
)

func TestBuildListQuery(t *testing.T) {
	date := time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)

	query, args, err := buildListQuery(domain.BookingsFilter{BusinessID: 3, Date: date})
	require.NoError(t, err)
	assert.Equal(t,
		"SELECT id, business_id, block_date, start_time, end_time, staff_name, reason FROM blocked_periods "+
			"WHERE business_id = $1 AND block_date = $2 ORDER BY start_time ASC",
		query)
	assert.Equal(t, []interface{}{int64(3), "2026-10-19"}, args)

	query, args, err = buildListQuery(domain.BookingsFilter{BusinessID: 3, Date: date, StaffName: ptr.Ptr("Ben")})
	require.NoError(t, err)
	assert.Contains(t, query, "(staff_name IS NULL OR staff_name = $3 OR staff_name = $4)")
	assert.Equal(t, []interface{}{int64(3), "2026-10-19", "", "Ben"}, args)
}
