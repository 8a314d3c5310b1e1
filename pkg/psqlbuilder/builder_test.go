package psqlbuilder

import (
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelect_UsesDollarPlaceholders(t *testing.T) {
	query, args, err := Select("id", "start_time").
		From("bookings").
		Where(squirrel.Eq{"business_id": 7}).
		Where(squirrel.Eq{"booking_date": "2026-10-19"}).
		ToSql()

	require.NoError(t, err)
	assert.Equal(t, "SELECT id, start_time FROM bookings WHERE business_id = $1 AND booking_date = $2", query)
	assert.Equal(t, []interface{}{7, "2026-10-19"}, args)
}
