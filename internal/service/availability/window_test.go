package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

func TestResolveWindow(t *testing.T) {
	schedule := weekdays("09:00", "17:00")

	t.Run("business window without staff", func(t *testing.T) {
		window := ResolveWindow(nextMonday, schedule, nil)
		assert.Equal(t, schedule[domain.Monday], window)
	})

	t.Run("staff override wins", func(t *testing.T) {
		staff := staffMember("Ana")
		staff.OperatingSchedule = domain.WeeklySchedule{
			domain.Monday: domain.OpenDay("12:00", "20:00"),
		}

		window := ResolveWindow(nextMonday, schedule, staff)
		open, close, ok := window.Bounds()
		require.True(t, ok)
		assert.Equal(t, 12*60, open)
		assert.Equal(t, 20*60, close)
	})

	t.Run("empty staff day falls back to business window", func(t *testing.T) {
		staff := staffMember("Ana")
		staff.OperatingSchedule = domain.WeeklySchedule{
			domain.Monday: {},
		}

		assert.Equal(t, schedule[domain.Monday], ResolveWindow(nextMonday, schedule, staff))
	})

	t.Run("malformed staff day falls back to business window", func(t *testing.T) {
		staff := staffMember("Ana")
		staff.OperatingSchedule = domain.WeeklySchedule{
			domain.Monday: domain.OpenDay("18:00", "10:00"),
		}

		assert.Equal(t, schedule[domain.Monday], ResolveWindow(nextMonday, schedule, staff))
	})

	t.Run("missing weekday is closed", func(t *testing.T) {
		window := ResolveWindow(nextMonday, domain.WeeklySchedule{}, nil)
		assert.False(t, window.IsOpen())
	})

	t.Run("nil schedule is closed", func(t *testing.T) {
		window := ResolveWindow(nextMonday, nil, nil)
		assert.False(t, window.IsOpen())
	})
}

func TestCheckDate(t *testing.T) {
	schedule := weekdays("09:00", "17:00")

	dayOff := staffMember("Ana")
	dayOff.OperatingSchedule = domain.WeeklySchedule{domain.Monday: {}}

	sundayWorker := staffMember("Ben")
	sundayWorker.OperatingSchedule = domain.WeeklySchedule{domain.Sunday: domain.OpenDay("10:00", "14:00")}

	status := CheckDate(yesterday, now, schedule, nil)
	assert.False(t, status.Enabled)
	assert.Equal(t, domain.ReasonPast, status.Reason)

	status = CheckDate(today, now, schedule, nil)
	assert.True(t, status.Enabled)

	status = CheckDate(nextSunday, now, schedule, nil)
	assert.False(t, status.Enabled)
	assert.Equal(t, domain.ReasonClosed, status.Reason)

	status = CheckDate(nextMonday, now, schedule, dayOff)
	assert.False(t, status.Enabled)
	assert.Equal(t, domain.ReasonStaffDayOff, status.Reason)

	status = CheckDate(nextSunday, now, schedule, sundayWorker)
	assert.True(t, status.Enabled)

	// Сотрудник без расписания работает по часам бизнеса
	status = CheckDate(nextMonday, now, schedule, staffMember("Cleo"))
	assert.True(t, status.Enabled)
	assert.Equal(t, domain.ReasonNone, status.Reason)
}

func TestWeekdayName_SundayConvention(t *testing.T) {
	assert.Equal(t, domain.Sunday, domain.WeekdayName(nextSunday))
	assert.Equal(t, domain.Monday, domain.WeekdayName(nextMonday))
	assert.Equal(t, domain.Wednesday, domain.WeekdayName(now))
}
