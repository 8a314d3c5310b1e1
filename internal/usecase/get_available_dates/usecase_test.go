package get_available_dates

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/availability"
	businessService "github.com/m04kA/SMC-AvailabilityService/internal/service/business"
	"github.com/m04kA/SMC-AvailabilityService/pkg/logger"
	"github.com/m04kA/SMC-AvailabilityService/pkg/ptr"
)

type mockBusinessProvider struct{ mock.Mock }

func (m *mockBusinessProvider) Get(ctx context.Context, businessID int64) (*domain.Business, error) {
	args := m.Called(ctx, businessID)
	business, _ := args.Get(0).(*domain.Business)
	return business, args.Error(1)
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

// среда 14.10.2026 10:07
var now = time.Date(2026, 10, 14, 10, 7, 0, 0, time.UTC)

func salon() *domain.Business {
	open := domain.OpenDay("09:00", "17:00")
	return &domain.Business{
		ID: 7,
		Schedule: domain.WeeklySchedule{
			domain.Monday:    open,
			domain.Tuesday:   open,
			domain.Wednesday: open,
			domain.Thursday:  open,
			domain.Friday:    open,
			domain.Saturday:  domain.OpenDay("10:00", "14:00"),
			domain.Sunday:    domain.ClosedDay(),
		},
		Staff: []domain.StaffMember{
			{
				Name:     "Ana",
				IsActive: true,
				OperatingSchedule: domain.WeeklySchedule{
					domain.Thursday: domain.ClosedDay(),
					// Окно сотрудника приоритетнее выходного дня бизнеса
					domain.Sunday: domain.OpenDay("10:00", "12:00"),
				},
			},
			{Name: "Dora", IsActive: false, OperatingSchedule: domain.WeeklySchedule{domain.Monday: domain.ClosedDay()}},
		},
	}
}

func newUseCase(t *testing.T) *UseCase {
	t.Helper()
	provider := &mockBusinessProvider{}
	provider.On("Get", mock.Anything, int64(7)).Return(salon(), nil)
	provider.On("Get", mock.Anything, int64(8)).Return(nil, businessService.ErrBusinessNotFound)
	return NewUseCase(provider, 60, fixedTime{now: now}, logger.NewNop())
}

func reasons(dates []domain.DateStatus) []domain.DateDisabledReason {
	result := make([]domain.DateDisabledReason, 0, len(dates))
	for _, d := range dates {
		result = append(result, d.Reason)
	}
	return result
}

func TestExecute_BusinessCalendar(t *testing.T) {
	resp, err := newUseCase(t).Execute(context.Background(), &Request{
		BusinessID: 7,
		From:       time.Date(2026, 10, 13, 0, 0, 0, 0, time.UTC), // вторник, вчера
		Days:       7,
	})
	require.NoError(t, err)

	require.Len(t, resp.Dates, 7)
	assert.Equal(t, []domain.DateDisabledReason{
		domain.ReasonPast, // вт 13
		domain.ReasonNone, // ср 14, сегодня
		domain.ReasonNone, // чт 15
		domain.ReasonNone, // пт 16
		domain.ReasonNone, // сб 17
		domain.ReasonClosed,
		domain.ReasonNone, // пн 19
	}, reasons(resp.Dates))
	assert.True(t, resp.Dates[1].Enabled)
	assert.Equal(t, time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC), resp.Dates[6].Date)
}

func TestExecute_StaffCalendar(t *testing.T) {
	resp, err := newUseCase(t).Execute(context.Background(), &Request{
		BusinessID: 7,
		From:       time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC), // четверг
		Days:       4,
		StaffName:  ptr.Ptr("Ana"),
	})
	require.NoError(t, err)

	require.NotNil(t, resp.StaffName)
	assert.Equal(t, []domain.DateDisabledReason{
		domain.ReasonStaffDayOff, // чт
		domain.ReasonNone,        // пт
		domain.ReasonNone,        // сб
		domain.ReasonNone,        // вс: окно сотрудника
	}, reasons(resp.Dates))
}

func TestExecute_InactiveStaffFallsBackToBusiness(t *testing.T) {
	resp, err := newUseCase(t).Execute(context.Background(), &Request{
		BusinessID: 7,
		From:       time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC),
		Days:       1,
		StaffName:  ptr.Ptr("Dora"),
	})
	require.NoError(t, err)

	assert.Nil(t, resp.StaffName)
	require.Len(t, resp.Warnings, 1)
	assert.Equal(t, availability.WarningStaffInactive, resp.Warnings[0].Code)
	assert.True(t, resp.Dates[0].Enabled)
}

func TestExecute_Defaults(t *testing.T) {
	resp, err := newUseCase(t).Execute(context.Background(), &Request{BusinessID: 7})
	require.NoError(t, err)

	require.Len(t, resp.Dates, domain.DefaultAvailableDatesDays)
	assert.Equal(t, time.Date(2026, 10, 14, 0, 0, 0, 0, time.UTC), resp.Dates[0].Date)
}

func TestExecute_Errors(t *testing.T) {
	uc := newUseCase(t)
	ctx := context.Background()

	_, err := uc.Execute(ctx, &Request{BusinessID: 7, Days: 61})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(ctx, &Request{BusinessID: -1})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(ctx, &Request{BusinessID: 8})
	assert.ErrorIs(t, err, ErrBusinessNotFound)

	_, err = uc.Execute(ctx, &Request{BusinessID: 7, StaffName: ptr.Ptr("Zed")})
	assert.ErrorIs(t, err, ErrStaffNotFound)
}
