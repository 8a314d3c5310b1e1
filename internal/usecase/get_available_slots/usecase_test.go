package get_available_slots

import (
	"context"
	"errors"
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
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

type mockBusinessProvider struct{ mock.Mock }

func (m *mockBusinessProvider) Get(ctx context.Context, businessID int64) (*domain.Business, error) {
	args := m.Called(ctx, businessID)
	business, _ := args.Get(0).(*domain.Business)
	return business, args.Error(1)
}

type mockBookingRepo struct{ mock.Mock }

func (m *mockBookingRepo) GetByBusinessAndDate(ctx context.Context, filter domain.BookingsFilter) ([]domain.ExistingBooking, error) {
	args := m.Called(ctx, filter)
	bookings, _ := args.Get(0).([]domain.ExistingBooking)
	return bookings, args.Error(1)
}

type mockBlockedRepo struct{ mock.Mock }

func (m *mockBlockedRepo) GetByBusinessAndDate(ctx context.Context, filter domain.BookingsFilter) ([]domain.BlockedPeriod, error) {
	args := m.Called(ctx, filter)
	blocked, _ := args.Get(0).([]domain.BlockedPeriod)
	return blocked, args.Error(1)
}

type mockMetrics struct{ mock.Mock }

func (m *mockMetrics) ObserveSlotCalculation(slots int, staffSelected bool, duration time.Duration) {
	m.Called(slots, staffSelected, duration)
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

var (
	// среда 14.10.2026 10:07
	now        = time.Date(2026, 10, 14, 10, 7, 0, 0, time.UTC)
	nextMonday = time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)
)

func studio() *domain.Business {
	return &domain.Business{
		ID:       7,
		Name:     "Studio",
		Schedule: domain.WeeklySchedule{domain.Monday: domain.OpenDay("09:00", "17:00")},
		Services: []domain.Service{
			{Name: "Haircut", Price: 15, DurationLabel: "30 min"},
			{Name: "Coloring", Price: 40, DurationLabel: "1 orë"},
		},
		Staff: []domain.StaffMember{
			{Name: "Ana", IsActive: true, AssignedServiceNames: []string{"Haircut", "Coloring"}},
			{Name: "Ben", IsActive: true, AssignedServiceNames: []string{"Haircut"}},
			{
				Name:              "Dora",
				IsActive:          true,
				OperatingSchedule: domain.WeeklySchedule{domain.Monday: domain.ClosedDay()},
			},
		},
	}
}

type fixture struct {
	business *mockBusinessProvider
	bookings *mockBookingRepo
	blocked  *mockBlockedRepo
	metrics  *mockMetrics
	uc       *UseCase
}

func newFixture() *fixture {
	f := &fixture{
		business: &mockBusinessProvider{},
		bookings: &mockBookingRepo{},
		blocked:  &mockBlockedRepo{},
		metrics:  &mockMetrics{},
	}
	f.uc = NewUseCase(
		f.business,
		f.bookings,
		f.blocked,
		availability.NewCalculator(availability.DefaultOptions()),
		f.metrics,
		fixedTime{now: now},
		logger.NewNop(),
	)
	return f
}

func (f *fixture) withData(bookings []domain.ExistingBooking, blocked []domain.BlockedPeriod) {
	f.business.On("Get", mock.Anything, int64(7)).Return(studio(), nil)
	f.bookings.On("GetByBusinessAndDate", mock.Anything, mock.Anything).Return(bookings, nil)
	f.blocked.On("GetByBusinessAndDate", mock.Anything, mock.Anything).Return(blocked, nil)
}

func everyStep(from, to string) domain.SlotSet {
	start, _ := types.TimeString(from).Minutes()
	end, _ := types.TimeString(to).Minutes()
	result := domain.SlotSet{}
	for m := start; m <= end; m += 15 {
		ts, _ := types.FromMinutes(m)
		result = append(result, ts)
	}
	return result
}

func TestExecute_AggregatedServices(t *testing.T) {
	f := newFixture()
	f.withData(nil, nil)
	f.metrics.On("ObserveSlotCalculation", 27, false, mock.Anything).Return()

	resp, err := f.uc.Execute(context.Background(), &Request{
		BusinessID:   7,
		Date:         nextMonday,
		ServiceNames: []string{"Haircut", "Coloring"},
	})
	require.NoError(t, err)

	assert.True(t, resp.DateEnabled)
	assert.Equal(t, 90, resp.TotalDurationMinutes)
	assert.Equal(t, 55.0, resp.TotalPrice)
	assert.Nil(t, resp.StaffName)
	assert.Empty(t, resp.Warnings)
	assert.Equal(t, everyStep("09:00", "15:30"), resp.Slots)
	f.metrics.AssertExpectations(t)

	f.bookings.AssertCalled(t, "GetByBusinessAndDate", mock.Anything, domain.BookingsFilter{BusinessID: 7, Date: nextMonday})
}

func TestExecute_StaffOccupancy(t *testing.T) {
	f := newFixture()
	f.withData(
		[]domain.ExistingBooking{
			{Date: nextMonday, StartTime: "09:00", DurationMinutes: 30, StaffName: ptr.Ptr("Ana"), Status: domain.StatusConfirmed},
			{Date: nextMonday, StartTime: "09:30", DurationMinutes: 30, StaffName: ptr.Ptr("Ben"), Status: domain.StatusConfirmed},
		},
		[]domain.BlockedPeriod{
			{Date: nextMonday, StartTime: "16:00", EndTime: "17:00"},
		},
	)
	f.metrics.On("ObserveSlotCalculation", mock.Anything, true, mock.Anything).Return()

	resp, err := f.uc.Execute(context.Background(), &Request{
		BusinessID:   7,
		Date:         nextMonday,
		ServiceNames: []string{"Haircut"},
		StaffName:    ptr.Ptr("Ana"),
	})
	require.NoError(t, err)

	require.NotNil(t, resp.StaffName)
	assert.Equal(t, "Ana", *resp.StaffName)
	assert.False(t, resp.Slots.Contains("09:00"))
	assert.True(t, resp.Slots.Contains("09:30"), "Ben's booking does not block Ana")
	assert.True(t, resp.Slots.Contains("15:30"))
	assert.False(t, resp.Slots.Contains("15:45"))
}

func TestExecute_IncompatibleStaffIsDropped(t *testing.T) {
	f := newFixture()
	f.withData(nil, nil)
	f.metrics.On("ObserveSlotCalculation", mock.Anything, false, mock.Anything).Return()

	resp, err := f.uc.Execute(context.Background(), &Request{
		BusinessID:   7,
		Date:         nextMonday,
		ServiceNames: []string{"Haircut", "Coloring"},
		StaffName:    ptr.Ptr("Ben"),
	})
	require.NoError(t, err)

	assert.Nil(t, resp.StaffName)
	require.Len(t, resp.Warnings, 1)
	assert.Equal(t, availability.WarningStaffIncompatible, resp.Warnings[0].Code)
	assert.NotEmpty(t, resp.Slots)
}

func TestExecute_DisabledDates(t *testing.T) {
	tests := []struct {
		name   string
		date   time.Time
		staff  *string
		reason domain.DateDisabledReason
	}{
		{name: "past", date: now.AddDate(0, 0, -1), reason: domain.ReasonPast},
		{name: "business closed", date: nextMonday.AddDate(0, 0, 1), reason: domain.ReasonClosed},
		{name: "staff day off", date: nextMonday, staff: ptr.Ptr("Dora"), reason: domain.ReasonStaffDayOff},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			f.withData(nil, nil)

			resp, err := f.uc.Execute(context.Background(), &Request{
				BusinessID:   7,
				Date:         tt.date,
				ServiceNames: []string{"Haircut"},
				StaffName:    tt.staff,
			})
			require.NoError(t, err)

			assert.False(t, resp.DateEnabled)
			assert.Equal(t, tt.reason, resp.DisabledReason)
			assert.NotNil(t, resp.Slots)
			assert.Empty(t, resp.Slots)
			f.metrics.AssertNotCalled(t, "ObserveSlotCalculation", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestExecute_Errors(t *testing.T) {
	t.Run("business not found", func(t *testing.T) {
		f := newFixture()
		f.business.On("Get", mock.Anything, int64(7)).Return(nil, businessService.ErrBusinessNotFound)
		f.bookings.On("GetByBusinessAndDate", mock.Anything, mock.Anything).Return(nil, nil)
		f.blocked.On("GetByBusinessAndDate", mock.Anything, mock.Anything).Return(nil, nil)

		_, err := f.uc.Execute(context.Background(), &Request{BusinessID: 7, Date: nextMonday, ServiceNames: []string{"Haircut"}})
		assert.ErrorIs(t, err, ErrBusinessNotFound)
	})

	t.Run("repository failure", func(t *testing.T) {
		f := newFixture()
		f.business.On("Get", mock.Anything, int64(7)).Return(studio(), nil)
		f.bookings.On("GetByBusinessAndDate", mock.Anything, mock.Anything).Return(nil, errors.New("connection reset"))
		f.blocked.On("GetByBusinessAndDate", mock.Anything, mock.Anything).Return(nil, nil)

		_, err := f.uc.Execute(context.Background(), &Request{BusinessID: 7, Date: nextMonday, ServiceNames: []string{"Haircut"}})
		assert.ErrorIs(t, err, ErrInternal)
	})

	t.Run("unknown service", func(t *testing.T) {
		f := newFixture()
		f.withData(nil, nil)

		_, err := f.uc.Execute(context.Background(), &Request{BusinessID: 7, Date: nextMonday, ServiceNames: []string{"Massage"}})
		assert.ErrorIs(t, err, ErrServiceNotFound)
	})

	t.Run("unknown staff", func(t *testing.T) {
		f := newFixture()
		f.withData(nil, nil)

		_, err := f.uc.Execute(context.Background(), &Request{
			BusinessID:   7,
			Date:         nextMonday,
			ServiceNames: []string{"Haircut"},
			StaffName:    ptr.Ptr("Zed"),
		})
		assert.ErrorIs(t, err, ErrStaffNotFound)
	})
}

func TestValidateRequest(t *testing.T) {
	tests := []struct {
		name string
		req  Request
	}{
		{name: "no business", req: Request{Date: nextMonday, ServiceNames: []string{"Haircut"}}},
		{name: "no date", req: Request{BusinessID: 7, ServiceNames: []string{"Haircut"}}},
		{name: "no services", req: Request{BusinessID: 7, Date: nextMonday}},
		{name: "blank service", req: Request{BusinessID: 7, Date: nextMonday, ServiceNames: []string{" "}}},
		{name: "too many services", req: Request{BusinessID: 7, Date: nextMonday, ServiceNames: make([]string, domain.MaxServicesPerBooking+1)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, validateRequest(&tt.req), ErrInvalidInput)
		})
	}
}

func TestResolveServices_DeduplicatesNames(t *testing.T) {
	services, err := resolveServices(studio(), []string{"Haircut", "Haircut", "Coloring"})
	require.NoError(t, err)
	assert.Len(t, services, 2)
}
