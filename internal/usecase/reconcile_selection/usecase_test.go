package reconcile_selection

import (
	"context"
	"testing"

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

func newUseCase() *UseCase {
	provider := &mockBusinessProvider{}
	provider.On("Get", mock.Anything, int64(7)).Return(&domain.Business{
		ID: 7,
		Services: []domain.Service{
			{Name: "Haircut", Price: 15, DurationLabel: "30 min"},
			{Name: "Coloring", Price: 40, DurationLabel: "1 orë"},
		},
		Staff: []domain.StaffMember{
			{Name: "Ana", IsActive: true},
			{Name: "Ben", IsActive: true, AssignedServiceNames: []string{"Haircut"}},
		},
	}, nil)
	provider.On("Get", mock.Anything, int64(8)).Return(nil, businessService.ErrBusinessNotFound)
	return NewUseCase(provider, logger.NewNop())
}

func TestExecute_ServicesChangedDropsStaff(t *testing.T) {
	resp, err := newUseCase().Execute(context.Background(), &Request{
		BusinessID:   7,
		ServiceNames: []string{"Haircut", "Coloring"},
		StaffName:    ptr.Ptr("Ben"),
		Change:       availability.ChangeServices,
	})
	require.NoError(t, err)

	assert.Nil(t, resp.StaffName)
	assert.Equal(t, []string{"Haircut", "Coloring"}, resp.ServiceNames)
	assert.Equal(t, []string{"Ana"}, resp.EligibleStaff)
	assert.Equal(t, 90, resp.TotalDurationMinutes)
	require.Len(t, resp.Warnings, 1)
	assert.Equal(t, availability.WarningStaffIncompatible, resp.Warnings[0].Code)
}

func TestExecute_StaffChangedDropsServices(t *testing.T) {
	resp, err := newUseCase().Execute(context.Background(), &Request{
		BusinessID:   7,
		ServiceNames: []string{"Haircut", "Coloring"},
		StaffName:    ptr.Ptr("Ben"),
		Change:       availability.ChangeStaff,
	})
	require.NoError(t, err)

	require.NotNil(t, resp.StaffName)
	assert.Equal(t, "Ben", *resp.StaffName)
	assert.Equal(t, []string{"Haircut"}, resp.ServiceNames)
	assert.Equal(t, 30, resp.TotalDurationMinutes)
	assert.Equal(t, 15.0, resp.TotalPrice)
	require.Len(t, resp.Warnings, 1)
	assert.Equal(t, availability.WarningServicesDropped, resp.Warnings[0].Code)
	assert.Equal(t, []string{"Coloring"}, resp.Warnings[0].Subjects)

	assert.Equal(t, []ServiceOption{
		{Name: "Haircut", Price: 15, DurationMinutes: 30, Selectable: true, Selected: true},
		{Name: "Coloring", Price: 40, DurationMinutes: 60, Selectable: false, Selected: false},
	}, resp.Services)
}

func TestExecute_Errors(t *testing.T) {
	uc := newUseCase()
	ctx := context.Background()

	_, err := uc.Execute(ctx, &Request{BusinessID: 7, Change: "everything"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(ctx, &Request{BusinessID: 8, Change: availability.ChangeStaff})
	assert.ErrorIs(t, err, ErrBusinessNotFound)

	_, err = uc.Execute(ctx, &Request{BusinessID: 7, ServiceNames: []string{"Massage"}, Change: availability.ChangeServices})
	assert.ErrorIs(t, err, ErrServiceNotFound)

	_, err = uc.Execute(ctx, &Request{BusinessID: 7, StaffName: ptr.Ptr("Zed"), Change: availability.ChangeStaff})
	assert.ErrorIs(t, err, ErrStaffNotFound)
}
