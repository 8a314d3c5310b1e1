package get_available_slots

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/availability"
	getAvailableSlots "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-AvailabilityService/pkg/logger"
	"github.com/m04kA/SMC-AvailabilityService/pkg/ptr"
)

type mockUseCase struct{ mock.Mock }

func (m *mockUseCase) Execute(ctx context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*getAvailableSlots.Response)
	return resp, args.Error(1)
}

func serve(uc GetAvailableSlotsUseCase, businessID, query string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/businesses/"+businessID+"/available-slots?"+query, nil)
	req = mux.SetURLVars(req, map[string]string{"businessId": businessID})
	rec := httptest.NewRecorder()
	NewHandler(uc, logger.NewNop()).Handle(rec, req)
	return rec
}

func TestHandle_Success(t *testing.T) {
	date := time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)
	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, &getAvailableSlots.Request{
		BusinessID:   7,
		Date:         date,
		ServiceNames: []string{"Haircut", "Coloring"},
		StaffName:    ptr.Ptr("Ana"),
	}).Return(&getAvailableSlots.Response{
		Date:                 date,
		BusinessID:           7,
		Slots:                domain.SlotSet{"09:00", "09:20", "09:30"},
		TotalDurationMinutes: 90,
		TotalPrice:           55,
		StaffName:            ptr.Ptr("Ana"),
		DateEnabled:          true,
		Warnings:             []availability.Warning{},
	}, nil)

	rec := serve(uc, "7", "date=2026-10-19&service=Haircut&service=Coloring&staff=Ana")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"date": "2026-10-19",
		"businessId": 7,
		"slots": ["09:00", "09:20", "09:30"],
		"totalDurationMinutes": 90,
		"totalPrice": 55,
		"staffName": "Ana",
		"dateEnabled": true,
		"warnings": []
	}`, rec.Body.String())
	uc.AssertExpectations(t)
}

func TestHandle_DisabledDateWithWarning(t *testing.T) {
	date := time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC)
	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, mock.Anything).Return(&getAvailableSlots.Response{
		Date:           date,
		BusinessID:     7,
		Slots:          domain.SlotSet{},
		DisabledReason: domain.ReasonClosed,
		Warnings: []availability.Warning{
			{Code: availability.WarningStaffIncompatible, Subjects: []string{"Ben"}},
		},
	}, nil)

	rec := serve(uc, "7", "date=2026-10-20&service=Coloring&staff=Ben")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"date": "2026-10-20",
		"businessId": 7,
		"slots": [],
		"totalDurationMinutes": 0,
		"totalPrice": 0,
		"staffName": "",
		"dateEnabled": false,
		"disabledReason": "closed",
		"warnings": [{"code": "staff_incompatible", "subjects": ["Ben"]}]
	}`, rec.Body.String())
}

func TestHandle_BadRequest(t *testing.T) {
	tests := []struct {
		name       string
		businessID string
		query      string
	}{
		{name: "invalid business id", businessID: "abc", query: "date=2026-10-19&service=Haircut"},
		{name: "missing service", businessID: "7", query: "date=2026-10-19"},
		{name: "missing date", businessID: "7", query: "service=Haircut"},
		{name: "invalid date", businessID: "7", query: "date=19.10.2026&service=Haircut"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{}
			rec := serve(uc, tt.businessID, tt.query)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			uc.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
		})
	}
}

func TestHandle_UseCaseErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "invalid input", err: getAvailableSlots.ErrInvalidInput, wantStatus: http.StatusBadRequest},
		{name: "business not found", err: getAvailableSlots.ErrBusinessNotFound, wantStatus: http.StatusNotFound},
		{name: "service not found", err: getAvailableSlots.ErrServiceNotFound, wantStatus: http.StatusNotFound},
		{name: "staff not found", err: getAvailableSlots.ErrStaffNotFound, wantStatus: http.StatusNotFound},
		{name: "internal", err: errors.New("boom"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{}
			uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.err)

			rec := serve(uc, "7", "date=2026-10-19&service=Haircut")
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
