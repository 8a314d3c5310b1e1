package get_eligible_staff

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	getEligibleStaff "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_eligible_staff"
)

const (
	msgInvalidBusinessID = "некорректный ID бизнеса"
	msgInvalidInput      = "некорректные параметры запроса"
	msgBusinessNotFound  = "бизнес не найден"
	msgServiceNotFound   = "услуга не найдена"
)

type Handler struct {
	useCase GetEligibleStaffUseCase
	logger  Logger
}

func NewHandler(useCase GetEligibleStaffUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/businesses/{businessId}/eligible-staff
// Query params: service (optional, repeatable)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	businessID, err := strconv.ParseInt(vars["businessId"], 10, 64)
	if err != nil || businessID <= 0 {
		h.logger.Warn("GET /businesses/{id}/eligible-staff - Invalid business ID: %q", vars["businessId"])
		handlers.RespondBadRequest(w, msgInvalidBusinessID)
		return
	}

	serviceNames := r.URL.Query()["service"]

	result, err := h.useCase.Execute(r.Context(), &getEligibleStaff.Request{
		BusinessID:   businessID,
		ServiceNames: serviceNames,
	})
	if err != nil {
		switch {
		case errors.Is(err, getEligibleStaff.ErrInvalidInput):
			h.logger.Warn("GET /businesses/{id}/eligible-staff - Invalid input: business_id=%d, error=%v", businessID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, getEligibleStaff.ErrBusinessNotFound):
			h.logger.Warn("GET /businesses/{id}/eligible-staff - Business not found: business_id=%d", businessID)
			handlers.RespondNotFound(w, msgBusinessNotFound)

		case errors.Is(err, getEligibleStaff.ErrServiceNotFound):
			h.logger.Warn("GET /businesses/{id}/eligible-staff - Service not found: business_id=%d, services=%v",
				businessID, serviceNames)
			handlers.RespondNotFound(w, msgServiceNotFound)

		default:
			h.logger.Error("GET /businesses/{id}/eligible-staff - Failed to get staff: business_id=%d, error=%v",
				businessID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /businesses/{id}/eligible-staff - Staff retrieved successfully: business_id=%d, staff_count=%d",
		businessID, len(response.Staff))
	handlers.RespondJSON(w, http.StatusOK, response)
}
