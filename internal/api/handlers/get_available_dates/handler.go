package get_available_dates

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	getAvailableDates "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_available_dates"
)

const (
	msgInvalidBusinessID = "некорректный ID бизнеса"
	msgInvalidParams     = "некорректные параметры: from в формате YYYY-MM-DD, days целое число"
	msgInvalidInput      = "некорректный диапазон дат"
	msgBusinessNotFound  = "бизнес не найден"
	msgStaffNotFound     = "сотрудник не найден"
)

type Handler struct {
	useCase GetAvailableDatesUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableDatesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/businesses/{businessId}/available-dates
// Query params: from (optional, YYYY-MM-DD), days (optional), staff (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	businessID, err := strconv.ParseInt(vars["businessId"], 10, 64)
	if err != nil || businessID <= 0 {
		h.logger.Warn("GET /businesses/{id}/available-dates - Invalid business ID: %q", vars["businessId"])
		handlers.RespondBadRequest(w, msgInvalidBusinessID)
		return
	}

	query := r.URL.Query()
	useCaseReq, err := ToUseCaseRequest(businessID, query.Get("from"), query.Get("days"), query.Get("staff"))
	if err != nil {
		h.logger.Warn("GET /businesses/{id}/available-dates - Invalid query params: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableDates.ErrInvalidInput):
			h.logger.Warn("GET /businesses/{id}/available-dates - Invalid input: business_id=%d, error=%v", businessID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, getAvailableDates.ErrBusinessNotFound):
			h.logger.Warn("GET /businesses/{id}/available-dates - Business not found: business_id=%d", businessID)
			handlers.RespondNotFound(w, msgBusinessNotFound)

		case errors.Is(err, getAvailableDates.ErrStaffNotFound):
			h.logger.Warn("GET /businesses/{id}/available-dates - Staff not found: business_id=%d, staff=%q",
				businessID, query.Get("staff"))
			handlers.RespondNotFound(w, msgStaffNotFound)

		default:
			h.logger.Error("GET /businesses/{id}/available-dates - Failed to get dates: business_id=%d, error=%v",
				businessID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /businesses/{id}/available-dates - Dates retrieved successfully: business_id=%d, days=%d",
		businessID, len(response.Dates))
	handlers.RespondJSON(w, http.StatusOK, response)
}
