package reconcile_selection

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	reconcileSelection "github.com/m04kA/SMC-AvailabilityService/internal/usecase/reconcile_selection"
)

const (
	msgInvalidBusinessID  = "некорректный ID бизнеса"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректный выбор: change должен быть services или staff"
	msgBusinessNotFound   = "бизнес не найден"
	msgServiceNotFound    = "услуга не найдена"
	msgStaffNotFound      = "сотрудник не найден"
)

type Handler struct {
	useCase ReconcileSelectionUseCase
	logger  Logger
}

func NewHandler(useCase ReconcileSelectionUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/businesses/{businessId}/selection
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	businessID, err := strconv.ParseInt(vars["businessId"], 10, 64)
	if err != nil || businessID <= 0 {
		h.logger.Warn("POST /businesses/{id}/selection - Invalid business ID: %q", vars["businessId"])
		handlers.RespondBadRequest(w, msgInvalidBusinessID)
		return
	}

	var req SelectionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /businesses/{id}/selection - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(businessID))
	if err != nil {
		switch {
		case errors.Is(err, reconcileSelection.ErrInvalidInput):
			h.logger.Warn("POST /businesses/{id}/selection - Invalid input: business_id=%d, error=%v", businessID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, reconcileSelection.ErrBusinessNotFound):
			h.logger.Warn("POST /businesses/{id}/selection - Business not found: business_id=%d", businessID)
			handlers.RespondNotFound(w, msgBusinessNotFound)

		case errors.Is(err, reconcileSelection.ErrServiceNotFound):
			h.logger.Warn("POST /businesses/{id}/selection - Service not found: business_id=%d, services=%v",
				businessID, req.Services)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, reconcileSelection.ErrStaffNotFound):
			h.logger.Warn("POST /businesses/{id}/selection - Staff not found: business_id=%d, staff=%q", businessID, req.Staff)
			handlers.RespondNotFound(w, msgStaffNotFound)

		default:
			h.logger.Error("POST /businesses/{id}/selection - Failed to reconcile selection: business_id=%d, error=%v",
				businessID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /businesses/{id}/selection - Selection reconciled: business_id=%d, services=%v, staff=%q, warnings=%d",
		businessID, response.Services, response.Staff, len(response.Warnings))
	handlers.RespondJSON(w, http.StatusOK, response)
}
