package prepare_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	prepareBooking "github.com/m04kA/SMC-AvailabilityService/internal/usecase/prepare_booking"
)

const (
	msgInvalidBusinessID  = "некорректный ID бизнеса"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты записи, ожидается YYYY-MM-DD"
	msgInvalidTime        = "некорректный формат времени начала, ожидается HH:MM"
	msgInvalidInput       = "некорректные данные записи"
	msgBusinessNotFound   = "бизнес не найден"
	msgServiceNotFound    = "услуга не найдена"
	msgStaffNotFound      = "сотрудник не найден"
	msgStaffIncompatible  = "выбранный сотрудник не выполняет выбранные услуги"
	msgDateTooFar         = "дата записи слишком далеко в будущем"
	msgDateNotAvailable   = "запись на выбранную дату недоступна"
	msgSlotNotAvailable   = "выбранное время уже занято"
)

type Handler struct {
	useCase PrepareBookingUseCase
	logger  Logger
}

func NewHandler(useCase PrepareBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/businesses/{businessId}/booking-draft
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	businessID, err := strconv.ParseInt(vars["businessId"], 10, 64)
	if err != nil || businessID <= 0 {
		h.logger.Warn("POST /businesses/{id}/booking-draft - Invalid business ID: %q", vars["businessId"])
		handlers.RespondBadRequest(w, msgInvalidBusinessID)
		return
	}

	var req BookingDraftRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /businesses/{id}/booking-draft - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(businessID)
	if err != nil {
		h.logger.Warn("POST /businesses/{id}/booking-draft - Failed to parse request: %v", err)
		if errors.Is(err, errInvalidTime) {
			handlers.RespondBadRequest(w, msgInvalidTime)
		} else {
			handlers.RespondBadRequest(w, msgInvalidDate)
		}
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, prepareBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /businesses/{id}/booking-draft - Slot not available: business_id=%d, date=%s, time=%s",
				businessID, req.AppointmentDate, req.AppointmentTime)
			handlers.RespondError(w, http.StatusConflict, msgSlotNotAvailable)

		case errors.Is(err, prepareBooking.ErrInvalidInput):
			h.logger.Warn("POST /businesses/{id}/booking-draft - Invalid input: business_id=%d, error=%v", businessID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, prepareBooking.ErrBusinessNotFound):
			h.logger.Warn("POST /businesses/{id}/booking-draft - Business not found: business_id=%d", businessID)
			handlers.RespondNotFound(w, msgBusinessNotFound)

		case errors.Is(err, prepareBooking.ErrServiceNotFound):
			h.logger.Warn("POST /businesses/{id}/booking-draft - Service not found: business_id=%d, services=%v",
				businessID, req.Services)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, prepareBooking.ErrStaffNotFound):
			h.logger.Warn("POST /businesses/{id}/booking-draft - Staff not found: business_id=%d, staff=%q", businessID, req.Staff)
			handlers.RespondNotFound(w, msgStaffNotFound)

		case errors.Is(err, prepareBooking.ErrStaffIncompatible):
			h.logger.Warn("POST /businesses/{id}/booking-draft - Staff incompatible: business_id=%d, staff=%q", businessID, req.Staff)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgStaffIncompatible)

		case errors.Is(err, prepareBooking.ErrDateTooFarInFuture):
			h.logger.Warn("POST /businesses/{id}/booking-draft - Date too far in future: business_id=%d, date=%s",
				businessID, req.AppointmentDate)
			handlers.RespondBadRequest(w, msgDateTooFar)

		case errors.Is(err, prepareBooking.ErrDateNotAvailable):
			h.logger.Warn("POST /businesses/{id}/booking-draft - Date not available: business_id=%d, error=%v", businessID, err)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgDateNotAvailable)

		default:
			h.logger.Error("POST /businesses/{id}/booking-draft - Failed to prepare booking: business_id=%d, error=%v",
				businessID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /businesses/{id}/booking-draft - Draft prepared: business_id=%d, date=%s, time=%s, staff=%q",
		businessID, response.AppointmentDate, response.AppointmentTime, response.StaffName)
	handlers.RespondJSON(w, http.StatusOK, response)
}
