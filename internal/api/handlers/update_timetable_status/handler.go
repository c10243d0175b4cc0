package update_timetable_status

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TimetableService/internal/api/handlers"
	"github.com/m04kA/SMC-TimetableService/internal/service/timetables"
)

const (
	msgInvalidTimetableID = "некорректный ID расписания"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidStatus      = "некорректный статус, ожидается APPROVED или REJECTED"
	msgInvalidTransition  = "недопустимый переход статуса"
	msgNotFound           = "расписание не найдено"
)

type Handler struct {
	service TimetableService
	logger  Logger
}

func NewHandler(service TimetableService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/timetables/{timetableId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	timetableID, err := strconv.ParseInt(vars["timetableId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /timetables/{id}/status - Invalid timetable ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTimetableID)
		return
	}

	var req UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /timetables/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateStatus(r.Context(), timetableID, req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, timetables.ErrTimetableNotFound):
			h.logger.Warn("PATCH /timetables/{id}/status - Timetable not found: timetable_id=%d", timetableID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, timetables.ErrInvalidStatus):
			h.logger.Warn("PATCH /timetables/{id}/status - Invalid status %q: timetable_id=%d", req.Status, timetableID)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, timetables.ErrInvalidTransition):
			h.logger.Warn("PATCH /timetables/{id}/status - Invalid transition to %q: timetable_id=%d", req.Status, timetableID)
			handlers.RespondError(w, http.StatusConflict, msgInvalidTransition)

		default:
			h.logger.Error("PATCH /timetables/{id}/status - Failed to update status: timetable_id=%d, error=%v",
				timetableID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /timetables/{id}/status - Status updated: timetable_id=%d, status=%s",
		timetableID, result.Status)
	handlers.RespondJSON(w, http.StatusOK, result)
}
