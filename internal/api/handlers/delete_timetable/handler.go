package delete_timetable

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

// Handle DELETE /api/v1/timetables/{timetableId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	timetableID, err := strconv.ParseInt(vars["timetableId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /timetables/{id} - Invalid timetable ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTimetableID)
		return
	}

	if err := h.service.Delete(r.Context(), timetableID); err != nil {
		switch {
		case errors.Is(err, timetables.ErrTimetableNotFound):
			h.logger.Warn("DELETE /timetables/{id} - Timetable not found: timetable_id=%d", timetableID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /timetables/{id} - Failed to delete timetable: timetable_id=%d, error=%v",
				timetableID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /timetables/{id} - Timetable deleted: timetable_id=%d", timetableID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
