package cancel_timetable_date

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TimetableService/internal/api/handlers"
	cancelDate "github.com/m04kA/SMC-TimetableService/internal/usecase/cancel_date"
)

const (
	msgInvalidTimetableID = "некорректный ID расписания"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается dd/mm/yyyy"
	msgNotFound           = "расписание не найдено"
)

type Handler struct {
	useCase CancelDateUseCase
	logger  Logger
}

func NewHandler(useCase CancelDateUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/timetables/{timetableId}/cancellations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	timetableID, err := strconv.ParseInt(vars["timetableId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /timetables/{id}/cancellations - Invalid timetable ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTimetableID)
		return
	}

	var req CancelDateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /timetables/{id}/cancellations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &cancelDate.Request{
		TimetableID: timetableID,
		Date:        req.Date,
	})
	if err != nil {
		switch {
		case errors.Is(err, cancelDate.ErrTimetableNotFound):
			h.logger.Warn("POST /timetables/{id}/cancellations - Timetable not found: timetable_id=%d", timetableID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, cancelDate.ErrMalformedDate), errors.Is(err, cancelDate.ErrInvalidInput):
			h.logger.Warn("POST /timetables/{id}/cancellations - Invalid date %q: timetable_id=%d", req.Date, timetableID)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("POST /timetables/{id}/cancellations - Failed to cancel date: timetable_id=%d, error=%v",
				timetableID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /timetables/{id}/cancellations - Date cancelled: timetable_id=%d, date=%s",
		timetableID, req.Date)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
