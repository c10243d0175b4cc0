package get_timetables_by_date

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-TimetableService/internal/api/handlers"
	"github.com/m04kA/SMC-TimetableService/internal/service/timetables"
	"github.com/m04kA/SMC-TimetableService/internal/service/timetables/models"
)

const (
	msgMissingDate = "не указан параметр date"
	msgInvalidDate = "некорректный формат даты, ожидается dd/mm/yyyy"
	msgInvalidRoom = "некорректный roomId"
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

// Handle GET /api/v1/timetables?date=dd/mm/yyyy&roomId=N
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	date := query.Get("date")
	if date == "" {
		h.logger.Warn("GET /timetables - Missing date parameter")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	req := &models.GetByDateRequest{Date: date}

	if roomIDStr := query.Get("roomId"); roomIDStr != "" {
		roomID, err := strconv.ParseInt(roomIDStr, 10, 64)
		if err != nil {
			h.logger.Warn("GET /timetables - Invalid roomId %q", roomIDStr)
			handlers.RespondBadRequest(w, msgInvalidRoom)
			return
		}
		req.RoomID = &roomID
	}

	result, err := h.service.GetByDate(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, timetables.ErrInvalidDate):
			h.logger.Warn("GET /timetables - Invalid date %q", date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /timetables - Failed to fetch timetables: date=%s, error=%v", date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /timetables - Fetched %d timetables for date=%s", len(result.Timetables), date)
	handlers.RespondJSON(w, http.StatusOK, result)
}
