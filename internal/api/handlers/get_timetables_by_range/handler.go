package get_timetables_by_range

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-TimetableService/internal/api/handlers"
	"github.com/m04kA/SMC-TimetableService/internal/service/timetables"
	"github.com/m04kA/SMC-TimetableService/internal/service/timetables/models"
)

const (
	msgMissingDates    = "не указаны параметры start и end"
	msgInvalidDate     = "некорректный формат даты, ожидается dd/mm/yyyy"
	msgInvalidWindow   = "конец окна раньше начала"
	msgInvalidSemester = "некорректный semesterId"
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

// Handle GET /api/v1/timetables/range?start=dd/mm/yyyy&end=dd/mm/yyyy&semesterId=N
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	start := query.Get("start")
	end := query.Get("end")
	if start == "" || end == "" {
		h.logger.Warn("GET /timetables/range - Missing start or end parameter")
		handlers.RespondBadRequest(w, msgMissingDates)
		return
	}

	req := &models.GetByRangeRequest{
		StartDate: start,
		EndDate:   end,
	}

	if semesterIDStr := query.Get("semesterId"); semesterIDStr != "" {
		semesterID, err := strconv.ParseInt(semesterIDStr, 10, 64)
		if err != nil {
			h.logger.Warn("GET /timetables/range - Invalid semesterId %q", semesterIDStr)
			handlers.RespondBadRequest(w, msgInvalidSemester)
			return
		}
		req.SemesterID = &semesterID
	}

	result, err := h.service.GetByRange(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, timetables.ErrInvalidDate):
			h.logger.Warn("GET /timetables/range - Invalid date: start=%q, end=%q", start, end)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, timetables.ErrInvalidInput):
			h.logger.Warn("GET /timetables/range - Invalid window: start=%q, end=%q", start, end)
			handlers.RespondBadRequest(w, msgInvalidWindow)

		default:
			h.logger.Error("GET /timetables/range - Failed to fetch timetables: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /timetables/range - Fetched %d timetables for window %s to %s",
		len(result.Timetables), start, end)
	handlers.RespondJSON(w, http.StatusOK, result)
}
