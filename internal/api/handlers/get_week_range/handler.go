package get_week_range

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-TimetableService/internal/api/handlers"
	getWeekRange "github.com/m04kA/SMC-TimetableService/internal/usecase/get_week_range"
)

const (
	msgInvalidSemester = "некорректный semesterId"
	msgNoStudyPeriods  = "в семестре нет расписаний с учебными периодами"
)

type Handler struct {
	useCase GetWeekRangeUseCase
	logger  Logger
}

func NewHandler(useCase GetWeekRangeUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/timetables/weeks?semesterId=N
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	semesterIDStr := r.URL.Query().Get("semesterId")
	semesterID, err := strconv.ParseInt(semesterIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /timetables/weeks - Invalid semesterId %q", semesterIDStr)
		handlers.RespondBadRequest(w, msgInvalidSemester)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getWeekRange.Request{SemesterID: semesterID})
	if err != nil {
		switch {
		case errors.Is(err, getWeekRange.ErrNoStudyPeriods):
			h.logger.Warn("GET /timetables/weeks - No study periods: semester_id=%d", semesterID)
			handlers.RespondNotFound(w, msgNoStudyPeriods)

		case errors.Is(err, getWeekRange.ErrInvalidInput):
			h.logger.Warn("GET /timetables/weeks - Invalid semesterId=%d", semesterID)
			handlers.RespondBadRequest(w, msgInvalidSemester)

		default:
			h.logger.Error("GET /timetables/weeks - Failed to derive week range: semester_id=%d, error=%v",
				semesterID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /timetables/weeks - Week range derived: semester_id=%d", semesterID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
