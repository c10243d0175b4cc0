package timetable

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-TimetableService/internal/domain"
	"github.com/m04kA/SMC-TimetableService/pkg/dbmetrics"
	"github.com/m04kA/SMC-TimetableService/pkg/psqlbuilder"
)

// Разделитель дат отмен в колонке cancel_dates
const cancelDatesSeparator = ","

var timetableColumns = []string{
	"id",
	"name",
	"semester_id",
	"day_of_week",
	"room_id",
	"room_name",
	"instructor_id",
	"class_id",
	"start_lesson",
	"end_lesson",
	"study_time",
	"cancel_dates",
	"number_of_students",
	"status",
	"description",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с расписаниями
// Периоды хранятся в текстовом формате study_time (dd/mm/yyyy, построчно),
// сериализацию выполняет доменный слой
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписаний
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое расписание
// Если в контексте передана активная транзакция (через context.Value), использует её
func (r *Repository) Create(ctx context.Context, t *domain.Timetable) (*domain.Timetable, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("timetables").
		Columns(
			"name",
			"semester_id",
			"day_of_week",
			"room_id",
			"room_name",
			"instructor_id",
			"class_id",
			"start_lesson",
			"end_lesson",
			"study_time",
			"cancel_dates",
			"number_of_students",
			"status",
			"description",
		).
		Values(
			t.Name,
			t.SemesterID,
			int(t.DayOfWeek),
			t.RoomID,
			t.RoomName,
			t.InstructorID,
			t.ClassID,
			t.StartLesson,
			t.EndLesson,
			domain.FormatStudyPeriods(t.StudyPeriods),
			formatCancelDates(t.CancelDates),
			t.NumberOfStudents,
			t.Status,
			t.Description,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&t.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	t.CreatedAt = createdAt.Time
	t.UpdatedAt = updatedAt.Time

	return t, nil
}

// GetByID получает расписание по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Timetable, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(timetableColumns...).
		From("timetables").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	timetables, err := r.scanTimetables(rows)
	if err != nil {
		return nil, err
	}
	if len(timetables) == 0 {
		return nil, ErrTimetableNotFound
	}

	return timetables[0], nil
}

// GetWithFilter получает расписания с гибкой фильтрацией
//
// Внутри транзакции при заданных RoomID и DayOfWeek добавляет FOR UPDATE:
// это область блокировки для проверки конфликтов при создании
func (r *Repository) GetWithFilter(ctx context.Context, filter domain.TimetableFilter) ([]*domain.Timetable, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(timetableColumns...).
		From("timetables")

	// Фильтрация по аудитории
	if filter.RoomID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"room_id": *filter.RoomID})
	}

	// Фильтрация по дню недели
	if filter.DayOfWeek != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"day_of_week": int(*filter.DayOfWeek)})
	}

	// Фильтрация по семестру
	if filter.SemesterID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"semester_id": *filter.SemesterID})
	}

	// Фильтрация по преподавателю
	if filter.InstructorID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"instructor_id": *filter.InstructorID})
	}

	// Неактивные статусы исключаются, если явно не запрошены отклоненные
	if !filter.IncludeRejected {
		inactiveStatusStrings := make([]string, len(domain.InactiveStatuses))
		for i, s := range domain.InactiveStatuses {
			inactiveStatusStrings[i] = string(s)
		}
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": inactiveStatusStrings})
	}

	selectBuilder = selectBuilder.OrderBy("day_of_week ASC, start_lesson ASC, id ASC")

	// Если используется транзакция, блокируем строки области конфликта
	if dbmetrics.IsInTransaction(ctx) && filter.RoomID != nil && filter.DayOfWeek != nil {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanTimetables(rows)
}

// GetBySemester получает все расписания семестра
// Используется для вычисления границ первой и последней учебной недели
func (r *Repository) GetBySemester(ctx context.Context, semesterID int64) ([]*domain.Timetable, error) {
	return r.GetWithFilter(ctx, domain.TimetableFilter{
		SemesterID:      &semesterID,
		IncludeRejected: true,
	})
}

// ExistsByNameAndSemester проверяет наличие расписания с таким именем в семестре
func (r *Repository) ExistsByNameAndSemester(ctx context.Context, name string, semesterID int64) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From("timetables").
		Where(squirrel.Eq{"name": name, "semester_id": semesterID}).
		Limit(1).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: ExistsByNameAndSemester - build select query: %v", ErrBuildQuery, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: ExistsByNameAndSemester - execute query: %v", ErrExecQuery, err)
	}

	return true, nil
}

// ExistsByNameAndSemesterExcluding проверяет занятость имени в семестре,
// не считая само обновляемое расписание
func (r *Repository) ExistsByNameAndSemesterExcluding(ctx context.Context, name string, semesterID, excludeID int64) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From("timetables").
		Where(squirrel.Eq{"name": name, "semester_id": semesterID}).
		Where(squirrel.NotEq{"id": excludeID}).
		Limit(1).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: ExistsByNameAndSemesterExcluding - build select query: %v", ErrBuildQuery, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: ExistsByNameAndSemesterExcluding - execute query: %v", ErrExecQuery, err)
	}

	return true, nil
}

// Update перезаписывает изменяемые поля расписания
// Статус меняется отдельной операцией UpdateStatus
func (r *Repository) Update(ctx context.Context, t *domain.Timetable) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("timetables").
		Set("name", t.Name).
		Set("semester_id", t.SemesterID).
		Set("day_of_week", int(t.DayOfWeek)).
		Set("room_id", t.RoomID).
		Set("room_name", t.RoomName).
		Set("instructor_id", t.InstructorID).
		Set("class_id", t.ClassID).
		Set("start_lesson", t.StartLesson).
		Set("end_lesson", t.EndLesson).
		Set("study_time", domain.FormatStudyPeriods(t.StudyPeriods)).
		Set("cancel_dates", formatCancelDates(t.CancelDates)).
		Set("number_of_students", t.NumberOfStudents).
		Set("description", t.Description).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": t.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, query, args, "Update")
}

// UpdateStatus обновляет статус расписания
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.TimetableStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("timetables").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, query, args, "UpdateStatus")
}

// UpdateCancelDates перезаписывает список дат отмен расписания
func (r *Repository) UpdateCancelDates(ctx context.Context, id int64, cancelDates []time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("timetables").
		Set("cancel_dates", formatCancelDates(cancelDates)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateCancelDates - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, query, args, "UpdateCancelDates")
}

// Delete удаляет расписание (физическое удаление)
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("timetables").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, query, args, "Delete")
}

func (r *Repository) execExpectingRow(ctx context.Context, executor DBExecutor, query string, args []interface{}, op string) error {
	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute: %v", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}

	if rowsAffected == 0 {
		return ErrTimetableNotFound
	}

	return nil
}

// scanTimetables сканирует результаты запроса в слайс расписаний
func (r *Repository) scanTimetables(rows *sql.Rows) ([]*domain.Timetable, error) {
	timetables := make([]*domain.Timetable, 0)

	for rows.Next() {
		var (
			t               domain.Timetable
			dayOfWeek       int
			studyTime       string
			cancelDatesText string
			createdAt       sql.NullTime
			updatedAt       sql.NullTime
		)

		err := rows.Scan(
			&t.ID,
			&t.Name,
			&t.SemesterID,
			&dayOfWeek,
			&t.RoomID,
			&t.RoomName,
			&t.InstructorID,
			&t.ClassID,
			&t.StartLesson,
			&t.EndLesson,
			&studyTime,
			&cancelDatesText,
			&t.NumberOfStudents,
			&t.Status,
			&t.Description,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanTimetables - scan row: %v", ErrScanRow, err)
		}

		t.DayOfWeek = time.Weekday(dayOfWeek)

		t.StudyPeriods, err = domain.ParseStudyPeriods(studyTime)
		if err != nil {
			return nil, fmt.Errorf("%w: scanTimetables - parse study_time for id=%d: %v", ErrScanRow, t.ID, err)
		}

		t.CancelDates, err = parseCancelDates(cancelDatesText)
		if err != nil {
			return nil, fmt.Errorf("%w: scanTimetables - parse cancel_dates for id=%d: %v", ErrScanRow, t.ID, err)
		}

		t.CreatedAt = createdAt.Time
		t.UpdatedAt = updatedAt.Time

		timetables = append(timetables, &t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanTimetables - rows error: %v", ErrScanRow, err)
	}

	return timetables, nil
}

func formatCancelDates(dates []time.Time) string {
	tokens := make([]string, 0, len(dates))
	for _, d := range dates {
		tokens = append(tokens, d.Format(domain.DateFormat))
	}
	return strings.Join(tokens, cancelDatesSeparator)
}

func parseCancelDates(text string) ([]time.Time, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	tokens := strings.Split(text, cancelDatesSeparator)
	dates := make([]time.Time, 0, len(tokens))
	for _, token := range tokens {
		d, err := domain.ParseDate(token)
		if err != nil {
			return nil, err
		}
		dates = append(dates, d)
	}

	return dates, nil
}
