package lessontime

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-TimetableService/internal/domain"
	"github.com/m04kA/SMC-TimetableService/pkg/dbmetrics"
	"github.com/m04kA/SMC-TimetableService/pkg/psqlbuilder"
)

// unique_violation
const pgUniqueViolation = "23505"

// Repository репозиторий справочника пар (номер, время начала и конца, сессия)
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория пар
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает пару в справочнике
func (r *Repository) Create(ctx context.Context, lt *domain.LessonTime) (*domain.LessonTime, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("lesson_times").
		Columns("lesson_number", "start_time", "end_time", "session").
		Values(lt.LessonNumber, lt.StartTime, lt.EndTime, lt.Session).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&lt.ID, &createdAt, &updatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pgUniqueViolation {
			return nil, ErrLessonNumberTaken
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	lt.CreatedAt = createdAt.Time
	lt.UpdatedAt = updatedAt.Time

	return lt, nil
}

// GetByNumber получает пару по её номеру
func (r *Repository) GetByNumber(ctx context.Context, number int) (*domain.LessonTime, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "lesson_number", "start_time", "end_time", "session", "created_at", "updated_at").
		From("lesson_times").
		Where(squirrel.Eq{"lesson_number": number}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByNumber - build select query: %v", ErrBuildQuery, err)
	}

	lt, err := r.scanLessonTime(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrLessonTimeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByNumber - scan lesson time: %v", ErrScanRow, err)
	}

	return lt, nil
}

// List возвращает весь справочник, упорядоченный по номеру пары
func (r *Repository) List(ctx context.Context) ([]*domain.LessonTime, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "lesson_number", "start_time", "end_time", "session", "created_at", "updated_at").
		From("lesson_times").
		OrderBy("lesson_number ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	lessonTimes := make([]*domain.LessonTime, 0)
	for rows.Next() {
		var lt domain.LessonTime
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(&lt.ID, &lt.LessonNumber, &lt.StartTime, &lt.EndTime, &lt.Session, &createdAt, &updatedAt)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}

		lt.CreatedAt = createdAt.Time
		lt.UpdatedAt = updatedAt.Time
		lessonTimes = append(lessonTimes, &lt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return lessonTimes, nil
}

func (r *Repository) scanLessonTime(row *sql.Row) (*domain.LessonTime, error) {
	var lt domain.LessonTime
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(&lt.ID, &lt.LessonNumber, &lt.StartTime, &lt.EndTime, &lt.Session, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	lt.CreatedAt = createdAt.Time
	lt.UpdatedAt = updatedAt.Time

	return &lt, nil
}
