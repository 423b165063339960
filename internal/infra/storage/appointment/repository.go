package appointment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/teebhagg/Zaina-Hair-Studio-sub000/internal/domain"
	"github.com/teebhagg/Zaina-Hair-Studio-sub000/pkg/dbmetrics"
	"github.com/teebhagg/Zaina-Hair-Studio-sub000/pkg/psqlbuilder"
	"github.com/teebhagg/Zaina-Hair-Studio-sub000/pkg/types"
)

var columns = []string{
	"id",
	"customer_id",
	"service_slug",
	"service_name",
	"service_type",
	"appointment_date",
	"appointment_time",
	"duration_minutes",
	"status",
	"note",
	"source",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с записями
type Repository struct {
	db  DBExecutor
	loc *time.Location
}

// NewRepository создает новый экземпляр репозитория записей
// loc - часовой пояс бизнеса, в котором интерпретируются даты записей
func NewRepository(db DBExecutor, loc *time.Location) *Repository {
	if loc == nil {
		loc = time.Local
	}
	return &Repository{db: db, loc: loc}
}

// Create создает новую запись
// Если в контексте передана активная транзакция, использует её
func (r *Repository) Create(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("appointments").
		Columns(
			"customer_id",
			"service_slug",
			"service_name",
			"service_type",
			"appointment_date",
			"appointment_time",
			"duration_minutes",
			"status",
			"note",
			"source",
		).
		Values(
			appointment.CustomerID,
			appointment.ServiceSlug,
			appointment.ServiceName,
			nullString(appointment.ServiceType),
			appointment.Date.Format(domain.DateFormat),
			appointment.Time,
			appointment.DurationMinutes,
			appointment.Status,
			appointment.Note,
			appointment.Source,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&appointment.ID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	appointment.CreatedAt = createdAt.Time
	appointment.UpdatedAt = updatedAt.Time

	return appointment, nil
}

// GetByID получает запись по ID
// Внутри транзакции строка блокируется (FOR UPDATE)
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From("appointments").
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	appointment, err := r.scanAppointment(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan appointment: %w", ErrScanRow, err)
	}

	return appointment, nil
}

// GetActiveByDate получает неотмененные записи на дату, отсортированные по времени
func (r *Repository) GetActiveByDate(ctx context.Context, date time.Time) ([]*domain.Appointment, error) {
	return r.List(ctx, domain.AppointmentsFilter{Date: &date})
}

// GetActiveByDateAndTime получает неотмененные записи на точное время даты
// Внутри транзакции строки блокируются (FOR UPDATE) - используется при допуске новой записи
func (r *Repository) GetActiveByDateAndTime(ctx context.Context, date time.Time, startTime types.TimeString) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From("appointments").
		Where(squirrel.Eq{
			"appointment_date": date.Format(domain.DateFormat),
			"appointment_time": startTime,
		}).
		Where(squirrel.NotEq{"status": domain.StatusCancelled}).
		OrderBy("id ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByDateAndTime - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByDateAndTime - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanAppointments(rows)
}

// List получает записи с фильтрацией
// Поддерживает фильтрацию по:
// - дате (Date) - опционально
// - моменту последнего изменения (UpdatedSince) - опционально
// - включению отмененных записей (IncludeCancelled)
//
// Для конкретной даты сортирует по времени начала, для ленты изменений - по updated_at
func (r *Repository) List(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).From("appointments")

	if filter.Date != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"appointment_date": filter.Date.Format(domain.DateFormat)})
	}
	if filter.UpdatedSince != nil {
		selectBuilder = selectBuilder.Where(squirrel.Gt{"updated_at": *filter.UpdatedSince})
	}
	if !filter.IncludeCancelled {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": domain.StatusCancelled})
	}

	switch {
	case filter.UpdatedSince != nil:
		selectBuilder = selectBuilder.OrderBy("updated_at ASC", "id ASC")
	case filter.Date != nil:
		selectBuilder = selectBuilder.OrderBy("appointment_time ASC", "id ASC")
	default:
		selectBuilder = selectBuilder.OrderBy("appointment_date DESC", "appointment_time DESC")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanAppointments(rows)
}

// UpdateStatus обновляет статус записи
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointments").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %w", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanAppointment(row rowScanner) (*domain.Appointment, error) {
	var (
		appointment          domain.Appointment
		serviceType          sql.NullString
		date                 time.Time
		duration             sql.NullInt64
		note                 sql.NullString
		createdAt, updatedAt sql.NullTime
	)

	err := row.Scan(
		&appointment.ID,
		&appointment.CustomerID,
		&appointment.ServiceSlug,
		&appointment.ServiceName,
		&serviceType,
		&date,
		&appointment.Time,
		&duration,
		&appointment.Status,
		&note,
		&appointment.Source,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	// DATE приходит как полночь UTC, переносим календарную дату в часовой пояс бизнеса
	appointment.Date = time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, r.loc)
	appointment.ServiceType = serviceType.String
	if duration.Valid {
		d := int(duration.Int64)
		appointment.DurationMinutes = &d
	}
	if note.Valid {
		appointment.Note = &note.String
	}
	appointment.CreatedAt = createdAt.Time
	appointment.UpdatedAt = updatedAt.Time

	return &appointment, nil
}

// scanAppointments сканирует результаты запроса в слайс записей
func (r *Repository) scanAppointments(rows *sql.Rows) ([]*domain.Appointment, error) {
	appointments := make([]*domain.Appointment, 0)

	for rows.Next() {
		appointment, err := r.scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanAppointments - scan row: %w", ErrScanRow, err)
		}
		appointments = append(appointments, appointment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanAppointments - rows error: %w", ErrScanRow, err)
	}

	return appointments, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
