package schedule

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/teebhagg/Zaina-Hair-Studio-sub000/internal/domain"
	"github.com/teebhagg/Zaina-Hair-Studio-sub000/pkg/dbmetrics"
	"github.com/teebhagg/Zaina-Hair-Studio-sub000/pkg/psqlbuilder"
)

// Repository репозиторий рабочего расписания салона
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписания
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetAll получает сохраненные настройки дней недели
// Пустой результат - допустимое состояние (расписание еще не настроено)
func (r *Repository) GetAll(ctx context.Context) ([]domain.WorkDaySetting, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("day", "is_open", "start_time", "end_time", "updated_at").
		From("work_day_settings").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	settings := make([]domain.WorkDaySetting, 0, len(domain.Weekdays))
	for rows.Next() {
		var (
			s         domain.WorkDaySetting
			updatedAt sql.NullTime
		)
		if err := rows.Scan(&s.Day, &s.IsOpen, &s.StartTime, &s.EndTime, &updatedAt); err != nil {
			return nil, fmt.Errorf("%w: GetAll - scan row: %w", ErrScanRow, err)
		}
		s.UpdatedAt = updatedAt.Time
		settings = append(settings, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetAll - rows error: %w", ErrScanRow, err)
	}

	return settings, nil
}

// Upsert сохраняет настройки дней (вставка или обновление по day)
func (r *Repository) Upsert(ctx context.Context, settings []domain.WorkDaySetting) error {
	if len(settings) == 0 {
		return nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	insert := psqlbuilder.Insert("work_day_settings").
		Columns("day", "is_open", "start_time", "end_time")
	for _, s := range settings {
		insert = insert.Values(s.Day, s.IsOpen, s.StartTime, s.EndTime)
	}

	query, args, err := insert.
		Suffix("ON CONFLICT (day) DO UPDATE SET " +
			"is_open = EXCLUDED.is_open, " +
			"start_time = EXCLUDED.start_time, " +
			"end_time = EXCLUDED.end_time, " +
			"updated_at = NOW()").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Upsert - execute insert: %w", ErrExecQuery, err)
	}

	return nil
}
