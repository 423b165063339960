package schedule

import (
	"context"

	"github.com/teebhagg/Zaina-Hair-Studio-sub000/internal/domain"
)

// ScheduleRepository интерфейс репозитория рабочего расписания
type ScheduleRepository interface {
	GetAll(ctx context.Context) ([]domain.WorkDaySetting, error)
	Upsert(ctx context.Context, settings []domain.WorkDaySetting) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
