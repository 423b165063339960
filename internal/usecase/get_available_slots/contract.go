package get_available_slots

import (
	"context"
	"time"

	"github.com/teebhagg/Zaina-Hair-Studio-sub000/internal/domain"
)

// ScheduleRepository интерфейс репозитория рабочего расписания
type ScheduleRepository interface {
	GetAll(ctx context.Context) ([]domain.WorkDaySetting, error)
}

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	// GetActiveByDate получает все неотмененные записи на дату
	GetActiveByDate(ctx context.Context, date time.Time) ([]*domain.Appointment, error)
}

// BusyPeriods агрегатор занятых интервалов
type BusyPeriods interface {
	CalendarIntervals(ctx context.Context, date time.Time) []domain.BusyInterval
	AppointmentIntervals(ctx context.Context, date time.Time, appointments []*domain.Appointment) []domain.BusyInterval
}

// Metrics метрики запросов слотов
type Metrics interface {
	ObserveSlotQuery(open bool, slots int)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
