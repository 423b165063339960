package create_appointment

import (
	"time"

	"github.com/teebhagg/Zaina-Hair-Studio-sub000/internal/domain"
	"github.com/teebhagg/Zaina-Hair-Studio-sub000/pkg/types"
)

// Options параметры допуска записей
type Options struct {
	Limits           domain.CapacityLimits
	SnapshotDuration bool          // Фиксировать длительность услуги в записи
	LockTTL          time.Duration // Время жизни блокировки слота
	LockWait         time.Duration // Сколько ждать освобождения слота
}

// Request модель запроса на создание записи
type Request struct {
	Source domain.AppointmentSource // Канал: сайт или партнерское приложение

	CustomerName  string
	CustomerEmail string
	CustomerPhone *string

	ServiceSlug string // slug услуги в каталоге
	ServiceType string // Категория, используется только без каталога

	Date time.Time        // Дата записи в часовом поясе салона
	Time types.TimeString // Время начала (например, "10:00")
	Note *string          // Комментарий клиента (опционально)
}

// Response модель ответа с созданной записью
type Response struct {
	ID              int64
	CustomerID      int64
	ServiceSlug     string
	ServiceName     string
	ServiceType     string
	Date            time.Time
	Time            types.TimeString
	DurationMinutes int // Длительность, с которой запись прошла допуск
	Status          domain.AppointmentStatus
	Source          domain.AppointmentSource
	Note            *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
