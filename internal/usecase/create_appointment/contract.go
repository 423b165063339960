package create_appointment

import (
	"context"
	"time"

	"github.com/teebhagg/Zaina-Hair-Studio-sub000/internal/domain"
	"github.com/teebhagg/Zaina-Hair-Studio-sub000/internal/integrations/catalog"
	"github.com/teebhagg/Zaina-Hair-Studio-sub000/pkg/types"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	Create(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error)
	// GetActiveByDateAndTime внутри транзакции блокирует строки (FOR UPDATE)
	GetActiveByDateAndTime(ctx context.Context, date time.Time, startTime types.TimeString) ([]*domain.Appointment, error)
}

// CustomerRepository интерфейс репозитория клиентов
type CustomerRepository interface {
	// Upsert находит клиента по email или создает нового
	Upsert(ctx context.Context, customer *domain.Customer) (*domain.Customer, error)
}

// ServiceCatalog каталог услуг
type ServiceCatalog interface {
	GetService(ctx context.Context, slug string) (*catalog.Service, error)
}

// SlotLocker распределенная блокировка слота (date, time)
type SlotLocker interface {
	Lock(ctx context.Context, key string, ttl, wait time.Duration) (string, error)
	Unlock(ctx context.Context, key, token string) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics метрики допуска записей
type Metrics interface {
	IncAdmission(outcome string)
	IncDegraded(dependency string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
