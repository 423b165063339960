package busyperiods

import (
	"context"
	"time"

	"github.com/teebhagg/Zaina-Hair-Studio-sub000/internal/integrations/catalog"
	"github.com/teebhagg/Zaina-Hair-Studio-sub000/internal/integrations/gcalendar"
)

// CalendarSource источник занятых событий внешнего календаря
type CalendarSource interface {
	ListBusyEvents(ctx context.Context, from, to time.Time) ([]gcalendar.Event, error)
}

// ServiceCatalog каталог услуг (длительность по slug)
type ServiceCatalog interface {
	GetService(ctx context.Context, slug string) (*catalog.Service, error)
}

// Metrics счетчик деградировавших внешних запросов
type Metrics interface {
	IncDegraded(dependency string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
