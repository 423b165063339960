package catalog

import "context"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Source источник данных об услугах (HTTP клиент или кеш поверх него)
type Source interface {
	GetService(ctx context.Context, slug string) (*Service, error)
}
