package locker

import "errors"

var (
	// ErrLockTimeout возвращается, когда блокировку не удалось получить за отведенное время
	ErrLockTimeout = errors.New("locker: lock wait timeout")

	// ErrLockNotOwned возвращается при попытке снять чужую или истекшую блокировку
	ErrLockNotOwned = errors.New("locker: lock not owned")

	// ErrRedis возвращается при ошибках обращения к Redis
	ErrRedis = errors.New("locker: redis error")
)
