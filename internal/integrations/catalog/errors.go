package catalog

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуги с таким slug нет в каталоге
	ErrServiceNotFound = errors.New("catalog: service not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("catalog client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от Sanity
	ErrInvalidResponse = errors.New("catalog client: invalid response")

	// ErrServiceDegraded возвращается при применении graceful degradation
	// Каталог недоступен, вызывающий код использует длительность по умолчанию
	ErrServiceDegraded = errors.New("catalog unavailable: graceful degradation applied")
)
