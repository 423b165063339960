package gcalendar

import "errors"

var (
	// ErrCredentials возвращается при некорректных учетных данных Google
	ErrCredentials = errors.New("gcalendar: invalid credentials")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("gcalendar client: internal error")

	// ErrInvalidResponse возвращается при некорректном событии в ответе
	ErrInvalidResponse = errors.New("gcalendar client: invalid response")
)
