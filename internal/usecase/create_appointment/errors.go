package create_appointment

import (
	"errors"

	"github.com/teebhagg/Zaina-Hair-Studio-sub000/internal/domain"
)

var (
	// ErrSlotFull возвращается, когда на это время уже максимум записей
	ErrSlotFull = domain.ErrSlotFull

	// ErrServiceTypeLimit возвращается, когда на это время уже максимум разных категорий услуг
	ErrServiceTypeLimit = domain.ErrServiceTypeLimit

	// ErrSlotBusy возвращается, когда слот прямо сейчас бронирует другой клиент (можно повторить)
	ErrSlotBusy = errors.New("this time slot is being booked right now, please try again")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)
