package get_available_slots

import (
	"time"

	"github.com/teebhagg/Zaina-Hair-Studio-sub000/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	Date            time.Time // Дата в часовом поясе салона (время игнорируется)
	DurationMinutes int       // Длительность услуги, 0 = по умолчанию (60)
	ServiceType     string    // Категория услуги (опционально, включает проверку вместимости)
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date  time.Time          // Дата, на которую запрашивались слоты
	Slots []types.TimeString // Время начала доступных слотов по возрастанию
}
