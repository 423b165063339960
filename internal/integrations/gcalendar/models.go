package gcalendar

import "time"

// Event занятое событие календаря
// Для событий на весь день Start и End - полночь первого дня и дня после последнего
type Event struct {
	ID     string
	Start  time.Time
	End    time.Time
	AllDay bool
}

// Credentials учетные данные Google
// Если задан ServiceAccountJSON, используется сервисный аккаунт, иначе refresh token владельца календаря
type Credentials struct {
	ServiceAccountJSON []byte
	ClientID           string
	ClientSecret       string
	RefreshToken       string
}
