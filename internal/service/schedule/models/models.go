package models

import (
	"time"

	"github.com/teebhagg/Zaina-Hair-Studio-sub000/internal/domain"
	"github.com/teebhagg/Zaina-Hair-Studio-sub000/pkg/types"
)

// Request модели

// WorkDayRequest настройка одного дня недели
type WorkDayRequest struct {
	Day       string `json:"day"`       // "Monday" ... "Sunday"
	IsOpen    bool   `json:"isOpen"`
	StartTime string `json:"startTime"` // "09:00"
	EndTime   string `json:"endTime"`   // "18:00"
}

// UpdateScheduleRequest запрос на обновление расписания
// Передаются только изменяемые дни, остальные остаются без изменений
type UpdateScheduleRequest struct {
	Days []WorkDayRequest `json:"days"`
}

// Response модели

// WorkDayResponse настройка дня недели
type WorkDayResponse struct {
	Day       string     `json:"day"`
	IsOpen    bool       `json:"isOpen"`
	StartTime string     `json:"startTime,omitempty"`
	EndTime   string     `json:"endTime,omitempty"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// ScheduleResponse расписание на все семь дней недели
type ScheduleResponse struct {
	Days []WorkDayResponse `json:"days"`
}

// Методы конвертации

// FromDomainSchedule конвертирует расписание в DTO (всегда 7 дней, начиная с понедельника)
func FromDomainSchedule(schedule *domain.WorkSchedule) *ScheduleResponse {
	days := schedule.Days()
	resp := &ScheduleResponse{
		Days: make([]WorkDayResponse, 0, len(days)),
	}

	for _, d := range days {
		item := WorkDayResponse{
			Day:       d.Day,
			IsOpen:    d.IsOpen,
			StartTime: d.StartTime.String(),
			EndTime:   d.EndTime.String(),
		}
		if !d.UpdatedAt.IsZero() {
			updatedAt := d.UpdatedAt
			item.UpdatedAt = &updatedAt
		}
		resp.Days = append(resp.Days, item)
	}

	return resp
}

// ToDomainSetting конвертирует запрос в domain модель без валидации
func (r WorkDayRequest) ToDomainSetting() domain.WorkDaySetting {
	return domain.WorkDaySetting{
		Day:       r.Day,
		IsOpen:    r.IsOpen,
		StartTime: types.TimeString(r.StartTime),
		EndTime:   types.TimeString(r.EndTime),
	}
}
