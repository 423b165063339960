package schedule

import (
	"context"
	"fmt"

	"github.com/teebhagg/Zaina-Hair-Studio-sub000/internal/domain"
	"github.com/teebhagg/Zaina-Hair-Studio-sub000/internal/service/schedule/models"
	"github.com/teebhagg/Zaina-Hair-Studio-sub000/pkg/types"
)

// Service сервис для работы с рабочим расписанием салона
type Service struct {
	scheduleRepo ScheduleRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса расписания
func NewService(scheduleRepo ScheduleRepository, logger Logger) *Service {
	return &Service{
		scheduleRepo: scheduleRepo,
		logger:       logger,
	}
}

// Load загружает расписание как доменную сущность
// Отсутствие настроек - валидное состояние (все дни закрыты)
func (s *Service) Load(ctx context.Context) (*domain.WorkSchedule, error) {
	settings, err := s.scheduleRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error("Load: repository error: %v", err)
		return nil, fmt.Errorf("%w: Load - repository error: %v", ErrInternal, err)
	}
	return domain.NewWorkSchedule(settings), nil
}

// Get возвращает расписание на все дни недели
func (s *Service) Get(ctx context.Context) (*models.ScheduleResponse, error) {
	schedule, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}
	return models.FromDomainSchedule(schedule), nil
}

// Update сохраняет настройки переданных дней и возвращает итоговое расписание
func (s *Service) Update(ctx context.Context, req *models.UpdateScheduleRequest) (*models.ScheduleResponse, error) {
	s.logger.Info("Update: updating %d work days", len(req.Days))

	// 1. Валидируем и нормализуем входные данные
	settings, err := s.validateDays(req.Days)
	if err != nil {
		s.logger.Warn("Update: validation failed: %v", err)
		return nil, err
	}

	// 2. Сохраняем настройки
	if err := s.scheduleRepo.Upsert(ctx, settings); err != nil {
		s.logger.Error("Update: repository error: %v", err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	// 3. Возвращаем актуальное состояние
	resp, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Update: successfully updated work schedule")
	return resp, nil
}

// validateDays проверяет названия дней и время работы
func (s *Service) validateDays(days []models.WorkDayRequest) ([]domain.WorkDaySetting, error) {
	if len(days) == 0 {
		return nil, fmt.Errorf("%w: days are required", ErrInvalidInput)
	}

	seen := make(map[string]struct{}, len(days))
	settings := make([]domain.WorkDaySetting, 0, len(days))

	for _, d := range days {
		if !domain.IsWeekday(d.Day) {
			return nil, fmt.Errorf("%w: unknown day %q", ErrInvalidInput, d.Day)
		}
		if _, dup := seen[d.Day]; dup {
			return nil, fmt.Errorf("%w: day %q is listed twice", ErrInvalidInput, d.Day)
		}
		seen[d.Day] = struct{}{}

		setting := d.ToDomainSetting()

		// Для закрытого дня время необязательно
		if !d.IsOpen && d.StartTime == "" && d.EndTime == "" {
			settings = append(settings, setting)
			continue
		}

		start, err := types.NewTimeStringFromString(d.StartTime)
		if err != nil {
			return nil, fmt.Errorf("%w: %s startTime: %v", ErrInvalidInput, d.Day, err)
		}
		end, err := types.NewTimeStringFromString(d.EndTime)
		if err != nil {
			return nil, fmt.Errorf("%w: %s endTime: %v", ErrInvalidInput, d.Day, err)
		}
		if d.IsOpen && !start.IsBefore(end) {
			return nil, fmt.Errorf("%w: %s startTime must be before endTime", ErrInvalidInput, d.Day)
		}

		setting.StartTime = start
		setting.EndTime = end
		settings = append(settings, setting)
	}

	return settings, nil
}
