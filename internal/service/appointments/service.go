package appointments

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/teebhagg/Zaina-Hair-Studio-sub000/internal/domain"
	appointmentRepo "github.com/teebhagg/Zaina-Hair-Studio-sub000/internal/infra/storage/appointment"
	"github.com/teebhagg/Zaina-Hair-Studio-sub000/internal/service/appointments/models"
)

// Service сервис администрирования записей
type Service struct {
	appointmentRepo AppointmentRepository
	txManager       TransactionManager
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(
	appointmentRepo AppointmentRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		txManager:       txManager,
		logger:          logger,
	}
}

// GetByID получает запись по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%d", id)

	appointment, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAppointment(appointment), nil
}

// List получает записи, опционально на конкретную дату
func (s *Service) List(ctx context.Context, req *models.ListAppointmentsRequest) (*models.AppointmentListResponse, error) {
	filter := domain.AppointmentsFilter{
		Date:             req.Date,
		IncludeCancelled: req.IncludeCancelled,
	}

	appointments, err := s.appointmentRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d appointments", len(appointments))
	return models.FromDomainAppointmentList(appointments), nil
}

// Changes возвращает записи, измененные после since (включая отмененные)
// Используется синхронизацией с внешним календарем
func (s *Service) Changes(ctx context.Context, since time.Time) (*models.AppointmentListResponse, error) {
	if since.IsZero() {
		return nil, fmt.Errorf("%w: since is required", ErrInvalidInput)
	}

	appointments, err := s.appointmentRepo.List(ctx, domain.AppointmentsFilter{
		UpdatedSince:     &since,
		IncludeCancelled: true,
	})
	if err != nil {
		s.logger.Error("Changes: repository error: %v", err)
		return nil, fmt.Errorf("%w: Changes - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Changes: %d appointments changed since %s", len(appointments), since.Format(time.RFC3339))
	return models.FromDomainAppointmentList(appointments), nil
}

// UpdateStatus меняет статус записи
// Допустимые переходы: pending -> approved|completed|cancelled, approved -> completed|cancelled
func (s *Service) UpdateStatus(ctx context.Context, id int64, req *models.UpdateStatusRequest) (*models.AppointmentResponse, error) {
	s.logger.Info("UpdateStatus: updating appointment id=%d to status=%s", id, req.Status)

	newStatus, err := models.ToDomainStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s", req.Status)
		return nil, fmt.Errorf("%w: invalid status %q", ErrInvalidInput, req.Status)
	}

	var updated *domain.Appointment
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		// Внутри транзакции запись блокируется (FOR UPDATE)
		appointment, err := s.appointmentRepo.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
				return ErrAppointmentNotFound
			}
			return fmt.Errorf("%w: UpdateStatus - get appointment: %v", ErrInternal, err)
		}

		if !appointment.Status.CanTransitionTo(newStatus) {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, appointment.Status, newStatus)
		}

		if err := s.appointmentRepo.UpdateStatus(ctx, id, newStatus); err != nil {
			if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
				return ErrAppointmentNotFound
			}
			return fmt.Errorf("%w: UpdateStatus - update: %v", ErrInternal, err)
		}

		appointment.Status = newStatus
		updated = appointment
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrAppointmentNotFound), errors.Is(err, ErrInvalidTransition):
			s.logger.Warn("UpdateStatus: appointment id=%d: %v", id, err)
			return nil, err
		case errors.Is(err, ErrInternal):
			s.logger.Error("UpdateStatus: appointment id=%d: %v", id, err)
			return nil, err
		default:
			s.logger.Error("UpdateStatus: transaction failed for appointment id=%d: %v", id, err)
			return nil, fmt.Errorf("%w: UpdateStatus - transaction: %v", ErrInternal, err)
		}
	}

	s.logger.Info("UpdateStatus: appointment id=%d is now %s", id, newStatus)
	return models.FromDomainAppointment(updated), nil
}
