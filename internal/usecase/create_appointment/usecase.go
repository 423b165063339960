package create_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/teebhagg/Zaina-Hair-Studio-sub000/internal/domain"
	"github.com/teebhagg/Zaina-Hair-Studio-sub000/internal/infra/locker"
	"github.com/teebhagg/Zaina-Hair-Studio-sub000/internal/integrations/catalog"
	"github.com/teebhagg/Zaina-Hair-Studio-sub000/pkg/metrics"
	"github.com/teebhagg/Zaina-Hair-Studio-sub000/pkg/ptr"
)

// UseCase единственная точка допуска новых записей
// Используется и сайтом, и партнерским API
type UseCase struct {
	appointmentRepo AppointmentRepository
	customerRepo    CustomerRepository
	catalog         ServiceCatalog // nil = каталог не настроен
	locker          SlotLocker     // nil = Redis не настроен
	txManager       TransactionManager
	opts            Options
	metrics         Metrics
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	customerRepo CustomerRepository,
	catalog ServiceCatalog,
	locker SlotLocker,
	txManager TransactionManager,
	opts Options,
	metrics Metrics,
	logger Logger,
) *UseCase {
	if opts.Limits.MaxBookings <= 0 || opts.Limits.MaxServiceTypes <= 0 {
		opts.Limits = domain.DefaultCapacityLimits()
	}
	return &UseCase{
		appointmentRepo: appointmentRepo,
		customerRepo:    customerRepo,
		catalog:         catalog,
		locker:          locker,
		txManager:       txManager,
		opts:            opts,
		metrics:         metrics,
		logger:          logger,
	}
}

// serviceInfo данные услуги, с которыми запись проходит допуск
type serviceInfo struct {
	name            string
	serviceType     string
	durationMinutes int
}

// Execute выполняет допуск и создание записи
// Проверка вместимости и вставка выполняются в одной сериализуемой транзакции
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		uc.metrics.IncAdmission(metrics.AdmissionInvalid)
		return nil, err
	}

	dateStr := req.Date.Format(domain.DateFormat)
	uc.logger.Info("CreateAppointment: source=%s, service=%s, date=%s, time=%s",
		req.Source, req.ServiceSlug, dateStr, req.Time)

	// 2. Получаем данные услуги из каталога (с деградацией до значений по умолчанию)
	service := uc.resolveService(ctx, req)

	// 3. Блокируем слот в Redis, чтобы конкурирующие запросы не крутили ретраи транзакции
	if uc.locker != nil {
		key := fmt.Sprintf("slot:%s:%s", dateStr, req.Time)
		token, err := uc.locker.Lock(ctx, key, uc.opts.LockTTL, uc.opts.LockWait)
		switch {
		case err == nil:
			defer func() {
				if err := uc.locker.Unlock(context.WithoutCancel(ctx), key, token); err != nil {
					uc.logger.Warn("CreateAppointment: failed to release lock %s: %v", key, err)
				}
			}()
		case errors.Is(err, locker.ErrLockTimeout):
			uc.logger.Warn("CreateAppointment: slot %s %s is locked by another request", dateStr, req.Time)
			uc.metrics.IncAdmission(metrics.AdmissionSlotBusy)
			return nil, ErrSlotBusy
		case ctx.Err() != nil:
			uc.metrics.IncAdmission(metrics.AdmissionError)
			return nil, fmt.Errorf("%w: waiting for slot lock: %v", ErrInternal, ctx.Err())
		default:
			// Без Redis остается только сериализуемая транзакция
			uc.logger.Warn("CreateAppointment: lock unavailable, continuing without it: %v", err)
			uc.metrics.IncDegraded(metrics.DependencyLocker)
		}
	}

	var created *domain.Appointment

	// 4. Проверка вместимости и создание записи в сериализуемой транзакции
	// Ошибки репозиториев оборачиваются через %w, чтобы txmanager распознал конфликт сериализации
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Заново читаем активные записи на это время (с блокировкой строк)
		existing, err := uc.appointmentRepo.GetActiveByDateAndTime(txCtx, req.Date, req.Time)
		if err != nil {
			return fmt.Errorf("%w: failed to get appointments: %w", ErrInternal, err)
		}

		// 4.2. Применяем правила вместимости
		ledger, _ := domain.NewCapacityLedger(existing)
		record := ledger.Record(req.Time)
		if err := record.Check(service.serviceType, uc.opts.Limits); err != nil {
			uc.logger.Warn("CreateAppointment: rejected %s %s: %v (count=%d, types=%d)",
				dateStr, req.Time, err, record.Count, len(record.ServiceTypes))
			return err
		}

		// 4.3. Находим или создаем клиента по email
		customer, err := uc.customerRepo.Upsert(txCtx, &domain.Customer{
			Name:  req.CustomerName,
			Email: req.CustomerEmail,
			Phone: req.CustomerPhone,
		})
		if err != nil {
			return fmt.Errorf("%w: failed to upsert customer: %w", ErrInternal, err)
		}

		// 4.4. Сохраняем запись в статусе pending
		appointment := &domain.Appointment{
			CustomerID:  customer.ID,
			ServiceSlug: req.ServiceSlug,
			ServiceName: service.name,
			ServiceType: service.serviceType,
			Date:        req.Date,
			Time:        req.Time,
			Status:      domain.StatusPending,
			Note:        req.Note,
			Source:      req.Source,
		}
		if uc.opts.SnapshotDuration {
			appointment.DurationMinutes = ptr.Ptr(service.durationMinutes)
		}

		created, err = uc.appointmentRepo.Create(txCtx, appointment)
		if err != nil {
			return fmt.Errorf("%w: failed to create appointment: %w", ErrInternal, err)
		}
		return nil
	})

	if err != nil {
		switch {
		case errors.Is(err, ErrSlotFull):
			uc.metrics.IncAdmission(metrics.AdmissionSlotFull)
			return nil, ErrSlotFull
		case errors.Is(err, ErrServiceTypeLimit):
			uc.metrics.IncAdmission(metrics.AdmissionServiceTypeLimit)
			return nil, ErrServiceTypeLimit
		case errors.Is(err, ErrInternal):
			uc.logger.Error("CreateAppointment: %v", err)
			uc.metrics.IncAdmission(metrics.AdmissionError)
			return nil, err
		default:
			uc.logger.Error("CreateAppointment: transaction failed: %v", err)
			uc.metrics.IncAdmission(metrics.AdmissionError)
			return nil, fmt.Errorf("%w: transaction failed: %v", ErrInternal, err)
		}
	}

	uc.metrics.IncAdmission(metrics.AdmissionAdmitted)
	uc.logger.Info("CreateAppointment: successfully created appointment id=%d for customer id=%d",
		created.ID, created.CustomerID)

	return &Response{
		ID:              created.ID,
		CustomerID:      created.CustomerID,
		ServiceSlug:     created.ServiceSlug,
		ServiceName:     created.ServiceName,
		ServiceType:     created.ServiceType,
		Date:            created.Date,
		Time:            created.Time,
		DurationMinutes: service.durationMinutes,
		Status:          created.Status,
		Source:          created.Source,
		Note:            created.Note,
		CreatedAt:       created.CreatedAt,
		UpdatedAt:       created.UpdatedAt,
	}, nil
}

// resolveService получает название, категорию и длительность услуги
// Неизвестная услуга или недоступный каталог дают длительность 60 минут без категории
func (uc *UseCase) resolveService(ctx context.Context, req *Request) serviceInfo {
	fallback := serviceInfo{
		name:            req.ServiceSlug,
		durationMinutes: domain.DefaultDurationMinutes,
	}

	if uc.catalog == nil {
		fallback.serviceType = req.ServiceType
		return fallback
	}

	svc, err := catalog.GetServiceWithGracefulDegradation(ctx, uc.catalog, req.ServiceSlug, uc.logger)
	if err != nil {
		if errors.Is(err, catalog.ErrServiceDegraded) {
			uc.metrics.IncDegraded(metrics.DependencyCatalog)
		} else {
			uc.logger.Info("CreateAppointment: service %s is unknown, using default duration", req.ServiceSlug)
		}
		return fallback
	}

	info := serviceInfo{
		name:            svc.Name,
		serviceType:     svc.ServiceType,
		durationMinutes: domain.EffectiveDuration(svc.DurationMinutes),
	}
	if info.name == "" {
		info.name = req.ServiceSlug
	}
	return info
}
