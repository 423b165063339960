package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/teebhagg/Zaina-Hair-Studio-sub000/internal/api/handlers"
	createAppointmentHandler "github.com/teebhagg/Zaina-Hair-Studio-sub000/internal/api/handlers/create_appointment"
	getAppointmentHandler "github.com/teebhagg/Zaina-Hair-Studio-sub000/internal/api/handlers/get_appointment"
	getAppointmentChangesHandler "github.com/teebhagg/Zaina-Hair-Studio-sub000/internal/api/handlers/get_appointment_changes"
	getAppointmentsHandler "github.com/teebhagg/Zaina-Hair-Studio-sub000/internal/api/handlers/get_appointments"
	getAvailableSlotsHandler "github.com/teebhagg/Zaina-Hair-Studio-sub000/internal/api/handlers/get_available_slots"
	getWorkScheduleHandler "github.com/teebhagg/Zaina-Hair-Studio-sub000/internal/api/handlers/get_work_schedule"
	updateAppointmentStatusHandler "github.com/teebhagg/Zaina-Hair-Studio-sub000/internal/api/handlers/update_appointment_status"
	updateWorkScheduleHandler "github.com/teebhagg/Zaina-Hair-Studio-sub000/internal/api/handlers/update_work_schedule"
	"github.com/teebhagg/Zaina-Hair-Studio-sub000/internal/api/middleware"
	"github.com/teebhagg/Zaina-Hair-Studio-sub000/internal/config"
	"github.com/teebhagg/Zaina-Hair-Studio-sub000/internal/domain"
	"github.com/teebhagg/Zaina-Hair-Studio-sub000/internal/infra/locker"
	appointmentRepo "github.com/teebhagg/Zaina-Hair-Studio-sub000/internal/infra/storage/appointment"
	customerRepo "github.com/teebhagg/Zaina-Hair-Studio-sub000/internal/infra/storage/customer"
	scheduleRepo "github.com/teebhagg/Zaina-Hair-Studio-sub000/internal/infra/storage/schedule"
	"github.com/teebhagg/Zaina-Hair-Studio-sub000/internal/integrations/catalog"
	"github.com/teebhagg/Zaina-Hair-Studio-sub000/internal/integrations/gcalendar"
	appointmentsService "github.com/teebhagg/Zaina-Hair-Studio-sub000/internal/service/appointments"
	busyPeriodsService "github.com/teebhagg/Zaina-Hair-Studio-sub000/internal/service/busyperiods"
	scheduleService "github.com/teebhagg/Zaina-Hair-Studio-sub000/internal/service/schedule"
	createAppointmentUC "github.com/teebhagg/Zaina-Hair-Studio-sub000/internal/usecase/create_appointment"
	getAvailableSlotsUC "github.com/teebhagg/Zaina-Hair-Studio-sub000/internal/usecase/get_available_slots"
	"github.com/teebhagg/Zaina-Hair-Studio-sub000/pkg/dbmetrics"
	"github.com/teebhagg/Zaina-Hair-Studio-sub000/pkg/logger"
	"github.com/teebhagg/Zaina-Hair-Studio-sub000/pkg/metrics"
	"github.com/teebhagg/Zaina-Hair-Studio-sub000/pkg/txmanager"
)

const configPath = "config.toml"

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting salon booking service...")
	log.Info("Configuration loaded from %s", configPath)

	location, err := cfg.Booking.Location()
	if err != nil {
		log.Fatal("Failed to load business timezone: %v", err)
	}

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Без метрик обёртка работает как обычный *sql.DB
	var wrappedDB *dbmetrics.DB
	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")
	} else {
		wrappedDB = dbmetrics.Wrap(db, nil)
	}
	txMgr := txmanager.NewTransactionManager(wrappedDB, cfg.Database.TxMaxRetries)

	// Redis (кеш каталога и блокировка слотов)
	var rdb *redis.Client
	if cfg.Redis.Enabled {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()

		pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := rdb.Ping(pingCtx).Err(); err != nil {
			// Redis не обязателен: допуск работает и без блокировки
			log.Warn("Redis is unavailable at %s, continuing without it: %v", cfg.Redis.Addr, err)
		} else {
			log.Info("Connected to Redis at %s", cfg.Redis.Addr)
		}
		cancel()
	}

	// Инициализируем интеграционных клиентов
	// Ненастроенные интеграции передаются как nil интерфейсы
	var serviceCatalog catalog.Source
	if cfg.Catalog.Enabled() {
		var source catalog.Source = catalog.NewClient(
			cfg.Catalog.BaseURL(),
			cfg.Catalog.Token,
			time.Duration(cfg.Catalog.Timeout)*time.Second,
			log,
		)
		if rdb != nil {
			source = catalog.NewCachedClient(source, rdb, time.Duration(cfg.Catalog.CacheTTL)*time.Second, log)
		}
		serviceCatalog = source
		log.Info("Service catalog client initialized (url=%s, timeout=%ds, cache=%t)",
			cfg.Catalog.BaseURL(), cfg.Catalog.Timeout, rdb != nil)
	} else {
		log.Warn("Service catalog is not configured, default durations will be used")
	}

	var calendarSource busyPeriodsService.CalendarSource
	if cfg.Calendar.Enabled {
		creds, err := calendarCredentials(cfg.Calendar)
		if err != nil {
			log.Fatal("Failed to read calendar credentials: %v", err)
		}
		calendarClient, err := gcalendar.NewClient(
			context.Background(),
			creds,
			cfg.Calendar.CalendarID,
			time.Duration(cfg.Calendar.Timeout)*time.Second,
			location,
			log,
		)
		if err != nil {
			// Календарь не обязателен: слоты считаются без внешних событий
			log.Error("Failed to initialize Google Calendar client, continuing without it: %v", err)
		} else {
			calendarSource = calendarClient
			log.Info("Google Calendar client initialized (calendar=%s)", cfg.Calendar.CalendarID)
		}
	}

	var slotLocker createAppointmentUC.SlotLocker
	if rdb != nil {
		slotLocker = locker.New(rdb, "salon:lock:")
	}

	// Инициализируем репозитории
	appointmentRepository := appointmentRepo.NewRepository(wrappedDB, location)
	customerRepository := customerRepo.NewRepository(wrappedDB)
	scheduleRepository := scheduleRepo.NewRepository(wrappedDB)

	limits := domain.CapacityLimits{
		MaxBookings:     cfg.Booking.MaxBookingsPerSlot,
		MaxServiceTypes: cfg.Booking.MaxServiceTypesPerSlot,
	}

	// Инициализируем сервисы
	var busyCatalog busyPeriodsService.ServiceCatalog
	var admissionCatalog createAppointmentUC.ServiceCatalog
	if serviceCatalog != nil {
		busyCatalog = serviceCatalog
		admissionCatalog = serviceCatalog
	}

	busyPeriodsSvc := busyPeriodsService.NewService(
		calendarSource,
		busyCatalog,
		cfg.Booking.SnapshotDuration,
		metricsCollector,
		log,
	)
	appointmentsSvc := appointmentsService.NewService(appointmentRepository, txMgr, log)
	scheduleSvc := scheduleService.NewService(scheduleRepository, log)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		scheduleRepository,
		appointmentRepository,
		busyPeriodsSvc,
		limits,
		metricsCollector,
		log,
	)

	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		customerRepository,
		admissionCatalog,
		slotLocker,
		txMgr,
		createAppointmentUC.Options{
			Limits:           limits,
			SnapshotDuration: cfg.Booking.SnapshotDuration,
			LockTTL:          cfg.Redis.LockTTLDuration(),
			LockWait:         cfg.Redis.LockWaitDuration(),
		},
		metricsCollector,
		log,
	)

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, location, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, domain.SourceWebsite, location, log)
	createPartnerAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, domain.SourcePartner, location, log)
	getAppointments := getAppointmentsHandler.NewHandler(appointmentsSvc, location, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentsSvc, log)
	getAppointmentChanges := getAppointmentChangesHandler.NewHandler(appointmentsSvc, log)
	updateAppointmentStatus := updateAppointmentStatusHandler.NewHandler(appointmentsSvc, log)
	getWorkSchedule := getWorkScheduleHandler.NewHandler(scheduleSvc, log)
	updateWorkSchedule := updateWorkScheduleHandler.NewHandler(scheduleSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		// Metrics endpoint (публичный, без аутентификации)
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Проверка доступности БД
	r.HandleFunc("/healthz", func(w http.ResponseWriter, req *http.Request) {
		ctx, cancel := context.WithTimeout(req.Context(), 2*time.Second)
		defer cancel()
		if err := wrappedDB.PingContext(ctx); err != nil {
			log.Error("GET /healthz - Database ping failed: %v", err)
			handlers.RespondError(w, http.StatusServiceUnavailable, "база данных недоступна")
			return
		}
		handlers.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (сайт салона)
	// ============================================================

	// Доступные слоты на дату
	api.HandleFunc("/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Создание записи с сайта
	api.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)

	// ============================================================
	// PARTNER ROUTES (требуют X-API-Key)
	// ============================================================

	partner := api.PathPrefix("/partner").Subrouter()
	partner.Use(middleware.APIKey(cfg.Auth.PartnerAPIKeys))

	partner.HandleFunc("/appointments", createPartnerAppointment.Handle).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (требуют Authorization: Bearer)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminToken(cfg.Auth.AdminToken))

	// --- Записи ---
	// changes регистрируется раньше {appointmentId}
	admin.HandleFunc("/appointments/changes", getAppointmentChanges.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/appointments", getAppointments.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/appointments/{appointmentId:[0-9]+}", getAppointment.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/appointments/{appointmentId:[0-9]+}/status", updateAppointmentStatus.Handle).Methods(http.MethodPatch)

	// --- Расписание ---
	admin.HandleFunc("/work-schedule", getWorkSchedule.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/work-schedule", updateWorkSchedule.Handle).Methods(http.MethodPut)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}

// calendarCredentials собирает учетные данные Google из конфигурации
func calendarCredentials(cfg config.CalendarConfig) (gcalendar.Credentials, error) {
	creds := gcalendar.Credentials{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		RefreshToken: cfg.RefreshToken,
	}
	if cfg.CredentialsFile != "" {
		data, err := os.ReadFile(cfg.CredentialsFile)
		if err != nil {
			return gcalendar.Credentials{}, err
		}
		creds.ServiceAccountJSON = data
	}
	return creds, nil
}
