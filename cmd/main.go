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

	checkAvailabilityHandler "github.com/m04kA/SMC-BarberBooking/internal/api/handlers/check_availability"
	createAppointmentHandler "github.com/m04kA/SMC-BarberBooking/internal/api/handlers/create_appointment"
	createBarberHandler "github.com/m04kA/SMC-BarberBooking/internal/api/handlers/create_barber"
	deactivateBarberHandler "github.com/m04kA/SMC-BarberBooking/internal/api/handlers/deactivate_barber"
	deleteAppointmentHandler "github.com/m04kA/SMC-BarberBooking/internal/api/handlers/delete_appointment"
	getAppointmentHandler "github.com/m04kA/SMC-BarberBooking/internal/api/handlers/get_appointment"
	getAvailableSlotsHandler "github.com/m04kA/SMC-BarberBooking/internal/api/handlers/get_available_slots"
	listAppointmentsHandler "github.com/m04kA/SMC-BarberBooking/internal/api/handlers/list_appointments"
	listBarbersHandler "github.com/m04kA/SMC-BarberBooking/internal/api/handlers/list_barbers"
	listServicesHandler "github.com/m04kA/SMC-BarberBooking/internal/api/handlers/list_services"
	updateAppointmentHandler "github.com/m04kA/SMC-BarberBooking/internal/api/handlers/update_appointment"
	updateAppointmentStatusHandler "github.com/m04kA/SMC-BarberBooking/internal/api/handlers/update_appointment_status"
	updateBarberHandler "github.com/m04kA/SMC-BarberBooking/internal/api/handlers/update_barber"
	"github.com/m04kA/SMC-BarberBooking/internal/api/middleware"
	"github.com/m04kA/SMC-BarberBooking/internal/availability"
	"github.com/m04kA/SMC-BarberBooking/internal/config"
	appointmentRepo "github.com/m04kA/SMC-BarberBooking/internal/infra/storage/appointment"
	barberRepo "github.com/m04kA/SMC-BarberBooking/internal/infra/storage/barber"
	productRepo "github.com/m04kA/SMC-BarberBooking/internal/infra/storage/product"
	profileRepo "github.com/m04kA/SMC-BarberBooking/internal/infra/storage/profile"
	"github.com/m04kA/SMC-BarberBooking/internal/integrations/mailer"
	"github.com/m04kA/SMC-BarberBooking/internal/reminders"
	appointmentsService "github.com/m04kA/SMC-BarberBooking/internal/service/appointments"
	barbersService "github.com/m04kA/SMC-BarberBooking/internal/service/barbers"
	scheduleService "github.com/m04kA/SMC-BarberBooking/internal/service/schedule"
	checkAvailabilityUC "github.com/m04kA/SMC-BarberBooking/internal/usecase/check_availability"
	createAppointmentUC "github.com/m04kA/SMC-BarberBooking/internal/usecase/create_appointment"
	getAvailableSlotsUC "github.com/m04kA/SMC-BarberBooking/internal/usecase/get_available_slots"
	updateAppointmentUC "github.com/m04kA/SMC-BarberBooking/internal/usecase/update_appointment"
	"github.com/m04kA/SMC-BarberBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-BarberBooking/pkg/logger"
	"github.com/m04kA/SMC-BarberBooking/pkg/metrics"
	"github.com/m04kA/SMC-BarberBooking/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
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

	log.Info("Starting SMC-BarberBooking...")
	log.Info("Configuration loaded from config.toml")

	location, err := cfg.Location()
	if err != nil {
		log.Fatal("Failed to load timezone %q: %v", cfg.Schedule.Timezone, err)
	}

	hours, err := cfg.BusinessHours()
	if err != nil {
		log.Fatal("Failed to build business hours: %v", err)
	}

	// Инициализируем метрики (если включены)
	// *metrics.Metrics с nil значением безопасен, методы ничего не делают
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

	var wrappedDB *dbmetrics.DB
	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")
	} else {
		wrappedDB = dbmetrics.Wrap(db, nil)
	}

	// Инициализируем репозитории
	appointmentRepository := appointmentRepo.NewRepository(wrappedDB)
	barberRepository := barberRepo.NewRepository(wrappedDB)
	profileRepository := profileRepo.NewRepository(wrappedDB)
	productRepository := productRepo.NewRepository(wrappedDB)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Движок доступности с часами работы заведения
	engine := availability.NewEngine(hours, location, cfg.Schedule.SlotDurationMinutes)
	scheduleSvc := scheduleService.NewService(barberRepository, engine, cfg.Schedule.PerBarber, log)
	log.Info("Availability engine initialized (timezone=%s, slot=%dmin, per_barber=%t)",
		location, cfg.Schedule.SlotDurationMinutes, cfg.Schedule.PerBarber)

	// Уведомления по почте (если включены)
	var (
		mailClient *mailer.Client
		notifier   createAppointmentUC.Notifier
	)
	if cfg.SMTP.Enabled {
		sender := mailer.NewSMTPSender(mailer.SenderConfig{
			Host:     cfg.SMTP.Host,
			Port:     cfg.SMTP.Port,
			Username: cfg.SMTP.Username,
			Password: cfg.SMTP.Password,
			From:     cfg.SMTP.From,
			FromName: cfg.SMTP.FromName,
		})
		mailClient = mailer.NewClient(sender, profileRepository, location, metricsCollector, log)
		notifier = mailClient
		log.Info("SMTP notifications enabled (host=%s, port=%d)", cfg.SMTP.Host, cfg.SMTP.Port)
	} else {
		log.Warn("SMTP notifications disabled, confirmations and reminders will not be sent")
	}

	// Инициализируем сервисы
	appointmentsSvc := appointmentsService.NewService(
		appointmentRepository,
		location,
		metricsCollector,
		log,
	)
	barbersSvc := barbersService.NewService(barberRepository, log)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		appointmentRepository,
		barberRepository,
		scheduleSvc,
		log,
	)
	checkAvailabilityUseCase := checkAvailabilityUC.NewUseCase(
		appointmentRepository,
		barberRepository,
		scheduleSvc,
		metricsCollector,
		log,
	)
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		barberRepository,
		productRepository,
		scheduleSvc,
		notifier,
		txMgr,
		metricsCollector,
		log,
	)
	updateAppointmentUseCase := updateAppointmentUC.NewUseCase(
		appointmentRepository,
		barberRepository,
		productRepository,
		scheduleSvc,
		txMgr,
		metricsCollector,
		log,
	)

	// Ежедневные напоминания
	var scheduler *reminders.Scheduler
	if cfg.Reminders.Enabled && mailClient != nil {
		job := reminders.NewJob(appointmentRepository, profileRepository, mailClient, engine, log)
		scheduler, err = reminders.NewScheduler(
			job,
			cfg.Reminders.Spec,
			location,
			time.Duration(cfg.Reminders.Timeout)*time.Second,
			log,
		)
		if err != nil {
			log.Fatal("Failed to create reminders scheduler: %v", err)
		}
		scheduler.Start()
	}

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, location, log)
	checkAvailability := checkAvailabilityHandler.NewHandler(checkAvailabilityUseCase, location, log)
	listBarbers := listBarbersHandler.NewHandler(barbersSvc, log)
	createBarber := createBarberHandler.NewHandler(barbersSvc, log)
	updateBarber := updateBarberHandler.NewHandler(barbersSvc, log)
	deactivateBarber := deactivateBarberHandler.NewHandler(barbersSvc, log)
	listServices := listServicesHandler.NewHandler(productRepository, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, location, log)
	updateAppointment := updateAppointmentHandler.NewHandler(updateAppointmentUseCase, location, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentsSvc, log)
	listAppointments := listAppointmentsHandler.NewHandler(appointmentsSvc, location, log)
	updateAppointmentStatus := updateAppointmentStatusHandler.NewHandler(appointmentsSvc, log)
	deleteAppointment := deleteAppointmentHandler.NewHandler(appointmentsSvc, log)

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

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Свободные слоты на день
	api.HandleFunc("/availability/slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Проверка конкретного времени перед записью
	api.HandleFunc("/availability/check", checkAvailability.Handle).Methods(http.MethodPost)

	// Барберы: анонимно только активные, админ может запросить includeInactive=true
	api.Handle("/barbers", middleware.OptionalAuth(http.HandlerFunc(listBarbers.Handle))).Methods(http.MethodGet)

	// Каталог услуг
	api.HandleFunc("/services", listServices.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	protected.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/appointments", listAppointments.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{appointmentId}", updateAppointment.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/appointments/{appointmentId}", deleteAppointment.Handle).Methods(http.MethodDelete)

	// Управление составом барберов (только админ)
	protected.HandleFunc("/barbers", createBarber.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/barbers/{barberId}", updateBarber.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/barbers/{barberId}/deactivate", deactivateBarber.Handle).Methods(http.MethodPatch)

	// Отмена клиентом, подтверждение и завершение администратором
	protected.HandleFunc("/appointments/{appointmentId}/status",
		updateAppointmentStatus.Handle).Methods(http.MethodPatch)

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

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	// Дожидаемся отправки подтверждений по уже созданным записям
	if err := createAppointmentUseCase.Wait(shutdownCtx); err != nil {
		log.Error("Pending confirmations were not sent before shutdown: %v", err)
	}

	if scheduler != nil {
		if err := scheduler.Stop(shutdownCtx); err != nil {
			log.Error("Reminders scheduler did not stop in time: %v", err)
		}
	}

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	log.Info("Server stopped gracefully")
}
