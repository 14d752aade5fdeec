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

	cancelBookingHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/cancel_booking"
	confirmBookingHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/confirm_booking"
	createBookingHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/create_booking"
	forwardBookingHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/forward_booking"
	getBookingHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/get_booking"
	getScheduleHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/get_schedule"
	getStaffBookingsHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/get_staff_bookings"
	getUserBookingsHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/get_user_bookings"
	rejectBookingHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/reject_booking"
	"github.com/m04kA/SMC-ReservationService/internal/api/middleware"
	"github.com/m04kA/SMC-ReservationService/internal/config"
	"github.com/m04kA/SMC-ReservationService/internal/domain"
	areaRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/area"
	taskRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/task"
	userServiceClient "github.com/m04kA/SMC-ReservationService/internal/integrations/userservice"
	tasksService "github.com/m04kA/SMC-ReservationService/internal/service/tasks"
	cancelBookingUC "github.com/m04kA/SMC-ReservationService/internal/usecase/cancel_booking"
	confirmBookingUC "github.com/m04kA/SMC-ReservationService/internal/usecase/confirm_booking"
	createBookingUC "github.com/m04kA/SMC-ReservationService/internal/usecase/create_booking"
	forwardBookingUC "github.com/m04kA/SMC-ReservationService/internal/usecase/forward_booking"
	getScheduleUC "github.com/m04kA/SMC-ReservationService/internal/usecase/get_schedule"
	rejectBookingUC "github.com/m04kA/SMC-ReservationService/internal/usecase/reject_booking"
	"github.com/m04kA/SMC-ReservationService/internal/usecase/validate_slots"
	"github.com/m04kA/SMC-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ReservationService/pkg/logger"
	"github.com/m04kA/SMC-ReservationService/pkg/metrics"
	"github.com/m04kA/SMC-ReservationService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-ReservationService/pkg/txmanager"
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

	log.Info("Starting SMC-ReservationService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
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

	// Инициализируем интеграционных клиентов
	userClient := userServiceClient.NewClient(
		cfg.UserService.URL,
		time.Duration(cfg.UserService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (UserService=%s timeout=%ds)",
		cfg.UserService.URL, cfg.UserService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		areaRepository *areaRepo.Repository
		taskRepository *taskRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		areaRepository = areaRepo.NewRepository(wrappedDB)
		taskRepository = taskRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		areaRepository = areaRepo.NewRepository(db)
		taskRepository = taskRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	timeProvider := &createBookingUC.RealTimeProvider{}

	// Справочник уровней эскалации персонала
	staffDir := domain.NewStaffDirectory(cfg.Booking.StaffLevels)
	if staffDir.Empty() {
		log.Warn("No staff escalation levels configured, forward operation will be rejected")
	} else {
		log.Info("Staff escalation chain: %v", staffDir.Levels())
	}

	validateOpts := validate_slots.Options{
		EnforceWindowBounds: cfg.Booking.EnforceWindowBounds,
	}

	// Инициализируем сервис чтения
	taskSvc := tasksService.NewService(taskRepository, timeProvider, log)

	// Инициализируем use cases
	getScheduleUseCase := getScheduleUC.NewUseCase(areaRepository, log)
	createBookingUseCase := createBookingUC.NewUseCase(
		areaRepository,
		taskRepository,
		userClient,
		txMgr,
		validateOpts,
		log,
	)
	confirmBookingUseCase := confirmBookingUC.NewUseCase(taskRepository, txMgr, timeProvider, log)
	cancelBookingUseCase := cancelBookingUC.NewUseCase(taskRepository, txMgr, timeProvider, log)
	forwardBookingUseCase := forwardBookingUC.NewUseCase(taskRepository, staffDir, txMgr, timeProvider, log)
	rejectBookingUseCase := rejectBookingUC.NewUseCase(taskRepository, txMgr, timeProvider, log)

	// Инициализируем handlers
	getSchedule := getScheduleHandler.NewHandler(getScheduleUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(taskSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(taskSvc, log)
	confirmBooking := confirmBookingHandler.NewHandler(confirmBookingUseCase, log)
	cancelBooking := cancelBookingHandler.NewHandler(cancelBookingUseCase, log)
	forwardBooking := forwardBookingHandler.NewHandler(forwardBookingUseCase, log)
	rejectBooking := rejectBookingHandler.NewHandler(rejectBookingUseCase, log)
	getStaffBookings := getStaffBookingsHandler.NewHandler(taskSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Расписание площадки на дату
	api.HandleFunc("/areas/{areaId}/schedule", getSchedule.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-Username header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	protected.HandleFunc("/tasks", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/tasks/{taskId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/tasks/{taskId}/confirm", confirmBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/tasks/{taskId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// История бронирований пользователя
	protected.HandleFunc("/users/{username}/tasks", getUserBookings.Handle).Methods(http.MethodGet)

	// --- Операции персонала ---
	staff := protected.PathPrefix("").Subrouter()
	staff.Use(middleware.RequireStaff)

	staff.HandleFunc("/tasks/{taskId}/forward", forwardBooking.Handle).Methods(http.MethodPatch)
	staff.HandleFunc("/tasks/{taskId}/reject", rejectBooking.Handle).Methods(http.MethodPatch)
	staff.HandleFunc("/staff/tasks", getStaffBookings.Handle).Methods(http.MethodGet)
	staff.HandleFunc("/staff/tasks/{vid}", getStaffBookings.HandleByVID).Methods(http.MethodGet)

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
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

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
