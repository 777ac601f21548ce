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
	"github.com/hibiken/asynq"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	approveBookingHandler "github.com/avlebedev/SBS-BookingWeb/internal/api/handlers/approve_booking"
	deleteBookingHandler "github.com/avlebedev/SBS-BookingWeb/internal/api/handlers/delete_booking"
	getAvailableTimesHandler "github.com/avlebedev/SBS-BookingWeb/internal/api/handlers/get_available_times"
	getDashboardHandler "github.com/avlebedev/SBS-BookingWeb/internal/api/handlers/get_dashboard"
	getSettingsHandler "github.com/avlebedev/SBS-BookingWeb/internal/api/handlers/get_settings"
	getWizardStepHandler "github.com/avlebedev/SBS-BookingWeb/internal/api/handlers/get_wizard_step"
	listBookingsHandler "github.com/avlebedev/SBS-BookingWeb/internal/api/handlers/list_bookings"
	loginHandler "github.com/avlebedev/SBS-BookingWeb/internal/api/handlers/login"
	startWizardHandler "github.com/avlebedev/SBS-BookingWeb/internal/api/handlers/start_wizard"
	submitWizardStepHandler "github.com/avlebedev/SBS-BookingWeb/internal/api/handlers/submit_wizard_step"
	updateSettingsHandler "github.com/avlebedev/SBS-BookingWeb/internal/api/handlers/update_settings"
	"github.com/avlebedev/SBS-BookingWeb/internal/api/middleware"
	"github.com/avlebedev/SBS-BookingWeb/internal/config"
	"github.com/avlebedev/SBS-BookingWeb/internal/infra/queue"
	"github.com/avlebedev/SBS-BookingWeb/internal/infra/session"
	bookingRepo "github.com/avlebedev/SBS-BookingWeb/internal/infra/storage/booking"
	settingsRepo "github.com/avlebedev/SBS-BookingWeb/internal/infra/storage/settings"
	userRepo "github.com/avlebedev/SBS-BookingWeb/internal/infra/storage/user"
	authService "github.com/avlebedev/SBS-BookingWeb/internal/service/auth"
	bookingsService "github.com/avlebedev/SBS-BookingWeb/internal/service/bookings"
	settingsService "github.com/avlebedev/SBS-BookingWeb/internal/service/settings"
	approveBookingUC "github.com/avlebedev/SBS-BookingWeb/internal/usecase/approve_booking"
	bookingWizardUC "github.com/avlebedev/SBS-BookingWeb/internal/usecase/booking_wizard"
	getAvailableTimesUC "github.com/avlebedev/SBS-BookingWeb/internal/usecase/get_available_times"
	"github.com/avlebedev/SBS-BookingWeb/pkg/dbtx"
	"github.com/avlebedev/SBS-BookingWeb/pkg/logger"
	"github.com/avlebedev/SBS-BookingWeb/pkg/metrics"
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

	log.Info("Starting SBS-BookingWeb API...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
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

	// Подключаемся к Redis (сессии мастера и авторизации)
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		log.Fatal("Failed to ping redis: %v", err)
	}
	log.Info("Successfully connected to redis (addr=%s, db=%d)", cfg.Redis.Addr, cfg.Redis.DB)

	sessionStore := session.NewStore(redisClient, time.Duration(cfg.Redis.SessionTTLMinutes)*time.Minute)

	// Клиент очереди задач (подтверждающие письма)
	queueClient := queue.NewClient(asynq.RedisClientOpt{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.QueueDB,
	}, metricsCollector, log)
	defer queueClient.Close()
	log.Info("Task queue client initialized (redis db=%d)", cfg.Redis.QueueDB)

	// Инициализируем репозитории и менеджер транзакций
	bookingRepository := bookingRepo.NewRepository(db)
	settingsRepository := settingsRepo.NewRepository(db)
	userRepository := userRepo.NewRepository(db)
	txManager := dbtx.NewManager(db)

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, cfg.Booking.PageSize, log)
	settingsSvc := settingsService.NewService(settingsRepository, log)
	authSvc := authService.NewService(bookingRepository, sessionStore, log)

	// Инициализируем use cases
	availableTimesUseCase := getAvailableTimesUC.NewUseCase(bookingRepository, settingsRepository, log)

	wizardUseCase := bookingWizardUC.NewUseCase(
		bookingRepository,
		userRepository,
		settingsRepository,
		sessionStore,
		availableTimesUseCase,
		txManager,
		bookingWizardUC.DisplayConfig{
			Title:              cfg.Booking.Title,
			Description:        cfg.Booking.Description,
			Background:         cfg.Booking.Background,
			SuccessRedirectURL: cfg.Booking.SuccessRedirectURL,
			DisableRedirectURL: cfg.Booking.DisableRedirectURL,
		},
		log,
	)

	approveUseCase := approveBookingUC.NewUseCase(bookingRepository, queueClient, log)

	// Инициализируем handlers
	getAvailableTimes := getAvailableTimesHandler.NewHandler(availableTimesUseCase, log)
	startWizard := startWizardHandler.NewHandler(wizardUseCase, cfg.Booking.DisableRedirectURL, log)
	getWizardStep := getWizardStepHandler.NewHandler(wizardUseCase, cfg.Booking.DisableRedirectURL, log)
	submitWizardStep := submitWizardStepHandler.NewHandler(wizardUseCase, cfg.Booking.DisableRedirectURL, log)
	login := loginHandler.NewHandler(authSvc, log)
	getDashboard := getDashboardHandler.NewHandler(bookingSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	deleteBooking := deleteBookingHandler.NewHandler(bookingSvc, log)
	approveBooking := approveBookingHandler.NewHandler(approveUseCase, log)
	getSettings := getSettingsHandler.NewHandler(settingsSvc, log)
	updateSettings := updateSettingsHandler.NewHandler(settingsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Доступные слоты на дату
	api.HandleFunc("/available-times", getAvailableTimes.Handle).Methods(http.MethodGet)

	// Мастер бронирования
	api.HandleFunc("/booking/wizard", startWizard.Handle).Methods(http.MethodPost)
	api.HandleFunc("/booking/wizard/{wizardId}", getWizardStep.Handle).Methods(http.MethodGet)
	api.HandleFunc("/booking/wizard/{wizardId}/steps/{step}", submitWizardStep.Handle).Methods(http.MethodPost)

	// Вход по email и номеру бронирования
	// Регистрируется на общем роутере и не проходит через auth-middleware
	api.HandleFunc("/admin/login", login.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-Session-Token header)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.Auth(authSvc, log))

	// --- Дашборд и бронирования ---
	admin.HandleFunc("/dashboard", getDashboard.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{bookingId}", deleteBooking.Handle).Methods(http.MethodDelete)
	admin.HandleFunc("/bookings/{bookingId}/approve", approveBooking.Handle).Methods(http.MethodPost)

	// --- Настройки бронирования ---
	admin.HandleFunc("/settings", getSettings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/settings", updateSettings.Handle).Methods(http.MethodPut)

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

	log.Info("Server stopped gracefully")
}
