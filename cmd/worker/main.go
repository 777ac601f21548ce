package main

import (
	"fmt"
	"os"

	"github.com/hibiken/asynq"

	"github.com/avlebedev/SBS-BookingWeb/internal/config"
	"github.com/avlebedev/SBS-BookingWeb/internal/integrations/mailer"
	"github.com/avlebedev/SBS-BookingWeb/internal/tasks"
	"github.com/avlebedev/SBS-BookingWeb/pkg/logger"
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

	log.Info("Starting SBS-BookingWeb worker...")

	// Почтовый клиент для подтверждающих писем
	mailClient := mailer.NewClient(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Username,
		cfg.SMTP.Password,
		cfg.SMTP.From,
		log,
	)
	log.Info("Mailer initialized (host=%s, port=%d, from=%s)", cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.From)

	// Сервер очереди задач
	srv := asynq.NewServer(
		asynq.RedisClientOpt{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.QueueDB,
		},
		asynq.Config{
			Concurrency: 5,
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeBookingConfirmation, tasks.HandleConfirmationTask(mailClient, log))

	// Run блокируется до SIGINT/SIGTERM и сам завершает обработчики
	log.Info("Worker listening on redis queue (addr=%s, db=%d)", cfg.Redis.Addr, cfg.Redis.QueueDB)
	if err := srv.Run(mux); err != nil {
		log.Fatal("Worker failed: %v", err)
	}

	log.Info("Worker stopped gracefully")
}
