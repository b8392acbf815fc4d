package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/trainops/batch_planner/internal/app"
	"github.com/trainops/batch_planner/internal/calendar"
	"github.com/trainops/batch_planner/internal/config"
	"github.com/trainops/batch_planner/internal/controller/httpapi"
	"github.com/trainops/batch_planner/internal/repository"
	"github.com/trainops/batch_planner/internal/repository/base"
	"github.com/trainops/batch_planner/internal/service"
	"github.com/trainops/batch_planner/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := app.NewLogger(cfg.Environment)
	defer logger.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool, err := pgxpool.New(ctx, cfg.GetDBDSN())
	if err != nil {
		logger.Fatal("Failed to create connection pool", zap.Error(err))
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}

	// Миграции
	migrator, err := app.NewMigrator(pool, cfg.MigrationsPath)
	if err != nil {
		logger.Fatal("Failed to create migrator", zap.Error(err))
	}
	if err := migrator.Run(ctx); err != nil {
		logger.Fatal("Failed to apply migrations", zap.Error(err))
	}
	migrator.Close()

	// Репозитории
	baseRepo := base.NewRepository(pool)
	batchRepo := repository.NewBatchRepository(pool)
	planRepo := repository.NewPlanRepository(pool)
	eventRepo := repository.NewEventRepository(pool)
	employeeRepo := repository.NewEmployeeRepository(pool)

	// Справочник сотрудников и календарь рабочих дней
	directory := service.NewDirectory(employeeRepo)
	if err := directory.Load(ctx); err != nil {
		logger.Fatal("Failed to load employee directory", zap.Error(err))
	}
	workdayCal := calendar.NewWorkdayCalendar(cfg.Holidays)

	// Текущий срез состояния: планы и события из базы
	plans, err := planRepo.GetAll(ctx)
	if err != nil {
		logger.Fatal("Failed to load plans", zap.Error(err))
	}
	events, err := eventRepo.GetAll(ctx)
	if err != nil {
		logger.Fatal("Failed to load events", zap.Error(err))
	}
	holder := store.NewHolder(store.NewSnapshot(plans, events))

	logger.Info("State loaded",
		zap.Int("plans", len(plans)),
		zap.Int("events", len(events)),
		zap.Int("employees", len(directory.Employees())),
		zap.Int("holidays", len(cfg.Holidays)))

	// Сервисы
	batchService := service.NewBatchService(batchRepo, logger)
	planService := service.NewPlanService(baseRepo, planRepo, eventRepo, workdayCal, directory, holder, logger)
	calendarService := service.NewCalendarService(holder, eventRepo, directory, logger)

	// Фоновый отчёт по осиротевшим событиям
	reporter := app.NewReporter(calendarService, logger)
	reporter.Start(ctx)
	defer reporter.Stop()

	// HTTP API
	handlers := httpapi.NewHandlers(batchService, planService, calendarService, directory, logger)
	server := app.NewServer(cfg.HTTPAddr, httpapi.NewRouter(handlers), logger)

	go func() {
		if err := server.Start(); err != nil {
			logger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	// Ожидаем сигнал остановки
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Shutdown failed", zap.Error(err))
	}
}
