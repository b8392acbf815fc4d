package app

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/trainops/batch_planner/internal/service"
)

// Reporter фоновый отчёт по осиротевшим событиям: удаление плана не
// каскадится на его события, раз в сутки пишем в лог сколько таких
// накопилось
type Reporter struct {
	calendarService *service.CalendarService
	logger          *zap.Logger
	stopChan        chan struct{}
}

// NewReporter создаёт новый отчётчик
func NewReporter(calendarService *service.CalendarService, logger *zap.Logger) *Reporter {
	return &Reporter{
		calendarService: calendarService,
		logger:          logger,
		stopChan:        make(chan struct{}),
	}
}

// Start запускает фоновую задачу
func (r *Reporter) Start(ctx context.Context) {
	r.logger.Info("Starting orphan event reporter")
	go r.run(ctx)
}

// Stop останавливает фоновую задачу
func (r *Reporter) Stop() {
	r.logger.Info("Stopping orphan event reporter")
	close(r.stopChan)
}

func (r *Reporter) run(ctx context.Context) {
	// Первый запуск сразу при старте
	r.report()

	ticker := time.NewTicker(24 * time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			r.report()
		case <-r.stopChan:
			r.logger.Info("Orphan event reporter stopped")
			return
		case <-ctx.Done():
			r.logger.Info("Orphan event reporter cancelled")
			return
		}
	}
}

func (r *Reporter) report() {
	orphans := r.calendarService.OrphanedEvents()
	if len(orphans) == 0 {
		r.logger.Info("No orphaned events")
		return
	}

	plans := make(map[string]int)
	for _, ev := range orphans {
		plans[ev.PlanID]++
	}

	r.logger.Warn("Orphaned events found: their plans were deleted but events remain",
		zap.Int("events", len(orphans)),
		zap.Int("deleted_plans", len(plans)))
}
