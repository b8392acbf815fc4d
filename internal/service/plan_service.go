package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/trainops/batch_planner/internal/calendar"
	"github.com/trainops/batch_planner/internal/model"
	"github.com/trainops/batch_planner/internal/repository"
	"github.com/trainops/batch_planner/internal/repository/base"
	"github.com/trainops/batch_planner/internal/store"
)

// Ошибки валидации плана — отсекаются до вызова разворачивания
var (
	ErrPlanTitleTooShort    = errors.New("plan title must be at least 2 characters")
	ErrPlanWithoutTopics    = errors.New("plan must have at least one topic")
	ErrTopicTitleTooShort   = errors.New("topic title must be at least 2 characters")
	ErrTopicInvalidDuration = errors.New("topic duration must be between 1 and 365")
	ErrTopicInvalidUnit     = errors.New("topic duration unit must be days, weeks or months")
)

const maxTopicDurationValue = 365

// PlanService создание и разворачивание учебных планов
type PlanService struct {
	base      *base.Repository
	planRepo  *repository.PlanRepository
	eventRepo *repository.EventRepository
	cal       *calendar.WorkdayCalendar
	directory *Directory
	holder    *store.Holder
	logger    *zap.Logger
}

func NewPlanService(
	baseRepo *base.Repository,
	planRepo *repository.PlanRepository,
	eventRepo *repository.EventRepository,
	cal *calendar.WorkdayCalendar,
	directory *Directory,
	holder *store.Holder,
	logger *zap.Logger,
) *PlanService {
	return &PlanService{
		base:      baseRepo,
		planRepo:  planRepo,
		eventRepo: eventRepo,
		cal:       cal,
		directory: directory,
		holder:    holder,
		logger:    logger,
	}
}

// CreatePlanInput входные данные формы создания плана
type CreatePlanInput struct {
	Title             string           `json:"title"`
	StartDate         time.Time        `json:"start_date"`
	Topics            []model.Topic    `json:"topics"`
	Color             model.EventColor `json:"color"`
	ResponsibleUserID string           `json:"responsible_user_id"`
	StartTime         string           `json:"start_time"`
	EndTime           string           `json:"end_time"`
	BatchID           string           `json:"batch_id"`
}

// ValidatePlanInput проверяет план перед разворачиванием. План без тем и
// тема с неположительной длительностью не доходят до Expand.
func ValidatePlanInput(in CreatePlanInput) error {
	if len(in.Title) < 2 {
		return ErrPlanTitleTooShort
	}
	if len(in.Topics) == 0 {
		return ErrPlanWithoutTopics
	}
	for _, t := range in.Topics {
		if len(t.Title) < 2 {
			return ErrTopicTitleTooShort
		}
		if t.DurationValue < 1 || t.DurationValue > maxTopicDurationValue {
			return ErrTopicInvalidDuration
		}
		switch t.DurationUnit {
		case model.DurationDays, model.DurationWeeks, model.DurationMonths:
		default:
			return ErrTopicInvalidUnit
		}
	}
	return nil
}

// CreatePlan валидирует план, разворачивает его в события и атомарно
// сохраняет план вместе с событиями. События фиксируются один раз при
// создании и дальше живут независимо от тем плана.
func (s *PlanService) CreatePlan(ctx context.Context, in CreatePlanInput) (*model.TrainingPlan, []model.CalendarEvent, error) {
	if err := ValidatePlanInput(in); err != nil {
		return nil, nil, err
	}

	now := time.Now()
	plan := model.TrainingPlan{
		PlanID:            uuid.NewString(),
		Title:             in.Title,
		StartDate:         in.StartDate,
		Topics:            in.Topics,
		Color:             in.Color,
		ResponsibleUserID: in.ResponsibleUserID,
		StartTime:         in.StartTime,
		EndTime:           in.EndTime,
		BatchID:           in.BatchID,
		TotalDurationDays: calendar.TotalDurationDays(in.Topics),
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if plan.Color == "" {
		plan.Color = model.ColorBlue
	}
	if plan.StartTime == "" {
		plan.StartTime = calendar.DefaultStartTime
	}
	if plan.EndTime == "" {
		plan.EndTime = calendar.DefaultEndTime
	}
	for i := range plan.Topics {
		if plan.Topics[i].TopicID == "" {
			plan.Topics[i].TopicID = uuid.NewString()
		}
	}

	events := calendar.Expand(plan, s.cal, s.directory)

	err := s.base.InTx(ctx, func(tx pgx.Tx) error {
		if err := s.planRepo.CreateTx(ctx, tx, &plan); err != nil {
			return err
		}
		return s.eventRepo.CreateBatchTx(ctx, tx, events)
	})
	if err != nil {
		s.logger.Error("Failed to persist plan",
			zap.String("plan_id", plan.PlanID),
			zap.Error(err))
		return nil, nil, fmt.Errorf("persist plan: %w", err)
	}

	s.holder.Apply(func(snap store.Snapshot) store.Snapshot {
		return snap.AppendPlan(plan).AppendEvents(events)
	})

	s.logger.Info("Plan created",
		zap.String("plan_id", plan.PlanID),
		zap.String("batch_id", plan.BatchID),
		zap.Int("topics", len(plan.Topics)),
		zap.Int("events", len(events)),
		zap.Int("total_duration_days", plan.TotalDurationDays))

	return &plan, events, nil
}

// GetPlans возвращает все планы
func (s *PlanService) GetPlans(ctx context.Context) ([]model.TrainingPlan, error) {
	return s.planRepo.GetAll(ctx)
}

// GetPlanByID возвращает план по id
func (s *PlanService) GetPlanByID(ctx context.Context, planID string) (*model.TrainingPlan, error) {
	return s.planRepo.GetByID(ctx, planID)
}

// GetPlansByBatch возвращает планы группы
func (s *PlanService) GetPlansByBatch(ctx context.Context, batchID string) ([]model.TrainingPlan, error) {
	return s.planRepo.GetByBatchID(ctx, batchID)
}

// WorkingEndDate дата последнего рабочего дня плана — для карточки плана
func (s *PlanService) WorkingEndDate(plan *model.TrainingPlan) time.Time {
	return calendar.WorkingEndDate(plan.StartDate, plan.TotalDurationDays, s.cal)
}

// UpdatePlanMeta обновляет заголовок/цвет/ответственного. Темы не
// редактируются и события не пересоздаются.
func (s *PlanService) UpdatePlanMeta(ctx context.Context, plan *model.TrainingPlan) error {
	if len(plan.Title) < 2 {
		return ErrPlanTitleTooShort
	}
	if err := s.planRepo.UpdateMeta(ctx, plan); err != nil {
		return err
	}
	s.logger.Info("Plan updated", zap.String("plan_id", plan.PlanID))
	return nil
}

// DeletePlan удаляет план. Развёрнутые события остаются в календаре —
// поведение сохранено как есть, осиротевшие события считает фоновый отчёт.
func (s *PlanService) DeletePlan(ctx context.Context, planID string) error {
	if err := s.planRepo.Delete(ctx, planID); err != nil {
		return err
	}

	s.holder.Apply(func(snap store.Snapshot) store.Snapshot {
		return snap.RemovePlan(planID)
	})

	s.logger.Info("Plan deleted, expanded events kept",
		zap.String("plan_id", planID))
	return nil
}
