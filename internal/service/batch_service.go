package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/trainops/batch_planner/internal/model"
	"github.com/trainops/batch_planner/internal/repository"
)

var (
	ErrBatchTitleTooShort = errors.New("batch title must be at least 2 characters")
	ErrBatchInvalidDates  = errors.New("batch end date must not be before start date")
	ErrBatchNotFound      = errors.New("batch not found")
)

// BatchService CRUD групп обучения и назначение менторов/тренеров/обучаемых
type BatchService struct {
	batchRepo *repository.BatchRepository
	logger    *zap.Logger
}

func NewBatchService(batchRepo *repository.BatchRepository, logger *zap.Logger) *BatchService {
	return &BatchService{batchRepo: batchRepo, logger: logger}
}

// CreateBatchInput форма создания группы
type CreateBatchInput struct {
	Title             string    `json:"title"`
	Status            string    `json:"status"`
	Region            string    `json:"region"`
	StartDate         time.Time `json:"start_date"`
	EndDate           time.Time `json:"end_date"`
	Mentors           []string  `json:"mentors"`
	Reviewers         []string  `json:"reviewers"`
	Trainers          []string  `json:"trainers"`
	Trainees          []string  `json:"trainees"`
	CourseDescription string    `json:"course_description"`
}

func validateBatchInput(in CreateBatchInput) error {
	if len(in.Title) < 2 {
		return ErrBatchTitleTooShort
	}
	if in.EndDate.Before(in.StartDate) {
		return ErrBatchInvalidDates
	}
	return nil
}

// CreateBatch создаёт группу
func (s *BatchService) CreateBatch(ctx context.Context, in CreateBatchInput) (*model.Batch, error) {
	if err := validateBatchInput(in); err != nil {
		return nil, err
	}

	status := model.BatchStatus(in.Status)
	if status == "" {
		status = model.BatchStatusPlanned
	}

	now := time.Now()
	batch := model.Batch{
		ID:                uuid.NewString(),
		Title:             in.Title,
		Status:            status,
		Region:            in.Region,
		StartDate:         in.StartDate,
		EndDate:           in.EndDate,
		Mentors:           in.Mentors,
		Reviewers:         in.Reviewers,
		Trainers:          in.Trainers,
		Trainees:          in.Trainees,
		CourseDescription: in.CourseDescription,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := s.batchRepo.Create(ctx, &batch); err != nil {
		return nil, err
	}

	s.logger.Info("Batch created",
		zap.String("batch_id", batch.ID),
		zap.String("title", batch.Title),
		zap.Int("trainees", len(batch.Trainees)))
	return &batch, nil
}

// GetBatches возвращает все группы
func (s *BatchService) GetBatches(ctx context.Context) ([]model.Batch, error) {
	return s.batchRepo.GetAll(ctx)
}

// GetBatchByID возвращает группу по id
func (s *BatchService) GetBatchByID(ctx context.Context, id string) (*model.Batch, error) {
	return s.batchRepo.GetByID(ctx, id)
}

// UpdateBatch обновляет группу целиком
func (s *BatchService) UpdateBatch(ctx context.Context, id string, in CreateBatchInput) (*model.Batch, error) {
	if err := validateBatchInput(in); err != nil {
		return nil, err
	}

	existing, err := s.batchRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrBatchNotFound
	}

	existing.Title = in.Title
	if in.Status != "" {
		existing.Status = model.BatchStatus(in.Status)
	}
	existing.Region = in.Region
	existing.StartDate = in.StartDate
	existing.EndDate = in.EndDate
	existing.Mentors = in.Mentors
	existing.Reviewers = in.Reviewers
	existing.Trainers = in.Trainers
	existing.Trainees = in.Trainees
	existing.CourseDescription = in.CourseDescription

	if err := s.batchRepo.Update(ctx, existing); err != nil {
		return nil, err
	}

	s.logger.Info("Batch updated", zap.String("batch_id", id))
	return existing, nil
}

// DeleteBatch удаляет группу. Планы группы и их события не трогаются.
func (s *BatchService) DeleteBatch(ctx context.Context, id string) error {
	if err := s.batchRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("Batch deleted", zap.String("batch_id", id))
	return nil
}
