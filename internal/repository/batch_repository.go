package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/trainops/batch_planner/internal/model"
)

type BatchRepository struct {
	pool *pgxpool.Pool
}

func NewBatchRepository(pool *pgxpool.Pool) *BatchRepository {
	return &BatchRepository{pool: pool}
}

const batchColumns = `id, title, status, region, start_date, end_date,
		mentors, reviewers, trainers, trainees, course_description, created_at, updated_at`

// Create создаёт новую группу
func (r *BatchRepository) Create(ctx context.Context, b *model.Batch) error {
	query := `
		INSERT INTO batches (` + batchColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	_, err := r.pool.Exec(ctx, query,
		b.ID, b.Title, b.Status, b.Region, b.StartDate, b.EndDate,
		b.Mentors, b.Reviewers, b.Trainers, b.Trainees,
		b.CourseDescription, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("create batch: %w", err)
	}
	return nil
}

// GetByID получает группу по ID
func (r *BatchRepository) GetByID(ctx context.Context, id string) (*model.Batch, error) {
	query := `SELECT ` + batchColumns + ` FROM batches WHERE id = $1`

	b, err := scanBatch(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get batch by id: %w", err)
	}
	return b, nil
}

// GetAll получает все группы
func (r *BatchRepository) GetAll(ctx context.Context) ([]model.Batch, error) {
	query := `SELECT ` + batchColumns + ` FROM batches ORDER BY created_at, id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("get all batches: %w", err)
	}
	defer rows.Close()

	var batches []model.Batch
	for rows.Next() {
		b, err := scanBatch(rows)
		if err != nil {
			return nil, fmt.Errorf("scan batch: %w", err)
		}
		batches = append(batches, *b)
	}
	return batches, nil
}

// Update заменяет группу целиком
func (r *BatchRepository) Update(ctx context.Context, b *model.Batch) error {
	query := `
		UPDATE batches
		SET title = $2, status = $3, region = $4, start_date = $5, end_date = $6,
		    mentors = $7, reviewers = $8, trainers = $9, trainees = $10,
		    course_description = $11, updated_at = now()
		WHERE id = $1
	`

	result, err := r.pool.Exec(ctx, query,
		b.ID, b.Title, b.Status, b.Region, b.StartDate, b.EndDate,
		b.Mentors, b.Reviewers, b.Trainers, b.Trainees, b.CourseDescription,
	)
	if err != nil {
		return fmt.Errorf("update batch: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("batch not found")
	}
	return nil
}

// Delete удаляет группу
func (r *BatchRepository) Delete(ctx context.Context, id string) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM batches WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete batch: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("batch not found")
	}
	return nil
}

func scanBatch(row pgx.Row) (*model.Batch, error) {
	var b model.Batch
	err := row.Scan(
		&b.ID,
		&b.Title,
		&b.Status,
		&b.Region,
		&b.StartDate,
		&b.EndDate,
		&b.Mentors,
		&b.Reviewers,
		&b.Trainers,
		&b.Trainees,
		&b.CourseDescription,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}
