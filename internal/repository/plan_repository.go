package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/trainops/batch_planner/internal/model"
)

type PlanRepository struct {
	pool *pgxpool.Pool
}

func NewPlanRepository(pool *pgxpool.Pool) *PlanRepository {
	return &PlanRepository{pool: pool}
}

const planColumns = `id, title, start_date, topics, color, responsible_user_id,
		start_time, end_time, batch_id, total_duration_days, created_at, updated_at`

// CreateTx сохраняет план внутри переданной транзакции. Темы хранятся
// одним jsonb-документом: после разворачивания план не является источником
// правды для событий, по темам не ищем.
func (r *PlanRepository) CreateTx(ctx context.Context, tx pgx.Tx, plan *model.TrainingPlan) error {
	topics, err := json.Marshal(plan.Topics)
	if err != nil {
		return fmt.Errorf("marshal topics: %w", err)
	}

	query := `
		INSERT INTO training_plans (` + planColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err = tx.Exec(ctx, query,
		plan.PlanID,
		plan.Title,
		plan.StartDate,
		topics,
		plan.Color,
		plan.ResponsibleUserID,
		plan.StartTime,
		plan.EndTime,
		plan.BatchID,
		plan.TotalDurationDays,
		plan.CreatedAt,
		plan.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("create plan: %w", err)
	}
	return nil
}

// GetByID получает план по ID
func (r *PlanRepository) GetByID(ctx context.Context, planID string) (*model.TrainingPlan, error) {
	query := `SELECT ` + planColumns + ` FROM training_plans WHERE id = $1`

	plan, err := scanPlan(r.pool.QueryRow(ctx, query, planID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get plan by id: %w", err)
	}
	return plan, nil
}

// GetAll получает все планы
func (r *PlanRepository) GetAll(ctx context.Context) ([]model.TrainingPlan, error) {
	query := `SELECT ` + planColumns + ` FROM training_plans ORDER BY created_at, id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("get all plans: %w", err)
	}
	defer rows.Close()

	var plans []model.TrainingPlan
	for rows.Next() {
		plan, err := scanPlan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan plan: %w", err)
		}
		plans = append(plans, *plan)
	}
	return plans, nil
}

// GetByBatchID получает планы одной группы
func (r *PlanRepository) GetByBatchID(ctx context.Context, batchID string) ([]model.TrainingPlan, error) {
	query := `SELECT ` + planColumns + ` FROM training_plans WHERE batch_id = $1 ORDER BY created_at, id`

	rows, err := r.pool.Query(ctx, query, batchID)
	if err != nil {
		return nil, fmt.Errorf("get plans by batch: %w", err)
	}
	defer rows.Close()

	var plans []model.TrainingPlan
	for rows.Next() {
		plan, err := scanPlan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan plan: %w", err)
		}
		plans = append(plans, *plan)
	}
	return plans, nil
}

// UpdateMeta обновляет метаданные плана. Темы и уже развёрнутые события
// не трогаем: правка темы после создания плана не приводит к повторному
// разворачиванию.
func (r *PlanRepository) UpdateMeta(ctx context.Context, plan *model.TrainingPlan) error {
	query := `
		UPDATE training_plans
		SET title = $2, color = $3, responsible_user_id = $4, updated_at = now()
		WHERE id = $1
	`

	result, err := r.pool.Exec(ctx, query, plan.PlanID, plan.Title, plan.Color, plan.ResponsibleUserID)
	if err != nil {
		return fmt.Errorf("update plan: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("plan not found")
	}
	return nil
}

// Delete удаляет план. События плана намеренно не удаляются.
func (r *PlanRepository) Delete(ctx context.Context, planID string) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM training_plans WHERE id = $1`, planID)
	if err != nil {
		return fmt.Errorf("delete plan: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("plan not found")
	}
	return nil
}

func scanPlan(row pgx.Row) (*model.TrainingPlan, error) {
	var plan model.TrainingPlan
	var topics []byte

	err := row.Scan(
		&plan.PlanID,
		&plan.Title,
		&plan.StartDate,
		&topics,
		&plan.Color,
		&plan.ResponsibleUserID,
		&plan.StartTime,
		&plan.EndTime,
		&plan.BatchID,
		&plan.TotalDurationDays,
		&plan.CreatedAt,
		&plan.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(topics, &plan.Topics); err != nil {
		return nil, fmt.Errorf("unmarshal topics: %w", err)
	}
	return &plan, nil
}
