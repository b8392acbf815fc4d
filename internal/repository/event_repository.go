package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/trainops/batch_planner/internal/model"
)

type EventRepository struct {
	pool *pgxpool.Pool
}

func NewEventRepository(pool *pgxpool.Pool) *EventRepository {
	return &EventRepository{pool: pool}
}

const eventColumns = `id, title, start_time, end_time, color, user_id, user_name, user_picture,
		plan_id, topic_id, is_holiday, day_of_event, position, is_multi_day`

// Create сохраняет одно событие
func (r *EventRepository) Create(ctx context.Context, ev *model.CalendarEvent) error {
	query := `
		INSERT INTO calendar_events (` + eventColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`

	_, err := r.pool.Exec(ctx, query, eventArgs(ev)...)
	if err != nil {
		return fmt.Errorf("create event: %w", err)
	}
	return nil
}

// CreateBatchTx сохраняет пачку событий внутри переданной транзакции —
// используется при создании плана, чтобы план и его события записались
// атомарно
func (r *EventRepository) CreateBatchTx(ctx context.Context, tx pgx.Tx, events []model.CalendarEvent) error {
	query := `
		INSERT INTO calendar_events (` + eventColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`

	for i := range events {
		if _, err := tx.Exec(ctx, query, eventArgs(&events[i])...); err != nil {
			return fmt.Errorf("create event %s: %w", events[i].ID, err)
		}
	}
	return nil
}

// GetByID получает событие по ID
func (r *EventRepository) GetByID(ctx context.Context, id string) (*model.CalendarEvent, error) {
	query := `SELECT ` + eventColumns + ` FROM calendar_events WHERE id = $1`

	ev, err := scanEvent(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get event by id: %w", err)
	}
	return ev, nil
}

// GetAll получает все события в порядке начала
func (r *EventRepository) GetAll(ctx context.Context) ([]model.CalendarEvent, error) {
	query := `SELECT ` + eventColumns + ` FROM calendar_events ORDER BY start_time, id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("get all events: %w", err)
	}
	defer rows.Close()

	return collectEvents(rows)
}

// GetInRange получает события, пересекающие инклюзивный диапазон [from, to]
func (r *EventRepository) GetInRange(ctx context.Context, from, to time.Time) ([]model.CalendarEvent, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM calendar_events
		WHERE start_time <= $2 AND end_time >= $1
		ORDER BY start_time, id
	`

	rows, err := r.pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("get events in range: %w", err)
	}
	defer rows.Close()

	return collectEvents(rows)
}

// Update заменяет событие целиком
func (r *EventRepository) Update(ctx context.Context, ev *model.CalendarEvent) error {
	query := `
		UPDATE calendar_events
		SET title = $2, start_time = $3, end_time = $4, color = $5,
		    user_id = $6, user_name = $7, user_picture = $8,
		    plan_id = $9, topic_id = $10, is_holiday = $11,
		    day_of_event = $12, position = $13, is_multi_day = $14
		WHERE id = $1
	`

	result, err := r.pool.Exec(ctx, query, eventArgs(ev)...)
	if err != nil {
		return fmt.Errorf("update event: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("event not found")
	}
	return nil
}

func eventArgs(ev *model.CalendarEvent) []interface{} {
	return []interface{}{
		ev.ID,
		ev.Title,
		ev.StartDate,
		ev.EndDate,
		ev.Color,
		ev.User.ID,
		ev.User.Name,
		ev.User.PicturePath,
		ev.PlanID,
		ev.TopicID,
		ev.IsHoliday,
		ev.DayOfEvent,
		ev.Position,
		ev.IsMultiDay,
	}
}

func scanEvent(row pgx.Row) (*model.CalendarEvent, error) {
	var ev model.CalendarEvent
	err := row.Scan(
		&ev.ID,
		&ev.Title,
		&ev.StartDate,
		&ev.EndDate,
		&ev.Color,
		&ev.User.ID,
		&ev.User.Name,
		&ev.User.PicturePath,
		&ev.PlanID,
		&ev.TopicID,
		&ev.IsHoliday,
		&ev.DayOfEvent,
		&ev.Position,
		&ev.IsMultiDay,
	)
	if err != nil {
		return nil, err
	}
	return &ev, nil
}

func collectEvents(rows pgx.Rows) ([]model.CalendarEvent, error) {
	var events []model.CalendarEvent
	for rows.Next() {
		ev, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		events = append(events, *ev)
	}
	return events, nil
}
