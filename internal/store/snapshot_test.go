package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trainops/batch_planner/internal/model"
)

func event(id, planID string) model.CalendarEvent {
	start := time.Date(2024, 6, 3, 9, 30, 0, 0, time.Local)
	return model.CalendarEvent{
		ID:        id,
		PlanID:    planID,
		Title:     "event",
		StartDate: start,
		EndDate:   start.Add(9 * time.Hour),
	}
}

func TestAppendEventDoesNotMutateOriginal(t *testing.T) {
	base := NewSnapshot(nil, []model.CalendarEvent{event("e1", "p1")})

	next := base.AppendEvent(event("e2", "p1"))

	assert.Len(t, base.Events(), 1)
	assert.Len(t, next.Events(), 2)
}

func TestUpdateEvent(t *testing.T) {
	base := NewSnapshot(nil, []model.CalendarEvent{event("e1", "p1"), event("e2", "p1")})

	updated := event("e2", "p1")
	updated.Title = "edited"
	next := base.UpdateEvent(updated)

	got, ok := next.EventByID("e2")
	require.True(t, ok)
	assert.Equal(t, "edited", got.Title)

	// исходный срез не изменился
	original, _ := base.EventByID("e2")
	assert.Equal(t, "event", original.Title)
}

func TestUpdateUnknownEventKeepsSnapshot(t *testing.T) {
	base := NewSnapshot(nil, []model.CalendarEvent{event("e1", "p1")})
	next := base.UpdateEvent(event("missing", "p1"))
	assert.Equal(t, base.Events(), next.Events())
}

func TestRemovePlanKeepsEvents(t *testing.T) {
	plan := model.TrainingPlan{PlanID: "p1", Title: "Plan"}
	base := NewSnapshot([]model.TrainingPlan{plan}, []model.CalendarEvent{event("e1", "p1")})

	next := base.RemovePlan("p1")

	_, ok := next.PlanByID("p1")
	assert.False(t, ok)
	// события удалённого плана остаются
	assert.Len(t, next.Events(), 1)
}

func TestOrphanedEvents(t *testing.T) {
	plan := model.TrainingPlan{PlanID: "p1", Title: "Plan"}
	snap := NewSnapshot([]model.TrainingPlan{plan}, []model.CalendarEvent{
		event("e1", "p1"),
		event("e2", "gone"),
		event("manual", ""),
	})

	orphans := snap.OrphanedEvents()
	require.Len(t, orphans, 1)
	assert.Equal(t, "e2", orphans[0].ID)
}
