package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trainops/batch_planner/internal/model"
)

func makeEvent(id, userID string, start, end time.Time) model.CalendarEvent {
	return model.CalendarEvent{
		ID:        id,
		Title:     "event " + id,
		StartDate: start,
		EndDate:   end,
		User:      model.EventUser{ID: userID, Name: "user " + userID},
	}
}

func TestFilterViewRanges(t *testing.T) {
	ref := time.Date(2024, 6, 12, 12, 0, 0, 0, time.Local) // Wednesday

	events := []model.CalendarEvent{
		makeEvent("in-day", "U001",
			time.Date(2024, 6, 12, 9, 30, 0, 0, time.Local),
			time.Date(2024, 6, 12, 18, 30, 0, 0, time.Local)),
		makeEvent("in-week", "U001",
			time.Date(2024, 6, 14, 9, 30, 0, 0, time.Local),
			time.Date(2024, 6, 14, 18, 30, 0, 0, time.Local)),
		makeEvent("in-month", "U001",
			time.Date(2024, 6, 28, 9, 30, 0, 0, time.Local),
			time.Date(2024, 6, 28, 18, 30, 0, 0, time.Local)),
		makeEvent("in-year", "U001",
			time.Date(2024, 11, 1, 9, 30, 0, 0, time.Local),
			time.Date(2024, 11, 1, 18, 30, 0, 0, time.Local)),
		makeEvent("next-year", "U001",
			time.Date(2025, 1, 2, 9, 30, 0, 0, time.Local),
			time.Date(2025, 1, 2, 18, 30, 0, 0, time.Local)),
	}

	tests := []struct {
		view     string
		expected []string
	}{
		{"day", []string{"in-day"}},
		{"week", []string{"in-day", "in-week"}},
		{"month", []string{"in-day", "in-week", "in-month"}},
		{"agenda", []string{"in-day", "in-week", "in-month"}},
		{"year", []string{"in-day", "in-week", "in-month", "in-year"}},
	}

	for _, tt := range tests {
		t.Run(tt.view, func(t *testing.T) {
			filtered := Filter(events, tt.view, ref, AllUsers)
			ids := make([]string, 0, len(filtered))
			for _, ev := range filtered {
				ids = append(ids, ev.ID)
			}
			assert.ElementsMatch(t, tt.expected, ids)
		})
	}
}

func TestFilterBoundaryInclusive(t *testing.T) {
	ref := time.Date(2024, 6, 12, 12, 0, 0, 0, time.Local)
	dayStart := time.Date(2024, 6, 12, 0, 0, 0, 0, time.Local)

	events := []model.CalendarEvent{
		// заканчивается ровно на границе начала диапазона — включается
		makeEvent("touches-start", "U001",
			time.Date(2024, 6, 11, 20, 0, 0, 0, time.Local),
			dayStart),
		// целиком до диапазона — исключается
		makeEvent("before", "U001",
			time.Date(2024, 6, 11, 8, 0, 0, 0, time.Local),
			time.Date(2024, 6, 11, 9, 0, 0, 0, time.Local)),
		// целиком после — исключается
		makeEvent("after", "U001",
			time.Date(2024, 6, 13, 8, 0, 0, 0, time.Local),
			time.Date(2024, 6, 13, 9, 0, 0, 0, time.Local)),
		// многодневное, частично пересекает день — включается
		makeEvent("spanning", "U001",
			time.Date(2024, 6, 10, 9, 0, 0, 0, time.Local),
			time.Date(2024, 6, 14, 18, 0, 0, 0, time.Local)),
	}

	filtered := Filter(events, "day", ref, AllUsers)
	ids := make([]string, 0, len(filtered))
	for _, ev := range filtered {
		ids = append(ids, ev.ID)
	}
	assert.ElementsMatch(t, []string{"touches-start", "spanning"}, ids)
}

func TestFilterByResponsibleUser(t *testing.T) {
	ref := time.Date(2024, 6, 12, 12, 0, 0, 0, time.Local)

	events := []model.CalendarEvent{
		makeEvent("a", "U001",
			time.Date(2024, 6, 12, 9, 0, 0, 0, time.Local),
			time.Date(2024, 6, 12, 10, 0, 0, 0, time.Local)),
		makeEvent("b", "U002",
			time.Date(2024, 6, 12, 9, 0, 0, 0, time.Local),
			time.Date(2024, 6, 12, 10, 0, 0, 0, time.Local)),
	}

	filtered := Filter(events, "day", ref, "U002")
	require.Len(t, filtered, 1)
	assert.Equal(t, "b", filtered[0].ID)

	assert.Len(t, Filter(events, "day", ref, AllUsers), 2)
}

func TestFilterUnknownViewReturnsEmpty(t *testing.T) {
	ref := time.Date(2024, 6, 12, 12, 0, 0, 0, time.Local)
	events := []model.CalendarEvent{
		makeEvent("a", "U001", ref, ref.Add(time.Hour)),
	}

	assert.Empty(t, Filter(events, "quarter", ref, AllUsers))
	assert.Empty(t, Filter(events, "", ref, AllUsers))
}

func TestFilterIsIdempotent(t *testing.T) {
	ref := time.Date(2024, 6, 12, 12, 0, 0, 0, time.Local)
	events := []model.CalendarEvent{
		makeEvent("a", "U001",
			time.Date(2024, 6, 12, 9, 0, 0, 0, time.Local),
			time.Date(2024, 6, 12, 10, 0, 0, 0, time.Local)),
		makeEvent("b", "U002",
			time.Date(2024, 6, 1, 9, 0, 0, 0, time.Local),
			time.Date(2024, 6, 1, 10, 0, 0, 0, time.Local)),
	}

	first := Filter(events, "month", ref, AllUsers)
	second := Filter(events, "month", ref, AllUsers)
	assert.Equal(t, first, second)
}
