package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestReschedulePreservesDuration(t *testing.T) {
	ev := makeEvent("ev", "U001",
		time.Date(2024, 6, 12, 9, 30, 0, 0, time.Local),
		time.Date(2024, 6, 12, 18, 30, 0, 0, time.Local))
	originalDuration := ev.EndDate.Sub(ev.StartDate)

	moved := Reschedule(ev, time.Date(2024, 6, 20, 0, 0, 0, 0, time.Local), 14, 15)

	assert.Equal(t, originalDuration, moved.EndDate.Sub(moved.StartDate))
	assert.Equal(t, time.Date(2024, 6, 20, 14, 15, 0, 0, time.Local), moved.StartDate)
	assert.Equal(t, "2024-06-20", moved.DayOfEvent)
	assert.False(t, moved.IsMultiDay)

	// исходное событие не тронуто
	assert.Equal(t, time.Date(2024, 6, 12, 9, 30, 0, 0, time.Local), ev.StartDate)
}

func TestRescheduleAllowsWeekendDrop(t *testing.T) {
	ev := makeEvent("ev", "U001",
		time.Date(2024, 6, 12, 9, 30, 0, 0, time.Local),
		time.Date(2024, 6, 12, 18, 30, 0, 0, time.Local))

	// суббота — правила рабочих дней к переносу не применяются
	moved := Reschedule(ev, time.Date(2024, 6, 15, 0, 0, 0, 0, time.Local), 9, 30)
	assert.Equal(t, "2024-06-15", moved.DayOfEvent)
}

func TestRescheduleMultiDayEvent(t *testing.T) {
	ev := makeEvent("ev", "U001",
		time.Date(2024, 6, 10, 9, 0, 0, 0, time.Local),
		time.Date(2024, 6, 12, 18, 0, 0, 0, time.Local))
	originalDuration := ev.EndDate.Sub(ev.StartDate)

	moved := Reschedule(ev, time.Date(2024, 6, 24, 0, 0, 0, 0, time.Local), 9, 0)

	assert.Equal(t, originalDuration, moved.EndDate.Sub(moved.StartDate))
	assert.True(t, moved.IsMultiDay)
	assert.Equal(t, "2024-06-26", moved.EndDate.Format("2006-01-02"))
}

func TestRescheduleMidnightDrop(t *testing.T) {
	ev := makeEvent("ev", "U001",
		time.Date(2024, 6, 12, 23, 0, 0, 0, time.Local),
		time.Date(2024, 6, 13, 1, 0, 0, 0, time.Local))

	moved := Reschedule(ev, time.Date(2024, 6, 20, 0, 0, 0, 0, time.Local), 10, 0)

	assert.Equal(t, 2*time.Hour, moved.EndDate.Sub(moved.StartDate))
	assert.False(t, moved.IsMultiDay)
}
