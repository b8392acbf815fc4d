package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trainops/batch_planner/internal/model"
)

type stubDirectory map[string]model.EventUser

func (d stubDirectory) ResolveUser(id string) model.EventUser {
	if user, ok := d[id]; ok {
		return user
	}
	return model.EventUser{ID: id, Name: "Unknown"}
}

func testPlan(start time.Time, topics ...model.Topic) model.TrainingPlan {
	return model.TrainingPlan{
		PlanID:            "plan-1",
		Title:             "Go onboarding",
		StartDate:         start,
		Topics:            topics,
		Color:             model.ColorBlue,
		ResponsibleUserID: "U001",
		StartTime:         "09:30",
		EndTime:           "18:30",
		BatchID:           "batch-1",
	}
}

func TestExpandEmitsOneEventPerWorkingDay(t *testing.T) {
	cal := NewWorkdayCalendar(nil)
	dir := stubDirectory{"U001": {ID: "U001", Name: "Ivan Petrov"}}

	// понедельник, 5 рабочих дней подряд
	plan := testPlan(
		time.Date(2024, 6, 3, 0, 0, 0, 0, time.Local),
		model.Topic{TopicID: "t1", Title: "Basics", DurationValue: 5, DurationUnit: model.DurationDays},
	)

	events := Expand(plan, cal, dir)
	require.Len(t, events, 5)

	expectedDays := []string{"2024-06-03", "2024-06-04", "2024-06-05", "2024-06-06", "2024-06-07"}
	for i, ev := range events {
		assert.Equal(t, expectedDays[i], ev.DayOfEvent)
		assert.Equal(t, "Basics", ev.Title)
		assert.Equal(t, "Ivan Petrov", ev.User.Name)
		assert.Equal(t, "plan-1-t1-"+expectedDays[i], ev.ID)
		assert.False(t, ev.IsMultiDay)
		assert.False(t, ev.IsHoliday)
		assert.Equal(t, 9, ev.StartDate.Hour())
		assert.Equal(t, 30, ev.StartDate.Minute())
		assert.Equal(t, 18, ev.EndDate.Hour())
	}
}

func TestExpandSkipsWeekend(t *testing.T) {
	cal := NewWorkdayCalendar(nil)
	dir := stubDirectory{}

	// пятница + 3 дня: пятница, затем через выходные понедельник и вторник
	plan := testPlan(
		time.Date(2024, 6, 7, 0, 0, 0, 0, time.Local),
		model.Topic{TopicID: "t1", Title: "Basics", DurationValue: 3, DurationUnit: model.DurationDays},
	)

	events := Expand(plan, cal, dir)
	require.Len(t, events, 3)
	assert.Equal(t, "2024-06-07", events[0].DayOfEvent)
	assert.Equal(t, "2024-06-10", events[1].DayOfEvent)
	assert.Equal(t, "2024-06-11", events[2].DayOfEvent)
}

func TestExpandSkipsHolidays(t *testing.T) {
	cal := NewWorkdayCalendar([]string{"2024-06-04"})
	dir := stubDirectory{}

	plan := testPlan(
		time.Date(2024, 6, 3, 0, 0, 0, 0, time.Local),
		model.Topic{TopicID: "t1", Title: "Basics", DurationValue: 2, DurationUnit: model.DurationDays},
	)

	events := Expand(plan, cal, dir)
	require.Len(t, events, 2)
	assert.Equal(t, "2024-06-03", events[0].DayOfEvent)
	assert.Equal(t, "2024-06-05", events[1].DayOfEvent)
}

func TestExpandTopicsDoNotOverlap(t *testing.T) {
	cal := NewWorkdayCalendar(nil)
	dir := stubDirectory{}

	plan := testPlan(
		time.Date(2024, 6, 3, 0, 0, 0, 0, time.Local),
		model.Topic{TopicID: "t1", Title: "Basics", DurationValue: 1, DurationUnit: model.DurationWeeks},
		model.Topic{TopicID: "t2", Title: "Advanced", DurationValue: 3, DurationUnit: model.DurationDays},
	)

	events := Expand(plan, cal, dir)
	require.Len(t, events, 10) // 7 + 3 рабочих дней

	var lastOfFirst, firstOfSecond string
	for _, ev := range events {
		if ev.TopicID == "t1" {
			lastOfFirst = ev.DayOfEvent
		}
		if ev.TopicID == "t2" && firstOfSecond == "" {
			firstOfSecond = ev.DayOfEvent
		}
	}
	assert.Less(t, lastOfFirst, firstOfSecond)
}

func TestExpandMonthsUseThirtyDayApproximation(t *testing.T) {
	cal := NewWorkdayCalendar(nil)
	dir := stubDirectory{}

	plan := testPlan(
		time.Date(2024, 6, 3, 0, 0, 0, 0, time.Local),
		model.Topic{TopicID: "t1", Title: "Deep dive", DurationValue: 1, DurationUnit: model.DurationMonths},
	)

	events := Expand(plan, cal, dir)
	assert.Len(t, events, 30)
}

func TestExpandUnknownResponsibleUser(t *testing.T) {
	cal := NewWorkdayCalendar(nil)
	dir := stubDirectory{}

	plan := testPlan(
		time.Date(2024, 6, 3, 0, 0, 0, 0, time.Local),
		model.Topic{TopicID: "t1", Title: "Basics", DurationValue: 1, DurationUnit: model.DurationDays},
	)

	events := Expand(plan, cal, dir)
	require.Len(t, events, 1)
	assert.Equal(t, "Unknown", events[0].User.Name)
}

func TestTotalDurationDays(t *testing.T) {
	topics := []model.Topic{
		{DurationValue: 5, DurationUnit: model.DurationDays},
		{DurationValue: 2, DurationUnit: model.DurationWeeks},
		{DurationValue: 1, DurationUnit: model.DurationMonths},
	}
	assert.Equal(t, 5+14+30, TotalDurationDays(topics))
	assert.Equal(t, 0, TotalDurationDays(nil))
}

func TestWorkingEndDate(t *testing.T) {
	cal := NewWorkdayCalendar(nil)

	// 3 рабочих дня с пятницы: пятница, понедельник, вторник
	end := WorkingEndDate(time.Date(2024, 6, 7, 0, 0, 0, 0, time.Local), 3, cal)
	assert.Equal(t, "2024-06-11", end.Format("2006-01-02"))
}
