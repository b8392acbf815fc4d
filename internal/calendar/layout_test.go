package calendar

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trainops/batch_planner/internal/model"
)

func TestMonthCells(t *testing.T) {
	// июнь 2024: 1-е — суббота, 30-е — воскресенье
	cells := MonthCells(time.Date(2024, 6, 15, 0, 0, 0, 0, time.Local))

	require.NotEmpty(t, cells)
	assert.Equal(t, 0, len(cells)%7, "grid must consist of full weeks")

	assert.Equal(t, time.Sunday, cells[0].Date.Weekday())
	assert.Equal(t, time.Saturday, cells[len(cells)-1].Date.Weekday())

	// сетка начинается 26 мая и захватывает хвост мая
	assert.Equal(t, "2024-05-26", cells[0].Date.Format("2006-01-02"))
	assert.False(t, cells[0].CurrentMonth)

	current := 0
	for _, cell := range cells {
		if cell.CurrentMonth {
			current++
		}
	}
	assert.Equal(t, 30, current)
}

func TestBuildMonthLayoutLanes(t *testing.T) {
	ref := time.Date(2024, 6, 15, 0, 0, 0, 0, time.Local)

	multiDay := []model.CalendarEvent{
		makeEvent("bar-a", "U001",
			time.Date(2024, 6, 3, 9, 0, 0, 0, time.Local),
			time.Date(2024, 6, 7, 18, 0, 0, 0, time.Local)),
		makeEvent("bar-b", "U001",
			time.Date(2024, 6, 5, 9, 0, 0, 0, time.Local),
			time.Date(2024, 6, 10, 18, 0, 0, 0, time.Local)),
		makeEvent("bar-c", "U001",
			time.Date(2024, 6, 11, 9, 0, 0, 0, time.Local),
			time.Date(2024, 6, 12, 18, 0, 0, 0, time.Local)),
	}

	layout := BuildMonthLayout(multiDay, nil, ref)

	// пересекающиеся полосы на разных дорожках
	assert.Equal(t, 0, layout.Positions["bar-a"])
	assert.Equal(t, 1, layout.Positions["bar-b"])
	// bar-c не пересекается с bar-a и занимает освободившуюся нижнюю дорожку
	assert.Equal(t, 0, layout.Positions["bar-c"])

	// полоса присутствует в каждой ячейке своего диапазона
	for day := 3; day <= 7; day++ {
		events := layout.CellEvents(time.Date(2024, 6, day, 0, 0, 0, 0, time.Local))
		ids := make([]string, 0, len(events))
		for _, ev := range events {
			ids = append(ids, ev.ID)
		}
		assert.Contains(t, ids, "bar-a", "day %d", day)
	}
}

func TestBuildMonthLayoutSingleDayBelowBars(t *testing.T) {
	ref := time.Date(2024, 6, 15, 0, 0, 0, 0, time.Local)

	multiDay := []model.CalendarEvent{
		makeEvent("bar", "U001",
			time.Date(2024, 6, 3, 9, 0, 0, 0, time.Local),
			time.Date(2024, 6, 5, 18, 0, 0, 0, time.Local)),
	}
	singleDay := []model.CalendarEvent{
		makeEvent("one", "U001",
			time.Date(2024, 6, 4, 9, 0, 0, 0, time.Local),
			time.Date(2024, 6, 4, 10, 0, 0, 0, time.Local)),
		makeEvent("two", "U001",
			time.Date(2024, 6, 4, 11, 0, 0, 0, time.Local),
			time.Date(2024, 6, 4, 12, 0, 0, 0, time.Local)),
	}

	layout := BuildMonthLayout(multiDay, singleDay, ref)

	assert.Equal(t, 0, layout.Positions["bar"])
	assert.Equal(t, 1, layout.Positions["one"])
	assert.Equal(t, 2, layout.Positions["two"])

	events := layout.CellEvents(time.Date(2024, 6, 4, 0, 0, 0, 0, time.Local))
	require.Len(t, events, 3)
	assert.Equal(t, "bar", events[0].ID)
	assert.Equal(t, "one", events[1].ID)
	assert.Equal(t, "two", events[2].ID)
}

func TestCellViewOverflowCap(t *testing.T) {
	ref := time.Date(2024, 6, 15, 0, 0, 0, 0, time.Local)
	day := time.Date(2024, 6, 4, 0, 0, 0, 0, time.Local)

	var singleDay []model.CalendarEvent
	for i := 0; i < 5; i++ {
		singleDay = append(singleDay, makeEvent(
			fmt.Sprintf("ev-%d", i), "U001",
			day.Add(time.Duration(9+i)*time.Hour),
			day.Add(time.Duration(10+i)*time.Hour)))
	}

	layout := BuildMonthLayout(nil, singleDay, ref)
	view := layout.CellView(Cell{Date: day, Day: 4, CurrentMonth: true})

	assert.Len(t, view.Events, MaxVisibleEventsPerCell)
	assert.Equal(t, 2, view.Overflow)
	assert.Nil(t, view.Holiday)
}

func TestCellViewHolidaySuppressesBadges(t *testing.T) {
	ref := time.Date(2024, 6, 15, 0, 0, 0, 0, time.Local)
	day := time.Date(2024, 6, 4, 0, 0, 0, 0, time.Local)

	holiday := makeEvent("holiday", "U001", day.Add(9*time.Hour), day.Add(10*time.Hour))
	holiday.IsHoliday = true
	holiday.Title = "Independence Day"

	ordinary := makeEvent("ordinary", "U001", day.Add(11*time.Hour), day.Add(12*time.Hour))

	layout := BuildMonthLayout(nil, []model.CalendarEvent{ordinary, holiday}, ref)
	view := layout.CellView(Cell{Date: day, Day: 4, CurrentMonth: true})

	require.NotNil(t, view.Holiday)
	assert.Equal(t, "Independence Day", view.Holiday.Title)
	assert.Empty(t, view.Events)
	assert.Zero(t, view.Overflow)
}

func TestCellViewEmptyDay(t *testing.T) {
	ref := time.Date(2024, 6, 15, 0, 0, 0, 0, time.Local)
	layout := BuildMonthLayout(nil, nil, ref)

	view := layout.CellView(Cell{Date: time.Date(2024, 6, 4, 0, 0, 0, 0, time.Local), Day: 4, CurrentMonth: true})
	assert.Empty(t, view.Events)
	assert.Zero(t, view.Overflow)
	assert.Nil(t, view.Holiday)
}

func TestBuildMonthLayoutIsDeterministic(t *testing.T) {
	ref := time.Date(2024, 6, 15, 0, 0, 0, 0, time.Local)

	multiDay := []model.CalendarEvent{
		makeEvent("bar-a", "U001",
			time.Date(2024, 6, 3, 9, 0, 0, 0, time.Local),
			time.Date(2024, 6, 7, 18, 0, 0, 0, time.Local)),
		makeEvent("bar-b", "U001",
			time.Date(2024, 6, 5, 9, 0, 0, 0, time.Local),
			time.Date(2024, 6, 10, 18, 0, 0, 0, time.Local)),
	}
	singleDay := []model.CalendarEvent{
		makeEvent("one", "U001",
			time.Date(2024, 6, 4, 9, 0, 0, 0, time.Local),
			time.Date(2024, 6, 4, 10, 0, 0, 0, time.Local)),
	}

	first := BuildMonthLayout(multiDay, singleDay, ref)
	second := BuildMonthLayout(multiDay, singleDay, ref)

	assert.Equal(t, first.Positions, second.Positions)
	for day := 1; day <= 30; day++ {
		date := time.Date(2024, 6, day, 0, 0, 0, 0, time.Local)
		assert.Equal(t, first.CellEvents(date), second.CellEvents(date))
	}
}
