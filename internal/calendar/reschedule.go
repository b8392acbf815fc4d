package calendar

import (
	"time"

	"github.com/trainops/batch_planner/internal/model"
)

// Reschedule переносит событие на новую дату и время, точно сохраняя
// исходную длительность. Правила рабочих дней к ручному переносу не
// применяются — событие можно бросить и на выходной.
func Reschedule(ev model.CalendarEvent, date time.Time, hour, minute int) model.CalendarEvent {
	duration := ev.EndDate.Sub(ev.StartDate)

	newStart := time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, date.Location())
	newEnd := newStart.Add(duration)

	ev.StartDate = newStart
	ev.EndDate = newEnd
	ev.DayOfEvent = newStart.Format(dayKeyLayout)
	ev.IsMultiDay = !sameCalendarDay(newStart, newEnd)
	return ev
}
