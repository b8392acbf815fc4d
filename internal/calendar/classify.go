package calendar

import (
	"time"

	"github.com/trainops/batch_planner/internal/model"
)

// sameCalendarDay проверяет что два момента приходятся на один календарный
// день локального времени
func sameCalendarDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

// IsSingleDay проверяет что событие с такими границами однодневное
func IsSingleDay(start, end time.Time) bool {
	return sameCalendarDay(start, end)
}

// SplitByDaySpan разбивает события на однодневные и многодневные. Разбиение
// полное и непересекающееся: каждое событие попадает ровно в одну группу.
func SplitByDaySpan(events []model.CalendarEvent) (singleDay, multiDay []model.CalendarEvent) {
	for _, ev := range events {
		if sameCalendarDay(ev.StartDate, ev.EndDate) {
			singleDay = append(singleDay, ev)
		} else {
			multiDay = append(multiDay, ev)
		}
	}
	return singleDay, multiDay
}
