package calendar

import (
	"time"

	"github.com/trainops/batch_planner/internal/model"
)

// AllUsers специальное значение фильтра ответственного: без ограничения
const AllUsers = "all"

// Filter возвращает события, пересекающие диапазон режима view вокруг опорной
// даты, опционально ограниченные одним ответственным. Тест пересечения
// инклюзивный: событие, касающееся границы диапазона, попадает в результат.
// Неизвестный режим — пустой результат.
func Filter(events []model.CalendarEvent, viewName string, ref time.Time, userID string) []model.CalendarEvent {
	view, ok := ParseView(viewName)
	if !ok {
		return nil
	}
	return FilterView(events, view, ref, userID)
}

// FilterView то же что Filter, но с уже разобранным режимом
func FilterView(events []model.CalendarEvent, view View, ref time.Time, userID string) []model.CalendarEvent {
	rangeStart, rangeEnd := view.Range(ref)

	var filtered []model.CalendarEvent
	for _, ev := range events {
		if ev.StartDate.After(rangeEnd) || ev.EndDate.Before(rangeStart) {
			continue
		}
		if userID != AllUsers && ev.User.ID != userID {
			continue
		}
		filtered = append(filtered, ev)
	}
	return filtered
}
