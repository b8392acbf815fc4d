package calendar

import "time"

// View режим отображения календаря. Закрытый набор вариантов: добавление
// нового режима требует расширить switch в Range.
type View int

const (
	ViewDay View = iota
	ViewWeek
	ViewMonth
	ViewYear
	ViewAgenda
)

func (v View) String() string {
	switch v {
	case ViewDay:
		return "day"
	case ViewWeek:
		return "week"
	case ViewMonth:
		return "month"
	case ViewYear:
		return "year"
	case ViewAgenda:
		return "agenda"
	}
	return "unknown"
}

// ParseView разбирает строковое имя режима. Неизвестное имя — ok=false,
// фильтр в этом случае вернёт пустой результат, а не ошибку.
func ParseView(s string) (View, bool) {
	switch s {
	case "day":
		return ViewDay, true
	case "week":
		return ViewWeek, true
	case "month":
		return ViewMonth, true
	case "year":
		return ViewYear, true
	case "agenda":
		return ViewAgenda, true
	}
	return 0, false
}

// Range возвращает инклюзивный диапазон [start, end] режима для опорной даты.
//   - year:  1 января 00:00:00 — 31 декабря 23:59:59.999
//   - month/agenda: первый — последний день месяца (конец дня)
//   - week:  неделя с воскресенья, 7 дней
//   - day:   календарный день опорной даты
func (v View) Range(ref time.Time) (start, end time.Time) {
	loc := ref.Location()
	switch v {
	case ViewYear:
		start = time.Date(ref.Year(), time.January, 1, 0, 0, 0, 0, loc)
		end = time.Date(ref.Year(), time.December, 31, 23, 59, 59, int(999*time.Millisecond), loc)
	case ViewMonth, ViewAgenda:
		start = time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, loc)
		// день 0 следующего месяца — последний день текущего
		end = time.Date(ref.Year(), ref.Month()+1, 0, 23, 59, 59, int(999*time.Millisecond), loc)
	case ViewWeek:
		weekStart := ref.AddDate(0, 0, -int(ref.Weekday()))
		start = time.Date(weekStart.Year(), weekStart.Month(), weekStart.Day(), 0, 0, 0, 0, loc)
		weekEnd := start.AddDate(0, 0, 6)
		end = time.Date(weekEnd.Year(), weekEnd.Month(), weekEnd.Day(), 23, 59, 59, int(999*time.Millisecond), loc)
	case ViewDay:
		start = time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, loc)
		end = time.Date(ref.Year(), ref.Month(), ref.Day(), 23, 59, 59, 0, loc)
	}
	return start, end
}
