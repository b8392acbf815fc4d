package calendar

import "time"

// DayType тип календарного дня
type DayType string

const (
	DayWorking  DayType = "working"
	DaySaturday DayType = "saturday"
	DaySunday   DayType = "sunday"
	DayHoliday  DayType = "holiday"
)

const dayKeyLayout = "2006-01-02"

// WorkdayCalendar определяет рабочие дни: выходные Сб/Вс плюс статический
// список праздников в формате YYYY-MM-DD
type WorkdayCalendar struct {
	holidays map[string]struct{}
}

// NewWorkdayCalendar создаёт календарь с заданным списком праздничных дат
func NewWorkdayCalendar(holidayDates []string) *WorkdayCalendar {
	holidays := make(map[string]struct{}, len(holidayDates))
	for _, d := range holidayDates {
		holidays[d] = struct{}{}
	}
	return &WorkdayCalendar{holidays: holidays}
}

// ClassifyDay классифицирует дату. Приоритет: воскресенье, суббота, праздник,
// иначе рабочий день. Тотальная функция — ошибок нет.
func (c *WorkdayCalendar) ClassifyDay(date time.Time) DayType {
	switch date.Weekday() {
	case time.Sunday:
		return DaySunday
	case time.Saturday:
		return DaySaturday
	}
	if _, ok := c.holidays[date.Format(dayKeyLayout)]; ok {
		return DayHoliday
	}
	return DayWorking
}

// IsWorkday проверяет что дата — рабочий день
func (c *WorkdayCalendar) IsWorkday(date time.Time) bool {
	return c.ClassifyDay(date) == DayWorking
}
