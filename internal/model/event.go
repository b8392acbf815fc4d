package model

import "time"

type EventColor string

const (
	ColorBlue   EventColor = "blue"
	ColorGreen  EventColor = "green"
	ColorRed    EventColor = "red"
	ColorYellow EventColor = "yellow"
	ColorPurple EventColor = "purple"
	ColorOrange EventColor = "orange"
	ColorGray   EventColor = "gray"
)

// EventUser отображаемый ответственный за событие
type EventUser struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	PicturePath string `json:"picture_path"`
}

// CalendarEvent одно событие календаря (один рабочий день темы после разворачивания плана,
// либо созданное вручную — такое может занимать несколько дней)
type CalendarEvent struct {
	ID         string     `json:"id"`
	Title      string     `json:"title"`
	StartDate  time.Time  `json:"start_date"`
	EndDate    time.Time  `json:"end_date"`
	Color      EventColor `json:"color"`
	User       EventUser  `json:"user"`
	PlanID     string     `json:"plan_id"`
	TopicID    string     `json:"topic_id"`
	IsHoliday  bool       `json:"is_holiday"`
	DayOfEvent string     `json:"day_of_event"` // календарный день начала, YYYY-MM-DD
	Position   int        `json:"position"`
	IsMultiDay bool       `json:"is_multi_day"`
}
