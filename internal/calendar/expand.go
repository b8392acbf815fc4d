package calendar

import (
	"fmt"
	"time"

	"github.com/trainops/batch_planner/internal/model"
)

// Время занятий по умолчанию, если в плане не указано
const (
	DefaultStartTime = "09:30"
	DefaultEndTime   = "18:30"

	timeOfDayLayout = "15:04"
)

// UserDirectory справочник ответственных. Для неизвестного id возвращает
// заглушку "Unknown", а не ошибку.
type UserDirectory interface {
	ResolveUser(id string) model.EventUser
}

// DurationDays переводит длительность темы в количество рабочих дней.
// Месяц считается как фиксированные 30 дней — упрощение намеренное, уже
// созданные планы зависят от этой арифметики.
func DurationDays(topic model.Topic) int {
	switch topic.DurationUnit {
	case model.DurationWeeks:
		return topic.DurationValue * 7
	case model.DurationMonths:
		return topic.DurationValue * 30
	default:
		return topic.DurationValue
	}
}

// TotalDurationDays суммарная длительность плана в рабочих днях. Считается
// по той же формуле что и разворачивание, но независимо от него — только
// для отображения.
func TotalDurationDays(topics []model.Topic) int {
	total := 0
	for _, t := range topics {
		total += DurationDays(t)
	}
	return total
}

// Expand разворачивает план в последовательность событий: по одному событию
// на каждый рабочий день каждой темы. Курсор идёт по календарным дням от
// даты старта плана и не сбрасывается между темами — первая тема K+1
// начинается со следующего рабочего дня после последнего дня темы K.
// Выходные и праздники пропускаются, но календарные дни на них расходуются.
//
// Валидация входа (план без тем, неположительная длительность) — обязанность
// вызывающего, сюда приходит уже проверенный план.
func Expand(plan model.TrainingPlan, cal *WorkdayCalendar, dir UserDirectory) []model.CalendarEvent {
	startOfDay, endOfDay := planTimes(plan)
	user := dir.ResolveUser(plan.ResponsibleUserID)

	cursor := time.Date(plan.StartDate.Year(), plan.StartDate.Month(), plan.StartDate.Day(),
		0, 0, 0, 0, plan.StartDate.Location())

	var events []model.CalendarEvent
	for _, topic := range plan.Topics {
		durationDays := DurationDays(topic)

		added := 0
		for added < durationDays {
			if cal.IsWorkday(cursor) {
				dayKey := cursor.Format(dayKeyLayout)
				events = append(events, model.CalendarEvent{
					ID:         fmt.Sprintf("%s-%s-%s", plan.PlanID, topic.TopicID, dayKey),
					Title:      topic.Title,
					StartDate:  atTimeOfDay(cursor, startOfDay),
					EndDate:    atTimeOfDay(cursor, endOfDay),
					Color:      plan.Color,
					User:       user,
					PlanID:     plan.PlanID,
					TopicID:    topic.TopicID,
					IsHoliday:  false,
					DayOfEvent: dayKey,
					Position:   0,
					IsMultiDay: false,
				})
				added++
			}
			cursor = cursor.AddDate(0, 0, 1)
		}
	}
	return events
}

// WorkingEndDate возвращает календарную дату последнего рабочего дня плана —
// используется для отображения срока окончания в карточке плана
func WorkingEndDate(start time.Time, workingDays int, cal *WorkdayCalendar) time.Time {
	cursor := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
	if workingDays <= 0 {
		return cursor
	}
	counted := 0
	for {
		if cal.IsWorkday(cursor) {
			counted++
			if counted == workingDays {
				return cursor
			}
		}
		cursor = cursor.AddDate(0, 0, 1)
	}
}

// planTimes разбирает время начала и конца занятий плана, подставляя
// значения по умолчанию на пустые или кривые строки
func planTimes(plan model.TrainingPlan) (start, end time.Time) {
	start, err := time.Parse(timeOfDayLayout, plan.StartTime)
	if err != nil {
		start, _ = time.Parse(timeOfDayLayout, DefaultStartTime)
	}
	end, err = time.Parse(timeOfDayLayout, plan.EndTime)
	if err != nil {
		end, _ = time.Parse(timeOfDayLayout, DefaultEndTime)
	}
	return start, end
}

func atTimeOfDay(day, tod time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(),
		tod.Hour(), tod.Minute(), 0, 0, day.Location())
}
