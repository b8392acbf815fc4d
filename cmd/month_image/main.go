package main

import (
	"fmt"
	"os"
	"time"

	"github.com/trainops/batch_planner/internal/calendar"
	"github.com/trainops/batch_planner/internal/model"
	"github.com/trainops/batch_planner/internal/render"
)

func main() {
	// Создаем тестовые данные: текущий месяц
	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	user := model.EventUser{ID: "emp-100", Name: "Test Trainer"}

	// Однодневные события
	singleDay := []model.CalendarEvent{
		{
			ID:        "demo-1",
			Title:     "Go Basics",
			StartDate: monthStart.AddDate(0, 0, 2).Add(9*time.Hour + 30*time.Minute),
			EndDate:   monthStart.AddDate(0, 0, 2).Add(18*time.Hour + 30*time.Minute),
			Color:     model.ColorBlue,
			User:      user,
		},
		{
			ID:        "demo-2",
			Title:     "SQL Workshop",
			StartDate: monthStart.AddDate(0, 0, 3).Add(9*time.Hour + 30*time.Minute),
			EndDate:   monthStart.AddDate(0, 0, 3).Add(18*time.Hour + 30*time.Minute),
			Color:     model.ColorGreen,
			User:      user,
		},
		{
			ID:        "demo-3",
			Title:     "Code Review",
			StartDate: monthStart.AddDate(0, 0, 3).Add(10 * time.Hour),
			EndDate:   monthStart.AddDate(0, 0, 3).Add(11 * time.Hour),
			Color:     model.ColorOrange,
			User:      user,
		},
		{
			ID:        "demo-4",
			Title:     "Retrospective",
			StartDate: monthStart.AddDate(0, 0, 3).Add(15 * time.Hour),
			EndDate:   monthStart.AddDate(0, 0, 3).Add(16 * time.Hour),
			Color:     model.ColorPurple,
			User:      user,
		},
		{
			ID:        "demo-5",
			Title:     "Standup",
			StartDate: monthStart.AddDate(0, 0, 3).Add(17 * time.Hour),
			EndDate:   monthStart.AddDate(0, 0, 3).Add(17*time.Hour + 30*time.Minute),
			Color:     model.ColorGray,
			User:      user,
		},
	}

	// Многодневные события: перекрывающиеся полосы в разных дорожках
	multiDay := []model.CalendarEvent{
		{
			ID:         "demo-bar-1",
			Title:      "Onboarding Week",
			StartDate:  monthStart.AddDate(0, 0, 7).Add(9 * time.Hour),
			EndDate:    monthStart.AddDate(0, 0, 11).Add(18 * time.Hour),
			Color:      model.ColorRed,
			User:       user,
			IsMultiDay: true,
		},
		{
			ID:         "demo-bar-2",
			Title:      "Project Sprint",
			StartDate:  monthStart.AddDate(0, 0, 9).Add(9 * time.Hour),
			EndDate:    monthStart.AddDate(0, 0, 14).Add(18 * time.Hour),
			Color:      model.ColorYellow,
			User:       user,
			IsMultiDay: true,
		},
	}

	// Праздник посреди месяца, чтобы проверить подавление ячейки
	holiday := model.CalendarEvent{
		ID:         "demo-holiday",
		Title:      "Public Holiday",
		StartDate:  monthStart.AddDate(0, 0, 17),
		EndDate:    monthStart.AddDate(0, 0, 17).Add(23 * time.Hour),
		Color:      model.ColorGray,
		IsHoliday:  true,
		DayOfEvent: monthStart.AddDate(0, 0, 17).Format("2006-01-02"),
	}
	singleDay = append(singleDay, holiday)

	for i := range singleDay {
		if singleDay[i].DayOfEvent == "" {
			singleDay[i].DayOfEvent = singleDay[i].StartDate.Format("2006-01-02")
		}
	}

	// Генерируем изображение
	imageData, err := render.MonthImage(monthStart, singleDay, multiDay)
	if err != nil {
		fmt.Printf("Ошибка генерации изображения: %v\n", err)
		os.Exit(1)
	}

	// Сохраняем в файл
	filename := "month.png"
	if err := os.WriteFile(filename, imageData, 0644); err != nil {
		fmt.Printf("Ошибка сохранения файла: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✅ Изображение успешно сохранено в %s\n", filename)
	fmt.Printf("📅 Месяц: %s\n", monthStart.Format("January 2006"))
	fmt.Printf("📊 Ячеек в сетке: %d\n", len(calendar.MonthCells(monthStart)))
}
