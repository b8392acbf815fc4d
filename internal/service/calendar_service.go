package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/trainops/batch_planner/internal/calendar"
	"github.com/trainops/batch_planner/internal/model"
	"github.com/trainops/batch_planner/internal/repository"
	"github.com/trainops/batch_planner/internal/store"
)

var (
	ErrEventNotFound     = errors.New("event not found")
	ErrEventInvalidRange = errors.New("event start must not be after end")
)

// CalendarService собирает данные представлений календаря и применяет
// действия пользователя (перенос, правка, ручное создание событий).
// Все производные считаются заново от текущего среза на каждый запрос.
type CalendarService struct {
	holder    *store.Holder
	eventRepo *repository.EventRepository
	directory *Directory
	logger    *zap.Logger
}

func NewCalendarService(
	holder *store.Holder,
	eventRepo *repository.EventRepository,
	directory *Directory,
	logger *zap.Logger,
) *CalendarService {
	return &CalendarService{
		holder:    holder,
		eventRepo: eventRepo,
		directory: directory,
		logger:    logger,
	}
}

// ViewData готовый к отрисовке ответ представления
type ViewData struct {
	View            string                `json:"view"`
	ReferenceDate   time.Time             `json:"reference_date"`
	SingleDayEvents []model.CalendarEvent `json:"single_day_events"`
	MultiDayEvents  []model.CalendarEvent `json:"multi_day_events"`
	Positions       map[string]int        `json:"positions,omitempty"`
	Cells           []calendar.CellView   `json:"cells,omitempty"`
}

// BuildView фильтрует события под режим, разбивает на одно- и многодневные
// и для месяца дополнительно считает раскладку сетки. Неизвестный режим
// даёт пустой ответ, а не ошибку.
func (s *CalendarService) BuildView(viewName string, ref time.Time, userID string) ViewData {
	snap := s.holder.Current()

	filtered := calendar.Filter(snap.Events(), viewName, ref, userID)
	singleDay, multiDay := calendar.SplitByDaySpan(filtered)

	data := ViewData{
		View:            viewName,
		ReferenceDate:   ref,
		SingleDayEvents: singleDay,
		MultiDayEvents:  multiDay,
	}

	if view, ok := calendar.ParseView(viewName); ok && view == calendar.ViewMonth {
		layout := calendar.BuildMonthLayout(multiDay, singleDay, ref)
		data.Positions = layout.Positions
		for _, cell := range calendar.MonthCells(ref) {
			data.Cells = append(data.Cells, layout.CellView(cell))
		}
	}
	return data
}

// MoveEvent перенос события drag-and-drop: длительность сохраняется,
// двигается только якорь. Проверок на рабочий день нет — ручной перенос
// может попасть и на выходной.
func (s *CalendarService) MoveEvent(ctx context.Context, eventID string, date time.Time, hour, minute int) (*model.CalendarEvent, error) {
	snap := s.holder.Current()
	ev, ok := snap.EventByID(eventID)
	if !ok {
		return nil, ErrEventNotFound
	}

	moved := calendar.Reschedule(ev, date, hour, minute)

	if err := s.eventRepo.Update(ctx, &moved); err != nil {
		return nil, fmt.Errorf("persist moved event: %w", err)
	}
	s.holder.Apply(func(snap store.Snapshot) store.Snapshot {
		return snap.UpdateEvent(moved)
	})

	s.logger.Info("Event rescheduled",
		zap.String("event_id", eventID),
		zap.Time("new_start", moved.StartDate),
		zap.Time("new_end", moved.EndDate))

	return &moved, nil
}

// CreateEventInput форма ручного создания события. В отличие от
// развёрнутых из плана, такое событие может занимать несколько дней.
type CreateEventInput struct {
	Title             string           `json:"title"`
	StartDate         time.Time        `json:"start_date"`
	EndDate           time.Time        `json:"end_date"`
	Color             model.EventColor `json:"color"`
	ResponsibleUserID string           `json:"responsible_user_id"`
	IsHoliday         bool             `json:"is_holiday"`
}

// CreateEvent добавляет событие, созданное вручную
func (s *CalendarService) CreateEvent(ctx context.Context, in CreateEventInput) (*model.CalendarEvent, error) {
	if len(in.Title) < 2 {
		return nil, ErrPlanTitleTooShort
	}
	if in.StartDate.After(in.EndDate) {
		return nil, ErrEventInvalidRange
	}

	color := in.Color
	if color == "" {
		color = model.ColorBlue
	}

	start := in.StartDate
	ev := model.CalendarEvent{
		ID:         uuid.NewString(),
		Title:      in.Title,
		StartDate:  start,
		EndDate:    in.EndDate,
		Color:      color,
		User:       s.directory.ResolveUser(in.ResponsibleUserID),
		IsHoliday:  in.IsHoliday,
		DayOfEvent: start.Format("2006-01-02"),
	}
	ev.IsMultiDay = !calendar.IsSingleDay(ev.StartDate, ev.EndDate)

	if err := s.eventRepo.Create(ctx, &ev); err != nil {
		return nil, fmt.Errorf("persist event: %w", err)
	}
	s.holder.Apply(func(snap store.Snapshot) store.Snapshot {
		return snap.AppendEvent(ev)
	})

	s.logger.Info("Event created",
		zap.String("event_id", ev.ID),
		zap.Bool("is_multi_day", ev.IsMultiDay))
	return &ev, nil
}

// UpdateEventInput правка события: заголовок, время, ответственный
type UpdateEventInput struct {
	Title             string    `json:"title"`
	StartDate         time.Time `json:"start_date"`
	EndDate           time.Time `json:"end_date"`
	ResponsibleUserID *string   `json:"responsible_user_id,omitempty"`
}

// UpdateEvent правит существующее событие. Связь с планом не трогается:
// правка события не влияет на темы плана и наоборот.
func (s *CalendarService) UpdateEvent(ctx context.Context, eventID string, in UpdateEventInput) (*model.CalendarEvent, error) {
	if in.StartDate.After(in.EndDate) {
		return nil, ErrEventInvalidRange
	}

	snap := s.holder.Current()
	ev, ok := snap.EventByID(eventID)
	if !ok {
		return nil, ErrEventNotFound
	}

	if in.Title != "" {
		ev.Title = in.Title
	}
	ev.StartDate = in.StartDate
	ev.EndDate = in.EndDate
	ev.DayOfEvent = in.StartDate.Format("2006-01-02")
	ev.IsMultiDay = !calendar.IsSingleDay(ev.StartDate, ev.EndDate)
	if in.ResponsibleUserID != nil {
		ev.User = s.directory.ResolveUser(*in.ResponsibleUserID)
	}

	if err := s.eventRepo.Update(ctx, &ev); err != nil {
		return nil, fmt.Errorf("persist event: %w", err)
	}
	s.holder.Apply(func(snap store.Snapshot) store.Snapshot {
		return snap.UpdateEvent(ev)
	})

	s.logger.Info("Event updated", zap.String("event_id", eventID))
	return &ev, nil
}

// Events возвращает события, попадающие в режим/дату/ответственного
func (s *CalendarService) Events(viewName string, ref time.Time, userID string) []model.CalendarEvent {
	return calendar.Filter(s.holder.Current().Events(), viewName, ref, userID)
}

// ExportICS сериализует отфильтрованные события в iCalendar
func (s *CalendarService) ExportICS(viewName string, ref time.Time, userID string) string {
	events := s.Events(viewName, ref, userID)

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//batch_planner//calendar//EN")

	for _, ev := range events {
		e := cal.AddEvent(ev.ID)
		e.SetSummary(ev.Title)
		e.SetStartAt(ev.StartDate)
		e.SetEndAt(ev.EndDate)
		if ev.User.Name != "" {
			e.SetDescription(fmt.Sprintf("Responsible: %s", ev.User.Name))
		}
	}
	return cal.Serialize()
}

// OrphanedEvents события удалённых планов — для фонового отчёта
func (s *CalendarService) OrphanedEvents() []model.CalendarEvent {
	return s.holder.Current().OrphanedEvents()
}
