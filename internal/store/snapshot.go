package store

import "github.com/trainops/batch_planner/internal/model"

// Snapshot неизменяемый срез состояния планов и событий. Функции отрисовки
// получают срез только на чтение, все мутации идут через именованные
// операции, возвращающие новый срез — внутри логики рендеринга чтений
// общего состояния нет.
type Snapshot struct {
	events []model.CalendarEvent
	plans  []model.TrainingPlan
}

// NewSnapshot создаёт срез из загруженных записей
func NewSnapshot(plans []model.TrainingPlan, events []model.CalendarEvent) Snapshot {
	return Snapshot{
		plans:  append([]model.TrainingPlan(nil), plans...),
		events: append([]model.CalendarEvent(nil), events...),
	}
}

// Events возвращает копию списка событий
func (s Snapshot) Events() []model.CalendarEvent {
	return append([]model.CalendarEvent(nil), s.events...)
}

// Plans возвращает копию списка планов
func (s Snapshot) Plans() []model.TrainingPlan {
	return append([]model.TrainingPlan(nil), s.plans...)
}

// PlanByID ищет план; второй результат false если плана нет
func (s Snapshot) PlanByID(planID string) (model.TrainingPlan, bool) {
	for _, p := range s.plans {
		if p.PlanID == planID {
			return p, true
		}
	}
	return model.TrainingPlan{}, false
}

// EventByID ищет событие; второй результат false если события нет
func (s Snapshot) EventByID(id string) (model.CalendarEvent, bool) {
	for _, ev := range s.events {
		if ev.ID == id {
			return ev, true
		}
	}
	return model.CalendarEvent{}, false
}

// AppendEvent возвращает новый срез с добавленным событием
func (s Snapshot) AppendEvent(ev model.CalendarEvent) Snapshot {
	events := make([]model.CalendarEvent, 0, len(s.events)+1)
	events = append(events, s.events...)
	events = append(events, ev)
	return Snapshot{events: events, plans: s.plans}
}

// AppendEvents возвращает новый срез с пачкой добавленных событий
func (s Snapshot) AppendEvents(batch []model.CalendarEvent) Snapshot {
	events := make([]model.CalendarEvent, 0, len(s.events)+len(batch))
	events = append(events, s.events...)
	events = append(events, batch...)
	return Snapshot{events: events, plans: s.plans}
}

// UpdateEvent возвращает новый срез с заменённым по id событием.
// Неизвестный id оставляет срез без изменений.
func (s Snapshot) UpdateEvent(ev model.CalendarEvent) Snapshot {
	events := append([]model.CalendarEvent(nil), s.events...)
	for i := range events {
		if events[i].ID == ev.ID {
			events[i] = ev
			break
		}
	}
	return Snapshot{events: events, plans: s.plans}
}

// AppendPlan возвращает новый срез с добавленным планом
func (s Snapshot) AppendPlan(p model.TrainingPlan) Snapshot {
	plans := make([]model.TrainingPlan, 0, len(s.plans)+1)
	plans = append(plans, s.plans...)
	plans = append(plans, p)
	return Snapshot{events: s.events, plans: plans}
}

// RemovePlan возвращает новый срез без плана. События плана намеренно
// остаются: удаление плана не каскадится на уже развёрнутые события.
func (s Snapshot) RemovePlan(planID string) Snapshot {
	plans := make([]model.TrainingPlan, 0, len(s.plans))
	for _, p := range s.plans {
		if p.PlanID != planID {
			plans = append(plans, p)
		}
	}
	return Snapshot{events: s.events, plans: plans}
}

// OrphanedEvents события, чей план уже удалён. Используется фоновым
// отчётом — само состояние не меняется.
func (s Snapshot) OrphanedEvents() []model.CalendarEvent {
	known := make(map[string]struct{}, len(s.plans))
	for _, p := range s.plans {
		known[p.PlanID] = struct{}{}
	}

	var orphans []model.CalendarEvent
	for _, ev := range s.events {
		if ev.PlanID == "" {
			continue
		}
		if _, ok := known[ev.PlanID]; !ok {
			orphans = append(orphans, ev)
		}
	}
	return orphans
}
