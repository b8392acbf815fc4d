package calendar

import (
	"sort"
	"time"

	"github.com/trainops/batch_planner/internal/model"
)

// MaxVisibleEventsPerCell максимум бейджей в ячейке месяца, остальное
// сворачивается в "+N more"
const MaxVisibleEventsPerCell = 3

// Cell одна ячейка сетки месяца. Живёт только в рамках одного рендера,
// никогда не сохраняется.
type Cell struct {
	Date         time.Time `json:"date"`
	Day          int       `json:"day"`
	CurrentMonth bool      `json:"current_month"`
}

// MonthCells строит сетку месяца: полные недели с воскресенья, покрывающие
// месяц опорной даты. Ячейки соседних месяцев помечены CurrentMonth=false.
func MonthCells(ref time.Time) []Cell {
	loc := ref.Location()
	firstOfMonth := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, loc)
	lastOfMonth := time.Date(ref.Year(), ref.Month()+1, 0, 0, 0, 0, 0, loc)

	gridStart := firstOfMonth.AddDate(0, 0, -int(firstOfMonth.Weekday()))
	gridEnd := lastOfMonth.AddDate(0, 0, int(time.Saturday-lastOfMonth.Weekday()))

	var cells []Cell
	for d := gridStart; !d.After(gridEnd); d = d.AddDate(0, 0, 1) {
		cells = append(cells, Cell{
			Date:         d,
			Day:          d.Day(),
			CurrentMonth: d.Month() == ref.Month(),
		})
	}
	return cells
}

// MonthLayout раскладка событий по сетке месяца: дорожка (lane) каждого
// события и упорядоченный список событий каждой ячейки
type MonthLayout struct {
	Positions  map[string]int
	cellEvents map[string][]model.CalendarEvent
}

// CellEvents возвращает все события ячейки в порядке дорожек
func (l MonthLayout) CellEvents(date time.Time) []model.CalendarEvent {
	return l.cellEvents[date.Format(dayKeyLayout)]
}

// CellView ячейка, готовая к отрисовке: видимые события после применения
// лимита, счётчик переполнения и праздничная пометка
type CellView struct {
	Date         time.Time             `json:"date"`
	Day          int                   `json:"day"`
	CurrentMonth bool                  `json:"current_month"`
	Events       []model.CalendarEvent `json:"events"`
	Overflow     int                   `json:"overflow"`
	Holiday      *model.CalendarEvent  `json:"holiday,omitempty"`
}

// CellView применяет правила видимости к ячейке: если первое событие —
// праздник, ячейка показывает только его; иначе не более
// MaxVisibleEventsPerCell событий плюс счётчик скрытых.
func (l MonthLayout) CellView(cell Cell) CellView {
	view := CellView{
		Date:         cell.Date,
		Day:          cell.Day,
		CurrentMonth: cell.CurrentMonth,
	}

	events := l.CellEvents(cell.Date)
	if len(events) == 0 {
		return view
	}

	if events[0].IsHoliday {
		holiday := events[0]
		view.Holiday = &holiday
		return view
	}

	if len(events) > MaxVisibleEventsPerCell {
		view.Events = events[:MaxVisibleEventsPerCell]
		view.Overflow = len(events) - MaxVisibleEventsPerCell
	} else {
		view.Events = events
	}
	return view
}

// BuildMonthLayout считает раскладку месяца. Многодневные события
// сканируются в порядке даты начала и занимают минимальную дорожку, не
// занятую другим пересекающимся многодневным событием — так полоса события
// остаётся на одной высоте во всех неделях, которые оно пересекает.
// Однодневные события заполняют дорожки ниже полос. Раскладка
// детерминированная: одни и те же входы дают один и тот же результат.
func BuildMonthLayout(multiDay, singleDay []model.CalendarEvent, ref time.Time) MonthLayout {
	layout := MonthLayout{
		Positions:  make(map[string]int),
		cellEvents: make(map[string][]model.CalendarEvent),
	}

	cells := MonthCells(ref)
	if len(cells) == 0 {
		return layout
	}
	gridStart := cells[0].Date
	gridEnd := cells[len(cells)-1].Date

	// Дорожки многодневных: сортировка по началу, затем по id для стабильности
	bars := append([]model.CalendarEvent(nil), multiDay...)
	sort.SliceStable(bars, func(i, j int) bool {
		if !bars[i].StartDate.Equal(bars[j].StartDate) {
			return bars[i].StartDate.Before(bars[j].StartDate)
		}
		return bars[i].ID < bars[j].ID
	})

	type placedBar struct {
		start, end time.Time // границы в календарных днях
		lane       int
	}
	var placed []placedBar

	for _, ev := range bars {
		start := truncateToDay(ev.StartDate)
		end := truncateToDay(ev.EndDate)

		lane := 0
		for {
			occupied := false
			for _, p := range placed {
				if p.lane == lane && !start.After(p.end) && !end.Before(p.start) {
					occupied = true
					break
				}
			}
			if !occupied {
				break
			}
			lane++
		}

		layout.Positions[ev.ID] = lane
		placed = append(placed, placedBar{start: start, end: end, lane: lane})

		// Полоса занимает каждую ячейку своего диапазона внутри сетки
		ev.Position = lane
		for d := maxDay(start, gridStart); !d.After(minDay(end, gridEnd)); d = d.AddDate(0, 0, 1) {
			key := d.Format(dayKeyLayout)
			layout.cellEvents[key] = append(layout.cellEvents[key], ev)
		}
	}

	// Однодневные события идут под полосами, в порядке времени начала
	days := append([]model.CalendarEvent(nil), singleDay...)
	sort.SliceStable(days, func(i, j int) bool {
		if !days[i].StartDate.Equal(days[j].StartDate) {
			return days[i].StartDate.Before(days[j].StartDate)
		}
		return days[i].ID < days[j].ID
	})

	nextLane := make(map[string]int)
	for _, ev := range days {
		key := truncateToDay(ev.StartDate).Format(dayKeyLayout)

		lane, ok := nextLane[key]
		if !ok {
			// первая свободная дорожка ниже всех полос этой ячейки
			for _, bar := range layout.cellEvents[key] {
				if bar.Position >= lane {
					lane = bar.Position + 1
				}
			}
		}
		nextLane[key] = lane + 1

		layout.Positions[ev.ID] = lane
		ev.Position = lane
		layout.cellEvents[key] = append(layout.cellEvents[key], ev)
	}

	// Праздничные события поднимаются в голову списка своей ячейки
	for key, events := range layout.cellEvents {
		sort.SliceStable(events, func(i, j int) bool {
			if events[i].IsHoliday != events[j].IsHoliday {
				return events[i].IsHoliday
			}
			return events[i].Position < events[j].Position
		})
		layout.cellEvents[key] = events
	}

	return layout
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func maxDay(a, b time.Time) time.Time {
	if a.Before(b) {
		return b
	}
	return a
}

func minDay(a, b time.Time) time.Time {
	if a.After(b) {
		return b
	}
	return a
}
