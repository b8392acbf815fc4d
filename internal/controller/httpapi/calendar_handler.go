package httpapi

import (
	"net/http"

	"go.uber.org/zap"
)

// GetCalendarView GET /api/calendar?view=&date=&user= — готовые к отрисовке
// данные представления. Для месяца дополнительно приходит раскладка сетки.
func (h *Handlers) GetCalendarView(w http.ResponseWriter, r *http.Request) {
	ref, err := parseDateParam(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
		return
	}

	view := r.URL.Query().Get("view")
	if view == "" {
		view = "month"
	}

	h.respondJSON(w, http.StatusOK, h.calendarService.BuildView(view, ref, userParam(r)))
}

// ExportICS GET /api/calendar/export.ics?view=&date=&user=
func (h *Handlers) ExportICS(w http.ResponseWriter, r *http.Request) {
	ref, err := parseDateParam(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
		return
	}

	view := r.URL.Query().Get("view")
	if view == "" {
		view = "month"
	}

	w.Header().Set("Content-Type", "text/calendar")
	w.Header().Set("Content-Disposition", `attachment; filename="calendar.ics"`)
	if _, err := w.Write([]byte(h.calendarService.ExportICS(view, ref, userParam(r)))); err != nil {
		h.logger.Error("Failed to write ICS response", zap.Error(err))
	}
}

// HealthCheck GET /healthz
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
