package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/trainops/batch_planner/internal/service"
)

// GetEvents GET /api/events?view=&date=&user=
func (h *Handlers) GetEvents(w http.ResponseWriter, r *http.Request) {
	ref, err := parseDateParam(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
		return
	}

	view := r.URL.Query().Get("view")
	if view == "" {
		view = "month"
	}

	h.respondJSON(w, http.StatusOK, h.calendarService.Events(view, ref, userParam(r)))
}

// CreateEvent POST /api/events — ручное создание события, в том числе
// многодневного
func (h *Handlers) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var in service.CreateEventInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ev, err := h.calendarService.CreateEvent(r.Context(), in)
	if err != nil {
		if isValidationError(err) {
			h.respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.Error("Failed to create event", zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "failed to create event")
		return
	}

	h.respondJSON(w, http.StatusCreated, ev)
}

// UpdateEvent PUT /api/events/{id}
func (h *Handlers) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var in service.UpdateEventInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ev, err := h.calendarService.UpdateEvent(r.Context(), id, in)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEventNotFound):
			h.respondError(w, http.StatusNotFound, err.Error())
		case isValidationError(err):
			h.respondError(w, http.StatusBadRequest, err.Error())
		default:
			h.logger.Error("Failed to update event", zap.String("event_id", id), zap.Error(err))
			h.respondError(w, http.StatusInternalServerError, "failed to update event")
		}
		return
	}

	h.respondJSON(w, http.StatusOK, ev)
}

// moveEventRequest тело запроса переноса: куда бросили событие
type moveEventRequest struct {
	Date   string `json:"date"` // YYYY-MM-DD
	Hour   int    `json:"hour"`
	Minute int    `json:"minute"`
}

// MoveEvent POST /api/events/{id}/move — drag-and-drop перенос
func (h *Handlers) MoveEvent(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req moveEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	date, err := time.ParseInLocation("2006-01-02", req.Date, time.Local)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
		return
	}
	if req.Hour < 0 || req.Hour > 23 || req.Minute < 0 || req.Minute > 59 {
		h.respondError(w, http.StatusBadRequest, "invalid time slot")
		return
	}

	ev, err := h.calendarService.MoveEvent(r.Context(), id, date, req.Hour, req.Minute)
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			h.respondError(w, http.StatusNotFound, err.Error())
			return
		}
		h.logger.Error("Failed to move event", zap.String("event_id", id), zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "failed to move event")
		return
	}

	h.respondJSON(w, http.StatusOK, ev)
}
