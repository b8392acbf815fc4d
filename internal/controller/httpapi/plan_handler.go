package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/trainops/batch_planner/internal/model"
	"github.com/trainops/batch_planner/internal/service"
)

// planResponse план вместе с развёрнутыми событиями и расчётной датой конца
type planResponse struct {
	Plan    *model.TrainingPlan   `json:"plan"`
	Events  []model.CalendarEvent `json:"events,omitempty"`
	EndDate string                `json:"end_date"`
}

// CreatePlan POST /api/plans — создаёт план и сразу разворачивает его
// в события календаря
func (h *Handlers) CreatePlan(w http.ResponseWriter, r *http.Request) {
	var in service.CreatePlanInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	plan, events, err := h.planService.CreatePlan(r.Context(), in)
	if err != nil {
		if isValidationError(err) {
			h.respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.Error("Failed to create plan", zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "failed to create plan")
		return
	}

	h.respondJSON(w, http.StatusCreated, planResponse{
		Plan:    plan,
		Events:  events,
		EndDate: h.planService.WorkingEndDate(plan).Format("2006-01-02"),
	})
}

// GetPlans GET /api/plans
func (h *Handlers) GetPlans(w http.ResponseWriter, r *http.Request) {
	plans, err := h.planService.GetPlans(r.Context())
	if err != nil {
		h.logger.Error("Failed to list plans", zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "failed to list plans")
		return
	}
	h.respondJSON(w, http.StatusOK, plans)
}

// GetPlan GET /api/plans/{id}
func (h *Handlers) GetPlan(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	plan, err := h.planService.GetPlanByID(r.Context(), id)
	if err != nil {
		h.logger.Error("Failed to get plan", zap.String("plan_id", id), zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "failed to get plan")
		return
	}
	if plan == nil {
		h.respondError(w, http.StatusNotFound, "plan not found")
		return
	}

	h.respondJSON(w, http.StatusOK, planResponse{
		Plan:    plan,
		EndDate: h.planService.WorkingEndDate(plan).Format("2006-01-02"),
	})
}

// UpdatePlan PUT /api/plans/{id} — только метаданные; темы не
// редактируются, события не пересоздаются
func (h *Handlers) UpdatePlan(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	plan, err := h.planService.GetPlanByID(r.Context(), id)
	if err != nil {
		h.logger.Error("Failed to get plan", zap.String("plan_id", id), zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "failed to get plan")
		return
	}
	if plan == nil {
		h.respondError(w, http.StatusNotFound, "plan not found")
		return
	}

	var in struct {
		Title             string           `json:"title"`
		Color             model.EventColor `json:"color"`
		ResponsibleUserID string           `json:"responsible_user_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if in.Title != "" {
		plan.Title = in.Title
	}
	if in.Color != "" {
		plan.Color = in.Color
	}
	if in.ResponsibleUserID != "" {
		plan.ResponsibleUserID = in.ResponsibleUserID
	}

	if err := h.planService.UpdatePlanMeta(r.Context(), plan); err != nil {
		if isValidationError(err) {
			h.respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.Error("Failed to update plan", zap.String("plan_id", id), zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "failed to update plan")
		return
	}

	h.respondJSON(w, http.StatusOK, plan)
}

// DeletePlan DELETE /api/plans/{id} — события плана остаются в календаре
func (h *Handlers) DeletePlan(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.planService.DeletePlan(r.Context(), id); err != nil {
		h.logger.Error("Failed to delete plan", zap.String("plan_id", id), zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "failed to delete plan")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
