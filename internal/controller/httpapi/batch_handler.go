package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/trainops/batch_planner/internal/service"
)

// CreateBatch POST /api/batches
func (h *Handlers) CreateBatch(w http.ResponseWriter, r *http.Request) {
	var in service.CreateBatchInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	batch, err := h.batchService.CreateBatch(r.Context(), in)
	if err != nil {
		if isValidationError(err) {
			h.respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.Error("Failed to create batch", zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "failed to create batch")
		return
	}

	h.respondJSON(w, http.StatusCreated, batch)
}

// GetBatches GET /api/batches
func (h *Handlers) GetBatches(w http.ResponseWriter, r *http.Request) {
	batches, err := h.batchService.GetBatches(r.Context())
	if err != nil {
		h.logger.Error("Failed to list batches", zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "failed to list batches")
		return
	}
	h.respondJSON(w, http.StatusOK, batches)
}

// GetBatch GET /api/batches/{id}
func (h *Handlers) GetBatch(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	batch, err := h.batchService.GetBatchByID(r.Context(), id)
	if err != nil {
		h.logger.Error("Failed to get batch", zap.String("batch_id", id), zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "failed to get batch")
		return
	}
	if batch == nil {
		h.respondError(w, http.StatusNotFound, "batch not found")
		return
	}
	h.respondJSON(w, http.StatusOK, batch)
}

// UpdateBatch PUT /api/batches/{id}
func (h *Handlers) UpdateBatch(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var in service.CreateBatchInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	batch, err := h.batchService.UpdateBatch(r.Context(), id, in)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBatchNotFound):
			h.respondError(w, http.StatusNotFound, err.Error())
		case isValidationError(err):
			h.respondError(w, http.StatusBadRequest, err.Error())
		default:
			h.logger.Error("Failed to update batch", zap.String("batch_id", id), zap.Error(err))
			h.respondError(w, http.StatusInternalServerError, "failed to update batch")
		}
		return
	}

	h.respondJSON(w, http.StatusOK, batch)
}

// DeleteBatch DELETE /api/batches/{id}
func (h *Handlers) DeleteBatch(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.batchService.DeleteBatch(r.Context(), id); err != nil {
		h.logger.Error("Failed to delete batch", zap.String("batch_id", id), zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "failed to delete batch")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetBatchPlans GET /api/batches/{id}/plans
func (h *Handlers) GetBatchPlans(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	plans, err := h.planService.GetPlansByBatch(r.Context(), id)
	if err != nil {
		h.logger.Error("Failed to list batch plans", zap.String("batch_id", id), zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "failed to list plans")
		return
	}
	h.respondJSON(w, http.StatusOK, plans)
}

// GetEmployees GET /api/employees
func (h *Handlers) GetEmployees(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, h.directory.Employees())
}
