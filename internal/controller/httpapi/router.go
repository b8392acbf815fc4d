package httpapi

import (
	"github.com/gorilla/mux"
)

// NewRouter регистрирует все маршруты API
func NewRouter(h *Handlers) *mux.Router {
	router := mux.NewRouter()

	router.HandleFunc("/healthz", h.HealthCheck).Methods("GET")

	api := router.PathPrefix("/api").Subrouter()

	// Группы обучения
	api.HandleFunc("/batches", h.GetBatches).Methods("GET")
	api.HandleFunc("/batches", h.CreateBatch).Methods("POST")
	api.HandleFunc("/batches/{id}", h.GetBatch).Methods("GET")
	api.HandleFunc("/batches/{id}", h.UpdateBatch).Methods("PUT")
	api.HandleFunc("/batches/{id}", h.DeleteBatch).Methods("DELETE")
	api.HandleFunc("/batches/{id}/plans", h.GetBatchPlans).Methods("GET")

	// Учебные планы
	api.HandleFunc("/plans", h.GetPlans).Methods("GET")
	api.HandleFunc("/plans", h.CreatePlan).Methods("POST")
	api.HandleFunc("/plans/{id}", h.GetPlan).Methods("GET")
	api.HandleFunc("/plans/{id}", h.UpdatePlan).Methods("PUT")
	api.HandleFunc("/plans/{id}", h.DeletePlan).Methods("DELETE")

	// События календаря
	api.HandleFunc("/events", h.GetEvents).Methods("GET")
	api.HandleFunc("/events", h.CreateEvent).Methods("POST")
	api.HandleFunc("/events/{id}", h.UpdateEvent).Methods("PUT")
	api.HandleFunc("/events/{id}/move", h.MoveEvent).Methods("POST")

	// Представления календаря
	api.HandleFunc("/calendar", h.GetCalendarView).Methods("GET")
	api.HandleFunc("/calendar/export.ics", h.ExportICS).Methods("GET")

	// Справочник сотрудников
	api.HandleFunc("/employees", h.GetEmployees).Methods("GET")

	return router
}
