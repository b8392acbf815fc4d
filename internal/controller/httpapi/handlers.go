package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/trainops/batch_planner/internal/service"
)

// Handlers держит сервисы, к которым обращаются HTTP-обработчики
type Handlers struct {
	batchService    *service.BatchService
	planService     *service.PlanService
	calendarService *service.CalendarService
	directory       *service.Directory
	logger          *zap.Logger
}

func NewHandlers(
	batchService *service.BatchService,
	planService *service.PlanService,
	calendarService *service.CalendarService,
	directory *service.Directory,
	logger *zap.Logger,
) *Handlers {
	return &Handlers{
		batchService:    batchService,
		planService:     planService,
		calendarService: calendarService,
		directory:       directory,
		logger:          logger,
	}
}

func (h *Handlers) respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("Failed to encode response", zap.Error(err))
	}
}

func (h *Handlers) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}

// isValidationError отличает ошибку валидации (ответ 400) от внутренней
func isValidationError(err error) bool {
	for _, target := range []error{
		service.ErrPlanTitleTooShort,
		service.ErrPlanWithoutTopics,
		service.ErrTopicTitleTooShort,
		service.ErrTopicInvalidDuration,
		service.ErrTopicInvalidUnit,
		service.ErrBatchTitleTooShort,
		service.ErrBatchInvalidDates,
		service.ErrEventInvalidRange,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// parseDateParam разбирает параметр ?date= (YYYY-MM-DD); пустой — сегодня
func parseDateParam(r *http.Request) (time.Time, error) {
	raw := r.URL.Query().Get("date")
	if raw == "" {
		return time.Now(), nil
	}
	return time.ParseInLocation("2006-01-02", raw, time.Local)
}

// userParam возвращает фильтр ответственного; по умолчанию "all"
func userParam(r *http.Request) string {
	if user := r.URL.Query().Get("user"); user != "" {
		return user
	}
	return "all"
}
