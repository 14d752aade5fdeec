package get_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationService/internal/api/middleware"
	"github.com/m04kA/SMC-ReservationService/internal/service/tasks"
)

const (
	msgInvalidTaskID   = "некорректный ID бронирования"
	msgNotFound        = "бронирование не найдено"
	msgMissingUsername = "отсутствует имя пользователя"
	msgForbidden       = "доступ запрещен"
)

type Handler struct {
	service TaskService
	logger  Logger
}

func NewHandler(service TaskService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/tasks/{taskId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	taskID, err := strconv.ParseInt(vars["taskId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /tasks/{id} - Invalid task ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTaskID)
		return
	}

	username, ok := middleware.GetUsername(r.Context())
	if !ok {
		h.logger.Warn("GET /tasks/{id} - Missing username")
		handlers.RespondUnauthorized(w, msgMissingUsername)
		return
	}

	task, err := h.service.GetByID(r.Context(), taskID, username, middleware.IsStaff(r.Context()))
	if err != nil {
		switch {
		case errors.Is(err, tasks.ErrTaskNotFound):
			h.logger.Warn("GET /tasks/{id} - Booking not found: task_id=%d", taskID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, tasks.ErrAccessDenied):
			h.logger.Warn("GET /tasks/{id} - Access denied: task_id=%d, user=%s", taskID, username)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /tasks/{id} - Failed to get booking: task_id=%d, error=%v", taskID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /tasks/{id} - Booking retrieved: task_id=%d, user=%s", taskID, username)
	handlers.RespondJSON(w, http.StatusOK, task)
}
