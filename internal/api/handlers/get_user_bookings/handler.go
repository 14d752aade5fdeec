package get_user_bookings

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationService/internal/api/middleware"
	"github.com/m04kA/SMC-ReservationService/internal/service/tasks"
)

const (
	msgMissingUsername = "отсутствует имя пользователя"
	msgForbidden       = "доступ запрещен"
	msgNoUpcoming      = "предстоящих бронирований нет"
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

// Handle GET /api/v1/users/{username}/tasks?latest=true
// Свою историю видит сам пользователь, чужую - только персонал
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	target := vars["username"]

	username, ok := middleware.GetUsername(r.Context())
	if !ok {
		h.logger.Warn("GET /users/{username}/tasks - Missing username")
		handlers.RespondUnauthorized(w, msgMissingUsername)
		return
	}

	if target != username && !middleware.IsStaff(r.Context()) {
		h.logger.Warn("GET /users/{username}/tasks - Access denied: user=%s, target=%s", username, target)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	if r.URL.Query().Get("latest") == "true" {
		h.handleLatest(w, r, target)
		return
	}

	result, err := h.service.GetUserTasks(r.Context(), target)
	if err != nil {
		h.logger.Error("GET /users/{username}/tasks - Failed to get bookings: target=%s, error=%v", target, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /users/{username}/tasks - Retrieved %d bookings: target=%s", len(result.Tasks), target)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// handleLatest отдает ближайшее предстоящее бронирование пользователя
func (h *Handler) handleLatest(w http.ResponseWriter, r *http.Request, target string) {
	task, err := h.service.GetLatestTask(r.Context(), target)
	if err != nil {
		switch {
		case errors.Is(err, tasks.ErrTaskNotFound):
			h.logger.Warn("GET /users/{username}/tasks?latest - No upcoming booking: target=%s", target)
			handlers.RespondNotFound(w, msgNoUpcoming)

		default:
			h.logger.Error("GET /users/{username}/tasks?latest - Failed: target=%s, error=%v", target, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /users/{username}/tasks?latest - Retrieved booking id=%d: target=%s", task.ID, target)
	handlers.RespondJSON(w, http.StatusOK, task)
}
