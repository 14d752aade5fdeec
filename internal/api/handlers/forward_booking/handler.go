package forward_booking

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationService/internal/api/middleware"
	forwardBooking "github.com/m04kA/SMC-ReservationService/internal/usecase/forward_booking"
	"github.com/m04kA/SMC-ReservationService/pkg/txmanager"
)

const (
	msgInvalidTaskID      = "некорректный ID бронирования"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUsername    = "отсутствует имя пользователя"
	msgNotFound           = "бронирование не найдено"
	msgNoStaffLevels      = "цепочка эскалации не настроена"
	msgRetryConflict      = "конфликт конкурирующих запросов, повторите запрос"
)

type Handler struct {
	useCase ForwardBookingUseCase
	logger  Logger
}

func NewHandler(useCase ForwardBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/tasks/{taskId}/forward
// Доступ ограничен персоналом на уровне роутера (RequireStaff)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	taskID, err := strconv.ParseInt(vars["taskId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /tasks/{id}/forward - Invalid task ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTaskID)
		return
	}

	username, ok := middleware.GetUsername(r.Context())
	if !ok {
		h.logger.Warn("PATCH /tasks/{id}/forward - Missing username")
		handlers.RespondUnauthorized(w, msgMissingUsername)
		return
	}

	var req ForwardTaskRequest
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Warn("PATCH /tasks/{id}/forward - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &forwardBooking.Request{
		TaskID:   taskID,
		Username: username,
		Note:     req.Note,
	})
	if err != nil {
		switch {
		case errors.Is(err, forwardBooking.ErrTaskNotFound):
			h.logger.Warn("PATCH /tasks/{id}/forward - Booking not found: task_id=%d", taskID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, forwardBooking.ErrNoStaffLevels):
			h.logger.Error("PATCH /tasks/{id}/forward - No staff levels configured: task_id=%d", taskID)
			handlers.RespondError(w, http.StatusConflict, msgNoStaffLevels)

		case errors.Is(err, forwardBooking.ErrInvalidInput):
			h.logger.Warn("PATCH /tasks/{id}/forward - Invalid input: task_id=%d, error=%v", taskID, err)
			handlers.RespondBadRequest(w, msgInvalidTaskID)

		case errors.Is(err, txmanager.ErrSerialization):
			h.logger.Warn("PATCH /tasks/{id}/forward - Serialization conflict: task_id=%d", taskID)
			handlers.RespondError(w, http.StatusConflict, msgRetryConflict)

		default:
			h.logger.Error("PATCH /tasks/{id}/forward - Failed: task_id=%d, user=%s, error=%v", taskID, username, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /tasks/{id}/forward - Forwarded: task_id=%d, user=%s", taskID, username)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
