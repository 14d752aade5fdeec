package cancel_booking

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationService/internal/api/middleware"
	cancelBooking "github.com/m04kA/SMC-ReservationService/internal/usecase/cancel_booking"
	"github.com/m04kA/SMC-ReservationService/pkg/txmanager"
)

const (
	msgInvalidTaskID      = "некорректный ID бронирования"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUsername    = "отсутствует имя пользователя"
	msgNotFound           = "бронирование не найдено"
	msgNotPermitted       = "отменить может только владелец или персонал"
	msgRetryConflict      = "конфликт конкурирующих запросов, повторите запрос"
)

type Handler struct {
	useCase CancelBookingUseCase
	logger  Logger
}

func NewHandler(useCase CancelBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/tasks/{taskId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	taskID, err := strconv.ParseInt(vars["taskId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /tasks/{id}/cancel - Invalid task ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTaskID)
		return
	}

	username, ok := middleware.GetUsername(r.Context())
	if !ok {
		h.logger.Warn("PATCH /tasks/{id}/cancel - Missing username")
		handlers.RespondUnauthorized(w, msgMissingUsername)
		return
	}

	// Тело опционально: пустое тело = отмена без комментария
	var req CancelTaskRequest
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Warn("PATCH /tasks/{id}/cancel - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &cancelBooking.Request{
		TaskID:   taskID,
		Username: username,
		AsStaff:  middleware.IsStaff(r.Context()),
		Note:     req.Note,
	})
	if err != nil {
		switch {
		case errors.Is(err, cancelBooking.ErrTaskNotFound):
			h.logger.Warn("PATCH /tasks/{id}/cancel - Booking not found: task_id=%d", taskID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, cancelBooking.ErrNotPermitted):
			h.logger.Warn("PATCH /tasks/{id}/cancel - Not permitted: task_id=%d, user=%s", taskID, username)
			handlers.RespondForbidden(w, msgNotPermitted)

		case errors.Is(err, cancelBooking.ErrInvalidInput):
			h.logger.Warn("PATCH /tasks/{id}/cancel - Invalid input: task_id=%d, error=%v", taskID, err)
			handlers.RespondBadRequest(w, msgInvalidTaskID)

		case errors.Is(err, txmanager.ErrSerialization):
			h.logger.Warn("PATCH /tasks/{id}/cancel - Serialization conflict: task_id=%d", taskID)
			handlers.RespondError(w, http.StatusConflict, msgRetryConflict)

		default:
			h.logger.Error("PATCH /tasks/{id}/cancel - Failed: task_id=%d, user=%s, error=%v", taskID, username, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /tasks/{id}/cancel - Cancelled: task_id=%d, user=%s", taskID, username)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
