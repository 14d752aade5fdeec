package reject_booking

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationService/internal/api/middleware"
	rejectBooking "github.com/m04kA/SMC-ReservationService/internal/usecase/reject_booking"
	"github.com/m04kA/SMC-ReservationService/pkg/txmanager"
)

const (
	msgInvalidTaskID      = "некорректный ID бронирования"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUsername    = "отсутствует имя пользователя"
	msgNotFound           = "бронирование не найдено"
	msgRetryConflict      = "конфликт конкурирующих запросов, повторите запрос"
)

type Handler struct {
	useCase RejectBookingUseCase
	logger  Logger
}

func NewHandler(useCase RejectBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/tasks/{taskId}/reject
// Доступ ограничен персоналом на уровне роутера (RequireStaff)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	taskID, err := strconv.ParseInt(vars["taskId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /tasks/{id}/reject - Invalid task ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTaskID)
		return
	}

	username, ok := middleware.GetUsername(r.Context())
	if !ok {
		h.logger.Warn("PATCH /tasks/{id}/reject - Missing username")
		handlers.RespondUnauthorized(w, msgMissingUsername)
		return
	}

	var req RejectTaskRequest
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Warn("PATCH /tasks/{id}/reject - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &rejectBooking.Request{
		TaskID:   taskID,
		Username: username,
		Note:     req.Note,
	})
	if err != nil {
		switch {
		case errors.Is(err, rejectBooking.ErrTaskNotFound):
			h.logger.Warn("PATCH /tasks/{id}/reject - Booking not found: task_id=%d", taskID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, rejectBooking.ErrInvalidInput):
			h.logger.Warn("PATCH /tasks/{id}/reject - Invalid input: task_id=%d, error=%v", taskID, err)
			handlers.RespondBadRequest(w, msgInvalidTaskID)

		case errors.Is(err, txmanager.ErrSerialization):
			h.logger.Warn("PATCH /tasks/{id}/reject - Serialization conflict: task_id=%d", taskID)
			handlers.RespondError(w, http.StatusConflict, msgRetryConflict)

		default:
			h.logger.Error("PATCH /tasks/{id}/reject - Failed: task_id=%d, user=%s, error=%v", taskID, username, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /tasks/{id}/reject - Rejected: task_id=%d, user=%s", taskID, username)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
