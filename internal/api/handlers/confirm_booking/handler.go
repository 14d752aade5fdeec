package confirm_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationService/internal/api/middleware"
	confirmBooking "github.com/m04kA/SMC-ReservationService/internal/usecase/confirm_booking"
	"github.com/m04kA/SMC-ReservationService/pkg/txmanager"
)

const (
	msgInvalidTaskID   = "некорректный ID бронирования"
	msgMissingUsername = "отсутствует имя пользователя"
	msgNotFound        = "бронирование не найдено"
	msgNotRequestor    = "пользователь не участник бронирования"
	msgRetryConflict   = "конфликт конкурирующих запросов, повторите запрос"
)

type Handler struct {
	useCase ConfirmBookingUseCase
	logger  Logger
}

func NewHandler(useCase ConfirmBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/tasks/{taskId}/confirm
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	taskID, err := strconv.ParseInt(vars["taskId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /tasks/{id}/confirm - Invalid task ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTaskID)
		return
	}

	username, ok := middleware.GetUsername(r.Context())
	if !ok {
		h.logger.Warn("PATCH /tasks/{id}/confirm - Missing username")
		handlers.RespondUnauthorized(w, msgMissingUsername)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &confirmBooking.Request{
		TaskID:   taskID,
		Username: username,
	})
	if err != nil {
		switch {
		case errors.Is(err, confirmBooking.ErrTaskNotFound):
			h.logger.Warn("PATCH /tasks/{id}/confirm - Booking not found: task_id=%d", taskID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, confirmBooking.ErrNotPermitted):
			h.logger.Warn("PATCH /tasks/{id}/confirm - Not a requestor: task_id=%d, user=%s", taskID, username)
			handlers.RespondForbidden(w, msgNotRequestor)

		case errors.Is(err, confirmBooking.ErrInvalidInput):
			h.logger.Warn("PATCH /tasks/{id}/confirm - Invalid input: task_id=%d, error=%v", taskID, err)
			handlers.RespondBadRequest(w, msgInvalidTaskID)

		case errors.Is(err, txmanager.ErrSerialization):
			h.logger.Warn("PATCH /tasks/{id}/confirm - Serialization conflict: task_id=%d", taskID)
			handlers.RespondError(w, http.StatusConflict, msgRetryConflict)

		default:
			h.logger.Error("PATCH /tasks/{id}/confirm - Failed: task_id=%d, user=%s, error=%v", taskID, username, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /tasks/{id}/confirm - Confirmed: task_id=%d, user=%s", taskID, username)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
