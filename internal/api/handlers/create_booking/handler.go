package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationService/internal/api/middleware"
	createBooking "github.com/m04kA/SMC-ReservationService/internal/usecase/create_booking"
	"github.com/m04kA/SMC-ReservationService/internal/usecase/validate_slots"
	"github.com/m04kA/SMC-ReservationService/pkg/txmanager"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidSlotTime    = "некорректный формат времени слота, ожидается ISO 8601"
	msgMissingUsername    = "отсутствует имя пользователя"
	msgAreaNotFound       = "площадка не найдена"
	msgUserNotFound       = "участник бронирования не найден"
	msgInvalidOwner       = "владелец должен быть первым участником"
	msgRequestorCount     = "некорректное число участников бронирования"
	msgSlotConflict       = "выбранный слот уже зарезервирован"
	msgSlotRejected       = "слот не проходит правила доступности площадки"
	msgRetryConflict      = "конфликт конкурирующих бронирований, повторите запрос"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/tasks
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	username, ok := middleware.GetUsername(r.Context())
	if !ok {
		h.logger.Warn("POST /tasks - Missing username")
		handlers.RespondUnauthorized(w, msgMissingUsername)
		return
	}

	var req CreateTaskRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /tasks - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(username)
	if err != nil {
		h.logger.Warn("POST /tasks - Failed to parse slots: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSlotTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrAreaNotFound):
			h.logger.Warn("POST /tasks - Area not found: area_id=%d", req.AreaID)
			handlers.RespondNotFound(w, msgAreaNotFound)

		case errors.Is(err, createBooking.ErrUserNotFound):
			h.logger.Warn("POST /tasks - Requestor not found: user=%s, error=%v", username, err)
			handlers.RespondNotFound(w, msgUserNotFound)

		case errors.Is(err, createBooking.ErrInvalidOwner):
			h.logger.Warn("POST /tasks - Invalid owner: user=%s", username)
			handlers.RespondForbidden(w, msgInvalidOwner)

		case errors.Is(err, createBooking.ErrRequestorCount):
			h.logger.Warn("POST /tasks - Invalid requestor count: area_id=%d, error=%v", req.AreaID, err)
			handlers.RespondBadRequest(w, msgRequestorCount)

		case errors.Is(err, validate_slots.ErrSlotConflict):
			h.logger.Warn("POST /tasks - Slot conflict: area_id=%d, user=%s", req.AreaID, username)
			handlers.RespondError(w, http.StatusConflict, msgSlotConflict)

		case errors.Is(err, validate_slots.ErrInvalidWeek),
			errors.Is(err, validate_slots.ErrInvalidInterval),
			errors.Is(err, validate_slots.ErrOutsideWindow),
			errors.Is(err, validate_slots.ErrInvalidPattern):
			h.logger.Warn("POST /tasks - Slot rejected: area_id=%d, error=%v", req.AreaID, err)
			handlers.RespondBadRequest(w, msgSlotRejected)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /tasks - Invalid input: user=%s, error=%v", username, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		case errors.Is(err, txmanager.ErrSerialization):
			h.logger.Warn("POST /tasks - Serialization conflict: area_id=%d, user=%s", req.AreaID, username)
			handlers.RespondError(w, http.StatusConflict, msgRetryConflict)

		default:
			h.logger.Error("POST /tasks - Failed to create booking: area_id=%d, user=%s, error=%v",
				req.AreaID, username, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /tasks - Booking created: task_id=%d, vid=%s, user=%s", result.ID, result.VID, username)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
