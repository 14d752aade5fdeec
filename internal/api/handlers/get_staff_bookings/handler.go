package get_staff_bookings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationService/internal/service/tasks"
	"github.com/m04kA/SMC-ReservationService/internal/service/tasks/models"
)

const (
	msgInvalidBucket = "некорректная корзина состояний, ожидается wait|accept|reject|drop"
	msgInvalidPaging = "некорректные параметры пагинации"
	msgNotFound      = "бронирование не найдено"
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

// Handle GET /api/v1/staff/tasks?bucket=wait&offset=0&limit=50
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	bucket := query.Get("bucket")
	if bucket == "" {
		bucket = tasks.BucketWait
	}

	offset, limit, err := parsePaging(query.Get("offset"), query.Get("limit"))
	if err != nil {
		h.logger.Warn("GET /staff/tasks - Invalid paging: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPaging)
		return
	}

	result, err := h.service.GetStaffTasks(r.Context(), &models.GetStaffTasksRequest{
		Bucket: bucket,
		Offset: offset,
		Limit:  limit,
	})
	if err != nil {
		switch {
		case errors.Is(err, tasks.ErrInvalidBucket):
			h.logger.Warn("GET /staff/tasks - Invalid bucket: %s", bucket)
			handlers.RespondBadRequest(w, msgInvalidBucket)

		default:
			h.logger.Error("GET /staff/tasks - Failed: bucket=%s, error=%v", bucket, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /staff/tasks - Retrieved %d of %d bookings: bucket=%s",
		len(result.Tasks), result.Total, bucket)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleByVID GET /api/v1/staff/tasks/{vid}
// Поиск бронирования по человекочитаемому коду
func (h *Handler) HandleByVID(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	vid := vars["vid"]

	task, err := h.service.GetByVID(r.Context(), vid)
	if err != nil {
		switch {
		case errors.Is(err, tasks.ErrTaskNotFound):
			h.logger.Warn("GET /staff/tasks/{vid} - Booking not found: vid=%s", vid)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, tasks.ErrInvalidInput):
			h.logger.Warn("GET /staff/tasks/{vid} - Invalid vid: %v", err)
			handlers.RespondBadRequest(w, msgNotFound)

		default:
			h.logger.Error("GET /staff/tasks/{vid} - Failed: vid=%s, error=%v", vid, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /staff/tasks/{vid} - Booking retrieved: vid=%s, task_id=%d", vid, task.ID)
	handlers.RespondJSON(w, http.StatusOK, task)
}

// parsePaging разбирает offset/limit из query string
func parsePaging(offsetStr, limitStr string) (offset, limit uint64, err error) {
	if offsetStr != "" {
		offset, err = strconv.ParseUint(offsetStr, 10, 64)
		if err != nil {
			return 0, 0, err
		}
	}
	if limitStr != "" {
		limit, err = strconv.ParseUint(limitStr, 10, 64)
		if err != nil {
			return 0, 0, err
		}
	}
	return offset, limit, nil
}
