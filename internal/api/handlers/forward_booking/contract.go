package forward_booking

import (
	"context"

	forwardBooking "github.com/m04kA/SMC-ReservationService/internal/usecase/forward_booking"
)

type ForwardBookingUseCase interface {
	Execute(ctx context.Context, req *forwardBooking.Request) (*forwardBooking.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
