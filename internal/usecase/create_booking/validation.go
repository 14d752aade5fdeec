package create_booking

import (
	"fmt"
)

// validateRequest проверяет корректность входных данных запроса
func validateRequest(req *Request) error {
	if req.AreaID <= 0 {
		return fmt.Errorf("%w: areaID must be positive", ErrInvalidInput)
	}

	if !req.Type.Valid() {
		return fmt.Errorf("%w: unknown booking type %q", ErrInvalidInput, req.Type)
	}

	if len(req.Reserve) == 0 {
		return fmt.Errorf("%w: at least one slot is required", ErrInvalidInput)
	}

	for _, slot := range req.Reserve {
		if slot.AllDay {
			continue
		}
		if slot.Start.IsZero() || slot.Stop.IsZero() {
			return fmt.Errorf("%w: slot bounds are required", ErrInvalidInput)
		}
		if !slot.Start.Before(slot.Stop) {
			return fmt.Errorf("%w: slot start must be before stop", ErrInvalidInput)
		}
	}

	if req.Owner == "" {
		return fmt.Errorf("%w: owner is required", ErrInvalidInput)
	}

	if len(req.Requestors) == 0 {
		return fmt.Errorf("%w: at least one requestor is required", ErrInvalidInput)
	}

	seen := make(map[string]struct{}, len(req.Requestors))
	for _, username := range req.Requestors {
		if username == "" {
			return fmt.Errorf("%w: requestor username must not be empty", ErrInvalidInput)
		}
		if _, ok := seen[username]; ok {
			return fmt.Errorf("%w: duplicate requestor %q", ErrInvalidInput, username)
		}
		seen[username] = struct{}{}
	}

	return nil
}
