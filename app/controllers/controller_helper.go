package controllers

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/carlimendez/aulareserva/internal/pkg/apperr"
)

// statusForKind maps core error kinds to HTTP statuses.
func statusForKind(kind apperr.Kind) int {
	switch kind {
	case apperr.KindValidation, apperr.KindInvalidReference, apperr.KindInvalidState:
		return fiber.StatusBadRequest
	case apperr.KindConflict:
		return fiber.StatusConflict
	case apperr.KindAuthorization:
		return fiber.StatusForbidden
	case apperr.KindNotFound:
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}

func errorNameForKind(kind apperr.Kind) string {
	switch kind {
	case apperr.KindValidation:
		return "validation_error"
	case apperr.KindInvalidReference:
		return "invalid_reference"
	case apperr.KindConflict:
		return "conflict"
	case apperr.KindInvalidState:
		return "invalid_state"
	case apperr.KindAuthorization:
		return "forbidden"
	case apperr.KindNotFound:
		return "not_found"
	default:
		return "internal_server_error"
	}
}

// respondError writes a classified core error as a JSON response. Unknown
// errors are reported as a generic server failure without leaking details.
func respondError(c *fiber.Ctx, err error) error {
	kind := apperr.KindOf(err)
	message := err.Error()
	if kind == apperr.KindUnknown || kind == apperr.KindInfrastructure {
		message = "internal server error"
	}
	return c.Status(statusForKind(kind)).JSON(fiber.Map{
		"error":   errorNameForKind(kind),
		"message": message,
	})
}

// parseIDParam reads a numeric :id route parameter.
func parseIDParam(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return 0, apperr.New(apperr.KindValidation, "invalid id")
	}
	return uint(id), nil
}

// parseDateValue parses a calendar date in 2006-01-02 form.
func parseDateValue(value string) (time.Time, error) {
	date, err := time.ParseInLocation("2006-01-02", value, time.Local)
	if err != nil {
		return time.Time{}, apperr.New(apperr.KindValidation, "invalid date, expected YYYY-MM-DD")
	}
	return date, nil
}
