package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	apperrors "github.com/taskforge/taskforge/errors"
)

// statusByKind is the total mapping from error kind to transport
// status. Every kind the service layer can produce has an entry.
var statusByKind = map[apperrors.Kind]int{
	apperrors.KindValidation:     fiber.StatusBadRequest,
	apperrors.KindConflict:       fiber.StatusBadRequest,
	apperrors.KindAuthentication: fiber.StatusUnauthorized,
	apperrors.KindForbidden:      fiber.StatusForbidden,
	apperrors.KindNotFound:       fiber.StatusNotFound,
	apperrors.KindUnexpected:     fiber.StatusInternalServerError,
}

// ErrorHandler maps service failures onto the status table. Unexpected
// faults are logged with full detail server-side and surfaced as an
// opaque 500; no error crosses the HTTP boundary unmapped.
func ErrorHandler(c *fiber.Ctx, err error) error {
	if appErr, ok := apperrors.As(err); ok {
		if appErr.Kind == apperrors.KindUnexpected {
			log.Printf("unexpected error on %s %s: %v", c.Method(), c.Path(), err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "internal server error"})
		}
		return c.Status(statusByKind[appErr.Kind]).JSON(fiber.Map{"message": appErr.Message})
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return c.Status(fiberErr.Code).JSON(fiber.Map{"message": fiberErr.Message})
	}

	log.Printf("unhandled error on %s %s: %v", c.Method(), c.Path(), err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "internal server error"})
}
