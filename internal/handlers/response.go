package handlers

import (
	"errors"
	"log"

	"catalog/internal/apperrors"

	"github.com/gofiber/fiber/v2"
)

// Envelope is the uniform response wrapper for every success and failure.
type Envelope struct {
	Status  int         `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func respond(c *fiber.Ctx, status int, message string, data interface{}) error {
	return c.Status(status).JSON(Envelope{
		Status:  status,
		Message: message,
		Data:    data,
	})
}

// ErrorHandler is the centralized error responder, wired into
// fiber.Config.ErrorHandler. Handlers and middleware return errors instead
// of writing failure responses; this maps each error shape to its status
// code and envelope. Unexpected errors are logged server-side and answered
// with a generic 500, never a raw error.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var validationErr *apperrors.ValidationError
	var fiberErr *fiber.Error

	switch {
	case errors.As(err, &validationErr):
		return respond(c, fiber.StatusBadRequest, validationErr.Message, nil)
	case errors.Is(err, apperrors.ErrInvalidProductID):
		return respond(c, fiber.StatusBadRequest, apperrors.ErrInvalidProductID.Error(), nil)
	case errors.Is(err, apperrors.ErrDuplicateName):
		return respond(c, fiber.StatusBadRequest, apperrors.ErrDuplicateName.Error(), nil)
	case errors.Is(err, apperrors.ErrProductNotFound):
		return respond(c, fiber.StatusNotFound, apperrors.ErrProductNotFound.Error(), nil)
	case errors.Is(err, apperrors.ErrPasswordMismatch):
		return respond(c, fiber.StatusUnauthorized, apperrors.ErrPasswordMismatch.Error(), nil)
	case errors.As(err, &fiberErr):
		// Router-level errors (unknown route, oversized body, ...).
		return respond(c, fiberErr.Code, fiberErr.Message, nil)
	}

	log.Printf("unexpected error handling %s %s: %v", c.Method(), c.Path(), err)
	return respond(c, fiber.StatusInternalServerError, "an unexpected error occurred, please contact the administrator", nil)
}
