// Package httperr defines the error taxonomy of the API and the central
// Fiber error handler that serializes every failure into the uniform
// {"success":false,"message":...} envelope.
package httperr

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
)

// Error carries the HTTP status an operation failed with. Services return
// these; nothing below the handler layer writes to the response directly.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func New(status int, message string) *Error {
	return &Error{Status: status, Message: message}
}

func BadRequest(message string) *Error {
	return New(fiber.StatusBadRequest, message)
}

func Unauthorized(message string) *Error {
	return New(fiber.StatusUnauthorized, message)
}

func Forbidden(message string) *Error {
	return New(fiber.StatusForbidden, message)
}

func NotFound(message string) *Error {
	return New(fiber.StatusNotFound, message)
}

func Conflict(message string) *Error {
	return New(fiber.StatusConflict, message)
}

// Handler is installed as the Fiber ErrorHandler. Unique-index violations
// surface as conflicts; anything unrecognized becomes a 500 without leaking
// internals to the client.
func Handler(c *fiber.Ctx, err error) error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return respond(c, appErr.Status, appErr.Message)
	}

	if mongo.IsDuplicateKeyError(err) {
		return respond(c, fiber.StatusConflict, "duplicate field value entered")
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return respond(c, fiberErr.Code, fiberErr.Message)
	}

	log.Error().Err(err).Str("path", c.Path()).Msg("unhandled error")
	return respond(c, fiber.StatusInternalServerError, "internal server error")
}

func respond(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"message": message,
	})
}
