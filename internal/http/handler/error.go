package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"medref/internal/http/middleware"
	"medref/internal/model"
	"medref/internal/service"
)

// errorPayload defines the standardized error response body.
type errorPayload struct {
	RequestID string        `json:"request_id"`
	Error     errorEnvelope `json:"error"`
}

type errorEnvelope struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// requestIDFromCtx extracts request_id previously stored by middleware.RequestID.
func requestIDFromCtx(c *fiber.Ctx) string {
	if v := c.Locals(middleware.RequestIDLocalKey); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// writeError writes a standardized JSON error response without leaking internal errors.
//
// Parameters:
// - status: HTTP status code to return
// - code: machine-readable short error code (e.g., "INVALID_ID", "PATIENT_NOT_FOUND")
// - message: human-readable safe message (no internal details)
func writeError(c *fiber.Ctx, status int, code, message string) error {
	res := errorPayload{
		RequestID: requestIDFromCtx(c),
		Error: errorEnvelope{
			Code:    code,
			Message: message,
		},
	}
	return c.Status(status).JSON(res)
}

// writeDomainError maps domain errors to distinct client-facing statuses:
// validation 400, unknown patient 404, unserviceable city 422, no matching
// doctor 404 with its own code. Anything else is an internal error.
func writeDomainError(c *fiber.Ctx, err error) error {
	var verr *model.ValidationError
	switch {
	case errors.As(err, &verr):
		return writeError(c, fiber.StatusBadRequest, "VALIDATION_FAILED", verr.Error())
	case errors.Is(err, service.ErrPatientNotFound):
		return writeError(c, fiber.StatusNotFound, "PATIENT_NOT_FOUND", "patient not found")
	case errors.Is(err, service.ErrUnsupportedRegion):
		return writeError(c, fiber.StatusUnprocessableEntity, "UNSUPPORTED_REGION", "we are not available in this city yet")
	case errors.Is(err, service.ErrNoDoctorAvailable):
		return writeError(c, fiber.StatusNotFound, "NO_DOCTOR_AVAILABLE", "no doctor available for this location and speciality")
	default:
		return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
	}
}

// ErrorHandler returns a Fiber global error handler that standardizes error responses.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		if e, ok := err.(*fiber.Error); ok {
			status = e.Code
		}

		switch status {
		case fiber.StatusBadRequest:
			return writeError(c, status, "BAD_REQUEST", "bad request")
		case fiber.StatusNotFound:
			return writeError(c, status, "NOT_FOUND", "resource not found")
		case fiber.StatusMethodNotAllowed:
			return writeError(c, status, "METHOD_NOT_ALLOWED", "method not allowed")
		default:
			return writeError(c, status, "INTERNAL_ERROR", "internal server error")
		}
	}
}
