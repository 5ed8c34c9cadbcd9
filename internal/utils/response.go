package utils

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/NguyenThanhHungDev140503/FitTracker-Web/internal/types"
)

// SuccessResponse sends a standard success response
func SuccessResponse(c *fiber.Ctx, data interface{}, status int) error {
	return c.Status(status).JSON(data)
}

// ErrorResponse sends a standard error envelope
func ErrorResponse(c *fiber.Ctx, message string, status int, errorType string) error {
	return c.Status(status).JSON(fiber.Map{
		"status":    status,
		"message":   message,
		"ok":        false,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"url":       c.OriginalURL(),
		"type":      errorType,
	})
}

// ValidationErrorResponse sends a 400 with one entry per failed field rule
func ValidationErrorResponse(c *fiber.Ctx, message string, errors []types.FieldError) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"status":    fiber.StatusBadRequest,
		"message":   message,
		"ok":        false,
		"errors":    errors,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"url":       c.OriginalURL(),
		"type":      "validation",
	})
}

// NotFoundResponse sends a 404 not found response
func NotFoundResponse(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"status":    fiber.StatusNotFound,
		"message":   message,
		"ok":        false,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"url":       c.OriginalURL(),
	})
}

// ErrorResponseStruct defines the schema for error responses
type ErrorResponseStruct struct {
	Status    int                `json:"status"`
	Message   string             `json:"message"`
	Ok        bool               `json:"ok"`
	Errors    []types.FieldError `json:"errors,omitempty"`
	Timestamp string             `json:"timestamp"`
	URL       string             `json:"url"`
	Type      string             `json:"type,omitempty"`
}
