package response

import (
	"vendora/internal/errors"

	"github.com/gofiber/fiber/v2"
)

func Success(c *fiber.Ctx, message string, data interface{}) error {
	return c.JSON(fiber.Map{
		"message": message,
		"data":    data,
	})
}

func Error(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"error": message,
	})
}

func BadRequest(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusBadRequest, message)
}

func Unauthorized(c *fiber.Ctx) error {
	return Error(c, fiber.StatusUnauthorized, "Unauthorized")
}

// Domain maps a domain error to its HTTP status. Unknown errors become a
// generic 500 so internals never leak to clients.
func Domain(c *fiber.Ctx, err error) error {
	if derr, ok := errors.As(err); ok {
		return Error(c, statusFor(derr.Code), derr.Message)
	}
	return Error(c, fiber.StatusInternalServerError, "internal server error")
}

func statusFor(code string) int {
	switch code {
	case errors.CodeBadRequest:
		return fiber.StatusBadRequest
	case errors.CodeNotFound:
		return fiber.StatusNotFound
	case errors.CodeDuplicateCard:
		return fiber.StatusConflict
	case errors.CodeCardRejected:
		return fiber.StatusBadRequest
	case errors.CodeGatewayUnreachable:
		return fiber.StatusServiceUnavailable
	case errors.CodeGatewayError:
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}
