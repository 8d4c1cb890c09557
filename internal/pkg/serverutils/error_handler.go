package serverutils

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware is the handler boundary: any error escaping a
// controller becomes a uniform JSON failure. Store faults carry the raw error
// text as the message; no retry, no structured codes.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		code := fiber.StatusInternalServerError
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			code = fiberErr.Code
		}

		if code >= fiber.StatusInternalServerError {
			log.Printf("[Error] %s %s - %v", ctx.Method(), ctx.Path(), err)
		}

		return ctx.Status(code).JSON(MessageResponse{Message: err.Error()})
	}
}
