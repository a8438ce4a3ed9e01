package serverutils

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware is the outermost error boundary: business errors keep
// their status and reason code, fiber errors keep their status, anything else
// becomes a 500 with a generic message so internal detail never leaks.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var bizErr *BusinessError
		if errors.As(err, &bizErr) {
			return ctx.Status(bizErr.Status).JSON(ErrorResponse(bizErr.Code, bizErr.Message))
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			code := CodeInternal
			if fiberErr.Code < fiber.StatusInternalServerError {
				code = CodeValidation
			}
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse(code, fiberErr.Message))
		}

		log.Printf("[ERROR] unhandled error on %s %s: %v", ctx.Method(), ctx.Path(), err)
		return ctx.Status(fiber.StatusInternalServerError).
			JSON(ErrorResponse(CodeInternal, "internal server error"))
	}
}
