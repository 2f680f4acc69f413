package serverutils

import (
	"errors"

	"wa-bazaar-be/internal/entity"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware converts errors bubbling out of controllers into
// JSON responses, mapping domain sentinels to proper status codes.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		code := fiber.StatusInternalServerError
		message := "Internal server error"

		var fiberErr *fiber.Error
		switch {
		case errors.As(err, &fiberErr):
			code = fiberErr.Code
			message = fiberErr.Message
		case errors.Is(err, entity.ErrDraftNotFound),
			errors.Is(err, entity.ErrListingNotFound):
			code = fiber.StatusNotFound
			message = err.Error()
		case errors.Is(err, entity.ErrInvalidCategory):
			code = fiber.StatusBadRequest
			message = err.Error()
		}

		return ctx.Status(code).JSON(ErrorResponse(code, message))
	}
}
