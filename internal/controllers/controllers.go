// Package controllers adapts HTTP requests to the services. Handlers parse
// input, resolve the actor and translate service errors into status codes.
package controllers

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"

	"postboard/dto"
	"postboard/internal/cursor"
	"postboard/internal/middleware"
	"postboard/internal/services"
	"postboard/internal/validation"
)

const defaultTimeout = 5 * time.Second

func actorFrom(c *fiber.Ctx) services.Actor {
	uid, _ := middleware.UIDFromLocals(c)
	return services.Actor{UserID: uid}
}

func requestContext(c *fiber.Ctx, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return context.WithTimeout(c.UserContext(), timeout)
}

func fail(c *fiber.Ctx, status int, message string, detail any) error {
	return c.Status(status).JSON(dto.ErrorResponse{Status: false, Message: message, Error: detail})
}

// respond maps a service error to its status code. Unknown errors are
// logged and hidden behind a 500.
func respond(c *fiber.Ctx, logger *slog.Logger, err error) error {
	var verrs validation.Errors
	switch {
	case errors.As(err, &verrs):
		return fail(c, fiber.StatusBadRequest, "Invalid data", verrs)
	case errors.Is(err, services.ErrPostNotFound),
		errors.Is(err, services.ErrCommentNotFound):
		return fail(c, fiber.StatusNotFound, err.Error(), nil)
	case errors.Is(err, services.ErrParentNotFound),
		errors.Is(err, services.ErrParentPostMismatch),
		errors.Is(err, services.ErrInvalidTarget),
		errors.Is(err, cursor.ErrInvalidCursor):
		return fail(c, fiber.StatusBadRequest, err.Error(), nil)
	case errors.Is(err, services.ErrForbidden):
		return fail(c, fiber.StatusForbidden, "Unauthorized", err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		return fail(c, fiber.StatusUnauthorized, err.Error(), nil)
	case errors.Is(err, services.ErrUsernameTaken):
		return fail(c, fiber.StatusConflict, err.Error(), nil)
	case errors.Is(err, context.DeadlineExceeded):
		return fail(c, fiber.StatusGatewayTimeout, "request timed out", nil)
	default:
		logger.Error("Request failed", "method", c.Method(), "path", c.Path(), "error", err)
		return fail(c, fiber.StatusInternalServerError, "internal server error", nil)
	}
}

// ErrorHandler renders errors returned by middleware (fiber.Error) in the
// same shape as handler failures.
func ErrorHandler(logger *slog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return fail(c, fe.Code, fe.Message, nil)
		}
		return respond(c, logger, err)
	}
}
