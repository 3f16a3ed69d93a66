package serverutils

import (
	"errors"

	"companion-learning-be/internal/pkg/apperror"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware is installed as fiber.Config.ErrorHandler.
func ErrorHandlerMiddleware(ctx *fiber.Ctx, err error) error {
	var limitErr *apperror.LimitExceededError
	var validationErr *apperror.ValidationError
	var storeErr *apperror.StoreError
	var fiberErr *fiber.Error

	switch {
	case errors.As(err, &limitErr):
		return ctx.Status(fiber.StatusForbidden).
			JSON(ErrorResponseWithData(fiber.StatusForbidden, limitErr.Error(), limitErr))
	case errors.As(err, &validationErr):
		return ctx.Status(fiber.StatusBadRequest).
			JSON(ErrorResponseWithData(fiber.StatusBadRequest, validationErr.Error(), validationErr.Fields))
	case errors.Is(err, apperror.ErrAuthenticationRequired):
		return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(fiber.StatusUnauthorized, err.Error()))
	case errors.Is(err, apperror.ErrAlreadyBookmarked):
		return ctx.Status(fiber.StatusConflict).JSON(ErrorResponse(fiber.StatusConflict, err.Error()))
	case errors.Is(err, apperror.ErrNotFound):
		return ctx.Status(fiber.StatusNotFound).JSON(ErrorResponse(fiber.StatusNotFound, err.Error()))
	case errors.As(err, &storeErr):
		return ctx.Status(fiber.StatusInternalServerError).
			JSON(ErrorResponse(fiber.StatusInternalServerError, storeErr.Error()))
	case errors.As(err, &fiberErr):
		return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Code, fiberErr.Message))
	}

	return ctx.Status(fiber.StatusInternalServerError).
		JSON(ErrorResponse(fiber.StatusInternalServerError, "internal server error"))
}
