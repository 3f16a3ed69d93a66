package controller

import (
	"companion-learning-be/internal/identity"
	"companion-learning-be/internal/pkg/apperror"
	"companion-learning-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// companionID reads :id. An id that cannot name a companion is reported as absent.
func companionID(ctx *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return uuid.Nil, apperror.ErrNotFound
	}
	return id, nil
}

func requireCaller(ctx *fiber.Ctx) (identity.Identity, error) {
	caller := serverutils.CurrentIdentity(ctx)
	if !caller.Authenticated() {
		return caller, apperror.ErrAuthenticationRequired
	}
	return caller, nil
}
