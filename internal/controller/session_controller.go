package controller

import (
	"companion-learning-be/internal/pkg/serverutils"
	"companion-learning-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ISessionController interface {
	RegisterRoutes(r fiber.Router)
	Start(ctx *fiber.Ctx) error
	Recent(ctx *fiber.Ctx) error
	Mine(ctx *fiber.Ctx) error
}

type sessionController struct {
	service service.ISessionService
}

func NewSessionController(service service.ISessionService) ISessionController {
	return &sessionController{service: service}
}

func (c *sessionController) RegisterRoutes(r fiber.Router) {
	r.Post("/companions/:id/sessions", c.Start)
	r.Get("/sessions/recent", c.Recent)
	r.Get("/me/sessions", c.Mine)
}

func (c *sessionController) Start(ctx *fiber.Ctx) error {
	id, err := companionID(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.AddToSessionHistory(ctx.UserContext(), serverutils.CurrentIdentity(ctx), id)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success add session history", res))
}

func (c *sessionController) Recent(ctx *fiber.Ctx) error {
	res, err := c.service.GetRecentSessions(ctx.UserContext(), ctx.QueryInt("limit"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get recent sessions", res))
}

func (c *sessionController) Mine(ctx *fiber.Ctx) error {
	caller, err := requireCaller(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.GetUserSessions(ctx.UserContext(), caller.UserId, ctx.QueryInt("limit"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get user sessions", res))
}
