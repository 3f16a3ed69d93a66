package controller

import (
	"companion-learning-be/internal/dto"
	"companion-learning-be/internal/pkg/serverutils"
	"companion-learning-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ICompanionController interface {
	RegisterRoutes(r fiber.Router)
	GetAll(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Permissions(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Mine(ctx *fiber.Ctx) error
}

type companionController struct {
	service service.ICompanionService
}

func NewCompanionController(service service.ICompanionService) ICompanionController {
	return &companionController{service: service}
}

func (c *companionController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/companions")
	h.Get("", c.GetAll)
	h.Post("", c.Create)
	h.Get("/permissions", c.Permissions)
	h.Get("/:id", c.Show)

	r.Get("/me/companions", c.Mine)
}

func (c *companionController) GetAll(ctx *fiber.Ctx) error {
	var req dto.GetAllCompanionsRequest
	if err := ctx.QueryParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	res, err := c.service.GetAllCompanions(ctx.UserContext(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get all companions", res))
}

func (c *companionController) Create(ctx *fiber.Ctx) error {
	caller, err := requireCaller(ctx)
	if err != nil {
		return err
	}

	var req dto.CreateCompanionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.service.CheckCanCreateCompanion(ctx.UserContext(), caller); err != nil {
		return err
	}

	res, err := c.service.CreateCompanion(ctx.UserContext(), caller, &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create companion", res))
}

func (c *companionController) Permissions(ctx *fiber.Ctx) error {
	canCreate, err := c.service.NewCompanionPermissions(ctx.UserContext(), serverutils.CurrentIdentity(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get companion permissions", dto.CompanionPermissionsResponse{CanCreate: canCreate}))
}

func (c *companionController) Show(ctx *fiber.Ctx) error {
	id, err := companionID(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.GetCompanion(ctx.UserContext(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show companion", res))
}

func (c *companionController) Mine(ctx *fiber.Ctx) error {
	caller, err := requireCaller(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.GetUserCompanions(ctx.UserContext(), caller.UserId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get user companions", res))
}
