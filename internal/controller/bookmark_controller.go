package controller

import (
	"companion-learning-be/internal/dto"
	"companion-learning-be/internal/pkg/serverutils"
	"companion-learning-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IBookmarkController interface {
	RegisterRoutes(r fiber.Router)
	Status(ctx *fiber.Ctx) error
	Add(ctx *fiber.Ctx) error
	Remove(ctx *fiber.Ctx) error
	Mine(ctx *fiber.Ctx) error
}

type bookmarkController struct {
	service service.IBookmarkService
}

func NewBookmarkController(service service.IBookmarkService) IBookmarkController {
	return &bookmarkController{service: service}
}

func (c *bookmarkController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/companions/:id/bookmark")
	h.Get("", c.Status)
	h.Post("", c.Add)
	h.Delete("", c.Remove)

	r.Get("/me/bookmarks", c.Mine)
}

func (c *bookmarkController) Status(ctx *fiber.Ctx) error {
	caller, err := requireCaller(ctx)
	if err != nil {
		return err
	}
	id, err := companionID(ctx)
	if err != nil {
		return err
	}

	bookmarked, err := c.service.IsBookmarked(ctx.UserContext(), id, caller.UserId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get bookmark status", dto.BookmarkStatusResponse{
		CompanionId: id,
		Bookmarked:  bookmarked,
	}))
}

func (c *bookmarkController) Add(ctx *fiber.Ctx) error {
	id, err := companionID(ctx)
	if err != nil {
		return err
	}

	var req dto.BookmarkRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.AddBookmark(ctx.UserContext(), serverutils.CurrentIdentity(ctx), id, req.Path)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success add bookmark", res))
}

func (c *bookmarkController) Remove(ctx *fiber.Ctx) error {
	id, err := companionID(ctx)
	if err != nil {
		return err
	}

	var req dto.BookmarkRequest
	if err := ctx.QueryParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.service.RemoveBookmark(ctx.UserContext(), serverutils.CurrentIdentity(ctx), id, req.Path); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success remove bookmark", nil))
}

func (c *bookmarkController) Mine(ctx *fiber.Ctx) error {
	caller, err := requireCaller(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.GetBookmarkedCompanions(ctx.UserContext(), caller.UserId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get bookmarked companions", res))
}
