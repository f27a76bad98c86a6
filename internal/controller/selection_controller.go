package controller

import (
	"ux-matching-be/internal/dto"
	"ux-matching-be/internal/pkg/serverutils"
	"ux-matching-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ISelectionController interface {
	RegisterRoutes(r fiber.Router)
	Suppliers(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Toggle(ctx *fiber.Ctx) error
	Reset(ctx *fiber.Ctx) error
}

type selectionController struct {
	selectionService service.ISelectionService
}

func NewSelectionController(selectionService service.ISelectionService) ISelectionController {
	return &selectionController{
		selectionService: selectionService,
	}
}

func (c *selectionController) RegisterRoutes(r fiber.Router) {
	// The supplier catalog itself is session free.
	r.Get("/suppliers", c.Suppliers)

	h := r.Group("/selection")
	h.Get("/:sid", serverutils.SessionMiddleware, c.Show)
	h.Post("/:sid/toggle", serverutils.SessionMiddleware, c.Toggle)
	h.Post("/:sid/reset", serverutils.SessionMiddleware, c.Reset)
}

func (c *selectionController) Suppliers(ctx *fiber.Ctx) error {
	res, err := c.selectionService.Suppliers(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Suppliers", res))
}

func (c *selectionController) Show(ctx *fiber.Ctx) error {
	res, err := c.selectionService.Get(ctx.Context(), serverutils.SessionId(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Selection", res))
}

func (c *selectionController) Toggle(ctx *fiber.Ctx) error {
	var req dto.ToggleSupplierRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.selectionService.Toggle(ctx.Context(), serverutils.SessionId(ctx), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Selection updated", res))
}

func (c *selectionController) Reset(ctx *fiber.Ctx) error {
	res, err := c.selectionService.Reset(ctx.Context(), serverutils.SessionId(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Selection reset", res))
}
