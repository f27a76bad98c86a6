package controller

import (
	"ux-matching-be/internal/dto"
	"ux-matching-be/internal/pkg/serverutils"
	"ux-matching-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ILookupController interface {
	RegisterRoutes(r fiber.Router)
	SearchCompanies(ctx *fiber.Ctx) error
	SearchPostalCodes(ctx *fiber.Ctx) error
	Countries(ctx *fiber.Ctx) error
	CheckBuyer(ctx *fiber.Ctx) error
}

type lookupController struct {
	lookupService service.ILookupService
}

func NewLookupController(lookupService service.ILookupService) ILookupController {
	return &lookupController{
		lookupService: lookupService,
	}
}

func (c *lookupController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/lookup")
	h.Get("/siren", c.SearchCompanies)
	h.Get("/postal", c.SearchPostalCodes)
	h.Get("/countries", c.Countries)
	h.Post("/buyer-check", c.CheckBuyer)
}

func (c *lookupController) SearchCompanies(ctx *fiber.Ctx) error {
	query := ctx.Query("q", "")
	if query == "" {
		return fiber.NewError(fiber.StatusBadRequest, "q parameter is required")
	}

	res, err := c.lookupService.SearchCompanies(ctx.Context(), ctx.Get(serverutils.SessionHeader), query)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Companies", res))
}

func (c *lookupController) SearchPostalCodes(ctx *fiber.Ctx) error {
	cp := ctx.Query("cp", "")
	if cp == "" {
		return fiber.NewError(fiber.StatusBadRequest, "cp parameter is required")
	}

	res, err := c.lookupService.SearchPostalCodes(ctx.Context(), ctx.Get(serverutils.SessionHeader), cp)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Postal codes", res))
}

func (c *lookupController) Countries(ctx *fiber.Ctx) error {
	res, err := c.lookupService.Countries(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Countries", res))
}

func (c *lookupController) CheckBuyer(ctx *fiber.Ctx) error {
	var req dto.BuyerCheckRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.lookupService.CheckBuyer(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Buyer check", res))
}
