package controller

import (
	"ux-matching-be/internal/dto"
	"ux-matching-be/internal/pkg/serverutils"
	"ux-matching-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ILeadController interface {
	RegisterRoutes(r fiber.Router)
	Submit(ctx *fiber.Ctx) error
	History(ctx *fiber.Ctx) error
}

type leadController struct {
	leadService service.ILeadService
}

func NewLeadController(leadService service.ILeadService) ILeadController {
	return &leadController{
		leadService: leadService,
	}
}

func (c *leadController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/lead")
	h.Post("/:sid", serverutils.SessionMiddleware, c.Submit)
	h.Get("/:sid/history", serverutils.SessionMiddleware, c.History)
}

func (c *leadController) History(ctx *fiber.Ctx) error {
	res, err := c.leadService.History(ctx.Context(), serverutils.SessionId(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Lead history", res))
}

func (c *leadController) Submit(ctx *fiber.Ctx) error {
	var req dto.LeadRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.leadService.Submit(ctx.Context(), serverutils.SessionId(ctx), &req)
	if err != nil {
		return err
	}
	if !res.Success {
		// Every per-supplier submission failed; the payload carries the
		// aggregate counts either way.
		return ctx.Status(fiber.StatusBadGateway).JSON(serverutils.APIResponse{
			Success: false,
			Code:    fiber.StatusBadGateway,
			Message: res.Message,
			Data:    res,
		})
	}
	return ctx.JSON(serverutils.SuccessResponse("Lead submitted", res))
}
