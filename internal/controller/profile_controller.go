package controller

import (
	"ux-matching-be/internal/dto"
	"ux-matching-be/internal/pkg/serverutils"
	"ux-matching-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IProfileController interface {
	RegisterRoutes(r fiber.Router)
	Show(ctx *fiber.Ctx) error
	Submit(ctx *fiber.Ctx) error
}

type profileController struct {
	profileService service.IProfileService
}

func NewProfileController(profileService service.IProfileService) IProfileController {
	return &profileController{
		profileService: profileService,
	}
}

func (c *profileController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/profile")
	h.Get("/:sid", serverutils.SessionMiddleware, c.Show)
	h.Post("/:sid", serverutils.SessionMiddleware, c.Submit)
}

func (c *profileController) Show(ctx *fiber.Ctx) error {
	res, err := c.profileService.Get(ctx.Context(), serverutils.SessionId(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Profile", res))
}

func (c *profileController) Submit(ctx *fiber.Ctx) error {
	var req dto.ProfileRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.profileService.Submit(ctx.Context(), serverutils.SessionId(ctx), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Profile saved", res))
}
