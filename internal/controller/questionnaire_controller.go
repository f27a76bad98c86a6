package controller

import (
	"ux-matching-be/internal/dto"
	"ux-matching-be/internal/pkg/serverutils"
	"ux-matching-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IQuestionnaireController interface {
	RegisterRoutes(r fiber.Router)
	State(ctx *fiber.Ctx) error
	Select(ctx *fiber.Ctx) error
	OtherText(ctx *fiber.Ctx) error
	Next(ctx *fiber.Ctx) error
	Back(ctx *fiber.Ctx) error
	EntryQuestion(ctx *fiber.Ctx) error
	PathQuestions(ctx *fiber.Ctx) error
}

type questionnaireController struct {
	questionnaireService service.IQuestionnaireService
}

func NewQuestionnaireController(questionnaireService service.IQuestionnaireService) IQuestionnaireController {
	return &questionnaireController{
		questionnaireService: questionnaireService,
	}
}

func (c *questionnaireController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/questionnaire")

	// Legacy proxy endpoints, no session required.
	h.Get("/q1", c.EntryQuestion)
	h.Get("/qn", c.PathQuestions)

	h.Get("/:sid", serverutils.SessionMiddleware, c.State)
	h.Post("/:sid/select", serverutils.SessionMiddleware, c.Select)
	h.Post("/:sid/other", serverutils.SessionMiddleware, c.OtherText)
	h.Post("/:sid/next", serverutils.SessionMiddleware, c.Next)
	h.Post("/:sid/back", serverutils.SessionMiddleware, c.Back)
}

func (c *questionnaireController) State(ctx *fiber.Ctx) error {
	res, err := c.questionnaireService.State(ctx.Context(), serverutils.SessionId(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Questionnaire state", res))
}

func (c *questionnaireController) Select(ctx *fiber.Ctx) error {
	var req dto.SelectAnswerRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.questionnaireService.Select(ctx.Context(), serverutils.SessionId(ctx), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Answer recorded", res))
}

func (c *questionnaireController) OtherText(ctx *fiber.Ctx) error {
	var req dto.OtherTextRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	res, err := c.questionnaireService.SetOtherText(ctx.Context(), serverutils.SessionId(ctx), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Other text recorded", res))
}

func (c *questionnaireController) Next(ctx *fiber.Ctx) error {
	res, err := c.questionnaireService.Next(ctx.Context(), serverutils.SessionId(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Moved forward", res))
}

func (c *questionnaireController) Back(ctx *fiber.Ctx) error {
	res, err := c.questionnaireService.Back(ctx.Context(), serverutils.SessionId(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Moved back", res))
}

func (c *questionnaireController) EntryQuestion(ctx *fiber.Ctx) error {
	rubriqueId := ctx.Query("rubrique_id", "")
	if rubriqueId == "" {
		return fiber.NewError(fiber.StatusBadRequest, "rubrique_id parameter is required")
	}

	res, err := c.questionnaireService.EntryQuestion(ctx.Context(), rubriqueId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Entry question", res))
}

func (c *questionnaireController) PathQuestions(ctx *fiber.Ctx) error {
	rubriqueId := ctx.Query("rubrique_id", "")
	q1Answer := ctx.Query("q1_answer", "")
	if rubriqueId == "" || q1Answer == "" {
		return fiber.NewError(fiber.StatusBadRequest, "rubrique_id and q1_answer parameters are required")
	}

	questions, total, err := c.questionnaireService.PathQuestions(ctx.Context(), rubriqueId, q1Answer)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Path questions", fiber.Map{
		"questions":      questions,
		"totalQuestions": total,
	}))
}
