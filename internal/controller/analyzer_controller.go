package controller

import (
	"predictplay-be/internal/dto"
	"predictplay-be/internal/pkg/serverutils"
	"predictplay-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IAnalyzerController interface {
	RegisterRoutes(r fiber.Router)
	Run(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
}

type analyzerController struct {
	analyzerService service.IAnalyzerService
}

func NewAnalyzerController(analyzerService service.IAnalyzerService) IAnalyzerController {
	return &analyzerController{
		analyzerService: analyzerService,
	}
}

func (c *analyzerController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/analyzer/v1")
	h.Use(serverutils.OptionalActorMiddleware)
	h.Post("run", c.Run)
	h.Get("request/:id", c.Show)
}

func (c *analyzerController) Run(ctx *fiber.Ctx) error {
	var req dto.RunAnalysisRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.ErrValidation("invalid request body")
	}
	req.UserId = resolveActor(ctx, req.UserId)

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.analyzerService.RunAnalysis(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success run analysis", res))
}

func (c *analyzerController) Show(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.ErrValidation("invalid request id")
	}

	res, err := c.analyzerService.GetRequest(ctx.Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show analyzer request", res))
}
