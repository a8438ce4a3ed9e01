package controller

import (
	"predictplay-be/internal/dto"
	"predictplay-be/internal/pkg/serverutils"
	"predictplay-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IAchievementController interface {
	RegisterRoutes(r fiber.Router)
	Check(ctx *fiber.Ctx) error
	ListBadges(ctx *fiber.Ctx) error
	GetXP(ctx *fiber.Ctx) error
}

type achievementController struct {
	achievementService service.IAchievementService
}

func NewAchievementController(achievementService service.IAchievementService) IAchievementController {
	return &achievementController{
		achievementService: achievementService,
	}
}

func (c *achievementController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/achievement/v1")
	h.Use(serverutils.OptionalActorMiddleware)
	h.Post("check", c.Check)
	h.Get("badges/:user_id", c.ListBadges)
	h.Get("xp/:user_id", c.GetXP)
}

func (c *achievementController) Check(ctx *fiber.Ctx) error {
	var req dto.CheckAchievementsRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.ErrValidation("invalid request body")
	}
	req.UserId = resolveActor(ctx, req.UserId)

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.achievementService.Evaluate(ctx.Context(), req.UserId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success evaluate achievements", res))
}

func (c *achievementController) ListBadges(ctx *fiber.Ctx) error {
	userId, err := uuid.Parse(ctx.Params("user_id"))
	if err != nil {
		return serverutils.ErrValidation("invalid user id")
	}

	res, err := c.achievementService.ListUserBadges(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list badges", res))
}

func (c *achievementController) GetXP(ctx *fiber.Ctx) error {
	userId, err := uuid.Parse(ctx.Params("user_id"))
	if err != nil {
		return serverutils.ErrValidation("invalid user id")
	}

	res, err := c.achievementService.GetXP(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get xp", res))
}
