package controller

import (
	"predictplay-be/internal/dto"
	"predictplay-be/internal/pkg/serverutils"
	"predictplay-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IStreakController interface {
	RegisterRoutes(r fiber.Router)
	Touch(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
}

type streakController struct {
	streakService service.IStreakService
}

func NewStreakController(streakService service.IStreakService) IStreakController {
	return &streakController{
		streakService: streakService,
	}
}

func (c *streakController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/streak/v1")
	h.Use(serverutils.OptionalActorMiddleware)
	h.Post("touch", c.Touch)
	h.Get(":user_id", c.Show)
}

func (c *streakController) Touch(ctx *fiber.Ctx) error {
	var req dto.TouchStreakRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.ErrValidation("invalid request body")
	}
	req.UserId = resolveActor(ctx, req.UserId)

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.streakService.Touch(ctx.Context(), req.UserId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success record activity", res))
}

func (c *streakController) Show(ctx *fiber.Ctx) error {
	userId, err := uuid.Parse(ctx.Params("user_id"))
	if err != nil {
		return serverutils.ErrValidation("invalid user id")
	}

	res, err := c.streakService.GetStreak(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get streak", res))
}
