package controller

import (
	"predictplay-be/internal/dto"
	"predictplay-be/internal/pkg/serverutils"
	"predictplay-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IContestController interface {
	RegisterRoutes(r fiber.Router)
	Enter(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
}

type contestController struct {
	contestService service.IContestService
}

func NewContestController(contestService service.IContestService) IContestController {
	return &contestController{
		contestService: contestService,
	}
}

func (c *contestController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/contest/v1")
	h.Use(serverutils.OptionalActorMiddleware)
	h.Post("enter", c.Enter)
	h.Get("", c.List)
	h.Get(":id", c.Show)
}

func (c *contestController) Enter(ctx *fiber.Ctx) error {
	var req dto.EnterContestRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.ErrValidation("invalid request body")
	}
	req.UserId = resolveActor(ctx, req.UserId)

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.contestService.EnterContest(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success enter contest", res))
}

func (c *contestController) Show(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.ErrValidation("invalid contest id")
	}

	res, err := c.contestService.GetContest(ctx.Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show contest", res))
}

func (c *contestController) List(ctx *fiber.Ctx) error {
	res, err := c.contestService.ListContests(ctx.Context(), ctx.Query("status"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list contests", res))
}
