package controller

import (
	"predictplay-be/internal/dto"
	"predictplay-be/internal/pkg/serverutils"
	"predictplay-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IVoteController interface {
	RegisterRoutes(r fiber.Router)
	Vote(ctx *fiber.Ctx) error
}

type voteController struct {
	voteService service.IVoteService
}

func NewVoteController(voteService service.IVoteService) IVoteController {
	return &voteController{
		voteService: voteService,
	}
}

func (c *voteController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/vote/v1")
	h.Use(serverutils.OptionalActorMiddleware)
	h.Post("", c.Vote)
}

func (c *voteController) Vote(ctx *fiber.Ctx) error {
	var req dto.VoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.ErrValidation("invalid request body")
	}
	req.UserId = resolveActor(ctx, req.UserId)

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.voteService.Vote(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success record vote", res))
}
