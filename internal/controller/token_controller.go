package controller

import (
	"predictplay-be/internal/dto"
	"predictplay-be/internal/pkg/serverutils"
	"predictplay-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ITokenController interface {
	RegisterRoutes(r fiber.Router)
	GetBalance(ctx *fiber.Ctx) error
	Spend(ctx *fiber.Ctx) error
}

type tokenController struct {
	tokenService service.ITokenService
}

func NewTokenController(tokenService service.ITokenService) ITokenController {
	return &tokenController{
		tokenService: tokenService,
	}
}

func (c *tokenController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/token/v1")
	h.Use(serverutils.OptionalActorMiddleware)
	h.Get("balance/:user_id", c.GetBalance)
	h.Post("spend", c.Spend)
}

func (c *tokenController) GetBalance(ctx *fiber.Ctx) error {
	userId, err := uuid.Parse(ctx.Params("user_id"))
	if err != nil {
		return serverutils.ErrValidation("invalid user id")
	}

	res, err := c.tokenService.GetBalance(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get balance", res))
}

func (c *tokenController) Spend(ctx *fiber.Ctx) error {
	var req dto.SpendTokensRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.ErrValidation("invalid request body")
	}
	req.UserId = resolveActor(ctx, req.UserId)

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.tokenService.Spend(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success spend tokens", res))
}
