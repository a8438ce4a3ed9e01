package controller

import (
	"predictplay-be/internal/pkg/serverutils"
	"predictplay-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ILeaderboardController interface {
	RegisterRoutes(r fiber.Router)
	Top(ctx *fiber.Ctx) error
}

type leaderboardController struct {
	leaderboardService service.ILeaderboardService
}

func NewLeaderboardController(leaderboardService service.ILeaderboardService) ILeaderboardController {
	return &leaderboardController{
		leaderboardService: leaderboardService,
	}
}

func (c *leaderboardController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/leaderboard/v1")
	h.Get("xp", c.Top)
}

func (c *leaderboardController) Top(ctx *fiber.Ctx) error {
	limit := ctx.QueryInt("limit", 10)

	res, err := c.leaderboardService.Top(ctx.Context(), limit)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get leaderboard", res))
}
