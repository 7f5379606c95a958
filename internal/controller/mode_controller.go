package controller

import (
	"jukugi-bokujo-be/internal/pkg/serverutils"
	"jukugi-bokujo-be/pkg/sessionmode"

	"github.com/gofiber/fiber/v2"
)

type IModeController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
}

type modeController struct{}

func NewModeController() IModeController {
	return &modeController{}
}

func (c *modeController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/mode/v1")
	h.Get("", c.List)
}

func (c *modeController) List(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Success list modes", sessionmode.GetAllModes()))
}
