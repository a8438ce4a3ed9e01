package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// resolveActor picks the acting user: an authenticated identity set by the
// boundary middleware always wins over a user_id supplied in the body.
func resolveActor(ctx *fiber.Ctx, bodyUserId uuid.UUID) uuid.UUID {
	if raw, ok := ctx.Locals("user_id").(string); ok && raw != "" {
		if id, err := uuid.Parse(raw); err == nil {
			return id
		}
	}
	return bodyUserId
}
