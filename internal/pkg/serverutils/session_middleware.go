package serverutils

import (
	"github.com/gofiber/fiber/v2"
)

// SessionHeader carries the funnel session id when it does not travel in
// the path.
const SessionHeader = "X-Funnel-Session"

// SessionMiddleware requires a session id, from the :sid path segment or
// the header, and exposes it via Locals. The funnel is anonymous; the id
// is the only identity a visitor has.
func SessionMiddleware(ctx *fiber.Ctx) error {
	sessionId := ctx.Params("sid")
	if sessionId == "" {
		sessionId = ctx.Get(SessionHeader)
	}
	if sessionId == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(ErrorResponse(fiber.StatusBadRequest, "missing session id"))
	}
	ctx.Locals("session_id", sessionId)
	return ctx.Next()
}

// SessionId reads the session id stored by SessionMiddleware.
func SessionId(ctx *fiber.Ctx) string {
	id, _ := ctx.Locals("session_id").(string)
	return id
}
