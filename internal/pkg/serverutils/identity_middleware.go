package serverutils

import (
	"strings"

	"companion-learning-be/internal/identity"

	"github.com/gofiber/fiber/v2"
)

const identityLocalKey = "identity"

// IdentityMiddleware resolves the bearer token into an identity.Identity for every request.
// A request without a token continues as anonymous; a bad token is rejected outright.
func IdentityMiddleware(gateway identity.Gateway) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		caller, err := gateway.Authenticate(BearerToken(ctx))
		if err != nil {
			return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(fiber.StatusUnauthorized, "Invalid token"))
		}

		ctx.Locals(identityLocalKey, caller)
		return ctx.Next()
	}
}

// CurrentIdentity returns the caller stored by IdentityMiddleware, or an anonymous identity.
func CurrentIdentity(ctx *fiber.Ctx) identity.Identity {
	caller, ok := ctx.Locals(identityLocalKey).(identity.Identity)
	if !ok {
		return identity.Anonymous()
	}
	return caller
}

// BearerToken reads "Authorization: Bearer <token>", falling back to the token query parameter
// that browsers use for websocket handshakes.
func BearerToken(ctx *fiber.Ctx) string {
	authHeader := ctx.Get(fiber.HeaderAuthorization)
	if len(authHeader) > 7 && strings.EqualFold(authHeader[:7], "Bearer ") {
		return strings.TrimSpace(authHeader[7:])
	}
	return ctx.Query("token")
}
