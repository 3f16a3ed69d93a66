package handler

import (
	"companion-learning-be/internal/identity"
	"companion-learning-be/internal/pkg/logger"
	"companion-learning-be/internal/pkg/serverutils"
	internalWS "companion-learning-be/internal/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// RevalidationHandler upgrades viewers onto the revalidation stream.
type RevalidationHandler struct {
	gateway identity.Gateway
	hub     *internalWS.Hub
	logger  logger.ILogger
}

func NewRevalidationHandler(gateway identity.Gateway, hub *internalWS.Hub, log logger.ILogger) *RevalidationHandler {
	return &RevalidationHandler{
		gateway: gateway,
		hub:     hub,
		logger:  log,
	}
}

func (h *RevalidationHandler) RegisterRoutes(r fiber.Router) {
	r.Get("/ws", h.Upgrade, websocket.New(h.serve))
}

// Upgrade authenticates the handshake. Browsers cannot set headers on a websocket request,
// so the token usually arrives as ?token=. No token means an anonymous viewer.
func (h *RevalidationHandler) Upgrade(c *fiber.Ctx) error {
	if !websocket.IsWebSocketUpgrade(c) {
		return fiber.ErrUpgradeRequired
	}

	caller, err := h.gateway.Authenticate(serverutils.BearerToken(c))
	if err != nil {
		h.logger.Warn("RevalidationHandler", "Invalid Token in WS Handshake", map[string]interface{}{"error": err.Error()})
		return c.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(fiber.StatusUnauthorized, "Invalid token"))
	}

	c.Locals("user_id", caller.UserId)
	return c.Next()
}

func (h *RevalidationHandler) serve(conn *websocket.Conn) {
	userID, _ := conn.Locals("user_id").(string)
	h.logger.Info("RevalidationHandler", "Client connected", map[string]interface{}{"user_id": userID})
	internalWS.ServeWs(h.hub, conn, userID)
}
