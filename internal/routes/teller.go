package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/okapibank/teller/internal/teller"
)

// RegisterTellerRoutes wires the teller window endpoints. The rate limiter
// guards session opening only; authenticated operations are keyed by the
// session token in the path.
func RegisterTellerRoutes(r fiber.Router, h *teller.Handler, rateLimiter fiber.Handler) {
	if rateLimiter != nil {
		r.Post("/sessions", rateLimiter, h.Login)
	} else {
		r.Post("/sessions", h.Login)
	}
	r.Delete("/sessions/:token", h.Logout)
	r.Get("/sessions/:token/balance", h.Balance)
	r.Post("/sessions/:token/deposits", h.Deposit)
	r.Post("/sessions/:token/withdrawals", h.Withdraw)
	r.Get("/sessions/:token/transactions", h.History)
}
