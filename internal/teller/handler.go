package teller

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/okapibank/teller/internal/account"
	"github.com/okapibank/teller/internal/money"
)

// Handler exposes teller HTTP endpoints.
type Handler struct {
	service      *Service
	historyLimit int
}

// NewHandler builds a teller HTTP handler. historyLimit caps transaction
// listings when the request does not specify one.
func NewHandler(service *Service, historyLimit int) *Handler {
	if historyLimit <= 0 {
		historyLimit = 10
	}
	return &Handler{service: service, historyLimit: historyLimit}
}

// Login authenticates an identifier/PIN pair and opens a session.
func (h *Handler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}

	sess, err := h.service.Authenticate(c.UserContext(), req.Identifier, req.PIN)
	if err != nil {
		return statusError(err)
	}

	return c.Status(http.StatusCreated).JSON(loginResponse{
		Token:            sess.Token,
		HolderName:       sess.Account.HolderName(),
		MaskedIdentifier: sess.Account.MaskedIdentifier(),
		ExpiresAt:        sess.ExpiresAt.Format(time.RFC3339),
	})
}

// Logout ends the session.
func (h *Handler) Logout(c *fiber.Ctx) error {
	if err := h.service.Logout(c.UserContext(), c.Params("token")); err != nil {
		return statusError(err)
	}
	return c.SendStatus(http.StatusNoContent)
}

// Balance returns the current balance of the session's account.
func (h *Handler) Balance(c *fiber.Ctx) error {
	balance, err := h.service.Balance(c.UserContext(), c.Params("token"))
	if err != nil {
		return statusError(err)
	}
	masked, err := h.service.MaskedIdentifier(c.UserContext(), c.Params("token"))
	if err != nil {
		return statusError(err)
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"identifier": masked,
		"balance":    balance.String(),
	})
}

// Deposit credits the session's account.
func (h *Handler) Deposit(c *fiber.Ctx) error {
	return h.mutate(c, h.service.Deposit)
}

// Withdraw debits the session's account.
func (h *Handler) Withdraw(c *fiber.Ctx) error {
	return h.mutate(c, h.service.Withdraw)
}

// History lists recent ledger entries, most recent first.
func (h *Handler) History(c *fiber.Ctx) error {
	limit := h.historyLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return fiber.NewError(http.StatusBadRequest, "limit must be a positive integer")
		}
		limit = parsed
	}

	entries, err := h.service.History(c.UserContext(), c.Params("token"), limit)
	if err != nil {
		return statusError(err)
	}

	out := make([]entryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, toEntryResponse(e))
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{"transactions": out})
}

type mutation func(ctx context.Context, token string, amount money.Amount) (account.Entry, error)

func (h *Handler) mutate(c *fiber.Ctx, op mutation) error {
	var req amountRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}

	// Malformed decimal strings are a presentation concern: convert them
	// into a retry prompt here, before the core is involved.
	amount, err := money.Parse(req.Amount)
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}

	entry, err := op(c.UserContext(), c.Params("token"), amount)
	if err != nil {
		return statusError(err)
	}
	return c.Status(http.StatusCreated).JSON(toEntryResponse(entry))
}

func statusError(err error) error {
	switch {
	case errors.Is(err, account.ErrBadFormat), errors.Is(err, account.ErrInvalidAmount):
		return fiber.NewError(http.StatusBadRequest, err.Error())
	case errors.Is(err, account.ErrBadCredential):
		return fiber.NewError(http.StatusUnauthorized, err.Error())
	case errors.Is(err, account.ErrNotFound):
		return fiber.NewError(http.StatusNotFound, err.Error())
	case errors.Is(err, account.ErrInsufficientFunds):
		return fiber.NewError(http.StatusConflict, err.Error())
	default:
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
}
