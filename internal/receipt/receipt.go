// Package receipt emits a record for every successful teller transaction.
package receipt

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/okapibank/teller/internal/account"
)

// Receipt describes one completed deposit or withdrawal. Identifiers are
// always masked; the raw card or account number never leaves the core.
type Receipt struct {
	ID               string
	Kind             account.EntryKind
	MaskedIdentifier string
	Amount           string
	BalanceAfter     string
}

// Printer delivers receipts to whatever sits on the other side of the
// teller window.
type Printer interface {
	Print(ctx context.Context, r Receipt) error
}

// LogPrinter writes receipts to the structured logger.
type LogPrinter struct {
	logger *slog.Logger
}

// NewLogPrinter constructs a logging receipt printer.
func NewLogPrinter(logger *slog.Logger) *LogPrinter {
	return &LogPrinter{logger: logger}
}

// Print writes the receipt to the logger.
func (p *LogPrinter) Print(_ context.Context, r Receipt) error {
	if p == nil || p.logger == nil {
		return nil
	}
	p.logger.Info("receipt",
		"receipt_id", r.ID,
		"kind", string(r.Kind),
		"identifier", r.MaskedIdentifier,
		"amount", r.Amount,
		"balance_after", r.BalanceAfter,
	)
	return nil
}

// New assembles a receipt for a ledger entry.
func New(acc *account.Account, entry account.Entry) Receipt {
	return Receipt{
		ID:               uuid.NewString(),
		Kind:             entry.Kind,
		MaskedIdentifier: acc.MaskedIdentifier(),
		Amount:           entry.Amount.String(),
		BalanceAfter:     entry.BalanceAfter.String(),
	}
}
