package account

import (
	"time"

	"github.com/okapibank/teller/internal/money"
)

// EntryKind enumerates the balance-affecting operations.
type EntryKind string

const (
	// Deposit credits the balance.
	Deposit EntryKind = "DEPOSIT"
	// Withdrawal debits the balance.
	Withdrawal EntryKind = "WITHDRAWAL"
)

// Entry is one immutable ledger record. Entries are created only as the
// side effect of a successful deposit or withdrawal and are never mutated
// or deleted afterwards.
type Entry struct {
	Kind         EntryKind
	Amount       money.Amount
	Timestamp    time.Time
	BalanceAfter money.Amount
}
